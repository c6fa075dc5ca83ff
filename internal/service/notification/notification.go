// Package notification tells the site owner and the visitor about a new
// contact submission by e-mail.
package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rd1855/portfolio_backend/internal/ledger"
	"github.com/rd1855/portfolio_backend/pkg/email"
)

// Sender is the part of *email.Client the service needs.
type Sender interface {
	IsEnabled() bool
	Owner() string
	Send(ctx context.Context, m email.Message) error
}

// Owner identifies the person behind the portfolio in outgoing mail.
type Owner struct {
	Name  string
	Phone string
}

type Service interface {
	// ContactReceived sends the owner notification and the visitor
	// confirmation. It does nothing when e-mail is disabled.
	ContactReceived(ctx context.Context, msg ledger.Message) error
}

type notificationService struct {
	sender Sender
	owner  Owner
}

func New(sender Sender, owner Owner) Service {
	return &notificationService{sender: sender, owner: owner}
}

func (s *notificationService) ContactReceived(ctx context.Context, msg ledger.Message) error {
	if s.sender == nil || !s.sender.IsEnabled() {
		slog.DebugContext(ctx, "notification: email disabled, skipping", "ticket", msg.TicketNumber)
		return nil
	}

	data := email.ContactEmailData{
		TicketNumber: msg.TicketNumber,
		Name:         msg.Name,
		Email:        msg.Email,
		Subject:      msg.Subject,
		Message:      msg.Body,
		SubmittedAt:  msg.SubmittedAt,
		OwnerName:    s.owner.Name,
		OwnerPhone:   s.owner.Phone,
	}

	var errs []error
	if to := s.sender.Owner(); to != "" {
		if err := s.sender.Send(ctx, email.BuildContactNotificationEmail(to, data)); err != nil {
			errs = append(errs, fmt.Errorf("owner notification: %w", err))
		}
	}
	if err := s.sender.Send(ctx, email.BuildContactConfirmationEmail(data)); err != nil {
		errs = append(errs, fmt.Errorf("visitor confirmation: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDeliveryFailed, msg.TicketNumber, err)
	}
	return nil
}
