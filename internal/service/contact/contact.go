package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rd1855/portfolio_backend/internal/ledger"
	"github.com/rd1855/portfolio_backend/internal/validation"
	"github.com/rd1855/portfolio_backend/pkg/events"
	"github.com/rd1855/portfolio_backend/pkg/reqctx"
)

// previewLen bounds the message excerpt written to the submission log.
const previewLen = 100

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Submit validates and records a submission. Validation failures are
	// returned as *validation.ValidationError.
	Submit(ctx context.Context, req CreateRequest) (*ledger.Message, error)
	List(ctx context.Context) (*ledger.MessageList, error)
	NextSteps() []string
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type contactService struct {
	ledger    ledger.Ledger
	bus       events.Bus
	subject   string
	nextSteps []string
}

func New(l ledger.Ledger, bus events.Bus, subjectPrefix string, nextSteps []string) Service {
	return &contactService{
		ledger:    l,
		bus:       bus,
		subject:   events.Subject(subjectPrefix, events.ContactSubmitted),
		nextSteps: nextSteps,
	}
}

func (s *contactService) Submit(ctx context.Context, req CreateRequest) (*ledger.Message, error) {
	if err := validation.ValidateContact(req.Name, req.Email, req.Message); err != nil {
		var ve *validation.ValidationError
		if errors.As(err, &ve) && ve.Kind == validation.MissingField {
			slog.DebugContext(ctx, "contact rejected", "missing", validation.Missing(req.Name, req.Email, req.Message))
		}
		return nil, err
	}

	msg, err := s.ledger.RecordMessage(ctx, ledger.NewMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: record message: %w", ErrInternal, err)
	}

	attrs := append([]any{
		"ticket", msg.TicketNumber,
		"from", fmt.Sprintf("%s <%s>", msg.Name, msg.Email),
		"subject", msg.Subject,
		"preview", preview(msg.Body),
	}, reqctx.LogAttrs(ctx)...)
	slog.InfoContext(ctx, "new contact form submission", attrs...)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, s.subject, msg); err != nil {
			slog.WarnContext(ctx, "contact: publish failed", "ticket", msg.TicketNumber, "err", err)
		}
	}
	return msg, nil
}

func (s *contactService) List(ctx context.Context) (*ledger.MessageList, error) {
	list, err := s.ledger.ListMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list messages: %w", ErrInternal, err)
	}
	return list, nil
}

func (s *contactService) NextSteps() []string {
	return append([]string(nil), s.nextSteps...)
}

func preview(body string) string {
	r := []rune(body)
	if len(r) <= previewLen {
		return body
	}
	return string(r[:previewLen]) + "..."
}
