package analytics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rd1855/portfolio_backend/internal/ledger"
	"github.com/rd1855/portfolio_backend/internal/validation"
	"github.com/rd1855/portfolio_backend/pkg/events"
)

type Service interface {
	// RecordPageView counts one view of page. An empty page is rejected with
	// a *validation.ValidationError.
	RecordPageView(ctx context.Context, page string) (*ledger.PageView, error)
}

type analyticsService struct {
	ledger  ledger.Ledger
	bus     events.Bus
	subject string
}

func New(l ledger.Ledger, bus events.Bus, subjectPrefix string) Service {
	return &analyticsService{
		ledger:  l,
		bus:     bus,
		subject: events.Subject(subjectPrefix, events.PageViewed),
	}
}

func (s *analyticsService) RecordPageView(ctx context.Context, page string) (*ledger.PageView, error) {
	if err := validation.ValidatePageView(page); err != nil {
		return nil, err
	}

	pv, err := s.ledger.RecordPageView(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("%w: record page view: %w", ErrInternal, err)
	}

	if s.bus != nil {
		if err := s.bus.Publish(ctx, s.subject, pv); err != nil {
			slog.WarnContext(ctx, "analytics: publish failed", "page", page, "err", err)
		}
	}
	return pv, nil
}
