package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/rd1855/portfolio_backend/config"
	"github.com/rd1855/portfolio_backend/internal/ledger"
	"github.com/rd1855/portfolio_backend/internal/service/analytics"
	"github.com/rd1855/portfolio_backend/internal/service/contact"
	"github.com/rd1855/portfolio_backend/internal/service/notification"
	"github.com/rd1855/portfolio_backend/internal/service/portfolio"
	"github.com/rd1855/portfolio_backend/internal/service/system"
	"github.com/rd1855/portfolio_backend/pkg/email"
	"github.com/rd1855/portfolio_backend/pkg/events"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvidePortfolioService,
		ProvideContactService,
		ProvideAnalyticsService,
		ProvideSystemService,
		ProvideNotificationService,
	),
)

func ProvidePortfolioService(cfg *config.Config) (portfolio.Service, error) {
	return portfolio.New(cfg.Content.Path)
}

func ProvideContactService(l ledger.Ledger, bus events.Bus, content portfolio.Service, cfg *config.Config) contact.Service {
	return contact.New(l, bus, cfg.Events.SubjectPrefix, content.Contact().NextSteps)
}

func ProvideAnalyticsService(l ledger.Ledger, bus events.Bus, cfg *config.Config) analytics.Service {
	return analytics.New(l, bus, cfg.Events.SubjectPrefix)
}

func ProvideSystemService(l ledger.Ledger) system.Service {
	return system.New(l, time.Now())
}

func ProvideNotificationService(emailClient *email.Client, content portfolio.Service) notification.Service {
	personal := content.Portfolio().Personal
	return notification.New(emailClient, notification.Owner{Name: personal.Name, Phone: personal.Phone})
}
