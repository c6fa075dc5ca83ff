package app

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/rd1855/portfolio_backend/config"
	"github.com/rd1855/portfolio_backend/internal/ledger"
	"github.com/rd1855/portfolio_backend/internal/service/notification"
	"github.com/rd1855/portfolio_backend/pkg/events"
)

// WorkerModule registers all event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Bus      events.Bus
	NotifSvc notification.Service
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return startNotificationWorker(p.Bus, p.Cfg.Events.SubjectPrefix, p.NotifSvc)
		},
		// bus shutdown is handled by ProvideEventBus
	})
}

// ---------------------------------------------------------------------------
// notification_worker
// ---------------------------------------------------------------------------

func startNotificationWorker(bus events.Bus, prefix string, notifSvc notification.Service) error {
	subject := events.Subject(prefix, events.ContactSubmitted)

	err := bus.Subscribe(subject, func(ctx context.Context, evt events.Event) {
		var msg ledger.Message
		if err := evt.Decode(&msg); err != nil {
			slog.Warn("notification_worker: malformed event", "id", evt.ID, "err", err)
			return
		}
		if err := notifSvc.ContactReceived(ctx, msg); err != nil {
			slog.Warn("notification_worker: delivery failed", "ticket", msg.TicketNumber, "err", err)
			return
		}
		slog.Debug("notification_worker: delivered", "ticket", msg.TicketNumber)
	})
	if err != nil {
		slog.Error("notification_worker: subscribe failed", "subject", subject, "err", err)
		return err
	}

	slog.Info("notification_worker: started", "subject", subject)
	return nil
}
