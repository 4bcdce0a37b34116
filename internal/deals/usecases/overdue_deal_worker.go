package usecases

import (
	"context"
	"crm-server/internal/infra/async"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const DefaultOverdueSchedule = "@every 1h"

func NewOverdueDealWorker(
	schedule string,
	location *time.Location,
	repository DealRepository,
	broker async.InternalBroker,
) (*OverdueDealWorker, error) {
	if schedule == "" {
		schedule = DefaultOverdueSchedule
	}
	if location == nil {
		location = time.UTC
	}

	scheduler := cron.New(cron.WithLocation(location))
	worker := &OverdueDealWorker{
		scheduler:  scheduler,
		repository: repository,
		broker:     broker,
		now:        time.Now,
	}
	_, err := scheduler.AddFunc(schedule, func() {
		worker.Sweep(context.Background())
	})
	if err != nil {
		return nil, fmt.Errorf("parsing overdue schedule %q: %w", schedule, err)
	}

	return worker, nil
}

var _ async.Worker = &OverdueDealWorker{}

// OverdueDealWorker periodically flags open deals whose expected close date
// has passed.
type OverdueDealWorker struct {
	scheduler  *cron.Cron
	repository DealRepository
	broker     async.InternalBroker
	now        func() time.Time
}

func (w *OverdueDealWorker) Run(ctx context.Context, done func()) {
	slog.Info("overdue deal worker started")
	defer done()

	w.scheduler.Start()
	<-ctx.Done()

	// wait for a sweep in progress
	<-w.scheduler.Stop().Done()
	slog.Info("overdue deal worker cancelled")
}

func (w *OverdueDealWorker) Shutdown() {
	w.scheduler.Stop()
}

// Sweep publishes an overdue notice per overdue deal and returns how many
// were found.
func (w *OverdueDealWorker) Sweep(ctx context.Context) int {
	now := w.now().UTC()
	deals, err := w.repository.FindOverdue(ctx, now)
	if err != nil {
		slog.Error("finding overdue deals", slog.String("error", err.Error()))
		return 0
	}

	for _, deal := range deals {
		if err := publishOverdue(ctx, w.broker, deal, now); err != nil {
			slog.Error("publishing overdue deal",
				slog.String("deal_id", deal.ID.String()),
				slog.String("error", err.Error()))
		}
	}

	slog.Debug("overdue sweep done", slog.Int("deals", len(deals)))
	return len(deals)
}
