package usecases

import (
	"context"
	"crm-server/internal/deals/domain"
	"crm-server/internal/infra/async"
	"crm-server/internal/infra/pubsub"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// PipelineTopic carries a domain.PipelineUpdate per deal change.
const PipelineTopic async.BrokerTopicName = "deals.pipeline"

func NewPipelineWorker(
	consumerFactory pubsub.ConsumerFactory,
	repository DealRepository,
	broker async.InternalBroker,
) *PipelineWorker {
	return &PipelineWorker{
		consumerFactory: consumerFactory,
		repository:      repository,
		broker:          broker,
	}
}

var _ async.Worker = &PipelineWorker{}

// PipelineWorker turns deal record changes into pipeline updates for the
// boards connected to this node.
type PipelineWorker struct {
	consumerFactory pubsub.ConsumerFactory
	repository      DealRepository
	broker          async.InternalBroker
}

func (w *PipelineWorker) Run(ctx context.Context, done func()) {
	slog.Info("pipeline worker started")
	defer done()

	consumer := w.consumerFactory.New()
	err := consumer.Consume(ctx, pubsub.RecordChangesTopic, w.Handle, shareddomain.RecordChange{})
	if err != nil {
		slog.Error("consuming record changes", slog.String("error", err.Error()))
		return
	}

	<-ctx.Done()
	slog.Info("pipeline worker cancelled")
}

func (w *PipelineWorker) Shutdown() {}

// Handle publishes the pipeline update for one record change. Contact
// changes are ignored.
func (w *PipelineWorker) Handle(ctx context.Context, _ pubsub.Key, message pubsub.Prototype) error {
	change, ok := message.(shareddomain.RecordChange)
	if !ok {
		slog.Error("failed to cast record change",
			slog.String("type", fmt.Sprintf("%T", message)),
			slog.String("expected", "domain.RecordChange"))
		return nil
	}
	if change.EntityType != shareddomain.EntityTypeDeal {
		return nil
	}

	update := domain.PipelineUpdate{
		Event:         domain.PipelineEventChanged,
		DealID:        change.RecordID,
		OwnerID:       change.OwnerID,
		PreviousStage: domain.Stage(change.PreviousStage),
		Stage:         domain.Stage(change.Stage),
		OccurredAt:    change.OccurredAt,
	}

	if change.Action == shareddomain.ChangeActionDeleted {
		update.Event = domain.PipelineEventRemoved
	} else {
		deal, err := w.repository.GetByID(ctx, change.OwnerID, change.RecordID)
		if errors.Is(err, ErrDealNotFound) {
			update.Event = domain.PipelineEventRemoved
		} else if err != nil {
			slog.Error("loading changed deal",
				slog.String("deal_id", change.RecordID.String()),
				slog.String("error", err.Error()))
			return fmt.Errorf("loading changed deal: %w", err)
		} else {
			update.Deal = &deal
			update.Stage = deal.Stage
		}
	}

	return w.publish(ctx, update)
}

func (w *PipelineWorker) publish(ctx context.Context, update domain.PipelineUpdate) error {
	err := w.broker.Publish(ctx, PipelineTopic, async.BrokerMessage{
		Event: string(update.Event),
		Value: update,
	})
	if errors.Is(err, async.ErrTopicNotFound) {
		// nobody is watching a board
		return nil
	}
	if err != nil {
		slog.Error("publishing pipeline update", slog.String("error", err.Error()))
		return err
	}
	return nil
}

func publishOverdue(ctx context.Context, broker async.InternalBroker, deal domain.Deal, now time.Time) error {
	update := domain.PipelineUpdate{
		Event:      domain.PipelineEventOverdue,
		DealID:     deal.ID,
		OwnerID:    deal.OwnerID,
		Stage:      deal.Stage,
		Deal:       &deal,
		OccurredAt: now,
	}
	err := broker.Publish(ctx, PipelineTopic, async.BrokerMessage{Event: string(update.Event), Value: update})
	if errors.Is(err, async.ErrTopicNotFound) {
		return nil
	}
	return err
}
