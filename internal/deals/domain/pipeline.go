package domain

import (
	shareddomain "crm-server/internal/shared_kernel/domain"
	"time"

	"github.com/shopspring/decimal"
)

// PipelineColumn holds the deals of one stage, in the order given.
type PipelineColumn struct {
	Stage Stage
	Deals []Deal
	Total decimal.Decimal
}

// GroupByStage returns one column per stage in pipeline order, empty stages
// included.
func GroupByStage(deals []Deal) []PipelineColumn {
	index := make(map[Stage]int, len(Stages))
	columns := make([]PipelineColumn, len(Stages))
	for i, stage := range Stages {
		index[stage] = i
		columns[i] = PipelineColumn{Stage: stage, Deals: []Deal{}, Total: decimal.Zero}
	}

	for _, deal := range deals {
		i, found := index[deal.Stage]
		if !found {
			continue
		}
		columns[i].Deals = append(columns[i].Deals, deal)
		if deal.Value.Valid {
			columns[i].Total = columns[i].Total.Add(deal.Value.Decimal)
		}
	}

	return columns
}

type PipelineEvent string

const (
	PipelineEventChanged PipelineEvent = "changed"
	PipelineEventRemoved PipelineEvent = "removed"
	PipelineEventOverdue PipelineEvent = "overdue"
)

// PipelineUpdate is pushed to pipeline boards. Deal is nil for removals.
type PipelineUpdate struct {
	Event         PipelineEvent
	DealID        shareddomain.ID
	OwnerID       shareddomain.ID
	PreviousStage Stage
	Stage         Stage
	Deal          *Deal
	OccurredAt    time.Time
}
