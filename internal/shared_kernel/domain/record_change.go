package domain

import (
	"crm-server/internal/infra/utils"
	"time"
)

type ChangeAction string

const (
	ChangeActionCreated      ChangeAction = "created"
	ChangeActionUpdated      ChangeAction = "updated"
	ChangeActionDeleted      ChangeAction = "deleted"
	ChangeActionStageChanged ChangeAction = "stage_changed"
)

// RecordChange is published after every successful write to a contact or deal.
type RecordChange struct {
	ID            ID
	EntityType    EntityType
	RecordID      ID
	OwnerID       ID
	Action        ChangeAction
	PreviousStage string
	Stage         string
	OccurredAt    time.Time
}

func NewRecordChange(entityType EntityType, recordID, ownerID ID, action ChangeAction) RecordChange {
	return RecordChange{
		ID:         ID(utils.GenerateUUID()),
		EntityType: entityType,
		RecordID:   recordID,
		OwnerID:    ownerID,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	}
}

func (c RecordChange) WithStages(previous, current string) RecordChange {
	c.PreviousStage = previous
	c.Stage = current
	return c
}
