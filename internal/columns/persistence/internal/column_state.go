package internal

import (
	"time"

	"gorm.io/datatypes"
)

type ColumnState struct {
	OwnerID   string         `gorm:"primaryKey;column:owner_id"`
	ListKey   string         `gorm:"primaryKey;column:list_key"`
	Payload   datatypes.JSON `gorm:"column:payload;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (ColumnState) TableName() string {
	return "column_configs"
}
