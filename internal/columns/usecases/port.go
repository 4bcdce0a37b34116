package usecases

import (
	"context"
	"crm-server/internal/columns/domain"
	"errors"
	"fmt"
)

//go:generate mockgen -source=port.go -destination=../../../test/unit/doubles/columns/usecases/port_mock.go -package=usecases

var (
	ErrColumnNotFound       = errors.New("column not found")
	ErrDefaultColumnRemoval = errors.New("default columns cannot be removed")
	ErrInvalidColumn        = errors.New("invalid column")
)

// StateKey addresses the persisted column state of one list of one user.
type StateKey struct {
	OwnerID string
	List    domain.ListKey
}

func (k StateKey) String() string {
	return fmt.Sprintf("column-config:%s:%s", k.OwnerID, k.List)
}

// StateStorage keeps opaque JSON payloads by key.
type StateStorage interface {
	Read(ctx context.Context, key StateKey) ([]byte, bool, error)
	Write(ctx context.Context, key StateKey, payload []byte) error
}

type ColumnConfigService interface {
	Get(ctx context.Context, ownerID string, list domain.ListKey) (domain.ColumnSet, error)
	ToggleVisibility(ctx context.Context, ownerID string, list domain.ListKey, columnID string) (domain.ColumnSet, error)
	Rename(ctx context.Context, ownerID string, list domain.ListKey, columnID, label string) (domain.ColumnSet, error)
	Reorder(ctx context.Context, ownerID string, list domain.ListKey, orders map[string]int) (domain.ColumnSet, error)
	SetSort(ctx context.Context, ownerID string, list domain.ListKey, columnID string, direction domain.SortDirection) (domain.ColumnSet, error)
	ClearSort(ctx context.Context, ownerID string, list domain.ListKey) (domain.ColumnSet, error)
	Reset(ctx context.Context, ownerID string, list domain.ListKey) (domain.ColumnSet, error)
	AddColumn(ctx context.Context, ownerID string, list domain.ListKey, column domain.ColumnConfig) (domain.ColumnSet, error)
	RemoveColumn(ctx context.Context, ownerID string, list domain.ListKey, columnID string) (domain.ColumnSet, error)
	ActiveSort(ctx context.Context, ownerID string, list domain.ListKey) (domain.ColumnConfig, bool)
}
