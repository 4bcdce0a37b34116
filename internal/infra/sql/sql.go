package sql

import (
	"context"
	"errors"
)

var ErrNotConnected = errors.New("database is not connected")

type Database interface {
	Open() error
	Close()
	Ping(context.Context) error
	Query(context.Context, string, ...any) ([][]byte, error)
}
