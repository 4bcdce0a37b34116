package sql

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	_queryTimeout = 5 * time.Second
	_maxRetries   = 3
	_retryDelay   = 2 * time.Second
)

type PostgreDatabase struct {
	url  string
	Conn *pgxpool.Pool
	mu   sync.RWMutex
}

var _ Database = (*PostgreDatabase)(nil)

// Singleton pattern for PostgreSQL database
var (
	postgreInstance *PostgreDatabase
	postgreOnce     sync.Once
)

// NewPostgresORM opens the production ORM. The schema is owned by the
// embedded migrations, so auto migration stays disabled.
func NewPostgresORM(dsn string, timeout time.Duration) (*DB, error) {
	pass, ok := os.LookupEnv("CRM_SERVER_POSTGRES_PASSWORD")
	if ok {
		dsn = fmt.Sprintf("%s password=%s", dsn, pass)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if timeout <= 0 {
		timeout = _queryTimeout
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: false,
		timeout:              timeout,
	}, nil
}

func NewPosgreDatabase(url string) *PostgreDatabase {
	postgreOnce.Do(func() {
		postgreInstance = &PostgreDatabase{
			url: url,
		}
	})

	return postgreInstance
}

func (d *PostgreDatabase) Open() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.Conn != nil {
		return nil
	}

	var lastErr error
	for range _maxRetries {
		conn, err := pgxpool.New(context.Background(), d.url)
		if err == nil {
			d.Conn = conn
			return nil
		}
		lastErr = err
		time.Sleep(_retryDelay)
	}

	return fmt.Errorf("imposible to connect to database after %d retries: %w", _maxRetries, lastErr)
}

func (d *PostgreDatabase) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.Conn != nil {
		d.Conn.Close()
		d.Conn = nil
	}
}

func (d *PostgreDatabase) Ping(ctx context.Context) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.Conn == nil {
		return ErrNotConnected
	}

	pingCtx, cancelFn := context.WithTimeout(ctx, _queryTimeout)
	defer cancelFn()

	return d.Conn.Ping(pingCtx)
}

// Query returns the first column of every row in its raw text form.
func (d *PostgreDatabase) Query(ctx context.Context, sql string, args ...any) ([][]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.Conn == nil {
		return nil, ErrNotConnected
	}

	queryCtx, cancelFn := context.WithTimeout(ctx, _queryTimeout)
	defer cancelFn()

	rows, err := d.Conn.Query(queryCtx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("postgre query: %w", err)
	}

	defer rows.Close()
	values := make([][]byte, 0)
	for rows.Next() {
		values = append(values, rows.RawValues()[0])
	}
	return values, rows.Err()
}
