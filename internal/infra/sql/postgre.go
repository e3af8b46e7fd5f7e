package sql

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	_maxRetries   = 5
	_retryBackoff = 5 * time.Second
	_pingTimeout  = 2 * time.Second
)

type PostgreDatabase struct {
	url  string
	Conn *pgxpool.Pool
}

var _ Database = (*PostgreDatabase)(nil)

var (
	postgreInstance *PostgreDatabase
	postgreOnce     sync.Once
)

// NewPostgreORM opens the gorm connection used by repositories. Query timeout
// applies to every WithContext call.
func NewPostgreORM(dsn string, queryTimeout time.Duration, autoMigrate bool) (*DB, error) {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: autoMigrate,
		timeout:              queryTimeout,
	}, nil
}

// NewPostgreDatabase returns the process wide pgx pool wrapper.
func NewPostgreDatabase(url string) *PostgreDatabase {
	postgreOnce.Do(func() {
		postgreInstance = &PostgreDatabase{
			url: url,
		}
	})

	return postgreInstance
}

func (d *PostgreDatabase) Open() error {
	for attempt := range _maxRetries {
		conn, err := pgxpool.New(context.Background(), d.url)
		if err == nil {
			d.Conn = conn
			return nil
		}

		slog.Warn("postgres connection failed",
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()),
		)
		time.Sleep(_retryBackoff)
	}

	return fmt.Errorf("imposible to connect to database after %d retries", _maxRetries)
}

func (d *PostgreDatabase) Close() {
	if d.Conn != nil {
		d.Conn.Close()
	}
}

func (d *PostgreDatabase) Ping(ctx context.Context) error {
	if d.Conn == nil {
		return fmt.Errorf("postgres pool not opened")
	}

	pingCtx, cancel := context.WithTimeout(ctx, _pingTimeout)
	defer cancel()

	if err := d.Conn.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}
	return nil
}
