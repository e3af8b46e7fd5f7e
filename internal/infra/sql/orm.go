package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=orm.go -destination=../../../test/unit/doubles/infra/sql/orm_mock.go -package=sql -mock_names=ORM=MockORM

type ORM interface {
	AutoMigrate(dst ...any) error
	Count(count *int64) ORM
	Create(value any) ORM
	Delete(value any, conds ...any) ORM
	Exec(query string, args ...any) ORM
	Find(dest any, conds ...any) ORM
	First(dest any, conds ...any) ORM
	Limit(limit int) ORM
	Model(value any) ORM
	Offset(offset int) ORM
	Order(value any) ORM
	Save(value any) ORM
	Transaction(fc func(tx ORM) error, opts ...*sql.TxOptions) error
	Updates(values any) ORM
	Where(query any, args ...any) ORM
	WithContext(ctx context.Context) ORM
	WithTimeout(ctx context.Context, timeout time.Duration) ORM

	Error() error
	RowsAffected() int64
}

type DB struct {
	*gorm.DB
	autoMigrationEnabled bool
	timeout              time.Duration
}

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicatedKey  = errors.New("duplicated key")
)

// Expr builds a raw SQL expression usable in Updates, e.g. counter increments.
func Expr(expr string, args ...any) clause.Expr {
	return gorm.Expr(expr, args...)
}

func (d DB) Error() error {
	switch {
	case errors.Is(d.DB.Error, gorm.ErrRecordNotFound):
		return ErrRecordNotFound
	case errors.Is(d.DB.Error, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrDuplicatedKey, d.DB.Error)
	case d.DB.Error != nil:
		return fmt.Errorf("database error: %w", d.DB.Error)
	default:
		return nil
	}
}

func (d DB) RowsAffected() int64 {
	return d.DB.RowsAffected
}

var _ ORM = (*DB)(nil)

func (d DB) AutoMigrate(dst ...any) error {
	if d.autoMigrationEnabled {
		return d.DB.AutoMigrate(dst...)
	}

	return nil
}

func (d DB) Count(value *int64) ORM {
	d.setSpanAttributes("count")
	tx := d.DB.Count(value)
	d.DB = tx
	return &d
}

func (d DB) Create(value any) ORM {
	d.setSpanAttributes("create")
	tx := d.DB.Create(value)
	d.DB = tx
	return &d
}

func (d DB) Delete(value any, conds ...any) ORM {
	d.setSpanAttributes("delete")
	tx := d.DB.Delete(value, conds...)
	d.DB = tx
	return &d
}

func (d DB) Exec(query string, args ...any) ORM {
	d.setSpanAttributes("exec")
	tx := d.DB.Exec(query, args...)
	d.DB = tx
	return &d
}

func (d DB) Find(value any, conds ...any) ORM {
	d.setSpanAttributes("find")
	tx := d.DB.Find(value, conds...)
	d.DB = tx
	return &d
}

func (d DB) First(value any, conds ...any) ORM {
	d.setSpanAttributes("first")
	tx := d.DB.First(value, conds...)
	d.DB = tx
	return &d
}

func (d DB) Limit(value int) ORM {
	tx := d.DB.Limit(value)
	d.DB = tx
	return &d
}

func (d DB) Model(value any) ORM {
	tx := d.DB.Model(value)
	d.DB = tx
	return &d
}

func (d DB) Offset(value int) ORM {
	tx := d.DB.Offset(value)
	d.DB = tx
	return &d
}

func (d DB) Order(value any) ORM {
	tx := d.DB.Order(value)
	d.DB = tx
	return &d
}

func (d DB) Save(value any) ORM {
	d.setSpanAttributes("save")
	tx := d.DB.Save(value)
	d.DB = tx
	return &d
}

func (d DB) Updates(values any) ORM {
	d.setSpanAttributes("update")
	tx := d.DB.Updates(values)
	d.DB = tx
	return &d
}

func (d DB) Where(value any, conds ...any) ORM {
	tx := d.DB.Where(value, conds...)
	d.DB = tx
	return &d
}

func (d DB) WithContext(value context.Context) ORM {
	if d.timeout > 0 {
		return d.WithTimeout(value, d.timeout)
	}

	tx := d.DB.WithContext(value)
	d.DB = tx
	return &d
}

func (d DB) WithTimeout(ctx context.Context, timeout time.Duration) ORM {
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	// the cancel func is released once the deadline fires or the parent ends
	go func() {
		<-timeoutCtx.Done()
		cancel()
	}()
	tx := d.DB.WithContext(timeoutCtx)
	d.DB = tx
	return &d
}

func (d DB) Transaction(f func(ORM) error, opts ...*sql.TxOptions) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		return f(&DB{tx, d.autoMigrationEnabled, d.timeout})
	}, opts...)
}

// setSpanAttributes sets OpenTelemetry span attributes for database operations
func (d DB) setSpanAttributes(operation string) {
	if ctx := d.DB.Statement.Context; ctx != nil {
		if span := trace.SpanFromContext(ctx); span.IsRecording() {
			span.SetAttributes(
				attribute.String("span.kind", "client"),
				attribute.String("component", "database"),
				attribute.String("db.system", d.DB.Dialector.Name()),
				attribute.String("db.operation", operation),
			)
		}
	}
}
