package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"tagback-server/internal/infra/pubsub"
	"tagback-server/internal/infra/sql"
	"tagback-server/internal/shared_kernel/avro"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	tagsDomain "tagback-server/internal/tags/domain"
	"tagback-server/internal/tags/persistence/internal"
	"tagback-server/internal/tags/usecases"
)

const _tagScansTopic = "tag_scans"

func NewScanRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleScanRepository, error) {
	publisher, err := publisherFactory.New(_tagScansTopic, &avro.AvroTagScan{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.Tag{}, &internal.TagScan{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleScanRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.ScanRepository = (*SimpleScanRepository)(nil)

type SimpleScanRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleScanRepository) Record(ctx context.Context, scan tagsDomain.Scan) error {
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		return r.RecordWithin(ctx, tx, scan)
	})
	if err != nil {
		return err
	}

	r.Publish(ctx, scan)
	return nil
}

// RecordWithin writes the scan and bumps its tag's counters using the given
// transaction. Callers publish once their transaction has committed.
func (r *SimpleScanRepository) RecordWithin(ctx context.Context, tx sql.ORM, scan tagsDomain.Scan) error {
	entity := internal.FromScan(scan)
	if err := tx.WithContext(ctx).Create(&entity).Error(); err != nil {
		return fmt.Errorf("creating scan in database: %w", err)
	}

	updated := tx.
		WithContext(ctx).
		Model(&internal.Tag{}).
		Where("id = ?", scan.TagID.String()).
		Updates(map[string]any{
			"scan_count":      sql.Expr("scan_count + ?", 1),
			"last_scanned_at": scan.CreatedAt,
		})
	if err := updated.Error(); err != nil {
		return fmt.Errorf("incrementing scan count: %w", err)
	}
	if updated.RowsAffected() == 0 {
		return usecases.ErrTagNotFound
	}

	return nil
}

func (r *SimpleScanRepository) FindAllByItem(
	ctx context.Context,
	itemID shareddomain.ID,
	pagination usecases.Pagination,
) ([]tagsDomain.Scan, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.TagScan{}).
		Where("item_id = ?", itemID.String()).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("counting scans: %w", err)
	}

	var entities []internal.TagScan
	err = r.orm.
		WithContext(ctx).
		Where("item_id = ?", itemID.String()).
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]tagsDomain.Scan, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleScanRepository) Publish(ctx context.Context, scan tagsDomain.Scan) {
	message := &avro.AvroTagScan{
		ID:        scan.ID.String(),
		Code:      scan.Code.String(),
		ItemID:    scan.ItemID.String(),
		Kind:      string(scan.Kind),
		ScannedAt: scan.CreatedAt,
	}
	if scan.Location != nil {
		message.Latitude = &scan.Location.Latitude
		message.Longitude = &scan.Location.Longitude
	}

	slog.Debug("publishing tag scan to pubsub", slog.String("scan_id", message.ID))
	if err := r.publisher.Publish(ctx, pubsub.Key(message.ItemID), message); err != nil {
		slog.Error("publishing tag scan", slog.String("scan_id", message.ID), slog.String("error", err.Error()))
	}
}
