package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"tagback-server/internal/infra/pubsub"
	"tagback-server/internal/infra/sql"
	"tagback-server/internal/infra/utils"
	"tagback-server/internal/shared_kernel/avro"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	tagsDomain "tagback-server/internal/tags/domain"
	"tagback-server/internal/tags/persistence/internal"
	"tagback-server/internal/tags/usecases"
)

const _tagsTopic = "tags"

func NewTagRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleTagRepository, error) {
	publisher, err := publisherFactory.New(_tagsTopic, &avro.AvroTag{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.Tag{}, &internal.TagScan{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleTagRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.TagRepository = (*SimpleTagRepository)(nil)

type SimpleTagRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleTagRepository) Create(ctx context.Context, tag tagsDomain.Tag) error {
	entity := internal.FromTag(tag)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrDuplicateCode
	}
	if err != nil {
		return fmt.Errorf("creating tag in database: %w", err)
	}

	r.publish(ctx, tag)
	return nil
}

func (r *SimpleTagRepository) ExistsByCode(ctx context.Context, code tagsDomain.Code) (bool, error) {
	var count int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Tag{}).
		Where("code = ?", code.String()).
		Count(&count).
		Error()
	if err != nil {
		return false, fmt.Errorf("database query: %w", err)
	}

	return count > 0, nil
}

func (r *SimpleTagRepository) GetByCode(ctx context.Context, code tagsDomain.Code) (tagsDomain.Tag, error) {
	var entity internal.Tag
	err := r.orm.
		WithContext(ctx).
		First(&entity, "code = ?", code.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return tagsDomain.Tag{}, usecases.ErrTagNotFound
	}

	if err != nil {
		return tagsDomain.Tag{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleTagRepository) FindAllByItem(ctx context.Context, itemID shareddomain.ID) ([]tagsDomain.Tag, error) {
	var entities []internal.Tag
	err := r.orm.
		WithContext(ctx).
		Where("item_id = ?", itemID.String()).
		Order("claimed_at ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]tagsDomain.Tag, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

// Claim only touches rows that are still issued, so of two concurrent claims
// exactly one wins.
func (r *SimpleTagRepository) Claim(ctx context.Context, tag tagsDomain.Tag) error {
	tx := r.orm.
		WithContext(ctx).
		Model(&internal.Tag{}).
		Where("id = ? AND status = ?", tag.ID.String(), string(tagsDomain.TagStatusIssued)).
		Updates(map[string]any{
			"status":     string(tag.Status),
			"item_id":    tag.ItemID.String(),
			"owner_id":   tag.OwnerID.String(),
			"claimed_at": tag.ClaimedAt,
		})
	if err := tx.Error(); err != nil {
		return fmt.Errorf("claiming tag in database: %w", err)
	}
	if tx.RowsAffected() == 0 {
		return tagsDomain.ErrTagAlreadyLinked
	}

	r.publish(ctx, tag)
	return nil
}

func (r *SimpleTagRepository) Release(ctx context.Context, tag tagsDomain.Tag) error {
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Tag{}).
		Where("id = ?", tag.ID.String()).
		Updates(releasedColumns()).
		Error()
	if err != nil {
		return fmt.Errorf("releasing tag in database: %w", err)
	}

	r.publish(ctx, tag)
	return nil
}

func (r *SimpleTagRepository) ReleaseAllByItem(ctx context.Context, itemID shareddomain.ID) (int, error) {
	linked, err := r.FindAllByItem(ctx, itemID)
	if err != nil {
		return 0, err
	}
	if len(linked) == 0 {
		return 0, nil
	}

	tx := r.orm.
		WithContext(ctx).
		Model(&internal.Tag{}).
		Where("item_id = ?", itemID.String()).
		Updates(releasedColumns())
	if err := tx.Error(); err != nil {
		return 0, fmt.Errorf("releasing item tags in database: %w", err)
	}

	for _, tag := range linked {
		if err := tag.Release(itemID); err == nil {
			r.publish(ctx, tag)
		}
	}

	return int(tx.RowsAffected()), nil
}

func (r *SimpleTagRepository) ReconcileScanCounts(ctx context.Context) (int64, error) {
	tx := r.orm.
		WithContext(ctx).
		Exec(`UPDATE tags SET scan_count = (SELECT COUNT(*) FROM tag_scans WHERE tag_scans.tag_id = tags.id)`)
	if err := tx.Error(); err != nil {
		return 0, fmt.Errorf("reconciling scan counts: %w", err)
	}

	return tx.RowsAffected(), nil
}

func (r *SimpleTagRepository) publish(ctx context.Context, tag tagsDomain.Tag) {
	message := &avro.AvroTag{
		Code:      tag.Code.String(),
		Status:    string(tag.Status),
		ItemID:    utils.StringPtr(tag.ItemID.String()),
		Batch:     utils.StringPtr(tag.Batch),
		ScanCount: tag.ScanCount,
		IssuedAt:  tag.IssuedAt,
		ClaimedAt: tag.ClaimedAt,
	}

	slog.Debug("publishing tag to pubsub", slog.String("code", message.Code))
	if err := r.publisher.Publish(ctx, pubsub.Key(message.Code), message); err != nil {
		slog.Error("publishing tag", slog.String("code", message.Code), slog.String("error", err.Error()))
	}
}

func releasedColumns() map[string]any {
	return map[string]any{
		"status":     string(tagsDomain.TagStatusIssued),
		"item_id":    nil,
		"owner_id":   nil,
		"claimed_at": nil,
	}
}
