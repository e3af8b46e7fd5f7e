package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	catalogDomain "tagback-server/internal/catalog/domain"
	"tagback-server/internal/catalog/persistence/internal"
	"tagback-server/internal/catalog/usecases"
	"tagback-server/internal/infra/pubsub"
	"tagback-server/internal/infra/sql"
	"tagback-server/internal/shared_kernel/avro"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	"time"
)

const _tagTypesTopic = "tag_types"

func NewTagTypeRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleTagTypeRepository, error) {
	publisher, err := publisherFactory.New(_tagTypesTopic, &avro.AvroTagType{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.TagType{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleTagTypeRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.TagTypeRepository = (*SimpleTagTypeRepository)(nil)

type SimpleTagTypeRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleTagTypeRepository) Create(ctx context.Context, tagType catalogDomain.TagType) error {
	entity := internal.FromTagType(tagType)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrDuplicateSlug
	}
	if err != nil {
		return fmt.Errorf("creating tag type in database: %w", err)
	}

	r.publish(ctx, convertToAvroTagType(tagType))
	return nil
}

func (r *SimpleTagTypeRepository) GetByID(ctx context.Context, id shareddomain.ID) (catalogDomain.TagType, error) {
	var entity internal.TagType
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return catalogDomain.TagType{}, usecases.ErrTagTypeNotFound
	}

	if err != nil {
		return catalogDomain.TagType{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleTagTypeRepository) GetBySlug(ctx context.Context, slug shareddomain.Slug) (catalogDomain.TagType, error) {
	var entity internal.TagType
	err := r.orm.
		WithContext(ctx).
		First(&entity, "slug = ?", slug.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return catalogDomain.TagType{}, usecases.ErrTagTypeNotFound
	}

	if err != nil {
		return catalogDomain.TagType{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleTagTypeRepository) FindAll(ctx context.Context, activeOnly bool) ([]catalogDomain.TagType, error) {
	query := r.orm.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var entities []internal.TagType
	err := query.
		Order("sort_order ASC, name ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]catalogDomain.TagType, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleTagTypeRepository) Update(ctx context.Context, tagType catalogDomain.TagType) error {
	entity := internal.FromTagType(tagType)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating tag type in database: %w", err)
	}

	r.publish(ctx, convertToAvroTagType(tagType))
	return nil
}

// Delete removes the row and announces the tag type as inactive so consumers
// stop offering it.
func (r *SimpleTagTypeRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	tagType, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = r.orm.WithContext(ctx).Delete(&internal.TagType{}, "id = ?", id.String()).Error()
	if err != nil {
		return fmt.Errorf("deleting tag type from database: %w", err)
	}

	tagType.IsActive = false
	tagType.UpdatedAt = time.Now()
	r.publish(ctx, convertToAvroTagType(tagType))
	return nil
}

func (r *SimpleTagTypeRepository) publish(ctx context.Context, message *avro.AvroTagType) {
	slog.Debug("publishing tag type to pubsub", slog.String("tag_type_id", message.ID))
	if err := r.publisher.Publish(ctx, pubsub.Key(message.ID), message); err != nil {
		slog.Error("publishing tag type", slog.String("tag_type_id", message.ID), slog.String("error", err.Error()))
	}
}

func convertToAvroTagType(tagType catalogDomain.TagType) *avro.AvroTagType {
	return &avro.AvroTagType{
		ID:         tagType.ID.String(),
		Slug:       tagType.Slug.String(),
		Name:       string(tagType.Name),
		IsActive:   tagType.IsActive,
		FieldCount: len(tagType.Fields()),
		SortOrder:  tagType.SortOrder,
		CreatedAt:  tagType.CreatedAt,
		UpdatedAt:  tagType.UpdatedAt,
	}
}
