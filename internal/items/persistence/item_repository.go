package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"tagback-server/internal/infra/pubsub"
	"tagback-server/internal/infra/sql"
	itemsDomain "tagback-server/internal/items/domain"
	"tagback-server/internal/items/persistence/internal"
	"tagback-server/internal/items/usecases"
	"tagback-server/internal/shared_kernel/avro"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	"time"
)

const _itemsTopic = "items"

func NewItemRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleItemRepository, error) {
	publisher, err := publisherFactory.New(_itemsTopic, &avro.AvroItem{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.Item{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleItemRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.ItemRepository = (*SimpleItemRepository)(nil)

type SimpleItemRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleItemRepository) Create(ctx context.Context, item itemsDomain.Item) error {
	entity := internal.FromItem(item)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating item in database: %w", err)
	}

	r.publish(ctx, convertToAvroItem(item, nil))
	return nil
}

func (r *SimpleItemRepository) GetByID(ctx context.Context, id shareddomain.ID) (itemsDomain.Item, error) {
	var entity internal.Item
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return itemsDomain.Item{}, usecases.ErrItemNotFound
	}

	if err != nil {
		return itemsDomain.Item{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleItemRepository) FindAllByOwner(
	ctx context.Context,
	ownerID shareddomain.ID,
	pagination usecases.Pagination,
) ([]itemsDomain.Item, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Item{}).
		Where("owner_id = ?", ownerID.String()).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("counting items: %w", err)
	}

	var entities []internal.Item
	err = r.orm.
		WithContext(ctx).
		Where("owner_id = ?", ownerID.String()).
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]itemsDomain.Item, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleItemRepository) Update(ctx context.Context, item itemsDomain.Item) error {
	entity := internal.FromItem(item)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating item in database: %w", err)
	}

	r.publish(ctx, convertToAvroItem(item, nil))
	return nil
}

func (r *SimpleItemRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	item, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = r.orm.WithContext(ctx).Delete(&internal.Item{}, "id = ?", id.String()).Error()
	if err != nil {
		return fmt.Errorf("deleting item from database: %w", err)
	}

	deletedAt := time.Now()
	r.publish(ctx, convertToAvroItem(item, &deletedAt))
	return nil
}

// CountItemsByTagType tells the catalog whether a tag type is still in use.
func (r *SimpleItemRepository) CountItemsByTagType(ctx context.Context, tagTypeID shareddomain.ID) (int64, error) {
	var count int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Item{}).
		Where("tag_type_id = ?", tagTypeID.String()).
		Count(&count).
		Error()
	if err != nil {
		return 0, fmt.Errorf("counting items by tag type: %w", err)
	}

	return count, nil
}

func (r *SimpleItemRepository) publish(ctx context.Context, message *avro.AvroItem) {
	slog.Debug("publishing item to pubsub", slog.String("item_id", message.ID))
	if err := r.publisher.Publish(ctx, pubsub.Key(message.ID), message); err != nil {
		slog.Error("publishing item", slog.String("item_id", message.ID), slog.String("error", err.Error()))
	}
}

func convertToAvroItem(item itemsDomain.Item, deletedAt *time.Time) *avro.AvroItem {
	return &avro.AvroItem{
		ID:        item.ID.String(),
		OwnerID:   item.OwnerID.String(),
		TagTypeID: item.TagTypeID.String(),
		Name:      string(item.Name),
		IsActive:  deletedAt == nil,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
