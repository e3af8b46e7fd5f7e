package usecases

//go:generate mockgen -source=./item_service.go -destination=../../../test/unit/doubles/items/usecases/item_service_mock.go -package=usecases -mock_names=ItemService=MockItemService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	catalogDomain "tagback-server/internal/catalog/domain"
	catalogUsecases "tagback-server/internal/catalog/usecases"
	itemsDomain "tagback-server/internal/items/domain"
	shareddomain "tagback-server/internal/shared_kernel/domain"
)

// ResolvedItem is an item together with the tag type it was written against
// and what a stranger may see of it.
type ResolvedItem struct {
	Item    itemsDomain.Item
	TagType catalogDomain.TagType
	View    itemsDomain.PublicView
}

func (r ResolvedItem) IsChecklist() bool {
	return r.TagType.IsChecklist()
}

type ItemService interface {
	CreateItem(ctx context.Context, item itemsDomain.Item) (itemsDomain.Item, error)
	GetItem(ctx context.Context, ownerID, id shareddomain.ID) (itemsDomain.Item, error)
	ListItems(ctx context.Context, ownerID shareddomain.ID, pagination Pagination) ([]itemsDomain.Item, int, error)
	UpdateItem(ctx context.Context, ownerID, id shareddomain.ID, update itemsDomain.ItemUpdate) (itemsDomain.Item, error)
	DeleteItem(ctx context.Context, ownerID, id shareddomain.ID) error
	ResolveItem(ctx context.Context, id shareddomain.ID) (ResolvedItem, error)
}

func NewItemService(repository ItemRepository, tagTypes TagTypeReader, tags TagReleaser) *SimpleItemService {
	return &SimpleItemService{
		repository: repository,
		tagTypes:   tagTypes,
		tags:       tags,
	}
}

var _ ItemService = (*SimpleItemService)(nil)

type SimpleItemService struct {
	repository ItemRepository
	tagTypes   TagTypeReader
	tags       TagReleaser
}

// CreateItem pins the item to an active tag type and stores it only when its
// data satisfies every field of that tag type.
func (s *SimpleItemService) CreateItem(ctx context.Context, item itemsDomain.Item) (itemsDomain.Item, error) {
	tagType, err := s.tagTypes.GetTagType(ctx, item.TagTypeID)
	if err != nil {
		return itemsDomain.Item{}, fmt.Errorf("getting tag type: %w", err)
	}
	if !tagType.IsActive {
		return itemsDomain.Item{}, catalogUsecases.ErrTagTypeInactive
	}

	data, err := itemsDomain.Validate(tagType, item.Data)
	if err != nil {
		return itemsDomain.Item{}, err
	}
	item.Data = data

	if err := s.repository.Create(ctx, item); err != nil {
		slog.Error("creating item", slog.String("error", err.Error()))
		return itemsDomain.Item{}, fmt.Errorf("creating item: %w", err)
	}

	slog.Info("item created successfully",
		slog.String("id", item.ID.String()),
		slog.String("owner_id", item.OwnerID.String()),
		slog.String("tag_type", tagType.Slug.String()))

	return item, nil
}

func (s *SimpleItemService) GetItem(ctx context.Context, ownerID, id shareddomain.ID) (itemsDomain.Item, error) {
	item, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return itemsDomain.Item{}, ErrItemNotFound
		}
		return itemsDomain.Item{}, fmt.Errorf("getting item: %w", err)
	}

	if !item.IsOwnedBy(ownerID) {
		return itemsDomain.Item{}, ErrForbidden
	}

	return item, nil
}

func (s *SimpleItemService) ListItems(ctx context.Context, ownerID shareddomain.ID, pagination Pagination) ([]itemsDomain.Item, int, error) {
	items, total, err := s.repository.FindAllByOwner(ctx, ownerID, pagination)
	if err != nil {
		slog.Error("listing items", slog.String("owner_id", ownerID.String()), slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing items: %w", err)
	}

	return items, total, nil
}

// UpdateItem revalidates the whole item against its pinned tag type, even
// when that tag type has since been deactivated or changed.
func (s *SimpleItemService) UpdateItem(
	ctx context.Context,
	ownerID, id shareddomain.ID,
	update itemsDomain.ItemUpdate,
) (itemsDomain.Item, error) {
	item, err := s.GetItem(ctx, ownerID, id)
	if err != nil {
		return itemsDomain.Item{}, err
	}

	updated, err := item.Apply(update)
	if err != nil {
		return itemsDomain.Item{}, err
	}

	tagType, err := s.tagTypes.GetTagType(ctx, updated.TagTypeID)
	if err != nil {
		return itemsDomain.Item{}, fmt.Errorf("getting tag type: %w", err)
	}

	data, err := itemsDomain.Validate(tagType, updated.Data)
	if err != nil {
		return itemsDomain.Item{}, err
	}
	updated.Data = data

	if err := s.repository.Update(ctx, updated); err != nil {
		slog.Error("updating item", slog.String("id", id.String()), slog.String("error", err.Error()))
		return itemsDomain.Item{}, fmt.Errorf("updating item: %w", err)
	}

	return updated, nil
}

func (s *SimpleItemService) DeleteItem(ctx context.Context, ownerID, id shareddomain.ID) error {
	if _, err := s.GetItem(ctx, ownerID, id); err != nil {
		return err
	}

	released, err := s.tags.ReleaseItemTags(ctx, id)
	if err != nil {
		return fmt.Errorf("releasing item tags: %w", err)
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		slog.Error("deleting item", slog.String("id", id.String()), slog.String("error", err.Error()))
		return fmt.Errorf("deleting item: %w", err)
	}

	slog.Info("item deleted successfully",
		slog.String("id", id.String()),
		slog.Int("released_tags", released))

	return nil
}

// ResolveItem loads an item without an ownership check and resolves the view
// for a stranger, using the checklist view for checklist tag types.
func (s *SimpleItemService) ResolveItem(ctx context.Context, id shareddomain.ID) (ResolvedItem, error) {
	item, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return ResolvedItem{}, ErrItemNotFound
		}
		return ResolvedItem{}, fmt.Errorf("getting item: %w", err)
	}

	tagType, err := s.tagTypes.GetTagType(ctx, item.TagTypeID)
	if err != nil {
		return ResolvedItem{}, fmt.Errorf("getting tag type: %w", err)
	}

	resolved := ResolvedItem{Item: item, TagType: tagType}
	if tagType.IsChecklist() {
		resolved.View = itemsDomain.ResolveChecklistView(tagType, item)
	} else {
		resolved.View = itemsDomain.ResolvePublicView(tagType, item)
	}

	return resolved, nil
}
