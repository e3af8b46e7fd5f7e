package usecases_test

import (
	"context"
	"slices"
	catalogDomain "tagback-server/internal/catalog/domain"
	catalogUsecases "tagback-server/internal/catalog/usecases"
	itemsDomain "tagback-server/internal/items/domain"
	itemsUsecases "tagback-server/internal/items/usecases"
	shareddomain "tagback-server/internal/shared_kernel/domain"
)

type fakeItemRepository struct {
	items map[string]itemsDomain.Item

	createCalled bool
	updateCalled bool
	deleteCalled bool
	createError  error
}

func newFakeItemRepository() *fakeItemRepository {
	return &fakeItemRepository{items: make(map[string]itemsDomain.Item)}
}

func (f *fakeItemRepository) Create(ctx context.Context, item itemsDomain.Item) error {
	f.createCalled = true
	if f.createError != nil {
		return f.createError
	}
	f.items[item.ID.String()] = item
	return nil
}

func (f *fakeItemRepository) GetByID(ctx context.Context, id shareddomain.ID) (itemsDomain.Item, error) {
	if item, ok := f.items[id.String()]; ok {
		return item, nil
	}
	return itemsDomain.Item{}, itemsUsecases.ErrItemNotFound
}

func (f *fakeItemRepository) FindAllByOwner(ctx context.Context, ownerID shareddomain.ID, pagination itemsUsecases.Pagination) ([]itemsDomain.Item, int, error) {
	result := make([]itemsDomain.Item, 0)
	for _, item := range f.items {
		if item.OwnerID == ownerID {
			result = append(result, item)
		}
	}
	slices.SortFunc(result, func(a, b itemsDomain.Item) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	total := len(result)
	end := min(pagination.Offset+pagination.Limit, total)
	if pagination.Offset >= total {
		return []itemsDomain.Item{}, total, nil
	}
	return result[pagination.Offset:end], total, nil
}

func (f *fakeItemRepository) Update(ctx context.Context, item itemsDomain.Item) error {
	f.updateCalled = true
	f.items[item.ID.String()] = item
	return nil
}

func (f *fakeItemRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	f.deleteCalled = true
	delete(f.items, id.String())
	return nil
}

func (f *fakeItemRepository) CountItemsByTagType(ctx context.Context, tagTypeID shareddomain.ID) (int64, error) {
	var count int64
	for _, item := range f.items {
		if item.TagTypeID == tagTypeID {
			count++
		}
	}
	return count, nil
}

type fakeTagTypeReader struct {
	tagTypes map[string]catalogDomain.TagType
}

func (f *fakeTagTypeReader) GetTagType(ctx context.Context, id shareddomain.ID) (catalogDomain.TagType, error) {
	if tagType, ok := f.tagTypes[id.String()]; ok {
		return tagType, nil
	}
	return catalogDomain.TagType{}, catalogUsecases.ErrTagTypeNotFound
}

type fakeTagReleaser struct {
	released []shareddomain.ID
	err      error
}

func (f *fakeTagReleaser) ReleaseItemTags(ctx context.Context, itemID shareddomain.ID) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.released = append(f.released, itemID)
	return 1, nil
}
