package usecases

import (
	"context"
	"errors"
	catalogDomain "tagback-server/internal/catalog/domain"
	itemsDomain "tagback-server/internal/items/domain"
	shareddomain "tagback-server/internal/shared_kernel/domain"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrForbidden    = errors.New("item belongs to another owner")
)

type Pagination struct {
	Limit  int
	Offset int
}

type ItemRepository interface {
	Create(ctx context.Context, item itemsDomain.Item) error
	GetByID(ctx context.Context, id shareddomain.ID) (itemsDomain.Item, error)
	FindAllByOwner(ctx context.Context, ownerID shareddomain.ID, pagination Pagination) ([]itemsDomain.Item, int, error)
	Update(ctx context.Context, item itemsDomain.Item) error
	Delete(ctx context.Context, id shareddomain.ID) error
	CountItemsByTagType(ctx context.Context, tagTypeID shareddomain.ID) (int64, error)
}

// TagTypeReader is the part of the catalog items depend on.
type TagTypeReader interface {
	GetTagType(ctx context.Context, id shareddomain.ID) (catalogDomain.TagType, error)
}

// TagReleaser dissociates the physical tags of a deleted item.
type TagReleaser interface {
	ReleaseItemTags(ctx context.Context, itemID shareddomain.ID) (int, error)
}
