package persistence

import (
	"context"
	"fmt"
	catalogDomain "tagback-server/internal/catalog/domain"
	"tagback-server/internal/catalog/usecases"
	"tagback-server/internal/infra/cache"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	"time"
)

const (
	_tagTypeByIDKey     = "tag_type:id:%s"
	_tagTypeBySlugKey   = "tag_type:slug:%s"
	_allTagTypesKey     = "tag_types:all"
	_activeTagTypesKey  = "tag_types:active"
	_defaultTagTypesTTL = 5 * time.Minute
)

// NewCachedTagTypeRepository serves registry reads from c and invalidates on
// every write. A reader may observe a tag type one write behind when several
// instances share no cache.
func NewCachedTagTypeRepository(repository usecases.TagTypeRepository, c cache.Cache, ttl time.Duration) *CachedTagTypeRepository {
	if ttl <= 0 {
		ttl = _defaultTagTypesTTL
	}
	return &CachedTagTypeRepository{
		repository: repository,
		cache:      c,
		ttl:        ttl,
	}
}

var _ usecases.TagTypeRepository = (*CachedTagTypeRepository)(nil)

type CachedTagTypeRepository struct {
	repository usecases.TagTypeRepository
	cache      cache.Cache
	ttl        time.Duration
}

func (r *CachedTagTypeRepository) Create(ctx context.Context, tagType catalogDomain.TagType) error {
	if err := r.repository.Create(ctx, tagType); err != nil {
		return err
	}
	r.invalidate(ctx, tagType)
	return nil
}

func (r *CachedTagTypeRepository) GetByID(ctx context.Context, id shareddomain.ID) (catalogDomain.TagType, error) {
	return cache.Load(ctx, r.cache, fmt.Sprintf(_tagTypeByIDKey, id), r.ttl, func() (catalogDomain.TagType, error) {
		return r.repository.GetByID(ctx, id)
	})
}

func (r *CachedTagTypeRepository) GetBySlug(ctx context.Context, slug shareddomain.Slug) (catalogDomain.TagType, error) {
	return cache.Load(ctx, r.cache, fmt.Sprintf(_tagTypeBySlugKey, slug), r.ttl, func() (catalogDomain.TagType, error) {
		return r.repository.GetBySlug(ctx, slug)
	})
}

func (r *CachedTagTypeRepository) FindAll(ctx context.Context, activeOnly bool) ([]catalogDomain.TagType, error) {
	key := _allTagTypesKey
	if activeOnly {
		key = _activeTagTypesKey
	}
	return cache.Load(ctx, r.cache, key, r.ttl, func() ([]catalogDomain.TagType, error) {
		return r.repository.FindAll(ctx, activeOnly)
	})
}

func (r *CachedTagTypeRepository) Update(ctx context.Context, tagType catalogDomain.TagType) error {
	if err := r.repository.Update(ctx, tagType); err != nil {
		return err
	}
	r.invalidate(ctx, tagType)
	return nil
}

func (r *CachedTagTypeRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	tagType, err := r.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.repository.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, tagType)
	return nil
}

func (r *CachedTagTypeRepository) invalidate(ctx context.Context, tagType catalogDomain.TagType) {
	r.cache.Delete(ctx,
		fmt.Sprintf(_tagTypeByIDKey, tagType.ID),
		fmt.Sprintf(_tagTypeBySlugKey, tagType.Slug),
		_allTagTypesKey,
		_activeTagTypesKey,
	)
}
