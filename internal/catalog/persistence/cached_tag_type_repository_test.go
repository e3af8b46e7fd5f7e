package persistence_test

import (
	"context"
	catalogDomain "tagback-server/internal/catalog/domain"
	catalogPersistence "tagback-server/internal/catalog/persistence"
	catalogUsecases "tagback-server/internal/catalog/usecases"
	"tagback-server/internal/infra/cache"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type countingTagTypeRepository struct {
	tagTypes map[shareddomain.ID]catalogDomain.TagType
	reads    int
}

func (r *countingTagTypeRepository) Create(ctx context.Context, tagType catalogDomain.TagType) error {
	r.tagTypes[tagType.ID] = tagType
	return nil
}

func (r *countingTagTypeRepository) GetByID(ctx context.Context, id shareddomain.ID) (catalogDomain.TagType, error) {
	r.reads++
	tagType, ok := r.tagTypes[id]
	if !ok {
		return catalogDomain.TagType{}, catalogUsecases.ErrTagTypeNotFound
	}
	return tagType, nil
}

func (r *countingTagTypeRepository) GetBySlug(ctx context.Context, slug shareddomain.Slug) (catalogDomain.TagType, error) {
	r.reads++
	for _, tagType := range r.tagTypes {
		if tagType.Slug == slug {
			return tagType, nil
		}
	}
	return catalogDomain.TagType{}, catalogUsecases.ErrTagTypeNotFound
}

func (r *countingTagTypeRepository) FindAll(ctx context.Context, activeOnly bool) ([]catalogDomain.TagType, error) {
	r.reads++
	result := make([]catalogDomain.TagType, 0)
	for _, tagType := range r.tagTypes {
		if !activeOnly || tagType.IsActive {
			result = append(result, tagType)
		}
	}
	return result, nil
}

func (r *countingTagTypeRepository) Update(ctx context.Context, tagType catalogDomain.TagType) error {
	r.tagTypes[tagType.ID] = tagType
	return nil
}

func (r *countingTagTypeRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	delete(r.tagTypes, id)
	return nil
}

var _ = ginkgo.Describe("CachedTagTypeRepository", func() {
	var (
		ctx     context.Context
		backing *countingTagTypeRepository
		store   *cache.RistrettoCache
		repo    *catalogPersistence.CachedTagTypeRepository
		tagType catalogDomain.TagType
	)

	ginkgo.BeforeEach(func() {
		var err error
		ctx = context.Background()
		backing = &countingTagTypeRepository{tagTypes: make(map[shareddomain.ID]catalogDomain.TagType)}
		store, err = cache.New(nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		repo = catalogPersistence.NewCachedTagTypeRepository(backing, store, time.Minute)

		tagType, _ = catalogDomain.NewPredefinedTagType(catalogDomain.TagTypePet)
		gomega.Expect(repo.Create(ctx, tagType)).To(gomega.Succeed())
	})

	ginkgo.AfterEach(func() {
		store.Close()
	})

	ginkgo.It("should serve repeated reads from the cache", func() {
		first, err := repo.GetByID(ctx, tagType.ID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		second, err := repo.GetByID(ctx, tagType.ID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		gomega.Expect(backing.reads).To(gomega.Equal(1))
		gomega.Expect(second.Slug).To(gomega.Equal(first.Slug))
		gomega.Expect(second.Fields()).To(gomega.Equal(first.Fields()))
	})

	ginkgo.It("should invalidate on update", func() {
		_, err := repo.GetBySlug(ctx, tagType.Slug)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		_, err = repo.FindAll(ctx, true)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		tagType.Deactivate()
		gomega.Expect(repo.Update(ctx, tagType)).To(gomega.Succeed())

		stored, err := repo.GetBySlug(ctx, tagType.Slug)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(stored.IsActive).To(gomega.BeFalse())

		active, err := repo.FindAll(ctx, true)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(active).To(gomega.BeEmpty())
	})

	ginkgo.It("should not cache misses", func() {
		_, err := repo.GetByID(ctx, shareddomain.ID("missing"))
		gomega.Expect(err).To(gomega.MatchError(catalogUsecases.ErrTagTypeNotFound))
		_, err = repo.GetByID(ctx, shareddomain.ID("missing"))
		gomega.Expect(err).To(gomega.MatchError(catalogUsecases.ErrTagTypeNotFound))

		gomega.Expect(backing.reads).To(gomega.Equal(2))
	})

	ginkgo.It("should invalidate on delete", func() {
		_, err := repo.GetByID(ctx, tagType.ID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		gomega.Expect(repo.Delete(ctx, tagType.ID)).To(gomega.Succeed())

		_, err = repo.GetByID(ctx, tagType.ID)
		gomega.Expect(err).To(gomega.MatchError(catalogUsecases.ErrTagTypeNotFound))
	})
})
