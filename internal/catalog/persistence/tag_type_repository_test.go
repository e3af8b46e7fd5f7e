package persistence_test

import (
	"context"
	catalogDomain "tagback-server/internal/catalog/domain"
	catalogPersistence "tagback-server/internal/catalog/persistence"
	catalogUsecases "tagback-server/internal/catalog/usecases"
	"tagback-server/internal/infra/pubsub"
	"tagback-server/internal/infra/sql"
	"tagback-server/internal/shared_kernel/avro"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("TagTypeRepository", func() {
	var (
		ctx       context.Context
		orm       sql.ORM
		repo      catalogUsecases.TagTypeRepository
		published chan *avro.AvroTagType
		subID     int
	)

	ginkgo.BeforeEach(func() {
		var err error
		ctx = context.Background()
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		published = make(chan *avro.AvroTagType, 10)
		subID = pubsub.GetMemoryBroker().Subscribe("tag_types", "catalog-test", func(_ context.Context, _ pubsub.Key, message pubsub.Prototype) error {
			if tagType, ok := message.(*avro.AvroTagType); ok {
				published <- tagType
			}
			return nil
		})

		repo, err = catalogPersistence.NewTagTypeRepository(pubsub.NewMemoryPublisherFactory(), orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})

	ginkgo.AfterEach(func() {
		pubsub.GetMemoryBroker().Unsubscribe("tag_types", subID)
	})

	ginkgo.It("should round trip field groups and default visibility", func() {
		tagType, ok := catalogDomain.NewPredefinedTagType(catalogDomain.TagTypePet)
		gomega.Expect(ok).To(gomega.BeTrue())

		gomega.Expect(repo.Create(ctx, tagType)).To(gomega.Succeed())

		stored, err := repo.GetByID(ctx, tagType.ID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(stored.Slug).To(gomega.Equal(tagType.Slug))
		gomega.Expect(stored.FieldGroups).To(gomega.Equal(tagType.FieldGroups))
		gomega.Expect(stored.DefaultVisibility).To(gomega.Equal(tagType.DefaultVisibility))

		bySlug, err := repo.GetBySlug(ctx, "pet")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(bySlug.ID).To(gomega.Equal(tagType.ID))
	})

	ginkgo.It("should publish the tag type after writes", func() {
		tagType, _ := catalogDomain.NewPredefinedTagType(catalogDomain.TagTypeKeys)

		gomega.Expect(repo.Create(ctx, tagType)).To(gomega.Succeed())

		var message *avro.AvroTagType
		gomega.Eventually(published).WithTimeout(time.Second).Should(gomega.Receive(&message))
		gomega.Expect(message.Slug).To(gomega.Equal("keys"))
		gomega.Expect(message.FieldCount).To(gomega.Equal(1))
	})

	ginkgo.It("should map unique slug violations", func() {
		first, _ := catalogDomain.NewPredefinedTagType(catalogDomain.TagTypePet)
		second, _ := catalogDomain.NewPredefinedTagType(catalogDomain.TagTypePet)

		gomega.Expect(repo.Create(ctx, first)).To(gomega.Succeed())

		gomega.Expect(repo.Create(ctx, second)).To(gomega.MatchError(catalogUsecases.ErrDuplicateSlug))
	})

	ginkgo.It("should report missing tag types", func() {
		_, err := repo.GetByID(ctx, shareddomain.ID("missing"))
		gomega.Expect(err).To(gomega.MatchError(catalogUsecases.ErrTagTypeNotFound))

		_, err = repo.GetBySlug(ctx, "missing")
		gomega.Expect(err).To(gomega.MatchError(catalogUsecases.ErrTagTypeNotFound))

		gomega.Expect(repo.Delete(ctx, shareddomain.ID("missing"))).To(gomega.MatchError(catalogUsecases.ErrTagTypeNotFound))
	})

	ginkgo.It("should list ordered and filter inactive ones", func() {
		for _, slug := range []string{catalogDomain.TagTypeChecklist, catalogDomain.TagTypePet, catalogDomain.TagTypeLuggage} {
			tagType, _ := catalogDomain.NewPredefinedTagType(slug)
			if slug == catalogDomain.TagTypeLuggage {
				tagType.IsActive = false
			}
			gomega.Expect(repo.Create(ctx, tagType)).To(gomega.Succeed())
		}

		all, err := repo.FindAll(ctx, false)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(all).To(gomega.HaveLen(3))
		gomega.Expect(all[0].Slug).To(gomega.Equal(shareddomain.Slug("pet")))
		gomega.Expect(all[1].Slug).To(gomega.Equal(shareddomain.Slug("luggage")))
		gomega.Expect(all[2].Slug).To(gomega.Equal(shareddomain.Slug("checklist")))

		active, err := repo.FindAll(ctx, true)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(active).To(gomega.HaveLen(2))
	})

	ginkgo.It("should update and delete", func() {
		tagType, _ := catalogDomain.NewPredefinedTagType(catalogDomain.TagTypeKeys)
		gomega.Expect(repo.Create(ctx, tagType)).To(gomega.Succeed())

		tagType.Deactivate()
		gomega.Expect(repo.Update(ctx, tagType)).To(gomega.Succeed())

		stored, err := repo.GetByID(ctx, tagType.ID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(stored.IsActive).To(gomega.BeFalse())

		gomega.Expect(repo.Delete(ctx, tagType.ID)).To(gomega.Succeed())
		_, err = repo.GetByID(ctx, tagType.ID)
		gomega.Expect(err).To(gomega.MatchError(catalogUsecases.ErrTagTypeNotFound))
	})
})
