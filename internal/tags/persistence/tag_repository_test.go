package persistence_test

import (
	"context"
	"tagback-server/internal/infra/pubsub"
	"tagback-server/internal/infra/sql"
	"tagback-server/internal/shared_kernel/avro"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	tagsDomain "tagback-server/internal/tags/domain"
	tagsPersistence "tagback-server/internal/tags/persistence"
	tagsUsecases "tagback-server/internal/tags/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("TagRepository", func() {
	var (
		ctx       context.Context
		orm       sql.ORM
		tags      *tagsPersistence.SimpleTagRepository
		scans     *tagsPersistence.SimpleScanRepository
		published chan *avro.AvroTag
		subID     int
	)

	ginkgo.BeforeEach(func() {
		var err error
		ctx = context.Background()
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		published = make(chan *avro.AvroTag, 20)
		subID = pubsub.GetMemoryBroker().Subscribe("tags", "tags-test", func(_ context.Context, _ pubsub.Key, message pubsub.Prototype) error {
			if tag, ok := message.(*avro.AvroTag); ok {
				published <- tag
			}
			return nil
		})

		tags, err = tagsPersistence.NewTagRepository(pubsub.NewMemoryPublisherFactory(), orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		scans, err = tagsPersistence.NewScanRepository(pubsub.NewMemoryPublisherFactory(), orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})

	ginkgo.AfterEach(func() {
		pubsub.GetMemoryBroker().Unsubscribe("tags", subID)
	})

	ginkgo.It("should store and find a tag by code", func() {
		tag := tagsDomain.NewTag("AB7K-3MQ9", "print-01")
		gomega.Expect(tags.Create(ctx, tag)).To(gomega.Succeed())

		stored, err := tags.GetByCode(ctx, "AB7K-3MQ9")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(stored.ID).To(gomega.Equal(tag.ID))
		gomega.Expect(stored.Status).To(gomega.Equal(tagsDomain.TagStatusIssued))
		gomega.Expect(stored.ItemID).To(gomega.BeEmpty())
		gomega.Expect(stored.Batch).To(gomega.Equal("print-01"))

		exists, err := tags.ExistsByCode(ctx, "AB7K-3MQ9")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(exists).To(gomega.BeTrue())

		var message *avro.AvroTag
		gomega.Eventually(published).Should(gomega.Receive(&message))
		gomega.Expect(message.Code).To(gomega.Equal("AB7K-3MQ9"))
		gomega.Expect(message.ItemID).To(gomega.BeNil())
	})

	ginkgo.It("should enforce code uniqueness", func() {
		gomega.Expect(tags.Create(ctx, tagsDomain.NewTag("AB7K-3MQ9", ""))).To(gomega.Succeed())

		err := tags.Create(ctx, tagsDomain.NewTag("AB7K-3MQ9", ""))
		gomega.Expect(err).To(gomega.MatchError(tagsUsecases.ErrDuplicateCode))
	})

	ginkgo.It("should report missing codes", func() {
		_, err := tags.GetByCode(ctx, "ZZZZ-ZZZZ")
		gomega.Expect(err).To(gomega.MatchError(tagsUsecases.ErrTagNotFound))

		exists, err := tags.ExistsByCode(ctx, "ZZZZ-ZZZZ")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(exists).To(gomega.BeFalse())
	})

	ginkgo.It("should let only the first claim win", func() {
		tag := tagsDomain.NewTag("AB7K-3MQ9", "")
		gomega.Expect(tags.Create(ctx, tag)).To(gomega.Succeed())

		first := tag
		gomega.Expect(first.Claim("owner-1", "item-1")).To(gomega.Succeed())
		second := tag
		gomega.Expect(second.Claim("owner-2", "item-2")).To(gomega.Succeed())

		gomega.Expect(tags.Claim(ctx, first)).To(gomega.Succeed())
		gomega.Expect(tags.Claim(ctx, second)).To(gomega.MatchError(tagsDomain.ErrTagAlreadyLinked))

		stored, err := tags.GetByCode(ctx, "AB7K-3MQ9")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(stored.ItemID).To(gomega.Equal(shareddomain.ID("item-1")))
		gomega.Expect(stored.ClaimedAt).NotTo(gomega.BeNil())
	})

	ginkgo.It("should release a single tag", func() {
		tag := tagsDomain.NewTag("AB7K-3MQ9", "")
		gomega.Expect(tags.Create(ctx, tag)).To(gomega.Succeed())
		gomega.Expect(tag.Claim("owner-1", "item-1")).To(gomega.Succeed())
		gomega.Expect(tags.Claim(ctx, tag)).To(gomega.Succeed())

		gomega.Expect(tag.Release("item-1")).To(gomega.Succeed())
		gomega.Expect(tags.Release(ctx, tag)).To(gomega.Succeed())

		stored, err := tags.GetByCode(ctx, "AB7K-3MQ9")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(stored.IsLinked()).To(gomega.BeFalse())
		gomega.Expect(stored.ClaimedAt).To(gomega.BeNil())
	})

	ginkgo.It("should release every tag of an item", func() {
		for _, code := range []tagsDomain.Code{"AB7K-3MQ9", "CD8M-4NP2", "EF9N-5PQ3"} {
			tag := tagsDomain.NewTag(code, "")
			gomega.Expect(tags.Create(ctx, tag)).To(gomega.Succeed())
			if code != "EF9N-5PQ3" {
				gomega.Expect(tag.Claim("owner-1", "item-1")).To(gomega.Succeed())
				gomega.Expect(tags.Claim(ctx, tag)).To(gomega.Succeed())
			}
		}

		linked, err := tags.FindAllByItem(ctx, "item-1")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(linked).To(gomega.HaveLen(2))

		released, err := tags.ReleaseAllByItem(ctx, "item-1")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(released).To(gomega.Equal(2))

		linked, err = tags.FindAllByItem(ctx, "item-1")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(linked).To(gomega.BeEmpty())
	})

	ginkgo.It("should recompute drifted scan counters", func() {
		tag := tagsDomain.NewTag("AB7K-3MQ9", "")
		gomega.Expect(tags.Create(ctx, tag)).To(gomega.Succeed())
		gomega.Expect(tag.Claim("owner-1", "item-1")).To(gomega.Succeed())
		gomega.Expect(tags.Claim(ctx, tag)).To(gomega.Succeed())

		for range 3 {
			gomega.Expect(scans.Record(ctx, tagsDomain.NewScan(tag, tagsDomain.ScanKindView, shareddomain.ClientInfo{}))).To(gomega.Succeed())
		}
		gomega.Expect(orm.WithContext(ctx).Exec("UPDATE tags SET scan_count = 42").Error()).To(gomega.Succeed())

		updated, err := tags.ReconcileScanCounts(ctx)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(updated).To(gomega.Equal(int64(1)))

		stored, err := tags.GetByCode(ctx, "AB7K-3MQ9")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(stored.ScanCount).To(gomega.Equal(int64(3)))
	})
})
