package usecases_test

import (
	"context"
	"errors"
	itemsDomain "tagback-server/internal/items/domain"
	itemsUsecases "tagback-server/internal/items/usecases"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	tagsDomain "tagback-server/internal/tags/domain"
	tagsUsecases "tagback-server/internal/tags/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TagService", func() {
	var (
		ctx        context.Context
		repository *fakeTagRepository
		items      *fakeItemResolver
		service    tagsUsecases.TagService
		tag        tagsDomain.Tag
	)

	BeforeEach(func() {
		ctx = context.Background()
		repository = newFakeTagRepository()
		items = &fakeItemResolver{items: map[shareddomain.ID]itemsUsecases.ResolvedItem{
			"item-1": {Item: itemsDomain.Item{ID: "item-1", OwnerID: "owner-1"}},
			"item-2": {Item: itemsDomain.Item{ID: "item-2", OwnerID: "owner-2"}},
		}}
		service = tagsUsecases.NewTagService(repository, items)

		tag = tagsDomain.NewTag("AB7K-3MQ9", "")
		repository.add(tag)
	})

	Context("ClaimTag", func() {
		It("should link the tag whatever way the code was typed", func() {
			claimed, err := service.ClaimTag(ctx, "owner-1", "item-1", "ab7k 3mq9")

			Expect(err).NotTo(HaveOccurred())
			Expect(claimed.IsLinkedTo("item-1")).To(BeTrue())
			Expect(repository.tags[tag.Code].ItemID).To(Equal(shareddomain.ID("item-1")))
		})

		It("should be idempotent for the same item", func() {
			_, err := service.ClaimTag(ctx, "owner-1", "item-1", "AB7K-3MQ9")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ClaimTag(ctx, "owner-1", "item-1", "AB7K-3MQ9")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should refuse a tag linked to another item", func() {
			_, err := service.ClaimTag(ctx, "owner-2", "item-2", "AB7K-3MQ9")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ClaimTag(ctx, "owner-1", "item-1", "AB7K-3MQ9")
			Expect(err).To(MatchError(tagsDomain.ErrTagAlreadyLinked))
		})

		It("should surface a lost race", func() {
			repository.claimError = tagsDomain.ErrTagAlreadyLinked

			_, err := service.ClaimTag(ctx, "owner-1", "item-1", "AB7K-3MQ9")
			Expect(err).To(MatchError(tagsDomain.ErrTagAlreadyLinked))
		})

		It("should refuse items of other owners", func() {
			_, err := service.ClaimTag(ctx, "owner-1", "item-2", "AB7K-3MQ9")
			Expect(err).To(MatchError(itemsUsecases.ErrForbidden))
		})

		DescribeTable("should report unknown codes as not found",
			func(code string) {
				_, err := service.ClaimTag(ctx, "owner-1", "item-1", code)
				Expect(err).To(MatchError(tagsUsecases.ErrTagNotFound))
			},
			Entry("well formed", "ZZZZ-ZZZZ"),
			Entry("malformed", "not-a-code"),
		)
	})

	Context("ReleaseTag", func() {
		BeforeEach(func() {
			_, err := service.ClaimTag(ctx, "owner-1", "item-1", "AB7K-3MQ9")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should return the tag to the pool", func() {
			Expect(service.ReleaseTag(ctx, "owner-1", "item-1", "AB7K3MQ9")).To(Succeed())
			Expect(repository.tags[tag.Code].IsLinked()).To(BeFalse())
		})

		It("should refuse to release from an item it is not linked to", func() {
			items.items["item-3"] = itemsUsecases.ResolvedItem{Item: itemsDomain.Item{ID: "item-3", OwnerID: "owner-1"}}

			err := service.ReleaseTag(ctx, "owner-1", "item-3", "AB7K-3MQ9")
			Expect(err).To(MatchError(tagsDomain.ErrTagNotLinked))
		})
	})

	It("should list the tags of an item", func() {
		_, err := service.ClaimTag(ctx, "owner-1", "item-1", "AB7K-3MQ9")
		Expect(err).NotTo(HaveOccurred())

		tags, err := service.ListItemTags(ctx, "owner-1", "item-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(tags).To(HaveLen(1))

		_, err = service.ListItemTags(ctx, "owner-2", "item-1")
		Expect(errors.Is(err, itemsUsecases.ErrForbidden)).To(BeTrue())
	})

	It("should release every tag of a deleted item", func() {
		other := tagsDomain.NewTag("CD8M-4NP2", "")
		repository.add(other)
		_, err := service.ClaimTag(ctx, "owner-1", "item-1", "AB7K-3MQ9")
		Expect(err).NotTo(HaveOccurred())
		_, err = service.ClaimTag(ctx, "owner-1", "item-1", "CD8M-4NP2")
		Expect(err).NotTo(HaveOccurred())

		released, err := service.ReleaseItemTags(ctx, "item-1")

		Expect(err).NotTo(HaveOccurred())
		Expect(released).To(Equal(2))
		Expect(repository.tags[other.Code].IsLinked()).To(BeFalse())
	})
})
