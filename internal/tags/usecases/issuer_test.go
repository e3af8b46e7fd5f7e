package usecases_test

import (
	"context"
	"errors"
	"tagback-server/cmd/config"
	tagsDomain "tagback-server/internal/tags/domain"
	tagsUsecases "tagback-server/internal/tags/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Issuer", func() {
	var (
		ctx        context.Context
		repository *fakeTagRepository
		issuer     tagsUsecases.Issuer
	)

	BeforeEach(func() {
		ctx = context.Background()
		repository = newFakeTagRepository()

		var err error
		issuer, err = tagsUsecases.NewIssuer(config.IssuerConfig{MaxAttempts: 3}, repository)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should issue an unlinked tag with a canonical code", func() {
		tag, err := issuer.Issue(ctx, "print-01")

		Expect(err).NotTo(HaveOccurred())
		Expect(tag.Status).To(Equal(tagsDomain.TagStatusIssued))
		Expect(tag.Batch).To(Equal("print-01"))
		Expect(repository.tags).To(HaveKey(tag.Code))

		parsed, err := tagsDomain.ParseCode(tag.Code.String())
		Expect(err).NotTo(HaveOccurred())
		Expect(parsed).To(Equal(tag.Code))
	})

	It("should retry when the store reports a duplicate", func() {
		repository.duplicates = 2

		tag, err := issuer.Issue(ctx, "")

		Expect(err).NotTo(HaveOccurred())
		Expect(repository.tags).To(HaveKey(tag.Code))
		Expect(repository.existsCalls).To(Equal(3))
	})

	It("should retry when the pre-check finds the code taken", func() {
		repository.taken = 1

		_, err := issuer.Issue(ctx, "")

		Expect(err).NotTo(HaveOccurred())
		Expect(repository.tags).To(HaveLen(1))
	})

	It("should give up after the configured number of attempts", func() {
		repository.duplicates = 3

		_, err := issuer.Issue(ctx, "")

		Expect(err).To(MatchError(tagsUsecases.ErrIssuanceExhausted))
		Expect(repository.tags).To(BeEmpty())
		Expect(repository.existsCalls).To(Equal(3))
	})

	It("should not retry on other store errors", func() {
		repository.createError = errStoreDown

		_, err := issuer.Issue(ctx, "")

		Expect(errors.Is(err, errStoreDown)).To(BeTrue())
		Expect(repository.existsCalls).To(Equal(1))
	})

	It("should default to five attempts", func() {
		defaulted, err := tagsUsecases.NewIssuer(config.IssuerConfig{}, repository)
		Expect(err).NotTo(HaveOccurred())
		repository.duplicates = 4

		_, err = defaulted.Issue(ctx, "")

		Expect(err).NotTo(HaveOccurred())
		Expect(repository.existsCalls).To(Equal(5))
	})

	Context("IssueBatch", func() {
		It("should issue distinct codes", func() {
			tags, err := issuer.IssueBatch(ctx, 25, "print-02")

			Expect(err).NotTo(HaveOccurred())
			Expect(tags).To(HaveLen(25))
			Expect(repository.tags).To(HaveLen(25))
		})

		It("should reject an out of range count", func() {
			_, err := issuer.IssueBatch(ctx, 0, "")
			Expect(err).To(MatchError(tagsUsecases.ErrInvalidBatchSize))

			_, err = issuer.IssueBatch(ctx, 1001, "")
			Expect(err).To(MatchError(tagsUsecases.ErrInvalidBatchSize))
		})

		It("should stop at the first failure", func() {
			repository.createError = errStoreDown

			tags, err := issuer.IssueBatch(ctx, 3, "")

			Expect(err).To(HaveOccurred())
			Expect(tags).To(BeEmpty())
		})
	})
})
