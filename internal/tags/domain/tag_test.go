package domain_test

import (
	shareddomain "tagback-server/internal/shared_kernel/domain"
	"tagback-server/internal/tags/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tag", func() {
	var tag domain.Tag

	BeforeEach(func() {
		tag = domain.NewTag("AB7K-3MQ9", "batch-1")
	})

	It("should start issued and unlinked", func() {
		Expect(tag.ID).NotTo(BeEmpty())
		Expect(tag.Status).To(Equal(domain.TagStatusIssued))
		Expect(tag.IsLinked()).To(BeFalse())
		Expect(tag.IssuedAt).NotTo(BeZero())
	})

	It("should link to an item when claimed", func() {
		Expect(tag.Claim("owner-1", "item-1")).To(Succeed())

		Expect(tag.Status).To(Equal(domain.TagStatusClaimed))
		Expect(tag.IsLinkedTo("item-1")).To(BeTrue())
		Expect(tag.OwnerID).To(Equal(shareddomain.ID("owner-1")))
		Expect(tag.ClaimedAt).NotTo(BeNil())
	})

	It("should refuse a second claim", func() {
		Expect(tag.Claim("owner-1", "item-1")).To(Succeed())
		Expect(tag.Claim("owner-2", "item-2")).To(MatchError(domain.ErrTagAlreadyLinked))
		Expect(tag.ItemID).To(Equal(shareddomain.ID("item-1")))
	})

	It("should release back to the issued pool", func() {
		Expect(tag.Claim("owner-1", "item-1")).To(Succeed())
		Expect(tag.Release("item-1")).To(Succeed())

		Expect(tag.Status).To(Equal(domain.TagStatusIssued))
		Expect(tag.IsLinked()).To(BeFalse())
		Expect(tag.ClaimedAt).To(BeNil())
		Expect(tag.Claim("owner-2", "item-2")).To(Succeed())
	})

	It("should not release from another item", func() {
		Expect(tag.Claim("owner-1", "item-1")).To(Succeed())
		Expect(tag.Release("item-2")).To(MatchError(domain.ErrTagNotLinked))
	})
})

var _ = Describe("LocationReport", func() {
	It("should accept a location alone", func() {
		report := domain.LocationReport{Location: &shareddomain.GeoPoint{Latitude: 52.37, Longitude: 4.89}}
		Expect(report.Validate()).To(Succeed())
	})

	It("should accept a finder contact alone", func() {
		report := domain.LocationReport{Finder: shareddomain.FinderContact{Name: "Sam", Phone: "+31 6 1234"}}
		Expect(report.Validate()).To(Succeed())
	})

	It("should require something to share", func() {
		err := domain.LocationReport{}.Validate()
		Expect(err).To(MatchError(shareddomain.ErrRequiredFieldMissing))
	})

	It("should report every invalid attribute", func() {
		report := domain.LocationReport{
			Location: &shareddomain.GeoPoint{Latitude: 91, Longitude: 4.89},
			Finder:   shareddomain.FinderContact{Email: "nope"},
		}

		err := report.Validate()

		fields := make([]string, 0)
		for _, fe := range shareddomain.FieldErrors(err) {
			fields = append(fields, fe.Field)
		}
		Expect(fields).To(Equal([]string{"location.latitude", "finder.email"}))
	})
})
