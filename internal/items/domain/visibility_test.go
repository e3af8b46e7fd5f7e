package domain_test

import (
	"encoding/json"
	catalogDomain "tagback-server/internal/catalog/domain"
	"tagback-server/internal/items/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func keysOf(view domain.PublicView) []string {
	result := make([]string, 0)
	for _, field := range view.Fields() {
		result = append(result, field.Key)
	}
	return result
}

var _ = Describe("Visibility", func() {
	var tagType catalogDomain.TagType

	BeforeEach(func() {
		tagType = catalogDomain.TagType{
			ID:   "tt-1",
			Slug: "pet",
			Name: "Pet",
			FieldGroups: []catalogDomain.FieldGroup{{
				Key: "basics",
				Fields: []catalogDomain.FieldDefinition{
					{Key: "species", Label: "Species", Type: catalogDomain.FieldTypeText, Required: true},
					{Key: "breed", Label: "Breed", Type: catalogDomain.FieldTypeText},
				},
			}},
			DefaultVisibility: map[string]bool{"species": true, "breed": false},
		}
	})

	It("should show only visible non-empty fields", func() {
		item := domain.Item{Data: map[string]any{"species": "dog"}, Visibility: map[string]bool{}}

		view := domain.ResolvePublicView(tagType, item)

		Expect(keysOf(view)).To(Equal([]string{"species"}))
		field, _ := view.Field("species")
		Expect(field.Value).To(Equal("dog"))
	})

	It("should let an item override hide a field shown by default", func() {
		item := domain.Item{Data: map[string]any{"species": "dog"}, Visibility: map[string]bool{"species": false}}

		view := domain.ResolvePublicView(tagType, item)

		Expect(view.Fields()).To(BeEmpty())
		Expect(view.Groups).To(BeEmpty())
	})

	It("should let an item override reveal a field hidden by default", func() {
		item := domain.Item{
			Data:       map[string]any{"species": "dog", "breed": "beagle"},
			Visibility: map[string]bool{"breed": true},
		}

		Expect(keysOf(domain.ResolvePublicView(tagType, item))).To(Equal([]string{"species", "breed"}))
	})

	It("should show fields configured nowhere", func() {
		tagType.FieldGroups[0].Fields = append(tagType.FieldGroups[0].Fields,
			catalogDomain.FieldDefinition{Key: "color", Type: catalogDomain.FieldTypeText})
		item := domain.Item{Data: map[string]any{"color": "brown"}}

		Expect(keysOf(domain.ResolvePublicView(tagType, item))).To(Equal([]string{"color"}))
	})

	It("should drop empty lists but keep false toggles", func() {
		tagType.FieldGroups[0].Fields = append(tagType.FieldGroups[0].Fields,
			catalogDomain.FieldDefinition{Key: "contacts", Type: catalogDomain.FieldTypeContactsList},
			catalogDomain.FieldDefinition{Key: "friendly", Type: catalogDomain.FieldTypeToggle},
		)
		item := domain.Item{Data: map[string]any{"contacts": []any{}, "friendly": false}}

		Expect(keysOf(domain.ResolvePublicView(tagType, item))).To(Equal([]string{"friendly"}))
	})

	It("should resolve contact channels with the same fallback", func() {
		tagType.DefaultVisibility[domain.ContactAddressKey] = false
		item := domain.Item{
			Contacts: domain.Contacts{Phone: "+34 600", Email: "owner@example.com", Address: "Main St 1"},
			Visibility: map[string]bool{
				domain.ContactEmailKey: false,
			},
		}

		view := domain.ResolvePublicView(tagType, item)

		Expect(view.Contacts).To(Equal([]domain.PublicContact{{Channel: domain.ContactPhoneKey, Value: "+34 600"}}))
	})

	It("should only expose the reward when offered", func() {
		item := domain.Item{Reward: domain.Reward{Offered: false, Details: "50 EUR"}}
		Expect(domain.ResolvePublicView(tagType, item).Reward).To(BeNil())

		item.Reward.Offered = true
		Expect(domain.ResolvePublicView(tagType, item).Reward.Details).To(Equal("50 EUR"))
	})

	It("should produce identical output for identical input", func() {
		item := domain.Item{
			ID:         "item-1",
			Data:       map[string]any{"species": "dog", "breed": "beagle"},
			Visibility: map[string]bool{"breed": true},
			Contacts:   domain.Contacts{Phone: "1"},
		}

		first, err := json.Marshal(domain.ResolvePublicView(tagType, item))
		Expect(err).NotTo(HaveOccurred())
		second, err := json.Marshal(domain.ResolvePublicView(tagType, item))
		Expect(err).NotTo(HaveOccurred())
		Expect(first).To(Equal(second))
	})

	Context("checklist view", func() {
		BeforeEach(func() {
			tagType, _ = catalogDomain.NewPredefinedTagType(catalogDomain.TagTypeChecklist)
		})

		It("should always include checklistItems even when hidden", func() {
			item := domain.Item{
				Data: map[string]any{
					"description":                   "Pre-flight",
					catalogDomain.ChecklistItemsKey: []any{map[string]any{"id": "a", "label": "Battery", "type": "checkbox", "required": true}},
				},
				Visibility: map[string]bool{catalogDomain.ChecklistItemsKey: false, "description": false},
			}

			Expect(keysOf(domain.ResolvePublicView(tagType, item))).To(BeEmpty())
			Expect(keysOf(domain.ResolveChecklistView(tagType, item))).To(Equal([]string{catalogDomain.ChecklistItemsKey}))
		})

		It("should include an empty checklist when the item has none", func() {
			item := domain.Item{Data: map[string]any{"description": "Daily"}}

			view := domain.ResolveChecklistView(tagType, item)

			field, ok := view.Field(catalogDomain.ChecklistItemsKey)
			Expect(ok).To(BeTrue())
			Expect(field.Value).To(Equal([]any{}))
			Expect(keysOf(view)).To(ContainElement("description"))
		})

		It("should decode usable checklist items", func() {
			item := domain.Item{Data: map[string]any{catalogDomain.ChecklistItemsKey: []any{
				map[string]any{"id": "a", "label": "Battery", "type": "checkbox", "required": true},
				map[string]any{"id": "b", "label": "Broken"},
			}}}

			items := domain.ChecklistItems(item)

			Expect(items).To(HaveLen(1))
			Expect(items[0].ID).To(Equal("a"))
		})
	})
})
