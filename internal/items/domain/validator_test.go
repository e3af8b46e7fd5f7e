package domain_test

import (
	"encoding/json"
	"errors"
	catalogDomain "tagback-server/internal/catalog/domain"
	"tagback-server/internal/items/domain"
	shareddomain "tagback-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func tagTypeWith(fields ...catalogDomain.FieldDefinition) catalogDomain.TagType {
	return catalogDomain.TagType{
		ID:          "tt-1",
		Slug:        "test",
		Name:        "Test",
		FieldGroups: []catalogDomain.FieldGroup{{Key: "main", Fields: fields}},
		IsActive:    true,
	}
}

func fieldsOf(err error) []string {
	result := make([]string, 0)
	for _, fe := range shareddomain.FieldErrors(err) {
		result = append(result, fe.Field)
	}
	return result
}

var _ = Describe("Validate", func() {
	It("should pass when an optional field is omitted", func() {
		tagType := tagTypeWith(
			catalogDomain.FieldDefinition{Key: "species", Type: catalogDomain.FieldTypeText, Required: true},
			catalogDomain.FieldDefinition{Key: "breed", Type: catalogDomain.FieldTypeText},
		)

		data, err := domain.Validate(tagType, map[string]any{"species": "dog"})

		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal(map[string]any{"species": "dog"}))
	})

	It("should report a missing required field as RequiredFieldMissing", func() {
		tagType := tagTypeWith(catalogDomain.FieldDefinition{Key: "species", Type: catalogDomain.FieldTypeText, Required: true})

		data, err := domain.Validate(tagType, map[string]any{"breed": "lab"})

		Expect(data).To(BeNil())
		Expect(errors.Is(err, shareddomain.ErrRequiredFieldMissing)).To(BeTrue())
		Expect(errors.Is(err, shareddomain.ErrValidationFailed)).To(BeTrue())
		Expect(fieldsOf(err)).To(Equal([]string{"species"}))
	})

	It("should treat blank strings and nil as missing for required fields", func() {
		tagType := tagTypeWith(
			catalogDomain.FieldDefinition{Key: "a", Type: catalogDomain.FieldTypeTextarea, Required: true},
			catalogDomain.FieldDefinition{Key: "b", Type: catalogDomain.FieldTypeTel, Required: true},
		)

		_, err := domain.Validate(tagType, map[string]any{"a": "   ", "b": nil})

		Expect(fieldsOf(err)).To(Equal([]string{"a", "b"}))
	})

	It("should report every bad field at once", func() {
		tagType := tagTypeWith(
			catalogDomain.FieldDefinition{Key: "name", Type: catalogDomain.FieldTypeText, Required: true},
			catalogDomain.FieldDefinition{Key: "age", Type: catalogDomain.FieldTypeNumber},
			catalogDomain.FieldDefinition{Key: "friendly", Type: catalogDomain.FieldTypeToggle},
			catalogDomain.FieldDefinition{Key: "email", Type: catalogDomain.FieldTypeEmail},
		)

		_, err := domain.Validate(tagType, map[string]any{
			"age":      "old",
			"friendly": "yes",
			"email":    42,
		})

		Expect(fieldsOf(err)).To(Equal([]string{"name", "age", "friendly", "email"}))
	})

	It("should pass unknown keys through untouched", func() {
		tagType := tagTypeWith(catalogDomain.FieldDefinition{Key: "species", Type: catalogDomain.FieldTypeText})
		input := map[string]any{"species": "cat", "legacyField": map[string]any{"x": 1.0}}

		data, err := domain.Validate(tagType, input)

		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(HaveKeyWithValue("legacyField", map[string]any{"x": 1.0}))
	})

	DescribeTable("number fields",
		func(value any, valid bool) {
			tagType := tagTypeWith(catalogDomain.FieldDefinition{Key: "age", Type: catalogDomain.FieldTypeNumber})
			_, err := domain.Validate(tagType, map[string]any{"age": value})
			if valid {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(fieldsOf(err)).To(Equal([]string{"age"}))
			}
		},
		Entry("float", 3.5, true),
		Entry("int", 3, true),
		Entry("json number", json.Number("12"), true),
		Entry("numeric string", " 7.25 ", true),
		Entry("empty string as absent", "", true),
		Entry("non numeric string", "seven", false),
		Entry("boolean", true, false),
	)

	It("should require a value when a required number is an empty string", func() {
		tagType := tagTypeWith(catalogDomain.FieldDefinition{Key: "age", Type: catalogDomain.FieldTypeNumber, Required: true})

		_, err := domain.Validate(tagType, map[string]any{"age": ""})

		Expect(errors.Is(err, shareddomain.ErrRequiredFieldMissing)).To(BeTrue())
	})

	Context("contacts_list", func() {
		var tagType catalogDomain.TagType

		BeforeEach(func() {
			tagType = tagTypeWith(catalogDomain.FieldDefinition{Key: "emergencyContacts", Type: catalogDomain.FieldTypeContactsList})
		})

		It("should accept contacts with an optional relationship", func() {
			_, err := domain.Validate(tagType, map[string]any{"emergencyContacts": []any{
				map[string]any{"name": "Ana", "phone": "+34 600"},
				map[string]any{"name": "Luis", "phone": "+34 601", "relationship": "brother"},
			}})

			Expect(err).NotTo(HaveOccurred())
		})

		It("should point at the broken entries", func() {
			_, err := domain.Validate(tagType, map[string]any{"emergencyContacts": []any{
				map[string]any{"name": "Ana"},
				"Luis",
				map[string]any{"name": "Eva", "phone": "1", "relationship": 3},
			}})

			Expect(fieldsOf(err)).To(Equal([]string{
				"emergencyContacts[0].phone",
				"emergencyContacts[1]",
				"emergencyContacts[2].relationship",
			}))
		})

		It("should reject a non list value", func() {
			_, err := domain.Validate(tagType, map[string]any{"emergencyContacts": "Ana"})

			Expect(fieldsOf(err)).To(Equal([]string{"emergencyContacts"}))
		})
	})

	Context("checklist_builder", func() {
		var tagType catalogDomain.TagType

		BeforeEach(func() {
			tagType, _ = catalogDomain.NewPredefinedTagType(catalogDomain.TagTypeChecklist)
		})

		It("should accept well formed checklist items", func() {
			_, err := domain.Validate(tagType, map[string]any{catalogDomain.ChecklistItemsKey: []any{
				map[string]any{"id": "a", "label": "Battery", "type": "checkbox", "required": true},
				map[string]any{"id": "b", "label": "Notes", "type": "text", "required": false},
			}})

			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject unknown checklist item types", func() {
			_, err := domain.Validate(tagType, map[string]any{catalogDomain.ChecklistItemsKey: []any{
				map[string]any{"id": "a", "label": "Photo", "type": "image", "required": true},
			}})

			Expect(fieldsOf(err)).To(ContainElement("checklistItems[0].type"))
		})
	})
})
