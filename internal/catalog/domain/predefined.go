package domain

import shareddomain "tagback-server/internal/shared_kernel/domain"

const (
	TagTypePet       = "pet"
	TagTypeLuggage   = "luggage"
	TagTypeKeys      = "keys"
	TagTypeChecklist = "checklist"
)

var PredefinedTagTypes = map[string]TagType{
	TagTypePet: {
		Slug:        shareddomain.Slug(TagTypePet),
		Name:        shareddomain.DisplayName("Pet"),
		Description: shareddomain.Description("Collar tag for dogs, cats and other companions"),
		Icon:        "paw",
		Color:       "#F59E0B",
		SortOrder:   10,
		IsActive:    true,
		FieldGroups: []FieldGroup{
			{
				Key:   "basics",
				Label: "About the pet",
				Icon:  "info",
				Fields: []FieldDefinition{
					{Key: "species", Label: "Species", Type: FieldTypeSelect, Required: true, Options: []string{"dog", "cat", "bird", "other"}},
					{Key: "breed", Label: "Breed", Type: FieldTypeText},
					{Key: "age", Label: "Age (years)", Type: FieldTypeNumber},
					{Key: "friendly", Label: "Friendly with strangers", Type: FieldTypeToggle},
				},
			},
			{
				Key:        "medical",
				Label:      "Medical",
				Icon:       "heart",
				AlertStyle: "warning",
				Fields: []FieldDefinition{
					{Key: "medicalNotes", Label: "Medical notes", Type: FieldTypeTextarea, Placeholder: "Allergies, medication, conditions"},
					{Key: "vetPhone", Label: "Veterinarian phone", Type: FieldTypeTel},
				},
			},
			{
				Key:   "contacts",
				Label: "Emergency contacts",
				Icon:  "phone",
				Fields: []FieldDefinition{
					{Key: "emergencyContacts", Label: "Emergency contacts", Type: FieldTypeContactsList},
				},
			},
		},
		DefaultVisibility: map[string]bool{
			"medicalNotes": true,
			"vetPhone":     false,
			"ownerAddress": false,
		},
	},
	TagTypeLuggage: {
		Slug:        shareddomain.Slug(TagTypeLuggage),
		Name:        shareddomain.DisplayName("Luggage"),
		Description: shareddomain.Description("Suitcases, backpacks and bags"),
		Icon:        "briefcase",
		Color:       "#3B82F6",
		SortOrder:   20,
		IsActive:    true,
		FieldGroups: []FieldGroup{
			{
				Key:   "details",
				Label: "Bag details",
				Fields: []FieldDefinition{
					{Key: "description", Label: "Description", Type: FieldTypeTextarea, Placeholder: "Color, brand, distinguishing marks"},
					{Key: "flightNumber", Label: "Flight number", Type: FieldTypeText},
					{Key: "returnEmail", Label: "Return email", Type: FieldTypeEmail},
				},
			},
		},
		DefaultVisibility: map[string]bool{
			"flightNumber": false,
			"ownerAddress": false,
		},
	},
	TagTypeKeys: {
		Slug:        shareddomain.Slug(TagTypeKeys),
		Name:        shareddomain.DisplayName("Keys"),
		Description: shareddomain.Description("Key rings and fobs"),
		Icon:        "key",
		Color:       "#10B981",
		SortOrder:   30,
		IsActive:    true,
		FieldGroups: []FieldGroup{
			{
				Key:   "details",
				Label: "Details",
				Fields: []FieldDefinition{
					{Key: "description", Label: "Description", Type: FieldTypeText},
				},
			},
		},
		DefaultVisibility: map[string]bool{
			"ownerAddress": false,
		},
	},
	TagTypeChecklist: {
		Slug:        shareddomain.Slug(TagTypeChecklist),
		Name:        shareddomain.DisplayName("Checklist"),
		Description: shareddomain.Description("Inspection or hand-over checklist filled in by whoever scans the tag"),
		Icon:        "clipboard",
		Color:       "#8B5CF6",
		SortOrder:   40,
		IsActive:    true,
		FieldGroups: []FieldGroup{
			{
				Key:   "checklist",
				Label: "Checklist",
				Fields: []FieldDefinition{
					{Key: "description", Label: "Instructions", Type: FieldTypeTextarea},
					{Key: ChecklistItemsKey, Label: "Checklist items", Type: FieldTypeChecklistBuilder, Required: true},
				},
			},
		},
		DefaultVisibility: map[string]bool{
			"ownerPhone":   false,
			"ownerAddress": false,
		},
	},
}

// NewPredefinedTagType returns a fresh, persistable copy of a predefined tag type.
func NewPredefinedTagType(slug string) (TagType, bool) {
	predefined, found := PredefinedTagTypes[slug]
	if !found {
		return TagType{}, false
	}

	tagType, err := NewTagTypeBuilder().
		WithSlug(predefined.Slug.String()).
		WithName(string(predefined.Name)).
		WithDescription(string(predefined.Description)).
		WithIcon(predefined.Icon).
		WithColor(predefined.Color).
		WithFieldGroups(predefined.FieldGroups).
		WithDefaultVisibility(predefined.DefaultVisibility).
		WithSortOrder(predefined.SortOrder).
		Build()
	if err != nil {
		return TagType{}, false
	}

	return tagType, true
}
