package domain

type FieldType string

const (
	FieldTypeText             FieldType = "text"
	FieldTypeTextarea         FieldType = "textarea"
	FieldTypeSelect           FieldType = "select"
	FieldTypeNumber           FieldType = "number"
	FieldTypeEmail            FieldType = "email"
	FieldTypeTel              FieldType = "tel"
	FieldTypeToggle           FieldType = "toggle"
	FieldTypeContactsList     FieldType = "contacts_list"
	FieldTypeChecklistBuilder FieldType = "checklist_builder"
)

func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeSelect, FieldTypeNumber, FieldTypeEmail,
		FieldTypeTel, FieldTypeToggle, FieldTypeContactsList, FieldTypeChecklistBuilder:
		return true
	default:
		return false
	}
}

// IsStringShaped reports whether values of this type are plain strings, in
// which case a required value must also be non-blank.
func (t FieldType) IsStringShaped() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeSelect, FieldTypeEmail, FieldTypeTel:
		return true
	default:
		return false
	}
}

type FieldDefinition struct {
	Key         string
	Label       string
	Type        FieldType
	Required    bool
	Placeholder string
	Options     []string
}

type FieldGroup struct {
	Key        string
	Label      string
	Icon       string
	AlertStyle string
	Fields     []FieldDefinition
}
