package domain

import (
	"fmt"
	"tagback-server/internal/infra/utils"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	"time"
)

// ChecklistItemsKey is the reserved data key holding the checklist of a
// checklist tag type.
const ChecklistItemsKey = "checklistItems"

type ChecklistItemType string

const (
	ChecklistItemCheckbox ChecklistItemType = "checkbox"
	ChecklistItemNumber   ChecklistItemType = "number"
	ChecklistItemText     ChecklistItemType = "text"
)

func (t ChecklistItemType) IsValid() bool {
	switch t {
	case ChecklistItemCheckbox, ChecklistItemNumber, ChecklistItemText:
		return true
	default:
		return false
	}
}

type ChecklistItemDefinition struct {
	ID       string
	Label    string
	Type     ChecklistItemType
	Required bool
}

func (d ChecklistItemDefinition) ToData() map[string]any {
	return map[string]any{
		"id":       d.ID,
		"label":    d.Label,
		"type":     string(d.Type),
		"required": d.Required,
	}
}

// DecodeChecklistItems reads a checklist out of loosely typed item data. Every
// shape violation is reported with a path rooted at field.
func DecodeChecklistItems(field string, value any) ([]ChecklistItemDefinition, []shareddomain.FieldError) {
	elements, ok := asList(value)
	if !ok {
		return nil, []shareddomain.FieldError{shareddomain.Invalid(field, "must be a list of checklist items")}
	}

	var fieldErrors []shareddomain.FieldError
	result := make([]ChecklistItemDefinition, 0, len(elements))
	for i, element := range elements {
		path := fmt.Sprintf("%s[%d]", field, i)
		object, ok := element.(map[string]any)
		if !ok {
			fieldErrors = append(fieldErrors, shareddomain.Invalid(path, "must be an object"))
			continue
		}

		var item ChecklistItemDefinition
		var itemErrors []shareddomain.FieldError
		item.ID, itemErrors = requireString(itemErrors, path+".id", object["id"])
		item.Label, itemErrors = requireString(itemErrors, path+".label", object["label"])

		typeValue, isString := object["type"].(string)
		if !isString || !ChecklistItemType(typeValue).IsValid() {
			itemErrors = append(itemErrors, shareddomain.Invalid(path+".type", "must be one of checkbox, number, text"))
		}
		item.Type = ChecklistItemType(typeValue)

		switch required := object["required"].(type) {
		case nil:
		case bool:
			item.Required = required
		default:
			itemErrors = append(itemErrors, shareddomain.Invalid(path+".required", "must be a boolean"))
		}

		if len(itemErrors) > 0 {
			fieldErrors = append(fieldErrors, itemErrors...)
			continue
		}
		result = append(result, item)
	}

	return result, fieldErrors
}

func requireString(errs []shareddomain.FieldError, path string, value any) (string, []shareddomain.FieldError) {
	s, ok := value.(string)
	if !ok {
		return "", append(errs, shareddomain.Invalid(path, "must be a string"))
	}
	return s, errs
}

func asList(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []map[string]any:
		result := make([]any, len(v))
		for i := range v {
			result[i] = v[i]
		}
		return result, true
	default:
		return nil, false
	}
}

type ChecklistTemplate struct {
	ID          shareddomain.ID
	Name        shareddomain.Name
	Description shareddomain.Description
	Items       []ChecklistItemDefinition
	CreatedAt   time.Time
}

// Instantiate copies the template items with freshly generated ids so the
// copy never shares identity with the template or other copies.
func (t ChecklistTemplate) Instantiate() []ChecklistItemDefinition {
	result := make([]ChecklistItemDefinition, len(t.Items))
	for i, item := range t.Items {
		item.ID = utils.GenerateUUID()
		result[i] = item
	}
	return result
}

func NewChecklistTemplateBuilder() *checklistTemplateBuilder {
	return &checklistTemplateBuilder{}
}

type checklistTemplateBuilder struct {
	actions []checklistTemplateHandler
}

type checklistTemplateHandler func(v *ChecklistTemplate) error

func (b *checklistTemplateBuilder) WithName(value string) *checklistTemplateBuilder {
	b.actions = append(b.actions, func(d *ChecklistTemplate) error {
		d.Name = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *checklistTemplateBuilder) WithDescription(value string) *checklistTemplateBuilder {
	b.actions = append(b.actions, func(d *ChecklistTemplate) error {
		d.Description = shareddomain.Description(value)
		return nil
	})
	return b
}

func (b *checklistTemplateBuilder) WithItems(value []ChecklistItemDefinition) *checklistTemplateBuilder {
	b.actions = append(b.actions, func(d *ChecklistTemplate) error {
		d.Items = append([]ChecklistItemDefinition(nil), value...)
		return nil
	})
	return b
}

func (b *checklistTemplateBuilder) Build() (ChecklistTemplate, error) {
	result := ChecklistTemplate{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Items:     make([]ChecklistItemDefinition, 0),
		CreatedAt: time.Now(),
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return ChecklistTemplate{}, err
		}
	}

	verr := &shareddomain.ValidationError{}
	if result.Name == "" {
		verr.Add(shareddomain.Required("name"))
	}
	for i, item := range result.Items {
		if item.ID == "" {
			result.Items[i].ID = utils.GenerateUUID()
		}
		if item.Label == "" {
			verr.Add(shareddomain.Required(fmt.Sprintf("items[%d].label", i)))
		}
		if !item.Type.IsValid() {
			verr.Add(shareddomain.Invalid(fmt.Sprintf("items[%d].type", i), "must be one of checkbox, number, text"))
		}
	}
	if err := verr.OrNil(); err != nil {
		return ChecklistTemplate{}, err
	}

	return result, nil
}
