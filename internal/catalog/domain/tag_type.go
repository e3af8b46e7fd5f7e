package domain

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
	"tagback-server/internal/infra/utils"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	"time"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)

type TagType struct {
	ID                shareddomain.ID
	Slug              shareddomain.Slug
	Name              shareddomain.DisplayName
	Description       shareddomain.Description
	Icon              string
	Color             string
	FieldGroups       []FieldGroup
	DefaultVisibility map[string]bool
	IsActive          bool
	SortOrder         int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Fields returns every field definition in group order, then field order.
func (t TagType) Fields() []FieldDefinition {
	result := make([]FieldDefinition, 0)
	for _, group := range t.FieldGroups {
		result = append(result, group.Fields...)
	}
	return result
}

func (t TagType) Field(key string) (FieldDefinition, bool) {
	for _, group := range t.FieldGroups {
		for _, field := range group.Fields {
			if field.Key == key {
				return field, true
			}
		}
	}
	return FieldDefinition{}, false
}

// IsChecklist reports whether items of this tag type carry a fillable
// checklist under ChecklistItemsKey.
func (t TagType) IsChecklist() bool {
	field, ok := t.Field(ChecklistItemsKey)
	return ok && field.Type == FieldTypeChecklistBuilder
}

func (t *TagType) Activate() {
	t.IsActive = true
	t.UpdatedAt = time.Now()
}

func (t *TagType) Deactivate() {
	t.IsActive = false
	t.UpdatedAt = time.Now()
}

// Validate checks the structural rules of a tag type: a well formed slug, a
// name, known field types and field keys unique across all groups.
func (t TagType) Validate() error {
	verr := &shareddomain.ValidationError{}

	if !slugPattern.MatchString(string(t.Slug)) {
		verr.Add(shareddomain.Invalid("slug", "must contain lowercase letters, digits, '-' or '_'"))
	}
	if strings.TrimSpace(string(t.Name)) == "" {
		verr.Add(shareddomain.Required("name"))
	}

	groupKeys := make(map[string]bool)
	fieldKeys := make(map[string]bool)
	for i, group := range t.FieldGroups {
		groupPath := fmt.Sprintf("fieldGroups[%d]", i)
		if group.Key == "" {
			verr.Add(shareddomain.Required(groupPath + ".key"))
		} else if groupKeys[group.Key] {
			verr.Add(shareddomain.Invalid(groupPath+".key", fmt.Sprintf("duplicates group key %q", group.Key)))
		}
		groupKeys[group.Key] = true

		for j, field := range group.Fields {
			fieldPath := fmt.Sprintf("%s.fields[%d]", groupPath, j)
			switch {
			case field.Key == "":
				verr.Add(shareddomain.Required(fieldPath + ".key"))
			case fieldKeys[field.Key]:
				verr.Add(shareddomain.Invalid(fieldPath+".key", fmt.Sprintf("duplicates field key %q", field.Key)))
			}
			fieldKeys[field.Key] = true

			if !field.Type.IsValid() {
				verr.Add(shareddomain.Invalid(fieldPath+".type", fmt.Sprintf("unknown field type %q", field.Type)))
			}
			if field.Key == ChecklistItemsKey && field.Type != FieldTypeChecklistBuilder {
				verr.Add(shareddomain.Invalid(fieldPath+".type", "checklistItems is reserved for checklist_builder fields"))
			}
		}
	}

	return verr.OrNil()
}

// TagTypeUpdate replaces whichever attributes are set. The slug is not
// updatable.
type TagTypeUpdate struct {
	Name              *string
	Description       *string
	Icon              *string
	Color             *string
	FieldGroups       *[]FieldGroup
	DefaultVisibility *map[string]bool
	SortOrder         *int
	IsActive          *bool
}

func (t *TagType) Apply(update TagTypeUpdate) error {
	next := *t
	if update.Name != nil {
		next.Name = shareddomain.DisplayName(*update.Name)
	}
	if update.Description != nil {
		next.Description = shareddomain.Description(*update.Description)
	}
	if update.Icon != nil {
		next.Icon = *update.Icon
	}
	if update.Color != nil {
		next.Color = *update.Color
	}
	if update.FieldGroups != nil {
		next.FieldGroups = slices.Clone(*update.FieldGroups)
	}
	if update.DefaultVisibility != nil {
		next.DefaultVisibility = maps.Clone(*update.DefaultVisibility)
	}
	if update.SortOrder != nil {
		next.SortOrder = *update.SortOrder
	}
	if update.IsActive != nil {
		next.IsActive = *update.IsActive
	}

	if err := next.Validate(); err != nil {
		return err
	}

	next.UpdatedAt = time.Now()
	*t = next
	return nil
}

func NewTagTypeBuilder() *tagTypeBuilder {
	return &tagTypeBuilder{}
}

type tagTypeBuilder struct {
	actions []tagTypeHandler
}

type tagTypeHandler func(v *TagType) error

func (b *tagTypeBuilder) WithSlug(value string) *tagTypeBuilder {
	b.actions = append(b.actions, func(d *TagType) error {
		d.Slug = shareddomain.Slug(strings.TrimSpace(value))
		return nil
	})
	return b
}

func (b *tagTypeBuilder) WithName(value string) *tagTypeBuilder {
	b.actions = append(b.actions, func(d *TagType) error {
		d.Name = shareddomain.DisplayName(value)
		return nil
	})
	return b
}

func (b *tagTypeBuilder) WithDescription(value string) *tagTypeBuilder {
	b.actions = append(b.actions, func(d *TagType) error {
		d.Description = shareddomain.Description(value)
		return nil
	})
	return b
}

func (b *tagTypeBuilder) WithIcon(value string) *tagTypeBuilder {
	b.actions = append(b.actions, func(d *TagType) error {
		d.Icon = value
		return nil
	})
	return b
}

func (b *tagTypeBuilder) WithColor(value string) *tagTypeBuilder {
	b.actions = append(b.actions, func(d *TagType) error {
		d.Color = value
		return nil
	})
	return b
}

func (b *tagTypeBuilder) WithFieldGroups(value []FieldGroup) *tagTypeBuilder {
	b.actions = append(b.actions, func(d *TagType) error {
		d.FieldGroups = slices.Clone(value)
		return nil
	})
	return b
}

func (b *tagTypeBuilder) WithDefaultVisibility(value map[string]bool) *tagTypeBuilder {
	b.actions = append(b.actions, func(d *TagType) error {
		d.DefaultVisibility = maps.Clone(value)
		return nil
	})
	return b
}

func (b *tagTypeBuilder) WithSortOrder(value int) *tagTypeBuilder {
	b.actions = append(b.actions, func(d *TagType) error {
		d.SortOrder = value
		return nil
	})
	return b
}

func (b *tagTypeBuilder) WithIsActive(value bool) *tagTypeBuilder {
	b.actions = append(b.actions, func(d *TagType) error {
		d.IsActive = value
		return nil
	})
	return b
}

func (b *tagTypeBuilder) Build() (TagType, error) {
	now := time.Now()
	result := TagType{
		ID:                shareddomain.ID(utils.GenerateUUID()),
		FieldGroups:       make([]FieldGroup, 0),
		DefaultVisibility: make(map[string]bool),
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return TagType{}, err
		}
	}

	if result.DefaultVisibility == nil {
		result.DefaultVisibility = make(map[string]bool)
	}

	if err := result.Validate(); err != nil {
		return TagType{}, err
	}

	return result, nil
}
