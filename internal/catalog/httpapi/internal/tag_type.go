package internal

import (
	catalogDomain "tagback-server/internal/catalog/domain"
	"time"
)

type TagTypeListResponse struct {
	Data []TagTypeResponse `json:"data"`
}

type TagTypeResponse struct {
	ID                string          `json:"id"`
	Slug              string          `json:"slug"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Icon              string          `json:"icon,omitempty"`
	Color             string          `json:"color,omitempty"`
	FieldGroups       []FieldGroup    `json:"fieldGroups"`
	DefaultVisibility map[string]bool `json:"defaultVisibility"`
	IsActive          bool            `json:"isActive"`
	IsChecklist       bool            `json:"isChecklist"`
	SortOrder         int             `json:"sortOrder"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

type FieldGroup struct {
	Key        string            `json:"key"`
	Label      string            `json:"label"`
	Icon       string            `json:"icon,omitempty"`
	AlertStyle string            `json:"alertStyle,omitempty"`
	Fields     []FieldDefinition `json:"fields"`
}

type FieldDefinition struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
}

type TagTypeCreateRequest struct {
	Slug              string          `json:"slug"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Icon              string          `json:"icon"`
	Color             string          `json:"color"`
	FieldGroups       []FieldGroup    `json:"fieldGroups"`
	DefaultVisibility map[string]bool `json:"defaultVisibility"`
	SortOrder         int             `json:"sortOrder"`
	IsActive          *bool           `json:"isActive,omitempty"`
}

type TagTypeUpdateRequest struct {
	Name              *string          `json:"name,omitempty"`
	Description       *string          `json:"description,omitempty"`
	Icon              *string          `json:"icon,omitempty"`
	Color             *string          `json:"color,omitempty"`
	FieldGroups       *[]FieldGroup    `json:"fieldGroups,omitempty"`
	DefaultVisibility *map[string]bool `json:"defaultVisibility,omitempty"`
	SortOrder         *int             `json:"sortOrder,omitempty"`
	IsActive          *bool            `json:"isActive,omitempty"`
}

type DeleteTagTypeResponse struct {
	Outcome string `json:"outcome"`
}

func (r TagTypeUpdateRequest) ToDomain() catalogDomain.TagTypeUpdate {
	update := catalogDomain.TagTypeUpdate{
		Name:              r.Name,
		Description:       r.Description,
		Icon:              r.Icon,
		Color:             r.Color,
		DefaultVisibility: r.DefaultVisibility,
		SortOrder:         r.SortOrder,
		IsActive:          r.IsActive,
	}
	if r.FieldGroups != nil {
		groups := ToFieldGroups(*r.FieldGroups)
		update.FieldGroups = &groups
	}
	return update
}

func ToFieldGroups(groups []FieldGroup) []catalogDomain.FieldGroup {
	result := make([]catalogDomain.FieldGroup, len(groups))
	for i, group := range groups {
		fields := make([]catalogDomain.FieldDefinition, len(group.Fields))
		for j, field := range group.Fields {
			fields[j] = catalogDomain.FieldDefinition{
				Key:         field.Key,
				Label:       field.Label,
				Type:        catalogDomain.FieldType(field.Type),
				Required:    field.Required,
				Placeholder: field.Placeholder,
				Options:     field.Options,
			}
		}
		result[i] = catalogDomain.FieldGroup{
			Key:        group.Key,
			Label:      group.Label,
			Icon:       group.Icon,
			AlertStyle: group.AlertStyle,
			Fields:     fields,
		}
	}
	return result
}

func ToTagTypeResponse(tagType catalogDomain.TagType) TagTypeResponse {
	groups := make([]FieldGroup, len(tagType.FieldGroups))
	for i, group := range tagType.FieldGroups {
		fields := make([]FieldDefinition, len(group.Fields))
		for j, field := range group.Fields {
			fields[j] = FieldDefinition{
				Key:         field.Key,
				Label:       field.Label,
				Type:        string(field.Type),
				Required:    field.Required,
				Placeholder: field.Placeholder,
				Options:     field.Options,
			}
		}
		groups[i] = FieldGroup{
			Key:        group.Key,
			Label:      group.Label,
			Icon:       group.Icon,
			AlertStyle: group.AlertStyle,
			Fields:     fields,
		}
	}

	visibility := tagType.DefaultVisibility
	if visibility == nil {
		visibility = map[string]bool{}
	}

	return TagTypeResponse{
		ID:                tagType.ID.String(),
		Slug:              tagType.Slug.String(),
		Name:              string(tagType.Name),
		Description:       string(tagType.Description),
		Icon:              tagType.Icon,
		Color:             tagType.Color,
		FieldGroups:       groups,
		DefaultVisibility: visibility,
		IsActive:          tagType.IsActive,
		IsChecklist:       tagType.IsChecklist(),
		SortOrder:         tagType.SortOrder,
		CreatedAt:         tagType.CreatedAt,
		UpdatedAt:         tagType.UpdatedAt,
	}
}
