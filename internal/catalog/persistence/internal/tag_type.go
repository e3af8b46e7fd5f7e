package internal

import (
	catalogDomain "tagback-server/internal/catalog/domain"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	"time"

	"gorm.io/datatypes"
)

type TagType struct {
	ID                string                              `gorm:"primaryKey"`
	Slug              string                              `gorm:"uniqueIndex;not null"`
	Name              string                              `gorm:"not null"`
	Description       string
	Icon              string
	Color             string
	FieldGroups       datatypes.JSONSlice[FieldGroup]     `gorm:"not null"`
	DefaultVisibility datatypes.JSONType[map[string]bool] `gorm:"not null"`
	IsActive          bool                                `gorm:"index"`
	SortOrder         int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (TagType) TableName() string {
	return "tag_types"
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

func (m TagType) ToDomain() catalogDomain.TagType {
	groups := make([]catalogDomain.FieldGroup, len(m.FieldGroups))
	for i, group := range m.FieldGroups {
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
		groups[i] = catalogDomain.FieldGroup{
			Key:        group.Key,
			Label:      group.Label,
			Icon:       group.Icon,
			AlertStyle: group.AlertStyle,
			Fields:     fields,
		}
	}

	visibility := m.DefaultVisibility.Data()
	if visibility == nil {
		visibility = make(map[string]bool)
	}

	return catalogDomain.TagType{
		ID:                shareddomain.ID(m.ID),
		Slug:              shareddomain.Slug(m.Slug),
		Name:              shareddomain.DisplayName(m.Name),
		Description:       shareddomain.Description(m.Description),
		Icon:              m.Icon,
		Color:             m.Color,
		FieldGroups:       groups,
		DefaultVisibility: visibility,
		IsActive:          m.IsActive,
		SortOrder:         m.SortOrder,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func FromTagType(value catalogDomain.TagType) TagType {
	groups := make([]FieldGroup, len(value.FieldGroups))
	for i, group := range value.FieldGroups {
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

	return TagType{
		ID:                value.ID.String(),
		Slug:              value.Slug.String(),
		Name:              string(value.Name),
		Description:       string(value.Description),
		Icon:              value.Icon,
		Color:             value.Color,
		FieldGroups:       datatypes.NewJSONSlice(groups),
		DefaultVisibility: datatypes.NewJSONType(value.DefaultVisibility),
		IsActive:          value.IsActive,
		SortOrder:         value.SortOrder,
		CreatedAt:         value.CreatedAt,
		UpdatedAt:         value.UpdatedAt,
	}
}
