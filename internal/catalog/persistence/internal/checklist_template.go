package internal

import (
	catalogDomain "tagback-server/internal/catalog/domain"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	"time"

	"gorm.io/datatypes"
)

type ChecklistTemplate struct {
	ID          string                             `gorm:"primaryKey"`
	Name        string                             `gorm:"not null"`
	Description string
	Items       datatypes.JSONSlice[ChecklistItem] `gorm:"not null"`
	CreatedAt   time.Time
}

func (ChecklistTemplate) TableName() string {
	return "checklist_templates"
}

type ChecklistItem struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

func (m ChecklistTemplate) ToDomain() catalogDomain.ChecklistTemplate {
	items := make([]catalogDomain.ChecklistItemDefinition, len(m.Items))
	for i, item := range m.Items {
		items[i] = catalogDomain.ChecklistItemDefinition{
			ID:       item.ID,
			Label:    item.Label,
			Type:     catalogDomain.ChecklistItemType(item.Type),
			Required: item.Required,
		}
	}

	return catalogDomain.ChecklistTemplate{
		ID:          shareddomain.ID(m.ID),
		Name:        shareddomain.Name(m.Name),
		Description: shareddomain.Description(m.Description),
		Items:       items,
		CreatedAt:   m.CreatedAt,
	}
}

func FromChecklistTemplate(value catalogDomain.ChecklistTemplate) ChecklistTemplate {
	items := make([]ChecklistItem, len(value.Items))
	for i, item := range value.Items {
		items[i] = ChecklistItem{
			ID:       item.ID,
			Label:    item.Label,
			Type:     string(item.Type),
			Required: item.Required,
		}
	}

	return ChecklistTemplate{
		ID:          value.ID.String(),
		Name:        string(value.Name),
		Description: string(value.Description),
		Items:       datatypes.NewJSONSlice(items),
		CreatedAt:   value.CreatedAt,
	}
}
