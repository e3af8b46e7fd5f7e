package internal

import (
	catalogDomain "tagback-server/internal/catalog/domain"
	"time"
)

type ChecklistItem struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

type ChecklistTemplateRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Items       []ChecklistItem `json:"items"`
}

type ChecklistTemplateResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Items       []ChecklistItem `json:"items"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type ChecklistTemplateListResponse struct {
	Data []ChecklistTemplateResponse `json:"data"`
}

type AppliedTemplateResponse struct {
	ChecklistItems []ChecklistItem `json:"checklistItems"`
}

func ToChecklistItemDefinitions(items []ChecklistItem) []catalogDomain.ChecklistItemDefinition {
	result := make([]catalogDomain.ChecklistItemDefinition, len(items))
	for i, item := range items {
		result[i] = catalogDomain.ChecklistItemDefinition{
			ID:       item.ID,
			Label:    item.Label,
			Type:     catalogDomain.ChecklistItemType(item.Type),
			Required: item.Required,
		}
	}
	return result
}

func ToChecklistItems(items []catalogDomain.ChecklistItemDefinition) []ChecklistItem {
	result := make([]ChecklistItem, len(items))
	for i, item := range items {
		result[i] = ChecklistItem{
			ID:       item.ID,
			Label:    item.Label,
			Type:     string(item.Type),
			Required: item.Required,
		}
	}
	return result
}

func ToChecklistTemplateResponse(template catalogDomain.ChecklistTemplate) ChecklistTemplateResponse {
	return ChecklistTemplateResponse{
		ID:          template.ID.String(),
		Name:        string(template.Name),
		Description: string(template.Description),
		Items:       ToChecklistItems(template.Items),
		CreatedAt:   template.CreatedAt,
	}
}
