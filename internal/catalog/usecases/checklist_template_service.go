package usecases

//go:generate mockgen -source=./checklist_template_service.go -destination=../../../test/unit/doubles/catalog/usecases/checklist_template_service_mock.go -package=usecases -mock_names=ChecklistTemplateService=MockChecklistTemplateService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	catalogDomain "tagback-server/internal/catalog/domain"
	shareddomain "tagback-server/internal/shared_kernel/domain"
)

type ChecklistTemplateService interface {
	CreateTemplate(ctx context.Context, template catalogDomain.ChecklistTemplate) error
	GetTemplate(ctx context.Context, id shareddomain.ID) (catalogDomain.ChecklistTemplate, error)
	ListTemplates(ctx context.Context) ([]catalogDomain.ChecklistTemplate, error)
	DeleteTemplate(ctx context.Context, id shareddomain.ID) error
	ApplyTemplate(ctx context.Context, id shareddomain.ID) ([]catalogDomain.ChecklistItemDefinition, error)
}

func NewChecklistTemplateService(repository ChecklistTemplateRepository) *SimpleChecklistTemplateService {
	return &SimpleChecklistTemplateService{
		repository: repository,
	}
}

var _ ChecklistTemplateService = (*SimpleChecklistTemplateService)(nil)

type SimpleChecklistTemplateService struct {
	repository ChecklistTemplateRepository
}

func (s *SimpleChecklistTemplateService) CreateTemplate(ctx context.Context, template catalogDomain.ChecklistTemplate) error {
	if err := s.repository.Create(ctx, template); err != nil {
		slog.Error("creating checklist template", slog.String("error", err.Error()))
		return fmt.Errorf("creating checklist template: %w", err)
	}

	return nil
}

func (s *SimpleChecklistTemplateService) GetTemplate(ctx context.Context, id shareddomain.ID) (catalogDomain.ChecklistTemplate, error) {
	template, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			return catalogDomain.ChecklistTemplate{}, ErrTemplateNotFound
		}
		return catalogDomain.ChecklistTemplate{}, fmt.Errorf("getting checklist template: %w", err)
	}

	return template, nil
}

func (s *SimpleChecklistTemplateService) ListTemplates(ctx context.Context) ([]catalogDomain.ChecklistTemplate, error) {
	templates, err := s.repository.FindAll(ctx)
	if err != nil {
		slog.Error("listing checklist templates", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing checklist templates: %w", err)
	}

	return templates, nil
}

func (s *SimpleChecklistTemplateService) DeleteTemplate(ctx context.Context, id shareddomain.ID) error {
	if _, err := s.GetTemplate(ctx, id); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		slog.Error("deleting checklist template", slog.String("error", err.Error()))
		return fmt.Errorf("deleting checklist template: %w", err)
	}

	return nil
}

// ApplyTemplate returns the template items with fresh ids, ready to be stored
// as an item's checklist.
func (s *SimpleChecklistTemplateService) ApplyTemplate(ctx context.Context, id shareddomain.ID) ([]catalogDomain.ChecklistItemDefinition, error) {
	template, err := s.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	return template.Instantiate(), nil
}
