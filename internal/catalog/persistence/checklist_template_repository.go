package persistence

import (
	"context"
	"errors"
	"fmt"
	catalogDomain "tagback-server/internal/catalog/domain"
	"tagback-server/internal/catalog/persistence/internal"
	"tagback-server/internal/catalog/usecases"
	"tagback-server/internal/infra/sql"
	shareddomain "tagback-server/internal/shared_kernel/domain"
)

func NewChecklistTemplateRepository(orm sql.ORM) (*SimpleChecklistTemplateRepository, error) {
	err := orm.AutoMigrate(&internal.ChecklistTemplate{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleChecklistTemplateRepository{
		orm: orm,
	}, nil
}

var _ usecases.ChecklistTemplateRepository = (*SimpleChecklistTemplateRepository)(nil)

type SimpleChecklistTemplateRepository struct {
	orm sql.ORM
}

func (r *SimpleChecklistTemplateRepository) Create(ctx context.Context, template catalogDomain.ChecklistTemplate) error {
	entity := internal.FromChecklistTemplate(template)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating checklist template in database: %w", err)
	}

	return nil
}

func (r *SimpleChecklistTemplateRepository) GetByID(ctx context.Context, id shareddomain.ID) (catalogDomain.ChecklistTemplate, error) {
	var entity internal.ChecklistTemplate
	err := r.orm.WithContext(ctx).First(&entity, "id = ?", id.String()).Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return catalogDomain.ChecklistTemplate{}, usecases.ErrTemplateNotFound
	}

	if err != nil {
		return catalogDomain.ChecklistTemplate{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleChecklistTemplateRepository) FindAll(ctx context.Context) ([]catalogDomain.ChecklistTemplate, error) {
	var entities []internal.ChecklistTemplate
	err := r.orm.WithContext(ctx).Order("name ASC").Find(&entities).Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]catalogDomain.ChecklistTemplate, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleChecklistTemplateRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	err := r.orm.WithContext(ctx).Delete(&internal.ChecklistTemplate{}, "id = ?", id.String()).Error()
	if err != nil {
		return fmt.Errorf("deleting checklist template from database: %w", err)
	}

	return nil
}
