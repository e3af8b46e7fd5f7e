package usecases_test

import (
	"context"
	catalogDomain "tagback-server/internal/catalog/domain"
	catalogUsecases "tagback-server/internal/catalog/usecases"
	shareddomain "tagback-server/internal/shared_kernel/domain"
)

type fakeTagTypeRepository struct {
	tagTypes map[string]catalogDomain.TagType

	createCalled  bool
	updateCalled  bool
	deleteCalled  bool
	createError   error
	getByIDError  error
	findAllError  error
	updateError   error
	deleteError   error
	lastActiveArg bool
}

func newFakeTagTypeRepository() *fakeTagTypeRepository {
	return &fakeTagTypeRepository{
		tagTypes: make(map[string]catalogDomain.TagType),
	}
}

func (f *fakeTagTypeRepository) Create(ctx context.Context, tagType catalogDomain.TagType) error {
	f.createCalled = true
	if f.createError != nil {
		return f.createError
	}
	f.tagTypes[tagType.ID.String()] = tagType
	return nil
}

func (f *fakeTagTypeRepository) GetByID(ctx context.Context, id shareddomain.ID) (catalogDomain.TagType, error) {
	if f.getByIDError != nil {
		return catalogDomain.TagType{}, f.getByIDError
	}
	if tagType, ok := f.tagTypes[id.String()]; ok {
		return tagType, nil
	}
	return catalogDomain.TagType{}, catalogUsecases.ErrTagTypeNotFound
}

func (f *fakeTagTypeRepository) GetBySlug(ctx context.Context, slug shareddomain.Slug) (catalogDomain.TagType, error) {
	for _, tagType := range f.tagTypes {
		if tagType.Slug == slug {
			return tagType, nil
		}
	}
	return catalogDomain.TagType{}, catalogUsecases.ErrTagTypeNotFound
}

func (f *fakeTagTypeRepository) FindAll(ctx context.Context, activeOnly bool) ([]catalogDomain.TagType, error) {
	f.lastActiveArg = activeOnly
	if f.findAllError != nil {
		return nil, f.findAllError
	}
	result := make([]catalogDomain.TagType, 0, len(f.tagTypes))
	for _, tagType := range f.tagTypes {
		if activeOnly && !tagType.IsActive {
			continue
		}
		result = append(result, tagType)
	}
	return result, nil
}

func (f *fakeTagTypeRepository) Update(ctx context.Context, tagType catalogDomain.TagType) error {
	f.updateCalled = true
	if f.updateError != nil {
		return f.updateError
	}
	f.tagTypes[tagType.ID.String()] = tagType
	return nil
}

func (f *fakeTagTypeRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	f.deleteCalled = true
	if f.deleteError != nil {
		return f.deleteError
	}
	delete(f.tagTypes, id.String())
	return nil
}

type fakeTagTypeUsage struct {
	counts map[string]int64
	err    error
}

func (f *fakeTagTypeUsage) CountItemsByTagType(ctx context.Context, tagTypeID shareddomain.ID) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[tagTypeID.String()], nil
}

type fakeChecklistTemplateRepository struct {
	templates   map[string]catalogDomain.ChecklistTemplate
	createError error
}

func newFakeChecklistTemplateRepository() *fakeChecklistTemplateRepository {
	return &fakeChecklistTemplateRepository{
		templates: make(map[string]catalogDomain.ChecklistTemplate),
	}
}

func (f *fakeChecklistTemplateRepository) Create(ctx context.Context, template catalogDomain.ChecklistTemplate) error {
	if f.createError != nil {
		return f.createError
	}
	f.templates[template.ID.String()] = template
	return nil
}

func (f *fakeChecklistTemplateRepository) GetByID(ctx context.Context, id shareddomain.ID) (catalogDomain.ChecklistTemplate, error) {
	if template, ok := f.templates[id.String()]; ok {
		return template, nil
	}
	return catalogDomain.ChecklistTemplate{}, catalogUsecases.ErrTemplateNotFound
}

func (f *fakeChecklistTemplateRepository) FindAll(ctx context.Context) ([]catalogDomain.ChecklistTemplate, error) {
	result := make([]catalogDomain.ChecklistTemplate, 0, len(f.templates))
	for _, template := range f.templates {
		result = append(result, template)
	}
	return result, nil
}

func (f *fakeChecklistTemplateRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	delete(f.templates, id.String())
	return nil
}
