package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/catalog/usecases/repository_port_mock.go -package=usecases -mock_names=TagTypeRepository=MockTagTypeRepository,TagTypeUsage=MockTagTypeUsage,ChecklistTemplateRepository=MockChecklistTemplateRepository

import (
	"context"
	"errors"
	catalogDomain "tagback-server/internal/catalog/domain"
	shareddomain "tagback-server/internal/shared_kernel/domain"
)

var (
	ErrTagTypeNotFound  = errors.New("tag type not found")
	ErrTagTypeInactive  = errors.New("tag type is inactive")
	ErrDuplicateSlug    = errors.New("tag type slug already exists")
	ErrTemplateNotFound = errors.New("checklist template not found")
)

type TagTypeRepository interface {
	Create(ctx context.Context, tagType catalogDomain.TagType) error
	GetByID(ctx context.Context, id shareddomain.ID) (catalogDomain.TagType, error)
	GetBySlug(ctx context.Context, slug shareddomain.Slug) (catalogDomain.TagType, error)
	FindAll(ctx context.Context, activeOnly bool) ([]catalogDomain.TagType, error)
	Update(ctx context.Context, tagType catalogDomain.TagType) error
	Delete(ctx context.Context, id shareddomain.ID) error
}

// TagTypeUsage tells the registry whether any item still points at a tag
// type. It is implemented by the items store.
type TagTypeUsage interface {
	CountItemsByTagType(ctx context.Context, tagTypeID shareddomain.ID) (int64, error)
}

type ChecklistTemplateRepository interface {
	Create(ctx context.Context, template catalogDomain.ChecklistTemplate) error
	GetByID(ctx context.Context, id shareddomain.ID) (catalogDomain.ChecklistTemplate, error)
	FindAll(ctx context.Context) ([]catalogDomain.ChecklistTemplate, error)
	Delete(ctx context.Context, id shareddomain.ID) error
}
