package usecases

//go:generate mockgen -source=./tag_type_service.go -destination=../../../test/unit/doubles/catalog/usecases/tag_type_service_mock.go -package=usecases -mock_names=TagTypeService=MockTagTypeService

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	catalogDomain "tagback-server/internal/catalog/domain"
	shareddomain "tagback-server/internal/shared_kernel/domain"
)

// DeleteOutcome tells the caller which branch a tag type deletion took.
type DeleteOutcome string

const (
	DeleteOutcomeDeleted     DeleteOutcome = "deleted"
	DeleteOutcomeDeactivated DeleteOutcome = "deactivated"
)

type TagTypeService interface {
	CreateTagType(ctx context.Context, tagType catalogDomain.TagType) error
	GetTagType(ctx context.Context, id shareddomain.ID) (catalogDomain.TagType, error)
	GetTagTypeBySlug(ctx context.Context, slug shareddomain.Slug) (catalogDomain.TagType, error)
	ListTagTypes(ctx context.Context, activeOnly bool) ([]catalogDomain.TagType, error)
	UpdateTagType(ctx context.Context, id shareddomain.ID, update catalogDomain.TagTypeUpdate) (catalogDomain.TagType, error)
	DeleteTagType(ctx context.Context, id shareddomain.ID) (DeleteOutcome, error)
	ActivateTagType(ctx context.Context, id shareddomain.ID) error
	DeactivateTagType(ctx context.Context, id shareddomain.ID) error
	SeedPredefinedTagTypes(ctx context.Context) ([]catalogDomain.TagType, error)
}

func NewTagTypeService(repository TagTypeRepository, usage TagTypeUsage) *SimpleTagTypeService {
	return &SimpleTagTypeService{
		repository: repository,
		usage:      usage,
	}
}

var _ TagTypeService = (*SimpleTagTypeService)(nil)

type SimpleTagTypeService struct {
	repository TagTypeRepository
	usage      TagTypeUsage
}

func (s *SimpleTagTypeService) CreateTagType(ctx context.Context, tagType catalogDomain.TagType) error {
	if err := tagType.Validate(); err != nil {
		return err
	}

	_, err := s.repository.GetBySlug(ctx, tagType.Slug)
	if err == nil {
		return ErrDuplicateSlug
	}
	if !errors.Is(err, ErrTagTypeNotFound) {
		return fmt.Errorf("checking tag type slug: %w", err)
	}

	err = s.repository.Create(ctx, tagType)
	if errors.Is(err, ErrDuplicateSlug) {
		return ErrDuplicateSlug
	}
	if err != nil {
		slog.Error("creating tag type", slog.String("error", err.Error()))
		return fmt.Errorf("creating tag type: %w", err)
	}

	slog.Info("tag type created successfully",
		slog.String("id", tagType.ID.String()),
		slog.String("slug", tagType.Slug.String()))

	return nil
}

func (s *SimpleTagTypeService) GetTagType(ctx context.Context, id shareddomain.ID) (catalogDomain.TagType, error) {
	tagType, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTagTypeNotFound) {
			return catalogDomain.TagType{}, ErrTagTypeNotFound
		}
		slog.Error("getting tag type", slog.String("error", err.Error()))
		return catalogDomain.TagType{}, fmt.Errorf("getting tag type: %w", err)
	}

	return tagType, nil
}

func (s *SimpleTagTypeService) GetTagTypeBySlug(ctx context.Context, slug shareddomain.Slug) (catalogDomain.TagType, error) {
	tagType, err := s.repository.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrTagTypeNotFound) {
			return catalogDomain.TagType{}, ErrTagTypeNotFound
		}
		slog.Error("getting tag type by slug", slog.String("error", err.Error()))
		return catalogDomain.TagType{}, fmt.Errorf("getting tag type by slug: %w", err)
	}

	return tagType, nil
}

// ListTagTypes returns tag types ordered by sort order, then name.
func (s *SimpleTagTypeService) ListTagTypes(ctx context.Context, activeOnly bool) ([]catalogDomain.TagType, error) {
	tagTypes, err := s.repository.FindAll(ctx, activeOnly)
	if err != nil {
		slog.Error("listing tag types", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing tag types: %w", err)
	}

	result := make([]catalogDomain.TagType, 0, len(tagTypes))
	for _, tagType := range tagTypes {
		if activeOnly && !tagType.IsActive {
			continue
		}
		result = append(result, tagType)
	}

	slices.SortStableFunc(result, func(a, b catalogDomain.TagType) int {
		return cmp.Or(cmp.Compare(a.SortOrder, b.SortOrder), cmp.Compare(a.Name, b.Name))
	})

	return result, nil
}

// UpdateTagType applies update without touching items already stored against
// the previous definition.
func (s *SimpleTagTypeService) UpdateTagType(
	ctx context.Context,
	id shareddomain.ID,
	update catalogDomain.TagTypeUpdate,
) (catalogDomain.TagType, error) {
	tagType, err := s.GetTagType(ctx, id)
	if err != nil {
		return catalogDomain.TagType{}, err
	}

	if err := tagType.Apply(update); err != nil {
		return catalogDomain.TagType{}, err
	}

	if err := s.repository.Update(ctx, tagType); err != nil {
		slog.Error("updating tag type", slog.String("error", err.Error()))
		return catalogDomain.TagType{}, fmt.Errorf("updating tag type: %w", err)
	}

	return tagType, nil
}

// DeleteTagType hard deletes an unreferenced tag type. When items still use it
// the tag type is deactivated instead.
func (s *SimpleTagTypeService) DeleteTagType(ctx context.Context, id shareddomain.ID) (DeleteOutcome, error) {
	tagType, err := s.GetTagType(ctx, id)
	if err != nil {
		return "", err
	}

	count, err := s.usage.CountItemsByTagType(ctx, id)
	if err != nil {
		slog.Error("counting items by tag type", slog.String("error", err.Error()))
		return "", fmt.Errorf("counting items by tag type: %w", err)
	}

	if count > 0 {
		tagType.Deactivate()
		if err := s.repository.Update(ctx, tagType); err != nil {
			slog.Error("deactivating tag type", slog.String("error", err.Error()))
			return "", fmt.Errorf("deactivating tag type: %w", err)
		}

		slog.Info("tag type in use, deactivated instead of deleted",
			slog.String("id", id.String()),
			slog.Int64("items", count))

		return DeleteOutcomeDeactivated, nil
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		slog.Error("deleting tag type", slog.String("error", err.Error()))
		return "", fmt.Errorf("deleting tag type: %w", err)
	}

	return DeleteOutcomeDeleted, nil
}

func (s *SimpleTagTypeService) ActivateTagType(ctx context.Context, id shareddomain.ID) error {
	tagType, err := s.GetTagType(ctx, id)
	if err != nil {
		return err
	}

	tagType.Activate()
	return s.repository.Update(ctx, tagType)
}

func (s *SimpleTagTypeService) DeactivateTagType(ctx context.Context, id shareddomain.ID) error {
	tagType, err := s.GetTagType(ctx, id)
	if err != nil {
		return err
	}

	tagType.Deactivate()
	return s.repository.Update(ctx, tagType)
}

// SeedPredefinedTagTypes creates every predefined tag type whose slug is not
// registered yet and returns the ones it created.
func (s *SimpleTagTypeService) SeedPredefinedTagTypes(ctx context.Context) ([]catalogDomain.TagType, error) {
	slugs := make([]string, 0, len(catalogDomain.PredefinedTagTypes))
	for slug := range catalogDomain.PredefinedTagTypes {
		slugs = append(slugs, slug)
	}
	slices.Sort(slugs)

	created := make([]catalogDomain.TagType, 0)
	for _, slug := range slugs {
		tagType, _ := catalogDomain.NewPredefinedTagType(slug)

		err := s.CreateTagType(ctx, tagType)
		if errors.Is(err, ErrDuplicateSlug) {
			continue
		}
		if err != nil {
			return created, fmt.Errorf("seeding tag type %s: %w", slug, err)
		}

		created = append(created, tagType)
	}

	return created, nil
}
