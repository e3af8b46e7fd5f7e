package usecases

//go:generate mockgen -source=./tag_service.go -destination=../../../test/unit/doubles/tags/usecases/tag_service_mock.go -package=usecases -mock_names=TagService=MockTagService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	itemsUsecases "tagback-server/internal/items/usecases"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	tagsDomain "tagback-server/internal/tags/domain"
)

type TagService interface {
	ClaimTag(ctx context.Context, ownerID, itemID shareddomain.ID, code string) (tagsDomain.Tag, error)
	ReleaseTag(ctx context.Context, ownerID, itemID shareddomain.ID, code string) error
	ListItemTags(ctx context.Context, ownerID, itemID shareddomain.ID) ([]tagsDomain.Tag, error)
	ReleaseItemTags(ctx context.Context, itemID shareddomain.ID) (int, error)
}

func NewTagService(repository TagRepository, items ItemResolver) *SimpleTagService {
	return &SimpleTagService{
		ItemTagReleaser: NewItemTagReleaser(repository),
		repository:      repository,
		items:           items,
	}
}

var _ TagService = (*SimpleTagService)(nil)

type SimpleTagService struct {
	*ItemTagReleaser
	repository TagRepository
	items      ItemResolver
}

// NewItemTagReleaser builds the releaser the items context calls on item
// deletion. It only needs the tag store, so items can be built before tags.
func NewItemTagReleaser(repository TagRepository) *ItemTagReleaser {
	return &ItemTagReleaser{repository: repository}
}

var _ itemsUsecases.TagReleaser = (*ItemTagReleaser)(nil)

type ItemTagReleaser struct {
	repository TagRepository
}

// ClaimTag links an issued code to one of the owner's items. Claiming a code
// that is already linked to the same item is a no-op.
func (s *SimpleTagService) ClaimTag(ctx context.Context, ownerID, itemID shareddomain.ID, code string) (tagsDomain.Tag, error) {
	if _, err := s.items.GetItem(ctx, ownerID, itemID); err != nil {
		return tagsDomain.Tag{}, err
	}

	tag, err := s.getByCode(ctx, code)
	if err != nil {
		return tagsDomain.Tag{}, err
	}

	if tag.IsLinkedTo(itemID) {
		return tag, nil
	}

	if err := tag.Claim(ownerID, itemID); err != nil {
		return tagsDomain.Tag{}, err
	}

	if err := s.repository.Claim(ctx, tag); err != nil {
		if errors.Is(err, tagsDomain.ErrTagAlreadyLinked) {
			return tagsDomain.Tag{}, err
		}
		slog.Error("claiming tag", slog.String("code", tag.Code.String()), slog.String("error", err.Error()))
		return tagsDomain.Tag{}, fmt.Errorf("claiming tag: %w", err)
	}

	slog.Info("tag claimed",
		slog.String("code", tag.Code.String()),
		slog.String("item_id", itemID.String()))

	return tag, nil
}

func (s *SimpleTagService) ReleaseTag(ctx context.Context, ownerID, itemID shareddomain.ID, code string) error {
	if _, err := s.items.GetItem(ctx, ownerID, itemID); err != nil {
		return err
	}

	tag, err := s.getByCode(ctx, code)
	if err != nil {
		return err
	}

	if err := tag.Release(itemID); err != nil {
		return err
	}

	if err := s.repository.Release(ctx, tag); err != nil {
		slog.Error("releasing tag", slog.String("code", tag.Code.String()), slog.String("error", err.Error()))
		return fmt.Errorf("releasing tag: %w", err)
	}

	return nil
}

func (s *SimpleTagService) ListItemTags(ctx context.Context, ownerID, itemID shareddomain.ID) ([]tagsDomain.Tag, error) {
	if _, err := s.items.GetItem(ctx, ownerID, itemID); err != nil {
		return nil, err
	}

	tags, err := s.repository.FindAllByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("listing item tags: %w", err)
	}

	return tags, nil
}

// ReleaseItemTags frees every tag of an item that is being deleted. Ownership
// was checked by the caller.
func (r *ItemTagReleaser) ReleaseItemTags(ctx context.Context, itemID shareddomain.ID) (int, error) {
	released, err := r.repository.ReleaseAllByItem(ctx, itemID)
	if err != nil {
		return 0, fmt.Errorf("releasing item tags: %w", err)
	}
	return released, nil
}

func (s *SimpleTagService) getByCode(ctx context.Context, raw string) (tagsDomain.Tag, error) {
	code, err := tagsDomain.ParseCode(raw)
	if err != nil {
		// a malformed code can never have been issued
		return tagsDomain.Tag{}, ErrTagNotFound
	}

	tag, err := s.repository.GetByCode(ctx, code)
	if errors.Is(err, ErrTagNotFound) {
		return tagsDomain.Tag{}, ErrTagNotFound
	}
	if err != nil {
		return tagsDomain.Tag{}, fmt.Errorf("getting tag: %w", err)
	}

	return tag, nil
}
