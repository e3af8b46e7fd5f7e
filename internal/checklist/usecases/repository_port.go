package usecases

import (
	"context"
	"errors"
	checklistDomain "tagback-server/internal/checklist/domain"
	itemsDomain "tagback-server/internal/items/domain"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	tagsDomain "tagback-server/internal/tags/domain"
	tagsUsecases "tagback-server/internal/tags/usecases"
)

var ErrNotChecklist = errors.New("item is not a checklist")

type Pagination struct {
	Limit  int
	Offset int
}

type SubmissionRepository interface {
	// CreateWithScan stores the submission, its scan and the tag's counter
	// bump in a single transaction.
	CreateWithScan(ctx context.Context, submission checklistDomain.Submission, scan tagsDomain.Scan) error
	// FindAllByItem pages submissions newest first.
	FindAllByItem(ctx context.Context, itemID shareddomain.ID, pagination Pagination) ([]checklistDomain.Submission, int, error)
}

// TagResolver is the part of the tags context a submission goes through.
type TagResolver interface {
	ResolveTag(ctx context.Context, code string) (tagsUsecases.TagView, error)
	AnnounceScan(ctx context.Context, scan tagsDomain.Scan)
}

type ItemAuthorizer interface {
	GetItem(ctx context.Context, ownerID, id shareddomain.ID) (itemsDomain.Item, error)
}
