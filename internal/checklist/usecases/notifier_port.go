package usecases

import (
	"context"
	checklistDomain "tagback-server/internal/checklist/domain"
	itemsDomain "tagback-server/internal/items/domain"
)

type SubmissionNotice struct {
	Item       itemsDomain.Item
	Submission checklistDomain.Submission
}

// SubmissionNotifier must not block on delivery.
type SubmissionNotifier interface {
	NotifyChecklistSubmitted(ctx context.Context, notice SubmissionNotice)
}
