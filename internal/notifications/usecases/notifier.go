package usecases

import (
	"context"
	"errors"
	"log/slog"
	checklistUsecases "tagback-server/internal/checklist/usecases"
	"tagback-server/internal/infra/async"
	tagsUsecases "tagback-server/internal/tags/usecases"
)

const (
	NotificationsTopic      async.BrokerTopicName = "owner_notifications"
	ItemScannedEvent                              = "item_scanned"
	ChecklistSubmittedEvent                       = "checklist_submitted"
)

// Notifier queues owner notifications on the internal broker. Publishing
// never fails the caller; a missing subscriber only means nobody delivers.
func NewNotifier(broker async.InternalBroker) *Notifier {
	return &Notifier{broker: broker}
}

var (
	_ tagsUsecases.OwnerNotifier           = (*Notifier)(nil)
	_ checklistUsecases.SubmissionNotifier = (*Notifier)(nil)
)

type Notifier struct {
	broker async.InternalBroker
}

func (n *Notifier) NotifyItemScanned(ctx context.Context, notice tagsUsecases.ScanNotice) {
	n.publish(ctx, ItemScannedEvent, notice.Item.ID.String(), notice)
}

func (n *Notifier) NotifyChecklistSubmitted(ctx context.Context, notice checklistUsecases.SubmissionNotice) {
	n.publish(ctx, ChecklistSubmittedEvent, notice.Item.ID.String(), notice)
}

func (n *Notifier) publish(ctx context.Context, event, itemID string, value any) {
	err := n.broker.Publish(ctx, NotificationsTopic, async.BrokerMessage{
		Event: event,
		Value: value,
	})
	if errors.Is(err, async.ErrTopicNotFound) {
		slog.Debug("no notification subscribers", slog.String("event", event), slog.String("item_id", itemID))
		return
	}
	if err != nil {
		slog.Error("queueing owner notification",
			slog.String("event", event),
			slog.String("item_id", itemID),
			slog.String("error", err.Error()))
	}
}
