package usecases

import (
	"context"
	itemsDomain "tagback-server/internal/items/domain"
	tagsDomain "tagback-server/internal/tags/domain"
)

// ScanNotice is what an owner is told about a scan of one of their tags.
type ScanNotice struct {
	Item itemsDomain.Item
	Scan tagsDomain.Scan
}

// OwnerNotifier hands scan notices to the notification pipeline. It must not
// block on delivery.
type OwnerNotifier interface {
	NotifyItemScanned(ctx context.Context, notice ScanNotice)
}
