package usecases

//go:generate mockgen -source=./scan_service.go -destination=../../../test/unit/doubles/tags/usecases/scan_service_mock.go -package=usecases -mock_names=ScanService=MockScanService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"tagback-server/internal/infra/async"
	itemsUsecases "tagback-server/internal/items/usecases"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	tagsDomain "tagback-server/internal/tags/domain"
)

const (
	ScanTopic       async.BrokerTopicName = "tag_scans"
	TagScannedEvent                       = "tag_scanned"
)

// TagView is a linked tag together with the item it currently resolves to.
type TagView struct {
	Tag  tagsDomain.Tag
	Item itemsUsecases.ResolvedItem
}

type ScanService interface {
	ResolveTag(ctx context.Context, code string) (TagView, error)
	ScanTag(ctx context.Context, code string, client shareddomain.ClientInfo) (TagView, error)
	ShareLocation(ctx context.Context, code string, report tagsDomain.LocationReport) error
	ListItemScans(ctx context.Context, ownerID, itemID shareddomain.ID, pagination Pagination) ([]tagsDomain.Scan, int, error)
	// AnnounceScan pushes an already stored scan to live subscribers.
	AnnounceScan(ctx context.Context, scan tagsDomain.Scan)
}

func NewScanService(
	tags TagRepository,
	scans ScanRepository,
	items ItemResolver,
	notifier OwnerNotifier,
	broker async.InternalBroker,
) *SimpleScanService {
	return &SimpleScanService{
		tags:     tags,
		scans:    scans,
		items:    items,
		notifier: notifier,
		broker:   broker,
	}
}

var _ ScanService = (*SimpleScanService)(nil)

type SimpleScanService struct {
	tags     TagRepository
	scans    ScanRepository
	items    ItemResolver
	notifier OwnerNotifier
	broker   async.InternalBroker
}

func (s *SimpleScanService) ResolveTag(ctx context.Context, raw string) (TagView, error) {
	code, err := tagsDomain.ParseCode(raw)
	if err != nil {
		return TagView{}, ErrTagNotFound
	}

	tag, err := s.tags.GetByCode(ctx, code)
	if errors.Is(err, ErrTagNotFound) {
		return TagView{}, ErrTagNotFound
	}
	if err != nil {
		return TagView{}, fmt.Errorf("getting tag: %w", err)
	}

	if !tag.IsLinked() {
		return TagView{}, tagsDomain.ErrTagNotLinked
	}

	resolved, err := s.items.ResolveItem(ctx, tag.ItemID)
	if errors.Is(err, itemsUsecases.ErrItemNotFound) {
		slog.Warn("tag points at a missing item",
			slog.String("code", tag.Code.String()),
			slog.String("item_id", tag.ItemID.String()))
		return TagView{}, tagsDomain.ErrTagNotLinked
	}
	if err != nil {
		return TagView{}, fmt.Errorf("resolving item: %w", err)
	}

	return TagView{Tag: tag, Item: resolved}, nil
}

// ScanTag resolves what a stranger sees. Recording the visit and telling the
// owner never fail the view.
func (s *SimpleScanService) ScanTag(ctx context.Context, code string, client shareddomain.ClientInfo) (TagView, error) {
	view, err := s.ResolveTag(ctx, code)
	if err != nil {
		return TagView{}, err
	}

	scan := tagsDomain.NewScan(view.Tag, tagsDomain.ScanKindView, client)
	if err := s.scans.Record(ctx, scan); err != nil {
		slog.Warn("recording scan", slog.String("code", scan.Code.String()), slog.String("error", err.Error()))
	} else {
		view.Tag.ScanCount++
		view.Tag.LastScannedAt = &scan.CreatedAt
		s.AnnounceScan(ctx, scan)
	}

	s.notifier.NotifyItemScanned(ctx, ScanNotice{Item: view.Item.Item, Scan: scan})

	return view, nil
}

func (s *SimpleScanService) ShareLocation(ctx context.Context, code string, report tagsDomain.LocationReport) error {
	if err := report.Validate(); err != nil {
		return err
	}

	view, err := s.ResolveTag(ctx, code)
	if err != nil {
		return err
	}

	scan := tagsDomain.NewScan(view.Tag, tagsDomain.ScanKindLocation, report.Client)
	scan.Location = report.Location
	scan.Finder = report.Finder

	if err := s.scans.Record(ctx, scan); err != nil {
		slog.Error("recording shared location", slog.String("code", scan.Code.String()), slog.String("error", err.Error()))
		return fmt.Errorf("recording scan: %w", err)
	}

	s.AnnounceScan(ctx, scan)
	s.notifier.NotifyItemScanned(ctx, ScanNotice{Item: view.Item.Item, Scan: scan})

	return nil
}

func (s *SimpleScanService) ListItemScans(
	ctx context.Context,
	ownerID, itemID shareddomain.ID,
	pagination Pagination,
) ([]tagsDomain.Scan, int, error) {
	if _, err := s.items.GetItem(ctx, ownerID, itemID); err != nil {
		return nil, 0, err
	}

	scans, total, err := s.scans.FindAllByItem(ctx, itemID, pagination)
	if err != nil {
		return nil, 0, fmt.Errorf("listing scans: %w", err)
	}

	return scans, total, nil
}

func (s *SimpleScanService) AnnounceScan(ctx context.Context, scan tagsDomain.Scan) {
	err := s.broker.Publish(ctx, ScanTopic, async.BrokerMessage{
		Event: TagScannedEvent,
		Value: scan,
	})
	if err != nil && !errors.Is(err, async.ErrTopicNotFound) {
		slog.Error("announcing scan", slog.String("item_id", scan.ItemID.String()), slog.String("error", err.Error()))
	}
}
