package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/tags/usecases/repository_port_mock.go -package=usecases -mock_names=TagRepository=MockTagRepository,ScanRepository=MockScanRepository

import (
	"context"
	"errors"
	itemsDomain "tagback-server/internal/items/domain"
	itemsUsecases "tagback-server/internal/items/usecases"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	tagsDomain "tagback-server/internal/tags/domain"
)

var (
	ErrTagNotFound       = errors.New("tag not found")
	ErrDuplicateCode     = errors.New("tag code already exists")
	ErrIssuanceExhausted = errors.New("could not issue a unique tag code")
)

type Pagination struct {
	Limit  int
	Offset int
}

type TagRepository interface {
	// Create fails with ErrDuplicateCode when the code is taken.
	Create(ctx context.Context, tag tagsDomain.Tag) error
	ExistsByCode(ctx context.Context, code tagsDomain.Code) (bool, error)
	GetByCode(ctx context.Context, code tagsDomain.Code) (tagsDomain.Tag, error)
	FindAllByItem(ctx context.Context, itemID shareddomain.ID) ([]tagsDomain.Tag, error)
	// Claim links an issued tag, failing with ErrTagAlreadyLinked when a
	// concurrent claim got there first.
	Claim(ctx context.Context, tag tagsDomain.Tag) error
	Release(ctx context.Context, tag tagsDomain.Tag) error
	ReleaseAllByItem(ctx context.Context, itemID shareddomain.ID) (int, error)
	// ReconcileScanCounts recomputes every scan counter from the scan log.
	ReconcileScanCounts(ctx context.Context) (int64, error)
}

type ScanRepository interface {
	// Record stores the scan and bumps the tag's counter atomically.
	Record(ctx context.Context, scan tagsDomain.Scan) error
	FindAllByItem(ctx context.Context, itemID shareddomain.ID, pagination Pagination) ([]tagsDomain.Scan, int, error)
}

// ItemResolver is the part of the items context tags depend on.
type ItemResolver interface {
	GetItem(ctx context.Context, ownerID, id shareddomain.ID) (itemsDomain.Item, error)
	ResolveItem(ctx context.Context, id shareddomain.ID) (itemsUsecases.ResolvedItem, error)
}
