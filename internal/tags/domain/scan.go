package domain

import (
	"tagback-server/internal/infra/utils"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	"time"
)

type ScanKind string

const (
	ScanKindView      ScanKind = "view"
	ScanKindLocation  ScanKind = "location"
	ScanKindChecklist ScanKind = "checklist"
)

// Scan is a single visit of a tag's public page.
type Scan struct {
	ID        shareddomain.ID
	TagID     shareddomain.ID
	Code      Code
	ItemID    shareddomain.ID
	Kind      ScanKind
	Location  *shareddomain.GeoPoint
	Finder    shareddomain.FinderContact
	Client    shareddomain.ClientInfo
	CreatedAt time.Time
}

func NewScan(tag Tag, kind ScanKind, client shareddomain.ClientInfo) Scan {
	return Scan{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		TagID:     tag.ID,
		Code:      tag.Code,
		ItemID:    tag.ItemID,
		Kind:      kind,
		Client:    client,
		CreatedAt: time.Now(),
	}
}

// LocationReport is what a finder chooses to share from the public page.
type LocationReport struct {
	Location *shareddomain.GeoPoint
	Finder   shareddomain.FinderContact
	Client   shareddomain.ClientInfo
}

func (r LocationReport) Validate() error {
	verr := &shareddomain.ValidationError{}

	if r.Location == nil && r.Finder.IsEmpty() {
		verr.Add(shareddomain.Required("location"))
	}
	if r.Location != nil {
		if err := r.Location.Validate(); err != nil {
			verr.Add(shareddomain.FieldErrors(err)...)
		}
	}
	if r.Finder.Email != "" && !utils.IsValidEmail(r.Finder.Email) {
		verr.Add(shareddomain.Invalid("finder.email", "must be a valid email address"))
	}

	return verr.OrNil()
}
