package domain

import (
	"tagback-server/internal/infra/utils"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	"time"
)

type TagStatus string

const (
	TagStatusIssued  TagStatus = "issued"
	TagStatusClaimed TagStatus = "claimed"
)

// Tag is a printed code. Once claimed it resolves to exactly one item until
// the owner releases it.
type Tag struct {
	ID            shareddomain.ID
	Code          Code
	Status        TagStatus
	ItemID        shareddomain.ID
	OwnerID       shareddomain.ID
	Batch         string
	ScanCount     int64
	LastScannedAt *time.Time
	IssuedAt      time.Time
	ClaimedAt     *time.Time
}

func NewTag(code Code, batch string) Tag {
	return Tag{
		ID:       shareddomain.ID(utils.GenerateUUID()),
		Code:     code,
		Status:   TagStatusIssued,
		Batch:    batch,
		IssuedAt: time.Now(),
	}
}

func (t Tag) IsLinked() bool {
	return t.Status == TagStatusClaimed && !t.ItemID.IsEmpty()
}

func (t Tag) IsLinkedTo(itemID shareddomain.ID) bool {
	return t.IsLinked() && t.ItemID == itemID
}

func (t *Tag) Claim(ownerID, itemID shareddomain.ID) error {
	if t.IsLinked() {
		return ErrTagAlreadyLinked
	}

	now := time.Now()
	t.Status = TagStatusClaimed
	t.OwnerID = ownerID
	t.ItemID = itemID
	t.ClaimedAt = &now
	return nil
}

// Release returns the tag to the issued pool. Its scan history stays with
// the item it was linked to.
func (t *Tag) Release(itemID shareddomain.ID) error {
	if !t.IsLinkedTo(itemID) {
		return ErrTagNotLinked
	}

	t.Status = TagStatusIssued
	t.OwnerID = ""
	t.ItemID = ""
	t.ClaimedAt = nil
	return nil
}
