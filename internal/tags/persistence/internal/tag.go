package internal

import (
	shareddomain "tagback-server/internal/shared_kernel/domain"
	tagsDomain "tagback-server/internal/tags/domain"
	"time"
)

type Tag struct {
	ID            string  `gorm:"primaryKey"`
	Code          string  `gorm:"uniqueIndex;not null"`
	Status        string  `gorm:"index;not null"`
	ItemID        *string `gorm:"index"`
	OwnerID       *string
	Batch         string
	ScanCount     int64 `gorm:"not null;default:0"`
	LastScannedAt *time.Time
	IssuedAt      time.Time `gorm:"not null"`
	ClaimedAt     *time.Time
}

func (Tag) TableName() string {
	return "tags"
}

func (m Tag) ToDomain() tagsDomain.Tag {
	return tagsDomain.Tag{
		ID:            shareddomain.ID(m.ID),
		Code:          tagsDomain.Code(m.Code),
		Status:        tagsDomain.TagStatus(m.Status),
		ItemID:        shareddomain.ID(deref(m.ItemID)),
		OwnerID:       shareddomain.ID(deref(m.OwnerID)),
		Batch:         m.Batch,
		ScanCount:     m.ScanCount,
		LastScannedAt: m.LastScannedAt,
		IssuedAt:      m.IssuedAt,
		ClaimedAt:     m.ClaimedAt,
	}
}

func FromTag(tag tagsDomain.Tag) Tag {
	return Tag{
		ID:            tag.ID.String(),
		Code:          tag.Code.String(),
		Status:        string(tag.Status),
		ItemID:        nullable(tag.ItemID.String()),
		OwnerID:       nullable(tag.OwnerID.String()),
		Batch:         tag.Batch,
		ScanCount:     tag.ScanCount,
		LastScannedAt: tag.LastScannedAt,
		IssuedAt:      tag.IssuedAt,
		ClaimedAt:     tag.ClaimedAt,
	}
}

func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
