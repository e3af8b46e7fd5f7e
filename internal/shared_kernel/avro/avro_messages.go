package avro

import (
	"time"

	"github.com/linkedin/goavro/v2"
)

// Message is implemented by every record published on a topic.
type Message interface {
	// Subject is the topic the record is published on; the schema registry
	// subject is Subject() + "-value".
	Subject() string
	Schema() string
	// Native returns the goavro representation of the record.
	Native() map[string]any
}

const (
	TagTypesSubject             = "tag_types"
	ItemsSubject                = "items"
	TagsSubject                 = "tags"
	TagScansSubject             = "tag_scans"
	ChecklistSubmissionsSubject = "checklist_submissions"
)

type AvroTagType struct {
	ID         string    `avro:"id"`
	Slug       string    `avro:"slug"`
	Name       string    `avro:"name"`
	IsActive   bool      `avro:"is_active"`
	FieldCount int       `avro:"field_count"`
	SortOrder  int       `avro:"sort_order"`
	CreatedAt  time.Time `avro:"created_at"`
	UpdatedAt  time.Time `avro:"updated_at"`
}

func (AvroTagType) Subject() string { return TagTypesSubject }
func (AvroTagType) Schema() string  { return tagTypeSchema }

func (m AvroTagType) Native() map[string]any {
	return map[string]any{
		"id":          m.ID,
		"slug":        m.Slug,
		"name":        m.Name,
		"is_active":   m.IsActive,
		"field_count": m.FieldCount,
		"sort_order":  m.SortOrder,
		"created_at":  m.CreatedAt,
		"updated_at":  m.UpdatedAt,
	}
}

type AvroItem struct {
	ID        string     `avro:"id"`
	OwnerID   string     `avro:"owner_id"`
	TagTypeID string     `avro:"tag_type_id"`
	Name      string     `avro:"name"`
	IsActive  bool       `avro:"is_active"`
	CreatedAt time.Time  `avro:"created_at"`
	UpdatedAt time.Time  `avro:"updated_at"`
	DeletedAt *time.Time `avro:"deleted_at"`
}

func (AvroItem) Subject() string { return ItemsSubject }
func (AvroItem) Schema() string  { return itemSchema }

func (m AvroItem) Native() map[string]any {
	return map[string]any{
		"id":          m.ID,
		"owner_id":    m.OwnerID,
		"tag_type_id": m.TagTypeID,
		"name":        m.Name,
		"is_active":   m.IsActive,
		"created_at":  m.CreatedAt,
		"updated_at":  m.UpdatedAt,
		"deleted_at":  nullableTime(m.DeletedAt),
	}
}

type AvroTag struct {
	Code      string     `avro:"code"`
	Status    string     `avro:"status"`
	ItemID    *string    `avro:"item_id"`
	Batch     *string    `avro:"batch"`
	ScanCount int64      `avro:"scan_count"`
	IssuedAt  time.Time  `avro:"issued_at"`
	ClaimedAt *time.Time `avro:"claimed_at"`
}

func (AvroTag) Subject() string { return TagsSubject }
func (AvroTag) Schema() string  { return tagSchema }

func (m AvroTag) Native() map[string]any {
	return map[string]any{
		"code":       m.Code,
		"status":     m.Status,
		"item_id":    nullableString(m.ItemID),
		"batch":      nullableString(m.Batch),
		"scan_count": m.ScanCount,
		"issued_at":  m.IssuedAt,
		"claimed_at": nullableTime(m.ClaimedAt),
	}
}

type AvroTagScan struct {
	ID        string    `avro:"id"`
	Code      string    `avro:"code"`
	ItemID    string    `avro:"item_id"`
	Kind      string    `avro:"kind"`
	Latitude  *float64  `avro:"latitude"`
	Longitude *float64  `avro:"longitude"`
	ScannedAt time.Time `avro:"scanned_at"`
}

func (AvroTagScan) Subject() string { return TagScansSubject }
func (AvroTagScan) Schema() string  { return tagScanSchema }

func (m AvroTagScan) Native() map[string]any {
	return map[string]any{
		"id":         m.ID,
		"code":       m.Code,
		"item_id":    m.ItemID,
		"kind":       m.Kind,
		"latitude":   nullableDouble(m.Latitude),
		"longitude":  nullableDouble(m.Longitude),
		"scanned_at": m.ScannedAt,
	}
}

type AvroChecklistSubmission struct {
	ID          string    `avro:"id"`
	ItemID      string    `avro:"item_id"`
	Code        string    `avro:"code"`
	ResultCount int       `avro:"result_count"`
	SubmittedBy *string   `avro:"submitted_by"`
	SubmittedAt time.Time `avro:"submitted_at"`
}

func (AvroChecklistSubmission) Subject() string { return ChecklistSubmissionsSubject }
func (AvroChecklistSubmission) Schema() string  { return checklistSubmissionSchema }

func (m AvroChecklistSubmission) Native() map[string]any {
	return map[string]any{
		"id":           m.ID,
		"item_id":      m.ItemID,
		"code":         m.Code,
		"result_count": m.ResultCount,
		"submitted_by": nullableString(m.SubmittedBy),
		"submitted_at": m.SubmittedAt,
	}
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return goavro.Union("string", *value)
}

func nullableDouble(value *float64) any {
	if value == nil {
		return nil
	}
	return goavro.Union("double", *value)
}

func nullableTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return goavro.Union("long.timestamp-millis", *value)
}
