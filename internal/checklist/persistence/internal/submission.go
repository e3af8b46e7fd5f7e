package internal

import (
	catalogDomain "tagback-server/internal/catalog/domain"
	checklistDomain "tagback-server/internal/checklist/domain"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	"time"

	"gorm.io/datatypes"
)

type Result struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

type ChecklistSubmission struct {
	ID             string                      `gorm:"primaryKey"`
	TagID          string                      `gorm:"index;not null"`
	ItemID         string                      `gorm:"index;not null"`
	Results        datatypes.JSONSlice[Result] `gorm:"not null"`
	SubmitterName  string                      `gorm:"not null"`
	SubmitterEmail string
	Latitude       *float64
	Longitude      *float64
	Accuracy       *float64
	UserAgent      string
	IPAddress      string
	Language       string
	CreatedAt      time.Time `gorm:"index"`
}

func (ChecklistSubmission) TableName() string {
	return "checklist_submissions"
}

func (m ChecklistSubmission) ToDomain() checklistDomain.Submission {
	results := make([]checklistDomain.Result, len(m.Results))
	for i, result := range m.Results {
		results[i] = checklistDomain.Result{
			ID:    result.ID,
			Label: result.Label,
			Type:  catalogDomain.ChecklistItemType(result.Type),
			Value: result.Value,
		}
	}

	submission := checklistDomain.Submission{
		ID:             shareddomain.ID(m.ID),
		TagID:          shareddomain.ID(m.TagID),
		ItemID:         shareddomain.ID(m.ItemID),
		Results:        results,
		SubmitterName:  m.SubmitterName,
		SubmitterEmail: m.SubmitterEmail,
		Client: shareddomain.ClientInfo{
			UserAgent: m.UserAgent,
			IPAddress: m.IPAddress,
			Language:  m.Language,
		},
		CreatedAt: m.CreatedAt,
	}

	if m.Latitude != nil && m.Longitude != nil {
		submission.Location = &shareddomain.GeoPoint{
			Latitude:  *m.Latitude,
			Longitude: *m.Longitude,
			Accuracy:  m.Accuracy,
		}
	}

	return submission
}

func FromSubmission(submission checklistDomain.Submission) ChecklistSubmission {
	results := make([]Result, len(submission.Results))
	for i, result := range submission.Results {
		results[i] = Result{
			ID:    result.ID,
			Label: result.Label,
			Type:  string(result.Type),
			Value: result.Value,
		}
	}

	row := ChecklistSubmission{
		ID:             submission.ID.String(),
		TagID:          submission.TagID.String(),
		ItemID:         submission.ItemID.String(),
		Results:        datatypes.JSONSlice[Result](results),
		SubmitterName:  submission.SubmitterName,
		SubmitterEmail: submission.SubmitterEmail,
		UserAgent:      submission.Client.UserAgent,
		IPAddress:      submission.Client.IPAddress,
		Language:       submission.Client.Language,
		CreatedAt:      submission.CreatedAt,
	}

	if submission.Location != nil {
		row.Latitude = &submission.Location.Latitude
		row.Longitude = &submission.Location.Longitude
		row.Accuracy = submission.Location.Accuracy
	}

	return row
}
