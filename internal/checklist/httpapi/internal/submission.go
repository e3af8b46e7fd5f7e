package internal

import (
	checklistDomain "tagback-server/internal/checklist/domain"
	checklistUsecases "tagback-server/internal/checklist/usecases"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	"time"
)

type Answer struct {
	ID    string `json:"id"`
	Value any    `json:"value"`
}

type Location struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
}

type SubmitChecklistRequest struct {
	Results        []Answer  `json:"results"`
	SubmitterName  string    `json:"submitterName"`
	SubmitterEmail string    `json:"submitterEmail"`
	Location       *Location `json:"location"`
}

func (r SubmitChecklistRequest) ToDomain(client shareddomain.ClientInfo) checklistUsecases.SubmitRequest {
	answers := make([]checklistDomain.Answer, len(r.Results))
	for i, answer := range r.Results {
		answers[i] = checklistDomain.Answer{ID: answer.ID, Value: answer.Value}
	}

	request := checklistUsecases.SubmitRequest{
		Answers: answers,
		Submitter: checklistDomain.Submitter{
			Name:  r.SubmitterName,
			Email: r.SubmitterEmail,
		},
		Client: client,
	}
	if r.Location != nil {
		request.Location = &shareddomain.GeoPoint{
			Latitude:  r.Location.Latitude,
			Longitude: r.Location.Longitude,
			Accuracy:  r.Location.Accuracy,
		}
	}
	return request
}

type Result struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

type SubmissionResponse struct {
	ID             string    `json:"id"`
	ItemID         string    `json:"itemId"`
	Results        []Result  `json:"results"`
	SubmitterName  string    `json:"submitterName"`
	SubmitterEmail string    `json:"submitterEmail,omitempty"`
	Location       *Location `json:"location,omitempty"`
	Language       string    `json:"language,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func ToSubmissionResponse(submission checklistDomain.Submission) SubmissionResponse {
	results := make([]Result, len(submission.Results))
	for i, result := range submission.Results {
		results[i] = Result{
			ID:    result.ID,
			Label: result.Label,
			Type:  string(result.Type),
			Value: result.Value,
		}
	}

	response := SubmissionResponse{
		ID:             submission.ID.String(),
		ItemID:         submission.ItemID.String(),
		Results:        results,
		SubmitterName:  submission.SubmitterName,
		SubmitterEmail: submission.SubmitterEmail,
		Language:       submission.Client.Language,
		CreatedAt:      submission.CreatedAt,
	}
	if submission.Location != nil {
		response.Location = &Location{
			Latitude:  submission.Location.Latitude,
			Longitude: submission.Location.Longitude,
			Accuracy:  submission.Location.Accuracy,
		}
	}
	return response
}

// SubmissionReceipt is all a visitor gets back after submitting.
type SubmissionReceipt struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
