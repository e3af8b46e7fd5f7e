package domain

import (
	"fmt"
	"strings"
	catalogDomain "tagback-server/internal/catalog/domain"
	"tagback-server/internal/infra/utils"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	"time"
)

// Answer is one submitted value, matched to its definition by id.
type Answer struct {
	ID    string
	Value any
}

// Result snapshots an answered checklist item together with the label and
// type it had when the submission was made.
type Result struct {
	ID    string
	Label string
	Type  catalogDomain.ChecklistItemType
	Value any
}

type Submitter struct {
	Name  string
	Email string
}

func (s Submitter) Validate() []shareddomain.FieldError {
	var errs []shareddomain.FieldError
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, shareddomain.Required("submitterName"))
	}
	if s.Email != "" && !utils.IsValidEmail(s.Email) {
		errs = append(errs, shareddomain.Invalid("submitterEmail", "must be a valid email address"))
	}
	return errs
}

// Submission is an append-only record of one visitor filling in a checklist.
type Submission struct {
	ID             shareddomain.ID
	TagID          shareddomain.ID
	ItemID         shareddomain.ID
	Results        []Result
	SubmitterName  string
	SubmitterEmail string
	Location       *shareddomain.GeoPoint
	Client         shareddomain.ClientInfo
	CreatedAt      time.Time
}

// ValidateSubmission checks that every required definition has a filled
// answer. All unmet items are reported in one ValidationError.
func ValidateSubmission(definitions []catalogDomain.ChecklistItemDefinition, answers []Answer) error {
	byID := indexAnswers(answers)

	verr := &shareddomain.ValidationError{}
	for _, definition := range definitions {
		if !definition.Required {
			continue
		}
		answer, found := byID[definition.ID]
		if !found || !isFilled(definition.Type, answer.Value) {
			verr.Add(UnmetItem(definition.ID, definition.Label))
		}
	}

	return verr.OrNil()
}

func isFilled(itemType catalogDomain.ChecklistItemType, value any) bool {
	switch itemType {
	case catalogDomain.ChecklistItemCheckbox:
		checked, ok := value.(bool)
		return ok && checked
	case catalogDomain.ChecklistItemNumber:
		if value == nil {
			return false
		}
		if s, ok := value.(string); ok {
			return s != ""
		}
		return true
	case catalogDomain.ChecklistItemText:
		if value == nil {
			return false
		}
		if s, ok := value.(string); ok {
			return strings.TrimSpace(s) != ""
		}
		return strings.TrimSpace(fmt.Sprint(value)) != ""
	default:
		return value != nil
	}
}

// NewSubmission builds the snapshot in definition order. Answers without a
// matching definition are dropped; definitions without an answer keep a nil
// value.
func NewSubmission(
	tagID, itemID shareddomain.ID,
	definitions []catalogDomain.ChecklistItemDefinition,
	answers []Answer,
	submitter Submitter,
	location *shareddomain.GeoPoint,
	client shareddomain.ClientInfo,
) Submission {
	byID := indexAnswers(answers)

	results := make([]Result, len(definitions))
	for i, definition := range definitions {
		results[i] = Result{
			ID:    definition.ID,
			Label: definition.Label,
			Type:  definition.Type,
			Value: byID[definition.ID].Value,
		}
	}

	return Submission{
		ID:             shareddomain.ID(utils.GenerateUUID()),
		TagID:          tagID,
		ItemID:         itemID,
		Results:        results,
		SubmitterName:  strings.TrimSpace(submitter.Name),
		SubmitterEmail: strings.TrimSpace(submitter.Email),
		Location:       location,
		Client:         client,
		CreatedAt:      time.Now(),
	}
}

// indexAnswers keeps the last answer given for each id.
func indexAnswers(answers []Answer) map[string]Answer {
	byID := make(map[string]Answer, len(answers))
	for _, answer := range answers {
		byID[answer.ID] = answer
	}
	return byID
}
