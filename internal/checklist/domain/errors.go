package domain

import (
	"errors"
	shareddomain "tagback-server/internal/shared_kernel/domain"
)

var ErrChecklistRequiredItemUnmet = errors.New("required checklist item unmet")

// UnmetItem reports a required checklist item left unfilled. The field path
// carries the item id and the reason its label.
func UnmetItem(id, label string) shareddomain.FieldError {
	return shareddomain.FieldError{
		Field:  "results." + id,
		Reason: label + " is required",
		Cause:  ErrChecklistRequiredItemUnmet,
	}
}
