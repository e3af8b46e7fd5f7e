package domain

import (
	"encoding/json"
	"fmt"
	"maps"
	"strconv"
	"strings"
	catalogDomain "tagback-server/internal/catalog/domain"
	shareddomain "tagback-server/internal/shared_kernel/domain"
)

// Validate checks data against every field of tagType and returns the data to
// store. Keys the tag type does not define are kept as they are. All problems
// are reported together in a *shareddomain.ValidationError.
func Validate(tagType catalogDomain.TagType, data map[string]any) (map[string]any, error) {
	verr := &shareddomain.ValidationError{}

	for _, field := range tagType.Fields() {
		value, present := data[field.Key]
		if !present || value == nil {
			if field.Required {
				verr.Add(shareddomain.Required(field.Key))
			}
			continue
		}
		verr.Add(validateField(field, value)...)
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	validated := maps.Clone(data)
	if validated == nil {
		validated = make(map[string]any)
	}
	return validated, nil
}

func validateField(field catalogDomain.FieldDefinition, value any) []shareddomain.FieldError {
	switch field.Type {
	case catalogDomain.FieldTypeText, catalogDomain.FieldTypeTextarea, catalogDomain.FieldTypeSelect,
		catalogDomain.FieldTypeEmail, catalogDomain.FieldTypeTel:
		s, ok := value.(string)
		if !ok {
			return []shareddomain.FieldError{shareddomain.Invalid(field.Key, "must be a string")}
		}
		if field.Required && strings.TrimSpace(s) == "" {
			return []shareddomain.FieldError{shareddomain.Required(field.Key)}
		}
		return nil

	case catalogDomain.FieldTypeNumber:
		return validateNumber(field, value)

	case catalogDomain.FieldTypeToggle:
		if _, ok := value.(bool); !ok {
			return []shareddomain.FieldError{shareddomain.Invalid(field.Key, "must be a boolean")}
		}
		return nil

	case catalogDomain.FieldTypeContactsList:
		return validateContactsList(field.Key, value)

	case catalogDomain.FieldTypeChecklistBuilder:
		_, errs := catalogDomain.DecodeChecklistItems(field.Key, value)
		return errs

	default:
		return []shareddomain.FieldError{shareddomain.Invalid(field.Key, fmt.Sprintf("unsupported field type %q", field.Type))}
	}
}

// validateNumber accepts numbers and numeric strings. The empty string counts
// as no value.
func validateNumber(field catalogDomain.FieldDefinition, value any) []shareddomain.FieldError {
	switch v := value.(type) {
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return nil
	case json.Number:
		if _, err := v.Float64(); err != nil {
			return []shareddomain.FieldError{shareddomain.Invalid(field.Key, "must be a number")}
		}
		return nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			if field.Required {
				return []shareddomain.FieldError{shareddomain.Required(field.Key)}
			}
			return nil
		}
		if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
			return []shareddomain.FieldError{shareddomain.Invalid(field.Key, "must be a number")}
		}
		return nil
	default:
		return []shareddomain.FieldError{shareddomain.Invalid(field.Key, "must be a number")}
	}
}

func validateContactsList(key string, value any) []shareddomain.FieldError {
	var elements []any
	switch v := value.(type) {
	case []any:
		elements = v
	case []map[string]any:
		for _, element := range v {
			elements = append(elements, element)
		}
	default:
		return []shareddomain.FieldError{shareddomain.Invalid(key, "must be a list of contacts")}
	}

	var errs []shareddomain.FieldError
	for i, element := range elements {
		path := fmt.Sprintf("%s[%d]", key, i)
		contact, ok := element.(map[string]any)
		if !ok {
			errs = append(errs, shareddomain.Invalid(path, "must be an object"))
			continue
		}
		if _, ok := contact["name"].(string); !ok {
			errs = append(errs, shareddomain.Invalid(path+".name", "must be a string"))
		}
		if _, ok := contact["phone"].(string); !ok {
			errs = append(errs, shareddomain.Invalid(path+".phone", "must be a string"))
		}
		if relationship, present := contact["relationship"]; present && relationship != nil {
			if _, ok := relationship.(string); !ok {
				errs = append(errs, shareddomain.Invalid(path+".relationship", "must be a string"))
			}
		}
	}
	return errs
}
