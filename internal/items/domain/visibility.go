package domain

import (
	"reflect"
	"strings"
	catalogDomain "tagback-server/internal/catalog/domain"
)

type PublicField struct {
	Key   string
	Label string
	Type  catalogDomain.FieldType
	Value any
}

type PublicGroup struct {
	Key        string
	Label      string
	Icon       string
	AlertStyle string
	Fields     []PublicField
}

type PublicContact struct {
	Channel string
	Value   string
}

// PublicView is what a stranger holding the tag gets to see. Groups and
// fields keep the tag type order; groups without any included field are
// left out.
type PublicView struct {
	ItemID       string
	Name         string
	TagTypeSlug  string
	TagTypeName  string
	Groups       []PublicGroup
	Contacts     []PublicContact
	Reward       *Reward
	PrimaryPhoto string
	Photos       []string
}

// Fields flattens the view in group and field order.
func (v PublicView) Fields() []PublicField {
	result := make([]PublicField, 0)
	for _, group := range v.Groups {
		result = append(result, group.Fields...)
	}
	return result
}

func (v PublicView) Field(key string) (PublicField, bool) {
	for _, field := range v.Fields() {
		if field.Key == key {
			return field, true
		}
	}
	return PublicField{}, false
}

// IsVisible resolves the visibility of key: the item override wins, then
// the tag type default, and anything configured nowhere is visible.
func IsVisible(tagType catalogDomain.TagType, item Item, key string) bool {
	if visible, ok := item.Visibility[key]; ok {
		return visible
	}
	if visible, ok := tagType.DefaultVisibility[key]; ok {
		return visible
	}
	return true
}

// ResolvePublicView is a pure function of its inputs.
func ResolvePublicView(tagType catalogDomain.TagType, item Item) PublicView {
	return resolve(tagType, item, nil)
}

// ResolveChecklistView is the view handed to whoever fills in a checklist.
// It follows ResolvePublicView except that checklistItems is always present,
// as an empty list when the item has none, whatever its visibility says.
func ResolveChecklistView(tagType catalogDomain.TagType, item Item) PublicView {
	return resolve(tagType, item, func(field catalogDomain.FieldDefinition) (any, bool) {
		if field.Key != catalogDomain.ChecklistItemsKey {
			return nil, false
		}
		value := item.Data[field.Key]
		if isEmptyValue(value) {
			return []any{}, true
		}
		return value, true
	})
}

// ChecklistItems decodes the checklist of item, skipping entries that no
// longer have a usable shape.
func ChecklistItems(item Item) []catalogDomain.ChecklistItemDefinition {
	value, ok := item.Data[catalogDomain.ChecklistItemsKey]
	if !ok || value == nil {
		return []catalogDomain.ChecklistItemDefinition{}
	}
	items, _ := catalogDomain.DecodeChecklistItems(catalogDomain.ChecklistItemsKey, value)
	if items == nil {
		return []catalogDomain.ChecklistItemDefinition{}
	}
	return items
}

type forcedField func(field catalogDomain.FieldDefinition) (any, bool)

func resolve(tagType catalogDomain.TagType, item Item, forced forcedField) PublicView {
	view := PublicView{
		ItemID:       item.ID.String(),
		Name:         string(item.Name),
		TagTypeSlug:  tagType.Slug.String(),
		TagTypeName:  string(tagType.Name),
		Groups:       make([]PublicGroup, 0),
		Contacts:     make([]PublicContact, 0),
		PrimaryPhoto: item.PrimaryPhoto,
		Photos:       append([]string{}, item.Photos...),
	}

	for _, group := range tagType.FieldGroups {
		publicGroup := PublicGroup{
			Key:        group.Key,
			Label:      group.Label,
			Icon:       group.Icon,
			AlertStyle: group.AlertStyle,
			Fields:     make([]PublicField, 0),
		}
		for _, field := range group.Fields {
			value, included := item.Data[field.Key], false
			if forced != nil {
				if forcedValue, ok := forced(field); ok {
					value, included = forcedValue, true
				}
			}
			if !included {
				included = IsVisible(tagType, item, field.Key) && !isEmptyValue(value)
			}
			if included {
				publicGroup.Fields = append(publicGroup.Fields, PublicField{
					Key:   field.Key,
					Label: field.Label,
					Type:  field.Type,
					Value: value,
				})
			}
		}
		if len(publicGroup.Fields) > 0 {
			view.Groups = append(view.Groups, publicGroup)
		}
	}

	for _, channel := range ContactChannels {
		value := item.Contacts.Value(channel)
		if IsVisible(tagType, item, channel) && strings.TrimSpace(value) != "" {
			view.Contacts = append(view.Contacts, PublicContact{Channel: channel, Value: value})
		}
	}

	if item.Reward.Offered {
		reward := item.Reward
		view.Reward = &reward
	}

	return view
}

// isEmptyValue treats nil, blank strings and empty lists or objects as no
// value. false and 0 are values.
func isEmptyValue(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
