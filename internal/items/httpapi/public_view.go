package httpapi

import itemsDomain "tagback-server/internal/items/domain"

// PublicViewResponse is the JSON shape of a resolved public view, shared with
// the public tag endpoints.
type PublicViewResponse struct {
	ItemID       string          `json:"itemId"`
	Name         string          `json:"name"`
	TagType      TagTypeRef      `json:"tagType"`
	Groups       []PublicGroup   `json:"groups"`
	Contacts     []PublicContact `json:"contacts"`
	Reward       *PublicReward   `json:"reward,omitempty"`
	PrimaryPhoto string          `json:"primaryPhoto,omitempty"`
	Photos       []string        `json:"photos"`
}

type TagTypeRef struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type PublicGroup struct {
	Key        string        `json:"key"`
	Label      string        `json:"label"`
	Icon       string        `json:"icon,omitempty"`
	AlertStyle string        `json:"alertStyle,omitempty"`
	Fields     []PublicField `json:"fields"`
}

type PublicField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

type PublicReward struct {
	Details string `json:"details,omitempty"`
}

type PublicContact struct {
	Channel string `json:"channel"`
	Value   string `json:"value"`
}

func ToPublicViewResponse(view itemsDomain.PublicView) PublicViewResponse {
	groups := make([]PublicGroup, len(view.Groups))
	for i, group := range view.Groups {
		fields := make([]PublicField, len(group.Fields))
		for j, field := range group.Fields {
			fields[j] = PublicField{
				Key:   field.Key,
				Label: field.Label,
				Type:  string(field.Type),
				Value: field.Value,
			}
		}
		groups[i] = PublicGroup{
			Key:        group.Key,
			Label:      group.Label,
			Icon:       group.Icon,
			AlertStyle: group.AlertStyle,
			Fields:     fields,
		}
	}

	contacts := make([]PublicContact, len(view.Contacts))
	for i, contact := range view.Contacts {
		contacts[i] = PublicContact{Channel: contact.Channel, Value: contact.Value}
	}

	var reward *PublicReward
	if view.Reward != nil {
		reward = &PublicReward{Details: view.Reward.Details}
	}

	return PublicViewResponse{
		ItemID:       view.ItemID,
		Name:         view.Name,
		TagType:      TagTypeRef{Slug: view.TagTypeSlug, Name: view.TagTypeName},
		Groups:       groups,
		Contacts:     contacts,
		Reward:       reward,
		PrimaryPhoto: view.PrimaryPhoto,
		Photos:       view.Photos,
	}
}
