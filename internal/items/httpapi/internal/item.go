package internal

import (
	itemsDomain "tagback-server/internal/items/domain"
	"time"
)

type Contacts struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

type Reward struct {
	Offered bool   `json:"offered"`
	Details string `json:"details,omitempty"`
}

type ItemCreateRequest struct {
	TagTypeID    string          `json:"tagTypeId"`
	Name         string          `json:"name"`
	Data         map[string]any  `json:"data"`
	Contacts     Contacts        `json:"contacts"`
	Visibility   map[string]bool `json:"visibility"`
	Reward       Reward          `json:"reward"`
	PrimaryPhoto string          `json:"primaryPhoto"`
	Photos       []string        `json:"photos"`
}

type ItemUpdateRequest struct {
	Name         *string          `json:"name,omitempty"`
	Data         *map[string]any  `json:"data,omitempty"`
	Contacts     *Contacts        `json:"contacts,omitempty"`
	Visibility   *map[string]bool `json:"visibility,omitempty"`
	Reward       *Reward          `json:"reward,omitempty"`
	PrimaryPhoto *string          `json:"primaryPhoto,omitempty"`
	Photos       *[]string        `json:"photos,omitempty"`
}

func (r ItemUpdateRequest) ToDomain() itemsDomain.ItemUpdate {
	update := itemsDomain.ItemUpdate{
		Name:         r.Name,
		Data:         r.Data,
		Visibility:   r.Visibility,
		PrimaryPhoto: r.PrimaryPhoto,
		Photos:       r.Photos,
	}
	if r.Contacts != nil {
		contacts := r.Contacts.ToDomain()
		update.Contacts = &contacts
	}
	if r.Reward != nil {
		reward := itemsDomain.Reward{Offered: r.Reward.Offered, Details: r.Reward.Details}
		update.Reward = &reward
	}
	return update
}

func (c Contacts) ToDomain() itemsDomain.Contacts {
	return itemsDomain.Contacts{Phone: c.Phone, Email: c.Email, Address: c.Address}
}

type ItemResponse struct {
	ID           string          `json:"id"`
	OwnerID      string          `json:"ownerId"`
	TagTypeID    string          `json:"tagTypeId"`
	Name         string          `json:"name"`
	Data         map[string]any  `json:"data"`
	Contacts     Contacts        `json:"contacts"`
	Visibility   map[string]bool `json:"visibility"`
	Reward       Reward          `json:"reward"`
	PrimaryPhoto string          `json:"primaryPhoto,omitempty"`
	Photos       []string        `json:"photos"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func ToItemResponse(item itemsDomain.Item) ItemResponse {
	photos := item.Photos
	if photos == nil {
		photos = []string{}
	}
	return ItemResponse{
		ID:        item.ID.String(),
		OwnerID:   item.OwnerID.String(),
		TagTypeID: item.TagTypeID.String(),
		Name:      string(item.Name),
		Data:      item.Data,
		Contacts: Contacts{
			Phone:   item.Contacts.Phone,
			Email:   item.Contacts.Email,
			Address: item.Contacts.Address,
		},
		Visibility:   item.Visibility,
		Reward:       Reward{Offered: item.Reward.Offered, Details: item.Reward.Details},
		PrimaryPhoto: item.PrimaryPhoto,
		Photos:       photos,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
