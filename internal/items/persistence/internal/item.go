package internal

import (
	itemsDomain "tagback-server/internal/items/domain"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	"time"

	"gorm.io/datatypes"
)

type Item struct {
	ID             string            `gorm:"primaryKey"`
	OwnerID        string            `gorm:"index;not null"`
	TagTypeID      string            `gorm:"index;not null"`
	Name           string            `gorm:"not null"`
	Data           datatypes.JSONMap `gorm:"not null"`
	ContactPhone   string
	ContactEmail   string
	ContactAddress string
	Visibility     datatypes.JSONType[map[string]bool] `gorm:"not null"`
	RewardOffered  bool
	RewardDetails  string
	PrimaryPhoto   string
	Photos         datatypes.JSONSlice[string]
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

func (Item) TableName() string {
	return "items"
}

func (m Item) ToDomain() itemsDomain.Item {
	data := map[string]any(m.Data)
	if data == nil {
		data = make(map[string]any)
	}
	visibility := m.Visibility.Data()
	if visibility == nil {
		visibility = make(map[string]bool)
	}
	photos := []string(m.Photos)
	if photos == nil {
		photos = make([]string, 0)
	}

	return itemsDomain.Item{
		ID:        shareddomain.ID(m.ID),
		OwnerID:   shareddomain.ID(m.OwnerID),
		TagTypeID: shareddomain.ID(m.TagTypeID),
		Name:      shareddomain.Name(m.Name),
		Data:      data,
		Contacts: itemsDomain.Contacts{
			Phone:   m.ContactPhone,
			Email:   m.ContactEmail,
			Address: m.ContactAddress,
		},
		Visibility: visibility,
		Reward: itemsDomain.Reward{
			Offered: m.RewardOffered,
			Details: m.RewardDetails,
		},
		PrimaryPhoto: m.PrimaryPhoto,
		Photos:       photos,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func FromItem(value itemsDomain.Item) Item {
	data := value.Data
	if data == nil {
		data = make(map[string]any)
	}
	visibility := value.Visibility
	if visibility == nil {
		visibility = make(map[string]bool)
	}

	return Item{
		ID:             value.ID.String(),
		OwnerID:        value.OwnerID.String(),
		TagTypeID:      value.TagTypeID.String(),
		Name:           string(value.Name),
		Data:           datatypes.JSONMap(data),
		ContactPhone:   value.Contacts.Phone,
		ContactEmail:   value.Contacts.Email,
		ContactAddress: value.Contacts.Address,
		Visibility:     datatypes.NewJSONType(visibility),
		RewardOffered:  value.Reward.Offered,
		RewardDetails:  value.Reward.Details,
		PrimaryPhoto:   value.PrimaryPhoto,
		Photos:         datatypes.JSONSlice[string](value.Photos),
		CreatedAt:      value.CreatedAt,
		UpdatedAt:      value.UpdatedAt,
	}
}
