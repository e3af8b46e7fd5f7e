package domain

import (
	"maps"
	"slices"
	"strings"
	"tagback-server/internal/infra/utils"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	"time"
)

// Contact channels live outside Data but share its visibility namespace.
const (
	ContactPhoneKey   = "ownerPhone"
	ContactEmailKey   = "ownerEmail"
	ContactAddressKey = "ownerAddress"
)

var ContactChannels = []string{ContactPhoneKey, ContactEmailKey, ContactAddressKey}

type Contacts struct {
	Phone   string
	Email   string
	Address string
}

func (c Contacts) Value(channel string) string {
	switch channel {
	case ContactPhoneKey:
		return c.Phone
	case ContactEmailKey:
		return c.Email
	case ContactAddressKey:
		return c.Address
	default:
		return ""
	}
}

func (c Contacts) Validate() error {
	if c.Email != "" && !utils.IsValidEmail(c.Email) {
		return shareddomain.Invalid(ContactEmailKey, "must be a valid email address")
	}
	return nil
}

type Reward struct {
	Offered bool
	Details string
}

type Item struct {
	ID           shareddomain.ID
	OwnerID      shareddomain.ID
	TagTypeID    shareddomain.ID
	Name         shareddomain.Name
	Data         map[string]any
	Contacts     Contacts
	Visibility   map[string]bool
	Reward       Reward
	PrimaryPhoto string
	Photos       []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (i Item) IsOwnedBy(ownerID shareddomain.ID) bool {
	return i.OwnerID == ownerID
}

// ItemUpdate replaces whichever attributes are set. Owner and tag type are
// fixed for the lifetime of an item.
type ItemUpdate struct {
	Name         *string
	Data         *map[string]any
	Contacts     *Contacts
	Visibility   *map[string]bool
	Reward       *Reward
	PrimaryPhoto *string
	Photos       *[]string
}

// Apply returns the item as it would look after update. Data is not checked
// against the tag type here.
func (i Item) Apply(update ItemUpdate) (Item, error) {
	next := i
	if update.Name != nil {
		next.Name = shareddomain.Name(*update.Name)
	}
	if update.Data != nil {
		next.Data = maps.Clone(*update.Data)
	}
	if update.Contacts != nil {
		next.Contacts = *update.Contacts
	}
	if update.Visibility != nil {
		next.Visibility = maps.Clone(*update.Visibility)
	}
	if update.Reward != nil {
		next.Reward = *update.Reward
	}
	if update.PrimaryPhoto != nil {
		next.PrimaryPhoto = *update.PrimaryPhoto
	}
	if update.Photos != nil {
		next.Photos = slices.Clone(*update.Photos)
	}

	if err := next.validate(); err != nil {
		return Item{}, err
	}

	if next.Data == nil {
		next.Data = make(map[string]any)
	}
	if next.Visibility == nil {
		next.Visibility = make(map[string]bool)
	}
	next.UpdatedAt = time.Now()
	return next, nil
}

func (i Item) validate() error {
	verr := &shareddomain.ValidationError{}
	if i.OwnerID.IsEmpty() {
		verr.Add(shareddomain.Required("ownerId"))
	}
	if i.TagTypeID.IsEmpty() {
		verr.Add(shareddomain.Required("tagTypeId"))
	}
	if strings.TrimSpace(string(i.Name)) == "" {
		verr.Add(shareddomain.Required("name"))
	}
	if err := i.Contacts.Validate(); err != nil {
		verr.Add(shareddomain.FieldErrors(err)...)
	}
	return verr.OrNil()
}

func NewItemBuilder() *itemBuilder {
	return &itemBuilder{}
}

type itemBuilder struct {
	actions []itemHandler
}

type itemHandler func(v *Item) error

func (b *itemBuilder) WithOwnerID(value shareddomain.ID) *itemBuilder {
	b.actions = append(b.actions, func(d *Item) error {
		d.OwnerID = value
		return nil
	})
	return b
}

func (b *itemBuilder) WithTagTypeID(value shareddomain.ID) *itemBuilder {
	b.actions = append(b.actions, func(d *Item) error {
		d.TagTypeID = value
		return nil
	})
	return b
}

func (b *itemBuilder) WithName(value string) *itemBuilder {
	b.actions = append(b.actions, func(d *Item) error {
		d.Name = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *itemBuilder) WithData(value map[string]any) *itemBuilder {
	b.actions = append(b.actions, func(d *Item) error {
		d.Data = maps.Clone(value)
		return nil
	})
	return b
}

func (b *itemBuilder) WithContacts(value Contacts) *itemBuilder {
	b.actions = append(b.actions, func(d *Item) error {
		d.Contacts = value
		return nil
	})
	return b
}

func (b *itemBuilder) WithVisibility(value map[string]bool) *itemBuilder {
	b.actions = append(b.actions, func(d *Item) error {
		d.Visibility = maps.Clone(value)
		return nil
	})
	return b
}

func (b *itemBuilder) WithReward(value Reward) *itemBuilder {
	b.actions = append(b.actions, func(d *Item) error {
		d.Reward = value
		return nil
	})
	return b
}

func (b *itemBuilder) WithPrimaryPhoto(value string) *itemBuilder {
	b.actions = append(b.actions, func(d *Item) error {
		d.PrimaryPhoto = value
		return nil
	})
	return b
}

func (b *itemBuilder) WithPhotos(value []string) *itemBuilder {
	b.actions = append(b.actions, func(d *Item) error {
		d.Photos = slices.Clone(value)
		return nil
	})
	return b
}

func (b *itemBuilder) Build() (Item, error) {
	now := time.Now()
	result := Item{
		ID:         shareddomain.ID(utils.GenerateUUID()),
		Data:       make(map[string]any),
		Visibility: make(map[string]bool),
		Photos:     make([]string, 0),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Item{}, err
		}
	}

	if result.Data == nil {
		result.Data = make(map[string]any)
	}
	if result.Visibility == nil {
		result.Visibility = make(map[string]bool)
	}

	if err := result.validate(); err != nil {
		return Item{}, err
	}

	return result, nil
}
