package domain

import "fmt"

type GeoPoint struct {
	Latitude  float64
	Longitude float64
	Accuracy  *float64
}

func (p GeoPoint) Validate() error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return Invalid("location.latitude", fmt.Sprintf("must be between -90 and 90, got %v", p.Latitude))
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return Invalid("location.longitude", fmt.Sprintf("must be between -180 and 180, got %v", p.Longitude))
	}
	if p.Accuracy != nil && *p.Accuracy < 0 {
		return Invalid("location.accuracy", "must not be negative")
	}
	return nil
}

// ClientInfo is what the public endpoints know about an anonymous visitor.
type ClientInfo struct {
	UserAgent string
	IPAddress string
	Language  string
}

// FinderContact is optionally left by whoever scanned a tag.
type FinderContact struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

func (c FinderContact) IsEmpty() bool {
	return c.Name == "" && c.Email == "" && c.Phone == "" && c.Message == ""
}
