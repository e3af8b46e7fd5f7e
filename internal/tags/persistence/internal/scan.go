package internal

import (
	shareddomain "tagback-server/internal/shared_kernel/domain"
	tagsDomain "tagback-server/internal/tags/domain"
	"time"
)

type TagScan struct {
	ID            string `gorm:"primaryKey"`
	TagID         string `gorm:"index;not null"`
	Code          string `gorm:"not null"`
	ItemID        string `gorm:"index;not null"`
	Kind          string `gorm:"not null"`
	Latitude      *float64
	Longitude     *float64
	Accuracy      *float64
	FinderName    string
	FinderEmail   string
	FinderPhone   string
	FinderMessage string
	UserAgent     string
	IPAddress     string
	Language      string
	CreatedAt     time.Time `gorm:"index"`
}

func (TagScan) TableName() string {
	return "tag_scans"
}

func (m TagScan) ToDomain() tagsDomain.Scan {
	scan := tagsDomain.Scan{
		ID:     shareddomain.ID(m.ID),
		TagID:  shareddomain.ID(m.TagID),
		Code:   tagsDomain.Code(m.Code),
		ItemID: shareddomain.ID(m.ItemID),
		Kind:   tagsDomain.ScanKind(m.Kind),
		Finder: shareddomain.FinderContact{
			Name:    m.FinderName,
			Email:   m.FinderEmail,
			Phone:   m.FinderPhone,
			Message: m.FinderMessage,
		},
		Client: shareddomain.ClientInfo{
			UserAgent: m.UserAgent,
			IPAddress: m.IPAddress,
			Language:  m.Language,
		},
		CreatedAt: m.CreatedAt,
	}

	if m.Latitude != nil && m.Longitude != nil {
		scan.Location = &shareddomain.GeoPoint{
			Latitude:  *m.Latitude,
			Longitude: *m.Longitude,
			Accuracy:  m.Accuracy,
		}
	}

	return scan
}

func FromScan(scan tagsDomain.Scan) TagScan {
	row := TagScan{
		ID:            scan.ID.String(),
		TagID:         scan.TagID.String(),
		Code:          scan.Code.String(),
		ItemID:        scan.ItemID.String(),
		Kind:          string(scan.Kind),
		FinderName:    scan.Finder.Name,
		FinderEmail:   scan.Finder.Email,
		FinderPhone:   scan.Finder.Phone,
		FinderMessage: scan.Finder.Message,
		UserAgent:     scan.Client.UserAgent,
		IPAddress:     scan.Client.IPAddress,
		Language:      scan.Client.Language,
		CreatedAt:     scan.CreatedAt,
	}

	if scan.Location != nil {
		row.Latitude = &scan.Location.Latitude
		row.Longitude = &scan.Location.Longitude
		row.Accuracy = scan.Location.Accuracy
	}

	return row
}
