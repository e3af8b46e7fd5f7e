package internal

import (
	itemsHttpapi "tagback-server/internal/items/httpapi"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	tagsDomain "tagback-server/internal/tags/domain"
	tagsUsecases "tagback-server/internal/tags/usecases"
	"time"
)

type ClaimTagRequest struct {
	Code string `json:"code"`
}

type IssueCodesRequest struct {
	Count int    `json:"count"`
	Batch string `json:"batch"`
}

type TagResponse struct {
	Code          string     `json:"code"`
	Status        string     `json:"status"`
	ItemID        string     `json:"itemId,omitempty"`
	Batch         string     `json:"batch,omitempty"`
	ScanCount     int64      `json:"scanCount"`
	LastScannedAt *time.Time `json:"lastScannedAt,omitempty"`
	IssuedAt      time.Time  `json:"issuedAt"`
	ClaimedAt     *time.Time `json:"claimedAt,omitempty"`
}

func ToTagResponse(tag tagsDomain.Tag) TagResponse {
	return TagResponse{
		Code:          tag.Code.String(),
		Status:        string(tag.Status),
		ItemID:        tag.ItemID.String(),
		Batch:         tag.Batch,
		ScanCount:     tag.ScanCount,
		LastScannedAt: tag.LastScannedAt,
		IssuedAt:      tag.IssuedAt,
		ClaimedAt:     tag.ClaimedAt,
	}
}

type IssueCodesResponse struct {
	Batch string   `json:"batch,omitempty"`
	Codes []string `json:"codes"`
}

type Location struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
}

type Finder struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message,omitempty"`
}

type ShareLocationRequest struct {
	Location *Location `json:"location"`
	Finder   Finder    `json:"finder"`
}

func (r ShareLocationRequest) ToDomain(client shareddomain.ClientInfo) tagsDomain.LocationReport {
	report := tagsDomain.LocationReport{
		Finder: shareddomain.FinderContact{
			Name:    r.Finder.Name,
			Email:   r.Finder.Email,
			Phone:   r.Finder.Phone,
			Message: r.Finder.Message,
		},
		Client: client,
	}
	if r.Location != nil {
		report.Location = &shareddomain.GeoPoint{
			Latitude:  r.Location.Latitude,
			Longitude: r.Location.Longitude,
			Accuracy:  r.Location.Accuracy,
		}
	}
	return report
}

type ScanResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Kind      string    `json:"kind"`
	Location  *Location `json:"location,omitempty"`
	Finder    *Finder   `json:"finder,omitempty"`
	Language  string    `json:"language,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToScanResponse leaves out the visitor's address and user agent; owners see
// what was shared with them, not who shared it.
func ToScanResponse(scan tagsDomain.Scan) ScanResponse {
	response := ScanResponse{
		ID:        scan.ID.String(),
		Code:      scan.Code.String(),
		Kind:      string(scan.Kind),
		Language:  scan.Client.Language,
		CreatedAt: scan.CreatedAt,
	}
	if scan.Location != nil {
		response.Location = &Location{
			Latitude:  scan.Location.Latitude,
			Longitude: scan.Location.Longitude,
			Accuracy:  scan.Location.Accuracy,
		}
	}
	if !scan.Finder.IsEmpty() {
		response.Finder = &Finder{
			Name:    scan.Finder.Name,
			Email:   scan.Finder.Email,
			Phone:   scan.Finder.Phone,
			Message: scan.Finder.Message,
		}
	}
	return response
}

// PublicTagResponse is what a stranger gets when scanning a code.
type PublicTagResponse struct {
	Code      string                          `json:"code"`
	Checklist bool                            `json:"checklist"`
	Item      itemsHttpapi.PublicViewResponse `json:"item"`
}

func ToPublicTagResponse(view tagsUsecases.TagView) PublicTagResponse {
	return PublicTagResponse{
		Code:      view.Tag.Code.String(),
		Checklist: view.Item.IsChecklist(),
		Item:      itemsHttpapi.ToPublicViewResponse(view.Item.View),
	}
}
