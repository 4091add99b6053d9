package dto

import (
	"time"
)

// ListCampaignsRequest is the parsed and validated query surface of
// the list endpoint. All filters are optional; nil means "no clause".
type ListCampaignsRequest struct {
	Region          *string
	Offer           *string
	CampaignType    *string
	CampaignChannel *string
	CategoryID      *uint
	Query           *string
	Platform        *string
	Company         *string

	ApplyFrom  *time.Time
	ApplyTo    *time.Time
	ReviewFrom *time.Time
	ReviewTo   *time.Time

	// Map viewport corners; either all four or none.
	SwLat *float64
	SwLng *float64
	NeLat *float64
	NeLng *float64

	// User coordinate for the projected distance field and for
	// sort=distance.
	Lat *float64
	Lng *float64

	// Sort key, optionally "-" prefixed for descending.
	Sort string `validate:"required"`

	Limit  int `validate:"min=1,max=100"`
	Offset int `validate:"min=0"`

	// Accepted but not applied by the ranking engine; see the design
	// notes on result diversification.
	Diversify   *string
	PlatformCap *int
}

// CampaignResponse is one projected listing row.
type CampaignResponse struct {
	ID              uint              `json:"id"`
	Platform        string            `json:"platform"`
	Company         string            `json:"company"`
	CompanyLink     *string           `json:"company_link,omitempty"`
	Offer           string            `json:"offer"`
	Title           *string           `json:"title,omitempty"`
	CampaignType    *string           `json:"campaign_type,omitempty"`
	CampaignChannel *string           `json:"campaign_channel,omitempty"`
	Region          *string           `json:"region,omitempty"`
	Address         *string           `json:"address,omitempty"`
	Lat             *float64          `json:"lat,omitempty"`
	Lng             *float64          `json:"lng,omitempty"`
	ImgURL          *string           `json:"img_url,omitempty"`
	ContentLink     *string           `json:"content_link,omitempty"`
	ApplyFrom       *time.Time        `json:"apply_from,omitempty"`
	ApplyDeadline   *time.Time        `json:"apply_deadline,omitempty"`
	ReviewDeadline  *time.Time        `json:"review_deadline,omitempty"`
	PromotionLevel  int               `json:"promotion_level"`
	Category        *CategoryResponse `json:"category,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`

	// Derived, non-persisted fields.
	Distance  *float64 `json:"distance,omitempty"`
	IsNew     bool     `json:"is_new"`
	IsExpired bool     `json:"is_expired"`
}

// CampaignListResponse is the paginated list payload.
type CampaignListResponse struct {
	Total  int64              `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
	Items  []CampaignResponse `json:"items"`
}
