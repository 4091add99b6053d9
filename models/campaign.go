// Package models contains the persistence entities served by the listing engine
package models

import (
	"time"
)

// Campaign is one scraped campaign/offer listing served to clients.
// Rows are created and refreshed exclusively by the external ingestion
// job (upsert keyed on platform+company+offer); this engine only reads.
// DB: campaign
type Campaign struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	CategoryID      *uint      `gorm:"column:category_id;index:idx_cpg_category" json:"category_id,omitempty"`
	Platform        string     `gorm:"column:platform;size:50;not null" json:"platform"`
	Company         string     `gorm:"column:company;size:255;not null" json:"company"`
	CompanyLink     *string    `gorm:"column:company_link;type:text" json:"company_link,omitempty"`
	Offer           string     `gorm:"column:offer;type:text;not null" json:"offer"`
	Title           *string    `gorm:"column:title;type:text" json:"title,omitempty"`
	CampaignType    *string    `gorm:"column:campaign_type;size:50;index:idx_cpg_type" json:"campaign_type,omitempty"`
	CampaignChannel *string    `gorm:"column:campaign_channel;size:255" json:"campaign_channel,omitempty"`
	Region          *string    `gorm:"column:region;size:100;index:idx_cpg_region" json:"region,omitempty"`
	Address         *string    `gorm:"column:address;type:text" json:"address,omitempty"`
	Lat             *float64   `gorm:"column:lat;type:double precision;index:idx_cpg_location,priority:1" json:"lat,omitempty"`
	Lng             *float64   `gorm:"column:lng;type:double precision;index:idx_cpg_location,priority:2" json:"lng,omitempty"`
	ImgURL          *string    `gorm:"column:img_url;type:text" json:"img_url,omitempty"`
	ContentLink     *string    `gorm:"column:content_link;type:text" json:"content_link,omitempty"`
	ApplyFrom       *time.Time `gorm:"column:apply_from" json:"apply_from,omitempty"`
	ApplyDeadline   *time.Time `gorm:"column:apply_deadline;index:idx_cpg_deadline" json:"apply_deadline,omitempty"`
	ReviewDeadline  *time.Time `gorm:"column:review_deadline" json:"review_deadline,omitempty"`
	PromotionLevel  *int       `gorm:"column:promotion_level;default:0;index:idx_cpg_promo_created,priority:1,sort:desc" json:"promotion_level,omitempty"`
	CreatedAt       time.Time  `gorm:"column:created_at;not null;index:idx_cpg_created,sort:desc;index:idx_cpg_promo_created,priority:2,sort:desc" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;not null" json:"updated_at"`

	// Relations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Campaign) TableName() string {
	return "campaign"
}

// Promotion returns the effective sponsorship level; NULL reads as 0.
func (c *Campaign) Promotion() int {
	if c.PromotionLevel == nil {
		return 0
	}
	return *c.PromotionLevel
}

// HasLocation reports whether the listing has been geocoded.
func (c *Campaign) HasLocation() bool {
	return c.Lat != nil && c.Lng != nil
}

// CampaignFilter holds the open set of optional listing filters.
// Absent (nil) fields contribute no clause; present fields are ANDed
// together. Multi-value fields (channel list, offer terms) expand to
// OR-groups inside their own clause.
type CampaignFilter struct {
	Region          *string
	Offer           *string
	CampaignType    *string
	CampaignChannel *string // comma-separated list, OR-matched
	CategoryID      *uint
	Query           *string // generic keyword over company/offer/platform/title
	Platform        *string
	Company         *string
	ApplyFrom       *time.Time
	ApplyTo         *time.Time
	ReviewFrom      *time.Time
	ReviewTo        *time.Time
	SwLat           *float64
	SwLng           *float64
	NeLat           *float64
	NeLng           *float64
}

// Sortable columns accepted by the list endpoint.
const (
	SortCreatedAt      = "created_at"
	SortUpdatedAt      = "updated_at"
	SortApplyDeadline  = "apply_deadline"
	SortReviewDeadline = "review_deadline"
	SortDistance       = "distance"
)

// CampaignSort is the caller-requested primary ordering. The ranking
// engine always prepends the sponsorship tier and appends the fairness
// and recency tiers around it.
type CampaignSort struct {
	Field      string // one of the Sort* constants
	Descending bool
}

// DefaultCampaignSort is created_at descending.
func DefaultCampaignSort() CampaignSort {
	return CampaignSort{Field: SortCreatedAt, Descending: true}
}

// Valid reports whether the sort field is one the engine understands.
func (s CampaignSort) Valid() bool {
	switch s.Field {
	case SortCreatedAt, SortUpdatedAt, SortApplyDeadline, SortReviewDeadline, SortDistance:
		return true
	}
	return false
}

// CampaignQuery is one compiled list() invocation: filters, ordering,
// paging window, and the optional user coordinate for distance.
type CampaignQuery struct {
	Filter  CampaignFilter
	Sort    CampaignSort
	Limit   int
	Offset  int
	UserLat *float64
	UserLng *float64
}
