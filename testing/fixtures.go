// Package testing provides test utilities and database setup for testing the listing engine
package testing

import (
	"fmt"
	"time"

	"github.com/yunseo-dev/campatlas/models"
	"github.com/yunseo-dev/campatlas/utils"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestCategory creates a standard category
func (tf *TestFixtures) CreateTestCategory(name string, displayOrder int) (*models.Category, error) {
	category := &models.Category{
		Name:         name,
		DisplayOrder: displayOrder,
		CreatedAt:    utils.UTCNow(),
	}

	if err := tf.DB.DB.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create test category %s: %w", name, err)
	}
	return category, nil
}

// CampaignOption mutates a campaign fixture before insert
type CampaignOption func(*models.Campaign)

// WithLocation sets the campaign coordinates
func WithLocation(lat, lng float64) CampaignOption {
	return func(c *models.Campaign) {
		c.Lat = &lat
		c.Lng = &lng
	}
}

// WithApplyDeadline sets the campaign apply deadline
func WithApplyDeadline(deadline time.Time) CampaignOption {
	return func(c *models.Campaign) {
		c.ApplyDeadline = &deadline
	}
}

// WithPromotion sets the campaign promotion level
func WithPromotion(level int) CampaignOption {
	return func(c *models.Campaign) {
		c.PromotionLevel = &level
	}
}

// WithCategory attaches the campaign to a standard category
func WithCategory(categoryID uint) CampaignOption {
	return func(c *models.Campaign) {
		c.CategoryID = &categoryID
	}
}

// WithOffer sets the campaign offer text
func WithOffer(offer string) CampaignOption {
	return func(c *models.Campaign) {
		c.Offer = offer
	}
}

// WithRegion sets the campaign region
func WithRegion(region string) CampaignOption {
	return func(c *models.Campaign) {
		c.Region = &region
	}
}

// WithCreatedAt overrides the campaign creation time
func WithCreatedAt(createdAt time.Time) CampaignOption {
	return func(c *models.Campaign) {
		c.CreatedAt = createdAt
	}
}

// CreateTestCampaign creates a campaign with sensible defaults; options
// override individual fields. The default deadline keeps the row inside
// the active window.
func (tf *TestFixtures) CreateTestCampaign(platform, company string, opts ...CampaignOption) (*models.Campaign, error) {
	deadline := utils.UTCNow().Add(7 * 24 * time.Hour)

	campaign := &models.Campaign{
		Platform:      platform,
		Company:       company,
		Offer:         "리뷰 체험단 모집",
		ApplyDeadline: &deadline,
		CreatedAt:     utils.UTCNow(),
		UpdatedAt:     utils.UTCNow(),
	}

	for _, opt := range opts {
		opt(campaign)
	}

	if err := tf.DB.DB.Create(campaign).Error; err != nil {
		return nil, fmt.Errorf("failed to create test campaign for %s: %w", company, err)
	}
	return campaign, nil
}
