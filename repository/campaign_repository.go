package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yunseo-dev/campatlas/models"
	"github.com/yunseo-dev/campatlas/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CampaignRepositoryImpl implements the CampaignRepository interface
type CampaignRepositoryImpl struct {
	*BaseRepository[models.Campaign]
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &CampaignRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Campaign](db),
	}
}

// ByID retrieves one listing with its category. No active-window
// filter is applied here; expired listings still resolve.
func (r *CampaignRepositoryImpl) ByID(ctx context.Context, id uint) (*models.Campaign, error) {
	db := r.getDB(ctx)

	var campaign models.Campaign
	err := db.Preload("Category").First(&campaign, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find campaign by ID %d: %w", id, err)
	}

	return &campaign, nil
}

// Search executes the compiled query as a count plus a ranked page.
// Both queries are built by the same compile closure so their
// predicates are identical; only the page query adds ORDER BY, LIMIT
// and OFFSET.
func (r *CampaignRepositoryImpl) Search(ctx context.Context, q models.CampaignQuery) (int64, []*models.Campaign, error) {
	db := r.getDB(ctx)
	windowStart := utils.StartOfTodayKST()

	compile := func(tx *gorm.DB) *gorm.DB {
		tx = r.applyFilter(tx, q.Filter)
		// Mandatory active-window clause; not overridable by callers.
		// Open-ended listings (NULL deadline) never expire.
		return tx.Where("(apply_deadline IS NULL OR apply_deadline >= ?)", windowStart)
	}

	var total int64
	if err := compile(db.Model(&models.Campaign{})).Count(&total).Error; err != nil {
		return 0, nil, fmt.Errorf("failed to count campaigns: %w", err)
	}

	orderSQL, orderVars := rankingExpression(q)
	page := compile(db.Model(&models.Campaign{})).
		Preload("Category").
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                orderSQL,
			Vars:               orderVars,
			WithoutParentheses: true,
		}})

	if q.Limit > 0 {
		page = page.Limit(q.Limit)
	}
	if q.Offset > 0 {
		page = page.Offset(q.Offset)
	}

	var campaigns []*models.Campaign
	if err := page.Find(&campaigns).Error; err != nil {
		return 0, nil, fmt.Errorf("failed to search campaigns: %w", err)
	}

	return total, campaigns, nil
}

// applyFilter compiles the open filter set into a conjunction of
// column conditions. Absent filters contribute no clause; multi-value
// filters expand into OR-groups inside their own clause.
func (r *CampaignRepositoryImpl) applyFilter(db *gorm.DB, f models.CampaignFilter) *gorm.DB {
	if f.Region != nil {
		db = db.Where("region ILIKE ?", contains(*f.Region))
	}
	if f.Offer != nil {
		db = applyOfferFilter(db, *f.Offer)
	}
	if f.CampaignType != nil {
		db = db.Where("campaign_type ILIKE ?", contains(*f.CampaignType))
	}
	if f.CampaignChannel != nil {
		db = applyChannelFilter(db, *f.CampaignChannel)
	}
	if f.CategoryID != nil {
		db = db.Where("category_id = ?", *f.CategoryID)
	}
	if f.Query != nil {
		like := contains(*f.Query)
		db = db.Where("(company ILIKE ? OR offer ILIKE ? OR platform ILIKE ? OR title ILIKE ?)",
			like, like, like, like)
	}
	if f.Platform != nil {
		db = db.Where("platform ILIKE ?", contains(*f.Platform))
	}
	if f.Company != nil {
		db = db.Where("company ILIKE ?", contains(*f.Company))
	}
	if f.ApplyFrom != nil {
		db = db.Where("apply_deadline >= ?", *f.ApplyFrom)
	}
	if f.ApplyTo != nil {
		db = db.Where("apply_deadline <= ?", *f.ApplyTo)
	}
	if f.ReviewFrom != nil {
		db = db.Where("review_deadline >= ?", *f.ReviewFrom)
	}
	if f.ReviewTo != nil {
		db = db.Where("review_deadline <= ?", *f.ReviewTo)
	}
	if box, ok := boundingBoxFromFilter(f); ok {
		db = applyViewport(db, box)
	}

	return db
}

// applyOfferFilter conjoins one OR-group per whitespace-separated
// offer term; a listing must satisfy every term through at least one
// of its surface-form variants.
func applyOfferFilter(db *gorm.DB, offer string) *gorm.DB {
	for _, term := range strings.Fields(offer) {
		variants := offerTermVariants(term)
		conds := make([]string, 0, len(variants))
		args := make([]any, 0, len(variants))
		for _, v := range variants {
			conds = append(conds, "offer ILIKE ?")
			args = append(args, contains(v))
		}
		db = db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
	return db
}

// applyChannelFilter OR-matches a comma-separated channel list against
// the comma-joined campaign_channel column.
func applyChannelFilter(db *gorm.DB, channels string) *gorm.DB {
	var conds []string
	var args []any
	for _, ch := range strings.Split(channels, ",") {
		ch = strings.TrimSpace(ch)
		if ch == "" {
			continue
		}
		conds = append(conds, "campaign_channel ILIKE ?")
		args = append(args, contains(ch))
	}
	if len(conds) == 0 {
		return db
	}
	return db.Where("("+strings.Join(conds, " OR ")+")", args...)
}

// applyViewport renders the normalized bounding box using the strategy
// the area heuristic picked. Both strategies are boundary-inclusive
// and return identical row sets for the same box.
func applyViewport(db *gorm.DB, b boundingBox) *gorm.DB {
	switch b.strategy() {
	case ViewportWide:
		return db.Where("point(lng, lat) <@ box(point(?, ?), point(?, ?))",
			b.lngMin, b.latMin, b.lngMax, b.latMax)
	default:
		return db.Where("lat BETWEEN ? AND ?", b.latMin, b.latMax).
			Where("lng BETWEEN ? AND ?", b.lngMin, b.lngMax)
	}
}

func contains(s string) string {
	return "%" + s + "%"
}
