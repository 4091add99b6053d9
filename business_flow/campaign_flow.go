package businessflow

import (
	"context"
	"log"
	"strings"

	"github.com/yunseo-dev/campatlas/app/dto"
	"github.com/yunseo-dev/campatlas/config"
	"github.com/yunseo-dev/campatlas/models"
	"github.com/yunseo-dev/campatlas/repository"
	"github.com/yunseo-dev/campatlas/utils"
)

// CampaignFlow handles the listing read use cases
type CampaignFlow interface {
	ListCampaigns(ctx context.Context, req *dto.ListCampaignsRequest, metadata *ClientMetadata) (*dto.CampaignListResponse, error)
	GetCampaign(ctx context.Context, id uint) (*dto.CampaignResponse, error)
}

// CampaignFlowImpl implements the campaign business flow
type CampaignFlowImpl struct {
	campaignRepo repository.CampaignRepository
	engineCfg    config.EngineConfig
}

// NewCampaignFlow creates a new campaign flow instance
func NewCampaignFlow(campaignRepo repository.CampaignRepository, engineCfg config.EngineConfig) CampaignFlow {
	return &CampaignFlowImpl{
		campaignRepo: campaignRepo,
		engineCfg:    engineCfg,
	}
}

// ListCampaigns compiles the filter set into one query, executes the
// count and ranked page against the identical predicate, and projects
// the derived fields onto each returned row.
func (s *CampaignFlowImpl) ListCampaigns(ctx context.Context, req *dto.ListCampaignsRequest, metadata *ClientMetadata) (*dto.CampaignListResponse, error) {
	sort, err := parseSort(req.Sort)
	if err != nil {
		return nil, NewBusinessError("INVALID_SORT", "Unknown sort field", err)
	}
	if err := validateListRequest(req, sort); err != nil {
		return nil, err
	}

	if req.Diversify != nil || req.PlatformCap != nil {
		// Accepted by the request shape but not applied; the fairness
		// tier is the only per-platform balancing in effect. Logged so
		// callers relying on it are visible in production.
		log.Printf("diversify/platform_cap requested but not applied (request_id=%s)", requestID(metadata))
	}

	query := models.CampaignQuery{
		Filter: models.CampaignFilter{
			Region:          req.Region,
			Offer:           req.Offer,
			CampaignType:    req.CampaignType,
			CampaignChannel: req.CampaignChannel,
			CategoryID:      req.CategoryID,
			Query:           req.Query,
			Platform:        req.Platform,
			Company:         req.Company,
			ApplyFrom:       req.ApplyFrom,
			ApplyTo:         req.ApplyTo,
			ReviewFrom:      req.ReviewFrom,
			ReviewTo:        req.ReviewTo,
			SwLat:           req.SwLat,
			SwLng:           req.SwLng,
			NeLat:           req.NeLat,
			NeLng:           req.NeLng,
		},
		Sort:    sort,
		Limit:   req.Limit,
		Offset:  req.Offset,
		UserLat: req.Lat,
		UserLng: req.Lng,
	}

	total, rows, err := s.campaignRepo.Search(ctx, query)
	if err != nil {
		return nil, NewBusinessError("LIST_CAMPAIGNS_FAILED", "Failed to list campaigns", err)
	}

	items := make([]dto.CampaignResponse, 0, len(rows))
	for _, c := range rows {
		items = append(items, s.projectCampaign(c, req.Lat, req.Lng))
	}

	return &dto.CampaignListResponse{
		Total:  total,
		Limit:  req.Limit,
		Offset: req.Offset,
		Items:  items,
	}, nil
}

// GetCampaign looks up a single listing by id. The active-window
// filter is intentionally bypassed so shared links keep resolving;
// staleness is reported through is_expired instead.
func (s *CampaignFlowImpl) GetCampaign(ctx context.Context, id uint) (*dto.CampaignResponse, error) {
	campaign, err := s.campaignRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("CAMPAIGN_LOOKUP_FAILED", "Failed to lookup campaign", err)
	}
	if campaign == nil {
		return nil, NewBusinessError("CAMPAIGN_NOT_FOUND", "Campaign not found", ErrCampaignNotFound)
	}

	resp := s.projectCampaign(campaign, nil, nil)
	return &resp, nil
}

// parseSort interprets the sort parameter; a "-" prefix requests
// descending order. Distance ordering is always ascending.
func parseSort(sort string) (models.CampaignSort, error) {
	if sort == "" {
		return models.DefaultCampaignSort(), nil
	}

	desc := strings.HasPrefix(sort, "-")
	field := strings.TrimPrefix(sort, "-")

	parsed := models.CampaignSort{Field: field, Descending: desc}
	if !parsed.Valid() {
		return models.CampaignSort{}, ErrInvalidSortField
	}
	if field == models.SortDistance && desc {
		return models.CampaignSort{}, ErrInvalidSortField
	}
	return parsed, nil
}

// validateListRequest enforces the cross-parameter rules the struct
// validator cannot express. Validation fails closed: an unusable
// filter combination is rejected, never silently dropped.
func validateListRequest(req *dto.ListCampaignsRequest, sort models.CampaignSort) error {
	if sort.Field == models.SortDistance && (req.Lat == nil || req.Lng == nil) {
		return NewBusinessError("DISTANCE_SORT_WITHOUT_LOCATION",
			"sort=distance requires lat and lng parameters", ErrDistanceSortRequiresLocation)
	}

	corners := 0
	for _, c := range []*float64{req.SwLat, req.SwLng, req.NeLat, req.NeLng} {
		if c != nil {
			corners++
		}
	}
	if corners != 0 && corners != 4 {
		return NewBusinessError("INCOMPLETE_BOUNDING_BOX",
			"Bounding box requires sw_lat, sw_lng, ne_lat and ne_lng", ErrIncompleteBoundingBox)
	}

	if req.ApplyFrom != nil && req.ApplyTo != nil && req.ApplyFrom.After(*req.ApplyTo) {
		return NewBusinessError("INVALID_APPLY_RANGE",
			"apply_from cannot be after apply_to", ErrDateRangeInverted)
	}
	if req.ReviewFrom != nil && req.ReviewTo != nil && req.ReviewFrom.After(*req.ReviewTo) {
		return NewBusinessError("INVALID_REVIEW_RANGE",
			"review_from cannot be after review_to", ErrDateRangeInverted)
	}

	return nil
}

// projectCampaign attaches the derived fields to one row: resolved
// category, distance from the user coordinate, is_new, is_expired.
func (s *CampaignFlowImpl) projectCampaign(c *models.Campaign, userLat, userLng *float64) dto.CampaignResponse {
	resp := dto.CampaignResponse{
		ID:              c.ID,
		Platform:        c.Platform,
		Company:         c.Company,
		CompanyLink:     c.CompanyLink,
		Offer:           c.Offer,
		Title:           c.Title,
		CampaignType:    c.CampaignType,
		CampaignChannel: c.CampaignChannel,
		Region:          c.Region,
		Address:         c.Address,
		Lat:             c.Lat,
		Lng:             c.Lng,
		ImgURL:          c.ImgURL,
		ContentLink:     c.ContentLink,
		ApplyFrom:       c.ApplyFrom,
		ApplyDeadline:   c.ApplyDeadline,
		ReviewDeadline:  c.ReviewDeadline,
		PromotionLevel:  c.Promotion(),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}

	if c.Category != nil {
		resp.Category = &dto.CategoryResponse{
			ID:           c.Category.ID,
			Name:         c.Category.Name,
			DisplayOrder: c.Category.DisplayOrder,
		}
	}

	if userLat != nil && userLng != nil && c.HasLocation() {
		d := repository.Haversine(*userLat, *userLng, *c.Lat, *c.Lng)
		resp.Distance = &d
	}

	resp.IsNew = utils.UTCNow().Sub(c.CreatedAt) <= s.engineCfg.IsNewWindow

	// Recomputed here rather than reusing the window filter: the
	// single-item lookup bypasses that filter but must still report
	// staleness.
	resp.IsExpired = c.ApplyDeadline != nil && c.ApplyDeadline.Before(utils.StartOfTodayKST())

	return resp
}

func requestID(metadata *ClientMetadata) string {
	if metadata == nil {
		return ""
	}
	return metadata.RequestID
}
