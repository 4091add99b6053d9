package handlers

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/yunseo-dev/campatlas/app/dto"
	businessflow "github.com/yunseo-dev/campatlas/business_flow"
	"github.com/yunseo-dev/campatlas/config"
	"github.com/yunseo-dev/campatlas/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// CampaignHandlerInterface defines the contract for campaign handlers
type CampaignHandlerInterface interface {
	List(c fiber.Ctx) error
	Get(c fiber.Ctx) error
}

// CampaignHandler handles campaign listing HTTP requests
type CampaignHandler struct {
	flow      businessflow.CampaignFlow
	engineCfg config.EngineConfig
	validator *validator.Validate
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(flow businessflow.CampaignFlow, engineCfg config.EngineConfig) *CampaignHandler {
	return &CampaignHandler{
		flow:      flow,
		engineCfg: engineCfg,
		validator: validator.New(),
	}
}

func (h *CampaignHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *CampaignHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List returns a filtered, ranked page of campaigns
// @Summary List campaigns
// @Description List active campaigns with filtering, ranking and pagination
// @Tags Campaigns
// @Produce json
// @Param region query string false "Region substring filter"
// @Param offer query string false "Offer text filter with semantic term matching"
// @Param q query string false "Free-text search over company, offer, title and region"
// @Param category_id query int false "Standard category id"
// @Param platform query string false "Source platform filter"
// @Param campaign_type query string false "Campaign type filter"
// @Param campaign_channel query string false "Comma-separated channel filter"
// @Param apply_from query string false "Apply deadline range start (RFC3339 or YYYY-MM-DD)"
// @Param apply_to query string false "Apply deadline range end"
// @Param review_from query string false "Review deadline range start"
// @Param review_to query string false "Review deadline range end"
// @Param sw_lat query number false "Viewport south-west latitude"
// @Param sw_lng query number false "Viewport south-west longitude"
// @Param ne_lat query number false "Viewport north-east latitude"
// @Param ne_lng query number false "Viewport north-east longitude"
// @Param lat query number false "User latitude for distance"
// @Param lng query number false "User longitude for distance"
// @Param sort query string false "Sort field, '-' prefix for descending" default(-created_at)
// @Param limit query int false "Page size (1-100)" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.APIResponse{data=dto.CampaignListResponse} "Campaign page"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/campaigns [get]
func (h *CampaignHandler) List(c fiber.Ctx) error {
	req, err := h.parseListRequest(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameter", "INVALID_REQUEST", err.Error())
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	// Get client information
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	metadata.SetRequestID(c.Get(businessflow.RequestIDKey))

	result, err := h.flow.ListCampaigns(h.createRequestContext(c, "/api/v1/campaigns"), req, metadata)
	if err != nil {
		if businessflow.IsClientInputError(err) {
			return h.businessErrorResponse(c, fiber.StatusBadRequest, err)
		}

		log.Println("List campaigns failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list campaigns", "LIST_CAMPAIGNS_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Campaigns retrieved successfully", result)
}

// Get returns a single campaign by id
// @Summary Get campaign
// @Description Get one campaign by id regardless of its apply window
// @Tags Campaigns
// @Produce json
// @Param id path int true "Campaign ID"
// @Success 200 {object} dto.APIResponse{data=dto.CampaignResponse} "Campaign"
// @Failure 400 {object} dto.APIResponse "Invalid id"
// @Failure 404 {object} dto.APIResponse "Campaign not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/campaigns/{id} [get]
func (h *CampaignHandler) Get(c fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid campaign id", "INVALID_CAMPAIGN_ID", nil)
	}

	result, err := h.flow.GetCampaign(h.createRequestContext(c, "/api/v1/campaigns/:id"), uint(id))
	if err != nil {
		if businessflow.IsCampaignNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Campaign not found", "CAMPAIGN_NOT_FOUND", nil)
		}

		log.Println("Get campaign failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to get campaign", "GET_CAMPAIGN_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Campaign retrieved successfully", result)
}

// parseListRequest reads every supported query parameter into the
// request DTO. Unknown parameters are ignored; malformed values for
// known parameters are errors.
func (h *CampaignHandler) parseListRequest(c fiber.Ctx) (*dto.ListCampaignsRequest, error) {
	req := &dto.ListCampaignsRequest{
		Region:          queryString(c, "region"),
		Offer:           queryString(c, "offer"),
		CampaignType:    queryString(c, "campaign_type"),
		CampaignChannel: queryString(c, "campaign_channel"),
		Query:           queryString(c, "q"),
		Platform:        queryString(c, "platform"),
		Company:         queryString(c, "company"),
		Diversify:       queryString(c, "diversify"),
	}

	var err error
	if req.CategoryID, err = queryUint(c, "category_id"); err != nil {
		return nil, err
	}
	if req.ApplyFrom, err = queryDate(c, "apply_from"); err != nil {
		return nil, err
	}
	if req.ApplyTo, err = queryDate(c, "apply_to"); err != nil {
		return nil, err
	}
	if req.ReviewFrom, err = queryDate(c, "review_from"); err != nil {
		return nil, err
	}
	if req.ReviewTo, err = queryDate(c, "review_to"); err != nil {
		return nil, err
	}
	if req.SwLat, err = queryFloat(c, "sw_lat"); err != nil {
		return nil, err
	}
	if req.SwLng, err = queryFloat(c, "sw_lng"); err != nil {
		return nil, err
	}
	if req.NeLat, err = queryFloat(c, "ne_lat"); err != nil {
		return nil, err
	}
	if req.NeLng, err = queryFloat(c, "ne_lng"); err != nil {
		return nil, err
	}
	if req.Lat, err = queryFloat(c, "lat"); err != nil {
		return nil, err
	}
	if req.Lng, err = queryFloat(c, "lng"); err != nil {
		return nil, err
	}
	if req.PlatformCap, err = queryIntPtr(c, "platform_cap"); err != nil {
		return nil, err
	}
	if req.Limit, err = queryInt(c, "limit", h.engineCfg.DefaultLimit); err != nil {
		return nil, err
	}
	if req.Offset, err = queryInt(c, "offset", 0); err != nil {
		return nil, err
	}

	// Page size is clamped, not rejected: an out-of-range limit still
	// serves a page.
	if req.Limit < 1 {
		req.Limit = h.engineCfg.DefaultLimit
	}
	if req.Limit > h.engineCfg.MaxLimit {
		req.Limit = h.engineCfg.MaxLimit
	}

	req.Sort = c.Query("sort", "-created_at")
	return req, nil
}

func (h *CampaignHandler) businessErrorResponse(c fiber.Ctx, statusCode int, err error) error {
	var be *businessflow.BusinessError
	if errors.As(err, &be) {
		return h.ErrorResponse(c, statusCode, be.Message, be.Code, nil)
	}
	return h.ErrorResponse(c, statusCode, "Invalid request", "INVALID_REQUEST", nil)
}

func (h *CampaignHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

func (h *CampaignHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get(businessflow.RequestIDKey))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}
