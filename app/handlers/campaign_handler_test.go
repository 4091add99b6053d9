package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yunseo-dev/campatlas/app/dto"
	businessflow "github.com/yunseo-dev/campatlas/business_flow"
	"github.com/yunseo-dev/campatlas/config"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCampaignFlow returns canned responses and records the request it
// received.
type stubCampaignFlow struct {
	listResp *dto.CampaignListResponse
	listErr  error
	getResp  *dto.CampaignResponse
	getErr   error
	lastReq  *dto.ListCampaignsRequest
}

func (s *stubCampaignFlow) ListCampaigns(_ context.Context, req *dto.ListCampaignsRequest, _ *businessflow.ClientMetadata) (*dto.CampaignListResponse, error) {
	s.lastReq = req
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listResp, nil
}

func (s *stubCampaignFlow) GetCampaign(_ context.Context, _ uint) (*dto.CampaignResponse, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.getResp, nil
}

func newTestApp(flow businessflow.CampaignFlow) *fiber.App {
	engineCfg := config.EngineConfig{
		IsNewWindow:  48 * time.Hour,
		DefaultLimit: 20,
		MaxLimit:     100,
	}
	handler := NewCampaignHandler(flow, engineCfg)

	app := fiber.New()
	app.Get("/api/v1/campaigns", handler.List)
	app.Get("/api/v1/campaigns/:id", handler.Get)
	return app
}

func TestCampaignHandlerList(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		flow := &stubCampaignFlow{listResp: &dto.CampaignListResponse{
			Total: 1, Limit: 20, Offset: 0,
			Items: []dto.CampaignResponse{{ID: 1, Platform: "revu", Company: "바디짐"}},
		}}
		app := newTestApp(flow)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/campaigns", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body dto.APIResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Success)
	})

	t.Run("DefaultsApplied", func(t *testing.T) {
		flow := &stubCampaignFlow{listResp: &dto.CampaignListResponse{}}
		app := newTestApp(flow)

		_, err := app.Test(httptest.NewRequest("GET", "/api/v1/campaigns", nil))
		require.NoError(t, err)

		require.NotNil(t, flow.lastReq)
		assert.Equal(t, "-created_at", flow.lastReq.Sort)
		assert.Equal(t, 20, flow.lastReq.Limit)
		assert.Equal(t, 0, flow.lastReq.Offset)
	})

	t.Run("LimitClampedToMax", func(t *testing.T) {
		flow := &stubCampaignFlow{listResp: &dto.CampaignListResponse{}}
		app := newTestApp(flow)

		_, err := app.Test(httptest.NewRequest("GET", "/api/v1/campaigns?limit=9999", nil))
		require.NoError(t, err)

		require.NotNil(t, flow.lastReq)
		assert.Equal(t, 100, flow.lastReq.Limit)
	})

	t.Run("MalformedFloatRejected", func(t *testing.T) {
		flow := &stubCampaignFlow{listResp: &dto.CampaignListResponse{}}
		app := newTestApp(flow)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/campaigns?lat=abc", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Nil(t, flow.lastReq, "malformed input must not reach the flow")
	})

	t.Run("MalformedDateRejected", func(t *testing.T) {
		flow := &stubCampaignFlow{listResp: &dto.CampaignListResponse{}}
		app := newTestApp(flow)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/campaigns?apply_from=notadate", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ClientInputErrorIs400", func(t *testing.T) {
		flow := &stubCampaignFlow{listErr: businessflow.NewBusinessError(
			"DISTANCE_SORT_WITHOUT_LOCATION",
			"sort=distance requires lat and lng parameters",
			businessflow.ErrDistanceSortRequiresLocation,
		)}
		app := newTestApp(flow)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/campaigns?sort=distance", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body struct {
			Success bool            `json:"success"`
			Error   dto.ErrorDetail `json:"error"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Success)
		assert.Equal(t, "DISTANCE_SORT_WITHOUT_LOCATION", body.Error.Code)
	})

	t.Run("RepositoryFailureIs500", func(t *testing.T) {
		flow := &stubCampaignFlow{listErr: businessflow.NewBusinessError(
			"LIST_CAMPAIGNS_FAILED", "Failed to list campaigns", assert.AnError,
		)}
		app := newTestApp(flow)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/campaigns", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestCampaignHandlerGet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		flow := &stubCampaignFlow{getResp: &dto.CampaignResponse{ID: 7, Platform: "revu", Company: "바디짐"}}
		app := newTestApp(flow)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/campaigns/7", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("InvalidID", func(t *testing.T) {
		flow := &stubCampaignFlow{}
		app := newTestApp(flow)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/campaigns/abc", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		flow := &stubCampaignFlow{getErr: businessflow.NewBusinessError(
			"CAMPAIGN_NOT_FOUND", "Campaign not found", businessflow.ErrCampaignNotFound,
		)}
		app := newTestApp(flow)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/campaigns/999", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
