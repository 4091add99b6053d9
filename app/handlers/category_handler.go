package handlers

import (
	"context"
	"log"
	"time"

	"github.com/yunseo-dev/campatlas/app/dto"
	businessflow "github.com/yunseo-dev/campatlas/business_flow"
	"github.com/yunseo-dev/campatlas/utils"
	"github.com/gofiber/fiber/v3"
)

// CategoryHandlerInterface defines the contract for category handlers
type CategoryHandlerInterface interface {
	List(c fiber.Ctx) error
}

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	flow businessflow.CategoryFlow
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(flow businessflow.CategoryFlow) *CategoryHandler {
	return &CategoryHandler{flow: flow}
}

func (h *CategoryHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *CategoryHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List returns all standard categories
// @Summary List categories
// @Description List the curated standard categories in display order
// @Tags Categories
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ListCategoriesResponse} "Categories"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c fiber.Ctx) error {
	result, err := h.flow.ListCategories(h.createRequestContext(c, "/api/v1/categories"))
	if err != nil {
		log.Println("List categories failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list categories", "LIST_CATEGORIES_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Categories retrieved successfully", result)
}

func (h *CategoryHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get(businessflow.RequestIDKey))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}
