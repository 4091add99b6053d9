package businessflow

import (
	"context"
	"encoding/json"
	"log"

	"github.com/yunseo-dev/campatlas/app/dto"
	"github.com/yunseo-dev/campatlas/config"
	"github.com/yunseo-dev/campatlas/repository"
	"github.com/redis/go-redis/v9"
)

// CategoryFlow handles category read use cases
type CategoryFlow interface {
	ListCategories(ctx context.Context) (*dto.ListCategoriesResponse, error)
}

// CategoryFlowImpl implements the category business flow
type CategoryFlowImpl struct {
	categoryRepo repository.CategoryRepository
	cacheConfig  *config.CacheConfig
	rc           *redis.Client
}

// NewCategoryFlow creates a new category flow instance
func NewCategoryFlow(categoryRepo repository.CategoryRepository, cacheConfig *config.CacheConfig, rc *redis.Client) CategoryFlow {
	return &CategoryFlowImpl{
		categoryRepo: categoryRepo,
		cacheConfig:  cacheConfig,
		rc:           rc,
	}
}

// ListCategories returns all standard categories in display order.
// The list is small and changes only through curation, so it is
// served cache-aside from Redis when available.
func (s *CategoryFlowImpl) ListCategories(ctx context.Context) (*dto.ListCategoriesResponse, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	rows, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, NewBusinessError("LIST_CATEGORIES_FAILED", "Failed to list categories", err)
	}

	items := make([]dto.CategoryResponse, 0, len(rows))
	for _, c := range rows {
		items = append(items, dto.CategoryResponse{
			ID:           c.ID,
			Name:         c.Name,
			DisplayOrder: c.DisplayOrder,
		})
	}

	resp := &dto.ListCategoriesResponse{Items: items}
	s.toCache(ctx, resp)
	return resp, nil
}

func (s *CategoryFlowImpl) cacheKey() string {
	prefix := ""
	if s.cacheConfig != nil {
		prefix = s.cacheConfig.RedisPrefix
	}
	return prefix + "categories:list"
}

func (s *CategoryFlowImpl) fromCache(ctx context.Context) (*dto.ListCategoriesResponse, bool) {
	if s.rc == nil {
		return nil, false
	}

	payload, err := s.rc.Get(ctx, s.cacheKey()).Bytes()
	if err != nil {
		return nil, false
	}

	var resp dto.ListCategoriesResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

func (s *CategoryFlowImpl) toCache(ctx context.Context, resp *dto.ListCategoriesResponse) {
	if s.rc == nil || s.cacheConfig == nil {
		return
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.rc.Set(ctx, s.cacheKey(), payload, s.cacheConfig.DefaultTTL).Err(); err != nil {
		log.Printf("category cache write failed: %v", err)
	}
}
