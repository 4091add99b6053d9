package repository

import (
	"context"
	"fmt"

	"github.com/yunseo-dev/campatlas/models"
	"gorm.io/gorm"
)

// CategoryRepositoryImpl implements the CategoryRepository interface
type CategoryRepositoryImpl struct {
	*BaseRepository[models.Category]
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Category](db),
	}
}

// List returns all standard categories in display order.
func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]*models.Category, error) {
	db := r.getDB(ctx)

	var categories []*models.Category
	err := db.Order("display_order ASC, id ASC").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}
