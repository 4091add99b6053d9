// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"

	"github.com/yunseo-dev/campatlas/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

// CampaignRepository defines read operations over the listing store.
type CampaignRepository interface {
	// ByID fetches one listing with its resolved category. It applies
	// no active-window filter: shared links must resolve even for
	// expired listings. Returns (nil, nil) when the id is unknown.
	ByID(ctx context.Context, id uint) (*models.Campaign, error)

	// Search compiles the query into a single predicate, executes the
	// count and page queries against it, and returns
	// (total_matching_rows, page_of_rows). The page is ordered by the
	// four-tier ranking (sponsorship, requested sort, fairness,
	// recency).
	Search(ctx context.Context, q models.CampaignQuery) (int64, []*models.Campaign, error)
}

// CategoryRepository defines read operations for standard categories.
type CategoryRepository interface {
	ByID(ctx context.Context, id uint) (*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error)
}
