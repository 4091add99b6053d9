package repository

import (
	"testing"

	"github.com/yunseo-dev/campatlas/models"
	"github.com/yunseo-dev/campatlas/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFairnessBucket(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		for _, id := range []uint{1, 2, 1000, 123456} {
			assert.Equal(t, FairnessBucket(id), FairnessBucket(id))
		}
	})

	t.Run("WithinRange", func(t *testing.T) {
		for id := uint(1); id <= 5000; id++ {
			b := FairnessBucket(id)
			assert.GreaterOrEqual(t, b, 0)
			assert.Less(t, b, int(FairnessBuckets))
		}
	})

	t.Run("ScramblesAdjacentIds", func(t *testing.T) {
		// Consecutive ids land far apart; that is the whole point of
		// the multiplicative hash over ordering by raw id.
		assert.NotEqual(t, FairnessBucket(1)+1, FairnessBucket(2))
	})

	t.Run("KnownValues", func(t *testing.T) {
		// (id * 2654435761) % 1000, pinned so the Go and SQL sides can
		// never drift apart silently.
		assert.Equal(t, 761, FairnessBucket(1))
		assert.Equal(t, 522, FairnessBucket(2))
		assert.Equal(t, 610, FairnessBucket(10))
	})
}

func TestRankingExpression(t *testing.T) {
	t.Run("DefaultSort", func(t *testing.T) {
		q := models.CampaignQuery{Sort: models.DefaultCampaignSort()}

		sql, vars := rankingExpression(q)
		assert.Equal(t,
			"COALESCE(promotion_level, 0) DESC, created_at DESC, (id::bigint * 2654435761) % 1000, created_at DESC",
			sql)
		assert.Empty(t, vars)
	})

	t.Run("ApplyDeadlineAscending", func(t *testing.T) {
		q := models.CampaignQuery{
			Sort: models.CampaignSort{Field: models.SortApplyDeadline},
		}

		sql, vars := rankingExpression(q)
		assert.Contains(t, sql, "apply_deadline ASC NULLS LAST")
		assert.Contains(t, sql, "COALESCE(promotion_level, 0) DESC, ")
		assert.Empty(t, vars)
	})

	t.Run("ReviewDeadlineDescending", func(t *testing.T) {
		q := models.CampaignQuery{
			Sort: models.CampaignSort{Field: models.SortReviewDeadline, Descending: true},
		}

		sql, _ := rankingExpression(q)
		assert.Contains(t, sql, "review_deadline DESC NULLS LAST")
	})

	t.Run("DistanceSort", func(t *testing.T) {
		q := models.CampaignQuery{
			Sort:    models.CampaignSort{Field: models.SortDistance},
			UserLat: utils.ToPtr(37.5665),
			UserLng: utils.ToPtr(126.9780),
		}

		sql, vars := rankingExpression(q)
		assert.Contains(t, sql, "asin(sqrt(")
		assert.Contains(t, sql, "ASC NULLS LAST")
		require.Len(t, vars, 3)
		assert.Equal(t, 37.5665, vars[0])
		assert.Equal(t, 37.5665, vars[1])
		assert.Equal(t, 126.9780, vars[2])
	})

	t.Run("FairnessTierAlwaysPresent", func(t *testing.T) {
		for _, sort := range []models.CampaignSort{
			models.DefaultCampaignSort(),
			{Field: models.SortUpdatedAt, Descending: true},
			{Field: models.SortApplyDeadline},
		} {
			sql, _ := rankingExpression(models.CampaignQuery{Sort: sort})
			assert.Contains(t, sql, "(id::bigint * 2654435761) % 1000")
			assert.Contains(t, sql, ", created_at DESC")
		}
	})

	t.Run("UnknownFieldFallsBackToCreatedAt", func(t *testing.T) {
		q := models.CampaignQuery{
			Sort: models.CampaignSort{Field: "platform"},
		}

		sql, _ := rankingExpression(q)
		assert.NotContains(t, sql, "platform")
		assert.Contains(t, sql, "created_at ASC")
	})
}
