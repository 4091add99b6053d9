package repository

import (
	"os"
	"testing"
	"time"

	"github.com/yunseo-dev/campatlas/models"
	testingutil "github.com/yunseo-dev/campatlas/testing"
	"github.com/yunseo-dev/campatlas/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration coverage for the compiled search query. Needs a real
// Postgres because the ranking and viewport clauses are raw SQL.
func requireTestDB(t *testing.T) {
	t.Helper()
	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("TEST_DB_HOST not set; skipping database integration test")
	}
}

func TestCampaignRepositorySearch(t *testing.T) {
	requireTestDB(t)

	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := NewCampaignRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		past := utils.UTCNow().Add(-72 * time.Hour)

		// Active, unpromoted.
		plain, err := fixtures.CreateTestCampaign("revu", "잠실곱창집")
		require.NoError(t, err)
		// Active, promoted; created earlier than plain.
		promoted, err := fixtures.CreateTestCampaign("reviewnote", "강남피부과",
			testingutil.WithPromotion(2),
			testingutil.WithCreatedAt(utils.UTCNow().Add(-time.Hour)))
		require.NoError(t, err)
		// Expired: apply deadline days in the past.
		expired, err := fixtures.CreateTestCampaign("revu", "폐업한카페",
			testingutil.WithApplyDeadline(past))
		require.NoError(t, err)
		// Open-ended: no deadline at all, never expires.
		openEnded, err := fixtures.CreateTestCampaign("dinnerqueen", "상시모집식당")
		require.NoError(t, err)
		openEnded.ApplyDeadline = nil
		require.NoError(t, testDB.DB.Model(&models.Campaign{}).
			Where("id = ?", openEnded.ID).
			Update("apply_deadline", nil).Error)

		t.Run("WindowExcludesExpired", func(t *testing.T) {
			total, rows, err := repo.Search(ctx, models.CampaignQuery{
				Sort:  models.DefaultCampaignSort(),
				Limit: 50,
			})
			require.NoError(t, err)
			assert.Equal(t, int64(3), total)

			ids := make(map[uint]bool)
			for _, r := range rows {
				ids[r.ID] = true
			}
			assert.True(t, ids[plain.ID])
			assert.True(t, ids[promoted.ID])
			assert.True(t, ids[openEnded.ID], "open-ended listing must stay visible")
			assert.False(t, ids[expired.ID], "expired listing must not be listed")
		})

		t.Run("PromotedRanksFirst", func(t *testing.T) {
			_, rows, err := repo.Search(ctx, models.CampaignQuery{
				Sort:  models.DefaultCampaignSort(),
				Limit: 50,
			})
			require.NoError(t, err)
			require.NotEmpty(t, rows)
			// promoted was created before plain, yet sponsorship
			// dominates recency.
			assert.Equal(t, promoted.ID, rows[0].ID)
		})

		t.Run("CountMatchesPagePredicate", func(t *testing.T) {
			q := models.CampaignQuery{
				Filter: models.CampaignFilter{Platform: utils.ToPtr("revu")},
				Sort:   models.DefaultCampaignSort(),
				Limit:  1,
			}
			total, rows, err := repo.Search(ctx, q)
			require.NoError(t, err)
			assert.Equal(t, int64(1), total, "expired revu listing is outside the window")
			assert.Len(t, rows, 1)
		})

		t.Run("ByIDBypassesWindow", func(t *testing.T) {
			row, err := repo.ByID(ctx, expired.ID)
			require.NoError(t, err)
			require.NotNil(t, row)
			assert.Equal(t, expired.ID, row.ID)
		})

		t.Run("ByIDNotFound", func(t *testing.T) {
			row, err := repo.ByID(ctx, 999999)
			require.NoError(t, err)
			assert.Nil(t, row)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestCampaignRepositoryOfferSearch(t *testing.T) {
	requireTestDB(t)

	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := NewCampaignRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		gym, err := fixtures.CreateTestCampaign("revu", "바디짐",
			testingutil.WithOffer("피트니스 2개월 이용권 40,000원 할인"))
		require.NoError(t, err)
		_, err = fixtures.CreateTestCampaign("revu", "동네카페",
			testingutil.WithOffer("아메리카노 2잔 무료"))
		require.NoError(t, err)

		t.Run("MoneyTermMatchesGroupedDigits", func(t *testing.T) {
			total, rows, err := repo.Search(ctx, models.CampaignQuery{
				Filter: models.CampaignFilter{Offer: utils.ToPtr("4만")},
				Sort:   models.DefaultCampaignSort(),
				Limit:  10,
			})
			require.NoError(t, err)
			require.Equal(t, int64(1), total)
			assert.Equal(t, gym.ID, rows[0].ID)
		})

		t.Run("QuantityTermMatchesUnitSynonym", func(t *testing.T) {
			total, rows, err := repo.Search(ctx, models.CampaignQuery{
				Filter: models.CampaignFilter{Offer: utils.ToPtr("2달")},
				Sort:   models.DefaultCampaignSort(),
				Limit:  10,
			})
			require.NoError(t, err)
			require.Equal(t, int64(1), total)
			assert.Equal(t, gym.ID, rows[0].ID)
		})

		t.Run("KeywordSynonymMatches", func(t *testing.T) {
			total, rows, err := repo.Search(ctx, models.CampaignQuery{
				Filter: models.CampaignFilter{Offer: utils.ToPtr("헬스장")},
				Sort:   models.DefaultCampaignSort(),
				Limit:  10,
			})
			require.NoError(t, err)
			require.Equal(t, int64(1), total)
			assert.Equal(t, gym.ID, rows[0].ID)
		})

		t.Run("AllTermsMustMatch", func(t *testing.T) {
			total, _, err := repo.Search(ctx, models.CampaignQuery{
				Filter: models.CampaignFilter{Offer: utils.ToPtr("헬스장 아메리카노")},
				Sort:   models.DefaultCampaignSort(),
				Limit:  10,
			})
			require.NoError(t, err)
			assert.Equal(t, int64(0), total)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestCampaignRepositoryViewport(t *testing.T) {
	requireTestDB(t)

	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := NewCampaignRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		inSeoul, err := fixtures.CreateTestCampaign("revu", "서울맛집",
			testingutil.WithLocation(37.5665, 126.9780))
		require.NoError(t, err)
		_, err = fixtures.CreateTestCampaign("revu", "제주펜션",
			testingutil.WithLocation(33.4996, 126.5312))
		require.NoError(t, err)
		_, err = fixtures.CreateTestCampaign("revu", "주소없는가게")
		require.NoError(t, err)

		// Narrow box around central Seoul and a wide whole-country box;
		// the strategies differ but the semantics must not.
		narrow := models.CampaignFilter{
			SwLat: utils.ToPtr(37.55), SwLng: utils.ToPtr(126.95),
			NeLat: utils.ToPtr(37.58), NeLng: utils.ToPtr(127.00),
		}
		wide := models.CampaignFilter{
			SwLat: utils.ToPtr(35.0), SwLng: utils.ToPtr(126.0),
			NeLat: utils.ToPtr(38.5), NeLng: utils.ToPtr(128.0),
		}

		t.Run("NarrowBox", func(t *testing.T) {
			total, rows, err := repo.Search(ctx, models.CampaignQuery{
				Filter: narrow, Sort: models.DefaultCampaignSort(), Limit: 10,
			})
			require.NoError(t, err)
			require.Equal(t, int64(1), total)
			assert.Equal(t, inSeoul.ID, rows[0].ID)
		})

		t.Run("WideBox", func(t *testing.T) {
			total, rows, err := repo.Search(ctx, models.CampaignQuery{
				Filter: wide, Sort: models.DefaultCampaignSort(), Limit: 10,
			})
			require.NoError(t, err)
			require.Equal(t, int64(1), total)
			assert.Equal(t, inSeoul.ID, rows[0].ID)
		})

		t.Run("DistanceSortNullCoordsLast", func(t *testing.T) {
			_, rows, err := repo.Search(ctx, models.CampaignQuery{
				Sort:    models.CampaignSort{Field: models.SortDistance},
				UserLat: utils.ToPtr(37.5665),
				UserLng: utils.ToPtr(126.9780),
				Limit:   10,
			})
			require.NoError(t, err)
			require.Len(t, rows, 3)
			assert.Equal(t, inSeoul.ID, rows[0].ID)
			assert.False(t, rows[2].HasLocation(), "listings without coordinates sort last")
		})

		return nil
	})
	require.NoError(t, err)
}
