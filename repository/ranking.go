package repository

import (
	"fmt"

	"github.com/yunseo-dev/campatlas/models"
)

// Fairness-tier constants. The bucket must be a pure function of the
// listing id alone so that pagination across tiers is stable and any
// reimplementation agrees bit-for-bit on ordering.
const (
	// FairnessMultiplier is Knuth's multiplicative hash constant
	// (2^32 * golden ratio conjugate).
	FairnessMultiplier uint64 = 2654435761
	// FairnessBuckets is the modulus the hashed id is reduced by.
	FairnessBuckets uint64 = 1000
)

// FairnessBucket scrambles a listing id into its fairness-tier bucket.
// Same id, same bucket, every call.
func FairnessBucket(id uint) int {
	return int((uint64(id) * FairnessMultiplier) % FairnessBuckets)
}

// fairnessSQL is the same computation rendered for Postgres. ids fit
// int4, so id*multiplier stays within bigint range.
var fairnessSQL = fmt.Sprintf("(id::bigint * %d) %% %d", FairnessMultiplier, FairnessBuckets)

// sortColumns whitelists the caller-selectable order columns. Sort
// input never reaches the SQL text except through this map.
var sortColumns = map[string]string{
	models.SortCreatedAt:      "created_at",
	models.SortUpdatedAt:      "updated_at",
	models.SortApplyDeadline:  "apply_deadline",
	models.SortReviewDeadline: "review_deadline",
}

// nullableSortColumns are deadline columns that may be NULL; open-ended
// listings sort after dated ones in either direction.
var nullableSortColumns = map[string]bool{
	models.SortApplyDeadline:  true,
	models.SortReviewDeadline: true,
}

// rankingExpression renders the fixed four-tier ORDER BY:
//
//  1. sponsorship: COALESCE(promotion_level, 0) DESC — dominant key
//  2. requested:   distance ASC NULLS LAST, or the caller's column
//  3. fairness:    deterministic hash of id, mod FairnessBuckets
//  4. recency:     created_at DESC
//
// Returns the SQL text and its bind variables.
func rankingExpression(q models.CampaignQuery) (string, []any) {
	var vars []any

	sql := "COALESCE(promotion_level, 0) DESC, "

	if q.Sort.Field == models.SortDistance {
		sql += distanceSQL + " ASC NULLS LAST"
		vars = append(vars, *q.UserLat, *q.UserLat, *q.UserLng)
	} else {
		col, ok := sortColumns[q.Sort.Field]
		if !ok {
			col = sortColumns[models.SortCreatedAt]
		}
		sql += col
		if q.Sort.Descending {
			sql += " DESC"
		} else {
			sql += " ASC"
		}
		if nullableSortColumns[q.Sort.Field] {
			sql += " NULLS LAST"
		}
	}

	sql += ", " + fairnessSQL + ", created_at DESC"
	return sql, vars
}
