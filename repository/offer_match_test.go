package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferTermVariants(t *testing.T) {
	t.Run("MoneyManForm", func(t *testing.T) {
		variants := offerTermVariants("4만")

		assert.Contains(t, variants, "40000")
		assert.Contains(t, variants, "40,000")
		assert.Contains(t, variants, "4만")
		assert.Contains(t, variants, "4만원")
	})

	t.Run("MoneyDigitForm", func(t *testing.T) {
		variants := offerTermVariants("40,000원")

		assert.Contains(t, variants, "40000")
		assert.Contains(t, variants, "40,000")
		assert.Contains(t, variants, "4만")
		assert.Contains(t, variants, "4만원")
	})

	t.Run("MoneyNotDivisibleByMan", func(t *testing.T) {
		variants := offerTermVariants("4500원")

		assert.Contains(t, variants, "4500")
		assert.NotContains(t, variants, "0만")
		for _, v := range variants {
			assert.NotContains(t, v, "만원")
		}
	})

	t.Run("QuantityMonthSynonyms", func(t *testing.T) {
		variants := offerTermVariants("2개월")

		assert.Contains(t, variants, "2개월")
		assert.Contains(t, variants, "2달")
		assert.Contains(t, variants, "2월")
		assert.Contains(t, variants, "2 달")
	})

	t.Run("QuantityWeekSynonyms", func(t *testing.T) {
		variants := offerTermVariants("1주")

		assert.Contains(t, variants, "1주")
		assert.Contains(t, variants, "1주일")
	})

	t.Run("KeywordSynonyms", func(t *testing.T) {
		variants := offerTermVariants("헬스장")

		assert.Contains(t, variants, "헬스장")
		assert.Contains(t, variants, "피트니스")
		assert.Contains(t, variants, "GYM")
	})

	t.Run("KeywordSynonymsCaseInsensitive", func(t *testing.T) {
		variants := offerTermVariants("GYM")

		assert.Contains(t, variants, "GYM")
		assert.Contains(t, variants, "헬스장")
		assert.Contains(t, variants, "피트니스")
	})

	t.Run("UnknownKeywordFallsBackToItself", func(t *testing.T) {
		variants := offerTermVariants("무료체험")

		require.Len(t, variants, 1)
		assert.Equal(t, "무료체험", variants[0])
	})

	t.Run("NoDuplicates", func(t *testing.T) {
		variants := offerTermVariants("40000")

		seen := make(map[string]bool)
		for _, v := range variants {
			assert.False(t, seen[v], "duplicate variant %q", v)
			seen[v] = true
		}
	})
}

func TestMoneyVariants(t *testing.T) {
	t.Run("RejectsNonMoney", func(t *testing.T) {
		_, ok := moneyVariants("헬스장")
		assert.False(t, ok)
	})

	t.Run("RejectsZero", func(t *testing.T) {
		_, ok := moneyVariants("0원")
		assert.False(t, ok)
	})

	t.Run("LargeAmount", func(t *testing.T) {
		variants, ok := moneyVariants("100만")
		require.True(t, ok)

		assert.Contains(t, variants, "1000000")
		assert.Contains(t, variants, "1,000,000")
		assert.Contains(t, variants, "100만원")
	})
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "500", groupThousands("500"))
	assert.Equal(t, "1,000", groupThousands("1000"))
	assert.Equal(t, "40,000", groupThousands("40000"))
	assert.Equal(t, "1,234,567", groupThousands("1234567"))
}
