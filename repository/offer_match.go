package repository

import (
	"regexp"
	"strconv"
	"strings"
)

// Semantic matching for the free-text offer filter. The query string
// is split on whitespace into terms; every term must match (AND), but
// each term expands into an OR-group of surface-form variants so that
// "4만" finds offers stored as "40,000원" and "2개월" finds "2달".
// Classification order: money amount, then quantity+unit, then plain
// keyword with synonyms. This is a heuristic classifier; false
// negatives on unlisted surface forms are accepted.

var (
	moneyTermRe    = regexp.MustCompile(`^([0-9][0-9,]*)(만)?(원)?$`)
	quantityTermRe = regexp.MustCompile(`^([0-9]+) ?(개월|주일|시간|달|월|주|박|회|명|인|개)$`)
)

// unitSynonyms maps each quantity unit onto its interchangeable
// surface forms ("2개월" ≈ "2달" ≈ "2월").
var unitSynonyms = map[string][]string{
	"개월": {"개월", "달", "월"},
	"달":  {"개월", "달", "월"},
	"월":  {"개월", "달", "월"},
	"주":  {"주", "주일"},
	"주일": {"주", "주일"},
	"명":  {"명", "인"},
	"인":  {"명", "인"},
	"박":  {"박"},
	"회":  {"회"},
	"시간": {"시간"},
	"개":  {"개"},
}

// keywordSynonyms is a small fixed table of domain synonyms for bare
// keyword terms. Keys are lowercased.
var keywordSynonyms = map[string][]string{
	"헬스장":  {"피트니스", "GYM", "짐"},
	"피트니스": {"헬스장", "GYM"},
	"gym":  {"헬스장", "피트니스"},
	"맛집":   {"레스토랑", "식당"},
	"식당":   {"맛집", "레스토랑"},
	"레스토랑": {"맛집", "식당"},
	"카페":   {"커피", "디저트"},
	"커피":   {"카페"},
	"네일":   {"네일아트", "젤네일"},
	"피부":   {"에스테틱", "피부관리"},
	"숙박":   {"호텔", "펜션"},
	"호텔":   {"숙박", "펜션"},
	"펜션":   {"숙박", "호텔"},
	"필라테스": {"pilates"},
	"요가":   {"yoga"},
}

// offerTermVariants expands one search term into the set of surface
// forms it should match. The term itself is always included.
func offerTermVariants(term string) []string {
	if vs, ok := moneyVariants(term); ok {
		return dedupe(append(vs, term))
	}
	if vs, ok := quantityVariants(term); ok {
		return dedupe(append(vs, term))
	}
	return dedupe(keywordVariants(term))
}

// moneyVariants recognizes a monetary amount ("40000", "40,000",
// "4만", "4만원") and returns every equivalent spelling.
func moneyVariants(term string) ([]string, bool) {
	m := moneyTermRe.FindStringSubmatch(term)
	if m == nil {
		return nil, false
	}
	digits := strings.ReplaceAll(m[1], ",", "")
	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || amount <= 0 {
		return nil, false
	}
	if m[2] == "만" {
		amount *= 10000
	}

	plain := strconv.FormatInt(amount, 10)
	variants := []string{plain, groupThousands(plain)}
	if amount%10000 == 0 {
		man := strconv.FormatInt(amount/10000, 10)
		variants = append(variants, man+"만", man+"만원")
	}
	return variants, true
}

// quantityVariants recognizes digits followed by a known unit token
// and substitutes unit synonyms, with and without a separating space.
func quantityVariants(term string) ([]string, bool) {
	m := quantityTermRe.FindStringSubmatch(term)
	if m == nil {
		return nil, false
	}
	count, unit := m[1], m[2]
	units, ok := unitSynonyms[unit]
	if !ok {
		return nil, false
	}

	var variants []string
	for _, u := range units {
		variants = append(variants, count+u, count+" "+u)
	}
	return variants, true
}

// keywordVariants returns the term plus its fixed synonyms.
func keywordVariants(term string) []string {
	variants := []string{term}
	variants = append(variants, keywordSynonyms[strings.ToLower(term)]...)
	return variants
}

// groupThousands inserts comma separators into a digit string.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
