package repository

import (
	"math"

	"github.com/yunseo-dev/campatlas/models"
)

// EarthRadiusKm is the great-circle radius used by both the SQL
// distance expression and the Go-side projection. The two must agree
// to within floating-point tolerance.
const EarthRadiusKm = 6371.0

// WideViewportThresholdDeg2 is the viewport area above which the
// bounding-box clause switches from per-axis range predicates to a
// geometric point-in-box containment. Both strategies return identical
// row sets; only the expected index usage differs.
const WideViewportThresholdDeg2 = 0.01

// ViewportStrategy selects how the bounding-box clause is rendered.
type ViewportStrategy int

const (
	// ViewportNarrow uses independent BETWEEN predicates on lat and
	// lng, serviced by ordinary b-tree indexes. Preferred for dense
	// narrow scans (a zoomed-in map).
	ViewportNarrow ViewportStrategy = iota
	// ViewportWide uses point-in-rectangle containment, suited to a
	// sparse whole-country scan over a spatial index.
	ViewportWide
)

// boundingBox is a normalized viewport: latMin <= latMax and
// lngMin <= lngMax regardless of which corner the caller labelled
// south-west or north-east.
type boundingBox struct {
	latMin, latMax float64
	lngMin, lngMax float64
}

// boundingBoxFromFilter normalizes the four corner parameters. It
// returns false unless all four corners are present.
func boundingBoxFromFilter(f models.CampaignFilter) (boundingBox, bool) {
	if f.SwLat == nil || f.SwLng == nil || f.NeLat == nil || f.NeLng == nil {
		return boundingBox{}, false
	}
	return boundingBox{
		latMin: math.Min(*f.SwLat, *f.NeLat),
		latMax: math.Max(*f.SwLat, *f.NeLat),
		lngMin: math.Min(*f.SwLng, *f.NeLng),
		lngMax: math.Max(*f.SwLng, *f.NeLng),
	}, true
}

// area returns the viewport area in square degrees.
func (b boundingBox) area() float64 {
	return (b.latMax - b.latMin) * (b.lngMax - b.lngMin)
}

// strategy applies the area heuristic.
func (b boundingBox) strategy() ViewportStrategy {
	if b.area() > WideViewportThresholdDeg2 {
		return ViewportWide
	}
	return ViewportNarrow
}

// Haversine computes the great-circle distance in kilometers between
// two coordinates. Pure and row-local; used both for the projected
// distance field and to mirror the SQL ordering expression.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Pow(math.Sin(dLng/2), 2)
	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}

// distanceSQL is the Haversine formula as a Postgres expression over
// the row's lat/lng. Bind order: user lat, user lat, user lng. Rows
// without coordinates evaluate to NULL and are ordered NULLS LAST.
const distanceSQL = "(2 * 6371 * asin(sqrt(" +
	"power(sin(radians(lat - ?) / 2), 2) + " +
	"cos(radians(?)) * cos(radians(lat)) * power(sin(radians(lng - ?) / 2), 2))))"
