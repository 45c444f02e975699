package kakao

import (
	"math"
	"strings"

	"github.com/sangkwonlab/sangkwon-cli/internal/model"
)

const earthRadiusMeters = 6371000

// Haversine returns the great-circle distance between two points in meters.
func Haversine(a, b model.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// canonicalSpace trims and collapses internal whitespace runs to a single
// space.
func canonicalSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
