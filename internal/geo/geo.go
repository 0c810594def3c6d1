// Package geo provides the coordinate math used by the safety analysis:
// great-circle distance, bearings, point-in-polygon tests, and
// nearest-location search over reference data.
package geo

import (
	"math"

	"github.com/haeyanglab/searep/internal/marine"
)

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000

// Distance returns the great-circle distance between a and b in meters,
// computed with the haversine formula.
func Distance(a, b marine.Coordinates) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Bearing returns the initial compass bearing from one point to another,
// in degrees clockwise from north, normalized to [0,360).
func Bearing(from, to marine.Coordinates) float64 {
	dLng := (to.Lng - from.Lng) * math.Pi / 180
	lat1 := from.Lat * math.Pi / 180
	lat2 := to.Lat * math.Pi / 180

	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)

	deg := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// PointInPolygon reports whether point lies inside the simple polygon using
// the ray-casting algorithm. Polygons with fewer than three vertices never
// contain anything.
func PointInPolygon(point marine.Coordinates, polygon []marine.Coordinates) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	for i, j := 0, len(polygon)-1; i < len(polygon); j, i = i, i+1 {
		pi, pj := polygon[i], polygon[j]
		if (pi.Lat > point.Lat) != (pj.Lat > point.Lat) &&
			point.Lng < (pj.Lng-pi.Lng)*(point.Lat-pi.Lat)/(pj.Lat-pi.Lat)+pi.Lng {
			inside = !inside
		}
	}
	return inside
}

// ValidCoordinates reports whether c holds finite values within the valid
// latitude and longitude ranges.
func ValidCoordinates(c marine.Coordinates) bool {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || math.IsNaN(c.Lng) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// NearestLocation returns the location closest to point, or nil when the
// list is empty, point is invalid, or the minimum distance exceeds
// maxDistanceMeters. Ties keep the earliest candidate in iteration order.
func NearestLocation(point marine.Coordinates, locations []marine.Location, maxDistanceMeters float64) *marine.Location {
	if len(locations) == 0 || !ValidCoordinates(point) {
		return nil
	}

	nearest := &locations[0]
	minDist := Distance(point, nearest.Coordinates)
	for i := 1; i < len(locations); i++ {
		if d := Distance(point, locations[i].Coordinates); d < minDist {
			minDist = d
			nearest = &locations[i]
		}
	}

	if minDist > maxDistanceMeters {
		return nil
	}
	return nearest
}
