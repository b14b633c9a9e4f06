package geo

import (
	"math"

	"fulfillment/internal/entities"
)

// EarthRadiusKm is Earth's mean radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two coordinates in
// kilometers, computed with the haversine formula and rounded to two decimal
// places. Identical coordinates yield exactly 0.
func DistanceKm(from, to entities.Coordinate) float64 {
	const degToRad = math.Pi / 180

	dLat := (to.Latitude - from.Latitude) * degToRad
	dLng := (to.Longitude - from.Longitude) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(from.Latitude*degToRad)*math.Cos(to.Latitude*degToRad)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return Round2(EarthRadiusKm * c)
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
