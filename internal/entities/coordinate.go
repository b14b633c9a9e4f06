package entities

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate is a WGS84 point in decimal degrees. Construct via NewCoordinate
// so that latitude and longitude are always finite and in range.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

func NewCoordinate(latitude, longitude float64) (Coordinate, error) {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) ||
		math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return Coordinate{}, fmt.Errorf("%w: non-numeric value", ErrInvalidCoordinate)
	}
	if latitude < -90 || latitude > 90 {
		return Coordinate{}, fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidCoordinate, latitude)
	}
	if longitude < -180 || longitude > 180 {
		return Coordinate{}, fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidCoordinate, longitude)
	}

	return Coordinate{
		Latitude:  latitude,
		Longitude: longitude,
	}, nil
}
