// Package geo computes great-circle distances between geographic
// coordinates on a spherical-Earth approximation.
package geo

import (
	"fmt"
	"math"

	"eventrix/internal/models"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the haversine distance between a and b in
// kilometers. It is symmetric, returns 0 for equal points, and is
// numerically stable at the poles and for antipodal points.
func DistanceKm(a, b models.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180.0
	lon1 := a.Lng * math.Pi / 180.0
	lat2 := b.Lat * math.Pi / 180.0
	lon2 := b.Lng * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// RoundKm rounds a distance to 2 decimal places.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

// Label formats a distance for display, e.g. "0.2 km".
func Label(km float64) string {
	return fmt.Sprintf("%g km", RoundKm(km))
}
