package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eventrix/internal/models"
)

func TestDistanceZeroIdentity(t *testing.T) {
	points := []models.Coordinates{
		{Lat: 0, Lng: 0},
		{Lat: 12.9915, Lng: 80.2336},
		{Lat: 90, Lng: 0},
		{Lat: -90, Lng: 180},
	}
	for _, p := range points {
		assert.Equal(t, 0.0, DistanceKm(p, p))
	}
}

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][2]models.Coordinates{
		{{Lat: 13.0827, Lng: 80.2707}, {Lat: 12.9916, Lng: 80.2336}},
		{{Lat: 90, Lng: 0}, {Lat: -90, Lng: 0}},
		{{Lat: 51.5, Lng: -0.12}, {Lat: 40.71, Lng: -74.0}},
	}
	for _, pair := range pairs {
		assert.InDelta(t, DistanceKm(pair[0], pair[1]), DistanceKm(pair[1], pair[0]), 1e-9)
	}
}

func TestDistanceChennaiToIITMadras(t *testing.T) {
	chennai := models.Coordinates{Lat: 13.0827, Lng: 80.2707}
	iitm := models.Coordinates{Lat: 12.9916, Lng: 80.2336}

	d := DistanceKm(chennai, iitm)
	assert.InDelta(t, 11.3, d, 2.0)
}

func TestDistanceAntipodal(t *testing.T) {
	a := models.Coordinates{Lat: 0, Lng: 0}
	b := models.Coordinates{Lat: 0, Lng: 180}

	d := DistanceKm(a, b)
	// Half the Earth's circumference on the 6371 km sphere.
	assert.InDelta(t, 20015.1, d, 1.0)
	assert.False(t, d != d, "distance must not be NaN")
}

func TestDistancePoles(t *testing.T) {
	north := models.Coordinates{Lat: 90, Lng: 0}
	south := models.Coordinates{Lat: -90, Lng: 45}

	d := DistanceKm(north, south)
	assert.InDelta(t, 20015.1, d, 1.0)
}

func TestRoundKm(t *testing.T) {
	assert.Equal(t, 11.33, RoundKm(11.3349))
	assert.Equal(t, 0.2, RoundKm(0.2004))
	assert.Equal(t, "0.2 km", Label(0.2004))
}
