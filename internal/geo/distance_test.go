package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePoint(t *testing.T) {
	p := Coordinates{Latitude: 40.7128, Longitude: -74.006}

	assert.Equal(t, 0.0, Distance(p, p))
}

func TestDistance_NewYorkToLosAngeles(t *testing.T) {
	nyc := Coordinates{Latitude: 40.7128, Longitude: -74.006}
	la := Coordinates{Latitude: 34.0522, Longitude: -118.2437}

	assert.InDelta(t, 3936, Distance(nyc, la), 15)
}

func TestDistance_Symmetric(t *testing.T) {
	a := Coordinates{Latitude: 40.7128, Longitude: -74.006}
	b := Coordinates{Latitude: 34.0522, Longitude: -118.2437}

	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestDistance_CloserPointIsSmaller(t *testing.T) {
	target := Coordinates{Latitude: 40, Longitude: -74}
	near := Coordinates{Latitude: 41, Longitude: -74}
	far := Coordinates{Latitude: 34, Longitude: -118}

	assert.Less(t, Distance(target, near), Distance(target, far))
}
