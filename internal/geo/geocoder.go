package geo

import (
	"strings"
	"unicode"
)

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Geocoder resolves a postal code to coordinates.
type Geocoder interface {
	Geocode(postalCode string) Coordinates
}

// StubGeocoder derives deterministic synthetic coordinates from a postal
// code: two multiplicative hashes over the normalized code, mapped into
// latitude [30, 45) and longitude [-120, -70). Same input always yields the
// same output. Stands in for a real geocoding provider.
type StubGeocoder struct{}

func NewStubGeocoder() *StubGeocoder {
	return &StubGeocoder{}
}

const seedModulus = 10_000_000

func (StubGeocoder) Geocode(postalCode string) Coordinates {
	normalized := normalize(postalCode)

	latSeed := 0
	lngSeed := 1
	for _, r := range normalized {
		latSeed = (latSeed*31 + int(r)) % seedModulus
		lngSeed = (lngSeed*37 + int(r)) % seedModulus
	}

	return Coordinates{
		Latitude:  30 + float64(latSeed%1500)/100,
		Longitude: -120 + float64(lngSeed%5000)/100,
	}
}

func normalize(postalCode string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(postalCode) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
