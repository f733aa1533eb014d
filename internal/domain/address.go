package domain

// Address is created once per order and never updated. Coordinates are
// derived from the postal code by the geocoder.
type Address struct {
	ID         string
	CustomerID string
	Street     string
	City       string
	State      string
	Country    string
	PostalCode string
	Latitude   *float64
	Longitude  *float64
}
