package domain

// Product is immutable reference data. Price is a snapshot source: order
// items copy it at creation time and never re-read it.
type Product struct {
	ID    string
	Name  string
	Price Cents
}
