package domain

import "time"

type Order struct {
	ID                string
	CustomerID        string
	WarehouseID       string
	ShippingAddressID string
	TotalAmount       Cents
	Status            string
	CreatedAt         time.Time
	Items             []OrderItem
}

type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice Cents
}

const (
	OrderStatusPending = "PENDING"
	OrderStatusPaid    = "PAID"
	OrderStatusFailed  = "FAILED"
)

// OrderLine is a requested (product, quantity) pair before pricing.
type OrderLine struct {
	ProductID string
	Quantity  int
}

// ItemsTotal sums quantity x unit price over the order's items. Invariant:
// equals TotalAmount for every persisted order.
func (o Order) ItemsTotal() Cents {
	var total Cents
	for _, item := range o.Items {
		total += item.UnitPrice * Cents(item.Quantity)
	}
	return total
}
