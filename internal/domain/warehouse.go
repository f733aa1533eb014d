package domain

type Warehouse struct {
	ID        string
	Name      string
	Latitude  float64
	Longitude float64
}

// InventoryEntry tracks stock of one product at one warehouse. Quantity is
// only ever mutated by the order-creation decrement.
type InventoryEntry struct {
	WarehouseID string
	ProductID   string
	Quantity    int
}
