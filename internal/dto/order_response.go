package dto

// OrderResponse is the wire form of an order. Money fields are fixed-point
// decimal strings (minor units / 100, two decimals); createdAt is RFC3339.
type OrderResponse struct {
	ID                string              `json:"id"`
	CustomerID        string              `json:"customerId"`
	WarehouseID       string              `json:"warehouseId"`
	ShippingAddressID string              `json:"shippingAddressId"`
	TotalAmount       string              `json:"totalAmount"`
	Status            string              `json:"status"`
	CreatedAt         string              `json:"createdAt"`
	Items             []OrderItemResponse `json:"items"`
}

type OrderItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}
