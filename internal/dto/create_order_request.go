package dto

type CreateOrderRequest struct {
	CustomerID       string               `json:"customerId"`
	ShippingAddress  ShippingAddressInput `json:"shippingAddress"`
	Items            []CreateOrderItem    `json:"items"`
	CreditCardNumber string               `json:"creditCardNumber"`
}

type ShippingAddressInput struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

type CreateOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
