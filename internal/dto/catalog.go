package dto

type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProductResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type WarehouseResponse struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	Latitude  float64                  `json:"latitude"`
	Longitude float64                  `json:"longitude"`
	Inventory []WarehouseInventoryItem `json:"inventory"`
}

type WarehouseInventoryItem struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	ProductPrice string `json:"productPrice"`
	Quantity     int    `json:"quantity"`
}
