package repository

import (
	"context"
	"database/sql"
	"fmt"

	"depot/internal/domain"
)

// InventoryRow joins a stock level with the product it refers to, shaped for
// the warehouse listing.
type InventoryRow struct {
	WarehouseID  string
	ProductID    string
	ProductName  string
	ProductPrice domain.Cents
	Quantity     int
}

type MySQLCatalogRepository struct {
	db *sql.DB
}

func NewMySQLCatalogRepository(db *sql.DB) *MySQLCatalogRepository {
	return &MySQLCatalogRepository{db: db}
}

func (r *MySQLCatalogRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT id, name, email, created_at
		FROM customers
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning customer row: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customer rows: %w", err)
	}

	return customers, nil
}

func (r *MySQLCatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, price
		FROM products
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (r *MySQLCatalogRepository) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	query := `
		SELECT id, name, latitude, longitude
		FROM warehouses
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying warehouses: %w", err)
	}
	defer rows.Close()

	var warehouses []domain.Warehouse
	for rows.Next() {
		var w domain.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Latitude, &w.Longitude); err != nil {
			return nil, fmt.Errorf("scanning warehouse row: %w", err)
		}
		warehouses = append(warehouses, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating warehouse rows: %w", err)
	}

	return warehouses, nil
}

// ListInventory returns every stock row joined with its product, ordered so
// rows for one warehouse are contiguous.
func (r *MySQLCatalogRepository) ListInventory(ctx context.Context) ([]InventoryRow, error) {
	query := `
		SELECT i.warehouse_id, i.product_id, p.name, p.price, i.quantity
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		ORDER BY i.warehouse_id, p.name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying inventory: %w", err)
	}
	defer rows.Close()

	var entries []InventoryRow
	for rows.Next() {
		var e InventoryRow
		if err := rows.Scan(&e.WarehouseID, &e.ProductID, &e.ProductName, &e.ProductPrice, &e.Quantity); err != nil {
			return nil, fmt.Errorf("scanning inventory row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating inventory rows: %w", err)
	}

	return entries, nil
}
