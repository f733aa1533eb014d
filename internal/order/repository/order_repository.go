package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"depot/internal/domain"
	"depot/internal/infrastructure/mysql"
)

type CreateOrderInput struct {
	CustomerID        string
	WarehouseID       string
	ShippingAddressID string
	TotalAmount       domain.Cents
	Status            string
	Items             []domain.OrderItem
}

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// CreateWithItems inserts the order row and its item rows, then re-reads
// both inside the transaction so the caller gets the server-generated
// creation timestamp.
func (r *MySQLOrderRepository) CreateWithItems(ctx context.Context, tx mysql.Tx, input CreateOrderInput) (*domain.Order, error) {
	orderID := uuid.NewString()

	insertOrder := `
		INSERT INTO orders (id, customer_id, warehouse_id, shipping_address_id, total_amount, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := tx.ExecContext(ctx, insertOrder,
		orderID, input.CustomerID, input.WarehouseID, input.ShippingAddressID,
		input.TotalAmount, input.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting order: %w", err)
	}

	insertItem := `
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price)
		VALUES (?, ?, ?, ?, ?)
	`
	for _, item := range input.Items {
		_, err := tx.ExecContext(ctx, insertItem,
			uuid.NewString(), orderID, item.ProductID, item.Quantity, item.UnitPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("inserting order item: %w", err)
		}
	}

	order, err := r.readOrder(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	items, err := r.readItems(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (r *MySQLOrderRepository) readOrder(ctx context.Context, tx mysql.Tx, orderID string) (*domain.Order, error) {
	query := `
		SELECT id, customer_id, warehouse_id, shipping_address_id, total_amount, status, created_at
		FROM orders
		WHERE id = ?
	`

	var order domain.Order
	err := tx.QueryRowContext(ctx, query, orderID).Scan(
		&order.ID, &order.CustomerID, &order.WarehouseID, &order.ShippingAddressID,
		&order.TotalAmount, &order.Status, &order.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("re-reading order: %w", err)
	}

	return &order, nil
}

func (r *MySQLOrderRepository) readItems(ctx context.Context, tx mysql.Tx, orderID string) ([]domain.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`

	rows, err := tx.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// ListWithItems returns all orders newest first, with items attached via a
// single batched query rather than one query per order.
func (r *MySQLOrderRepository) ListWithItems(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT id, customer_id, warehouse_id, shipping_address_id, total_amount, status, created_at
		FROM orders
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	var orderIDs []string
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID, &order.CustomerID, &order.WarehouseID, &order.ShippingAddressID,
			&order.TotalAmount, &order.Status, &order.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, order)
		orderIDs = append(orderIDs, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	if len(orders) == 0 {
		return nil, nil
	}

	itemsByOrder, err := r.findItemsByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID]
	}

	return orders, nil
}

func (r *MySQLOrderRepository) findItemsByOrderIDs(ctx context.Context, orderIDs []string) (map[string][]domain.OrderItem, error) {
	placeholders := make([]string, len(orderIDs))
	args := make([]interface{}, len(orderIDs))
	for i, id := range orderIDs {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT id, order_id, product_id, quantity, unit_price
		FROM order_items
		WHERE order_id IN (%s)
		ORDER BY id`,
		strings.Join(placeholders, ", "),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, err
	}

	itemsByOrder := make(map[string][]domain.OrderItem, len(orderIDs))
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	return itemsByOrder, nil
}

func scanItems(rows *sql.Rows) ([]domain.OrderItem, error) {
	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}
	return items, nil
}
