package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"depot/internal/domain"
	"depot/internal/errors"
	"depot/internal/infrastructure/mysql"
)

type MySQLInventoryRepository struct {
	db *sql.DB
}

func NewMySQLInventoryRepository(db *sql.DB) *MySQLInventoryRepository {
	return &MySQLInventoryRepository{db: db}
}

// FindProductsByIDs fetches products for the given ids inside the caller's
// transaction. An empty id list yields an empty result, not an error.
func (r *MySQLInventoryRepository) FindProductsByIDs(ctx context.Context, tx mysql.Tx, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(
		`SELECT id, name, price FROM products WHERE id IN (%s)`,
		strings.Join(placeholders, ", "),
	)

	rows, err := tx.QueryContext(ctx, query, args...)
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

// FindWarehousesWithSufficientStock returns every warehouse holding at least
// the requested quantity of every line. The sufficiency check is pushed into
// SQL: a warehouse qualifies when it matches one per-line predicate per
// distinct product. Lines must not repeat a product. An empty line list
// yields an empty result by policy, not all warehouses.
func (r *MySQLInventoryRepository) FindWarehousesWithSufficientStock(ctx context.Context, tx mysql.Tx, lines []domain.OrderLine) ([]domain.Warehouse, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	conditions := make([]string, len(lines))
	args := make([]interface{}, 0, len(lines)*2+1)
	for i, line := range lines {
		conditions[i] = "(i.product_id = ? AND i.quantity >= ?)"
		args = append(args, line.ProductID, line.Quantity)
	}
	args = append(args, len(lines))

	query := fmt.Sprintf(`
		SELECT w.id, w.name, w.latitude, w.longitude
		FROM warehouses w
		JOIN inventory i ON i.warehouse_id = w.id
		WHERE %s
		GROUP BY w.id, w.name, w.latitude, w.longitude
		HAVING COUNT(DISTINCT i.product_id) = ?
		ORDER BY w.id`,
		strings.Join(conditions, " OR "),
	)

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying warehouses with sufficient stock: %w", err)
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

// DecrementStock subtracts each line's quantity from the warehouse's
// inventory rows. The quantity >= guard means a concurrent order that
// drained the row since selection produces zero affected rows, which
// surfaces as an error so the whole transaction rolls back instead of
// overselling.
func (r *MySQLInventoryRepository) DecrementStock(ctx context.Context, tx mysql.Tx, warehouseID string, lines []domain.OrderLine) error {
	query := `
		UPDATE inventory
		SET quantity = quantity - ?
		WHERE warehouse_id = ? AND product_id = ? AND quantity >= ?
	`

	for _, line := range lines {
		result, err := tx.ExecContext(ctx, query, line.Quantity, warehouseID, line.ProductID, line.Quantity)
		if err != nil {
			return fmt.Errorf("decrementing stock: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("getting rows affected: %w", err)
		}

		if affected == 0 {
			return errors.NewBadRequestError(
				fmt.Sprintf("insufficient stock for product %s at warehouse %s", line.ProductID, warehouseID),
			)
		}
	}

	return nil
}
