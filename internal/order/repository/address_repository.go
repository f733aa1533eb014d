package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"depot/internal/domain"
	"depot/internal/infrastructure/mysql"
)

type MySQLAddressRepository struct {
	db *sql.DB
}

func NewMySQLAddressRepository(db *sql.DB) *MySQLAddressRepository {
	return &MySQLAddressRepository{db: db}
}

// Create inserts the address inside the caller's transaction and returns the
// generated id.
func (r *MySQLAddressRepository) Create(ctx context.Context, tx mysql.Tx, address domain.Address) (string, error) {
	id := uuid.NewString()

	query := `
		INSERT INTO addresses (id, customer_id, street, city, state, country, postal_code, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := tx.ExecContext(ctx, query,
		id, address.CustomerID, address.Street, address.City, address.State,
		address.Country, address.PostalCode, address.Latitude, address.Longitude,
	)
	if err != nil {
		return "", fmt.Errorf("inserting address: %w", err)
	}

	return id, nil
}
