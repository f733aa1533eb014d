package mysql

// SchemaStatements holds the idempotent DDL for the demo schema. Shared by
// cmd/seed and the integration test helpers.
var SchemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id CHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		created_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6)
	)`,

	`CREATE TABLE IF NOT EXISTS products (
		id CHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		price INT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS warehouses (
		id CHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		latitude DOUBLE NOT NULL,
		longitude DOUBLE NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS inventory (
		warehouse_id CHAR(36) NOT NULL,
		product_id CHAR(36) NOT NULL,
		quantity INT NOT NULL,
		PRIMARY KEY (warehouse_id, product_id),
		FOREIGN KEY (warehouse_id) REFERENCES warehouses(id),
		FOREIGN KEY (product_id) REFERENCES products(id)
	)`,

	`CREATE TABLE IF NOT EXISTS addresses (
		id CHAR(36) NOT NULL PRIMARY KEY,
		customer_id CHAR(36) NOT NULL,
		street VARCHAR(255) NOT NULL,
		city VARCHAR(255) NOT NULL,
		state VARCHAR(255) NOT NULL,
		country VARCHAR(255) NOT NULL,
		postal_code VARCHAR(32) NOT NULL,
		latitude DOUBLE,
		longitude DOUBLE,
		FOREIGN KEY (customer_id) REFERENCES customers(id)
	)`,

	`CREATE TABLE IF NOT EXISTS orders (
		id CHAR(36) NOT NULL PRIMARY KEY,
		customer_id CHAR(36) NOT NULL,
		warehouse_id CHAR(36) NOT NULL,
		shipping_address_id CHAR(36) NOT NULL,
		total_amount INT NOT NULL,
		status ENUM('PENDING','PAID','FAILED') NOT NULL DEFAULT 'PENDING',
		created_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
		INDEX idx_created (created_at),
		FOREIGN KEY (customer_id) REFERENCES customers(id),
		FOREIGN KEY (warehouse_id) REFERENCES warehouses(id),
		FOREIGN KEY (shipping_address_id) REFERENCES addresses(id)
	)`,

	`CREATE TABLE IF NOT EXISTS order_items (
		id CHAR(36) NOT NULL PRIMARY KEY,
		order_id CHAR(36) NOT NULL,
		product_id CHAR(36) NOT NULL,
		quantity INT NOT NULL,
		unit_price INT NOT NULL,
		INDEX idx_order (order_id),
		FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
		FOREIGN KEY (product_id) REFERENCES products(id)
	)`,
}
