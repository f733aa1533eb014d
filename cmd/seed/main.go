package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"depot/internal/config"
	"depot/internal/infrastructure/logger"
	"depot/internal/infrastructure/mysql"
)

type seedStatement struct {
	query string
	args  []interface{}
}

// Demo dataset with fixed ids so manual requests are reproducible across
// reseeds.
var seedStatements = []seedStatement{
	{
		`INSERT INTO customers (id, name, email) VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE name = VALUES(name), email = VALUES(email)`,
		[]interface{}{"11111111-1111-1111-1111-111111111111", "Alice Johnson", "alice@example.com"},
	},
	{
		`INSERT INTO customers (id, name, email) VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE name = VALUES(name), email = VALUES(email)`,
		[]interface{}{"22222222-2222-2222-2222-222222222222", "Bob Smith", "bob@example.com"},
	},
	{
		`INSERT INTO products (id, name, price) VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE name = VALUES(name), price = VALUES(price)`,
		[]interface{}{"aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", "Widget A", 1999},
	},
	{
		`INSERT INTO products (id, name, price) VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE name = VALUES(name), price = VALUES(price)`,
		[]interface{}{"bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb", "Widget B", 2950},
	},
	{
		`INSERT INTO warehouses (id, name, latitude, longitude) VALUES (?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE name = VALUES(name), latitude = VALUES(latitude), longitude = VALUES(longitude)`,
		[]interface{}{"cccccccc-cccc-cccc-cccc-cccccccccccc", "Warehouse North", 40.7128, -74.006},
	},
	{
		`INSERT INTO warehouses (id, name, latitude, longitude) VALUES (?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE name = VALUES(name), latitude = VALUES(latitude), longitude = VALUES(longitude)`,
		[]interface{}{"dddddddd-dddd-dddd-dddd-dddddddddddd", "Warehouse South", 34.0522, -118.2437},
	},
	{
		`INSERT INTO inventory (warehouse_id, product_id, quantity) VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE quantity = VALUES(quantity)`,
		[]interface{}{"cccccccc-cccc-cccc-cccc-cccccccccccc", "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", 100},
	},
	{
		`INSERT INTO inventory (warehouse_id, product_id, quantity) VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE quantity = VALUES(quantity)`,
		[]interface{}{"cccccccc-cccc-cccc-cccc-cccccccccccc", "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb", 50},
	},
	{
		`INSERT INTO inventory (warehouse_id, product_id, quantity) VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE quantity = VALUES(quantity)`,
		[]interface{}{"dddddddd-dddd-dddd-dddd-dddddddddddd", "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", 80},
	},
	{
		`INSERT INTO inventory (warehouse_id, product_id, quantity) VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE quantity = VALUES(quantity)`,
		[]interface{}{"dddddddd-dddd-dddd-dddd-dddddddddddd", "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb", 60},
	},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()

	for _, stmt := range mysql.SchemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			zapLogger.Fatal("creating schema", zap.Error(err))
		}
	}
	zapLogger.Info("schema ready")

	for _, s := range seedStatements {
		if _, err := db.Exec(s.query, s.args...); err != nil {
			zapLogger.Fatal("seeding data", zap.Error(err))
		}
	}
	zapLogger.Info("seed data loaded",
		zap.Int("statements", len(seedStatements)))
}
