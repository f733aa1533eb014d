package order

import (
	"database/sql"

	"go.uber.org/zap"

	"depot/internal/geo"
	"depot/internal/infrastructure/mysql"
	inventoryrepo "depot/internal/inventory/repository"
	"depot/internal/order/controller"
	orderrepo "depot/internal/order/repository"
	"depot/internal/order/usecase"
	"depot/internal/payment"
)

func NewModule(db *sql.DB, geocoder geo.Geocoder, charger payment.Charger, logger *zap.Logger) *controller.OrderController {
	inventoryRepo := inventoryrepo.NewMySQLInventoryRepository(db)
	addressRepo := orderrepo.NewMySQLAddressRepository(db)
	orderRepo := orderrepo.NewMySQLOrderRepository(db)

	createUseCase := usecase.NewCreateOrderUseCase(
		mysql.NewDB(db),
		inventoryRepo,
		addressRepo,
		orderRepo,
		geocoder,
		charger,
		logger,
	)
	listUseCase := usecase.NewListOrdersUseCase(orderRepo)

	return controller.NewOrderController(createUseCase, listUseCase, logger)
}
