package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"depot/internal/domain"
	"depot/internal/dto"
	apperrors "depot/internal/errors"
	"depot/internal/geo"
	"depot/internal/infrastructure/mysql"
	"depot/internal/order/repository"
)

type InventoryRepository interface {
	FindProductsByIDs(ctx context.Context, tx mysql.Tx, ids []string) ([]domain.Product, error)
	FindWarehousesWithSufficientStock(ctx context.Context, tx mysql.Tx, lines []domain.OrderLine) ([]domain.Warehouse, error)
	DecrementStock(ctx context.Context, tx mysql.Tx, warehouseID string, lines []domain.OrderLine) error
}

type AddressRepository interface {
	Create(ctx context.Context, tx mysql.Tx, address domain.Address) (string, error)
}

type OrderRepository interface {
	CreateWithItems(ctx context.Context, tx mysql.Tx, input repository.CreateOrderInput) (*domain.Order, error)
}

// CreateOrderUseCase runs the order-creation pipeline: validate, resolve
// products, geocode, select the nearest warehouse with sufficient stock,
// charge, persist address + order + items, decrement inventory. Everything
// after validation happens inside one transaction; any failure before
// commit leaves no visible side effects.
type CreateOrderUseCase struct {
	db            mysql.TxBeginner
	inventoryRepo InventoryRepository
	addressRepo   AddressRepository
	orderRepo     OrderRepository
	geocoder      geo.Geocoder
	charger       Charger
	logger        *zap.Logger
}

// Charger mirrors payment.Charger; declared here so the use case depends on
// behavior, not the stub package.
type Charger interface {
	Charge(cardNumber string, amount domain.Cents) error
}

func NewCreateOrderUseCase(
	db mysql.TxBeginner,
	inventoryRepo InventoryRepository,
	addressRepo AddressRepository,
	orderRepo OrderRepository,
	geocoder geo.Geocoder,
	charger Charger,
	logger *zap.Logger,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		db:            db,
		inventoryRepo: inventoryRepo,
		addressRepo:   addressRepo,
		orderRepo:     orderRepo,
		geocoder:      geocoder,
		charger:       charger,
		logger:        logger,
	}
}

func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := validateCreateOrder(req); err != nil {
		return nil, err
	}

	// Repeated productIds are valid; merge them so the sufficiency query and
	// the decrement see one line per distinct product.
	lines := mergeLines(req.Items)
	productIDs := make([]string, len(lines))
	for i, line := range lines {
		productIDs[i] = line.ProductID
	}

	tx, err := uc.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		uc.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	// Rollback is a no-op after a successful commit.
	defer tx.Rollback()

	products, err := uc.inventoryRepo.FindProductsByIDs(ctx, tx, productIDs)
	if err != nil {
		return nil, err
	}

	priceByID := make(map[string]domain.Cents, len(products))
	for _, p := range products {
		priceByID[p.ID] = p.Price
	}

	if len(products) != len(productIDs) {
		var missing []string
		for _, id := range productIDs {
			if _, ok := priceByID[id]; !ok {
				missing = append(missing, id)
			}
		}
		return nil, apperrors.NewNotFoundError(
			fmt.Sprintf("products not found: %s", strings.Join(missing, ", ")),
		)
	}

	coords := uc.geocoder.Geocode(req.ShippingAddress.PostalCode)

	candidates, err := uc.inventoryRepo.FindWarehousesWithSufficientStock(ctx, tx, lines)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, apperrors.NewBadRequestError("no warehouse has sufficient inventory for all items")
	}

	warehouse := nearestWarehouse(candidates, coords)

	items := make([]domain.OrderItem, len(req.Items))
	var total domain.Cents
	for i, item := range req.Items {
		unitPrice := priceByID[item.ProductID]
		items[i] = domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
		}
		total += unitPrice * domain.Cents(item.Quantity)
	}

	if err := uc.charger.Charge(req.CreditCardNumber, total); err != nil {
		uc.logger.Warn("payment declined",
			zap.String("customerId", req.CustomerID),
			zap.Int64("amountCents", int64(total)))
		return nil, err
	}

	addressID, err := uc.addressRepo.Create(ctx, tx, domain.Address{
		CustomerID: req.CustomerID,
		Street:     req.ShippingAddress.Street,
		City:       req.ShippingAddress.City,
		State:      req.ShippingAddress.State,
		Country:    req.ShippingAddress.Country,
		PostalCode: req.ShippingAddress.PostalCode,
		Latitude:   &coords.Latitude,
		Longitude:  &coords.Longitude,
	})
	if err != nil {
		return nil, err
	}

	order, err := uc.orderRepo.CreateWithItems(ctx, tx, repository.CreateOrderInput{
		CustomerID:        req.CustomerID,
		WarehouseID:       warehouse.ID,
		ShippingAddressID: addressID,
		TotalAmount:       total,
		Status:            domain.OrderStatusPaid,
		Items:             items,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.inventoryRepo.DecrementStock(ctx, tx, warehouse.ID, lines); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		uc.logger.Error("failed to commit transaction", zap.String("orderId", order.ID), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("order created",
		zap.String("orderId", order.ID),
		zap.String("warehouseId", warehouse.ID),
		zap.Int64("totalCents", int64(total)),
		zap.Int("itemCount", len(items)))

	resp := toOrderResponse(*order)
	return &resp, nil
}

func validateCreateOrder(req dto.CreateOrderRequest) error {
	if _, err := uuid.Parse(req.CustomerID); err != nil {
		return apperrors.NewValidationError("customerId must be a UUID")
	}

	if len(req.Items) == 0 {
		return apperrors.NewValidationError("items must not be empty")
	}

	for _, item := range req.Items {
		if _, err := uuid.Parse(item.ProductID); err != nil {
			return apperrors.NewValidationError("each productId must be a UUID")
		}
		if item.Quantity <= 0 {
			return apperrors.NewValidationError("each quantity must be positive")
		}
	}

	return nil
}

// mergeLines collapses repeated productIds into one line each, summing
// quantities and keeping first-seen order.
func mergeLines(items []dto.CreateOrderItem) []domain.OrderLine {
	lines := make([]domain.OrderLine, 0, len(items))
	index := make(map[string]int, len(items))
	for _, item := range items {
		if i, ok := index[item.ProductID]; ok {
			lines[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(lines)
		lines = append(lines, domain.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return lines
}

// nearestWarehouse picks the candidate minimizing great-circle distance to
// the target. Ties go to the first minimal candidate in slice order, which
// is deterministic because candidates arrive ordered by id.
func nearestWarehouse(candidates []domain.Warehouse, target geo.Coordinates) domain.Warehouse {
	best := candidates[0]
	bestDistance := geo.Distance(geo.Coordinates{Latitude: best.Latitude, Longitude: best.Longitude}, target)

	for _, w := range candidates[1:] {
		d := geo.Distance(geo.Coordinates{Latitude: w.Latitude, Longitude: w.Longitude}, target)
		if d < bestDistance {
			best = w
			bestDistance = d
		}
	}

	return best
}

func toOrderResponse(order domain.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = dto.OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.Decimal(),
		}
	}

	return dto.OrderResponse{
		ID:                order.ID,
		CustomerID:        order.CustomerID,
		WarehouseID:       order.WarehouseID,
		ShippingAddressID: order.ShippingAddressID,
		TotalAmount:       order.TotalAmount.Decimal(),
		Status:            order.Status,
		CreatedAt:         order.CreatedAt.UTC().Format(time.RFC3339),
		Items:             items,
	}
}
