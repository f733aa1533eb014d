package usecase

import (
	"context"

	"depot/internal/catalog/repository"
	"depot/internal/domain"
	"depot/internal/dto"
)

type CatalogRepository interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListWarehouses(ctx context.Context) ([]domain.Warehouse, error)
	ListInventory(ctx context.Context) ([]repository.InventoryRow, error)
}

type CatalogUseCase struct {
	repo CatalogRepository
}

func NewCatalogUseCase(repo CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (uc *CatalogUseCase) ListCustomers(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := uc.repo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, dto.CustomerResponse{
			ID:    c.ID,
			Name:  c.Name,
			Email: c.Email,
		})
	}

	return responses, nil
}

func (uc *CatalogUseCase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, dto.ProductResponse{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price.Decimal(),
		})
	}

	return responses, nil
}

// ListWarehouses returns every warehouse with its current stock attached. A
// warehouse with no stock rows still appears, with an empty inventory list.
func (uc *CatalogUseCase) ListWarehouses(ctx context.Context) ([]dto.WarehouseResponse, error) {
	warehouses, err := uc.repo.ListWarehouses(ctx)
	if err != nil {
		return nil, err
	}

	inventory, err := uc.repo.ListInventory(ctx)
	if err != nil {
		return nil, err
	}

	byWarehouse := make(map[string][]dto.WarehouseInventoryItem, len(warehouses))
	for _, row := range inventory {
		byWarehouse[row.WarehouseID] = append(byWarehouse[row.WarehouseID], dto.WarehouseInventoryItem{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			ProductPrice: row.ProductPrice.Decimal(),
			Quantity:     row.Quantity,
		})
	}

	responses := make([]dto.WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		items := byWarehouse[w.ID]
		if items == nil {
			items = []dto.WarehouseInventoryItem{}
		}
		responses = append(responses, dto.WarehouseResponse{
			ID:        w.ID,
			Name:      w.Name,
			Latitude:  w.Latitude,
			Longitude: w.Longitude,
			Inventory: items,
		})
	}

	return responses, nil
}
