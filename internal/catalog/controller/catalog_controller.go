package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"depot/internal/dto"
)

type CatalogUseCase interface {
	ListCustomers(ctx context.Context) ([]dto.CustomerResponse, error)
	ListProducts(ctx context.Context) ([]dto.ProductResponse, error)
	ListWarehouses(ctx context.Context) ([]dto.WarehouseResponse, error)
}

type CatalogController struct {
	useCase CatalogUseCase
	logger  *zap.Logger
}

func NewCatalogController(useCase CatalogUseCase, logger *zap.Logger) *CatalogController {
	return &CatalogController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *CatalogController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.useCase.ListCustomers(r.Context())
	if err != nil {
		c.writeInternalError(w, "failed to list customers", err)
		return
	}
	c.writeJSON(w, http.StatusOK, customers)
}

func (c *CatalogController) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.useCase.ListProducts(r.Context())
	if err != nil {
		c.writeInternalError(w, "failed to list products", err)
		return
	}
	c.writeJSON(w, http.StatusOK, products)
}

func (c *CatalogController) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	warehouses, err := c.useCase.ListWarehouses(r.Context())
	if err != nil {
		c.writeInternalError(w, "failed to list warehouses", err)
		return
	}
	c.writeJSON(w, http.StatusOK, warehouses)
}

func (c *CatalogController) writeInternalError(w http.ResponseWriter, message string, err error) {
	traceID := uuid.New().String()
	c.logger.Error(message, zap.String("traceId", traceID), zap.Error(err))

	response := dto.ErrorResponse{
		TraceID:   traceID,
		Status:    http.StatusInternalServerError,
		Code:      "INTERNAL_ERROR",
		Message:   "an unexpected error occurred",
		Timestamp: time.Now().UTC(),
	}

	c.writeJSON(w, http.StatusInternalServerError, response)
}

func (c *CatalogController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
