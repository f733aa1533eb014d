package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"depot/internal/dto"
	apperrors "depot/internal/errors"
)

type CreateOrderUseCase interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
}

type ListOrdersUseCase interface {
	ListOrders(ctx context.Context) ([]dto.OrderResponse, error)
}

type OrderController struct {
	createUseCase CreateOrderUseCase
	listUseCase   ListOrdersUseCase
	logger        *zap.Logger
}

func NewOrderController(createUseCase CreateOrderUseCase, listUseCase ListOrdersUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		logger:        logger,
	}
}

func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if validationErr := c.validateCreateOrderRequest(req); validationErr != nil {
		ve, _ := apperrors.IsValidationError(validationErr)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	order, err := c.createUseCase.CreateOrder(r.Context(), req)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, order)
}

func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orders, err := c.listUseCase.ListOrders(r.Context())
	if err != nil {
		logger.Error("failed to list orders", zap.Error(err))
		c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
		return
	}

	c.writeJSON(w, http.StatusOK, orders)
}

func (c *OrderController) validateCreateOrderRequest(req dto.CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	if req.CustomerID == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerId",
			Message: "customerId is required",
		})
	} else if _, err := uuid.Parse(req.CustomerID); err != nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerId",
			Message: "customerId must be a UUID",
		})
	}

	addressFields := []struct {
		field string
		value string
	}{
		{"shippingAddress.street", req.ShippingAddress.Street},
		{"shippingAddress.city", req.ShippingAddress.City},
		{"shippingAddress.state", req.ShippingAddress.State},
		{"shippingAddress.country", req.ShippingAddress.Country},
		{"shippingAddress.postalCode", req.ShippingAddress.PostalCode},
	}
	for _, af := range addressFields {
		if af.value == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   af.field,
				Message: af.field + " is required",
			})
		}
	}

	if len(req.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	// Repeated productIds are allowed; the workflow merges them.
	for idx, item := range req.Items {
		if _, err := uuid.Parse(item.ProductID); err != nil {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].productId",
				Message: "each productId must be a UUID",
			})
		}

		if item.Quantity < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].quantity",
				Message: "quantity must be a positive integer",
			})
		}
	}

	if req.CreditCardNumber == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "creditCardNumber",
			Message: "creditCardNumber is required",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func (c *OrderController) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsBadRequestError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	if _, ok := apperrors.IsPaymentDeclinedError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusPaymentRequired, "PAYMENT_DECLINED", err.Error())
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func (c *OrderController) writeErrorResponse(w http.ResponseWriter, traceID string, statusCode int, code string, message string) {
	response := dto.ErrorResponse{
		TraceID:   traceID,
		Status:    statusCode,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}

	c.writeJSON(w, statusCode, response)
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	response := dto.ValidationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	}

	c.writeJSON(w, http.StatusUnprocessableEntity, response)
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
