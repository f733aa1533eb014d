package usecase

import (
	"context"

	"depot/internal/domain"
	"depot/internal/dto"
)

type OrderLister interface {
	ListWithItems(ctx context.Context) ([]domain.Order, error)
}

type ListOrdersUseCase struct {
	orderRepo OrderLister
}

func NewListOrdersUseCase(orderRepo OrderLister) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// ListOrders returns all orders newest first. An empty store yields an
// empty list, never nil.
func (uc *ListOrdersUseCase) ListOrders(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.ListWithItems(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order))
	}

	return responses, nil
}
