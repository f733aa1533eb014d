package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"depot/internal/dto"
	apperrors "depot/internal/errors"
)

type mockCreateOrderUseCase struct {
	CreateOrderFunc func(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	called          bool
}

func (m *mockCreateOrderUseCase) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	m.called = true
	return m.CreateOrderFunc(ctx, req)
}

type mockListOrdersUseCase struct {
	ListOrdersFunc func(ctx context.Context) ([]dto.OrderResponse, error)
}

func (m *mockListOrdersUseCase) ListOrders(ctx context.Context) ([]dto.OrderResponse, error) {
	return m.ListOrdersFunc(ctx)
}

func validBody() string {
	return `{
		"customerId": "11111111-1111-1111-1111-111111111111",
		"shippingAddress": {
			"street": "123 Main St",
			"city": "New York",
			"state": "NY",
			"country": "US",
			"postalCode": "10001"
		},
		"items": [
			{"productId": "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", "quantity": 2}
		],
		"creditCardNumber": "4242424242424242"
	}`
}

func postOrder(t *testing.T, c *OrderController, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	c.CreateOrder(rec, req)
	return rec
}

func TestCreateOrder_Returns201WithOrder(t *testing.T) {
	create := &mockCreateOrderUseCase{
		CreateOrderFunc: func(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
			return &dto.OrderResponse{
				ID:          "order-1",
				CustomerID:  req.CustomerID,
				TotalAmount: "39.98",
				Status:      "PAID",
			}, nil
		},
	}
	c := NewOrderController(create, nil, zap.NewNop())

	rec := postOrder(t, c, validBody())

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}

	var resp dto.OrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.ID != "order-1" || resp.TotalAmount != "39.98" || resp.Status != "PAID" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestCreateOrder_MalformedJSONReturns422(t *testing.T) {
	create := &mockCreateOrderUseCase{
		CreateOrderFunc: func(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
			return nil, nil
		},
	}
	c := NewOrderController(create, nil, zap.NewNop())

	rec := postOrder(t, c, `{not json`)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if create.called {
		t.Errorf("use case must not run for malformed input")
	}
}

func TestCreateOrder_ValidationDetailsReturned(t *testing.T) {
	create := &mockCreateOrderUseCase{
		CreateOrderFunc: func(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
			return nil, nil
		},
	}
	c := NewOrderController(create, nil, zap.NewNop())

	// Missing customerId, empty address, empty items, no card.
	rec := postOrder(t, c, `{}`)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if create.called {
		t.Errorf("use case must not run for invalid input")
	}

	var resp dto.ValidationErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Error != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %s", resp.Error)
	}
	fields := make(map[string]bool)
	for _, d := range resp.Details {
		fields[d.Field] = true
	}
	for _, want := range []string{"customerId", "shippingAddress.street", "items", "creditCardNumber"} {
		if !fields[want] {
			t.Errorf("expected a detail for %s, got %+v", want, resp.Details)
		}
	}
}

func TestCreateOrder_DuplicateProductIDAccepted(t *testing.T) {
	create := &mockCreateOrderUseCase{
		CreateOrderFunc: func(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
			return &dto.OrderResponse{ID: "order-1", Status: "PAID"}, nil
		},
	}
	c := NewOrderController(create, nil, zap.NewNop())

	body := strings.Replace(validBody(),
		`{"productId": "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", "quantity": 2}`,
		`{"productId": "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", "quantity": 2},
		 {"productId": "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", "quantity": 1}`, 1)

	rec := postOrder(t, c, body)

	if rec.Code != http.StatusCreated {
		t.Fatalf("repeated productIds must pass validation, expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !create.called {
		t.Errorf("use case must run")
	}
}

func TestCreateOrder_ErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", apperrors.NewNotFoundError("products not found: x"), http.StatusNotFound, "NOT_FOUND"},
		{"no warehouse", apperrors.NewBadRequestError("no warehouse has sufficient inventory for all items"), http.StatusBadRequest, "BAD_REQUEST"},
		{"payment declined", apperrors.NewPaymentDeclinedError("payment declined: card ends in odd digit"), http.StatusPaymentRequired, "PAYMENT_DECLINED"},
		{"internal", apperrors.NewInternalError("boom", nil), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			create := &mockCreateOrderUseCase{
				CreateOrderFunc: func(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
					return nil, tc.err
				},
			}
			c := NewOrderController(create, nil, zap.NewNop())

			rec := postOrder(t, c, validBody())

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tc.wantStatus, rec.Code, rec.Body.String())
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if resp.Code != tc.wantCode {
				t.Errorf("expected code %s, got %s", tc.wantCode, resp.Code)
			}
			if resp.TraceID == "" {
				t.Errorf("expected a traceId")
			}
		})
	}
}

func TestCreateOrder_InternalErrorHidesDetails(t *testing.T) {
	create := &mockCreateOrderUseCase{
		CreateOrderFunc: func(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
			return nil, apperrors.NewInternalError("dsn user:secret@tcp", nil)
		},
	}
	c := NewOrderController(create, nil, zap.NewNop())

	rec := postOrder(t, c, validBody())

	if strings.Contains(rec.Body.String(), "secret") {
		t.Errorf("internal error details leaked to the client: %s", rec.Body.String())
	}
}

func TestListOrders_Returns200(t *testing.T) {
	list := &mockListOrdersUseCase{
		ListOrdersFunc: func(ctx context.Context) ([]dto.OrderResponse, error) {
			return []dto.OrderResponse{{ID: "order-1", Status: "PAID"}}, nil
		},
	}
	c := NewOrderController(nil, list, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	c.ListOrders(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []dto.OrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != "order-1" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestListOrders_EmptyStoreEncodesEmptyArray(t *testing.T) {
	list := &mockListOrdersUseCase{
		ListOrdersFunc: func(ctx context.Context) ([]dto.OrderResponse, error) {
			return []dto.OrderResponse{}, nil
		},
	}
	c := NewOrderController(nil, list, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	c.ListOrders(rec, req)

	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected [], got %s", got)
	}
}

func TestListOrders_RepositoryErrorReturns500(t *testing.T) {
	list := &mockListOrdersUseCase{
		ListOrdersFunc: func(ctx context.Context) ([]dto.OrderResponse, error) {
			return nil, apperrors.NewInternalError("query failed", nil)
		},
	}
	c := NewOrderController(nil, list, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	c.ListOrders(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
