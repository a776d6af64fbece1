package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"shopsphere/internal/domain/entities"
	mock_interfaces "shopsphere/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func cardOrder() entities.Order {
	return entities.Order{
		ID:            "o1",
		UserID:        "u1",
		PaymentMethod: entities.PaymentMethodCard,
		TotalPrice:    150,
	}
}

func TestPaymentUseCase_ChargeOrder_Validation(t *testing.T) {
	payload := json.RawMessage(`{"token":"tok"}`)

	t.Run("blank order id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.ChargeOrder(context.Background(), "  ", "u1", payload)
		if !errors.Is(err, ErrInvalidPaymentOrderID) {
			t.Fatalf("expected ErrInvalidPaymentOrderID, got %v", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.ChargeOrder(context.Background(), "o1", "u1", json.RawMessage("{broken"))
		if !errors.Is(err, ErrInvalidPaymentOrderID) {
			t.Fatalf("expected ErrInvalidPaymentOrderID, got %v", err)
		}
	})

	t.Run("not the order owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(orders, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "o1").Return(cardOrder(), nil)

		_, err := uc.ChargeOrder(context.Background(), "o1", "someone-else", payload)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(orders, gateway)

		order := cardOrder()
		paidAt := order.CreatedAt
		order.PaidAt = &paidAt
		orders.EXPECT().GetByID(gomock.Any(), "o1").Return(order, nil)

		_, err := uc.ChargeOrder(context.Background(), "o1", "u1", payload)
		if !errors.Is(err, ErrOrderAlreadyPaid) {
			t.Fatalf("expected ErrOrderAlreadyPaid, got %v", err)
		}
	})

	t.Run("cash on delivery order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(orders, gateway)

		order := cardOrder()
		order.PaymentMethod = entities.PaymentMethodCOD
		orders.EXPECT().GetByID(gomock.Any(), "o1").Return(order, nil)

		_, err := uc.ChargeOrder(context.Background(), "o1", "u1", payload)
		if !errors.Is(err, ErrPaymentMethodNotCard) {
			t.Fatalf("expected ErrPaymentMethodNotCard, got %v", err)
		}
	})
}

func TestPaymentUseCase_ChargeOrder(t *testing.T) {
	t.Run("approved charge marks the order paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(orders, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "o1").Return(cardOrder(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("invalid gateway payload: %v", err)
				}
				if req["transaction_amount"] != 150.0 {
					t.Fatalf("expected stored total forwarded, got %v", req["transaction_amount"])
				}
				if req["external_reference"] != "o1" {
					t.Fatalf("expected external_reference o1, got %v", req["external_reference"])
				}
				if req["token"] != "tok" {
					t.Fatalf("expected card fields passed through, got %v", req)
				}
				return "mp-123", "approved", json.RawMessage(`{"payer":{"email":"ana@example.com"}}`), nil
			},
		)
		orders.EXPECT().MarkPaid(gomock.Any(), "o1", gomock.AssignableToTypeOf(entities.PaymentResult{}), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, result entities.PaymentResult, _ time.Time) (entities.Order, error) {
				if result.ID != "mp-123" || result.Status != "approved" || result.EmailAddress != "ana@example.com" {
					t.Fatalf("unexpected payment result: %+v", result)
				}
				return entities.Order{ID: "o1", Status: entities.OrderStatusProcessing}, nil
			},
		)

		outcome, err := uc.ChargeOrder(context.Background(), "o1", "u1", json.RawMessage(`{"token":"tok"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.ProviderPaymentID != "mp-123" || outcome.ProviderStatus != "approved" {
			t.Fatalf("unexpected outcome: %+v", outcome)
		}
		if outcome.Order.Status != entities.OrderStatusProcessing {
			t.Fatalf("expected order moved to processing, got %s", outcome.Order.Status)
		}
	})

	t.Run("declined charge leaves the order unpaid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(orders, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "o1").Return(cardOrder(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-124", "rejected", json.RawMessage(`{}`), nil)

		_, err := uc.ChargeOrder(context.Background(), "o1", "u1", json.RawMessage(`{"token":"tok"}`))
		if !errors.Is(err, ErrPaymentDeclined) {
			t.Fatalf("expected ErrPaymentDeclined, got %v", err)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(orders, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "o1").Return(cardOrder(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.ChargeOrder(context.Background(), "o1", "u1", json.RawMessage(`{"token":"tok"}`))
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("gateway bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(orders, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "o1").Return(cardOrder(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"bad_request","status":400}`))

		_, err := uc.ChargeOrder(context.Background(), "o1", "u1", json.RawMessage(`{"token":"tok"}`))
		if !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})
}

func TestPaymentUseCase_HandleWebhook(t *testing.T) {
	uc := NewPaymentUseCase(nil, nil)

	t.Run("empty payload", func(t *testing.T) {
		if err := uc.HandleWebhook(context.Background(), nil); !errors.Is(err, ErrInvalidPaymentOrderID) {
			t.Fatalf("expected ErrInvalidPaymentOrderID, got %v", err)
		}
	})

	t.Run("acknowledges provider event", func(t *testing.T) {
		payload := json.RawMessage(`{"type":"payment","data":{"id":123}}`)
		if err := uc.HandleWebhook(context.Background(), payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
