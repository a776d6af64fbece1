package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"shopsphere/internal/domain/entities"
	"shopsphere/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentOrderID      = errors.New("invalid order id")
	ErrPaymentMethodNotCard       = errors.New("order is not a card payment")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrPaymentDeclined            = errors.New("payment declined")
)

// PaymentOutcome is what the checkout page needs after a charge attempt.
type PaymentOutcome struct {
	ProviderPaymentID string
	ProviderStatus    string
	Order             entities.Order
}

// IPaymentUseCase encapsulates "charge an order through the card gateway".
type IPaymentUseCase interface {
	ChargeOrder(ctx context.Context, orderID, userID string, cardPayload json.RawMessage) (PaymentOutcome, error)
	HandleWebhook(ctx context.Context, payload json.RawMessage) error
}

type PaymentUseCase struct {
	orders  interfaces.IOrderRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{orders: orders, gateway: gateway}
}

// ChargeOrder charges the stored order total through the gateway and marks
// the order paid on approval. The order in the database is the source of
// truth for the amount; the client payload only carries card/payer fields.
func (u *PaymentUseCase) ChargeOrder(ctx context.Context, orderID, userID string, cardPayload json.RawMessage) (PaymentOutcome, error) {
	log.Printf("[payment][usecase] charge start order_id=%s payload_len=%d", orderID, len(cardPayload))
	mockMode := isPaymentGatewayMockEnabled()

	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return PaymentOutcome{}, ErrInvalidPaymentOrderID
	}
	if len(cardPayload) == 0 || !json.Valid(cardPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload order_id=%s", orderID)
			return PaymentOutcome{}, ErrInvalidPaymentOrderID
		}
		cardPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured order_id=%s", orderID)
		return PaymentOutcome{}, errors.New("payment gateway not configured")
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading order order_id=%s err=%v", orderID, err)
		return PaymentOutcome{}, err
	}
	if order.ID == "" || order.UserID != userID {
		return PaymentOutcome{}, ErrOrderNotFound
	}
	if order.Paid() {
		return PaymentOutcome{}, ErrOrderAlreadyPaid
	}
	if order.PaymentMethod != entities.PaymentMethodCard {
		return PaymentOutcome{}, ErrPaymentMethodNotCard
	}

	// external_reference lets provider events reconcile back to the order.
	var reqMap map[string]any
	if err := json.Unmarshal(cardPayload, &reqMap); err != nil {
		reqMap = map[string]any{}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = order.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Order %s", order.ID)
	}
	reqMap["transaction_amount"] = order.TotalPrice
	if b, err := json.Marshal(reqMap); err == nil {
		cardPayload = b
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, cardPayload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed order_id=%s err=%v", orderID, err)
		if isGatewayUnauthorized(err) {
			return PaymentOutcome{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return PaymentOutcome{}, ErrPaymentGatewayBadRequest
		}
		return PaymentOutcome{}, err
	}
	log.Printf("[payment][usecase] gateway success order_id=%s provider_payment_id=%s provider_status=%s", orderID, providerPaymentID, providerStatus)

	if providerStatus != "approved" {
		return PaymentOutcome{}, ErrPaymentDeclined
	}

	result := entities.PaymentResult{
		ID:           providerPaymentID,
		Status:       providerStatus,
		UpdateTime:   time.Now().UTC().Format(time.RFC3339),
		EmailAddress: payerEmail(providerResp),
	}
	paid, err := u.orders.MarkPaid(ctx, order.ID, result, time.Now().UTC())
	if err != nil {
		log.Printf("[payment][usecase] mark paid failed order_id=%s payment_id=%s err=%v", orderID, providerPaymentID, err)
		return PaymentOutcome{}, err
	}
	log.Printf("[payment][usecase] charge success order_id=%s payment_id=%s", orderID, providerPaymentID)

	return PaymentOutcome{ProviderPaymentID: providerPaymentID, ProviderStatus: providerStatus, Order: paid}, nil
}

// HandleWebhook acknowledges provider notifications. Card capture is
// synchronous in ChargeOrder, so notifications are only logged.
func (u *PaymentUseCase) HandleWebhook(ctx context.Context, payload json.RawMessage) error {
	if len(payload) == 0 || !json.Valid(payload) {
		return ErrInvalidPaymentOrderID
	}
	var event struct {
		Type string `json:"type"`
		Data struct {
			ID json.Number `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &event); err != nil {
		return err
	}
	log.Printf("[payment][usecase] webhook received type=%s provider_payment_id=%s", event.Type, event.Data.ID)
	return nil
}

func payerEmail(providerResp json.RawMessage) string {
	var resp struct {
		Payer struct {
			Email string `json:"email"`
		} `json:"payer"`
	}
	if err := json.Unmarshal(providerResp, &resp); err != nil {
		return ""
	}
	return resp.Payer.Email
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
