package response

import "shopsphere/internal/usecase"

type PaymentIntentResponse struct {
	Success   bool          `json:"success"`
	PaymentID string        `json:"paymentId"`
	Status    string        `json:"status"`
	Order     OrderResponse `json:"order"`
}

func FromPaymentOutcome(outcome usecase.PaymentOutcome) PaymentIntentResponse {
	return PaymentIntentResponse{
		Success:   true,
		PaymentID: outcome.ProviderPaymentID,
		Status:    outcome.ProviderStatus,
		Order:     FromOrder(outcome.Order),
	}
}
