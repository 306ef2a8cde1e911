package response

import "wayfare/internal/usecase/shared"

type PaymentIntentResponse struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	Status          string `json:"status"`
}

func FromPaymentIntent(intent *shared.PaymentIntent) PaymentIntentResponse {
	return PaymentIntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
		Status:          intent.Status,
	}
}

type RefundResponse struct {
	RefundID string `json:"refundId"`
	Amount   int64  `json:"amount"`
	Status   string `json:"status"`
}

func FromRefund(r *shared.RefundResult) RefundResponse {
	return RefundResponse{
		RefundID: r.ID,
		Amount:   r.Amount,
		Status:   r.Status,
	}
}
