package dto

import "github.com/google/uuid"

type CreatePaymentRequest struct {
	StudentID   uuid.UUID `json:"student_id" validate:"required"`
	Amount      int64     `json:"amount" validate:"required,min=1"`
	Description *string   `json:"description" validate:"omitempty,max=255"`
}

// MidtransNotification — payload webhook yang kita pakai;
// field lain dari Midtrans diabaikan.
type MidtransNotification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}
