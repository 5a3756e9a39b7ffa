package service

import (
	"crypto/sha512"
	"encoding/hex"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"karate_coaching_backend/internals/features/payment/model"
)

var SnapClient snap.Client

var serverKey string

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
func InitMidtrans(key string) {
	serverKey = key
	SnapClient.New(key, midtrans.Sandbox)
}

// GenerateSnapToken membuat token Snap berdasarkan tagihan latihan dan data student.
func GenerateSnapToken(p model.TrainingPaymentModel, name string, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.OrderID,
			GrossAmt: p.Amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}

	return resp.Token, nil
}

// VerifySignature memvalidasi signature_key dari notification webhook Midtrans:
// sha512(order_id + status_code + gross_amount + server_key).
func VerifySignature(orderID, statusCode, grossAmount, signatureKey string) bool {
	h := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(h[:]) == signatureKey
}

// MapTransactionStatus menerjemahkan status transaksi Midtrans ke status internal.
func MapTransactionStatus(transactionStatus, fraudStatus string) string {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			return model.PaymentStatusPaid
		}
		return model.PaymentStatusPending
	case "settlement":
		return model.PaymentStatusPaid
	case "deny", "cancel", "failure":
		return model.PaymentStatusFailed
	case "expire":
		return model.PaymentStatusExpired
	default:
		return model.PaymentStatusPending
	}
}
