package dto

import (
	"github.com/gstbill/gst_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MarkPaymentRequest records a payment against a bill.
type MarkPaymentRequest struct {
	BillID      string          `json:"billID" binding:"required"`
	PaymentDate string          `json:"paymentDate" binding:"required,datetime=2006-01-02"`
	AmountPaid  decimal.Decimal `json:"amountPaid" binding:"required"`
	Notes       string          `json:"notes"`
}

// MarkPaymentResponse returns the new ledger entry plus the refreshed bill.
type MarkPaymentResponse struct {
	Payment domain.BillPayment  `json:"payment"`
	Bill    domain.BillDetails  `json:"bill"`
}
