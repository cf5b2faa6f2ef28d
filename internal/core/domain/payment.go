package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillPayment is one entry of the append-only payment ledger for a bill.
type BillPayment struct {
	PaymentID   string          `json:"paymentID"`
	BillID      string          `json:"billID"`
	PaymentDate time.Time       `json:"paymentDate"`
	AmountPaid  decimal.Decimal `json:"amountPaid"`
	Notes       string          `json:"notes"`
	RecordedBy  string          `json:"recordedBy"`
	// RecordedByName is populated on reads from the recording user's profile.
	RecordedByName string    `json:"recordedByName,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
