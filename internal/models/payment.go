package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillPayment is the bill_payments table row (append-only ledger).
type BillPayment struct {
	PaymentID   string          `db:"payment_id"`
	BillID      string          `db:"bill_id"`
	PaymentDate time.Time       `db:"payment_date"`
	AmountPaid  decimal.Decimal `db:"amount_paid"`
	Notes       string          `db:"notes"`
	RecordedBy  string          `db:"recorded_by"`
	CreatedAt   time.Time       `db:"created_at"`

	// Joined column, populated by payment-history reads.
	RecordedByName string `db:"recorded_by_name"`
}
