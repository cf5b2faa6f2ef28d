package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is the bills table row.
type Bill struct {
	BillID        string    `db:"bill_id"`
	HeaderID      string    `db:"header_id"`
	ClientID      *string   `db:"client_id"`
	BillDate      time.Time `db:"bill_date"`
	PaymentTermID string    `db:"payment_term_id"`
	BillNo        string    `db:"bill_no"`
	BillSeq       int       `db:"bill_seq"`
	FinancialYear string    `db:"financial_year"`
	DueDate       time.Time `db:"due_date"`
	Status        string    `db:"status"`

	TotalInvoiceValue decimal.Decimal `db:"total_invoice_value"`
	TotalPaid         decimal.Decimal `db:"total_paid"`
	PaymentStatus     string          `db:"payment_status"`

	Notes string `db:"notes"`
	AuditFields
}

// BillService is the bill_services table row (line item).
type BillService struct {
	BillServiceID    string    `db:"bill_service_id"`
	BillID           string    `db:"bill_id"`
	SrNo             int       `db:"sr_no"`
	ParticularsID    string    `db:"particulars_id"`
	ParticularsOther *string   `db:"particulars_other"`
	ServiceDate      time.Time `db:"service_date"`
	ServiceYear      string    `db:"service_year"`

	Amount    decimal.Decimal `db:"amount"`
	GSTRateID string          `db:"gst_rate_id"`
	AuditFields

	// Joined columns, populated by bill reads.
	ParticularsName string          `db:"particulars_name"`
	GSTRate         decimal.Decimal `db:"gst_rate"`
}

// BillHistory is the bill_history table row (append-only audit trail).
type BillHistory struct {
	HistoryID   string    `db:"history_id"`
	BillID      string    `db:"bill_id"`
	Action      string    `db:"action"`
	Outcome     string    `db:"outcome"`
	ActorUserID string    `db:"actor_user_id"`
	CreatedAt   time.Time `db:"created_at"`
}
