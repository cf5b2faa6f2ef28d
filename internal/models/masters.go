package models

import "github.com/shopspring/decimal"

// Particulars is the particulars table row (service catalog).
type Particulars struct {
	ParticularsID string `db:"particulars_id"`
	Name          string `db:"name"`
	IsOther       bool   `db:"is_other"`
	AuditFields
}

// GSTRate is the gst_rates table row.
type GSTRate struct {
	GSTRateID   string          `db:"gst_rate_id"`
	Rate        decimal.Decimal `db:"rate"`
	Description string          `db:"description"`
	AuditFields
}

// PaymentTerm is the payment_terms table row.
type PaymentTerm struct {
	PaymentTermID string `db:"payment_term_id"`
	Name          string `db:"name"`
	DaysToAdd     int    `db:"days_to_add"`
	AuditFields
}
