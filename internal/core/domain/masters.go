package domain

import "github.com/shopspring/decimal"

// Particulars is an entry in the billable-service catalog. The "Other"
// category allows free-text particulars on a bill line.
type Particulars struct {
	ParticularsID string `json:"particularsID"`
	Name          string `json:"name"`
	IsOther       bool   `json:"isOther"`
	AuditFields
}

// GSTRate is a configurable tax rate applied per bill line.
type GSTRate struct {
	GSTRateID   string          `json:"gstRateID"`
	Rate        decimal.Decimal `json:"rate"` // percentage, e.g. 18
	Description string          `json:"description"`
	AuditFields
}

// PaymentTerm determines a bill's due date: due_date = bill_date + DaysToAdd.
type PaymentTerm struct {
	PaymentTermID string `json:"paymentTermID"`
	Name          string `json:"name"`
	DaysToAdd     int    `json:"daysToAdd"`
	AuditFields
}
