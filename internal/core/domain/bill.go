package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus is the lifecycle state of a bill. Only DRAFT bills may have
// their services, header reference, or monetary fields mutated; once
// FINALIZED the line items are immutable and the bill number is permanent.
type BillStatus string

const (
	BillStatusDraft     BillStatus = "DRAFT"
	BillStatusFinalized BillStatus = "FINALIZED"
	BillStatusSent      BillStatus = "SENT"
	BillStatusPaid      BillStatus = "PAID"
)

// PaymentStatus is derived from total_paid vs total_invoice_value.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "UNPAID"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

// Bill is an invoice issued by a header company, optionally to a client.
type Bill struct {
	BillID        string     `json:"billID"`
	HeaderID      string     `json:"headerID"`
	ClientID      *string    `json:"clientID,omitempty"`
	BillDate      time.Time  `json:"billDate"`
	PaymentTermID string     `json:"paymentTermID"`
	BillNo        string     `json:"billNo"`
	BillSeq       int        `json:"billSeq"` // per header, per financial year
	FinancialYear string     `json:"financialYear"`
	DueDate       time.Time  `json:"dueDate"`
	Status        BillStatus `json:"status"`

	TotalInvoiceValue decimal.Decimal `json:"totalInvoiceValue"`
	TotalPaid         decimal.Decimal `json:"totalPaid"`
	PaymentStatus     PaymentStatus   `json:"paymentStatus"`

	Notes string `json:"notes"`
	AuditFields
}

// BillService is a single line item. SrNo is 1-based and contiguous after a
// create or full replace; incremental adds append max+1 and leave gaps after
// deletes.
type BillService struct {
	BillServiceID    string    `json:"billServiceID"`
	BillID           string    `json:"billID"`
	SrNo             int       `json:"srNo"`
	ParticularsID    string    `json:"particularsID"`
	ParticularsOther *string   `json:"particularsOther,omitempty"`
	ServiceDate      time.Time `json:"serviceDate"`
	ServiceYear      string    `json:"serviceYear"`

	Amount    decimal.Decimal `json:"amount"` // base, pre-tax
	GSTRateID string          `json:"gstRateID"`
	AuditFields
}

// BillServiceDetail is a line item joined with its particulars name and GST
// rate, with the tax amounts derived at read time.
type BillServiceDetail struct {
	BillService
	ParticularsName string          `json:"particularsName"`
	GSTRate         decimal.Decimal `json:"gstRate"`
	GSTAmount       decimal.Decimal `json:"gstAmount"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
}

// BillDetails is the hydrated read shape returned by every bill read/write
// operation: the bill joined with company, bank, payment term, creator and
// client details plus its ordered line items.
type BillDetails struct {
	Bill
	Header        Header              `json:"header"`
	Client        *Client             `json:"client,omitempty"`
	PaymentTerm   PaymentTerm         `json:"paymentTerm"`
	CreatedByName string              `json:"createdByName"`
	Services      []BillServiceDetail `json:"services"`
}

// BillListFilter narrows a bill listing; all set fields combine with AND.
type BillListFilter struct {
	Status        *BillStatus
	HeaderID      *string
	ClientID      *string
	PaymentStatus *PaymentStatus
	FromDate      *time.Time
	ToDate        *time.Time
	Limit         int
	Offset        int
}

// BillUpdateFields is a column-level partial update of a DRAFT bill: a nil
// field keeps the stored value (COALESCE-style merge, never
// overwrite-with-null).
type BillUpdateFields struct {
	ClientID      *string
	BillDate      *time.Time
	PaymentTermID *string
	DueDate       *time.Time // recomputed by the service when date or term change
	Notes         *string
	TotalInvoiceValue *decimal.Decimal // recomputed when services are replaced
}

// BillHistoryAction enumerates audited bill actions.
type BillHistoryAction string

const (
	BillHistoryEmailSent BillHistoryAction = "EMAIL_SENT"
)

// BillHistory is an append-only audit record keyed to a bill.
type BillHistory struct {
	HistoryID   string            `json:"historyID"`
	BillID      string            `json:"billID"`
	Action      BillHistoryAction `json:"action"`
	Outcome     string            `json:"outcome"`
	ActorUserID string            `json:"actorUserID"`
	CreatedAt   time.Time         `json:"createdAt"`
}
