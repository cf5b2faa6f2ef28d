package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportFilter narrows reporting queries; all set fields combine with AND.
type ReportFilter struct {
	FinancialYear *string
	FromDate      *time.Time
	ToDate        *time.Time
	Month         *int // 1-12, paired with Year
	Year          *int
	HeaderID      *string
	ClientID      *string
	PaymentStatus *PaymentStatus
}

// ReceivablesSummary is the dashboard KPI block.
type ReceivablesSummary struct {
	BillCount        int64           `json:"billCount"`
	TotalBilled      decimal.Decimal `json:"totalBilled"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	// CollectionRate is paid/billed*100 rounded to 2 decimals, 0 when billed is 0.
	CollectionRate decimal.Decimal `json:"collectionRate"`
}

// PartyBreakdownRow is one company-wise or client-wise aggregate row.
type PartyBreakdownRow struct {
	PartyID     string          `json:"partyID"`
	PartyName   string          `json:"partyName"`
	BillCount   int64           `json:"billCount"`
	Billed      decimal.Decimal `json:"billed"`
	Paid        decimal.Decimal `json:"paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// AgingBucket holds the outstanding balance of overdue unpaid-or-partial
// bills grouped by days past due.
type AgingBucket struct {
	Label       string          `json:"label"` // "0-30", "31-60", "61-90", "90+"
	BillCount   int64           `json:"billCount"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// BillReportRow is the detailed/ledger projection of a bill used by the
// client ledger, detailed report and spreadsheet export.
type BillReportRow struct {
	BillNo        string          `json:"billNo"`
	BillDate      time.Time       `json:"billDate"`
	DueDate       time.Time       `json:"dueDate"`
	FinancialYear string          `json:"financialYear"`
	HeaderName    string          `json:"headerName"`
	ClientName    string          `json:"clientName"`
	Status        BillStatus      `json:"status"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	Invoiced      decimal.Decimal `json:"invoiced"`
	Paid          decimal.Decimal `json:"paid"`
	Outstanding   decimal.Decimal `json:"outstanding"`
}

// DashboardKPIs bundles every aggregate the dashboard endpoint returns.
type DashboardKPIs struct {
	Summary       ReceivablesSummary  `json:"summary"`
	ByHeader      []PartyBreakdownRow `json:"byHeader"`
	ByClient      []PartyBreakdownRow `json:"byClient"`
	AgingAnalysis []AgingBucket       `json:"agingAnalysis"`
}
