package repositories

import (
	"context"

	"github.com/gstbill/gst_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReceivablesTotals are the raw aggregates of a filtered bill set. All
// monetary summation happens in SQL; derived ratios are computed by the
// reporting service.
type ReceivablesTotals struct {
	BillCount   int64
	Billed      decimal.Decimal
	Paid        decimal.Decimal
	Outstanding decimal.Decimal
}

// ReportingRepository serves read-only aggregation over bills.
type ReportingRepository interface {
	// GetReceivablesTotals returns count and sums for the filtered set.
	GetReceivablesTotals(ctx context.Context, f domain.ReportFilter) (*ReceivablesTotals, error)

	// GetHeaderBreakdown groups the same aggregates by issuing company,
	// ordered by outstanding descending.
	GetHeaderBreakdown(ctx context.Context, f domain.ReportFilter) ([]domain.PartyBreakdownRow, error)

	// GetClientBreakdown groups by client, excludes bills without a client,
	// orders by outstanding descending and caps at the top 10.
	GetClientBreakdown(ctx context.Context, f domain.ReportFilter) ([]domain.PartyBreakdownRow, error)

	// GetAgingBuckets buckets overdue unpaid-or-partial bills by days past
	// due: 0-30, 31-60, 61-90, 90+.
	GetAgingBuckets(ctx context.Context, f domain.ReportFilter) ([]domain.AgingBucket, error)

	// GetBillReportRows returns the detailed per-bill projection used by the
	// client ledger, detailed report and spreadsheet export.
	GetBillReportRows(ctx context.Context, f domain.ReportFilter) ([]domain.BillReportRow, error)
}
