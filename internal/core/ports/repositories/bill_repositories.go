package repositories

import (
	"context"
	"time"

	"github.com/gstbill/gst_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BillReader defines read operations for bills
type BillReader interface {
	// FindBillByID retrieves the bare bill row, without joins. Used for
	// status checks before mutations.
	FindBillByID(ctx context.Context, billID string) (*domain.Bill, error)

	// FindBillDetailsByID retrieves the hydrated bill: company, bank,
	// payment term, creator, client, and ordered line items with
	// particulars names and GST rates.
	FindBillDetailsByID(ctx context.Context, billID string) (*domain.BillDetails, error)

	// FindBillDetailsByBillNo is FindBillDetailsByID keyed by bill number.
	FindBillDetailsByBillNo(ctx context.Context, billNo string) (*domain.BillDetails, error)

	// ListBills returns a filtered page ordered by creation time descending
	// (services omitted), plus the total number of matching bills.
	ListBills(ctx context.Context, filter domain.BillListFilter) ([]domain.BillDetails, int64, error)
}

// BillWriter defines transactional write operations for bills
type BillWriter interface {
	// CreateBill inserts the bill and its line items in one transaction.
	// The bill sequence within the header's financial year is assigned
	// under a lock on the header row, and bill_no is derived from it; the
	// returned bill carries the assigned number. On any failure the whole
	// transaction rolls back.
	CreateBill(ctx context.Context, bill domain.Bill, services []domain.BillService) (*domain.Bill, error)

	// UpdateBill applies a partial field merge and, when services is
	// non-nil, replaces the full line-item set with freshly assigned
	// 1-based sr_no, all in one transaction. The bill row is locked and
	// must still be DRAFT inside the transaction.
	UpdateBill(ctx context.Context, billID string, fields domain.BillUpdateFields, services []domain.BillService, updatedBy string, updatedAt time.Time) error

	// FinalizeBill transitions DRAFT -> FINALIZED conditionally. Zero rows
	// affected means not found or already finalized; the two causes are not
	// distinguished.
	FinalizeBill(ctx context.Context, billID string, updatedBy string, updatedAt time.Time) error

	// DeleteBill hard-deletes the bill; line items go with it via cascade.
	DeleteBill(ctx context.Context, billID string) error

	// AddBillService appends one line with sr_no = max(existing)+1 and
	// stores the recomputed invoice total, in one transaction.
	AddBillService(ctx context.Context, billID string, svc domain.BillService, newTotal decimal.Decimal) (*domain.BillService, error)

	// DeleteBillService removes one line and stores the recomputed invoice
	// total, in one transaction. Remaining sr_no values keep their gaps.
	DeleteBillService(ctx context.Context, billID, billServiceID string, newTotal decimal.Decimal, updatedBy string, updatedAt time.Time) error
}

// BillHistoryWriter appends to the bill audit trail. Rows are never mutated.
type BillHistoryWriter interface {
	SaveBillHistory(ctx context.Context, h domain.BillHistory) error
	ListBillHistory(ctx context.Context, billID string) ([]domain.BillHistory, error)
}

// BillRepositoryFacade combines all bill-related repository interfaces
type BillRepositoryFacade interface {
	BillReader
	BillWriter
	BillHistoryWriter
}
