package services

import (
	"context"

	"github.com/gstbill/gst_billing_app/internal/core/domain"
	"github.com/gstbill/gst_billing_app/internal/dto"
)

// BillSvcFacade manages the bill lifecycle. Every read/write returns the
// hydrated bill shape.
type BillSvcFacade interface {
	// CreateBill validates the request, derives bill_no/financial_year/
	// due_date and the invoice total, and persists the bill with its line
	// items in one transaction.
	CreateBill(ctx context.Context, req dto.CreateBillRequest, creatorUserID string) (*domain.BillDetails, error)

	GetBillByID(ctx context.Context, billID string) (*domain.BillDetails, error)
	GetBillByBillNo(ctx context.Context, billNo string) (*domain.BillDetails, error)
	ListBills(ctx context.Context, params dto.ListBillsParams) (*dto.ListBillsResponse, error)

	// UpdateBill rejects non-DRAFT bills; omitted fields keep their stored
	// values; a supplied services array replaces the whole set.
	UpdateBill(ctx context.Context, billID string, req dto.UpdateBillRequest, updaterUserID string) (*domain.BillDetails, error)

	// FinalizeBill transitions DRAFT -> FINALIZED; finalizing a bill that
	// is not DRAFT (or does not exist) fails.
	FinalizeBill(ctx context.Context, billID string, updaterUserID string) (*domain.BillDetails, error)

	// DeleteBill hard-deletes a DRAFT bill and its services.
	DeleteBill(ctx context.Context, billID string) error

	// AddService appends one line with sr_no = max(existing)+1; DRAFT only.
	AddService(ctx context.Context, billID string, req dto.AddBillServiceRequest, updaterUserID string) (*domain.BillDetails, error)

	// DeleteService removes one line; DRAFT only. sr_no gaps remain.
	DeleteService(ctx context.Context, billID, billServiceID string, updaterUserID string) (*domain.BillDetails, error)

	// RecordEmailSent appends an EMAIL_SENT row to the bill audit trail.
	RecordEmailSent(ctx context.Context, billID, actorUserID, outcome string) error

	// GetBillHistory lists the append-only audit trail for a bill.
	GetBillHistory(ctx context.Context, billID string) ([]domain.BillHistory, error)
}
