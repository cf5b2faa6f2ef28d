package services

import (
	"context"

	"github.com/gstbill/gst_billing_app/internal/core/domain"
	"github.com/gstbill/gst_billing_app/internal/dto"
)

// PaymentSvcFacade appends to and reads the payment ledger.
type PaymentSvcFacade interface {
	// MarkPayment records a payment. The amount must be strictly positive
	// and must not exceed the bill's outstanding balance, evaluated
	// atomically against the locked bill row.
	MarkPayment(ctx context.Context, req dto.MarkPaymentRequest, recordingUserID string) (*dto.MarkPaymentResponse, error)

	// GetPaymentHistory lists a bill's payments newest first.
	GetPaymentHistory(ctx context.Context, billID string) ([]domain.BillPayment, error)

	// DeletePayment hard-deletes a ledger row; the bill's totals are
	// recomputed in the same transaction. Privileged operation.
	DeletePayment(ctx context.Context, paymentID string) error
}
