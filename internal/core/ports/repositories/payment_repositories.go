package repositories

import (
	"context"

	"github.com/gstbill/gst_billing_app/internal/core/domain"
)

// PaymentWriter defines transactional payment-ledger writes.
type PaymentWriter interface {
	// MarkPayment inserts a payment in one transaction: the bill row is
	// locked FOR UPDATE, the outstanding balance is checked against the
	// payment amount, the ledger row is inserted, and the bill's
	// total_paid/payment_status are recomputed from the ledger sum. A
	// payment exceeding the balance fails the transaction.
	MarkPayment(ctx context.Context, payment domain.BillPayment) (*domain.BillPayment, error)

	// DeletePayment removes a ledger row and recomputes the bill's
	// total_paid/payment_status in the same transaction.
	DeletePayment(ctx context.Context, paymentID string) error
}

// PaymentReader defines payment-ledger reads.
type PaymentReader interface {
	// FindPaymentByID retrieves a single payment.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.BillPayment, error)

	// ListPaymentsByBill returns all payments for a bill, newest
	// payment_date first, ties broken by creation time descending, each
	// annotated with the recording user's display name.
	ListPaymentsByBill(ctx context.Context, billID string) ([]domain.BillPayment, error)
}

// PaymentRepositoryFacade combines payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentWriter
	PaymentReader
}
