package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gstbill/gst_billing_app/internal/apperrors"
	"github.com/gstbill/gst_billing_app/internal/core/domain"
	portsrepo "github.com/gstbill/gst_billing_app/internal/core/ports/repositories"
	portssvc "github.com/gstbill/gst_billing_app/internal/core/ports/services"
	"github.com/gstbill/gst_billing_app/internal/dto"
	"github.com/gstbill/gst_billing_app/internal/middleware"
)

// paymentService appends to and reads the payment ledger.
type paymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
	billRepo    portsrepo.BillRepositoryFacade
}

// NewPaymentService creates a new paymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, billRepo portsrepo.BillRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		billRepo:    billRepo,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// MarkPayment records a payment. The balance check runs inside the
// repository transaction against the locked bill row; this layer only
// rejects what can be rejected without looking at the bill.
func (s *paymentService) MarkPayment(ctx context.Context, req dto.MarkPaymentRequest, recordingUserID string) (*dto.MarkPaymentResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.AmountPaid.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("payment amount must be positive: %w", apperrors.ErrValidation)
	}
	paymentDate, err := time.Parse(dateLayout, req.PaymentDate)
	if err != nil {
		return nil, fmt.Errorf("invalid payment date: %w", apperrors.ErrValidation)
	}

	payment := domain.BillPayment{
		PaymentID:   uuid.NewString(),
		BillID:      req.BillID,
		PaymentDate: paymentDate,
		AmountPaid:  req.AmountPaid,
		Notes:       req.Notes,
		RecordedBy:  recordingUserID,
		CreatedAt:   time.Now(),
	}

	recorded, err := s.paymentRepo.MarkPayment(ctx, payment)
	if err != nil {
		logger.Warn("Failed to mark payment", slog.String("error", err.Error()), slog.String("bill_id", req.BillID))
		return nil, fmt.Errorf("failed to mark payment: %w", err)
	}

	// Re-read for the recorder's display name.
	if withName, err := s.paymentRepo.FindPaymentByID(ctx, recorded.PaymentID); err == nil {
		recorded = withName
	}

	bill, err := s.billRepo.FindBillDetailsByID(ctx, req.BillID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload bill after payment: %w", err)
	}

	logger.Info("Payment recorded",
		slog.String("payment_id", recorded.PaymentID),
		slog.String("bill_id", req.BillID),
		slog.String("amount", req.AmountPaid.StringFixed(2)))
	return &dto.MarkPaymentResponse{Payment: *recorded, Bill: *bill}, nil
}

func (s *paymentService) GetPaymentHistory(ctx context.Context, billID string) ([]domain.BillPayment, error) {
	if _, err := s.billRepo.FindBillByID(ctx, billID); err != nil {
		return nil, fmt.Errorf("failed to find bill %s: %w", billID, err)
	}
	return s.paymentRepo.ListPaymentsByBill(ctx, billID)
}

func (s *paymentService) DeletePayment(ctx context.Context, paymentID string) error {
	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	return nil
}
