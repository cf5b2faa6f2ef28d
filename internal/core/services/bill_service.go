package services

import (
	"context"
	"errors"
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
	"github.com/gstbill/gst_billing_app/internal/utils/billing"
)

const dateLayout = "2006-01-02"

// billService manages the bill lifecycle: creation with derived numbering,
// DRAFT-only mutation, finalization and the audit trail.
type billService struct {
	billRepo    portsrepo.BillRepositoryFacade
	mastersRepo portsrepo.MastersRepositoryFacade
	clientRepo  portsrepo.ClientRepositoryFacade
}

// NewBillService creates a new billService.
func NewBillService(billRepo portsrepo.BillRepositoryFacade, mastersRepo portsrepo.MastersRepositoryFacade, clientRepo portsrepo.ClientRepositoryFacade) portssvc.BillSvcFacade {
	return &billService{
		billRepo:    billRepo,
		mastersRepo: mastersRepo,
		clientRepo:  clientRepo,
	}
}

var _ portssvc.BillSvcFacade = (*billService)(nil)

// CreateBill validates all references, derives financial_year/due_date and
// the invoice total, and persists the bill in one transaction; bill_no is
// assigned inside that transaction under the header-row lock.
func (s *billService) CreateBill(ctx context.Context, req dto.CreateBillRequest, creatorUserID string) (*domain.BillDetails, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	billDate, err := time.Parse(dateLayout, req.BillDate)
	if err != nil {
		return nil, fmt.Errorf("invalid bill date: %w", apperrors.ErrValidation)
	}

	term, err := s.mastersRepo.FindPaymentTermByID(ctx, req.PaymentTermID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("payment term %s: %w", req.PaymentTermID, apperrors.ErrInvalidReference)
		}
		return nil, fmt.Errorf("failed to validate payment term: %w", err)
	}

	if req.ClientID != nil {
		if err := s.validateClientRef(ctx, *req.ClientID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	billID := uuid.NewString()
	services, total, err := s.buildServices(ctx, billID, req.Services, creatorUserID, now)
	if err != nil {
		return nil, err
	}

	bill := domain.Bill{
		BillID:            billID,
		HeaderID:          req.HeaderID,
		ClientID:          req.ClientID,
		BillDate:          billDate,
		PaymentTermID:     req.PaymentTermID,
		FinancialYear:     billing.FinancialYear(billDate),
		DueDate:           billing.DueDate(billDate, term.DaysToAdd),
		Status:            domain.BillStatusDraft,
		TotalInvoiceValue: total,
		TotalPaid:         decimal.Zero,
		PaymentStatus:     domain.PaymentStatusUnpaid,
		Notes:             req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	created, err := s.billRepo.CreateBill(ctx, bill, services)
	if err != nil {
		logger.Error("Failed to create bill", slog.String("error", err.Error()), slog.String("header_id", req.HeaderID))
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	logger.Info("Bill created", slog.String("bill_id", created.BillID), slog.String("bill_no", created.BillNo))
	return s.billRepo.FindBillDetailsByID(ctx, created.BillID)
}

// validateClientRef requires an existing active client.
func (s *billService) validateClientRef(ctx context.Context, clientID string) error {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("client %s: %w", clientID, apperrors.ErrInvalidReference)
		}
		return fmt.Errorf("failed to validate client: %w", err)
	}
	if !client.IsActive {
		return fmt.Errorf("client %s is inactive: %w", clientID, apperrors.ErrInvalidReference)
	}
	return nil
}

// buildServices validates the submitted lines against the catalogs, assigns
// 1-based sr_no from submission order, and returns the lines with the
// computed invoice total.
func (s *billService) buildServices(ctx context.Context, billID string, reqs []dto.BillServiceRequest, actorUserID string, now time.Time) ([]domain.BillService, decimal.Decimal, error) {
	rateIDs := make([]string, 0, len(reqs))
	for _, r := range reqs {
		rateIDs = append(rateIDs, r.GSTRateID)
	}
	rates, err := s.mastersRepo.FindGSTRatesByIDs(ctx, rateIDs)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to load GST rates: %w", err)
	}

	services := make([]domain.BillService, 0, len(reqs))
	lines := make([]billing.LineInput, 0, len(reqs))
	for i, r := range reqs {
		svc, line, err := s.buildServiceLine(ctx, billID, i+1, r, rates, actorUserID, now)
		if err != nil {
			return nil, decimal.Zero, err
		}
		services = append(services, *svc)
		lines = append(lines, line)
	}
	return services, billing.InvoiceTotal(lines), nil
}

func (s *billService) buildServiceLine(ctx context.Context, billID string, srNo int, r dto.BillServiceRequest, rates map[string]domain.GSTRate, actorUserID string, now time.Time) (*domain.BillService, billing.LineInput, error) {
	serviceDate, err := time.Parse(dateLayout, r.ServiceDate)
	if err != nil {
		return nil, billing.LineInput{}, fmt.Errorf("line %d: invalid service date: %w", srNo, apperrors.ErrValidation)
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, billing.LineInput{}, fmt.Errorf("line %d: amount must be positive: %w", srNo, apperrors.ErrValidation)
	}

	particulars, err := s.mastersRepo.FindParticularsByID(ctx, r.ParticularsID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, billing.LineInput{}, fmt.Errorf("line %d: particulars %s: %w", srNo, r.ParticularsID, apperrors.ErrInvalidReference)
		}
		return nil, billing.LineInput{}, fmt.Errorf("line %d: failed to validate particulars: %w", srNo, err)
	}

	var other *string
	if particulars.IsOther {
		if r.ParticularsOther == nil || *r.ParticularsOther == "" {
			return nil, billing.LineInput{}, fmt.Errorf("line %d: free-text particulars required for the Other category: %w", srNo, apperrors.ErrValidation)
		}
		other = r.ParticularsOther
	}

	rate, ok := rates[r.GSTRateID]
	if !ok {
		return nil, billing.LineInput{}, fmt.Errorf("line %d: gst rate %s: %w", srNo, r.GSTRateID, apperrors.ErrInvalidReference)
	}

	svc := domain.BillService{
		BillServiceID:    uuid.NewString(),
		BillID:           billID,
		SrNo:             srNo,
		ParticularsID:    r.ParticularsID,
		ParticularsOther: other,
		ServiceDate:      serviceDate,
		ServiceYear:      r.ServiceYear,
		Amount:           r.Amount,
		GSTRateID:        r.GSTRateID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}
	return &svc, billing.LineInput{Amount: r.Amount, Rate: rate.Rate}, nil
}

func (s *billService) GetBillByID(ctx context.Context, billID string) (*domain.BillDetails, error) {
	return s.billRepo.FindBillDetailsByID(ctx, billID)
}

func (s *billService) GetBillByBillNo(ctx context.Context, billNo string) (*domain.BillDetails, error) {
	return s.billRepo.FindBillDetailsByBillNo(ctx, billNo)
}

func (s *billService) ListBills(ctx context.Context, params dto.ListBillsParams) (*dto.ListBillsResponse, error) {
	filter := domain.BillListFilter{
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	if params.Status != "" {
		status := domain.BillStatus(params.Status)
		filter.Status = &status
	}
	if params.HeaderID != "" {
		filter.HeaderID = &params.HeaderID
	}
	if params.ClientID != "" {
		filter.ClientID = &params.ClientID
	}
	if params.PaymentStatus != "" {
		ps := domain.PaymentStatus(params.PaymentStatus)
		filter.PaymentStatus = &ps
	}
	if params.FromDate != "" {
		from, err := time.Parse(dateLayout, params.FromDate)
		if err != nil {
			return nil, fmt.Errorf("invalid from date: %w", apperrors.ErrValidation)
		}
		filter.FromDate = &from
	}
	if params.ToDate != "" {
		to, err := time.Parse(dateLayout, params.ToDate)
		if err != nil {
			return nil, fmt.Errorf("invalid to date: %w", apperrors.ErrValidation)
		}
		filter.ToDate = &to
	}

	bills, total, err := s.billRepo.ListBills(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return &dto.ListBillsResponse{
		Bills:      bills,
		TotalCount: total,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	}, nil
}

// UpdateBill applies a partial update to a DRAFT bill. The bill number and
// financial year never change after creation; a bill date change only moves
// the due date.
func (s *billService) UpdateBill(ctx context.Context, billID string, req dto.UpdateBillRequest, updaterUserID string) (*domain.BillDetails, error) {
	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to find bill %s: %w", billID, err)
	}
	if bill.Status != domain.BillStatusDraft {
		return nil, fmt.Errorf("bill %s is %s: %w", billID, bill.Status, apperrors.ErrStateConflict)
	}

	fields := domain.BillUpdateFields{
		ClientID: req.ClientID,
		Notes:    req.Notes,
	}
	if req.ClientID != nil {
		if err := s.validateClientRef(ctx, *req.ClientID); err != nil {
			return nil, err
		}
	}

	billDate := bill.BillDate
	if req.BillDate != nil {
		parsed, err := time.Parse(dateLayout, *req.BillDate)
		if err != nil {
			return nil, fmt.Errorf("invalid bill date: %w", apperrors.ErrValidation)
		}
		billDate = parsed
		fields.BillDate = &parsed
	}

	termID := bill.PaymentTermID
	if req.PaymentTermID != nil {
		termID = *req.PaymentTermID
		fields.PaymentTermID = req.PaymentTermID
	}

	// Due date follows the bill date and payment term.
	if req.BillDate != nil || req.PaymentTermID != nil {
		term, err := s.mastersRepo.FindPaymentTermByID(ctx, termID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("payment term %s: %w", termID, apperrors.ErrInvalidReference)
			}
			return nil, fmt.Errorf("failed to validate payment term: %w", err)
		}
		due := billing.DueDate(billDate, term.DaysToAdd)
		fields.DueDate = &due
	}

	now := time.Now()
	var services []domain.BillService
	if req.Services != nil {
		built, total, err := s.buildServices(ctx, billID, *req.Services, updaterUserID, now)
		if err != nil {
			return nil, err
		}
		services = built
		fields.TotalInvoiceValue = &total
	}

	if err := s.billRepo.UpdateBill(ctx, billID, fields, services, updaterUserID, now); err != nil {
		return nil, fmt.Errorf("failed to update bill %s: %w", billID, err)
	}
	return s.billRepo.FindBillDetailsByID(ctx, billID)
}

func (s *billService) FinalizeBill(ctx context.Context, billID string, updaterUserID string) (*domain.BillDetails, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.billRepo.FinalizeBill(ctx, billID, updaterUserID, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to finalize bill %s: %w", billID, err)
	}
	logger.Info("Bill finalized", slog.String("bill_id", billID))
	return s.billRepo.FindBillDetailsByID(ctx, billID)
}

// DeleteBill removes a DRAFT bill and its line items. Finalized bills are
// permanent records and cannot be deleted.
func (s *billService) DeleteBill(ctx context.Context, billID string) error {
	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		return fmt.Errorf("failed to find bill %s: %w", billID, err)
	}
	if bill.Status != domain.BillStatusDraft {
		return fmt.Errorf("bill %s is %s: %w", billID, bill.Status, apperrors.ErrStateConflict)
	}
	return s.billRepo.DeleteBill(ctx, billID)
}

// AddService appends one line to a DRAFT bill with sr_no = max(existing)+1.
func (s *billService) AddService(ctx context.Context, billID string, req dto.AddBillServiceRequest, updaterUserID string) (*domain.BillDetails, error) {
	details, err := s.billRepo.FindBillDetailsByID(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to find bill %s: %w", billID, err)
	}
	if details.Status != domain.BillStatusDraft {
		return nil, fmt.Errorf("bill %s is %s: %w", billID, details.Status, apperrors.ErrStateConflict)
	}

	now := time.Now()
	rates, err := s.mastersRepo.FindGSTRatesByIDs(ctx, []string{req.GSTRateID})
	if err != nil {
		return nil, fmt.Errorf("failed to load GST rates: %w", err)
	}
	svc, line, err := s.buildServiceLine(ctx, billID, len(details.Services)+1, req.BillServiceRequest, rates, updaterUserID, now)
	if err != nil {
		return nil, err
	}

	lines := make([]billing.LineInput, 0, len(details.Services)+1)
	for _, existing := range details.Services {
		lines = append(lines, billing.LineInput{Amount: existing.Amount, Rate: existing.GSTRate})
	}
	lines = append(lines, line)

	if _, err := s.billRepo.AddBillService(ctx, billID, *svc, billing.InvoiceTotal(lines)); err != nil {
		return nil, fmt.Errorf("failed to add service to bill %s: %w", billID, err)
	}
	return s.billRepo.FindBillDetailsByID(ctx, billID)
}

// DeleteService removes one line from a DRAFT bill. The last remaining line
// cannot be removed; a bill always carries at least one service.
func (s *billService) DeleteService(ctx context.Context, billID, billServiceID string, updaterUserID string) (*domain.BillDetails, error) {
	details, err := s.billRepo.FindBillDetailsByID(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to find bill %s: %w", billID, err)
	}
	if details.Status != domain.BillStatusDraft {
		return nil, fmt.Errorf("bill %s is %s: %w", billID, details.Status, apperrors.ErrStateConflict)
	}

	found := false
	lines := make([]billing.LineInput, 0, len(details.Services))
	for _, svc := range details.Services {
		if svc.BillServiceID == billServiceID {
			found = true
			continue
		}
		lines = append(lines, billing.LineInput{Amount: svc.Amount, Rate: svc.GSTRate})
	}
	if !found {
		return nil, fmt.Errorf("bill service %s: %w", billServiceID, apperrors.ErrNotFound)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("bill must retain at least one service: %w", apperrors.ErrValidation)
	}

	if err := s.billRepo.DeleteBillService(ctx, billID, billServiceID, billing.InvoiceTotal(lines), updaterUserID, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to delete service %s: %w", billServiceID, err)
	}
	return s.billRepo.FindBillDetailsByID(ctx, billID)
}

// RecordEmailSent appends an EMAIL_SENT row to the bill's audit trail.
func (s *billService) RecordEmailSent(ctx context.Context, billID, actorUserID, outcome string) error {
	if _, err := s.billRepo.FindBillByID(ctx, billID); err != nil {
		return fmt.Errorf("failed to find bill %s: %w", billID, err)
	}
	h := domain.BillHistory{
		HistoryID:   uuid.NewString(),
		BillID:      billID,
		Action:      domain.BillHistoryEmailSent,
		Outcome:     outcome,
		ActorUserID: actorUserID,
		CreatedAt:   time.Now(),
	}
	if err := s.billRepo.SaveBillHistory(ctx, h); err != nil {
		return fmt.Errorf("failed to record email sent for bill %s: %w", billID, err)
	}
	return nil
}

func (s *billService) GetBillHistory(ctx context.Context, billID string) ([]domain.BillHistory, error) {
	if _, err := s.billRepo.FindBillByID(ctx, billID); err != nil {
		return nil, fmt.Errorf("failed to find bill %s: %w", billID, err)
	}
	return s.billRepo.ListBillHistory(ctx, billID)
}
