package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gstbill/gst_billing_app/internal/apperrors"
	"github.com/gstbill/gst_billing_app/internal/core/domain"
	portsrepo "github.com/gstbill/gst_billing_app/internal/core/ports/repositories"
	portssvc "github.com/gstbill/gst_billing_app/internal/core/ports/services"
	"github.com/gstbill/gst_billing_app/internal/dto"
)

// mastersService manages the three reference tables.
type mastersService struct {
	mastersRepo portsrepo.MastersRepositoryFacade
}

// NewMastersService creates a new mastersService.
func NewMastersService(mastersRepo portsrepo.MastersRepositoryFacade) portssvc.MastersSvcFacade {
	return &mastersService{mastersRepo: mastersRepo}
}

var _ portssvc.MastersSvcFacade = (*mastersService)(nil)

func newAudit(by string) domain.AuditFields {
	now := time.Now()
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     by,
		LastUpdatedAt: now,
		LastUpdatedBy: by,
	}
}

// --- particulars ---

func (s *mastersService) CreateParticulars(ctx context.Context, req dto.CreateParticularsRequest, creatorUserID string) (*domain.Particulars, error) {
	p := domain.Particulars{
		ParticularsID: uuid.NewString(),
		Name:          req.Name,
		IsOther:       req.IsOther,
		AuditFields:   newAudit(creatorUserID),
	}
	if err := s.mastersRepo.SaveParticulars(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create particulars: %w", err)
	}
	return &p, nil
}

func (s *mastersService) ListParticulars(ctx context.Context) ([]domain.Particulars, error) {
	return s.mastersRepo.ListParticulars(ctx)
}

func (s *mastersService) UpdateParticulars(ctx context.Context, particularsID string, req dto.UpdateParticularsRequest, updaterUserID string) (*domain.Particulars, error) {
	p, err := s.mastersRepo.FindParticularsByID(ctx, particularsID)
	if err != nil {
		return nil, fmt.Errorf("failed to find particulars %s: %w", particularsID, err)
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.IsOther != nil {
		p.IsOther = *req.IsOther
	}
	p.LastUpdatedAt = time.Now()
	p.LastUpdatedBy = updaterUserID
	if err := s.mastersRepo.UpdateParticulars(ctx, *p); err != nil {
		return nil, fmt.Errorf("failed to update particulars: %w", err)
	}
	return p, nil
}

// DeleteParticulars refuses while any bill line references the entry.
func (s *mastersService) DeleteParticulars(ctx context.Context, particularsID string) error {
	count, err := s.mastersRepo.CountBillServicesByParticulars(ctx, particularsID)
	if err != nil {
		return fmt.Errorf("failed to count references: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("particulars is referenced by %d bill line(s): %w", count, apperrors.ErrStateConflict)
	}
	return s.mastersRepo.DeleteParticulars(ctx, particularsID)
}

// --- gst rates ---

func (s *mastersService) CreateGSTRate(ctx context.Context, req dto.CreateGSTRateRequest, creatorUserID string) (*domain.GSTRate, error) {
	if req.Rate.IsNegative() {
		return nil, fmt.Errorf("gst rate cannot be negative: %w", apperrors.ErrValidation)
	}
	r := domain.GSTRate{
		GSTRateID:   uuid.NewString(),
		Rate:        req.Rate,
		Description: req.Description,
		AuditFields: newAudit(creatorUserID),
	}
	if err := s.mastersRepo.SaveGSTRate(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to create GST rate: %w", err)
	}
	return &r, nil
}

func (s *mastersService) ListGSTRates(ctx context.Context) ([]domain.GSTRate, error) {
	return s.mastersRepo.ListGSTRates(ctx)
}

func (s *mastersService) UpdateGSTRate(ctx context.Context, gstRateID string, req dto.UpdateGSTRateRequest, updaterUserID string) (*domain.GSTRate, error) {
	r, err := s.mastersRepo.FindGSTRateByID(ctx, gstRateID)
	if err != nil {
		return nil, fmt.Errorf("failed to find GST rate %s: %w", gstRateID, err)
	}
	if req.Rate != nil {
		if req.Rate.IsNegative() {
			return nil, fmt.Errorf("gst rate cannot be negative: %w", apperrors.ErrValidation)
		}
		r.Rate = *req.Rate
	}
	if req.Description != nil {
		r.Description = *req.Description
	}
	r.LastUpdatedAt = time.Now()
	r.LastUpdatedBy = updaterUserID
	if err := s.mastersRepo.UpdateGSTRate(ctx, *r); err != nil {
		return nil, fmt.Errorf("failed to update GST rate: %w", err)
	}
	return r, nil
}

func (s *mastersService) DeleteGSTRate(ctx context.Context, gstRateID string) error {
	count, err := s.mastersRepo.CountBillServicesByGSTRate(ctx, gstRateID)
	if err != nil {
		return fmt.Errorf("failed to count references: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("GST rate is referenced by %d bill line(s): %w", count, apperrors.ErrStateConflict)
	}
	return s.mastersRepo.DeleteGSTRate(ctx, gstRateID)
}

// --- payment terms ---

func (s *mastersService) CreatePaymentTerm(ctx context.Context, req dto.CreatePaymentTermRequest, creatorUserID string) (*domain.PaymentTerm, error) {
	t := domain.PaymentTerm{
		PaymentTermID: uuid.NewString(),
		Name:          req.Name,
		DaysToAdd:     *req.DaysToAdd,
		AuditFields:   newAudit(creatorUserID),
	}
	if err := s.mastersRepo.SavePaymentTerm(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create payment term: %w", err)
	}
	return &t, nil
}

func (s *mastersService) ListPaymentTerms(ctx context.Context) ([]domain.PaymentTerm, error) {
	return s.mastersRepo.ListPaymentTerms(ctx)
}

func (s *mastersService) UpdatePaymentTerm(ctx context.Context, paymentTermID string, req dto.UpdatePaymentTermRequest, updaterUserID string) (*domain.PaymentTerm, error) {
	t, err := s.mastersRepo.FindPaymentTermByID(ctx, paymentTermID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment term %s: %w", paymentTermID, err)
	}
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.DaysToAdd != nil {
		t.DaysToAdd = *req.DaysToAdd
	}
	t.LastUpdatedAt = time.Now()
	t.LastUpdatedBy = updaterUserID
	if err := s.mastersRepo.UpdatePaymentTerm(ctx, *t); err != nil {
		return nil, fmt.Errorf("failed to update payment term: %w", err)
	}
	return t, nil
}

func (s *mastersService) DeletePaymentTerm(ctx context.Context, paymentTermID string) error {
	count, err := s.mastersRepo.CountBillsByPaymentTerm(ctx, paymentTermID)
	if err != nil {
		return fmt.Errorf("failed to count references: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("payment term is referenced by %d bill(s): %w", count, apperrors.ErrStateConflict)
	}
	return s.mastersRepo.DeletePaymentTerm(ctx, paymentTermID)
}
