package services

import (
	"context"

	"github.com/gstbill/gst_billing_app/internal/core/domain"
	"github.com/gstbill/gst_billing_app/internal/dto"
)

// MastersSvcFacade manages the three reference tables. Deletes fail with a
// state-conflict error while the entry is referenced by any bill.
type MastersSvcFacade interface {
	CreateParticulars(ctx context.Context, req dto.CreateParticularsRequest, creatorUserID string) (*domain.Particulars, error)
	ListParticulars(ctx context.Context) ([]domain.Particulars, error)
	UpdateParticulars(ctx context.Context, particularsID string, req dto.UpdateParticularsRequest, updaterUserID string) (*domain.Particulars, error)
	DeleteParticulars(ctx context.Context, particularsID string) error

	CreateGSTRate(ctx context.Context, req dto.CreateGSTRateRequest, creatorUserID string) (*domain.GSTRate, error)
	ListGSTRates(ctx context.Context) ([]domain.GSTRate, error)
	UpdateGSTRate(ctx context.Context, gstRateID string, req dto.UpdateGSTRateRequest, updaterUserID string) (*domain.GSTRate, error)
	DeleteGSTRate(ctx context.Context, gstRateID string) error

	CreatePaymentTerm(ctx context.Context, req dto.CreatePaymentTermRequest, creatorUserID string) (*domain.PaymentTerm, error)
	ListPaymentTerms(ctx context.Context) ([]domain.PaymentTerm, error)
	UpdatePaymentTerm(ctx context.Context, paymentTermID string, req dto.UpdatePaymentTermRequest, updaterUserID string) (*domain.PaymentTerm, error)
	DeletePaymentTerm(ctx context.Context, paymentTermID string) error
}
