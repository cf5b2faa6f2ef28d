package repositories

import (
	"context"

	"github.com/gstbill/gst_billing_app/internal/core/domain"
)

// ParticularsRepository manages the billable-service catalog.
type ParticularsRepository interface {
	SaveParticulars(ctx context.Context, p domain.Particulars) error
	FindParticularsByID(ctx context.Context, particularsID string) (*domain.Particulars, error)
	ListParticulars(ctx context.Context) ([]domain.Particulars, error)
	UpdateParticulars(ctx context.Context, p domain.Particulars) error
	DeleteParticulars(ctx context.Context, particularsID string) error

	// CountBillServicesByParticulars reports how many bill lines reference
	// the catalog entry; deletes are blocked while this is non-zero.
	CountBillServicesByParticulars(ctx context.Context, particularsID string) (int64, error)
}

// GSTRateRepository manages configurable tax rates.
type GSTRateRepository interface {
	SaveGSTRate(ctx context.Context, r domain.GSTRate) error
	FindGSTRateByID(ctx context.Context, gstRateID string) (*domain.GSTRate, error)

	// FindGSTRatesByIDs retrieves rates keyed by ID; a missing ID is simply
	// absent from the map.
	FindGSTRatesByIDs(ctx context.Context, gstRateIDs []string) (map[string]domain.GSTRate, error)

	ListGSTRates(ctx context.Context) ([]domain.GSTRate, error)
	UpdateGSTRate(ctx context.Context, r domain.GSTRate) error
	DeleteGSTRate(ctx context.Context, gstRateID string) error
	CountBillServicesByGSTRate(ctx context.Context, gstRateID string) (int64, error)
}

// PaymentTermRepository manages payment terms.
type PaymentTermRepository interface {
	SavePaymentTerm(ctx context.Context, t domain.PaymentTerm) error
	FindPaymentTermByID(ctx context.Context, paymentTermID string) (*domain.PaymentTerm, error)
	ListPaymentTerms(ctx context.Context) ([]domain.PaymentTerm, error)
	UpdatePaymentTerm(ctx context.Context, t domain.PaymentTerm) error
	DeletePaymentTerm(ctx context.Context, paymentTermID string) error
	CountBillsByPaymentTerm(ctx context.Context, paymentTermID string) (int64, error)
}

// MastersRepositoryFacade combines the three reference-table repositories.
type MastersRepositoryFacade interface {
	ParticularsRepository
	GSTRateRepository
	PaymentTermRepository
}
