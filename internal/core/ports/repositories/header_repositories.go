package repositories

import (
	"context"

	"github.com/gstbill/gst_billing_app/internal/core/domain"
)

// HeaderReader defines read operations for issuing-company data
type HeaderReader interface {
	// FindHeaderByID retrieves a header with its bank details.
	FindHeaderByID(ctx context.Context, headerID string) (*domain.Header, error)

	// ListHeaders retrieves all headers with their bank details.
	ListHeaders(ctx context.Context) ([]domain.Header, error)
}

// HeaderWriter defines write operations for issuing-company data
type HeaderWriter interface {
	// SaveHeader persists a new header and, when present, its bank details
	// in one transaction.
	SaveHeader(ctx context.Context, header domain.Header) error

	// UpdateHeader updates an existing header's profile fields.
	UpdateHeader(ctx context.Context, header domain.Header) error

	// UpsertBankDetails inserts or replaces the one-to-one bank profile.
	UpsertBankDetails(ctx context.Context, details domain.HeaderBankDetails) error
}

// HeaderRepositoryFacade combines all header-related repository interfaces
type HeaderRepositoryFacade interface {
	HeaderReader
	HeaderWriter
}
