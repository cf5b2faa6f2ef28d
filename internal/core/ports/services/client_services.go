package services

import (
	"context"

	"github.com/gstbill/gst_billing_app/internal/core/domain"
	"github.com/gstbill/gst_billing_app/internal/dto"
)

// ClientCreateOutcome is the result of a create attempt: either the new
// client, or a duplicate warning with candidate matches when similar names
// exist and the caller has not confirmed.
type ClientCreateOutcome struct {
	Client     *domain.Client
	Candidates []domain.Client
}

// ClientSvcFacade manages the client directory.
type ClientSvcFacade interface {
	// CreateClient inserts a client unless similar active names exist and
	// req.Confirmed is false, in which case the candidates are returned and
	// nothing is written. The check is advisory only.
	CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*ClientCreateOutcome, error)

	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error)

	// SearchClients is the typeahead: requires >= 2 characters, matches
	// case-insensitive substrings of active client names, caps at 10.
	SearchClients(ctx context.Context, q string) ([]domain.Client, error)

	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterUserID string) (*domain.Client, error)

	// DeleteClient soft-deletes (is_active = false).
	DeleteClient(ctx context.Context, clientID string, requestingUserID string) error

	// BulkImportClients processes rows independently: validation failures
	// land in errors, exact case-insensitive name collisions in duplicates,
	// the rest are inserted. Sequential processing makes an in-batch
	// duplicate of a just-imported row land in duplicates.
	BulkImportClients(ctx context.Context, rows []domain.ClientImportRow, importerUserID string) (*domain.ClientImportResult, error)
}
