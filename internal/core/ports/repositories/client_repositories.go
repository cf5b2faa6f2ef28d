package repositories

import (
	"context"
	"time"

	"github.com/gstbill/gst_billing_app/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a specific client by ID.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// FindClients retrieves a paginated list of active clients.
	FindClients(ctx context.Context, limit, offset int) ([]domain.Client, error)

	// FindActiveClientsByFuzzyName runs a case-insensitive "contains" match
	// of name against active clients. The input is matched literally; LIKE
	// metacharacters in it carry no pattern meaning.
	FindActiveClientsByFuzzyName(ctx context.Context, name string) ([]domain.Client, error)

	// FindActiveClientByExactName retrieves the active client whose name
	// matches exactly, case-insensitively. Used by bulk import's hard
	// duplicate check.
	FindActiveClientByExactName(ctx context.Context, name string) (*domain.Client, error)

	// SearchActiveClients is the typeahead query: case-insensitive substring
	// on name, active clients only, capped at limit.
	SearchActiveClients(ctx context.Context, q string, limit int) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates an existing client's details.
	UpdateClient(ctx context.Context, client domain.Client) error
}

// ClientLifecycleManager defines operations for managing client lifecycle
type ClientLifecycleManager interface {
	// DeactivateClient marks a client inactive (soft delete).
	DeactivateClient(ctx context.Context, clientID string, at time.Time, by string) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
	ClientLifecycleManager
}
