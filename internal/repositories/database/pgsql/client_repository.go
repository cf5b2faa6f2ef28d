package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gstbill/gst_billing_app/internal/apperrors"
	"github.com/gstbill/gst_billing_app/internal/core/domain"
	portsrepo "github.com/gstbill/gst_billing_app/internal/core/ports/repositories"
	"github.com/gstbill/gst_billing_app/internal/models"
	"github.com/gstbill/gst_billing_app/internal/utils"
	"github.com/gstbill/gst_billing_app/internal/utils/mapping"
)

type PgxClientRepository struct {
	db *pgxpool.Pool
}

func newPgxClientRepository(db *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{db: db}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const clientColumns = `client_id, name, contact_person, phone, email, gstin, address, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanClient(row pgx.Row) (*models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.Name,
		&m.ContactPerson,
		&m.Phone,
		&m.Email,
		&m.GSTIN,
		&m.Address,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxClientRepository) collectClients(rows pgx.Rows) ([]domain.Client, error) {
	defer rows.Close()
	modelClients := []models.Client{}
	for rows.Next() {
		m, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		modelClients = append(modelClients, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", rows.Err())
	}
	return mapping.ToDomainClientSlice(modelClients), nil
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
        INSERT INTO clients (` + clientColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.db.Exec(ctx, query,
		m.ClientID,
		m.Name,
		m.ContactPerson,
		m.Phone,
		m.Email,
		m.GSTIN,
		m.Address,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save client: %w", apperrors.TranslatePgError(err))
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`
	m, err := scanClient(r.db.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}
	c := mapping.ToDomainClient(*m)
	return &c, nil
}

func (r *PgxClientRepository) FindClients(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `
        SELECT ` + clientColumns + `
        FROM clients
        WHERE is_active = TRUE
        ORDER BY name ASC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	return r.collectClients(rows)
}

// FindActiveClientsByFuzzyName matches the name literally; LIKE
// metacharacters in the input are escaped before the pattern is formed.
func (r *PgxClientRepository) FindActiveClientsByFuzzyName(ctx context.Context, name string) ([]domain.Client, error) {
	pattern := "%" + utils.EscapeLikePattern(name) + "%"
	query := `
        SELECT ` + clientColumns + `
        FROM clients
        WHERE is_active = TRUE AND name ILIKE $1 ESCAPE '\'
        ORDER BY name ASC;
    `
	rows, err := r.db.Query(ctx, query, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients by fuzzy name: %w", err)
	}
	return r.collectClients(rows)
}

func (r *PgxClientRepository) FindActiveClientByExactName(ctx context.Context, name string) (*domain.Client, error) {
	query := `
        SELECT ` + clientColumns + `
        FROM clients
        WHERE is_active = TRUE AND lower(name) = lower($1)
        LIMIT 1;
    `
	m, err := scanClient(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by exact name: %w", err)
	}
	c := mapping.ToDomainClient(*m)
	return &c, nil
}

func (r *PgxClientRepository) SearchActiveClients(ctx context.Context, q string, limit int) ([]domain.Client, error) {
	if limit <= 0 {
		limit = 10
	}
	pattern := "%" + utils.EscapeLikePattern(q) + "%"
	query := `
        SELECT ` + clientColumns + `
        FROM clients
        WHERE is_active = TRUE AND name ILIKE $1 ESCAPE '\'
        ORDER BY name ASC
        LIMIT $2;
    `
	rows, err := r.db.Query(ctx, query, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}
	return r.collectClients(rows)
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
        UPDATE clients
        SET name = $1, contact_person = $2, phone = $3, email = $4, gstin = $5, address = $6,
            last_updated_at = $7, last_updated_by = $8
        WHERE client_id = $9 AND is_active = TRUE;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.ContactPerson,
		m.Phone,
		m.Email,
		m.GSTIN,
		m.Address,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ClientID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", apperrors.TranslatePgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("client not found or inactive: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxClientRepository) DeactivateClient(ctx context.Context, clientID string, at time.Time, by string) error {
	query := `
        UPDATE clients
        SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
        WHERE client_id = $3 AND is_active = TRUE;
    `
	cmdTag, err := r.db.Exec(ctx, query, at, by, clientID)
	if err != nil {
		return fmt.Errorf("failed to deactivate client: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("client not found or already inactive: %w", apperrors.ErrNotFound)
	}
	return nil
}
