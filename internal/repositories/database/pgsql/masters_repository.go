package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gstbill/gst_billing_app/internal/apperrors"
	"github.com/gstbill/gst_billing_app/internal/core/domain"
	portsrepo "github.com/gstbill/gst_billing_app/internal/core/ports/repositories"
	"github.com/gstbill/gst_billing_app/internal/models"
	"github.com/gstbill/gst_billing_app/internal/utils/mapping"
)

// PgxMastersRepository serves the three reference tables: particulars,
// gst_rates and payment_terms.
type PgxMastersRepository struct {
	db *pgxpool.Pool
}

func newPgxMastersRepository(db *pgxpool.Pool) portsrepo.MastersRepositoryFacade {
	return &PgxMastersRepository{db: db}
}

var _ portsrepo.MastersRepositoryFacade = (*PgxMastersRepository)(nil)

const particularsColumns = `particulars_id, name, is_other, created_at, created_by, last_updated_at, last_updated_by`

const gstRateColumns = `gst_rate_id, rate, description, created_at, created_by, last_updated_at, last_updated_by`

const paymentTermColumns = `payment_term_id, name, days_to_add, created_at, created_by, last_updated_at, last_updated_by`

// --- particulars ---

func (r *PgxMastersRepository) SaveParticulars(ctx context.Context, p domain.Particulars) error {
	m := mapping.ToModelParticulars(p)
	query := `
        INSERT INTO particulars (` + particularsColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		m.ParticularsID, m.Name, m.IsOther,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save particulars: %w", apperrors.TranslatePgError(err))
	}
	return nil
}

func (r *PgxMastersRepository) FindParticularsByID(ctx context.Context, particularsID string) (*domain.Particulars, error) {
	query := `
        SELECT particulars_id, name, is_other, created_at, created_by, last_updated_at, last_updated_by
        FROM particulars WHERE particulars_id = $1;
    `
	var m models.Particulars
	err := r.db.QueryRow(ctx, query, particularsID).Scan(
		&m.ParticularsID, &m.Name, &m.IsOther,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find particulars by ID %s: %w", particularsID, err)
	}
	p := mapping.ToDomainParticulars(m)
	return &p, nil
}

func (r *PgxMastersRepository) ListParticulars(ctx context.Context) ([]domain.Particulars, error) {
	query := `
        SELECT particulars_id, name, is_other, created_at, created_by, last_updated_at, last_updated_by
        FROM particulars ORDER BY name ASC;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query particulars: %w", err)
	}
	defer rows.Close()

	ms := []models.Particulars{}
	for rows.Next() {
		var m models.Particulars
		err := rows.Scan(
			&m.ParticularsID, &m.Name, &m.IsOther,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan particulars row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating particulars rows: %w", rows.Err())
	}
	return mapping.ToDomainParticularsSlice(ms), nil
}

func (r *PgxMastersRepository) UpdateParticulars(ctx context.Context, p domain.Particulars) error {
	m := mapping.ToModelParticulars(p)
	query := `
        UPDATE particulars
        SET name = $1, is_other = $2, last_updated_at = $3, last_updated_by = $4
        WHERE particulars_id = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query, m.Name, m.IsOther, m.LastUpdatedAt, m.LastUpdatedBy, m.ParticularsID)
	if err != nil {
		return fmt.Errorf("failed to update particulars: %w", apperrors.TranslatePgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("particulars not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxMastersRepository) DeleteParticulars(ctx context.Context, particularsID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM particulars WHERE particulars_id = $1;`, particularsID)
	if err != nil {
		return fmt.Errorf("failed to delete particulars: %w", apperrors.TranslatePgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("particulars not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxMastersRepository) CountBillServicesByParticulars(ctx context.Context, particularsID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bill_services WHERE particulars_id = $1;`, particularsID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bill services by particulars: %w", err)
	}
	return count, nil
}

// --- gst rates ---

func (r *PgxMastersRepository) SaveGSTRate(ctx context.Context, rate domain.GSTRate) error {
	m := mapping.ToModelGSTRate(rate)
	query := `
        INSERT INTO gst_rates (` + gstRateColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		m.GSTRateID, m.Rate, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save GST rate: %w", apperrors.TranslatePgError(err))
	}
	return nil
}

func (r *PgxMastersRepository) FindGSTRateByID(ctx context.Context, gstRateID string) (*domain.GSTRate, error) {
	query := `
        SELECT gst_rate_id, rate, description, created_at, created_by, last_updated_at, last_updated_by
        FROM gst_rates WHERE gst_rate_id = $1;
    `
	var m models.GSTRate
	err := r.db.QueryRow(ctx, query, gstRateID).Scan(
		&m.GSTRateID, &m.Rate, &m.Description,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find GST rate by ID %s: %w", gstRateID, err)
	}
	g := mapping.ToDomainGSTRate(m)
	return &g, nil
}

func (r *PgxMastersRepository) FindGSTRatesByIDs(ctx context.Context, gstRateIDs []string) (map[string]domain.GSTRate, error) {
	out := make(map[string]domain.GSTRate, len(gstRateIDs))
	if len(gstRateIDs) == 0 {
		return out, nil
	}
	query := `
        SELECT gst_rate_id, rate, description, created_at, created_by, last_updated_at, last_updated_by
        FROM gst_rates WHERE gst_rate_id = ANY($1);
    `
	rows, err := r.db.Query(ctx, query, gstRateIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query GST rates by IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.GSTRate
		err := rows.Scan(
			&m.GSTRateID, &m.Rate, &m.Description,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan GST rate row: %w", err)
		}
		out[m.GSTRateID] = mapping.ToDomainGSTRate(m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating GST rate rows: %w", rows.Err())
	}
	return out, nil
}

func (r *PgxMastersRepository) ListGSTRates(ctx context.Context) ([]domain.GSTRate, error) {
	query := `
        SELECT gst_rate_id, rate, description, created_at, created_by, last_updated_at, last_updated_by
        FROM gst_rates ORDER BY rate ASC;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query GST rates: %w", err)
	}
	defer rows.Close()

	ms := []models.GSTRate{}
	for rows.Next() {
		var m models.GSTRate
		err := rows.Scan(
			&m.GSTRateID, &m.Rate, &m.Description,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan GST rate row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating GST rate rows: %w", rows.Err())
	}
	return mapping.ToDomainGSTRateSlice(ms), nil
}

func (r *PgxMastersRepository) UpdateGSTRate(ctx context.Context, rate domain.GSTRate) error {
	m := mapping.ToModelGSTRate(rate)
	query := `
        UPDATE gst_rates
        SET rate = $1, description = $2, last_updated_at = $3, last_updated_by = $4
        WHERE gst_rate_id = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query, m.Rate, m.Description, m.LastUpdatedAt, m.LastUpdatedBy, m.GSTRateID)
	if err != nil {
		return fmt.Errorf("failed to update GST rate: %w", apperrors.TranslatePgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("GST rate not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxMastersRepository) DeleteGSTRate(ctx context.Context, gstRateID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM gst_rates WHERE gst_rate_id = $1;`, gstRateID)
	if err != nil {
		return fmt.Errorf("failed to delete GST rate: %w", apperrors.TranslatePgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("GST rate not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxMastersRepository) CountBillServicesByGSTRate(ctx context.Context, gstRateID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bill_services WHERE gst_rate_id = $1;`, gstRateID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bill services by GST rate: %w", err)
	}
	return count, nil
}

// --- payment terms ---

func (r *PgxMastersRepository) SavePaymentTerm(ctx context.Context, t domain.PaymentTerm) error {
	m := mapping.ToModelPaymentTerm(t)
	query := `
        INSERT INTO payment_terms (` + paymentTermColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		m.PaymentTermID, m.Name, m.DaysToAdd,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment term: %w", apperrors.TranslatePgError(err))
	}
	return nil
}

func (r *PgxMastersRepository) FindPaymentTermByID(ctx context.Context, paymentTermID string) (*domain.PaymentTerm, error) {
	query := `
        SELECT payment_term_id, name, days_to_add, created_at, created_by, last_updated_at, last_updated_by
        FROM payment_terms WHERE payment_term_id = $1;
    `
	var m models.PaymentTerm
	err := r.db.QueryRow(ctx, query, paymentTermID).Scan(
		&m.PaymentTermID, &m.Name, &m.DaysToAdd,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment term by ID %s: %w", paymentTermID, err)
	}
	t := mapping.ToDomainPaymentTerm(m)
	return &t, nil
}

func (r *PgxMastersRepository) ListPaymentTerms(ctx context.Context) ([]domain.PaymentTerm, error) {
	query := `
        SELECT payment_term_id, name, days_to_add, created_at, created_by, last_updated_at, last_updated_by
        FROM payment_terms ORDER BY days_to_add ASC;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment terms: %w", err)
	}
	defer rows.Close()

	ms := []models.PaymentTerm{}
	for rows.Next() {
		var m models.PaymentTerm
		err := rows.Scan(
			&m.PaymentTermID, &m.Name, &m.DaysToAdd,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment term row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment term rows: %w", rows.Err())
	}
	return mapping.ToDomainPaymentTermSlice(ms), nil
}

func (r *PgxMastersRepository) UpdatePaymentTerm(ctx context.Context, t domain.PaymentTerm) error {
	m := mapping.ToModelPaymentTerm(t)
	query := `
        UPDATE payment_terms
        SET name = $1, days_to_add = $2, last_updated_at = $3, last_updated_by = $4
        WHERE payment_term_id = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query, m.Name, m.DaysToAdd, m.LastUpdatedAt, m.LastUpdatedBy, m.PaymentTermID)
	if err != nil {
		return fmt.Errorf("failed to update payment term: %w", apperrors.TranslatePgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payment term not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxMastersRepository) DeletePaymentTerm(ctx context.Context, paymentTermID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM payment_terms WHERE payment_term_id = $1;`, paymentTermID)
	if err != nil {
		return fmt.Errorf("failed to delete payment term: %w", apperrors.TranslatePgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payment term not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxMastersRepository) CountBillsByPaymentTerm(ctx context.Context, paymentTermID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bills WHERE payment_term_id = $1;`, paymentTermID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bills by payment term: %w", err)
	}
	return count, nil
}
