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

type PgxHeaderRepository struct {
	BaseRepository
}

func newPgxHeaderRepository(pool *pgxpool.Pool) portsrepo.HeaderRepositoryFacade {
	return &PgxHeaderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.HeaderRepositoryFacade = (*PgxHeaderRepository)(nil)

const headerColumns = `header_id, name, code, address, gstin, pan, email, phone, created_at, created_by, last_updated_at, last_updated_by`

const bankDetailColumns = `header_id, bank_name, account_number, ifsc_code, upi_id, upi_qr_image_url`

func scanHeader(row pgx.Row) (*models.Header, error) {
	var m models.Header
	err := row.Scan(
		&m.HeaderID,
		&m.Name,
		&m.Code,
		&m.Address,
		&m.GSTIN,
		&m.PAN,
		&m.Email,
		&m.Phone,
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

// SaveHeader inserts the header and, when present, its bank details in one
// transaction.
func (r *PgxHeaderRepository) SaveHeader(ctx context.Context, header domain.Header) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelHeader(header)
	query := `
        INSERT INTO headers (` + headerColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err = tx.Exec(ctx, query,
		m.HeaderID,
		m.Name,
		m.Code,
		m.Address,
		m.GSTIN,
		m.PAN,
		m.Email,
		m.Phone,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert header: %w", apperrors.TranslatePgError(err))
	}

	if header.Bank != nil {
		if err := upsertBankDetailsTx(ctx, tx, mapping.ToModelHeaderBankDetails(*header.Bank)); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxHeaderRepository) UpdateHeader(ctx context.Context, header domain.Header) error {
	m := mapping.ToModelHeader(header)
	query := `
        UPDATE headers
        SET name = $1, code = $2, address = $3, gstin = $4, pan = $5, email = $6, phone = $7,
            last_updated_at = $8, last_updated_by = $9
        WHERE header_id = $10;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Code,
		m.Address,
		m.GSTIN,
		m.PAN,
		m.Email,
		m.Phone,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.HeaderID,
	)
	if err != nil {
		return fmt.Errorf("failed to update header: %w", apperrors.TranslatePgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("header not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func upsertBankDetailsTx(ctx context.Context, tx pgx.Tx, m models.HeaderBankDetails) error {
	query := `
        INSERT INTO header_bank_details (` + bankDetailColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (header_id) DO UPDATE SET
            bank_name = EXCLUDED.bank_name,
            account_number = EXCLUDED.account_number,
            ifsc_code = EXCLUDED.ifsc_code,
            upi_id = EXCLUDED.upi_id,
            upi_qr_image_url = EXCLUDED.upi_qr_image_url;
    `
	_, err := tx.Exec(ctx, query,
		m.HeaderID,
		m.BankName,
		m.AccountNumber,
		m.IFSCCode,
		m.UPIID,
		m.UPIQRImageURL,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert bank details: %w", apperrors.TranslatePgError(err))
	}
	return nil
}

func (r *PgxHeaderRepository) UpsertBankDetails(ctx context.Context, details domain.HeaderBankDetails) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := upsertBankDetailsTx(ctx, tx, mapping.ToModelHeaderBankDetails(details)); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxHeaderRepository) FindHeaderByID(ctx context.Context, headerID string) (*domain.Header, error) {
	query := `SELECT ` + headerColumns + ` FROM headers WHERE header_id = $1;`
	m, err := scanHeader(r.Pool.QueryRow(ctx, query, headerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find header by ID %s: %w", headerID, err)
	}

	header := mapping.ToDomainHeader(*m)
	bank, err := r.findBankDetails(ctx, headerID)
	if err != nil {
		return nil, err
	}
	header.Bank = bank
	return &header, nil
}

func (r *PgxHeaderRepository) ListHeaders(ctx context.Context) ([]domain.Header, error) {
	query := `SELECT ` + headerColumns + ` FROM headers ORDER BY name ASC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query headers: %w", err)
	}
	defer rows.Close()

	headers := []domain.Header{}
	for rows.Next() {
		m, err := scanHeader(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan header row: %w", err)
		}
		headers = append(headers, mapping.ToDomainHeader(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating header rows: %w", rows.Err())
	}

	bankByHeader, err := r.findAllBankDetails(ctx)
	if err != nil {
		return nil, err
	}
	for i := range headers {
		if bank, ok := bankByHeader[headers[i].HeaderID]; ok {
			b := bank
			headers[i].Bank = &b
		}
	}
	return headers, nil
}

func (r *PgxHeaderRepository) findBankDetails(ctx context.Context, headerID string) (*domain.HeaderBankDetails, error) {
	query := `
        SELECT header_id, bank_name, account_number, ifsc_code, upi_id, upi_qr_image_url
        FROM header_bank_details
        WHERE header_id = $1;
    `
	var m models.HeaderBankDetails
	err := r.Pool.QueryRow(ctx, query, headerID).Scan(
		&m.HeaderID,
		&m.BankName,
		&m.AccountNumber,
		&m.IFSCCode,
		&m.UPIID,
		&m.UPIQRImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find bank details for header %s: %w", headerID, err)
	}
	bank := mapping.ToDomainHeaderBankDetails(m)
	return &bank, nil
}

func (r *PgxHeaderRepository) findAllBankDetails(ctx context.Context) (map[string]domain.HeaderBankDetails, error) {
	query := `
        SELECT header_id, bank_name, account_number, ifsc_code, upi_id, upi_qr_image_url
        FROM header_bank_details;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank details: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.HeaderBankDetails)
	for rows.Next() {
		var m models.HeaderBankDetails
		err := rows.Scan(
			&m.HeaderID,
			&m.BankName,
			&m.AccountNumber,
			&m.IFSCCode,
			&m.UPIID,
			&m.UPIQRImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank details row: %w", err)
		}
		out[m.HeaderID] = mapping.ToDomainHeaderBankDetails(m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bank details rows: %w", rows.Err())
	}
	return out, nil
}
