package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/gstbill/gst_billing_app/internal/apperrors"
	"github.com/gstbill/gst_billing_app/internal/core/domain"
	portsrepo "github.com/gstbill/gst_billing_app/internal/core/ports/repositories"
	"github.com/gstbill/gst_billing_app/internal/models"
	"github.com/gstbill/gst_billing_app/internal/utils/mapping"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const billPaymentColumns = `payment_id, bill_id, payment_date, amount_paid, notes, recorded_by, created_at`

// MarkPayment holds the bill row lock for the whole transaction, so the
// balance check and the ledger insert cannot interleave with a concurrent
// payment against the same bill.
func (r *PgxPaymentRepository) MarkPayment(ctx context.Context, payment domain.BillPayment) (*domain.BillPayment, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var totalInvoiceValue, totalPaid decimal.Decimal
	err = tx.QueryRow(ctx,
		`SELECT total_invoice_value, total_paid FROM bills WHERE bill_id = $1 FOR UPDATE;`,
		payment.BillID,
	).Scan(&totalInvoiceValue, &totalPaid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("bill %s: %w", payment.BillID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock bill row: %w", err)
	}

	balance := totalInvoiceValue.Sub(totalPaid)
	if payment.AmountPaid.GreaterThan(balance) {
		return nil, fmt.Errorf("payment %s exceeds outstanding balance %s: %w",
			payment.AmountPaid.StringFixed(2), balance.StringFixed(2), apperrors.ErrStateConflict)
	}

	m := mapping.ToModelBillPayment(payment)
	insertQuery := `
        INSERT INTO bill_payments (` + billPaymentColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err = tx.Exec(ctx, insertQuery,
		m.PaymentID,
		m.BillID,
		m.PaymentDate,
		m.AmountPaid,
		m.Notes,
		m.RecordedBy,
		m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payment: %w", apperrors.TranslatePgError(err))
	}

	if err := recomputeBillPaidTx(ctx, tx, payment.BillID); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var billID string
	err = tx.QueryRow(ctx, `SELECT bill_id FROM bill_payments WHERE payment_id = $1;`, paymentID).Scan(&billID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("payment %s: %w", paymentID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to find payment: %w", err)
	}

	// Same lock order as MarkPayment: bill row first, then the ledger.
	if _, err := tx.Exec(ctx, `SELECT 1 FROM bills WHERE bill_id = $1 FOR UPDATE;`, billID); err != nil {
		return fmt.Errorf("failed to lock bill row: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM bill_payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payment %s: %w", paymentID, apperrors.ErrNotFound)
	}

	if err := recomputeBillPaidTx(ctx, tx, billID); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// recomputeBillPaidTx re-derives total_paid and payment_status from the
// ledger sum, inside the caller's transaction. The ledger is the source of
// truth; the bill columns are a cache of it.
func recomputeBillPaidTx(ctx context.Context, tx pgx.Tx, billID string) error {
	query := `
        UPDATE bills b
        SET total_paid = p.total,
            payment_status = CASE
                WHEN p.total <= 0 THEN 'UNPAID'
                WHEN p.total >= b.total_invoice_value THEN 'PAID'
                ELSE 'PARTIAL'
            END
        FROM (
            SELECT COALESCE(SUM(amount_paid), 0) AS total
            FROM bill_payments
            WHERE bill_id = $1
        ) p
        WHERE b.bill_id = $1;
    `
	if _, err := tx.Exec(ctx, query, billID); err != nil {
		return fmt.Errorf("failed to recompute bill paid totals: %w", err)
	}
	return nil
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.BillPayment, error) {
	query := `
        SELECT p.payment_id, p.bill_id, p.payment_date, p.amount_paid, p.notes, p.recorded_by, p.created_at, u.full_name
        FROM bill_payments p
        JOIN users u ON u.user_id = p.recorded_by
        WHERE p.payment_id = $1;
    `
	var m models.BillPayment
	err := r.Pool.QueryRow(ctx, query, paymentID).Scan(
		&m.PaymentID,
		&m.BillID,
		&m.PaymentDate,
		&m.AmountPaid,
		&m.Notes,
		&m.RecordedBy,
		&m.CreatedAt,
		&m.RecordedByName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}
	p := mapping.ToDomainBillPayment(m)
	return &p, nil
}

func (r *PgxPaymentRepository) ListPaymentsByBill(ctx context.Context, billID string) ([]domain.BillPayment, error) {
	query := `
        SELECT p.payment_id, p.bill_id, p.payment_date, p.amount_paid, p.notes, p.recorded_by, p.created_at, u.full_name
        FROM bill_payments p
        JOIN users u ON u.user_id = p.recorded_by
        WHERE p.bill_id = $1
        ORDER BY p.payment_date DESC, p.created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	ms := []models.BillPayment{}
	for rows.Next() {
		var m models.BillPayment
		err := rows.Scan(
			&m.PaymentID,
			&m.BillID,
			&m.PaymentDate,
			&m.AmountPaid,
			&m.Notes,
			&m.RecordedBy,
			&m.CreatedAt,
			&m.RecordedByName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}
	return mapping.ToDomainBillPaymentSlice(ms), nil
}
