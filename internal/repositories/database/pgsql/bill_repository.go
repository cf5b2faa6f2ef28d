package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/gstbill/gst_billing_app/internal/apperrors"
	"github.com/gstbill/gst_billing_app/internal/core/domain"
	portsrepo "github.com/gstbill/gst_billing_app/internal/core/ports/repositories"
	"github.com/gstbill/gst_billing_app/internal/models"
	"github.com/gstbill/gst_billing_app/internal/utils/billing"
	"github.com/gstbill/gst_billing_app/internal/utils/mapping"
)

type PgxBillRepository struct {
	BaseRepository
}

func newPgxBillRepository(pool *pgxpool.Pool) portsrepo.BillRepositoryFacade {
	return &PgxBillRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

const billColumns = `bill_id, header_id, client_id, bill_date, payment_term_id, bill_no, bill_seq, financial_year, due_date, status, total_invoice_value, total_paid, payment_status, notes, created_at, created_by, last_updated_at, last_updated_by`

const billServiceColumns = `bill_service_id, bill_id, sr_no, particulars_id, particulars_other, service_date, service_year, amount, gst_rate_id, created_at, created_by, last_updated_at, last_updated_by`

const billHistoryColumns = `history_id, bill_id, action, outcome, actor_user_id, created_at`

// billDetailsSelect joins the bill with its issuing company, payment term,
// creator and optional client. Bank details and line items are fetched
// separately.
const billDetailsSelect = `
    SELECT b.bill_id, b.header_id, b.client_id, b.bill_date, b.payment_term_id, b.bill_no, b.bill_seq,
           b.financial_year, b.due_date, b.status, b.total_invoice_value, b.total_paid, b.payment_status,
           b.notes, b.created_at, b.created_by, b.last_updated_at, b.last_updated_by,
           h.name, h.code, h.address, h.gstin, h.pan, h.email, h.phone,
           pt.name, pt.days_to_add,
           u.full_name,
           c.name, c.contact_person, c.phone, c.email, c.gstin, c.address, c.is_active
    FROM bills b
    JOIN headers h ON h.header_id = b.header_id
    JOIN payment_terms pt ON pt.payment_term_id = b.payment_term_id
    JOIN users u ON u.user_id = b.created_by
    LEFT JOIN clients c ON c.client_id = b.client_id`

func scanBill(row pgx.Row) (*models.Bill, error) {
	var m models.Bill
	err := row.Scan(
		&m.BillID,
		&m.HeaderID,
		&m.ClientID,
		&m.BillDate,
		&m.PaymentTermID,
		&m.BillNo,
		&m.BillSeq,
		&m.FinancialYear,
		&m.DueDate,
		&m.Status,
		&m.TotalInvoiceValue,
		&m.TotalPaid,
		&m.PaymentStatus,
		&m.Notes,
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

func scanBillDetails(row pgx.Row) (*domain.BillDetails, error) {
	var (
		m           models.Bill
		header      models.Header
		ptName      string
		ptDays      int
		createdName string

		clientName    *string
		clientContact *string
		clientPhone   *string
		clientEmail   *string
		clientGSTIN   *string
		clientAddress *string
		clientActive  *bool
	)
	err := row.Scan(
		&m.BillID,
		&m.HeaderID,
		&m.ClientID,
		&m.BillDate,
		&m.PaymentTermID,
		&m.BillNo,
		&m.BillSeq,
		&m.FinancialYear,
		&m.DueDate,
		&m.Status,
		&m.TotalInvoiceValue,
		&m.TotalPaid,
		&m.PaymentStatus,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&header.Name,
		&header.Code,
		&header.Address,
		&header.GSTIN,
		&header.PAN,
		&header.Email,
		&header.Phone,
		&ptName,
		&ptDays,
		&createdName,
		&clientName,
		&clientContact,
		&clientPhone,
		&clientEmail,
		&clientGSTIN,
		&clientAddress,
		&clientActive,
	)
	if err != nil {
		return nil, err
	}

	header.HeaderID = m.HeaderID
	details := domain.BillDetails{
		Bill:          mapping.ToDomainBill(m),
		Header:        mapping.ToDomainHeader(header),
		PaymentTerm:   domain.PaymentTerm{PaymentTermID: m.PaymentTermID, Name: ptName, DaysToAdd: ptDays},
		CreatedByName: createdName,
	}
	if m.ClientID != nil && clientName != nil {
		details.Client = &domain.Client{
			ClientID:      *m.ClientID,
			Name:          *clientName,
			ContactPerson: *clientContact,
			Phone:         *clientPhone,
			Email:         *clientEmail,
			GSTIN:         *clientGSTIN,
			Address:       *clientAddress,
			IsActive:      *clientActive,
		}
	}
	return &details, nil
}

func (r *PgxBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE bill_id = $1;`
	m, err := scanBill(r.Pool.QueryRow(ctx, query, billID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill by ID %s: %w", billID, err)
	}
	b := mapping.ToDomainBill(*m)
	return &b, nil
}

func (r *PgxBillRepository) FindBillDetailsByID(ctx context.Context, billID string) (*domain.BillDetails, error) {
	details, err := scanBillDetails(r.Pool.QueryRow(ctx, billDetailsSelect+` WHERE b.bill_id = $1;`, billID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill details by ID %s: %w", billID, err)
	}
	return r.hydrateBillDetails(ctx, details)
}

func (r *PgxBillRepository) FindBillDetailsByBillNo(ctx context.Context, billNo string) (*domain.BillDetails, error) {
	details, err := scanBillDetails(r.Pool.QueryRow(ctx, billDetailsSelect+` WHERE b.bill_no = $1;`, billNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill details by bill no %s: %w", billNo, err)
	}
	return r.hydrateBillDetails(ctx, details)
}

// hydrateBillDetails attaches the header's bank profile and the ordered line
// items to a scanned bill.
func (r *PgxBillRepository) hydrateBillDetails(ctx context.Context, details *domain.BillDetails) (*domain.BillDetails, error) {
	bankQuery := `
        SELECT header_id, bank_name, account_number, ifsc_code, upi_id, upi_qr_image_url
        FROM header_bank_details WHERE header_id = $1;
    `
	var bank models.HeaderBankDetails
	err := r.Pool.QueryRow(ctx, bankQuery, details.HeaderID).Scan(
		&bank.HeaderID,
		&bank.BankName,
		&bank.AccountNumber,
		&bank.IFSCCode,
		&bank.UPIID,
		&bank.UPIQRImageURL,
	)
	switch {
	case err == nil:
		b := mapping.ToDomainHeaderBankDetails(bank)
		details.Header.Bank = &b
	case errors.Is(err, pgx.ErrNoRows):
		// header without a bank profile, nothing to attach
	default:
		return nil, fmt.Errorf("failed to find bank details for bill %s: %w", details.BillID, err)
	}

	services, err := r.findBillServices(ctx, details.BillID)
	if err != nil {
		return nil, err
	}
	details.Services = services
	return details, nil
}

func (r *PgxBillRepository) findBillServices(ctx context.Context, billID string) ([]domain.BillServiceDetail, error) {
	query := `
        SELECT s.bill_service_id, s.bill_id, s.sr_no, s.particulars_id, s.particulars_other,
               s.service_date, s.service_year, s.amount, s.gst_rate_id,
               s.created_at, s.created_by, s.last_updated_at, s.last_updated_by,
               p.name, g.rate
        FROM bill_services s
        JOIN particulars p ON p.particulars_id = s.particulars_id
        JOIN gst_rates g ON g.gst_rate_id = s.gst_rate_id
        WHERE s.bill_id = $1
        ORDER BY s.sr_no ASC;
    `
	rows, err := r.Pool.Query(ctx, query, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bill services: %w", err)
	}
	defer rows.Close()

	ms := []models.BillService{}
	for rows.Next() {
		var m models.BillService
		err := rows.Scan(
			&m.BillServiceID,
			&m.BillID,
			&m.SrNo,
			&m.ParticularsID,
			&m.ParticularsOther,
			&m.ServiceDate,
			&m.ServiceYear,
			&m.Amount,
			&m.GSTRateID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.ParticularsName,
			&m.GSTRate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill service row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bill service rows: %w", rows.Err())
	}
	return mapping.ToDomainBillServiceDetailSlice(ms), nil
}

func (r *PgxBillRepository) ListBills(ctx context.Context, filter domain.BillListFilter) ([]domain.BillDetails, int64, error) {
	conditions := []string{}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Status != nil {
		conditions = append(conditions, "b.status = "+arg(string(*filter.Status)))
	}
	if filter.HeaderID != nil {
		conditions = append(conditions, "b.header_id = "+arg(*filter.HeaderID))
	}
	if filter.ClientID != nil {
		conditions = append(conditions, "b.client_id = "+arg(*filter.ClientID))
	}
	if filter.PaymentStatus != nil {
		conditions = append(conditions, "b.payment_status = "+arg(string(*filter.PaymentStatus)))
	}
	if filter.FromDate != nil {
		conditions = append(conditions, "b.bill_date >= "+arg(*filter.FromDate))
	}
	if filter.ToDate != nil {
		conditions = append(conditions, "b.bill_date <= "+arg(*filter.ToDate))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM bills b` + where + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count bills: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	pageQuery := billDetailsSelect + where +
		` ORDER BY b.created_at DESC LIMIT ` + arg(limit) + ` OFFSET ` + arg(offset) + `;`

	rows, err := r.Pool.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query bills: %w", err)
	}
	defer rows.Close()

	bills := []domain.BillDetails{}
	for rows.Next() {
		details, err := scanBillDetails(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan bill row: %w", err)
		}
		bills = append(bills, *details)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating bill rows: %w", rows.Err())
	}
	return bills, total, nil
}

// CreateBill assigns the bill sequence under a lock on the header row so two
// concurrent creates for the same header and financial year can never take
// the same number, then inserts the bill and its line items.
func (r *PgxBillRepository) CreateBill(ctx context.Context, bill domain.Bill, services []domain.BillService) (*domain.Bill, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var headerCode string
	err = tx.QueryRow(ctx, `SELECT code FROM headers WHERE header_id = $1 FOR UPDATE;`, bill.HeaderID).Scan(&headerCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("header %s: %w", bill.HeaderID, apperrors.ErrInvalidReference)
		}
		return nil, fmt.Errorf("failed to lock header row: %w", err)
	}

	var seq int
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(bill_seq), 0) + 1 FROM bills WHERE header_id = $1 AND financial_year = $2;`,
		bill.HeaderID, bill.FinancialYear,
	).Scan(&seq)
	if err != nil {
		return nil, fmt.Errorf("failed to compute bill sequence: %w", err)
	}

	bill.BillSeq = seq
	bill.BillNo = billing.BillNumber(headerCode, bill.FinancialYear, seq)

	m := mapping.ToModelBill(bill)
	billQuery := `
        INSERT INTO bills (` + billColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
    `
	_, err = tx.Exec(ctx, billQuery,
		m.BillID,
		m.HeaderID,
		m.ClientID,
		m.BillDate,
		m.PaymentTermID,
		m.BillNo,
		m.BillSeq,
		m.FinancialYear,
		m.DueDate,
		m.Status,
		m.TotalInvoiceValue,
		m.TotalPaid,
		m.PaymentStatus,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert bill %s: %w", m.BillID, apperrors.TranslatePgError(err))
	}

	if err := insertBillServicesTx(ctx, tx, services); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &bill, nil
}

func insertBillServicesTx(ctx context.Context, tx pgx.Tx, services []domain.BillService) error {
	if len(services) == 0 {
		return nil
	}
	query := `
        INSERT INTO bill_services (` + billServiceColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	batch := &pgx.Batch{}
	for _, svc := range services {
		m := mapping.ToModelBillService(svc)
		batch.Queue(query,
			m.BillServiceID,
			m.BillID,
			m.SrNo,
			m.ParticularsID,
			m.ParticularsOther,
			m.ServiceDate,
			m.ServiceYear,
			m.Amount,
			m.GSTRateID,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	defer br.Close()
	for range services {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to insert bill service: %w", apperrors.TranslatePgError(err))
		}
	}
	return nil
}

// lockDraftBill locks the bill row and verifies it is still mutable.
func lockDraftBill(ctx context.Context, tx pgx.Tx, billID string) error {
	var status string
	err := tx.QueryRow(ctx, `SELECT status FROM bills WHERE bill_id = $1 FOR UPDATE;`, billID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("bill %s: %w", billID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to lock bill row: %w", err)
	}
	if status != string(domain.BillStatusDraft) {
		return fmt.Errorf("bill %s is %s: %w", billID, status, apperrors.ErrStateConflict)
	}
	return nil
}

func (r *PgxBillRepository) UpdateBill(ctx context.Context, billID string, fields domain.BillUpdateFields, services []domain.BillService, updatedBy string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := lockDraftBill(ctx, tx, billID); err != nil {
		return err
	}

	// Nil fields keep their stored values; no column is ever overwritten
	// with NULL by omission.
	query := `
        UPDATE bills
        SET client_id = COALESCE($1, client_id),
            bill_date = COALESCE($2, bill_date),
            payment_term_id = COALESCE($3, payment_term_id),
            due_date = COALESCE($4, due_date),
            notes = COALESCE($5, notes),
            last_updated_at = $6,
            last_updated_by = $7
        WHERE bill_id = $8;
    `
	_, err = tx.Exec(ctx, query,
		fields.ClientID,
		fields.BillDate,
		fields.PaymentTermID,
		fields.DueDate,
		fields.Notes,
		updatedAt,
		updatedBy,
		billID,
	)
	if err != nil {
		return fmt.Errorf("failed to update bill %s: %w", billID, apperrors.TranslatePgError(err))
	}

	if services != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM bill_services WHERE bill_id = $1;`, billID); err != nil {
			return fmt.Errorf("failed to clear bill services: %w", err)
		}
		if err := insertBillServicesTx(ctx, tx, services); err != nil {
			return err
		}
	}

	if fields.TotalInvoiceValue != nil {
		if err := updateBillTotalTx(ctx, tx, billID, *fields.TotalInvoiceValue, updatedBy, updatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxBillRepository) FinalizeBill(ctx context.Context, billID string, updatedBy string, updatedAt time.Time) error {
	query := `
        UPDATE bills
        SET status = $1, last_updated_at = $2, last_updated_by = $3
        WHERE bill_id = $4 AND status = $5;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		string(domain.BillStatusFinalized), updatedAt, updatedBy,
		billID, string(domain.BillStatusDraft),
	)
	if err != nil {
		return fmt.Errorf("failed to finalize bill %s: %w", billID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("bill %s not found or not draft: %w", billID, apperrors.ErrStateConflict)
	}
	return nil
}

func (r *PgxBillRepository) DeleteBill(ctx context.Context, billID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM bills WHERE bill_id = $1;`, billID)
	if err != nil {
		return fmt.Errorf("failed to delete bill %s: %w", billID, apperrors.TranslatePgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("bill %s: %w", billID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxBillRepository) AddBillService(ctx context.Context, billID string, svc domain.BillService, newTotal decimal.Decimal) (*domain.BillService, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	if err := lockDraftBill(ctx, tx, billID); err != nil {
		return nil, err
	}

	var nextSrNo int
	err = tx.QueryRow(ctx, `SELECT COALESCE(MAX(sr_no), 0) + 1 FROM bill_services WHERE bill_id = $1;`, billID).Scan(&nextSrNo)
	if err != nil {
		return nil, fmt.Errorf("failed to compute next sr_no: %w", err)
	}
	svc.BillID = billID
	svc.SrNo = nextSrNo

	if err := insertBillServicesTx(ctx, tx, []domain.BillService{svc}); err != nil {
		return nil, err
	}

	if err := updateBillTotalTx(ctx, tx, billID, newTotal, svc.LastUpdatedBy, svc.LastUpdatedAt); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *PgxBillRepository) DeleteBillService(ctx context.Context, billID, billServiceID string, newTotal decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := lockDraftBill(ctx, tx, billID); err != nil {
		return err
	}

	cmdTag, err := tx.Exec(ctx,
		`DELETE FROM bill_services WHERE bill_service_id = $1 AND bill_id = $2;`,
		billServiceID, billID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete bill service %s: %w", billServiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("bill service %s: %w", billServiceID, apperrors.ErrNotFound)
	}

	if err := updateBillTotalTx(ctx, tx, billID, newTotal, updatedBy, updatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// updateBillTotalTx stores a recomputed invoice total and re-derives the
// payment status against the already-recorded payments. Every path that
// changes a bill's total must come through here, otherwise the stored
// payment_status can contradict total_paid. Callers hold the bill row lock.
func updateBillTotalTx(ctx context.Context, tx pgx.Tx, billID string, newTotal decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	var totalPaid decimal.Decimal
	if err := tx.QueryRow(ctx, `SELECT total_paid FROM bills WHERE bill_id = $1;`, billID).Scan(&totalPaid); err != nil {
		return fmt.Errorf("failed to read bill total_paid: %w", err)
	}

	query := `
        UPDATE bills
        SET total_invoice_value = $1,
            payment_status = $2,
            last_updated_at = $3,
            last_updated_by = $4
        WHERE bill_id = $5;
    `
	status := billing.PaymentStatusFor(totalPaid, newTotal)
	if _, err := tx.Exec(ctx, query, newTotal, string(status), updatedAt, updatedBy, billID); err != nil {
		return fmt.Errorf("failed to update bill total: %w", err)
	}
	return nil
}

func (r *PgxBillRepository) SaveBillHistory(ctx context.Context, h domain.BillHistory) error {
	query := `
        INSERT INTO bill_history (` + billHistoryColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.Pool.Exec(ctx, query,
		h.HistoryID, h.BillID, string(h.Action), h.Outcome, h.ActorUserID, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save bill history: %w", apperrors.TranslatePgError(err))
	}
	return nil
}

func (r *PgxBillRepository) ListBillHistory(ctx context.Context, billID string) ([]domain.BillHistory, error) {
	query := `
        SELECT history_id, bill_id, action, outcome, actor_user_id, created_at
        FROM bill_history
        WHERE bill_id = $1
        ORDER BY created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bill history: %w", err)
	}
	defer rows.Close()

	out := []domain.BillHistory{}
	for rows.Next() {
		var m models.BillHistory
		err := rows.Scan(&m.HistoryID, &m.BillID, &m.Action, &m.Outcome, &m.ActorUserID, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill history row: %w", err)
		}
		out = append(out, mapping.ToDomainBillHistory(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bill history rows: %w", rows.Err())
	}
	return out, nil
}
