package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gstbill/gst_billing_app/internal/core/domain"
	portsrepo "github.com/gstbill/gst_billing_app/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// billFilterClause renders a ReportFilter into a WHERE fragment over the
// bills table aliased as b, with positional args.
func billFilterClause(f domain.ReportFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.FinancialYear != nil {
		conditions = append(conditions, "b.financial_year = "+arg(*f.FinancialYear))
	}
	if f.FromDate != nil {
		conditions = append(conditions, "b.bill_date >= "+arg(*f.FromDate))
	}
	if f.ToDate != nil {
		conditions = append(conditions, "b.bill_date <= "+arg(*f.ToDate))
	}
	if f.Month != nil {
		conditions = append(conditions, "EXTRACT(MONTH FROM b.bill_date) = "+arg(*f.Month))
	}
	if f.Year != nil {
		conditions = append(conditions, "EXTRACT(YEAR FROM b.bill_date) = "+arg(*f.Year))
	}
	if f.HeaderID != nil {
		conditions = append(conditions, "b.header_id = "+arg(*f.HeaderID))
	}
	if f.ClientID != nil {
		conditions = append(conditions, "b.client_id = "+arg(*f.ClientID))
	}
	if f.PaymentStatus != nil {
		conditions = append(conditions, "b.payment_status = "+arg(string(*f.PaymentStatus)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *reportingRepository) GetReceivablesTotals(ctx context.Context, f domain.ReportFilter) (*portsrepo.ReceivablesTotals, error) {
	where, args := billFilterClause(f)
	query := `
        SELECT
            COUNT(*),
            COALESCE(SUM(b.total_invoice_value), 0),
            COALESCE(SUM(b.total_paid), 0),
            COALESCE(SUM(b.total_invoice_value - b.total_paid), 0)
        FROM bills b` + where + `;
    `
	var totals portsrepo.ReceivablesTotals
	err := r.Pool.QueryRow(ctx, query, args...).Scan(
		&totals.BillCount,
		&totals.Billed,
		&totals.Paid,
		&totals.Outstanding,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying receivables totals: %w", err)
	}
	return &totals, nil
}

func (r *reportingRepository) GetHeaderBreakdown(ctx context.Context, f domain.ReportFilter) ([]domain.PartyBreakdownRow, error) {
	where, args := billFilterClause(f)
	query := `
        SELECT
            h.header_id,
            h.name,
            COUNT(*),
            COALESCE(SUM(b.total_invoice_value), 0),
            COALESCE(SUM(b.total_paid), 0),
            COALESCE(SUM(b.total_invoice_value - b.total_paid), 0) AS outstanding
        FROM bills b
        JOIN headers h ON h.header_id = b.header_id` + where + `
        GROUP BY h.header_id, h.name
        ORDER BY outstanding DESC;
    `
	return r.queryBreakdown(ctx, query, args)
}

// GetClientBreakdown skips bills without a client; a walk-in bill has no
// party to attribute the receivable to.
func (r *reportingRepository) GetClientBreakdown(ctx context.Context, f domain.ReportFilter) ([]domain.PartyBreakdownRow, error) {
	where, args := billFilterClause(f)
	if where == "" {
		where = " WHERE b.client_id IS NOT NULL"
	} else {
		where += " AND b.client_id IS NOT NULL"
	}
	query := `
        SELECT
            c.client_id,
            c.name,
            COUNT(*),
            COALESCE(SUM(b.total_invoice_value), 0),
            COALESCE(SUM(b.total_paid), 0),
            COALESCE(SUM(b.total_invoice_value - b.total_paid), 0) AS outstanding
        FROM bills b
        JOIN clients c ON c.client_id = b.client_id` + where + `
        GROUP BY c.client_id, c.name
        ORDER BY outstanding DESC
        LIMIT 10;
    `
	return r.queryBreakdown(ctx, query, args)
}

func (r *reportingRepository) queryBreakdown(ctx context.Context, query string, args []interface{}) ([]domain.PartyBreakdownRow, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying party breakdown: %w", err)
	}
	defer rows.Close()

	result := []domain.PartyBreakdownRow{}
	for rows.Next() {
		var row domain.PartyBreakdownRow
		err := rows.Scan(
			&row.PartyID,
			&row.PartyName,
			&row.BillCount,
			&row.Billed,
			&row.Paid,
			&row.Outstanding,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning breakdown row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating breakdown rows: %w", err)
	}
	return result, nil
}

// GetAgingBuckets considers only overdue bills that still carry a balance.
func (r *reportingRepository) GetAgingBuckets(ctx context.Context, f domain.ReportFilter) ([]domain.AgingBucket, error) {
	where, args := billFilterClause(f)
	overdue := "b.payment_status IN ('UNPAID', 'PARTIAL') AND b.due_date < CURRENT_DATE"
	if where == "" {
		where = " WHERE " + overdue
	} else {
		where += " AND " + overdue
	}

	query := `
        SELECT
            CASE
                WHEN CURRENT_DATE - b.due_date <= 30 THEN '0-30'
                WHEN CURRENT_DATE - b.due_date <= 60 THEN '31-60'
                WHEN CURRENT_DATE - b.due_date <= 90 THEN '61-90'
                ELSE '90+'
            END AS bucket,
            COUNT(*),
            COALESCE(SUM(b.total_invoice_value - b.total_paid), 0)
        FROM bills b` + where + `
        GROUP BY bucket;
    `
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying aging buckets: %w", err)
	}
	defer rows.Close()

	byLabel := map[string]domain.AgingBucket{}
	for rows.Next() {
		var b domain.AgingBucket
		if err := rows.Scan(&b.Label, &b.BillCount, &b.Outstanding); err != nil {
			return nil, fmt.Errorf("error scanning aging bucket row: %w", err)
		}
		byLabel[b.Label] = b
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating aging bucket rows: %w", err)
	}

	// Every bucket is always present in the output, zeroed when empty.
	result := make([]domain.AgingBucket, 0, 4)
	for _, label := range []string{"0-30", "31-60", "61-90", "90+"} {
		if b, ok := byLabel[label]; ok {
			result = append(result, b)
		} else {
			result = append(result, domain.AgingBucket{Label: label})
		}
	}
	return result, nil
}

func (r *reportingRepository) GetBillReportRows(ctx context.Context, f domain.ReportFilter) ([]domain.BillReportRow, error) {
	where, args := billFilterClause(f)
	query := `
        SELECT
            b.bill_no,
            b.bill_date,
            b.due_date,
            b.financial_year,
            h.name,
            COALESCE(c.name, ''),
            b.status,
            b.payment_status,
            b.total_invoice_value,
            b.total_paid,
            b.total_invoice_value - b.total_paid
        FROM bills b
        JOIN headers h ON h.header_id = b.header_id
        LEFT JOIN clients c ON c.client_id = b.client_id` + where + `
        ORDER BY b.bill_date DESC, b.bill_no DESC;
    `
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying bill report rows: %w", err)
	}
	defer rows.Close()

	result := []domain.BillReportRow{}
	for rows.Next() {
		var row domain.BillReportRow
		var status, paymentStatus string
		err := rows.Scan(
			&row.BillNo,
			&row.BillDate,
			&row.DueDate,
			&row.FinancialYear,
			&row.HeaderName,
			&row.ClientName,
			&status,
			&paymentStatus,
			&row.Invoiced,
			&row.Paid,
			&row.Outstanding,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning bill report row: %w", err)
		}
		row.Status = domain.BillStatus(status)
		row.PaymentStatus = domain.PaymentStatus(paymentStatus)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bill report rows: %w", err)
	}
	return result, nil
}
