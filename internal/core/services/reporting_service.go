package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/gstbill/gst_billing_app/internal/apperrors"
	"github.com/gstbill/gst_billing_app/internal/core/domain"
	portsrepo "github.com/gstbill/gst_billing_app/internal/core/ports/repositories"
	portssvc "github.com/gstbill/gst_billing_app/internal/core/ports/services"
	"github.com/gstbill/gst_billing_app/internal/dto"
)

// reportingService aggregates receivables figures over the bill corpus.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func parseReportFilter(params dto.ReportQueryParams) (domain.ReportFilter, error) {
	var f domain.ReportFilter
	if params.FinancialYear != "" {
		f.FinancialYear = &params.FinancialYear
	}
	if params.FromDate != "" {
		from, err := time.Parse(dateLayout, params.FromDate)
		if err != nil {
			return f, fmt.Errorf("invalid from date: %w", apperrors.ErrValidation)
		}
		f.FromDate = &from
	}
	if params.ToDate != "" {
		to, err := time.Parse(dateLayout, params.ToDate)
		if err != nil {
			return f, fmt.Errorf("invalid to date: %w", apperrors.ErrValidation)
		}
		f.ToDate = &to
	}
	if params.Month != 0 {
		if params.Year == 0 {
			return f, fmt.Errorf("month filter requires year: %w", apperrors.ErrValidation)
		}
		f.Month = &params.Month
	}
	if params.Year != 0 {
		f.Year = &params.Year
	}
	if params.HeaderID != "" {
		f.HeaderID = &params.HeaderID
	}
	if params.ClientID != "" {
		f.ClientID = &params.ClientID
	}
	if params.PaymentStatus != "" {
		ps := domain.PaymentStatus(params.PaymentStatus)
		f.PaymentStatus = &ps
	}
	return f, nil
}

// collectionRate is paid/billed*100 rounded to 2 decimals, 0 when nothing
// has been billed.
func collectionRate(paid, billed decimal.Decimal) decimal.Decimal {
	if billed.IsZero() {
		return decimal.Zero
	}
	return paid.Mul(decimal.NewFromInt(100)).Div(billed).Round(2)
}

func (s *reportingService) GetDashboardKPIs(ctx context.Context, params dto.ReportQueryParams) (*domain.DashboardKPIs, error) {
	f, err := parseReportFilter(params)
	if err != nil {
		return nil, err
	}

	totals, err := s.reportingRepo.GetReceivablesTotals(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to load receivables totals: %w", err)
	}
	byHeader, err := s.reportingRepo.GetHeaderBreakdown(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to load header breakdown: %w", err)
	}
	byClient, err := s.reportingRepo.GetClientBreakdown(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to load client breakdown: %w", err)
	}
	aging, err := s.reportingRepo.GetAgingBuckets(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to load aging buckets: %w", err)
	}

	return &domain.DashboardKPIs{
		Summary: domain.ReceivablesSummary{
			BillCount:        totals.BillCount,
			TotalBilled:      totals.Billed,
			TotalPaid:        totals.Paid,
			TotalOutstanding: totals.Outstanding,
			CollectionRate:   collectionRate(totals.Paid, totals.Billed),
		},
		ByHeader:      byHeader,
		ByClient:      byClient,
		AgingAnalysis: aging,
	}, nil
}

func (s *reportingService) GetDetailedReport(ctx context.Context, params dto.ReportQueryParams) ([]domain.BillReportRow, error) {
	f, err := parseReportFilter(params)
	if err != nil {
		return nil, err
	}
	return s.reportingRepo.GetBillReportRows(ctx, f)
}

var billsWorkbookHeaders = []string{
	"Bill No", "Bill Date", "Due Date", "Financial Year", "Company", "Client",
	"Status", "Payment Status", "Invoiced", "Paid", "Outstanding",
}

// ExportBillsWorkbook renders the detailed report into an xlsx workbook with
// one row per bill. The caller owns closing the returned file.
func (s *reportingService) ExportBillsWorkbook(ctx context.Context, params dto.ReportQueryParams) (*excelize.File, error) {
	rows, err := s.GetDetailedReport(ctx, params)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Bills"
	f.SetSheetName("Sheet1", sheet)

	for col, h := range billsWorkbookHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write workbook header: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastCell, _ := excelize.CoordinatesToCellName(len(billsWorkbookHeaders), 1)
		_ = f.SetCellStyle(sheet, "A1", lastCell, headerStyle)
	}

	for i, row := range rows {
		values := []interface{}{
			row.BillNo,
			row.BillDate.Format(dateLayout),
			row.DueDate.Format(dateLayout),
			row.FinancialYear,
			row.HeaderName,
			row.ClientName,
			string(row.Status),
			string(row.PaymentStatus),
			row.Invoiced.InexactFloat64(),
			row.Paid.InexactFloat64(),
			row.Outstanding.InexactFloat64(),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write workbook row %d: %w", i+1, err)
			}
		}
	}

	_ = f.SetColWidth(sheet, "A", "K", 16)
	return f, nil
}
