package services

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/gstbill/gst_billing_app/internal/core/domain"
	"github.com/gstbill/gst_billing_app/internal/dto"
)

// ReportingSvcFacade aggregates receivables figures over the bill corpus.
type ReportingSvcFacade interface {
	// GetDashboardKPIs computes the receivables summary, party/header
	// breakdowns and the aging distribution for the given filter window.
	GetDashboardKPIs(ctx context.Context, params dto.ReportQueryParams) (*domain.DashboardKPIs, error)

	// GetDetailedReport returns per-bill rows for the filter window.
	GetDetailedReport(ctx context.Context, params dto.ReportQueryParams) ([]domain.BillReportRow, error)

	// ExportBillsWorkbook builds an xlsx workbook from the detailed
	// report rows. The caller owns closing the returned file.
	ExportBillsWorkbook(ctx context.Context, params dto.ReportQueryParams) (*excelize.File, error)
}
