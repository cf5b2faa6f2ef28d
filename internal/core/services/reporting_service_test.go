package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gstbill/gst_billing_app/internal/apperrors"
	"github.com/gstbill/gst_billing_app/internal/core/domain"
	portsrepo "github.com/gstbill/gst_billing_app/internal/core/ports/repositories"
	portssvc "github.com/gstbill/gst_billing_app/internal/core/ports/services"
	"github.com/gstbill/gst_billing_app/internal/core/services"
	"github.com/gstbill/gst_billing_app/internal/dto"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func (suite *ReportingServiceTestSuite) TestGetDashboardKPIs_ComputesCollectionRate() {
	ctx := context.Background()

	totals := &portsrepo.ReceivablesTotals{
		BillCount:   3,
		Billed:      decimal.RequireFromString("3000.00"),
		Paid:        decimal.RequireFromString("1000.00"),
		Outstanding: decimal.RequireFromString("2000.00"),
	}
	suite.mockRepo.On("GetReceivablesTotals", ctx, mock.AnythingOfType("domain.ReportFilter")).Return(totals, nil).Once()
	suite.mockRepo.On("GetHeaderBreakdown", ctx, mock.AnythingOfType("domain.ReportFilter")).Return([]domain.PartyBreakdownRow{}, nil).Once()
	suite.mockRepo.On("GetClientBreakdown", ctx, mock.AnythingOfType("domain.ReportFilter")).Return([]domain.PartyBreakdownRow{}, nil).Once()
	suite.mockRepo.On("GetAgingBuckets", ctx, mock.AnythingOfType("domain.ReportFilter")).Return([]domain.AgingBucket{}, nil).Once()

	kpis, err := suite.service.GetDashboardKPIs(ctx, dto.ReportQueryParams{})

	suite.Require().NoError(err)
	suite.Require().NotNil(kpis)
	suite.Equal(int64(3), kpis.Summary.BillCount)
	suite.True(kpis.Summary.CollectionRate.Equal(decimal.RequireFromString("33.33")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetDashboardKPIs_ZeroBilledHasZeroRate() {
	ctx := context.Background()

	totals := &portsrepo.ReceivablesTotals{
		Billed:      decimal.Zero,
		Paid:        decimal.Zero,
		Outstanding: decimal.Zero,
	}
	suite.mockRepo.On("GetReceivablesTotals", ctx, mock.AnythingOfType("domain.ReportFilter")).Return(totals, nil).Once()
	suite.mockRepo.On("GetHeaderBreakdown", ctx, mock.AnythingOfType("domain.ReportFilter")).Return([]domain.PartyBreakdownRow{}, nil).Once()
	suite.mockRepo.On("GetClientBreakdown", ctx, mock.AnythingOfType("domain.ReportFilter")).Return([]domain.PartyBreakdownRow{}, nil).Once()
	suite.mockRepo.On("GetAgingBuckets", ctx, mock.AnythingOfType("domain.ReportFilter")).Return([]domain.AgingBucket{}, nil).Once()

	kpis, err := suite.service.GetDashboardKPIs(ctx, dto.ReportQueryParams{})

	suite.Require().NoError(err)
	suite.True(kpis.Summary.CollectionRate.IsZero())
}

func (suite *ReportingServiceTestSuite) TestGetDashboardKPIs_MonthWithoutYearRejected() {
	ctx := context.Background()

	kpis, err := suite.service.GetDashboardKPIs(ctx, dto.ReportQueryParams{Month: 6})

	suite.Require().Error(err)
	suite.Nil(kpis)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetReceivablesTotals", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestGetDetailedReport_PassesFilter() {
	ctx := context.Background()
	fy := "2024-25"

	suite.mockRepo.On("GetBillReportRows", ctx, mock.MatchedBy(func(f domain.ReportFilter) bool {
		return f.FinancialYear != nil && *f.FinancialYear == fy
	})).Return([]domain.BillReportRow{{BillNo: "ACME/2024-25/0001"}}, nil).Once()

	rows, err := suite.service.GetDetailedReport(ctx, dto.ReportQueryParams{FinancialYear: fy})

	suite.Require().NoError(err)
	suite.Len(rows, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestExportBillsWorkbook_WritesHeaderAndRows() {
	ctx := context.Background()

	suite.mockRepo.On("GetBillReportRows", ctx, mock.AnythingOfType("domain.ReportFilter")).
		Return([]domain.BillReportRow{
			{
				BillNo:        "ACME/2024-25/0001",
				FinancialYear: "2024-25",
				HeaderName:    "Acme Associates",
				ClientName:    "Acme Traders",
				Status:        domain.BillStatusFinalized,
				PaymentStatus: domain.PaymentStatusUnpaid,
				Invoiced:      decimal.RequireFromString("1180.00"),
				Outstanding:   decimal.RequireFromString("1180.00"),
			},
		}, nil).Once()

	f, err := suite.service.ExportBillsWorkbook(ctx, dto.ReportQueryParams{})

	suite.Require().NoError(err)
	suite.Require().NotNil(f)
	defer f.Close()

	cell, err := f.GetCellValue("Bills", "A1")
	suite.Require().NoError(err)
	suite.Equal("Bill No", cell)

	cell, err = f.GetCellValue("Bills", "A2")
	suite.Require().NoError(err)
	suite.Equal("ACME/2024-25/0001", cell)

	suite.mockRepo.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
