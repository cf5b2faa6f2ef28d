package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gstbill/gst_billing_app/internal/apperrors"
	"github.com/gstbill/gst_billing_app/internal/core/domain"
	portssvc "github.com/gstbill/gst_billing_app/internal/core/ports/services"
	"github.com/gstbill/gst_billing_app/internal/core/services"
	"github.com/gstbill/gst_billing_app/internal/dto"
)

type BillServiceTestSuite struct {
	suite.Suite
	mockBillRepo    *MockBillRepository
	mockMastersRepo *MockMastersRepository
	mockClientRepo  *MockClientRepository
	service         portssvc.BillSvcFacade
}

func (suite *BillServiceTestSuite) SetupTest() {
	suite.mockBillRepo = new(MockBillRepository)
	suite.mockMastersRepo = new(MockMastersRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewBillService(suite.mockBillRepo, suite.mockMastersRepo, suite.mockClientRepo)
}

func (suite *BillServiceTestSuite) termFixture(days int) *domain.PaymentTerm {
	return &domain.PaymentTerm{
		PaymentTermID: uuid.NewString(),
		Name:          "Net Terms",
		DaysToAdd:     days,
	}
}

func (suite *BillServiceTestSuite) TestCreateBill_DerivesNumberTotalsAndDates() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	headerID := uuid.NewString()
	particularsID := uuid.NewString()
	gstRateID := uuid.NewString()
	term := suite.termFixture(30)

	req := dto.CreateBillRequest{
		HeaderID:      headerID,
		BillDate:      "2024-06-15",
		PaymentTermID: term.PaymentTermID,
		Services: []dto.BillServiceRequest{
			{
				ParticularsID: particularsID,
				ServiceDate:   "2024-06-01",
				ServiceYear:   "2024-25",
				Amount:        decimal.NewFromInt(1000),
				GSTRateID:     gstRateID,
			},
		},
	}

	suite.mockMastersRepo.On("FindPaymentTermByID", ctx, term.PaymentTermID).Return(term, nil).Once()
	suite.mockMastersRepo.On("FindGSTRatesByIDs", ctx, []string{gstRateID}).
		Return(map[string]domain.GSTRate{gstRateID: {GSTRateID: gstRateID, Rate: decimal.NewFromInt(18)}}, nil).Once()
	suite.mockMastersRepo.On("FindParticularsByID", ctx, particularsID).
		Return(&domain.Particulars{ParticularsID: particularsID, Name: "GST Filing"}, nil).Once()

	var createdBillID string
	suite.mockBillRepo.On("CreateBill", ctx, mock.MatchedBy(func(b domain.Bill) bool {
		createdBillID = b.BillID
		return b.HeaderID == headerID &&
			b.FinancialYear == "2024-25" &&
			b.DueDate.Format("2006-01-02") == "2024-07-15" &&
			b.Status == domain.BillStatusDraft &&
			b.PaymentStatus == domain.PaymentStatusUnpaid &&
			b.TotalInvoiceValue.Equal(decimal.RequireFromString("1180.00")) &&
			b.TotalPaid.IsZero()
	}), mock.MatchedBy(func(svcs []domain.BillService) bool {
		return len(svcs) == 1 && svcs[0].SrNo == 1 && svcs[0].Amount.Equal(decimal.NewFromInt(1000))
	})).Return(&domain.Bill{BillID: uuid.NewString(), BillNo: "ACME/2024-25/0001"}, nil).Once()
	suite.mockBillRepo.On("FindBillDetailsByID", ctx, mock.AnythingOfType("string")).
		Return(&domain.BillDetails{Bill: domain.Bill{BillNo: "ACME/2024-25/0001"}}, nil).Once()

	details, err := suite.service.CreateBill(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(details)
	suite.Equal("ACME/2024-25/0001", details.BillNo)
	suite.NotEmpty(createdBillID)
	suite.mockBillRepo.AssertExpectations(suite.T())
	suite.mockMastersRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestCreateBill_FinancialYearBoundary() {
	ctx := context.Background()
	term := suite.termFixture(0)
	particularsID := uuid.NewString()
	gstRateID := uuid.NewString()

	cases := []struct {
		billDate string
		wantFY   string
	}{
		{"2025-03-31", "2024-25"},
		{"2025-04-01", "2025-26"},
	}

	for _, tc := range cases {
		suite.mockMastersRepo.On("FindPaymentTermByID", ctx, term.PaymentTermID).Return(term, nil).Once()
		suite.mockMastersRepo.On("FindGSTRatesByIDs", ctx, []string{gstRateID}).
			Return(map[string]domain.GSTRate{gstRateID: {GSTRateID: gstRateID, Rate: decimal.Zero}}, nil).Once()
		suite.mockMastersRepo.On("FindParticularsByID", ctx, particularsID).
			Return(&domain.Particulars{ParticularsID: particularsID}, nil).Once()

		wantFY := tc.wantFY
		suite.mockBillRepo.On("CreateBill", ctx, mock.MatchedBy(func(b domain.Bill) bool {
			return b.FinancialYear == wantFY
		}), mock.Anything).Return(&domain.Bill{BillID: uuid.NewString()}, nil).Once()
		suite.mockBillRepo.On("FindBillDetailsByID", ctx, mock.AnythingOfType("string")).
			Return(&domain.BillDetails{}, nil).Once()

		_, err := suite.service.CreateBill(ctx, dto.CreateBillRequest{
			HeaderID:      uuid.NewString(),
			BillDate:      tc.billDate,
			PaymentTermID: term.PaymentTermID,
			Services: []dto.BillServiceRequest{
				{
					ParticularsID: particularsID,
					ServiceDate:   tc.billDate,
					ServiceYear:   wantFY,
					Amount:        decimal.NewFromInt(500),
					GSTRateID:     gstRateID,
				},
			},
		}, uuid.NewString())

		suite.Require().NoError(err, "bill date %s", tc.billDate)
	}
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestCreateBill_UnknownPaymentTerm() {
	ctx := context.Background()
	termID := uuid.NewString()

	suite.mockMastersRepo.On("FindPaymentTermByID", ctx, termID).Return(nil, apperrors.ErrNotFound).Once()

	details, err := suite.service.CreateBill(ctx, dto.CreateBillRequest{
		HeaderID:      uuid.NewString(),
		BillDate:      "2024-06-30",
		PaymentTermID: termID,
		Services:      []dto.BillServiceRequest{{ParticularsID: "p", ServiceDate: "2024-06-01", Amount: decimal.NewFromInt(1), GSTRateID: "g"}},
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(details)
	suite.ErrorIs(err, apperrors.ErrInvalidReference)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "CreateBill", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestCreateBill_OtherCategoryRequiresFreeText() {
	ctx := context.Background()
	term := suite.termFixture(15)
	particularsID := uuid.NewString()
	gstRateID := uuid.NewString()

	suite.mockMastersRepo.On("FindPaymentTermByID", ctx, term.PaymentTermID).Return(term, nil).Once()
	suite.mockMastersRepo.On("FindGSTRatesByIDs", ctx, []string{gstRateID}).
		Return(map[string]domain.GSTRate{gstRateID: {GSTRateID: gstRateID, Rate: decimal.NewFromInt(18)}}, nil).Once()
	suite.mockMastersRepo.On("FindParticularsByID", ctx, particularsID).
		Return(&domain.Particulars{ParticularsID: particularsID, Name: "Other", IsOther: true}, nil).Once()

	_, err := suite.service.CreateBill(ctx, dto.CreateBillRequest{
		HeaderID:      uuid.NewString(),
		BillDate:      "2024-06-30",
		PaymentTermID: term.PaymentTermID,
		Services: []dto.BillServiceRequest{
			{
				ParticularsID: particularsID,
				ServiceDate:   "2024-06-01",
				Amount:        decimal.NewFromInt(100),
				GSTRateID:     gstRateID,
			},
		},
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "CreateBill", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestCreateBill_InactiveClientRejected() {
	ctx := context.Background()
	term := suite.termFixture(15)
	clientID := uuid.NewString()

	suite.mockMastersRepo.On("FindPaymentTermByID", ctx, term.PaymentTermID).Return(term, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, clientID).
		Return(&domain.Client{ClientID: clientID, IsActive: false}, nil).Once()

	_, err := suite.service.CreateBill(ctx, dto.CreateBillRequest{
		HeaderID:      uuid.NewString(),
		BillDate:      "2024-06-30",
		PaymentTermID: term.PaymentTermID,
		ClientID:      &clientID,
		Services:      []dto.BillServiceRequest{{ParticularsID: "p", ServiceDate: "2024-06-01", Amount: decimal.NewFromInt(1), GSTRateID: "g"}},
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidReference)
}

func (suite *BillServiceTestSuite) TestUpdateBill_NonDraftRejected() {
	ctx := context.Background()
	billID := uuid.NewString()

	suite.mockBillRepo.On("FindBillByID", ctx, billID).
		Return(&domain.Bill{BillID: billID, Status: domain.BillStatusFinalized}, nil).Once()

	notes := "updated"
	_, err := suite.service.UpdateBill(ctx, billID, dto.UpdateBillRequest{Notes: &notes}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStateConflict)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "UpdateBill", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestUpdateBill_BillDateChangeMovesDueDateOnly() {
	ctx := context.Background()
	billID := uuid.NewString()
	term := suite.termFixture(30)

	suite.mockBillRepo.On("FindBillByID", ctx, billID).Return(&domain.Bill{
		BillID:        billID,
		Status:        domain.BillStatusDraft,
		BillDate:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		PaymentTermID: term.PaymentTermID,
	}, nil).Once()
	suite.mockMastersRepo.On("FindPaymentTermByID", ctx, term.PaymentTermID).Return(term, nil).Once()

	newDate := "2024-07-10"
	suite.mockBillRepo.On("UpdateBill", ctx, billID, mock.MatchedBy(func(f domain.BillUpdateFields) bool {
		return f.BillDate != nil && f.DueDate != nil &&
			f.DueDate.Format("2006-01-02") == "2024-08-09" &&
			f.TotalInvoiceValue == nil
	}), []domain.BillService(nil), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockBillRepo.On("FindBillDetailsByID", ctx, billID).Return(&domain.BillDetails{}, nil).Once()

	_, err := suite.service.UpdateBill(ctx, billID, dto.UpdateBillRequest{BillDate: &newDate}, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestUpdateBill_ServiceReplacementRecomputesTotal() {
	ctx := context.Background()
	billID := uuid.NewString()
	particularsID := uuid.NewString()
	gstRateID := uuid.NewString()

	// Replacing the lines shrinks the invoice below what may already be
	// collected; the new total must reach the repository so the payment
	// status is re-derived against the ledger in the same transaction.
	suite.mockBillRepo.On("FindBillByID", ctx, billID).Return(&domain.Bill{
		BillID:        billID,
		Status:        domain.BillStatusDraft,
		BillDate:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		TotalPaid:     decimal.NewFromInt(500),
		PaymentStatus: domain.PaymentStatusPartial,
	}, nil).Once()
	suite.mockMastersRepo.On("FindGSTRatesByIDs", ctx, []string{gstRateID}).
		Return(map[string]domain.GSTRate{gstRateID: {GSTRateID: gstRateID, Rate: decimal.NewFromInt(18)}}, nil).Once()
	suite.mockMastersRepo.On("FindParticularsByID", ctx, particularsID).
		Return(&domain.Particulars{ParticularsID: particularsID, Name: "GST Filing"}, nil).Once()

	suite.mockBillRepo.On("UpdateBill", ctx, billID, mock.MatchedBy(func(f domain.BillUpdateFields) bool {
		return f.TotalInvoiceValue != nil &&
			f.TotalInvoiceValue.Equal(decimal.RequireFromString("472.00"))
	}), mock.MatchedBy(func(svcs []domain.BillService) bool {
		return len(svcs) == 1 && svcs[0].Amount.Equal(decimal.NewFromInt(400))
	}), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockBillRepo.On("FindBillDetailsByID", ctx, billID).Return(&domain.BillDetails{}, nil).Once()

	newServices := []dto.BillServiceRequest{
		{
			ParticularsID: particularsID,
			ServiceDate:   "2024-06-01",
			ServiceYear:   "2024-25",
			Amount:        decimal.NewFromInt(400),
			GSTRateID:     gstRateID,
		},
	}
	_, err := suite.service.UpdateBill(ctx, billID, dto.UpdateBillRequest{Services: &newServices}, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockBillRepo.AssertExpectations(suite.T())
	suite.mockMastersRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestDeleteBill_NonDraftRejected() {
	ctx := context.Background()
	billID := uuid.NewString()

	suite.mockBillRepo.On("FindBillByID", ctx, billID).
		Return(&domain.Bill{BillID: billID, Status: domain.BillStatusSent}, nil).Once()

	err := suite.service.DeleteBill(ctx, billID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStateConflict)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "DeleteBill", mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestDeleteService_LastLineRejected() {
	ctx := context.Background()
	billID := uuid.NewString()
	svcID := uuid.NewString()

	suite.mockBillRepo.On("FindBillDetailsByID", ctx, billID).Return(&domain.BillDetails{
		Bill: domain.Bill{BillID: billID, Status: domain.BillStatusDraft},
		Services: []domain.BillServiceDetail{
			{BillService: domain.BillService{BillServiceID: svcID, Amount: decimal.NewFromInt(100)}, GSTRate: decimal.NewFromInt(18)},
		},
	}, nil).Once()

	_, err := suite.service.DeleteService(ctx, billID, svcID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "DeleteBillService",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestDeleteService_RecomputesTotalFromRemaining() {
	ctx := context.Background()
	billID := uuid.NewString()
	keepID := uuid.NewString()
	dropID := uuid.NewString()

	suite.mockBillRepo.On("FindBillDetailsByID", ctx, billID).Return(&domain.BillDetails{
		Bill: domain.Bill{BillID: billID, Status: domain.BillStatusDraft},
		Services: []domain.BillServiceDetail{
			{BillService: domain.BillService{BillServiceID: keepID, Amount: decimal.NewFromInt(1000)}, GSTRate: decimal.NewFromInt(18)},
			{BillService: domain.BillService{BillServiceID: dropID, Amount: decimal.NewFromInt(500)}, GSTRate: decimal.NewFromInt(18)},
		},
	}, nil).Once()
	suite.mockBillRepo.On("DeleteBillService", ctx, billID, dropID,
		mock.MatchedBy(func(total decimal.Decimal) bool {
			return total.Equal(decimal.RequireFromString("1180.00"))
		}), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockBillRepo.On("FindBillDetailsByID", ctx, billID).Return(&domain.BillDetails{}, nil).Once()

	_, err := suite.service.DeleteService(ctx, billID, dropID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestRecordEmailSent_AppendsHistory() {
	ctx := context.Background()
	billID := uuid.NewString()
	actorID := uuid.NewString()

	suite.mockBillRepo.On("FindBillByID", ctx, billID).
		Return(&domain.Bill{BillID: billID, Status: domain.BillStatusFinalized}, nil).Once()
	suite.mockBillRepo.On("SaveBillHistory", ctx, mock.MatchedBy(func(h domain.BillHistory) bool {
		return h.BillID == billID && h.Action == domain.BillHistoryEmailSent && h.Outcome == "SENT" && h.ActorUserID == actorID
	})).Return(nil).Once()

	err := suite.service.RecordEmailSent(ctx, billID, actorID, "SENT")

	suite.Require().NoError(err)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func TestBillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillServiceTestSuite))
}
