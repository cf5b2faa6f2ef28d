package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gstbill/gst_billing_app/internal/apperrors"
	"github.com/gstbill/gst_billing_app/internal/core/domain"
	portssvc "github.com/gstbill/gst_billing_app/internal/core/ports/services"
	"github.com/gstbill/gst_billing_app/internal/core/services"
	"github.com/gstbill/gst_billing_app/internal/dto"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockBillRepo    *MockBillRepository
	service         portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockBillRepo = new(MockBillRepository)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockBillRepo)
}

func (suite *PaymentServiceTestSuite) TestMarkPayment_Success() {
	ctx := context.Background()
	billID := uuid.NewString()
	recorderID := uuid.NewString()

	req := dto.MarkPaymentRequest{
		BillID:      billID,
		PaymentDate: "2024-07-01",
		AmountPaid:  decimal.RequireFromString("590.00"),
		Notes:       "first installment",
	}

	recorded := &domain.BillPayment{PaymentID: uuid.NewString(), BillID: billID, AmountPaid: req.AmountPaid, RecordedBy: recorderID}
	withName := &domain.BillPayment{PaymentID: recorded.PaymentID, BillID: billID, AmountPaid: req.AmountPaid, RecordedBy: recorderID, RecordedByName: "A Sharma"}
	refreshed := &domain.BillDetails{Bill: domain.Bill{
		BillID:        billID,
		TotalPaid:     req.AmountPaid,
		PaymentStatus: domain.PaymentStatusPartial,
	}}

	suite.mockPaymentRepo.On("MarkPayment", ctx, mock.MatchedBy(func(p domain.BillPayment) bool {
		return p.BillID == billID &&
			p.AmountPaid.Equal(req.AmountPaid) &&
			p.PaymentDate.Format("2006-01-02") == "2024-07-01" &&
			p.RecordedBy == recorderID
	})).Return(recorded, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByID", ctx, recorded.PaymentID).Return(withName, nil).Once()
	suite.mockBillRepo.On("FindBillDetailsByID", ctx, billID).Return(refreshed, nil).Once()

	resp, err := suite.service.MarkPayment(ctx, req, recorderID)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal("A Sharma", resp.Payment.RecordedByName)
	suite.Equal(domain.PaymentStatusPartial, resp.Bill.PaymentStatus)
	suite.True(resp.Bill.TotalPaid.Equal(req.AmountPaid))
	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestMarkPayment_NonPositiveAmountRejected() {
	ctx := context.Background()

	resp, err := suite.service.MarkPayment(ctx, dto.MarkPaymentRequest{
		BillID:      uuid.NewString(),
		PaymentDate: "2024-07-01",
		AmountPaid:  decimal.Zero,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "MarkPayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestMarkPayment_OverpaymentSurfacesConflict() {
	ctx := context.Background()
	billID := uuid.NewString()

	suite.mockPaymentRepo.On("MarkPayment", ctx, mock.AnythingOfType("domain.BillPayment")).
		Return(nil, apperrors.ErrStateConflict).Once()

	resp, err := suite.service.MarkPayment(ctx, dto.MarkPaymentRequest{
		BillID:      billID,
		PaymentDate: "2024-07-01",
		AmountPaid:  decimal.NewFromInt(5000),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrStateConflict)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "FindBillDetailsByID", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestMarkPayment_NameLookupFailureIsNotFatal() {
	ctx := context.Background()
	billID := uuid.NewString()

	recorded := &domain.BillPayment{PaymentID: uuid.NewString(), BillID: billID}
	suite.mockPaymentRepo.On("MarkPayment", ctx, mock.AnythingOfType("domain.BillPayment")).Return(recorded, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByID", ctx, recorded.PaymentID).Return(nil, assert.AnError).Once()
	suite.mockBillRepo.On("FindBillDetailsByID", ctx, billID).Return(&domain.BillDetails{}, nil).Once()

	resp, err := suite.service.MarkPayment(ctx, dto.MarkPaymentRequest{
		BillID:      billID,
		PaymentDate: "2024-07-01",
		AmountPaid:  decimal.NewFromInt(100),
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(recorded.PaymentID, resp.Payment.PaymentID)
}

func (suite *PaymentServiceTestSuite) TestGetPaymentHistory_UnknownBill() {
	ctx := context.Background()
	billID := uuid.NewString()

	suite.mockBillRepo.On("FindBillByID", ctx, billID).Return(nil, apperrors.ErrNotFound).Once()

	payments, err := suite.service.GetPaymentHistory(ctx, billID)

	suite.Require().Error(err)
	suite.Nil(payments)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "ListPaymentsByBill", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestDeletePayment_Success() {
	ctx := context.Background()
	paymentID := uuid.NewString()

	suite.mockPaymentRepo.On("DeletePayment", ctx, paymentID).Return(nil).Once()

	err := suite.service.DeletePayment(ctx, paymentID)

	suite.Require().NoError(err)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
