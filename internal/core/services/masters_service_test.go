package services_test

import (
	"context"
	"testing"

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

type MastersServiceTestSuite struct {
	suite.Suite
	mockRepo *MockMastersRepository
	service  portssvc.MastersSvcFacade
}

func (suite *MastersServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockMastersRepository)
	suite.service = services.NewMastersService(suite.mockRepo)
}

func (suite *MastersServiceTestSuite) TestCreateGSTRate_NegativeRejected() {
	ctx := context.Background()

	rate, err := suite.service.CreateGSTRate(ctx, dto.CreateGSTRateRequest{
		Rate: decimal.NewFromInt(-5),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveGSTRate", mock.Anything, mock.Anything)
}

func (suite *MastersServiceTestSuite) TestDeleteParticulars_BlockedWhenReferenced() {
	ctx := context.Background()
	particularsID := uuid.NewString()

	suite.mockRepo.On("CountBillServicesByParticulars", ctx, particularsID).Return(int64(4), nil).Once()

	err := suite.service.DeleteParticulars(ctx, particularsID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStateConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteParticulars", mock.Anything, mock.Anything)
}

func (suite *MastersServiceTestSuite) TestDeleteParticulars_UnreferencedDeletes() {
	ctx := context.Background()
	particularsID := uuid.NewString()

	suite.mockRepo.On("CountBillServicesByParticulars", ctx, particularsID).Return(int64(0), nil).Once()
	suite.mockRepo.On("DeleteParticulars", ctx, particularsID).Return(nil).Once()

	err := suite.service.DeleteParticulars(ctx, particularsID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MastersServiceTestSuite) TestDeleteGSTRate_BlockedWhenReferenced() {
	ctx := context.Background()
	gstRateID := uuid.NewString()

	suite.mockRepo.On("CountBillServicesByGSTRate", ctx, gstRateID).Return(int64(1), nil).Once()

	err := suite.service.DeleteGSTRate(ctx, gstRateID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStateConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteGSTRate", mock.Anything, mock.Anything)
}

func (suite *MastersServiceTestSuite) TestDeletePaymentTerm_BlockedWhenReferenced() {
	ctx := context.Background()
	paymentTermID := uuid.NewString()

	suite.mockRepo.On("CountBillsByPaymentTerm", ctx, paymentTermID).Return(int64(2), nil).Once()

	err := suite.service.DeletePaymentTerm(ctx, paymentTermID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStateConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeletePaymentTerm", mock.Anything, mock.Anything)
}

func (suite *MastersServiceTestSuite) TestUpdatePaymentTerm_MergesFields() {
	ctx := context.Background()
	paymentTermID := uuid.NewString()

	suite.mockRepo.On("FindPaymentTermByID", ctx, paymentTermID).Return(&domain.PaymentTerm{
		PaymentTermID: paymentTermID,
		Name:          "Net 15",
		DaysToAdd:     15,
	}, nil).Once()

	days := 30
	suite.mockRepo.On("UpdatePaymentTerm", ctx, mock.MatchedBy(func(t domain.PaymentTerm) bool {
		return t.PaymentTermID == paymentTermID && t.Name == "Net 15" && t.DaysToAdd == 30
	})).Return(nil).Once()

	term, err := suite.service.UpdatePaymentTerm(ctx, paymentTermID, dto.UpdatePaymentTermRequest{DaysToAdd: &days}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(30, term.DaysToAdd)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestMastersServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MastersServiceTestSuite))
}
