package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gstbill/gst_billing_app/internal/apperrors"
	"github.com/gstbill/gst_billing_app/internal/core/domain"
	portssvc "github.com/gstbill/gst_billing_app/internal/core/ports/services"
	"github.com/gstbill/gst_billing_app/internal/core/services"
	"github.com/gstbill/gst_billing_app/internal/dto"
	"github.com/gstbill/gst_billing_app/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestRegisterUser_DefaultsToEmployee() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "newuser").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "newuser" && u.Role == domain.RoleEmployee && u.IsActive && u.Email == "new@example.com"
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, dto.RegisterRequest{
		Username: "newuser",
		Email:    "New@Example.com",
		Password: "password123",
		FullName: "New User",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.RoleEmployee, user.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_TakenUsername() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "taken").
		Return(&domain.User{UserID: uuid.NewString(), Username: "taken"}, nil).Once()

	user, err := suite.service.RegisterUser(ctx, dto.RegisterRequest{
		Username: "taken",
		Email:    "x@example.com",
		Password: "password123",
		FullName: "X",
	})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse")
	suite.Require().NoError(err)

	stored := &domain.User{UserID: uuid.NewString(), Username: "ca1", PasswordHash: hash, IsActive: true, Role: domain.RoleCA}
	suite.mockRepo.On("FindUserByUsername", ctx, "ca1").Return(stored, nil).Once()
	suite.mockRepo.On("UpdateLastLogin", ctx, stored.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ca1", "correct horse")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.NotNil(user.LastLoginAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_InactiveFailsLikeWrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse")
	suite.Require().NoError(err)

	stored := &domain.User{UserID: uuid.NewString(), Username: "gone", PasswordHash: hash, IsActive: false}
	suite.mockRepo.On("FindUserByUsername", ctx, "gone").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "gone", "correct horse")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	suite.mockRepo.On("FindUserByUsername", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()
	_, err2 := suite.service.AuthenticateUser(ctx, "missing", "anything")
	suite.Require().Error(err2)
	suite.ErrorIs(err2, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestGetOrCreateGoogleUser_UnverifiedEmailRejected() {
	ctx := context.Background()

	user, err := suite.service.GetOrCreateGoogleUser(ctx, domain.GoogleUserInfo{
		Email:         "someone@example.com",
		VerifiedEmail: false,
	})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestGetOrCreateGoogleUser_FirstSignInCreatesEmployee() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "fresh@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "fresh@example.com" && u.Role == domain.RoleEmployee && u.IsActive && u.PasswordHash != ""
	})).Return(nil).Once()

	user, err := suite.service.GetOrCreateGoogleUser(ctx, domain.GoogleUserInfo{
		Email:         "Fresh@Example.com",
		VerifiedEmail: true,
		Name:          "Fresh User",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.RoleEmployee, user.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeactivateUser_SelfRejected() {
	ctx := context.Background()
	userID := uuid.NewString()

	err := suite.service.DeactivateUser(ctx, userID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeactivateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
