package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/gstbill/gst_billing_app/internal/core/domain"
	portsrepo "github.com/gstbill/gst_billing_app/internal/core/ports/repositories"
)

// --- Mock BillRepository ---

type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepository) FindBillDetailsByID(ctx context.Context, billID string) (*domain.BillDetails, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillDetails), args.Error(1)
}

func (m *MockBillRepository) FindBillDetailsByBillNo(ctx context.Context, billNo string) (*domain.BillDetails, error) {
	args := m.Called(ctx, billNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillDetails), args.Error(1)
}

func (m *MockBillRepository) ListBills(ctx context.Context, filter domain.BillListFilter) ([]domain.BillDetails, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.BillDetails), args.Get(1).(int64), args.Error(2)
}

func (m *MockBillRepository) CreateBill(ctx context.Context, bill domain.Bill, services []domain.BillService) (*domain.Bill, error) {
	args := m.Called(ctx, bill, services)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepository) UpdateBill(ctx context.Context, billID string, fields domain.BillUpdateFields, services []domain.BillService, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, billID, fields, services, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockBillRepository) FinalizeBill(ctx context.Context, billID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, billID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockBillRepository) DeleteBill(ctx context.Context, billID string) error {
	args := m.Called(ctx, billID)
	return args.Error(0)
}

func (m *MockBillRepository) AddBillService(ctx context.Context, billID string, svc domain.BillService, newTotal decimal.Decimal) (*domain.BillService, error) {
	args := m.Called(ctx, billID, svc, newTotal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillService), args.Error(1)
}

func (m *MockBillRepository) DeleteBillService(ctx context.Context, billID, billServiceID string, newTotal decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, billID, billServiceID, newTotal, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockBillRepository) SaveBillHistory(ctx context.Context, h domain.BillHistory) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockBillRepository) ListBillHistory(ctx context.Context, billID string) ([]domain.BillHistory, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillHistory), args.Error(1)
}

// --- Mock MastersRepository ---

type MockMastersRepository struct {
	mock.Mock
}

func (m *MockMastersRepository) SaveParticulars(ctx context.Context, p domain.Particulars) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockMastersRepository) FindParticularsByID(ctx context.Context, particularsID string) (*domain.Particulars, error) {
	args := m.Called(ctx, particularsID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Particulars), args.Error(1)
}

func (m *MockMastersRepository) ListParticulars(ctx context.Context) ([]domain.Particulars, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Particulars), args.Error(1)
}

func (m *MockMastersRepository) UpdateParticulars(ctx context.Context, p domain.Particulars) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockMastersRepository) DeleteParticulars(ctx context.Context, particularsID string) error {
	args := m.Called(ctx, particularsID)
	return args.Error(0)
}

func (m *MockMastersRepository) CountBillServicesByParticulars(ctx context.Context, particularsID string) (int64, error) {
	args := m.Called(ctx, particularsID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMastersRepository) SaveGSTRate(ctx context.Context, r domain.GSTRate) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockMastersRepository) FindGSTRateByID(ctx context.Context, gstRateID string) (*domain.GSTRate, error) {
	args := m.Called(ctx, gstRateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GSTRate), args.Error(1)
}

func (m *MockMastersRepository) FindGSTRatesByIDs(ctx context.Context, gstRateIDs []string) (map[string]domain.GSTRate, error) {
	args := m.Called(ctx, gstRateIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.GSTRate), args.Error(1)
}

func (m *MockMastersRepository) ListGSTRates(ctx context.Context) ([]domain.GSTRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GSTRate), args.Error(1)
}

func (m *MockMastersRepository) UpdateGSTRate(ctx context.Context, r domain.GSTRate) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockMastersRepository) DeleteGSTRate(ctx context.Context, gstRateID string) error {
	args := m.Called(ctx, gstRateID)
	return args.Error(0)
}

func (m *MockMastersRepository) CountBillServicesByGSTRate(ctx context.Context, gstRateID string) (int64, error) {
	args := m.Called(ctx, gstRateID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMastersRepository) SavePaymentTerm(ctx context.Context, t domain.PaymentTerm) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockMastersRepository) FindPaymentTermByID(ctx context.Context, paymentTermID string) (*domain.PaymentTerm, error) {
	args := m.Called(ctx, paymentTermID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentTerm), args.Error(1)
}

func (m *MockMastersRepository) ListPaymentTerms(ctx context.Context) ([]domain.PaymentTerm, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentTerm), args.Error(1)
}

func (m *MockMastersRepository) UpdatePaymentTerm(ctx context.Context, t domain.PaymentTerm) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockMastersRepository) DeletePaymentTerm(ctx context.Context, paymentTermID string) error {
	args := m.Called(ctx, paymentTermID)
	return args.Error(0)
}

func (m *MockMastersRepository) CountBillsByPaymentTerm(ctx context.Context, paymentTermID string) (int64, error) {
	args := m.Called(ctx, paymentTermID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ClientRepository ---

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClients(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindActiveClientsByFuzzyName(ctx context.Context, name string) ([]domain.Client, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindActiveClientByExactName(ctx context.Context, name string) (*domain.Client, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) SearchActiveClients(ctx context.Context, q string, limit int) ([]domain.Client, error) {
	args := m.Called(ctx, q, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeactivateClient(ctx context.Context, clientID string, at time.Time, by string) error {
	args := m.Called(ctx, clientID, at, by)
	return args.Error(0)
}

// --- Mock PaymentRepository ---

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) MarkPayment(ctx context.Context, payment domain.BillPayment) (*domain.BillPayment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillPayment), args.Error(1)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.BillPayment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillPayment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByBill(ctx context.Context, billID string) ([]domain.BillPayment, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillPayment), args.Error(1)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetReceivablesTotals(ctx context.Context, f domain.ReportFilter) (*portsrepo.ReceivablesTotals, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.ReceivablesTotals), args.Error(1)
}

func (m *MockReportingRepository) GetHeaderBreakdown(ctx context.Context, f domain.ReportFilter) ([]domain.PartyBreakdownRow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PartyBreakdownRow), args.Error(1)
}

func (m *MockReportingRepository) GetClientBreakdown(ctx context.Context, f domain.ReportFilter) ([]domain.PartyBreakdownRow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PartyBreakdownRow), args.Error(1)
}

func (m *MockReportingRepository) GetAgingBuckets(ctx context.Context, f domain.ReportFilter) ([]domain.AgingBucket, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AgingBucket), args.Error(1)
}

func (m *MockReportingRepository) GetBillReportRows(ctx context.Context, f domain.ReportFilter) ([]domain.BillReportRow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillReportRow), args.Error(1)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

func (m *MockUserRepository) DeactivateUser(ctx context.Context, userID string, at time.Time, by string) error {
	args := m.Called(ctx, userID, at, by)
	return args.Error(0)
}
