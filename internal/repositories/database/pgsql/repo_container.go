package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/gstbill/gst_billing_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      newPgxUserRepository(dbPool),
		HeaderRepo:    newPgxHeaderRepository(dbPool),
		ClientRepo:    newPgxClientRepository(dbPool),
		MastersRepo:   newPgxMastersRepository(dbPool),
		BillRepo:      newPgxBillRepository(dbPool),
		PaymentRepo:   newPgxPaymentRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
