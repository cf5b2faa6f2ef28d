package services

import (
	portsrepo "github.com/gstbill/gst_billing_app/internal/core/ports/repositories"
	portssvc "github.com/gstbill/gst_billing_app/internal/core/ports/services"
	"github.com/gstbill/gst_billing_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	container.Header = NewHeaderService(repos.HeaderRepo)
	container.Client = NewClientService(repos.ClientRepo)
	container.Masters = NewMastersService(repos.MastersRepo)

	container.Bill = NewBillService(repos.BillRepo, repos.MastersRepo, repos.ClientRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.BillRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
