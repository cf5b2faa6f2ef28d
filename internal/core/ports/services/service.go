package services

// ServiceContainer aggregates every service facade for injection into the
// HTTP layer.
type ServiceContainer struct {
	User               UserSvcFacade
	Token              TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
	Header             HeaderSvcFacade
	Client             ClientSvcFacade
	Masters            MastersSvcFacade
	Bill               BillSvcFacade
	Payment            PaymentSvcFacade
	Reporting          ReportingSvcFacade
}
