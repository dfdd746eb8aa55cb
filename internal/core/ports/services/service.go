package services

// ServiceContainer bundles all service implementations for route registration.
type ServiceContainer struct {
	Account   AccountService
	Journal   JournalService
	Reporting ReportingService
}
