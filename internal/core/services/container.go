package services

import (
	portsrepo "github.com/accuflow/accuflow/internal/core/ports/repositories"
	portssvc "github.com/accuflow/accuflow/internal/core/ports/services"
)

// NewServiceContainer wires every service implementation over the repository
// provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:   NewAccountServiceImpl(repos.AccountRepo, repos.ReportingRepo),
		Journal:   NewJournalServiceImpl(repos.JournalRepo, repos.AccountRepo),
		Reporting: NewReportingServiceImpl(repos.ReportingRepo, repos.AccountRepo),
	}
}
