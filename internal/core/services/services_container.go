package services

import (
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/platform/config"
	"github.com/SscSPs/property_management_app/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Every other service reads and writes through the object service
	container.Objects = NewObjectService(
		repos.RecordStore,
		WithPageSize(cfg.RecordPageSize),
		WithObjectMetrics(m),
	)

	container.RentRoll = NewRentRollService(
		container.Objects,
		WithRentRollConcurrency(cfg.PortfolioConcurrency),
	)
	container.Delinquency = NewDelinquencyService(container.Objects)
	container.Payment = NewPaymentService(container.Objects)
	container.Portfolio = NewPortfolioService(
		container.Objects,
		container.RentRoll,
		container.Delinquency,
		WithPortfolioConcurrency(cfg.PortfolioConcurrency),
	)

	return container
}
