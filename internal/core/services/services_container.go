package services

import (
	"log/slog"

	portsrepo "github.com/forexapps/forex_data_app/internal/core/ports/repositories"
	portssvc "github.com/forexapps/forex_data_app/internal/core/ports/services"
)

// NewServiceContainer wires the concrete services behind their facades.
func NewServiceContainer(forexRepo portsrepo.ForexDataRepositoryFacade, rateSource portssvc.RateSource, logger *slog.Logger) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Forex: NewForexScraperService(forexRepo, rateSource, logger),
	}
}
