package router

import (
	"github.com/quickhaul/logistics-backend/internal/application"
	"github.com/quickhaul/logistics-backend/internal/container"
	pginfra "github.com/quickhaul/logistics-backend/internal/infrastructure/postgres"
	handlers "github.com/quickhaul/logistics-backend/internal/interface/http"
	"github.com/quickhaul/logistics-backend/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()

	recipientSvc := application.NewRecipientService(pginfra.NewRecipientRepository(pool))
	deliverySvc := application.NewDeliveryService(pginfra.NewDeliveryRepository(pool), logger)
	contactSvc := application.NewContactService(pginfra.NewContactRepository(pool))

	r.Add(modules.NewRecipientModule(handlers.NewRecipientHandler(recipientSvc, logger)))
	r.Add(modules.NewDeliveryModule(handlers.NewDeliveryHandler(deliverySvc, recipientSvc, contactSvc, logger)))
	r.Add(modules.NewContactModule(handlers.NewContactHandler(contactSvc, logger)))
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(pool)))

	if cfg := container.GetConfig(); cfg != nil && cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
