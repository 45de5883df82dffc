package router

import (
	"github.com/staybook/backend/internal/application"
	"github.com/staybook/backend/internal/container"
	handlers "github.com/staybook/backend/internal/interface/http"
	"github.com/staybook/backend/internal/infrastructure/postgres"
	"github.com/staybook/backend/internal/router/modules"
)

func buildSessionModule() *modules.SessionModule {
	cfg := container.GetConfig()

	svc := &application.SessionService{
		Identities: postgres.NewIdentityRepository(container.GetPGPool()),
		JWT:        container.GetJWT(),
		Redis:      container.GetRedis(),
		Logger:     container.GetLogger(),
		Pub:        container.GetRabbitPub(),
		GCS:        container.GetGCS(),
		GCSBucket:  cfg.GCSBucket,

		OTPDemoMode:   cfg.OTPDemoMode,
		OTPStaticCode: cfg.OTPStaticCode,
		OTPCodeTTL:    cfg.OTPCodeTTL,
		SessionTTL:    cfg.SessionTTL,
	}
	handler := handlers.NewSessionHandler(svc, container.GetLogger(), cfg.CookieDomain, cfg.CookieSecure)
	return modules.NewSessionModule(handler, container.GetJWT())
}

func buildBookingModule() *modules.BookingModule {
	svc := &application.BookingService{
		Reservations: postgres.NewReservationRepository(container.GetPGPool()),
		Identities:   postgres.NewIdentityRepository(container.GetPGPool()),
		Catalog:      container.GetCatalog(),
		Logger:       container.GetLogger(),
		Pub:          container.GetRabbitPub(),
		NotifyEmails: container.GetConfig().NotifySendEnabled,
	}
	handler := handlers.NewBookingHandler(svc, container.GetLogger())
	return modules.NewBookingModule(handler, container.GetJWT())
}

func buildCatalogModule() *modules.CatalogModule {
	svc := &application.CatalogService{
		Catalog:       container.GetCatalog(),
		ES:            container.GetES(),
		ESHotelsIndex: container.GetConfig().ESHotelsIndex,
		Logger:        container.GetLogger(),
	}
	handler := handlers.NewCatalogHandler(svc, container.GetLogger())
	return modules.NewCatalogModule(handler)
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	r.Add(buildSessionModule())
	r.Add(buildBookingModule())
	r.Add(buildCatalogModule())
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
