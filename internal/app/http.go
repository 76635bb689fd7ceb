package app

import (
	"gorm.io/gorm"

	httpserver "github.com/yungbote/contracts-data-backend/internal/http"
	httpH "github.com/yungbote/contracts-data-backend/internal/http/handlers"
	"github.com/yungbote/contracts-data-backend/internal/pkg/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Contract *httpH.ContractHandler
}

func wireHandlers(log *logger.Logger, db *gorm.DB, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(db),
		Contract: httpH.NewContractHandler(services.Contract),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers) *httpserver.Server {
	serviceName := ""
	if cfg.Otel.Enabled {
		serviceName = cfg.Otel.ServiceName
	}
	server := httpserver.NewServer(httpserver.RouterConfig{
		Log:             log,
		ServiceName:     serviceName,
		AllowedOrigins:  cfg.AllowedOrigins,
		HealthHandler:   handlers.Health,
		ContractHandler: handlers.Contract,
	})
	server.ShutdownTimeout = cfg.shutdownTimeout()
	return server
}
