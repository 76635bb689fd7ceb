package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/contracts-data-backend/internal/http/handlers"
	httpMW "github.com/yungbote/contracts-data-backend/internal/http/middleware"
	"github.com/yungbote/contracts-data-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	AllowedOrigins []string

	ContractHandler *httpH.ContractHandler
	HealthHandler   *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.AllowedOrigins...))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Contracts
		if cfg.ContractHandler != nil {
			api.GET("/contracts", cfg.ContractHandler.ListContracts)
			api.GET("/contracts/:id", cfg.ContractHandler.GetContract)
			api.POST("/contracts", cfg.ContractHandler.CreateContract)
			api.PATCH("/contracts/confirm-approval", cfg.ContractHandler.ConfirmApproval)
			api.PATCH("/contracts/manual-approve", cfg.ContractHandler.ApproveManually)
			api.PATCH("/contracts/withdraw", cfg.ContractHandler.Withdraw)
			api.PATCH("/contracts/replace", cfg.ContractHandler.MarkReplaced)
			api.PATCH("/contracts/awaiting-confirmation", cfg.ContractHandler.MarkAwaitingConfirmation)
			api.PATCH("/contracts/publish", cfg.ContractHandler.Publish)
			api.PATCH("/contracts/notification-read", cfg.ContractHandler.MarkNotificationRead)
			api.PUT("/contracts/content", cfg.ContractHandler.AttachContent)
		}
	}

	return r
}
