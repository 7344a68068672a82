// Package http assembles the gin engine, middleware and route registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	regusecases "github.com/jmbbc/bc-visitor-dashboard/internal/application/registration/usecases"
	unitusecases "github.com/jmbbc/bc-visitor-dashboard/internal/application/unit/usecases"
	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/audit"
	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/cache"
	infraconfig "github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/config"
	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/ratelimit"
	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/repository"
	"github.com/jmbbc/bc-visitor-dashboard/internal/interfaces/http/handlers"
	"github.com/jmbbc/bc-visitor-dashboard/internal/interfaces/http/middleware"
	"github.com/jmbbc/bc-visitor-dashboard/internal/interfaces/http/routes"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/db"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine              *gin.Engine
	cfg                 *infraconfig.Config
	registrationHandler *handlers.RegistrationHandler
	parkingHandler      *handlers.ParkingHandler
	unitHandler         *handlers.UnitHandler
	submitRateLimit     gin.HandlerFunc
	logger              logger.Interface
}

// NewRouter builds the repositories, use cases and handlers on top of the
// given database handle. redisClient may be nil; the submit guard is then
// disabled and the coordinator relies on the transactional dedupe key alone.
func NewRouter(gdb *gorm.DB, redisClient *redis.Client, cfg *infraconfig.Config, log logger.Interface) *Router {
	regRepo := repository.NewRegistrationRepository(gdb)
	dedupeRepo := repository.NewDedupeKeyRepository(gdb)
	cooldownRepo := repository.NewCooldownRepository(gdb)
	unitRepo := repository.NewUnitRepository(gdb)
	policyRepo := repository.NewParkingPolicyRepository(gdb, cfg.ParkingPolicy())
	auditRepo := repository.NewAuditLogRepository(gdb)

	txManager := db.NewTransactionManagerWithRetry(gdb, cfg.Engine.TxMaxAttempts)
	auditRecorder := audit.NewRecorder(auditRepo, log)

	var guard regusecases.SubmitGuard
	var submitRateLimit gin.HandlerFunc
	if redisClient != nil {
		guard = cache.NewSubmitGuard(redisClient)
		submitRateLimit = middleware.SubmitRateLimit(
			ratelimit.NewRedisLimiter(redisClient), ratelimit.DefaultSubmitConfig, log)
	}

	dedupeWindow := time.Duration(cfg.Engine.DedupeWindowMinutes) * time.Minute

	submitUC := regusecases.NewSubmitRegistrationUseCase(
		regRepo, dedupeRepo, cooldownRepo, unitRepo, policyRepo,
		txManager, guard, auditRecorder, dedupeWindow, log,
	)
	fallbackUC := regusecases.NewFallbackSubmitUseCase(regRepo, log)
	assignUC := regusecases.NewAssignLotUseCase(regRepo, txManager, auditRecorder, log)
	listUC := regusecases.NewListRegistrationsUseCase(regRepo, log)
	quoteUC := regusecases.NewQuoteChargeUseCase(unitRepo, policyRepo, log)

	getUnitUC := unitusecases.NewGetUnitUseCase(unitRepo, log)
	updateArrearsUC := unitusecases.NewUpdateArrearsUseCase(unitRepo, log)

	return &Router{
		engine:              gin.New(),
		cfg:                 cfg,
		registrationHandler: handlers.NewRegistrationHandler(submitUC, fallbackUC, assignUC, listUC, log),
		parkingHandler:      handlers.NewParkingHandler(quoteUC, log),
		unitHandler:         handlers.NewUnitHandler(getUnitUC, updateArrearsUC, policyRepo, log),
		submitRateLimit:     submitRateLimit,
		logger:              log,
	}
}

// SetupRoutes registers middleware and all API routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Actor())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	routes.SetupRegistrationRoutes(api, &routes.RegistrationRouteConfig{
		RegistrationHandler: r.registrationHandler,
		ParkingHandler:      r.parkingHandler,
		SubmitRateLimit:     r.submitRateLimit,
	})
	routes.SetupUnitRoutes(api, &routes.UnitRouteConfig{
		UnitHandler: r.unitHandler,
	})
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
