package app

import (
	"fmt"

	"revhire_backend/database"
	"revhire_backend/internal/config"
	"revhire_backend/internal/email"
	"revhire_backend/internal/handlers"
	"revhire_backend/internal/logger"
	"revhire_backend/internal/middleware"
	"revhire_backend/internal/routes"
	"revhire_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run boots the whole application: config, logging, database, services,
// router. It blocks serving HTTP until the process exits.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	router := SetupRouter(db, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server", "addr", addr, "env", cfg.Server.Env)

	return router.Run(addr)
}

// SetupRouter builds the gin engine with all middleware and routes. Tests
// use it directly against their own database handle.
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging())
	router.Use(middleware.CORS())

	svc := services.NewContainer(db, newEmailSender(cfg))
	h := handlers.NewAppHandlers(svc)
	routes.RegisterRoutes(router, h)

	return router
}

// openDatabase opens the connection pool. TranslateError makes driver
// unique-violation errors surface as gorm.ErrDuplicatedKey, which the
// repositories depend on.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
}

func newEmailSender(cfg *config.Config) email.Sender {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP not configured, email notifications disabled")
		return email.NoopSender{}
	}
	return email.NewSMTPSender(cfg)
}
