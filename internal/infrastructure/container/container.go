// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	appinventory "github.com/pantrysage/v2/internal/application/inventory"
	apppricing "github.com/pantrysage/v2/internal/application/pricing"
	appshopping "github.com/pantrysage/v2/internal/application/shopping"
	"github.com/pantrysage/v2/internal/infrastructure/config"
	"github.com/pantrysage/v2/internal/infrastructure/http/apiserver"
	gormRepo "github.com/pantrysage/v2/internal/infrastructure/persistence/gorm"
	"github.com/pantrysage/v2/internal/infrastructure/persistence/memory"
	"github.com/pantrysage/v2/internal/infrastructure/persistence/postgres"
	"github.com/pantrysage/v2/internal/infrastructure/persistence/redis"
	"github.com/pantrysage/v2/internal/infrastructure/persistence/sqlite"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
	"github.com/pantrysage/v2/pkg/healthcheck"
	"github.com/pantrysage/v2/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	ServiceModule,
	HealthModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
	func(log *zap.Logger) *zap.SugaredLogger {
		return log.Sugar()
	},
)

// DatabaseModule provides the database connection for the configured driver
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		if cfg.Database.Driver == "postgres" {
			cm, err := postgres.NewConnectionManager(cfg, log)
			if err != nil {
				return nil, fmt.Errorf("failed to setup PostgreSQL database: %w", err)
			}
			if cfg.Database.AutoMigrate {
				if err := cm.Migrate(); err != nil {
					return nil, err
				}
			}
			return cm.GetDB(), nil
		}

		logLevel := gormLogger.Silent
		if cfg.App.Debug {
			logLevel = gormLogger.Info
		}

		db, err := sqlite.SetupDatabase(cfg.Database.Database, logLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
		}

		// Seed a demo pantry in development
		if cfg.IsDevelopment() {
			if err := sqlite.SeedDatabase(db); err != nil {
				log.Warn("Failed to seed database", zap.Error(err))
			}
		}

		log.Info("Connected to SQLite database",
			zap.String("path", cfg.Database.Database),
		)

		return db, nil
	},
)

// CacheModule provides caching, Redis when enabled and in-memory otherwise
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if cfg.Redis.Enabled {
			return redis.NewCacheRepository(&cfg.Redis, cfg.RedisAddr(), log)
		}
		log.Info("Redis disabled, using in-memory cache")
		return memory.NewCacheRepository(), nil
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewInventoryRepository,
	gormRepo.NewShoppingListRepository,
	gormRepo.NewPriceRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	appinventory.NewInventoryService,

	// Shopping service carries the deployment's commerce defaults
	func(
		listRepo outbound.ShoppingListRepository,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.ShoppingService {
		return appshopping.NewShoppingService(listRepo, appshopping.Defaults{
			TaxRegion:        cfg.Commerce.TaxRegion,
			Currency:         cfg.Commerce.Currency,
			CurrencySymbol:   cfg.Commerce.CurrencySymbol,
			CurrencyPosition: cfg.Commerce.CurrencyPosition,
			DecimalPlaces:    cfg.Commerce.DecimalPlaces,
		}, log)
	},

	apppricing.NewPricingService,
)

// HealthModule provides dependency health checks
var HealthModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger, db *gorm.DB, cache outbound.CacheRepository) *healthcheck.HealthCheck {
		hc := healthcheck.New(cfg.App.Version, log)
		hc.Register("database", func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		})
		hc.Register("cache", func(ctx context.Context) error {
			_, err := cache.Exists(ctx, "healthcheck:probe")
			return err
		})
		return hc
	},
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	func(
		cfg *config.Config,
		log *zap.Logger,
		hc *healthcheck.HealthCheck,
		inventoryService inbound.InventoryService,
		shoppingService inbound.ShoppingService,
		pricingService inbound.PricingService,
	) *apiserver.APIServer {
		readyProbe := func() error {
			return hc.Ready(context.Background())
		}
		return apiserver.NewAPIServer(cfg, log, inventoryService, shoppingService, pricingService, readyProbe)
	},
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	server *apiserver.APIServer,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting PantrySage application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := server.Start(); err != nil {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down PantrySage application")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}
