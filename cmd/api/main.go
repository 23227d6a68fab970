package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/petshop-scheduler/internal/audit"
	"github.com/BruksfildServices01/petshop-scheduler/internal/cache"
	"github.com/BruksfildServices01/petshop-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/petshop-scheduler/internal/db"
	"github.com/BruksfildServices01/petshop-scheduler/internal/handlers"
	"github.com/BruksfildServices01/petshop-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/petshop-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/petshop-scheduler/internal/platform/logger"
	"github.com/BruksfildServices01/petshop-scheduler/internal/routes"
	"github.com/BruksfildServices01/petshop-scheduler/internal/seed"
	"github.com/BruksfildServices01/petshop-scheduler/internal/storage"
	"github.com/BruksfildServices01/petshop-scheduler/internal/timezone"
	ucDashboard "github.com/BruksfildServices01/petshop-scheduler/internal/usecase/dashboard"
)

func main() {

	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    "petshop-api",
	})
	slog.SetDefault(log)

	gin.SetMode(cfg.GinMode)

	timezone.SetDefault(cfg.Timezone)
	loc := timezone.Local()

	// ======================================================
	// 🗂️ STORAGE
	// ======================================================
	drv, err := storage.NewDriver(cfg.Storage)
	if err != nil {
		log.Error("failed to init storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}

	// ======================================================
	// 🗄️ REPOSITÓRIOS
	// ======================================================
	var (
		repos  routes.Repositories
		sink   audit.Sink
		pinger handlers.Pinger
		gormDB *gorm.DB
	)

	if cfg.UsesMemoryStore() {
		log.Warn("running with in-memory store, data is lost on restart")

		store := memory.NewStore()
		auditLog := memory.NewAuditLog()

		repos = routes.Repositories{
			Clients:      memory.NewClientRepo(store),
			Pets:         memory.NewPetRepo(store),
			Services:     memory.NewServiceRepo(store),
			Appointments: memory.NewAppointmentRepo(store),
			Dashboard:    memory.NewDashboardRepo(store),
			AuditLogs:    auditLog,
		}
		sink = auditLog
	} else {
		gormDB, err = dbpkg.NewDB(cfg)
		if err != nil {
			log.Error("failed to init database", "error", err)
			os.Exit(1)
		}

		sqlDB, err := gormDB.DB()
		if err != nil {
			log.Error("failed to get sql.DB", "error", err)
			os.Exit(1)
		}
		pinger = sqlDB

		auditLog := audit.New(gormDB)

		repos = routes.Repositories{
			Clients:      repository.NewClientGormRepository(gormDB),
			Pets:         repository.NewPetGormRepository(gormDB),
			Services:     repository.NewServiceGormRepository(gormDB),
			Appointments: repository.NewAppointmentGormRepository(gormDB),
			Dashboard:    repository.NewDashboardGormRepository(gormDB),
			AuditLogs:    auditLog,
		}
		sink = auditLog
	}

	// ======================================================
	// ⚡ CACHE (opcional)
	// ======================================================
	var (
		dashCache ucDashboard.Cache
		redis     *cache.Client
	)
	if cfg.RedisURL != "" {
		redis, err = cache.NewClient(cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, dashboard cache disabled", "error", err)
		} else {
			dashCache = redis
		}
	}

	// ======================================================
	// 🌱 SEED (opcional)
	// ======================================================
	if cfg.SeedDemo {
		_, err := seed.Run(context.Background(), seed.Deps{
			Clients:      repos.Clients,
			Pets:         repos.Pets,
			Services:     repos.Services,
			Appointments: repos.Appointments,
			Location:     loc,
		}, time.Now())
		if err != nil {
			log.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	dispatcher := audit.NewDispatcher(sink)

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, repos, routes.Options{
		Config:   cfg,
		Logger:   log,
		Location: loc,
		Audit:    dispatcher,
		Cache:    dashCache,
		Storage:  drv,
		DB:       pinger,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server running", "addr", cfg.Addr(), "timezone", loc.String(), "memory", cfg.UsesMemoryStore())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", "error", err)
	}

	dispatcher.Close()

	if redis != nil {
		if err := redis.Close(); err != nil {
			log.Warn("failed to close redis", "error", err)
		}
	}
	if gormDB != nil {
		dbpkg.Close(gormDB)
	}
}
