package routes

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petshop-scheduler/internal/audit"
	"github.com/BruksfildServices01/petshop-scheduler/internal/config"
	"github.com/BruksfildServices01/petshop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/petshop-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/petshop-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/petshop-scheduler/internal/domain/dashboard"
	"github.com/BruksfildServices01/petshop-scheduler/internal/domain/pet"
	"github.com/BruksfildServices01/petshop-scheduler/internal/handlers"
	"github.com/BruksfildServices01/petshop-scheduler/internal/middleware"
	"github.com/BruksfildServices01/petshop-scheduler/internal/storage"
	ucAppointment "github.com/BruksfildServices01/petshop-scheduler/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/petshop-scheduler/internal/usecase/auth"
	ucCatalog "github.com/BruksfildServices01/petshop-scheduler/internal/usecase/catalog"
	ucClient "github.com/BruksfildServices01/petshop-scheduler/internal/usecase/client"
	ucDashboard "github.com/BruksfildServices01/petshop-scheduler/internal/usecase/dashboard"
	ucPet "github.com/BruksfildServices01/petshop-scheduler/internal/usecase/pet"
	"github.com/BruksfildServices01/petshop-scheduler/internal/usecase/petphoto"
)

// Repositories vem do gorm (produção) ou de infra/memory (DB_DRIVER=memory
// e testes).
type Repositories struct {
	Clients      client.Repository
	Pets         pet.Repository
	Services     catalog.Repository
	Appointments appointment.Repository
	Dashboard    dashboard.Repository
	AuditLogs    audit.Lister
}

type Options struct {
	Config   *config.Config
	Logger   *slog.Logger
	Location *time.Location

	Audit   audit.Recorder
	Cache   ucDashboard.Cache
	Storage storage.Driver
	DB      handlers.Pinger
}

func RegisterRoutes(r *gin.Engine, repos Repositories, opts Options) {
	cfg := opts.Config

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigin))

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	dashboardUC := ucDashboard.NewService(
		repos.Dashboard,
		opts.Cache,
		cfg.DashboardCacheTTL,
		opts.Location,
	)

	clientUC := ucClient.NewService(repos.Clients, ucClient.Options{
		Audit:       opts.Audit,
		Invalidator: dashboardUC,
		DomainCheck: cfg.EmailDomainCheck,
	})

	petUC := ucPet.NewService(repos.Pets, repos.Clients, opts.Audit, dashboardUC)

	catalogUC := ucCatalog.NewService(repos.Services, repos.Appointments, opts.Audit, dashboardUC)

	appointmentUC := ucAppointment.NewService(ucAppointment.Deps{
		Repo:        repos.Appointments,
		Pets:        repos.Pets,
		Services:    repos.Services,
		Audit:       opts.Audit,
		Invalidator: dashboardUC,
		Location:    opts.Location,
	})

	authUC := ucAuth.NewService(repos.Clients, cfg.JWTSecret)

	photoUC := petphoto.NewService(petUC, opts.Storage)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authUC, cfg.IsProduction())
	clientHandler := handlers.NewClientHandler(clientUC)
	petHandler := handlers.NewPetHandler(petUC, photoUC)
	serviceHandler := handlers.NewServiceHandler(catalogUC)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentUC)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(repos.AuditLogs)
	healthHandler := handlers.NewHealthHandler(opts.DB)

	authRequired := middleware.AuthMiddleware(authUC)

	r.GET("/health", healthHandler.Check)

	if local, ok := opts.Storage.(*storage.Local); ok {
		r.Static("/uploads", local.BasePath())
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authRequired, authHandler.Me)
		}

		// ------------------------------
		// CLIENTES
		// ------------------------------
		clientes := api.Group("/clientes")
		{
			clientes.GET("", clientHandler.List)
			clientes.GET("/:id", clientHandler.Get)
			clientes.POST("", clientHandler.Create)
			clientes.PUT("/:id", authRequired, clientHandler.Update)
			clientes.DELETE("/:id", authRequired, clientHandler.Delete)
			clientes.GET("/:id/pets", clientHandler.Pets)
		}

		// ------------------------------
		// PETS
		// ------------------------------
		pets := api.Group("/pets")
		{
			pets.GET("", petHandler.List)
			pets.GET("/:id", petHandler.Get)
			pets.GET("/cliente/:clienteId", petHandler.ByClient)
			pets.POST("", petHandler.Create)
			pets.PUT("/:id", authRequired, petHandler.Update)
			pets.DELETE("/:id", authRequired, petHandler.Delete)
			pets.GET("/:id/cliente", petHandler.Client)
			pets.GET("/:id/agendamentos", petHandler.Appointments)
			pets.PUT("/:id/foto", authRequired, petHandler.UploadPhoto)
		}

		// ------------------------------
		// SERVIÇOS
		// ------------------------------
		servicos := api.Group("/servicos")
		{
			servicos.GET("", serviceHandler.List)
			servicos.GET("/:id", serviceHandler.Get)
			servicos.POST("", authRequired, serviceHandler.Create)
			servicos.PUT("/:id", authRequired, serviceHandler.Update)
			servicos.DELETE("/:id", authRequired, serviceHandler.Delete)
			servicos.GET("/agendamento/:agendamentoId", serviceHandler.ByAppointment)
		}

		// ------------------------------
		// AGENDAMENTOS
		// ------------------------------
		agendamentos := api.Group("/agendamentos")
		{
			agendamentos.GET("", appointmentHandler.List)
			agendamentos.GET("/:id", appointmentHandler.Get)
			agendamentos.GET("/pet/:petId", appointmentHandler.ByPet)
			agendamentos.POST("", appointmentHandler.Create)
			agendamentos.PUT("/:id", authRequired, appointmentHandler.Update)
			agendamentos.DELETE("/:id", authRequired, appointmentHandler.Delete)
			agendamentos.GET("/:id/pet", appointmentHandler.Pet)
			agendamentos.GET("/:id/servicos", appointmentHandler.Services)
			agendamentos.POST("/:id/servicos", authRequired, appointmentHandler.AddService)
			agendamentos.DELETE("/:id/servicos/:servicoId", authRequired, appointmentHandler.RemoveService)
		}

		api.GET("/dashboard", dashboardHandler.Summary)

		api.GET("/audit-logs", authRequired, auditLogsHandler.List)
	}
}
