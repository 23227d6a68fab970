package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/BruksfildServices01/petshop-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/petshop-scheduler/internal/db"
	"github.com/BruksfildServices01/petshop-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/petshop-scheduler/internal/platform/logger"
	"github.com/BruksfildServices01/petshop-scheduler/internal/seed"
	"github.com/BruksfildServices01/petshop-scheduler/internal/timezone"
)

// Popula o postgres de DATABASE_URL com os dados de demonstração.
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, App: "petshop-seed"})
	slog.SetDefault(log)

	timezone.SetDefault(cfg.Timezone)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer dbpkg.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	seeded, err := seed.Run(ctx, seed.Deps{
		Clients:      repository.NewClientGormRepository(db),
		Pets:         repository.NewPetGormRepository(db),
		Services:     repository.NewServiceGormRepository(db),
		Appointments: repository.NewAppointmentGormRepository(db),
		Location:     timezone.Local(),
	}, time.Now())
	if err != nil {
		log.Error("seed failed", "error", err)
		cancel()
		dbpkg.Close(db)
		os.Exit(1)
	}

	log.Info("seed done", "seeded", seeded)
}
