package seed

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/petshop-scheduler/internal/infra/memory"
	ucAuth "github.com/BruksfildServices01/petshop-scheduler/internal/usecase/auth"
)

func memoryDeps() (Deps, *memory.DashboardRepo) {
	store := memory.NewStore()
	return Deps{
		Clients:      memory.NewClientRepo(store),
		Pets:         memory.NewPetRepo(store),
		Services:     memory.NewServiceRepo(store),
		Appointments: memory.NewAppointmentRepo(store),
		Location:     time.UTC,
	}, memory.NewDashboardRepo(store)
}

func TestRun_LoadsDemoData(t *testing.T) {
	ctx := context.Background()
	d, dash := memoryDeps()
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	seeded, err := Run(ctx, d, now)
	if err != nil {
		t.Fatal(err)
	}
	if !seeded {
		t.Fatalf("expected seed to run on empty store")
	}

	if n, _ := dash.CountClients(ctx); n != 3 {
		t.Fatalf("expected 3 clients, got %d", n)
	}
	if n, _ := dash.CountPets(ctx); n != 4 {
		t.Fatalf("expected 4 pets, got %d", n)
	}
	if n, _ := dash.CountAppointments(ctx); n != 4 {
		t.Fatalf("expected 4 appointments, got %d", n)
	}

	// amanhã: Banho (50) + Tosa (70)
	start := time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)
	if total, _ := dash.RevenueBetween(ctx, start, start.AddDate(0, 0, 1)); total != 120 {
		t.Fatalf("expected 120 tomorrow, got %v", total)
	}

	auth := ucAuth.NewService(d.Clients, "secret")
	if _, _, err := auth.Login(ctx, "joao@email.com", "senha123"); err != nil {
		t.Fatalf("seeded client must log in with the default password: %v", err)
	}
}

func TestRun_SkipsWhenClientsExist(t *testing.T) {
	ctx := context.Background()
	d, dash := memoryDeps()
	now := time.Now()

	if _, err := Run(ctx, d, now); err != nil {
		t.Fatal(err)
	}

	seeded, err := Run(ctx, d, now)
	if err != nil {
		t.Fatal(err)
	}
	if seeded {
		t.Fatalf("expected second run to be skipped")
	}
	if n, _ := dash.CountClients(ctx); n != 3 {
		t.Fatalf("expected 3 clients after rerun, got %d", n)
	}
}
