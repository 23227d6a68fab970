package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/petshop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/petshop-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/petshop-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/petshop-scheduler/internal/domain/pet"
	ucAppointment "github.com/BruksfildServices01/petshop-scheduler/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/petshop-scheduler/internal/usecase/catalog"
	ucClient "github.com/BruksfildServices01/petshop-scheduler/internal/usecase/client"
	ucPet "github.com/BruksfildServices01/petshop-scheduler/internal/usecase/pet"
)

// Deps são os repositórios onde os dados de demonstração serão gravados.
type Deps struct {
	Clients      client.Repository
	Pets         pet.Repository
	Services     catalog.Repository
	Appointments appointment.Repository
	Location     *time.Location
}

// ======================================================
// DADOS
// ======================================================

var clients = []ucClient.Input{
	{Name: "João Silva", Email: "joao@email.com", Phone: "(11) 99999-1111", Note: "Cliente de teste"},
	{Name: "Maria Souza", Email: "maria@email.com", Phone: "(11) 99999-2222", Note: "Cliente de teste"},
	{Name: "Pedro Oliveira", Email: "pedro@email.com", Phone: "(11) 99999-3333", Note: "Cliente de teste"},
}

// owner é o índice em clients.
var pets = []struct {
	input ucPet.Input
	owner int
}{
	{ucPet.Input{Name: "Rex", Species: "Cachorro", Breed: "Labrador", Age: 3, Weight: 15}, 0},
	{ucPet.Input{Name: "Nina", Species: "Gato", Breed: "Siamês", Age: 2, Weight: 4}, 0},
	{ucPet.Input{Name: "Thor", Species: "Cachorro", Breed: "Golden Retriever", Age: 5, Weight: 25}, 1},
	{ucPet.Input{Name: "Mel", Species: "Cachorro", Breed: "Poodle", Age: 4, Weight: 8}, 2},
}

var services = []ucCatalog.Input{
	{Name: "Banho", Description: "Banho completo com shampoo especial", Price: 50},
	{Name: "Tosa", Description: "Tosa higiênica e estética", Price: 70},
	{Name: "Banho e Tosa", Description: "Pacote completo de banho e tosa", Price: 100},
	{Name: "Hidratação", Description: "Tratamento de hidratação para pelos", Price: 40},
}

// days é relativo a hoje; pet e services são índices.
var appointments = []struct {
	days     int
	hour     int
	status   string
	pet      int
	services []int
}{
	{1, 10, "AGENDADO", 0, []int{0, 1}},
	{2, 14, "AGENDADO", 2, []int{2}},
	{4, 11, "AGENDADO", 1, []int{0}},
	{-1, 15, "CONCLUIDO", 3, []int{2, 3}},
}

// ======================================================
// RUN
// ======================================================

// Run grava clientes (senha padrão), pets, serviços e agendamentos pelos
// mesmos casos de uso da API. Não faz nada se já houver clientes.
func Run(ctx context.Context, d Deps, now time.Time) (bool, error) {
	existing, err := d.Clients.FindAll(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		slog.Info("seed skipped, database already has clients", "clients", len(existing))
		return false, nil
	}

	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}

	clientUC := ucClient.NewService(d.Clients, ucClient.Options{})
	petUC := ucPet.NewService(d.Pets, d.Clients, nil, nil)
	catalogUC := ucCatalog.NewService(d.Services, d.Appointments, nil, nil)
	appointmentUC := ucAppointment.NewService(ucAppointment.Deps{
		Repo:     d.Appointments,
		Pets:     d.Pets,
		Services: d.Services,
		Location: loc,
	})

	// --------------------------------------------------
	// 1️⃣ Clientes
	// --------------------------------------------------
	clientIDs := make([]uint, 0, len(clients))
	for _, in := range clients {
		c, err := clientUC.Create(ctx, in)
		if err != nil {
			return false, fmt.Errorf("seed client %s: %w", in.Email, err)
		}
		clientIDs = append(clientIDs, c.ID)
	}

	// --------------------------------------------------
	// 2️⃣ Pets
	// --------------------------------------------------
	petIDs := make([]uint, 0, len(pets))
	for _, p := range pets {
		in := p.input
		in.ClientID = clientIDs[p.owner]
		created, err := petUC.Create(ctx, in)
		if err != nil {
			return false, fmt.Errorf("seed pet %s: %w", in.Name, err)
		}
		petIDs = append(petIDs, created.ID)
	}

	// --------------------------------------------------
	// 3️⃣ Serviços
	// --------------------------------------------------
	serviceIDs := make([]uint, 0, len(services))
	for _, in := range services {
		svc, err := catalogUC.Create(ctx, in)
		if err != nil {
			return false, fmt.Errorf("seed service %s: %w", in.Name, err)
		}
		serviceIDs = append(serviceIDs, svc.ID)
	}

	// --------------------------------------------------
	// 4️⃣ Agendamentos + vínculos
	// --------------------------------------------------
	today := now.In(loc)
	for _, a := range appointments {
		day := today.AddDate(0, 0, a.days)
		when := time.Date(day.Year(), day.Month(), day.Day(), a.hour, 0, 0, 0, loc)

		ap, err := appointmentUC.Create(ctx, ucAppointment.Input{
			PetID:  petIDs[a.pet],
			Date:   when.Format(time.RFC3339),
			Status: a.status,
			Note:   "Agendamento de teste",
		})
		if err != nil {
			return false, fmt.Errorf("seed appointment %s: %w", when.Format(time.RFC3339), err)
		}

		for _, idx := range a.services {
			if err := appointmentUC.AddService(ctx, ap.ID, serviceIDs[idx]); err != nil {
				return false, fmt.Errorf("seed appointment service: %w", err)
			}
		}
	}

	slog.Info("seed finished",
		"clients", len(clients),
		"pets", len(pets),
		"services", len(services),
		"appointments", len(appointments),
	)
	return true, nil
}
