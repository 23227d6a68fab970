package dashboard

import (
	"context"
	"time"

	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

type Order int

const (
	OrderDesc Order = iota
	OrderAsc
)

type Repository interface {
	// RevenueBetween soma o preço de cada linha agendamento/serviço cujo
	// agendamento está em [start, end).
	RevenueBetween(ctx context.Context, start, end time.Time) (float64, error)

	CountClients(ctx context.Context) (int64, error)
	CountAppointments(ctx context.Context) (int64, error)
	CountPets(ctx context.Context) (int64, error)

	// ListByDate traz Pet e Pet.Client carregados.
	ListByDate(ctx context.Context, order Order, limit int) ([]models.Appointment, error)
}
