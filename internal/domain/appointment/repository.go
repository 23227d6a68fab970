package appointment

import (
	"context"

	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

// Repository não valida regras de negócio. Métodos Find* devolvem
// (nil, nil) quando o registro não existe.
type Repository interface {
	// -------- Leitura --------
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)
	FindByPetID(ctx context.Context, petID uint) ([]models.Appointment, error)
	FindWithPet(ctx context.Context, id uint) (*models.Appointment, error)
	FindWithServices(ctx context.Context, id uint) (*models.Appointment, error)

	// -------- Escrita --------
	Create(ctx context.Context, ap *models.Appointment) error
	Update(ctx context.Context, ap *models.Appointment) error
	// Delete remove também as linhas de appointment_services.
	Delete(ctx context.Context, id uint) error

	// -------- Serviços vinculados --------
	HasService(ctx context.Context, appointmentID, serviceID uint) (bool, error)
	AddService(ctx context.Context, appointmentID, serviceID uint) error
	// RemoveService devolve false quando o vínculo não existe.
	RemoveService(ctx context.Context, appointmentID, serviceID uint) (bool, error)
}
