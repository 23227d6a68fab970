package catalog

import (
	"context"

	"github.com/BruksfildServices01/petshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
	"github.com/BruksfildServices01/petshop-scheduler/internal/validators"
)

var (
	ErrNotFound         = httperr.NotFoundErr("service_not_found", "Serviço não encontrado")
	ErrMissingFields    = httperr.Validation("missing_fields", "Nome e descrição são campos obrigatórios")
	ErrNonPositivePrice = httperr.Validation("non_positive_price", "Preço deve ser maior que zero")
	ErrInUse            = httperr.Conflict("service_in_use", "Serviço vinculado a agendamentos")
)

type Repository interface {
	FindAll(ctx context.Context) ([]models.Service, error)
	FindByID(ctx context.Context, id uint) (*models.Service, error)
	FindByAppointmentID(ctx context.Context, appointmentID uint) ([]models.Service, error)

	Create(ctx context.Context, s *models.Service) error
	Update(ctx context.Context, s *models.Service) error
	Delete(ctx context.Context, id uint) error

	CountAppointmentLinks(ctx context.Context, id uint) (int64, error)
}

func Validate(s *models.Service) error {
	if validators.IsBlank(s.Name) || validators.IsBlank(s.Description) {
		return ErrMissingFields
	}
	if s.Price <= 0 {
		return ErrNonPositivePrice
	}
	return nil
}
