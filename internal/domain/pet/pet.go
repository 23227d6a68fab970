package pet

import (
	"context"

	"github.com/BruksfildServices01/petshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
	"github.com/BruksfildServices01/petshop-scheduler/internal/validators"
)

var (
	ErrNotFound = httperr.NotFoundErr("pet_not_found", "Pet não encontrado")

	// Cliente informado no corpo (400) e na rota (404).
	ErrClientNotFound       = httperr.Validation("client_not_found", "Cliente não encontrado")
	ErrClientLookupNotFound = httperr.NotFoundErr("client_not_found", "Cliente não encontrado")

	ErrMissingFields     = httperr.Validation("missing_fields", "Nome, espécie e raça são campos obrigatórios")
	ErrNegativeAge       = httperr.Validation("negative_age", "Idade não pode ser negativa")
	ErrNonPositiveWeight = httperr.Validation("non_positive_weight", "Peso deve ser maior que zero")
	ErrHasAppointments   = httperr.Conflict("pet_has_appointments", "Pet possui agendamentos cadastrados")
)

type Repository interface {
	FindAll(ctx context.Context) ([]models.Pet, error)
	FindByID(ctx context.Context, id uint) (*models.Pet, error)
	FindByClientID(ctx context.Context, clientID uint) ([]models.Pet, error)
	FindWithClient(ctx context.Context, id uint) (*models.Pet, error)
	FindWithAppointments(ctx context.Context, id uint) (*models.Pet, error)

	Create(ctx context.Context, p *models.Pet) error
	Update(ctx context.Context, p *models.Pet) error
	Delete(ctx context.Context, id uint) error

	CountAppointments(ctx context.Context, id uint) (int64, error)
}

// Validate: idade >= 0 (inclusive), peso > 0 (exclusivo).
func Validate(p *models.Pet) error {
	if validators.IsBlank(p.Name) || validators.IsBlank(p.Species) || validators.IsBlank(p.Breed) {
		return ErrMissingFields
	}
	if p.Age < 0 {
		return ErrNegativeAge
	}
	if p.Weight <= 0 {
		return ErrNonPositiveWeight
	}
	return nil
}
