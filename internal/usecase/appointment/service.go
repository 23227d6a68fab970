package appointment

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/petshop-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/petshop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/petshop-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/petshop-scheduler/internal/domain/pet"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type Input struct {
	PetID  uint
	Date   string
	Status string
	Note   string
}

type Invalidator interface {
	Invalidate(ctx context.Context)
}

// ======================================================
// SERVICE
// ======================================================

// Service concentra as regras de agendamento. mu serializa a varredura de
// conflito e a escrita dentro do processo; duas instâncias da API ainda
// podem gravar o mesmo horário.
type Service struct {
	repo        domain.Repository
	pets        pet.Repository
	services    catalog.Repository
	audit       audit.Recorder
	invalidator Invalidator
	loc         *time.Location

	mu sync.Mutex
}

type Deps struct {
	Repo        domain.Repository
	Pets        pet.Repository
	Services    catalog.Repository
	Audit       audit.Recorder
	Invalidator Invalidator
	Location    *time.Location
}

func NewService(d Deps) *Service {
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:        d.Repo,
		pets:        d.Pets,
		services:    d.Services,
		audit:       d.Audit,
		invalidator: d.Invalidator,
		loc:         loc,
	}
}

// ======================================================
// QUERIES
// ======================================================

func (s *Service) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	return found(s.repo.FindByID(ctx, id))
}

func (s *Service) FindWithPet(ctx context.Context, id uint) (*models.Appointment, error) {
	return found(s.repo.FindWithPet(ctx, id))
}

func (s *Service) FindWithServices(ctx context.Context, id uint) (*models.Appointment, error) {
	return found(s.repo.FindWithServices(ctx, id))
}

func (s *Service) FindByPetID(ctx context.Context, petID uint) ([]models.Appointment, error) {
	p, err := s.pets.FindByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrPetLookupNotFound
	}
	return s.repo.FindByPetID(ctx, petID)
}

func found(ap *models.Appointment, err error) (*models.Appointment, error) {
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, domain.ErrAppointmentNotFound
	}
	return ap, nil
}

// ------------------------------------------------------

func (s *Service) assertPet(ctx context.Context, petID uint) error {
	if petID == 0 {
		return domain.ErrPetNotFound
	}
	p, err := s.pets.FindByID(ctx, petID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrPetNotFound
	}
	return nil
}

// assertFreeSlot roda com mu adquirido.
func (s *Service) assertFreeSlot(ctx context.Context, when time.Time, excludeID uint) error {
	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	if domain.HasConflict(existing, when, excludeID, s.loc) {
		return domain.ErrSchedulingConflict
	}
	return nil
}

// parseFields cobre os passos 2 e 3 do pipeline: presença, status e data.
func (s *Service) parseFields(in Input) (domain.Status, time.Time, error) {
	if in.Date == "" || in.Status == "" {
		return "", time.Time{}, domain.ErrMissingFields
	}

	status, err := domain.NormalizeStatus(in.Status)
	if err != nil {
		return "", time.Time{}, err
	}

	when, err := domain.ParseDate(in.Date, s.loc)
	if err != nil {
		return "", time.Time{}, err
	}

	return status, when, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx)
	}
}
