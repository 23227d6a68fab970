package catalog

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/petshop-scheduler/internal/audit"
	"github.com/BruksfildServices01/petshop-scheduler/internal/domain/appointment"
	domain "github.com/BruksfildServices01/petshop-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

type Input struct {
	Name        string
	Description string
	Price       float64
}

type Invalidator interface {
	Invalidate(ctx context.Context)
}

// AppointmentFinder é o pedaço do repositório de agendamentos usado aqui.
type AppointmentFinder interface {
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)
}

type Service struct {
	repo         domain.Repository
	appointments AppointmentFinder
	audit        audit.Recorder
	invalidator  Invalidator
}

func NewService(
	repo domain.Repository,
	appointments AppointmentFinder,
	rec audit.Recorder,
	inv Invalidator,
) *Service {
	return &Service{
		repo:         repo,
		appointments: appointments,
		audit:        rec,
		invalidator:  inv,
	}
}

func (s *Service) FindAll(ctx context.Context) ([]models.Service, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) FindByID(ctx context.Context, id uint) (*models.Service, error) {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrNotFound
	}
	return svc, nil
}

func (s *Service) FindByAppointmentID(ctx context.Context, appointmentID uint) ([]models.Service, error) {
	ap, err := s.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, appointment.ErrAppointmentNotFound
	}
	return s.repo.FindByAppointmentID(ctx, appointmentID)
}

func (s *Service) Create(ctx context.Context, in Input) (*models.Service, error) {
	svc := &models.Service{}
	apply(svc, in)

	if err := domain.Validate(svc); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}

	audit.Record(ctx, s.audit, "service_created", "service", svc.ID, map[string]any{
		"price": svc.Price,
	})

	return svc, nil
}

func (s *Service) Update(ctx context.Context, id uint, in Input) (*models.Service, error) {
	svc, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(svc, in)

	if err := domain.Validate(svc); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}

	audit.Record(ctx, s.audit, "service_updated", "service", svc.ID, map[string]any{
		"price": svc.Price,
	})
	// preço entra na receita do dia
	s.invalidate(ctx)

	return svc, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}

	n, err := s.repo.CountAppointmentLinks(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	audit.Record(ctx, s.audit, "service_deleted", "service", id, nil)

	return nil
}

func apply(svc *models.Service, in Input) {
	svc.Name = strings.TrimSpace(in.Name)
	svc.Description = strings.TrimSpace(in.Description)
	svc.Price = in.Price
}

func (s *Service) invalidate(ctx context.Context) {
	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx)
	}
}
