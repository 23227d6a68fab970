package appointment

import (
	"context"

	"github.com/BruksfildServices01/petshop-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/petshop-scheduler/internal/domain/appointment"
)

func (s *Service) assertBoth(ctx context.Context, appointmentID, serviceID uint) error {
	if _, err := s.FindByID(ctx, appointmentID); err != nil {
		return err
	}

	svc, err := s.services.FindByID(ctx, serviceID)
	if err != nil {
		return err
	}
	if svc == nil {
		return domain.ErrServiceNotFound
	}
	return nil
}

func (s *Service) AddService(ctx context.Context, appointmentID, serviceID uint) error {
	if err := s.assertBoth(ctx, appointmentID, serviceID); err != nil {
		return err
	}

	linked, err := s.repo.HasService(ctx, appointmentID, serviceID)
	if err != nil {
		return err
	}
	if linked {
		return domain.ErrServiceAlreadyLinked
	}

	// o repositório ainda traduz violação de chave para ErrServiceAlreadyLinked
	if err := s.repo.AddService(ctx, appointmentID, serviceID); err != nil {
		return err
	}

	audit.Record(ctx, s.audit, "appointment_service_added", "appointment", appointmentID, map[string]any{
		"service_id": serviceID,
	})
	s.invalidate(ctx)

	return nil
}

func (s *Service) RemoveService(ctx context.Context, appointmentID, serviceID uint) error {
	if err := s.assertBoth(ctx, appointmentID, serviceID); err != nil {
		return err
	}

	removed, err := s.repo.RemoveService(ctx, appointmentID, serviceID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrServiceNotLinked
	}

	audit.Record(ctx, s.audit, "appointment_service_removed", "appointment", appointmentID, map[string]any{
		"service_id": serviceID,
	})
	s.invalidate(ctx)

	return nil
}
