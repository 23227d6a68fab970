package appointment

import (
	"context"

	"github.com/BruksfildServices01/petshop-scheduler/internal/audit"
)

// Delete remove o agendamento e os vínculos com serviços.
func (s *Service) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	audit.Record(ctx, s.audit, "appointment_deleted", "appointment", id, nil)
	s.invalidate(ctx)

	return nil
}
