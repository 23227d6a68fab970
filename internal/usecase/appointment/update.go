package appointment

import (
	"context"

	"github.com/BruksfildServices01/petshop-scheduler/internal/audit"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

// Update aceita qualquer status válido, sem grafo de transição. PetID zero
// mantém o pet atual.
func (s *Service) Update(ctx context.Context, id uint, in Input) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// --------------------------------------------------
	// 0️⃣ Agendamento
	// --------------------------------------------------
	ap, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 1️⃣ Pet (só quando muda)
	// --------------------------------------------------
	if in.PetID != 0 && in.PetID != ap.PetID {
		if err := s.assertPet(ctx, in.PetID); err != nil {
			return nil, err
		}
		ap.PetID = in.PetID
	}

	// --------------------------------------------------
	// 2️⃣ Data / status
	// --------------------------------------------------
	status, when, err := s.parseFields(in)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Conflito (mesmo instante não revarre)
	// --------------------------------------------------
	if !when.Equal(ap.Date) {
		if err := s.assertFreeSlot(ctx, when, ap.ID); err != nil {
			return nil, err
		}
	}

	previous := ap.Status

	ap.Date = when
	ap.Status = string(status)
	ap.Note = in.Note
	ap.Pet = nil

	if err := s.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	audit.Record(ctx, s.audit, "appointment_updated", "appointment", ap.ID, map[string]any{
		"status_from": previous,
		"status_to":   ap.Status,
	})
	s.invalidate(ctx)

	return ap, nil
}
