package appointment

import (
	"context"

	"github.com/BruksfildServices01/petshop-scheduler/internal/audit"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

func (s *Service) Create(ctx context.Context, in Input) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Pet
	// --------------------------------------------------
	if err := s.assertPet(ctx, in.PetID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Data / status
	// --------------------------------------------------
	status, when, err := s.parseFields(in)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// --------------------------------------------------
	// 3️⃣ Conflito de horário
	// --------------------------------------------------
	if err := s.assertFreeSlot(ctx, when, 0); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Criação
	// --------------------------------------------------
	ap := &models.Appointment{
		Date:   when,
		Status: string(status),
		Note:   in.Note,
		PetID:  in.PetID,
	}

	if err := s.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	audit.Record(ctx, s.audit, "appointment_created", "appointment", ap.ID, map[string]any{
		"pet_id": ap.PetID,
		"date":   ap.Date,
	})
	s.invalidate(ctx)

	return ap, nil
}
