package memory

import (
	"context"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/petshop-scheduler/internal/domain/pet"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

type PetRepo struct {
	s *Store
}

func NewPetRepo(s *Store) *PetRepo {
	return &PetRepo{s: s}
}

func (r *PetRepo) FindAll(ctx context.Context) ([]models.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Pet, 0, len(r.s.pets))
	for _, id := range sortedKeys(r.s.pets) {
		out = append(out, *r.s.petPtr(id, true))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *PetRepo) FindByID(ctx context.Context, id uint) (*models.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.petPtr(id, false), nil
}

func (r *PetRepo) FindByClientID(ctx context.Context, clientID uint) ([]models.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Pet, 0)
	for _, id := range sortedKeys(r.s.pets) {
		if p := r.s.pets[id]; p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PetRepo) FindWithClient(ctx context.Context, id uint) (*models.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.petPtr(id, true), nil
}

func (r *PetRepo) FindWithAppointments(ctx context.Context, id uint) (*models.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p := r.s.petPtr(id, false)
	if p == nil {
		return nil, nil
	}

	p.Appointments = []models.Appointment{}
	for _, aid := range sortedKeys(r.s.appointments) {
		if ap := r.s.appointments[aid]; ap.PetID == id {
			p.Appointments = append(p.Appointments, ap)
		}
	}
	sortByDate(p.Appointments, false)
	return p, nil
}

func (r *PetRepo) Create(ctx context.Context, p *models.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now()
	p.ID = r.s.nextID("pets")
	p.CreatedAt, p.UpdatedAt = now, now
	r.s.pets[p.ID] = strip(*p)
	return nil
}

func (r *PetRepo) Update(ctx context.Context, p *models.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.UpdatedAt = time.Now()
	r.s.pets[p.ID] = strip(*p)
	return nil
}

func strip(p models.Pet) models.Pet {
	p.Client = nil
	p.Appointments = nil
	return p
}

func (r *PetRepo) Delete(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.pets, id)
	return nil
}

func (r *PetRepo) CountAppointments(ctx context.Context, id uint) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, ap := range r.s.appointments {
		if ap.PetID == id {
			n++
		}
	}
	return n, nil
}

var _ domain.Repository = (*PetRepo)(nil)
