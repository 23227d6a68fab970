package memory

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/petshop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

type AppointmentRepo struct {
	s *Store
}

func NewAppointmentRepo(s *Store) *AppointmentRepo {
	return &AppointmentRepo{s: s}
}

// with monta a visão completa: Pet sempre, serviços quando pedido.
func (r *AppointmentRepo) with(ap models.Appointment, services bool) models.Appointment {
	ap.Pet = r.s.petPtr(ap.PetID, false)
	if services {
		ap.Services = r.s.servicesOf(ap.ID)
	}
	return ap
}

func (r *AppointmentRepo) FindAll(ctx context.Context) ([]models.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Appointment, 0, len(r.s.appointments))
	for _, id := range sortedKeys(r.s.appointments) {
		out = append(out, r.with(r.s.appointments[id], true))
	}
	sortByDate(out, false)
	return out, nil
}

func (r *AppointmentRepo) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ap, ok := r.s.appointments[id]
	if !ok {
		return nil, nil
	}
	return &ap, nil
}

func (r *AppointmentRepo) FindByPetID(ctx context.Context, petID uint) ([]models.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Appointment, 0)
	for _, id := range sortedKeys(r.s.appointments) {
		if ap := r.s.appointments[id]; ap.PetID == petID {
			out = append(out, r.with(ap, true))
		}
	}
	sortByDate(out, false)
	return out, nil
}

func (r *AppointmentRepo) FindWithPet(ctx context.Context, id uint) (*models.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ap, ok := r.s.appointments[id]
	if !ok {
		return nil, nil
	}
	ap = r.with(ap, false)
	return &ap, nil
}

func (r *AppointmentRepo) FindWithServices(ctx context.Context, id uint) (*models.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ap, ok := r.s.appointments[id]
	if !ok {
		return nil, nil
	}
	ap.Services = r.s.servicesOf(id)
	return &ap, nil
}

func (r *AppointmentRepo) Create(ctx context.Context, ap *models.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now()
	ap.ID = r.s.nextID("appointments")
	ap.CreatedAt, ap.UpdatedAt = now, now
	r.s.appointments[ap.ID] = bare(*ap)
	return nil
}

func (r *AppointmentRepo) Update(ctx context.Context, ap *models.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ap.UpdatedAt = time.Now()
	r.s.appointments[ap.ID] = bare(*ap)
	return nil
}

func bare(ap models.Appointment) models.Appointment {
	ap.Pet = nil
	ap.Services = nil
	return ap
}

func (r *AppointmentRepo) Delete(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for k := range r.s.links {
		if k.appointmentID == id {
			delete(r.s.links, k)
		}
	}
	delete(r.s.appointments, id)
	return nil
}

func (r *AppointmentRepo) HasService(ctx context.Context, appointmentID, serviceID uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.links[linkKey{appointmentID, serviceID}]
	return ok, nil
}

func (r *AppointmentRepo) AddService(ctx context.Context, appointmentID, serviceID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	k := linkKey{appointmentID, serviceID}
	if _, ok := r.s.links[k]; ok {
		return domain.ErrServiceAlreadyLinked
	}
	r.s.links[k] = time.Now()
	return nil
}

func (r *AppointmentRepo) RemoveService(ctx context.Context, appointmentID, serviceID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	k := linkKey{appointmentID, serviceID}
	if _, ok := r.s.links[k]; !ok {
		return false, nil
	}
	delete(r.s.links, k)
	return true, nil
}

var _ domain.Repository = (*AppointmentRepo)(nil)
