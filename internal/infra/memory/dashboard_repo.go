package memory

import (
	"context"
	"time"

	"github.com/BruksfildServices01/petshop-scheduler/internal/domain/dashboard"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

type DashboardRepo struct {
	s *Store
}

func NewDashboardRepo(s *Store) *DashboardRepo {
	return &DashboardRepo{s: s}
}

func (r *DashboardRepo) RevenueBetween(ctx context.Context, start, end time.Time) (float64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var total float64
	for k := range r.s.links {
		ap, ok := r.s.appointments[k.appointmentID]
		if !ok || ap.Date.Before(start) || !ap.Date.Before(end) {
			continue
		}
		if svc, ok := r.s.services[k.serviceID]; ok {
			total += svc.Price
		}
	}
	return total, nil
}

func (r *DashboardRepo) CountClients(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.clients)), nil
}

func (r *DashboardRepo) CountAppointments(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.appointments)), nil
}

func (r *DashboardRepo) CountPets(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.pets)), nil
}

func (r *DashboardRepo) ListByDate(ctx context.Context, order dashboard.Order, limit int) ([]models.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Appointment, 0, len(r.s.appointments))
	for _, id := range sortedKeys(r.s.appointments) {
		ap := r.s.appointments[id]
		ap.Pet = r.s.petPtr(ap.PetID, true)
		out = append(out, ap)
	}
	sortByDate(out, order == dashboard.OrderDesc)

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ dashboard.Repository = (*DashboardRepo)(nil)
