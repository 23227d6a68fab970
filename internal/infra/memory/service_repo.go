package memory

import (
	"context"
	"time"

	"github.com/BruksfildServices01/petshop-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

type ServiceRepo struct {
	s *Store
}

func NewServiceRepo(s *Store) *ServiceRepo {
	return &ServiceRepo{s: s}
}

func (r *ServiceRepo) FindAll(ctx context.Context) ([]models.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Service, 0, len(r.s.services))
	for _, id := range sortedKeys(r.s.services) {
		out = append(out, r.s.services[id])
	}
	return out, nil
}

func (r *ServiceRepo) FindByID(ctx context.Context, id uint) (*models.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	svc, ok := r.s.services[id]
	if !ok {
		return nil, nil
	}
	return &svc, nil
}

func (r *ServiceRepo) FindByAppointmentID(ctx context.Context, appointmentID uint) ([]models.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.servicesOf(appointmentID), nil
}

func (r *ServiceRepo) Create(ctx context.Context, svc *models.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now()
	svc.ID = r.s.nextID("services")
	svc.CreatedAt, svc.UpdatedAt = now, now
	r.s.services[svc.ID] = *svc
	return nil
}

func (r *ServiceRepo) Update(ctx context.Context, svc *models.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	svc.UpdatedAt = time.Now()
	r.s.services[svc.ID] = *svc
	return nil
}

func (r *ServiceRepo) Delete(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.services, id)
	return nil
}

func (r *ServiceRepo) CountAppointmentLinks(ctx context.Context, id uint) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for k := range r.s.links {
		if k.serviceID == id {
			n++
		}
	}
	return n, nil
}

var _ catalog.Repository = (*ServiceRepo)(nil)
