package memory

import (
	"context"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/petshop-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

type ClientRepo struct {
	s *Store
}

func NewClientRepo(s *Store) *ClientRepo {
	return &ClientRepo{s: s}
}

func (r *ClientRepo) FindAll(ctx context.Context) ([]models.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Client, 0, len(r.s.clients))
	for _, id := range sortedKeys(r.s.clients) {
		out = append(out, r.s.clients[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ClientRepo) FindByID(ctx context.Context, id uint) (*models.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ClientRepo) FindByEmail(ctx context.Context, email string) (*models.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, id := range sortedKeys(r.s.clients) {
		if c := r.s.clients[id]; c.Email == email {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ClientRepo) FindWithPets(ctx context.Context, id uint) (*models.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}

	c.Pets = []models.Pet{}
	for _, pid := range sortedKeys(r.s.pets) {
		if p := r.s.pets[pid]; p.ClientID == id {
			c.Pets = append(c.Pets, p)
		}
	}
	return &c, nil
}

func (r *ClientRepo) Create(ctx context.Context, c *models.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.clients {
		if existing.Email == c.Email {
			return domain.ErrDuplicateEmail
		}
	}

	now := time.Now()
	c.ID = r.s.nextID("clients")
	c.CreatedAt, c.UpdatedAt = now, now
	stored := *c
	stored.Pets = nil
	r.s.clients[c.ID] = stored
	return nil
}

func (r *ClientRepo) Update(ctx context.Context, c *models.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, existing := range r.s.clients {
		if id != c.ID && existing.Email == c.Email {
			return domain.ErrDuplicateEmail
		}
	}

	c.UpdatedAt = time.Now()
	stored := *c
	stored.Pets = nil
	r.s.clients[c.ID] = stored
	return nil
}

func (r *ClientRepo) Delete(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.clients, id)
	return nil
}

func (r *ClientRepo) CountPets(ctx context.Context, id uint) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, p := range r.s.pets {
		if p.ClientID == id {
			n++
		}
	}
	return n, nil
}

var _ domain.Repository = (*ClientRepo)(nil)
