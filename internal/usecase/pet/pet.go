package pet

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/petshop-scheduler/internal/audit"
	"github.com/BruksfildServices01/petshop-scheduler/internal/domain/client"
	domain "github.com/BruksfildServices01/petshop-scheduler/internal/domain/pet"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

type Input struct {
	Name     string
	Species  string
	Breed    string
	Age      int
	Weight   float64
	ClientID uint
}

type Invalidator interface {
	Invalidate(ctx context.Context)
}

type Service struct {
	repo        domain.Repository
	clients     client.Repository
	audit       audit.Recorder
	invalidator Invalidator
}

func NewService(
	repo domain.Repository,
	clients client.Repository,
	rec audit.Recorder,
	inv Invalidator,
) *Service {
	return &Service{
		repo:        repo,
		clients:     clients,
		audit:       rec,
		invalidator: inv,
	}
}

// ======================================================
// QUERIES
// ======================================================

func (s *Service) FindAll(ctx context.Context) ([]models.Pet, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) FindByID(ctx context.Context, id uint) (*models.Pet, error) {
	return found(s.repo.FindByID(ctx, id))
}

func (s *Service) FindWithClient(ctx context.Context, id uint) (*models.Pet, error) {
	return found(s.repo.FindWithClient(ctx, id))
}

func (s *Service) FindWithAppointments(ctx context.Context, id uint) (*models.Pet, error) {
	return found(s.repo.FindWithAppointments(ctx, id))
}

func (s *Service) FindByClientID(ctx context.Context, clientID uint) ([]models.Pet, error) {
	c, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrClientLookupNotFound
	}
	return s.repo.FindByClientID(ctx, clientID)
}

func found(p *models.Pet, err error) (*models.Pet, error) {
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// ======================================================
// COMMANDS
// ======================================================

func (s *Service) Create(ctx context.Context, in Input) (*models.Pet, error) {
	if err := s.assertClient(ctx, in.ClientID); err != nil {
		return nil, err
	}

	p := &models.Pet{}
	apply(p, in)

	if err := domain.Validate(p); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	audit.Record(ctx, s.audit, "pet_created", "pet", p.ID, map[string]any{
		"client_id": p.ClientID,
	})
	s.invalidate(ctx)

	return p, nil
}

// Update revalida o cliente só quando ele muda. ClientID zero mantém o atual.
func (s *Service) Update(ctx context.Context, id uint, in Input) (*models.Pet, error) {
	p, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.ClientID == 0 {
		in.ClientID = p.ClientID
	}
	if in.ClientID != p.ClientID {
		if err := s.assertClient(ctx, in.ClientID); err != nil {
			return nil, err
		}
	}

	apply(p, in)

	if err := domain.Validate(p); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	audit.Record(ctx, s.audit, "pet_updated", "pet", p.ID, nil)
	s.invalidate(ctx)

	return p, nil
}

// UpdatePhoto grava a nova URL e devolve a anterior para limpeza.
func (s *Service) UpdatePhoto(ctx context.Context, id uint, url string) (*models.Pet, string, error) {
	p, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	previous := p.PhotoURL
	p.PhotoURL = url

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, "", err
	}

	audit.Record(ctx, s.audit, "pet_photo_updated", "pet", p.ID, nil)

	return p, previous, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}

	n, err := s.repo.CountAppointments(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasAppointments
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	audit.Record(ctx, s.audit, "pet_deleted", "pet", id, nil)
	s.invalidate(ctx)

	return nil
}

// ------------------------------------------------------

func (s *Service) assertClient(ctx context.Context, clientID uint) error {
	if clientID == 0 {
		return domain.ErrClientNotFound
	}
	c, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrClientNotFound
	}
	return nil
}

func apply(p *models.Pet, in Input) {
	p.Name = strings.TrimSpace(in.Name)
	p.Species = strings.TrimSpace(in.Species)
	p.Breed = strings.TrimSpace(in.Breed)
	p.Age = in.Age
	p.Weight = in.Weight
	p.ClientID = in.ClientID
}

func (s *Service) invalidate(ctx context.Context) {
	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx)
	}
}
