package client

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/petshop-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/petshop-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
	"github.com/BruksfildServices01/petshop-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type Input struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Status   string
	Note     string
}

// Invalidator descarta o resumo do dashboard em cache.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

type Options struct {
	Audit       audit.Recorder
	Invalidator Invalidator
	// DomainCheck liga a consulta MX/A do domínio do e-mail.
	DomainCheck bool
}

// ======================================================
// SERVICE
// ======================================================

type Service struct {
	repo        domain.Repository
	audit       audit.Recorder
	invalidator Invalidator
	domainOK    func(email string) bool
}

func NewService(repo domain.Repository, opts Options) *Service {
	s := &Service{
		repo:        repo,
		audit:       opts.Audit,
		invalidator: opts.Invalidator,
	}
	if opts.DomainCheck {
		s.domainOK = validators.IsEmailDomainValid
	}
	return s
}

func (s *Service) FindAll(ctx context.Context) ([]models.Client, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) FindByID(ctx context.Context, id uint) (*models.Client, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *Service) FindWithPets(ctx context.Context, id uint) (*models.Client, error) {
	c, err := s.repo.FindWithPets(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// ======================================================
// CREATE
// ======================================================

func (s *Service) Create(ctx context.Context, in Input) (*models.Client, error) {
	email := validators.NormalizeEmail(in.Email)

	// --------------------------------------------------
	// 1️⃣ E-mail duplicado
	// --------------------------------------------------
	if err := s.assertEmailFree(ctx, email); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Campos
	// --------------------------------------------------
	if err := s.validate(in, email); err != nil {
		return nil, err
	}

	status, err := domain.NormalizeStatus(in.Status)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Senha
	// --------------------------------------------------
	password := in.Password
	if password == "" {
		password = domain.DefaultPassword
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	c := &models.Client{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: hash,
		Status:       string(status),
		Note:         in.Note,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	audit.Record(ctx, s.audit, "client_created", "client", c.ID, map[string]any{
		"email": c.Email,
	})
	s.invalidate(ctx)

	return c, nil
}

// ======================================================
// UPDATE
// ======================================================

func (s *Service) Update(ctx context.Context, id uint, in Input) (*models.Client, error) {
	c, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	email := validators.NormalizeEmail(in.Email)
	if email != c.Email {
		if err := s.assertEmailFree(ctx, email); err != nil {
			return nil, err
		}
	}

	if err := s.validate(in, email); err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Status) != "" {
		status, err := domain.NormalizeStatus(in.Status)
		if err != nil {
			return nil, err
		}
		c.Status = string(status)
	}

	if in.Password != "" {
		hash, err := hashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		c.PasswordHash = hash
	}

	c.Name = strings.TrimSpace(in.Name)
	c.Email = email
	c.Phone = strings.TrimSpace(in.Phone)
	c.Note = in.Note

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	audit.Record(ctx, s.audit, "client_updated", "client", c.ID, nil)
	s.invalidate(ctx)

	return c, nil
}

// ======================================================
// DELETE
// ======================================================

func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}

	pets, err := s.repo.CountPets(ctx, id)
	if err != nil {
		return err
	}
	if pets > 0 {
		return domain.ErrHasPets
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	audit.Record(ctx, s.audit, "client_deleted", "client", id, nil)
	s.invalidate(ctx)

	return nil
}

// ------------------------------------------------------

func (s *Service) assertEmailFree(ctx context.Context, email string) error {
	if email == "" {
		return nil
	}
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicateEmail
	}
	return nil
}

func (s *Service) validate(in Input, email string) error {
	if err := domain.ValidateFields(in.Name, email, in.Phone); err != nil {
		return err
	}
	if s.domainOK != nil && !s.domainOK(email) {
		return domain.ErrEmailDomain
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx)
	}
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
