package client

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/petshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
	"github.com/BruksfildServices01/petshop-scheduler/internal/validators"
)

type Status string

const (
	StatusActive   Status = "ATIVO"
	StatusInactive Status = "INATIVO"
)

// Senha usada quando o cadastro vem sem senha.
const DefaultPassword = "senha123"

var (
	ErrNotFound       = httperr.NotFoundErr("client_not_found", "Cliente não encontrado")
	ErrDuplicateEmail = httperr.Conflict("duplicate_email", "Já existe um cliente com este e-mail")
	ErrMissingFields  = httperr.Validation("missing_fields", "Nome, e-mail e telefone são campos obrigatórios")
	ErrInvalidEmail   = httperr.Validation("invalid_email_format", "Formato de e-mail inválido")
	ErrEmailDomain    = httperr.Validation("invalid_email_domain", "O domínio do e-mail informado não parece ser válido")
	ErrInvalidStatus  = httperr.Validation("invalid_status", "Status inválido. Valores válidos: ATIVO, INATIVO")
	ErrHasPets        = httperr.Conflict("client_has_pets", "Cliente possui pets cadastrados")
)

type Repository interface {
	FindAll(ctx context.Context) ([]models.Client, error)
	FindByID(ctx context.Context, id uint) (*models.Client, error)
	FindByEmail(ctx context.Context, email string) (*models.Client, error)
	FindWithPets(ctx context.Context, id uint) (*models.Client, error)

	Create(ctx context.Context, c *models.Client) error
	Update(ctx context.Context, c *models.Client) error
	Delete(ctx context.Context, id uint) error

	CountPets(ctx context.Context, id uint) (int64, error)
}

func ValidateFields(name, email, phone string) error {
	if validators.IsBlank(name) || validators.IsBlank(email) || validators.IsBlank(phone) {
		return ErrMissingFields
	}
	if !validators.IsEmailFormatValid(email) {
		return ErrInvalidEmail
	}
	return nil
}

// NormalizeStatus: vazio vira ATIVO.
func NormalizeStatus(raw string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(raw))) {
	case "", StatusActive:
		return StatusActive, nil
	case StatusInactive:
		return StatusInactive, nil
	default:
		return "", ErrInvalidStatus
	}
}
