package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/petshop-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/petshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
	"github.com/BruksfildServices01/petshop-scheduler/internal/validators"
)

const TokenTTL = 8 * time.Hour

var (
	ErrMissingCredentials = httperr.Validation("missing_credentials", "Email e senha são obrigatórios")
	ErrInvalidCredentials = httperr.UnauthorizedErr("invalid_credentials", "Credenciais inválidas")
	ErrMissingToken       = httperr.UnauthorizedErr("missing_token", "Token não fornecido")
	ErrInvalidToken       = httperr.UnauthorizedErr("invalid_token", "Token inválido")
	ErrUserNotFound       = httperr.UnauthorizedErr("user_not_found", "Usuário não encontrado")
)

type Claims struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Service struct {
	clients client.Repository
	secret  []byte
	now     func() time.Time
}

func NewService(clients client.Repository, secret string) *Service {
	return &Service{
		clients: clients,
		secret:  []byte(secret),
		now:     time.Now,
	}
}

// Login confere a senha e emite o token do cookie.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Client, string, error) {
	email = validators.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", ErrMissingCredentials
	}

	c, err := s.clients.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if c == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(c)
	if err != nil {
		return nil, "", err
	}

	return c, token, nil
}

func (s *Service) GenerateToken(c *models.Client) (string, error) {
	now := s.now()
	claims := Claims{
		ID:    c.ID,
		Email: c.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *Service) ParseToken(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid || claims.ID == 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Authenticate valida o token e recarrega o cliente.
func (s *Service) Authenticate(ctx context.Context, raw string) (*models.Client, error) {
	claims, err := s.ParseToken(raw)
	if err != nil {
		return nil, err
	}

	c, err := s.clients.FindByID(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrUserNotFound
	}
	return c, nil
}
