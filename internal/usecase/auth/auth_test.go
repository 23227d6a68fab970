package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/petshop-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

func setup(t *testing.T) (*Service, *memory.ClientRepo, *models.Client) {
	t.Helper()

	repo := memory.NewClientRepo(memory.NewStore())
	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	c := &models.Client{Name: "Ana", Email: "ana@x.com", Phone: "1", PasswordHash: string(hash), Status: "ATIVO"}
	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatal(err)
	}

	return NewService(repo, "test-secret"), repo, c
}

func TestLogin(t *testing.T) {
	svc, _, c := setup(t)
	ctx := context.Background()

	got, token, err := svc.Login(ctx, " ANA@x.com ", "senha123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != c.ID || token == "" {
		t.Fatalf("unexpected login result: %+v %q", got, token)
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("token should parse: %v", err)
	}
	if claims.ID != c.ID || claims.Email != "ana@x.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if d := claims.ExpiresAt.Sub(claims.IssuedAt.Time); d != TokenTTL {
		t.Fatalf("expected 8h expiry, got %s", d)
	}
}

func TestLogin_Failures(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	if _, _, err := svc.Login(ctx, "ana@x.com", "errada"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "ninguem@x.com", "senha123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "", "senha123"); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected missing credentials, got %v", err)
	}
}

func TestParseToken_Rejects(t *testing.T) {
	svc, _, c := setup(t)

	if _, err := svc.ParseToken(""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected missing token, got %v", err)
	}
	if _, err := svc.ParseToken("lixo"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}

	other := NewService(nil, "outro-segredo")
	token, _ := other.GenerateToken(c)
	if _, err := svc.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid signature rejection, got %v", err)
	}

	expired := NewService(nil, "test-secret")
	expired.now = func() time.Time { return time.Now().Add(-9 * time.Hour) }
	token, _ = expired.GenerateToken(c)
	if _, err := svc.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token rejection, got %v", err)
	}
}

func TestAuthenticate_UserGone(t *testing.T) {
	svc, repo, c := setup(t)
	ctx := context.Background()

	token, _ := svc.GenerateToken(c)

	if got, err := svc.Authenticate(ctx, token); err != nil || got.ID != c.ID {
		t.Fatalf("expected client, got %v %v", got, err)
	}

	_ = repo.Delete(ctx, c.ID)
	if _, err := svc.Authenticate(ctx, token); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
}
