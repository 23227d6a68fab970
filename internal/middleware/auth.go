package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petshop-scheduler/internal/audit"
	"github.com/BruksfildServices01/petshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/petshop-scheduler/internal/models"
)

const (
	ContextUserID = "userID"
	ContextUser   = "user"

	TokenCookie = "token"
)

// Authenticator valida o token do cookie e devolve o cliente logado.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Client, error)
}

// AuthUser é a visão reduzida do cliente exposta em /auth/me.
type AuthUser struct {
	ID     uint   `json:"id"`
	Name   string `json:"nome"`
	Email  string `json:"email"`
	Phone  string `json:"telefone"`
	Status string `json:"status"`
}

func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(TokenCookie)

		client, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			httperr.Respond(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, client.ID)
		c.Set(ContextUser, AuthUser{
			ID:     client.ID,
			Name:   client.Name,
			Email:  client.Email,
			Phone:  client.Phone,
			Status: client.Status,
		})
		c.Request = c.Request.WithContext(audit.WithActor(c.Request.Context(), client.ID))

		c.Next()
	}
}

func CurrentUser(c *gin.Context) (AuthUser, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return AuthUser{}, false
	}
	u, ok := v.(AuthUser)
	return u, ok
}
