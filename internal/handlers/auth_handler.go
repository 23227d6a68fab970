package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/petshop-scheduler/internal/middleware"
	ucAuth "github.com/BruksfildServices01/petshop-scheduler/internal/usecase/auth"
)

type AuthHandler struct {
	svc          *ucAuth.Service
	secureCookie bool
}

func NewAuthHandler(svc *ucAuth.Service, secureCookie bool) *AuthHandler {
	return &AuthHandler{svc: svc, secureCookie: secureCookie}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	client, token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.setTokenCookie(c, token, int(ucAuth.TokenTTL.Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"cliente": gin.H{
			"id":    client.ID,
			"nome":  client.Name,
			"email": client.Email,
		},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logout realizado"})
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, value, maxAge, "/", "", h.secureCookie, true)
}
