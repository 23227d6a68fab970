package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/petshop-scheduler/internal/middleware"
)

// Me devolve o usuário carregado pelo AuthMiddleware.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Unauthorized(c, "not_authenticated", "Não autenticado")
		return
	}

	c.JSON(http.StatusOK, gin.H{"usuario": user})
}
