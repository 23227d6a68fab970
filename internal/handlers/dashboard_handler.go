package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/petshop-scheduler/internal/httpresp"
	ucDashboard "github.com/BruksfildServices01/petshop-scheduler/internal/usecase/dashboard"
)

type DashboardHandler struct {
	svc *ucDashboard.Service
}

func NewDashboardHandler(svc *ucDashboard.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.svc.GetSummary(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, summary)
}
