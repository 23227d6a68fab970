package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/petshop-scheduler/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/petshop-scheduler/internal/usecase/catalog"
)

// ServiceHandler atende /servicos (catálogo de banho, tosa etc).
type ServiceHandler struct {
	svc *ucCatalog.Service
}

func NewServiceHandler(svc *ucCatalog.Service) *ServiceHandler {
	return &ServiceHandler{svc: svc}
}

type serviceRequest struct {
	Name        string  `json:"nome"`
	Description string  `json:"descricao"`
	Price       float64 `json:"preco"`
}

func (r serviceRequest) input() ucCatalog.Input {
	return ucCatalog.Input{Name: r.Name, Description: r.Description, Price: r.Price}
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Array(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	svc, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, svc)
}

func (h *ServiceHandler) ByAppointment(c *gin.Context) {
	appointmentID, ok := parseID(c, "agendamentoId")
	if !ok {
		return
	}

	services, err := h.svc.FindByAppointmentID(c.Request.Context(), appointmentID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Array(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req serviceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.svc.Create(c.Request.Context(), req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req serviceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.svc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
