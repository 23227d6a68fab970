package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/petshop-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/petshop-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	svc *ucAppointment.Service
}

func NewAppointmentHandler(svc *ucAppointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

// ======================================================
// REQUESTS
// ======================================================

type appointmentRequest struct {
	PetID  uint   `json:"petId"`
	Date   string `json:"data"`
	Status string `json:"status"`
	Note   string `json:"observacao"`
}

func (r appointmentRequest) input() ucAppointment.Input {
	return ucAppointment.Input{
		PetID:  r.PetID,
		Date:   r.Date,
		Status: r.Status,
		Note:   r.Note,
	}
}

type addServiceRequest struct {
	ServiceID uint `json:"servicoId"`
}

// ======================================================
// QUERIES
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Array(c, withServicesAll(aps))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ap, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ByPet(c *gin.Context) {
	petID, ok := parseID(c, "petId")
	if !ok {
		return
	}

	aps, err := h.svc.FindByPetID(c.Request.Context(), petID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Array(c, withServicesAll(aps))
}

func (h *AppointmentHandler) Pet(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ap, err := h.svc.FindWithPet(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Services(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ap, err := h.svc.FindWithServices(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, withServices(ap))
}

// ======================================================
// COMMANDS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req appointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.svc.Create(c.Request.Context(), req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req appointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.svc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
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

func (h *AppointmentHandler) AddService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req addServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.ServiceID == 0 {
		httperr.BadRequest(c, "invalid_id", "ID do serviço inválido")
		return
	}

	if err := h.svc.AddService(c.Request.Context(), id, req.ServiceID); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *AppointmentHandler) RemoveService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	serviceID, ok := parseID(c, "servicoId")
	if !ok {
		return
	}

	if err := h.svc.RemoveService(c.Request.Context(), id, serviceID); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
