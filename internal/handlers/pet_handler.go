package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/petshop-scheduler/internal/httpresp"
	ucPet "github.com/BruksfildServices01/petshop-scheduler/internal/usecase/pet"
	"github.com/BruksfildServices01/petshop-scheduler/internal/usecase/petphoto"
)

// Limite do upload da foto (multipart).
const maxPhotoBytes = 5 << 20

type PetHandler struct {
	svc    *ucPet.Service
	photos *petphoto.Service
}

func NewPetHandler(svc *ucPet.Service, photos *petphoto.Service) *PetHandler {
	return &PetHandler{svc: svc, photos: photos}
}

type petRequest struct {
	Name     string  `json:"nome"`
	Species  string  `json:"especie"`
	Breed    string  `json:"raca"`
	Age      int     `json:"idade"`
	Weight   float64 `json:"peso"`
	ClientID uint    `json:"clienteId"`
}

func (r petRequest) input() ucPet.Input {
	return ucPet.Input{
		Name:     r.Name,
		Species:  r.Species,
		Breed:    r.Breed,
		Age:      r.Age,
		Weight:   r.Weight,
		ClientID: r.ClientID,
	}
}

// ======================================================
// QUERIES
// ======================================================

func (h *PetHandler) List(c *gin.Context) {
	pets, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Array(c, pets)
}

func (h *PetHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	pet, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, pet)
}

func (h *PetHandler) ByClient(c *gin.Context) {
	clientID, ok := parseID(c, "clienteId")
	if !ok {
		return
	}

	pets, err := h.svc.FindByClientID(c.Request.Context(), clientID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Array(c, pets)
}

func (h *PetHandler) Client(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	pet, err := h.svc.FindWithClient(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, pet)
}

func (h *PetHandler) Appointments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	pet, err := h.svc.FindWithAppointments(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, withAppointments(pet))
}

// ======================================================
// COMMANDS
// ======================================================

func (h *PetHandler) Create(c *gin.Context) {
	var req petRequest
	if !bindJSON(c, &req) {
		return
	}

	pet, err := h.svc.Create(c.Request.Context(), req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, pet)
}

func (h *PetHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req petRequest
	if !bindJSON(c, &req) {
		return
	}

	pet, err := h.svc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, pet)
}

func (h *PetHandler) Delete(c *gin.Context) {
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

// UploadPhoto recebe multipart com o campo "foto".
func (h *PetHandler) UploadPhoto(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("foto")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Arquivo 'foto' é obrigatório")
		return
	}
	if file.Size > maxPhotoBytes {
		httperr.BadRequest(c, "photo_too_large", "A foto deve ter no máximo 5MB")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	defer f.Close()

	pet, err := h.photos.Upload(c.Request.Context(), id, f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, pet)
}
