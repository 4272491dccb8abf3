package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/apierror"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/service"
)

type EspecieRazaHandler struct {
	taxonomia service.EspecieRazaService
}

func NewEspecieRazaHandler(taxonomia service.EspecieRazaService) *EspecieRazaHandler {
	return &EspecieRazaHandler{taxonomia: taxonomia}
}

func (h *EspecieRazaHandler) CrearEspecie(c *gin.Context) {
	var req dto.EspecieRequest
	if !bindAndValidate(c, &req) {
		return
	}
	especie, err := h.taxonomia.CrearEspecie(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Especie creada", especie))
}

func (h *EspecieRazaHandler) ListarEspecies(c *gin.Context) {
	especies, err := h.taxonomia.ListarEspecies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Especies", especies))
}

func (h *EspecieRazaHandler) ActualizarEspecie(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.EspecieRequest
	if !bindAndValidate(c, &req) {
		return
	}
	especie, err := h.taxonomia.ActualizarEspecie(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Especie actualizada", especie))
}

func (h *EspecieRazaHandler) EliminarEspecie(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.taxonomia.EliminarEspecie(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Especie eliminada", nil))
}

func (h *EspecieRazaHandler) CrearRaza(c *gin.Context) {
	var req dto.RazaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	raza, err := h.taxonomia.CrearRaza(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Raza creada", raza))
}

// ListarRazas optionally filters by ?especie=<uuid>.
func (h *EspecieRazaHandler) ListarRazas(c *gin.Context) {
	var especieID *uuid.UUID
	if raw := c.Query("especie"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, apierror.New("especie invalida"))
			return
		}
		especieID = &id
	}
	razas, err := h.taxonomia.ListarRazas(c.Request.Context(), especieID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Razas", razas))
}

func (h *EspecieRazaHandler) ActualizarRaza(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.RazaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	raza, err := h.taxonomia.ActualizarRaza(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Raza actualizada", raza))
}

func (h *EspecieRazaHandler) EliminarRaza(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.taxonomia.EliminarRaza(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Raza eliminada", nil))
}
