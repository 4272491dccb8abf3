package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/apierror"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/service"
)

type EnfermedadHandler struct {
	enfermedades service.EnfermedadService
}

func NewEnfermedadHandler(enfermedades service.EnfermedadService) *EnfermedadHandler {
	return &EnfermedadHandler{enfermedades: enfermedades}
}

func (h *EnfermedadHandler) CrearTipo(c *gin.Context) {
	var req dto.TipoEnfermedadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tipo, err := h.enfermedades.CrearTipo(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Tipo de enfermedad creado", tipo))
}

func (h *EnfermedadHandler) ListarTipos(c *gin.Context) {
	tipos, err := h.enfermedades.ListarTipos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Tipos de enfermedad", tipos))
}

func (h *EnfermedadHandler) ActualizarTipo(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.TipoEnfermedadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tipo, err := h.enfermedades.ActualizarTipo(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Tipo de enfermedad actualizado", tipo))
}

func (h *EnfermedadHandler) EliminarTipo(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.enfermedades.EliminarTipo(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Tipo de enfermedad eliminado", nil))
}

func (h *EnfermedadHandler) Crear(c *gin.Context) {
	var req dto.EnfermedadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	enfermedad, err := h.enfermedades.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Enfermedad creada", enfermedad))
}

// Listar optionally filters by ?tipo=<uuid>.
func (h *EnfermedadHandler) Listar(c *gin.Context) {
	var tipoID *uuid.UUID
	if raw := c.Query("tipo"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, apierror.New("tipo invalido"))
			return
		}
		tipoID = &id
	}
	enfermedades, err := h.enfermedades.Listar(c.Request.Context(), tipoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Enfermedades", enfermedades))
}

func (h *EnfermedadHandler) Actualizar(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.EnfermedadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	enfermedad, err := h.enfermedades.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Enfermedad actualizada", enfermedad))
}

func (h *EnfermedadHandler) Eliminar(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.enfermedades.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Enfermedad eliminada", nil))
}
