package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/middleware"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/service"
)

type AdopcionHandler struct {
	adopciones service.AdopcionService
	adminRolID int
}

func NewAdopcionHandler(adopciones service.AdopcionService, adminRolID int) *AdopcionHandler {
	return &AdopcionHandler{adopciones: adopciones, adminRolID: adminRolID}
}

// CrearSolicitud godoc
// @Summary Abrir solicitud de adopcion
// @Tags adoptions
// @Accept json
// @Produce json
// @Param body body dto.CrearSolicitudAdopcionRequest true "Solicitud"
// @Success 201 {object} dto.Respuesta
// @Failure 409 {object} apierror.APIError
// @Router /api/adoptions/solicitud [post]
func (h *AdopcionHandler) CrearSolicitud(c *gin.Context) {
	usuarioID, ok := claimsUserID(c)
	if !ok {
		return
	}
	var req dto.CrearSolicitudAdopcionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	solicitud, err := h.adopciones.CrearSolicitud(c.Request.Context(), usuarioID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Solicitud de adopcion creada", solicitud))
}

// ListarSolicitudes shows administrators everything; everyone else only
// their own requests.
func (h *AdopcionHandler) ListarSolicitudes(c *gin.Context) {
	var filter dto.SolicitudAdopcionFilter
	if !bindQuery(c, &filter) {
		return
	}

	var propio *uuid.UUID
	claims := middleware.GetClaims(c)
	if claims.RolID != h.adminRolID {
		usuarioID, ok := claimsUserID(c)
		if !ok {
			return
		}
		propio = &usuarioID
	}

	solicitudes, pag, err := h.adopciones.ListarSolicitudes(c.Request.Context(), filter, propio)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Lista("Solicitudes de adopcion", solicitudes, pag))
}

func (h *AdopcionHandler) ObtenerSolicitud(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	solicitud, err := h.adopciones.ObtenerSolicitud(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Solicitud", solicitud))
}

func (h *AdopcionHandler) CambiarEstadoSolicitud(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CambiarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	solicitud, err := h.adopciones.CambiarEstadoSolicitud(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Estado de solicitud actualizado", solicitud))
}

// Finalizar godoc
// @Summary Finalizar adopcion con firma de contrato
// @Tags adoptions
// @Accept json
// @Produce json
// @Param id path string true "ID de la solicitud"
// @Param body body dto.FinalizarAdopcionRequest true "Datos de firma"
// @Success 200 {object} dto.Respuesta
// @Failure 409 {object} apierror.APIError
// @Router /api/adoptions/{id} [put]
func (h *AdopcionHandler) Finalizar(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.FinalizarAdopcionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	adopcion, err := h.adopciones.Finalizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Adopcion finalizada", adopcion))
}

func (h *AdopcionHandler) ListarAdopciones(c *gin.Context) {
	var filter dto.AdopcionFilter
	if !bindQuery(c, &filter) {
		return
	}
	adopciones, pag, err := h.adopciones.ListarAdopciones(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Lista("Adopciones", adopciones, pag))
}

func (h *AdopcionHandler) CambiarEstadoAdopcion(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CambiarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	adopcion, err := h.adopciones.CambiarEstadoAdopcion(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Estado de adopcion actualizado", adopcion))
}

func (h *AdopcionHandler) Eliminar(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.adopciones.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Adopcion eliminada", nil))
}

// DescargarContrato streams the generated contract PDF.
func (h *AdopcionHandler) DescargarContrato(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	ruta, err := h.adopciones.RutaContrato(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(ruta, "contrato_adopcion.pdf")
}
