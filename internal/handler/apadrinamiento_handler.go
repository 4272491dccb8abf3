package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/service"
)

type ApadrinamientoHandler struct {
	apadrinamientos service.ApadrinamientoService
}

func NewApadrinamientoHandler(apadrinamientos service.ApadrinamientoService) *ApadrinamientoHandler {
	return &ApadrinamientoHandler{apadrinamientos: apadrinamientos}
}

func (h *ApadrinamientoHandler) Crear(c *gin.Context) {
	var req dto.CrearApadrinamientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	apadrinamiento, err := h.apadrinamientos.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Apadrinamiento creado", apadrinamiento))
}

func (h *ApadrinamientoHandler) Listar(c *gin.Context) {
	var filter dto.ApadrinamientoFilter
	if !bindQuery(c, &filter) {
		return
	}
	apadrinamientos, pag, err := h.apadrinamientos.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Lista("Apadrinamientos", apadrinamientos, pag))
}

func (h *ApadrinamientoHandler) Obtener(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	apadrinamiento, err := h.apadrinamientos.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Apadrinamiento", apadrinamiento))
}

func (h *ApadrinamientoHandler) Actualizar(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarApadrinamientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	apadrinamiento, err := h.apadrinamientos.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Apadrinamiento actualizado", apadrinamiento))
}

func (h *ApadrinamientoHandler) Eliminar(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.apadrinamientos.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Apadrinamiento eliminado", nil))
}

func (h *ApadrinamientoHandler) CrearSolicitud(c *gin.Context) {
	usuarioID, ok := claimsUserID(c)
	if !ok {
		return
	}
	var req dto.CrearSolicitudApadrinamientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	solicitud, err := h.apadrinamientos.CrearSolicitud(c.Request.Context(), usuarioID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Solicitud de apadrinamiento creada", solicitud))
}

func (h *ApadrinamientoHandler) ListarSolicitudes(c *gin.Context) {
	var filter dto.SolicitudApadrinamientoFilter
	if !bindQuery(c, &filter) {
		return
	}
	solicitudes, pag, err := h.apadrinamientos.ListarSolicitudes(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Lista("Solicitudes de apadrinamiento", solicitudes, pag))
}

// AprobarSolicitud godoc
// @Summary Aprobar solicitud de apadrinamiento
// @Description Crea la donacion y el apadrinamiento, y marca la solicitud como aprobada, en una sola transaccion.
// @Tags apadrinamiento
// @Produce json
// @Param id path string true "ID de la solicitud"
// @Success 200 {object} dto.Respuesta
// @Failure 409 {object} apierror.APIError
// @Router /api/solicitudes-apadrinamiento/{id}/aprobar [post]
func (h *ApadrinamientoHandler) AprobarSolicitud(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	apadrinamiento, err := h.apadrinamientos.AprobarSolicitud(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Solicitud aprobada", apadrinamiento))
}

func (h *ApadrinamientoHandler) RechazarSolicitud(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.apadrinamientos.RechazarSolicitud(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Solicitud rechazada", nil))
}
