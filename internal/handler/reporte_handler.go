package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/service"
)

// ReporteCasoHandler handles incident reports filed by users.
type ReporteCasoHandler struct {
	reportes service.ReporteCasoService
}

func NewReporteCasoHandler(reportes service.ReporteCasoService) *ReporteCasoHandler {
	return &ReporteCasoHandler{reportes: reportes}
}

func (h *ReporteCasoHandler) Crear(c *gin.Context) {
	usuarioID, ok := claimsUserID(c)
	if !ok {
		return
	}
	var req dto.CrearReporteCasoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	reporte, err := h.reportes.Crear(c.Request.Context(), usuarioID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Reporte registrado", reporte))
}

func (h *ReporteCasoHandler) Listar(c *gin.Context) {
	var filter dto.ReporteCasoFilter
	if !bindQuery(c, &filter) {
		return
	}
	reportes, pag, err := h.reportes.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Lista("Reportes de casos", reportes, pag))
}
