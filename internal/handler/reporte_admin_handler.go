package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/service"
)

// ReporteAdminHandler exposes the aggregate dashboards (admin only).
type ReporteAdminHandler struct {
	reportes service.ReporteAdminService
}

func NewReporteAdminHandler(reportes service.ReporteAdminService) *ReporteAdminHandler {
	return &ReporteAdminHandler{reportes: reportes}
}

func (h *ReporteAdminHandler) DonacionesPorCategoria(c *gin.Context) {
	filas, err := h.reportes.DonacionesPorCategoria(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Donaciones por categoria", filas))
}

func (h *ReporteAdminHandler) DonacionesPorMes(c *gin.Context) {
	filas, err := h.reportes.DonacionesPorMes(c.Request.Context(), anioQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Donaciones por mes", filas))
}

func (h *ReporteAdminHandler) AdopcionesPorMes(c *gin.Context) {
	filas, err := h.reportes.AdopcionesPorMes(c.Request.Context(), anioQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Adopciones por mes", filas))
}

// Resumen godoc
// @Summary Resumen general del refugio
// @Tags reporteAdmin
// @Produce json
// @Success 200 {object} dto.Respuesta
// @Router /api/reporteAdmin/resumen [get]
func (h *ReporteAdminHandler) Resumen(c *gin.Context) {
	resumen, err := h.reportes.Resumen(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Resumen", resumen))
}

// anioQuery reads ?anio=YYYY, defaulting to the current year.
func anioQuery(c *gin.Context) int {
	if raw := c.Query("anio"); raw != "" {
		if anio, err := strconv.Atoi(raw); err == nil && anio > 2000 {
			return anio
		}
	}
	return time.Now().Year()
}
