package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/middleware"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/service"
)

// DonacionHandler exposes the generic donation creator, the typed
// convenience endpoints and the paginated donation ledger.
type DonacionHandler struct {
	donaciones service.DonacionService
}

func NewDonacionHandler(donaciones service.DonacionService) *DonacionHandler {
	return &DonacionHandler{donaciones: donaciones}
}

// Crear godoc
// @Summary Registrar donacion con detalle por categorias
// @Tags donations
// @Accept json
// @Produce json
// @Param body body dto.CrearDonacionRequest true "Detalles"
// @Success 201 {object} dto.Respuesta
// @Router /api/donations/crear [post]
func (h *DonacionHandler) Crear(c *gin.Context) {
	var req dto.CrearDonacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	donacion, err := h.donaciones.Crear(c.Request.Context(), donanteID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Donacion registrada", donacion))
}

// Tipificada returns a handler bound to a fixed category, backing the
// /alimentos, /medicinas, /otros, /economica, /apadrinamiento and /general
// routes.
func (h *DonacionHandler) Tipificada(categoria string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.DonacionTipificadaRequest
		if !bindAndValidate(c, &req) {
			return
		}
		donacion, err := h.donaciones.CrearTipificada(c.Request.Context(), donanteID(c), categoria, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.OK("Donacion registrada", donacion))
	}
}

func (h *DonacionHandler) Historial(c *gin.Context) {
	var filter dto.DonacionFilter
	if !bindQuery(c, &filter) {
		return
	}
	detalles, pag, err := h.donaciones.Historial(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Lista("Historial de donaciones", detalles, pag))
}

// donanteID returns the authenticated user's id, or nil for anonymous
// donations (the donation routes also work without a token).
func donanteID(c *gin.Context) *uuid.UUID {
	raw, exists := c.Get(middleware.ClaimsKey)
	if !exists {
		return nil
	}
	claims, ok := raw.(*middleware.JWTClaims)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil
	}
	return &id
}
