package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/apierror"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/middleware"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/service"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Registro godoc
// @Summary Registro de usuario (persona o empresa)
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegistroRequest true "Datos de registro"
// @Success 201 {object} dto.Respuesta
// @Failure 409 {object} apierror.APIError
// @Router /api/auth/registro [post]
func (h *AuthHandler) Registro(c *gin.Context) {
	var req dto.RegistroRequest
	if !bindAndValidate(c, &req) {
		return
	}

	usuario, err := h.auth.Registro(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Usuario registrado correctamente", usuario))
}

// Login godoc
// @Summary Inicio de sesion
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.Respuesta
// @Failure 401 {object} apierror.APIError
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Sesion iniciada", resp))
}

// Verify echoes the identity baked into a valid token.
func (h *AuthHandler) Verify(c *gin.Context) {
	claims := middleware.GetClaims(c)
	c.JSON(http.StatusOK, dto.OK("Token valido", dto.VerifyResponse{
		UserID: claims.UserID,
		RolID:  claims.RolID,
		Alias:  claims.Alias,
	}))
}

func (h *AuthHandler) Perfil(c *gin.Context) {
	usuarioID, ok := claimsUserID(c)
	if !ok {
		return
	}
	perfil, err := h.auth.Perfil(c.Request.Context(), usuarioID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Perfil", perfil))
}

func (h *AuthHandler) ActualizarPerfil(c *gin.Context) {
	usuarioID, ok := claimsUserID(c)
	if !ok {
		return
	}
	var req dto.ActualizarPerfilRequest
	if !bindAndValidate(c, &req) {
		return
	}
	perfil, err := h.auth.ActualizarPerfil(c.Request.Context(), usuarioID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Perfil actualizado", perfil))
}

// claimsUserID extracts the authenticated user id from the JWT claims.
func claimsUserID(c *gin.Context) (uuid.UUID, bool) {
	claims := middleware.GetClaims(c)
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusForbidden, apierror.New("Token invalido o expirado"))
		return uuid.Nil, false
	}
	return id, true
}
