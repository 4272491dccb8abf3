package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/service"
)

// UsuarioHandler exposes the administrator-side user management endpoints.
type UsuarioHandler struct {
	auth service.AuthService
}

func NewUsuarioHandler(auth service.AuthService) *UsuarioHandler {
	return &UsuarioHandler{auth: auth}
}

func (h *UsuarioHandler) Listar(c *gin.Context) {
	var filter dto.UsuarioFilter
	if !bindQuery(c, &filter) {
		return
	}
	usuarios, pag, err := h.auth.ListarUsuarios(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Lista("Usuarios", usuarios, pag))
}

func (h *UsuarioHandler) Obtener(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	usuario, err := h.auth.ObtenerUsuario(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Usuario", usuario))
}

func (h *UsuarioHandler) Eliminar(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.auth.EliminarUsuario(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Usuario eliminado", nil))
}
