package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/apierror"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/service"
)

type RolHandler struct {
	roles service.RolService
}

func NewRolHandler(roles service.RolService) *RolHandler {
	return &RolHandler{roles: roles}
}

func (h *RolHandler) Crear(c *gin.Context) {
	var req dto.RolRequest
	if !bindAndValidate(c, &req) {
		return
	}
	rol, err := h.roles.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Rol creado", rol))
}

func (h *RolHandler) Listar(c *gin.Context) {
	roles, err := h.roles.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Roles", roles))
}

func (h *RolHandler) Obtener(c *gin.Context) {
	id, ok := rolIDParam(c)
	if !ok {
		return
	}
	rol, err := h.roles.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Rol", rol))
}

func (h *RolHandler) Actualizar(c *gin.Context) {
	id, ok := rolIDParam(c)
	if !ok {
		return
	}
	var req dto.RolRequest
	if !bindAndValidate(c, &req) {
		return
	}
	rol, err := h.roles.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Rol actualizado", rol))
}

func (h *RolHandler) Eliminar(c *gin.Context) {
	id, ok := rolIDParam(c)
	if !ok {
		return
	}
	if err := h.roles.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Rol eliminado", nil))
}

func rolIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("Identificador invalido"))
		return 0, false
	}
	return id, true
}
