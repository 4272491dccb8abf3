package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/apierror"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/infra"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/service"
)

type AnimalHandler struct {
	animales service.AnimalService
	store    *infra.ImageStore
}

func NewAnimalHandler(animales service.AnimalService, store *infra.ImageStore) *AnimalHandler {
	return &AnimalHandler{animales: animales, store: store}
}

// Crear godoc
// @Summary Registrar animal con galeria de imagenes
// @Tags animals
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} dto.Respuesta
// @Router /api/animals [post]
func (h *AnimalHandler) Crear(c *gin.Context) {
	var req dto.CrearAnimalRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Formulario invalido"))
		return
	}
	if !validateStruct(c, &req) {
		return
	}

	// Image files go to disk first; the DB rows only store the public path.
	var rutas []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["imagenes"] {
			ruta, err := h.store.Save(fh)
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, apierror.New("Imagen no valida: solo jpg, jpeg, png o webp"))
				return
			}
			rutas = append(rutas, ruta)
		}
	}

	animal, err := h.animales.Crear(c.Request.Context(), req, rutas)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Animal registrado", animal))
}

// Listar returns every animal regardless of adoption state (admin view).
func (h *AnimalHandler) Listar(c *gin.Context) {
	var filter dto.AnimalFilter
	if !bindQuery(c, &filter) {
		return
	}
	animales, pag, err := h.animales.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Lista("Animales", animales, pag))
}

// Disponibles godoc
// @Summary Animales disponibles para adopcion
// @Tags animals
// @Produce json
// @Success 200 {object} dto.Respuesta
// @Router /api/animals/disponibles [get]
func (h *AnimalHandler) Disponibles(c *gin.Context) {
	var filter dto.AnimalFilter
	if !bindQuery(c, &filter) {
		return
	}
	animales, pag, err := h.animales.ListarDisponibles(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Lista("Animales disponibles", animales, pag))
}

func (h *AnimalHandler) Detalle(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	detalle, err := h.animales.Detalle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Animal", detalle))
}

func (h *AnimalHandler) Actualizar(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarAnimalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	animal, err := h.animales.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Animal actualizado", animal))
}

func (h *AnimalHandler) Eliminar(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.animales.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Animal eliminado", nil))
}

func (h *AnimalHandler) AgregarImagen(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	fh, err := c.FormFile("imagen")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Se requiere el archivo imagen"))
		return
	}
	ruta, err := h.store.Save(fh)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("Imagen no valida: solo jpg, jpeg, png o webp"))
		return
	}
	if err := h.animales.AgregarImagen(c.Request.Context(), id, ruta); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Imagen agregada", gin.H{"ruta": ruta}))
}

func (h *AnimalHandler) AgregarHistorial(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.HistorialRequest
	if !bindAndValidate(c, &req) {
		return
	}
	entrada, err := h.animales.AgregarHistorial(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Historial agregado", entrada))
}
