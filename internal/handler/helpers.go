package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/apierror"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/service"
)

// validate is the shared validator instance. decimal.Decimal fields are
// validated through their float value so rules like required work on them.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// bindAndValidate decodes the JSON body and runs struct validation.
// Malformed JSON → 400; failed validation rules → 422 with per-field detail.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Cuerpo de la peticion invalido"))
		return false
	}
	return validateStruct(c, req)
}

// bindQuery decodes the query string into a filter struct and validates it.
func bindQuery(c *gin.Context, filter interface{}) bool {
	if err := c.ShouldBindQuery(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parametros de consulta invalidos"))
		return false
	}
	return validateStruct(c, filter)
}

func validateStruct(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
			c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
			return false
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.New("Error de validacion"))
		return false
	}
	return true
}

// parseUUIDParam reads a path parameter as a UUID; a malformed id is a 422,
// never a silent 404.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("Identificador invalido"))
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps service errors to their HTTP status. Unclassified
// errors become an opaque 500 — internals never leak to clients.
func respondError(c *gin.Context, err error) {
	var se *service.Error
	if errors.As(err, &se) {
		c.JSON(se.Status, apierror.New(se.Message))
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, apierror.New("Recurso no encontrado"))
		return
	}
	log.Error().Err(err).Str("path", c.FullPath()).Msg("error no clasificado")
	c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
}
