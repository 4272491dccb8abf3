package dto

import (
	"github.com/shopspring/decimal"
)

// AnimalFilter is bound from the query string of the animal list endpoints.
// Every field is optional: an omitted filter must not add its SQL condition.
type AnimalFilter struct {
	PageFilter
	Especie string `form:"especie"`
	Raza    string `form:"raza"`
	Sexo    string `form:"sexo"   validate:"omitempty,oneof=M H"`
	Tamano  string `form:"tamano" validate:"omitempty,oneof=pequeno mediano grande"`
	Texto   string `form:"texto"` // ILIKE over nombre + descripcion
}

// CrearAnimalRequest is bound from the multipart form of POST /api/animals;
// the image part is handled separately by the handler.
type CrearAnimalRequest struct {
	Nombre      string          `form:"nombre"      validate:"required,min=2,max=100"`
	RazaID      string          `form:"razaId"      validate:"required,uuid"`
	EdadMeses   int             `form:"edadMeses"   validate:"min=0,max=480"`
	Sexo        string          `form:"sexo"        validate:"required,oneof=M H"`
	Peso        decimal.Decimal `form:"peso"        validate:"omitempty"`
	Pelaje      string          `form:"pelaje"      validate:"omitempty,max=50"`
	Tamano      string          `form:"tamano"      validate:"omitempty,oneof=pequeno mediano grande"`
	Descripcion string          `form:"descripcion" validate:"omitempty,max=2000"`
}

type ActualizarAnimalRequest struct {
	Nombre      string           `json:"nombre"      validate:"omitempty,min=2,max=100"`
	RazaID      string           `json:"razaId"      validate:"omitempty,uuid"`
	EdadMeses   *int             `json:"edadMeses"   validate:"omitempty,min=0,max=480"`
	Sexo        string           `json:"sexo"        validate:"omitempty,oneof=M H"`
	Peso        *decimal.Decimal `json:"peso"`
	Pelaje      string           `json:"pelaje"      validate:"omitempty,max=50"`
	Tamano      string           `json:"tamano"      validate:"omitempty,oneof=pequeno mediano grande"`
	Descripcion string           `json:"descripcion" validate:"omitempty,max=2000"`
}

type HistorialRequest struct {
	Tipo        string `json:"tipo"        validate:"required,oneof=medico general"`
	Descripcion string `json:"descripcion" validate:"required,min=3,max=2000"`
	Fecha       string `json:"fecha"       validate:"omitempty,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AnimalResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Especie     string          `json:"especie"`
	Raza        string          `json:"raza"`
	EdadMeses   int             `json:"edadMeses"`
	Sexo        string          `json:"sexo"`
	Peso        decimal.Decimal `json:"peso"`
	Pelaje      string          `json:"pelaje"`
	Tamano      string          `json:"tamano"`
	Descripcion string          `json:"descripcion"`
	Imagenes    []string        `json:"imagenes"`
}

type HistorialResponse struct {
	ID          string `json:"id"`
	Tipo        string `json:"tipo"`
	Descripcion string `json:"descripcion"`
	Fecha       string `json:"fecha"`
}

type AnimalDetalleResponse struct {
	AnimalResponse
	Historial []HistorialResponse `json:"historial"`
}
