package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type DetalleDonacionRequest struct {
	CategoriaID      string          `json:"idcategoria"      validate:"required,uuid"`
	CantidadDonacion decimal.Decimal `json:"cantidaddonacion" validate:"required"`
	DetalleDonacion  string          `json:"detalledonacion"  validate:"omitempty,max=500"`
}

// CrearDonacionRequest is the generic creator: one header plus N detail
// rows, written in a single transaction.
type CrearDonacionRequest struct {
	Donaciones []DetalleDonacionRequest `json:"donaciones" validate:"required,min=1,dive"`
}

// DonacionTipificadaRequest backs the typed convenience endpoints
// (/alimentos, /medicinas, /otros, /economica, /apadrinamiento, /general).
// The category is resolved by name and lazily created when missing.
type DonacionTipificadaRequest struct {
	Cantidad decimal.Decimal `json:"cantidad" validate:"required"`
	Detalle  string          `json:"detalle"  validate:"omitempty,max=500"`
}

// DonacionFilter filters GET /api/donations/historial.
type DonacionFilter struct {
	PageFilter
	Categoria  string `form:"categoria"` // joined name, case-insensitive substring
	FechaDesde string `form:"desde" validate:"omitempty,datetime=2006-01-02"`
	FechaHasta string `form:"hasta" validate:"omitempty,datetime=2006-01-02"`
	UsuarioID  string `form:"usuario" validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DonacionResponse struct {
	ID               string  `json:"id"`
	UsuarioID        *string `json:"usuarioId"`
	Fecha            string  `json:"fecha"`
	Hora             string  `json:"hora"`
	CantidadDetalles int     `json:"cantidadDetalles"`
}

type DetalleDonacionResponse struct {
	ID               string          `json:"id"`
	DonacionID       string          `json:"donacionId"`
	Categoria        string          `json:"categoria"`
	CantidadDonacion decimal.Decimal `json:"cantidaddonacion"`
	DetalleDonacion  string          `json:"detalledonacion"`
	Fecha            string          `json:"fecha"`
	Donante          *string         `json:"donante"` // nil for anonymous
}
