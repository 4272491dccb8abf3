package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearApadrinamientoRequest struct {
	DonacionID  string  `json:"donacionId"  validate:"required,uuid"`
	AnimalID    string  `json:"animalId"    validate:"required,uuid"`
	FechaInicio string  `json:"fechaInicio" validate:"required,datetime=2006-01-02"`
	Frecuencia  string  `json:"frecuencia"  validate:"required,oneof=mensual trimestral anual"`
	FechaFin    *string `json:"fechaFin"    validate:"omitempty,datetime=2006-01-02"`
}

type ActualizarApadrinamientoRequest struct {
	Frecuencia string  `json:"frecuencia" validate:"omitempty,oneof=mensual trimestral anual"`
	FechaFin   *string `json:"fechaFin"   validate:"omitempty,datetime=2006-01-02"`
	Estado     string  `json:"estado"     validate:"omitempty"`
}

type CrearSolicitudApadrinamientoRequest struct {
	AnimalID   string          `json:"animalId"   validate:"required,uuid"`
	Monto      decimal.Decimal `json:"monto"      validate:"required"`
	Frecuencia string          `json:"frecuencia" validate:"required,oneof=mensual trimestral anual"`
}

type ApadrinamientoFilter struct {
	PageFilter
	Estado     string `form:"estado"`
	AnimalID   string `form:"animal" validate:"omitempty,uuid"`
	Frecuencia string `form:"frecuencia" validate:"omitempty,oneof=mensual trimestral anual"`
}

type SolicitudApadrinamientoFilter struct {
	PageFilter
	Estado string `form:"estado"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ApadrinamientoResponse struct {
	ID          string  `json:"id"`
	DonacionID  string  `json:"donacionId"`
	AnimalID    string  `json:"animalId"`
	Animal      string  `json:"animal"`
	FechaInicio string  `json:"fechaInicio"`
	Frecuencia  string  `json:"frecuencia"`
	FechaFin    *string `json:"fechaFin"`
	SolicitudID *string `json:"solicitudId"`
	Estado      string  `json:"estado"`
}

type SolicitudApadrinamientoResponse struct {
	ID         string          `json:"id"`
	UsuarioID  string          `json:"usuarioId"`
	Padrino    string          `json:"padrino"`
	AnimalID   string          `json:"animalId"`
	Animal     string          `json:"animal"`
	Monto      decimal.Decimal `json:"monto"`
	Frecuencia string          `json:"frecuencia"`
	Estado     string          `json:"estado"`
	Fecha      string          `json:"fecha"`
}
