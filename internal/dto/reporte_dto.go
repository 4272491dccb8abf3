package dto

import "github.com/shopspring/decimal"

// ─── Case reports ────────────────────────────────────────────────────────────

type CrearReporteCasoRequest struct {
	Tipo        string  `json:"tipo"        validate:"required,min=3,max=50"`
	Descripcion string  `json:"descripcion" validate:"required,min=5,max=2000"`
	Direccion   string  `json:"direccion"   validate:"required,min=5,max=200"`
	AnimalID    *string `json:"animalId"    validate:"omitempty,uuid"`
}

type ReporteCasoFilter struct {
	PageFilter
	Tipo       string `form:"tipo"`
	FechaDesde string `form:"desde" validate:"omitempty,datetime=2006-01-02"`
	FechaHasta string `form:"hasta" validate:"omitempty,datetime=2006-01-02"`
}

type ReporteCasoResponse struct {
	ID           string  `json:"id"`
	Tipo         string  `json:"tipo"`
	Descripcion  string  `json:"descripcion"`
	Direccion    string  `json:"direccion"`
	AnimalID     *string `json:"animalId"`
	UsuarioID    string  `json:"usuarioId"`
	FechaIngreso string  `json:"fechaIngreso"`
}

// ─── Admin aggregate reports ─────────────────────────────────────────────────

type DonacionPorCategoria struct {
	Categoria string          `json:"categoria"`
	Total     decimal.Decimal `json:"total"`
	Cantidad  int64           `json:"cantidad"`
}

type TotalPorMes struct {
	Mes   int             `json:"mes"`
	Total decimal.Decimal `json:"total"`
}

type ConteoPorMes struct {
	Mes      int   `json:"mes"`
	Cantidad int64 `json:"cantidad"`
}

type ResumenAdmin struct {
	Animales               int64           `json:"animales"`
	AnimalesDisponibles    int64           `json:"animalesDisponibles"`
	Adopciones             int64           `json:"adopciones"`
	ApadrinamientosActivos int64           `json:"apadrinamientosActivos"`
	Usuarios               int64           `json:"usuarios"`
	TotalDonado            decimal.Decimal `json:"totalDonado"`
}
