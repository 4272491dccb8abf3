package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearSolicitudAdopcionRequest struct {
	AnimalID    string  `json:"animalId"    validate:"required,uuid"`
	Comentarios *string `json:"comentarios" validate:"omitempty,max=1000"`
}

// CambiarEstadoRequest carries the target status for either phase; the
// service canonicalizes it case-insensitively against the closed
// vocabulary and checks the transition allow-list.
type CambiarEstadoRequest struct {
	Estado string `json:"estado" validate:"required,min=4,max=20"`
}

// FinalizarAdopcionRequest closes an ACEPTADO request into a signed
// adoption.
type FinalizarAdopcionRequest struct {
	FechaFirma         string `json:"fechaFirma"         validate:"required,datetime=2006-01-02"`
	Contrato           string `json:"contrato"           validate:"required,min=10"`
	Condiciones        string `json:"condiciones"        validate:"omitempty,max=5000"`
	DireccionAdoptante string `json:"direccionAdoptante" validate:"required,min=5,max=200"`
}

// SolicitudAdopcionFilter filters GET /api/adoptions/solicitud.
type SolicitudAdopcionFilter struct {
	PageFilter
	Estado   string `form:"estado"`
	AnimalID string `form:"animal" validate:"omitempty,uuid"`
}

// AdopcionFilter filters GET /api/adoptions (finalized phase).
type AdopcionFilter struct {
	PageFilter
	Estado string `form:"estado"`
	Fecha  string `form:"fecha" validate:"omitempty,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SolicitudAdopcionResponse struct {
	ID              string  `json:"id"`
	AnimalID        string  `json:"animalId"`
	Animal          string  `json:"animal"`
	UsuarioID       string  `json:"usuarioId"`
	Solicitante     string  `json:"solicitante"`
	FechaSolicitud  string  `json:"fechaSolicitud"`
	EstadoSolicitud string  `json:"estadoSolicitud"`
	Comentarios     *string `json:"comentarios"`
}

type AdopcionResponse struct {
	SolicitudAdopcionResponse
	FechaFirma         *string `json:"fechaFirma"`
	Contrato           *string `json:"contrato"`
	Condiciones        *string `json:"condiciones"`
	DireccionAdoptante *string `json:"direccionAdoptante"`
	Estado             *string `json:"estado"`
}
