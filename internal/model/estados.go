package model

import "strings"

// Closed status vocabularies. Input is matched case-insensitively and
// stored in its canonical spelling; any transition not in the allow-list
// below is rejected before the UPDATE is issued.

// ── Request phase (EstadoSolicitud) ──────────────────────────────────────────

const (
	SolicitudPendiente  = "PENDIENTE"
	SolicitudEnRevision = "EN REVISION"
	SolicitudAceptado   = "ACEPTADO"
	SolicitudRechazado  = "RECHAZADO"
	SolicitudCancelada  = "CANCELADA"
)

var estadosSolicitud = []string{
	SolicitudPendiente, SolicitudEnRevision, SolicitudAceptado,
	SolicitudRechazado, SolicitudCancelada,
}

// RECHAZADO and CANCELADA are terminal: a rejected request cannot be
// re-accepted. ACEPTADO can still be cancelled until the adoption is
// finalized.
var transicionesSolicitud = map[string][]string{
	SolicitudPendiente:  {SolicitudEnRevision, SolicitudAceptado, SolicitudRechazado, SolicitudCancelada},
	SolicitudEnRevision: {SolicitudAceptado, SolicitudRechazado, SolicitudCancelada},
	SolicitudAceptado:   {SolicitudCancelada},
	SolicitudRechazado:  {},
	SolicitudCancelada:  {},
}

// ParseEstadoSolicitud canonicalizes a request status, case-insensitively.
func ParseEstadoSolicitud(s string) (string, bool) {
	return parseEstado(s, estadosSolicitud)
}

// PuedeTransicionarSolicitud reports whether desde → hacia is allowed.
func PuedeTransicionarSolicitud(desde, hacia string) bool {
	return contiene(transicionesSolicitud[desde], hacia)
}

// ── Finalized phase (Estado) ─────────────────────────────────────────────────

const (
	AdopcionPendiente  = "Pendiente"
	AdopcionAprobada   = "Aprobada"
	AdopcionCompletada = "Completada"
	AdopcionCancelada  = "Cancelada"
)

var estadosAdopcion = []string{
	AdopcionPendiente, AdopcionAprobada, AdopcionCompletada, AdopcionCancelada,
}

var transicionesAdopcion = map[string][]string{
	AdopcionPendiente:  {AdopcionAprobada, AdopcionCancelada},
	AdopcionAprobada:   {AdopcionCompletada, AdopcionCancelada},
	AdopcionCompletada: {},
	AdopcionCancelada:  {},
}

func ParseEstadoAdopcion(s string) (string, bool) {
	return parseEstado(s, estadosAdopcion)
}

func PuedeTransicionarAdopcion(desde, hacia string) bool {
	return contiene(transicionesAdopcion[desde], hacia)
}

// ── Apadrinamiento ───────────────────────────────────────────────────────────

const (
	ApadrinamientoActivo   = "Activo"
	ApadrinamientoInactivo = "Inactivo"
)

func ParseEstadoApadrinamiento(s string) (string, bool) {
	return parseEstado(s, []string{ApadrinamientoActivo, ApadrinamientoInactivo})
}

// ── Solicitud de apadrinamiento ──────────────────────────────────────────────

const (
	SolicitudApadrinamientoPendiente = "Pendiente"
	SolicitudApadrinamientoAprobada  = "Aprobada"
	SolicitudApadrinamientoRechazada = "Rechazada"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func parseEstado(s string, vocabulario []string) (string, bool) {
	for _, v := range vocabulario {
		if strings.EqualFold(strings.TrimSpace(s), v) {
			return v, true
		}
	}
	return "", false
}

func contiene(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
