package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEstadoSolicitud(t *testing.T) {
	tests := []struct {
		entrada  string
		canonico string
		reconoce bool
	}{
		{"pendiente", SolicitudPendiente, true},
		{"PENDIENTE", SolicitudPendiente, true},
		{"  en revision  ", SolicitudEnRevision, true},
		{"Aceptado", SolicitudAceptado, true},
		{"rechazado", SolicitudRechazado, true},
		{"cancelada", SolicitudCancelada, true},
		{"aprobado", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		got, ok := ParseEstadoSolicitud(tc.entrada)
		assert.Equal(t, tc.reconoce, ok, "entrada %q", tc.entrada)
		assert.Equal(t, tc.canonico, got, "entrada %q", tc.entrada)
	}
}

func TestTransicionesSolicitud(t *testing.T) {
	// Rechazado y cancelada son terminales.
	assert.False(t, PuedeTransicionarSolicitud(SolicitudRechazado, SolicitudAceptado))
	assert.False(t, PuedeTransicionarSolicitud(SolicitudRechazado, SolicitudPendiente))
	assert.False(t, PuedeTransicionarSolicitud(SolicitudCancelada, SolicitudEnRevision))

	// Flujo normal.
	assert.True(t, PuedeTransicionarSolicitud(SolicitudPendiente, SolicitudEnRevision))
	assert.True(t, PuedeTransicionarSolicitud(SolicitudPendiente, SolicitudAceptado))
	assert.True(t, PuedeTransicionarSolicitud(SolicitudEnRevision, SolicitudRechazado))
	assert.True(t, PuedeTransicionarSolicitud(SolicitudAceptado, SolicitudCancelada))

	// Aceptado no puede volver atras.
	assert.False(t, PuedeTransicionarSolicitud(SolicitudAceptado, SolicitudPendiente))
	assert.False(t, PuedeTransicionarSolicitud(SolicitudAceptado, SolicitudEnRevision))
}

func TestTransicionesAdopcion(t *testing.T) {
	assert.True(t, PuedeTransicionarAdopcion(AdopcionPendiente, AdopcionAprobada))
	assert.True(t, PuedeTransicionarAdopcion(AdopcionAprobada, AdopcionCompletada))
	assert.True(t, PuedeTransicionarAdopcion(AdopcionAprobada, AdopcionCancelada))

	assert.False(t, PuedeTransicionarAdopcion(AdopcionCompletada, AdopcionCancelada))
	assert.False(t, PuedeTransicionarAdopcion(AdopcionCancelada, AdopcionAprobada))
	assert.False(t, PuedeTransicionarAdopcion(AdopcionPendiente, AdopcionCompletada))
}

func TestParseEstadoAdopcion(t *testing.T) {
	got, ok := ParseEstadoAdopcion("aprobada")
	assert.True(t, ok)
	assert.Equal(t, AdopcionAprobada, got)

	_, ok = ParseEstadoAdopcion("firmada")
	assert.False(t, ok)
}

func TestParseEstadoApadrinamiento(t *testing.T) {
	got, ok := ParseEstadoApadrinamiento("ACTIVO")
	assert.True(t, ok)
	assert.Equal(t, ApadrinamientoActivo, got)

	_, ok = ParseEstadoApadrinamiento("pausado")
	assert.False(t, ok)
}
