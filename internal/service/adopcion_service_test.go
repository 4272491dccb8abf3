package service

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
)

func nuevoAdopcionService(adopciones *stubAdopcionRepo, animales *stubAnimalRepo, notif Notificador) *adopcionService {
	svc := NewAdopcionService(adopciones, animales, testConfig(), notif).(*adopcionService)
	svc.generarPDF = func(a *model.Adopcion, _ string) (string, error) {
		return "/tmp/contrato_test.pdf", nil
	}
	return svc
}

func TestCrearSolicitudAdopcion(t *testing.T) {
	animal := &model.Animal{ID: uuid.New(), Nombre: "Luna"}
	animales := &stubAnimalRepo{porID: map[uuid.UUID]*model.Animal{animal.ID: animal}, disponible: true}
	adopciones := &stubAdopcionRepo{}
	svc := nuevoAdopcionService(adopciones, animales, nil)

	usuarioID := uuid.New()
	resp, err := svc.CrearSolicitud(context.Background(), usuarioID, dto.CrearSolicitudAdopcionRequest{AnimalID: animal.ID.String()})
	require.NoError(t, err)

	assert.Equal(t, model.SolicitudPendiente, resp.EstadoSolicitud)
	require.NotNil(t, adopciones.creada)
	assert.Equal(t, usuarioID, adopciones.creada.UsuarioID)
	assert.Nil(t, adopciones.creada.Estado) // la fase finalizada arranca vacia
}

func TestCrearSolicitudAnimalNoDisponible(t *testing.T) {
	animal := &model.Animal{ID: uuid.New()}
	animales := &stubAnimalRepo{porID: map[uuid.UUID]*model.Animal{animal.ID: animal}, disponible: false}
	svc := nuevoAdopcionService(&stubAdopcionRepo{}, animales, nil)

	_, err := svc.CrearSolicitud(context.Background(), uuid.New(), dto.CrearSolicitudAdopcionRequest{AnimalID: animal.ID.String()})
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.Status)
}

func TestCrearSolicitudDuplicada(t *testing.T) {
	animal := &model.Animal{ID: uuid.New()}
	animales := &stubAnimalRepo{porID: map[uuid.UUID]*model.Animal{animal.ID: animal}, disponible: true}
	adopciones := &stubAdopcionRepo{abierta: true}
	svc := nuevoAdopcionService(adopciones, animales, nil)

	_, err := svc.CrearSolicitud(context.Background(), uuid.New(), dto.CrearSolicitudAdopcionRequest{AnimalID: animal.ID.String()})
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.Status)
	assert.Nil(t, adopciones.creada)
}

func TestCambiarEstadoSolicitud(t *testing.T) {
	id := uuid.New()
	adopciones := &stubAdopcionRepo{porID: map[uuid.UUID]*model.Adopcion{
		id: {ID: id, EstadoSolicitud: model.SolicitudPendiente},
	}}
	svc := nuevoAdopcionService(adopciones, &stubAnimalRepo{}, nil)

	// Entrada en minusculas se canonicaliza.
	resp, err := svc.CambiarEstadoSolicitud(context.Background(), id, dto.CambiarEstadoRequest{Estado: "en revision"})
	require.NoError(t, err)
	assert.Equal(t, model.SolicitudEnRevision, resp.EstadoSolicitud)
	assert.Equal(t, model.SolicitudEnRevision, adopciones.estadoSolicitud)
}

func TestCambiarEstadoSolicitudTerminal(t *testing.T) {
	id := uuid.New()
	adopciones := &stubAdopcionRepo{porID: map[uuid.UUID]*model.Adopcion{
		id: {ID: id, EstadoSolicitud: model.SolicitudRechazado},
	}}
	svc := nuevoAdopcionService(adopciones, &stubAnimalRepo{}, nil)

	// Un rechazo es definitivo: no se puede reabrir ni aceptar.
	_, err := svc.CambiarEstadoSolicitud(context.Background(), id, dto.CambiarEstadoRequest{Estado: "ACEPTADO"})
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.Status)
	assert.Empty(t, adopciones.estadoSolicitud)
}

func TestCambiarEstadoSolicitudDesconocido(t *testing.T) {
	svc := nuevoAdopcionService(&stubAdopcionRepo{}, &stubAnimalRepo{}, nil)

	_, err := svc.CambiarEstadoSolicitud(context.Background(), uuid.New(), dto.CambiarEstadoRequest{Estado: "archivado"})
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnprocessableEntity, se.Status)
}

func TestFinalizarAdopcion(t *testing.T) {
	id := uuid.New()
	usuario := &model.Usuario{ID: uuid.New(), Alias: "maria88", Email: "maria@example.com"}
	adopciones := &stubAdopcionRepo{porID: map[uuid.UUID]*model.Adopcion{
		id: {ID: id, EstadoSolicitud: model.SolicitudAceptado, Usuario: usuario},
	}}
	notif := &stubNotificador{}
	svc := nuevoAdopcionService(adopciones, &stubAnimalRepo{}, notif)

	resp, err := svc.Finalizar(context.Background(), id, dto.FinalizarAdopcionRequest{
		FechaFirma:         "2026-08-15",
		Contrato:           "El adoptante se compromete al cuidado del animal.",
		DireccionAdoptante: "Av. Siempre Viva 742",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Estado)
	assert.Equal(t, model.AdopcionAprobada, *resp.Estado)
	require.NotNil(t, adopciones.guardada)
	require.NotNil(t, adopciones.guardada.ContratoPDF)
	assert.Equal(t, "/tmp/contrato_test.pdf", *adopciones.guardada.ContratoPDF)

	// Contrato enviado por email con adjunto.
	require.Len(t, notif.encolados, 1)
	assert.Equal(t, "/tmp/contrato_test.pdf", notif.encolados[0].AttachPath)
}

func TestFinalizarLimpiaContratoSiFallaTransaccion(t *testing.T) {
	id := uuid.New()
	adopciones := &stubAdopcionRepo{
		porID: map[uuid.UUID]*model.Adopcion{
			id: {ID: id, EstadoSolicitud: model.SolicitudAceptado},
		},
		errUpdate: errors.New("conexion perdida"),
	}
	svc := nuevoAdopcionService(adopciones, &stubAnimalRepo{}, nil)

	rutaPDF := filepath.Join(t.TempDir(), "contrato.pdf")
	svc.generarPDF = func(_ *model.Adopcion, _ string) (string, error) {
		require.NoError(t, os.WriteFile(rutaPDF, []byte("%PDF"), 0o644))
		return rutaPDF, nil
	}

	_, err := svc.Finalizar(context.Background(), id, dto.FinalizarAdopcionRequest{
		FechaFirma: "2026-08-15", Contrato: "texto del contrato", DireccionAdoptante: "Calle 1",
	})
	require.Error(t, err)

	// El PDF generado antes del rollback no queda huerfano en disco.
	_, statErr := os.Stat(rutaPDF)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFinalizarRequiereAceptado(t *testing.T) {
	id := uuid.New()
	adopciones := &stubAdopcionRepo{porID: map[uuid.UUID]*model.Adopcion{
		id: {ID: id, EstadoSolicitud: model.SolicitudPendiente},
	}}
	svc := nuevoAdopcionService(adopciones, &stubAnimalRepo{}, nil)

	_, err := svc.Finalizar(context.Background(), id, dto.FinalizarAdopcionRequest{
		FechaFirma: "2026-08-15", Contrato: "texto del contrato", DireccionAdoptante: "Calle 1",
	})
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.Status)
}

func TestFinalizarDosVeces(t *testing.T) {
	id := uuid.New()
	estado := model.AdopcionAprobada
	adopciones := &stubAdopcionRepo{porID: map[uuid.UUID]*model.Adopcion{
		id: {ID: id, EstadoSolicitud: model.SolicitudAceptado, Estado: &estado},
	}}
	svc := nuevoAdopcionService(adopciones, &stubAnimalRepo{}, nil)

	_, err := svc.Finalizar(context.Background(), id, dto.FinalizarAdopcionRequest{
		FechaFirma: "2026-08-15", Contrato: "texto del contrato", DireccionAdoptante: "Calle 1",
	})
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.Status)
}

func TestEliminarAdopcion(t *testing.T) {
	id := uuid.New()
	adopciones := &stubAdopcionRepo{porID: map[uuid.UUID]*model.Adopcion{
		id: {ID: id, EstadoSolicitud: model.SolicitudRechazado},
	}}
	svc := nuevoAdopcionService(adopciones, &stubAnimalRepo{}, nil)

	require.NoError(t, svc.Eliminar(context.Background(), id))
	require.NotNil(t, adopciones.eliminada)
	assert.Equal(t, id, *adopciones.eliminada)
}

func TestEliminarAdopcionCompletada(t *testing.T) {
	id := uuid.New()
	estado := model.AdopcionCompletada
	adopciones := &stubAdopcionRepo{porID: map[uuid.UUID]*model.Adopcion{
		id: {ID: id, EstadoSolicitud: model.SolicitudAceptado, Estado: &estado},
	}}
	svc := nuevoAdopcionService(adopciones, &stubAnimalRepo{}, nil)

	err := svc.Eliminar(context.Background(), id)
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.Status)
	assert.Nil(t, adopciones.eliminada)
}

func TestCambiarEstadoAdopcionFinalizada(t *testing.T) {
	id := uuid.New()
	estado := model.AdopcionAprobada
	adopciones := &stubAdopcionRepo{porID: map[uuid.UUID]*model.Adopcion{
		id: {ID: id, EstadoSolicitud: model.SolicitudAceptado, Estado: &estado},
	}}
	svc := nuevoAdopcionService(adopciones, &stubAnimalRepo{}, nil)

	resp, err := svc.CambiarEstadoAdopcion(context.Background(), id, dto.CambiarEstadoRequest{Estado: "completada"})
	require.NoError(t, err)
	assert.Equal(t, model.AdopcionCompletada, *resp.Estado)

	// Completada es terminal.
	*adopciones.porID[id].Estado = model.AdopcionCompletada
	_, err = svc.CambiarEstadoAdopcion(context.Background(), id, dto.CambiarEstadoRequest{Estado: "cancelada"})
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.Status)
}
