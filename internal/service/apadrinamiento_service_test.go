package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
)

func solicitudPendiente() *model.SolicitudApadrinamiento {
	return &model.SolicitudApadrinamiento{
		ID:         uuid.New(),
		UsuarioID:  uuid.New(),
		Usuario:    &model.Usuario{ID: uuid.New(), Alias: "padrino1", Email: "padrino@example.com"},
		AnimalID:   uuid.New(),
		Monto:      decimal.NewFromInt(50),
		Frecuencia: "mensual",
		Estado:     model.SolicitudApadrinamientoPendiente,
	}
}

func TestAprobarSolicitudApadrinamiento(t *testing.T) {
	solicitud := solicitudPendiente()
	repo := &stubApadrinamientoRepo{solicitud: solicitud}
	donaciones := newStubDonacionRepo()
	notif := &stubNotificador{}
	svc := NewApadrinamientoService(repo, donaciones, &stubAnimalRepo{}, notif)

	resp, err := svc.AprobarSolicitud(context.Background(), solicitud.ID)
	require.NoError(t, err)

	// Donacion del monto comprometido bajo la categoria Apadrinamiento.
	require.Len(t, donaciones.creadas, 1)
	donacion := donaciones.creadas[0]
	require.Len(t, donacion.Detalles, 1)
	assert.True(t, donacion.Detalles[0].Cantidad.Equal(solicitud.Monto))
	assert.Equal(t, &solicitud.UsuarioID, donacion.UsuarioID)

	// Apadrinamiento activo enlazado a la donacion y a la solicitud.
	require.NotNil(t, repo.creado)
	assert.Equal(t, donacion.ID, repo.creado.DonacionID)
	assert.Equal(t, solicitud.AnimalID, repo.creado.AnimalID)
	assert.Equal(t, model.ApadrinamientoActivo, repo.creado.Estado)
	require.NotNil(t, repo.creado.SolicitudID)
	assert.Equal(t, solicitud.ID, *repo.creado.SolicitudID)
	assert.Equal(t, repo.creado.ID.String(), resp.ID)

	// Solicitud marcada como aprobada.
	require.NotNil(t, repo.solicitudGuardada)
	assert.Equal(t, model.SolicitudApadrinamientoAprobada, repo.solicitudGuardada.Estado)

	require.Len(t, notif.encolados, 1)
	assert.Equal(t, "padrino@example.com", notif.encolados[0].ToEmail)
}

func TestAprobarSolicitudYaResuelta(t *testing.T) {
	solicitud := solicitudPendiente()
	solicitud.Estado = model.SolicitudApadrinamientoAprobada

	repo := &stubApadrinamientoRepo{solicitud: solicitud}
	donaciones := newStubDonacionRepo()
	svc := NewApadrinamientoService(repo, donaciones, &stubAnimalRepo{}, nil)

	// La segunda aprobacion no encuentra solicitud pendiente: ni donacion
	// ni apadrinamiento duplicados.
	_, err := svc.AprobarSolicitud(context.Background(), solicitud.ID)
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.Status)
	assert.Empty(t, donaciones.creadas)
	assert.Nil(t, repo.creado)
}

func TestRechazarSolicitudApadrinamiento(t *testing.T) {
	solicitud := solicitudPendiente()
	repo := &stubApadrinamientoRepo{solicitud: solicitud}
	svc := NewApadrinamientoService(repo, newStubDonacionRepo(), &stubAnimalRepo{}, nil)

	require.NoError(t, svc.RechazarSolicitud(context.Background(), solicitud.ID))
	require.NotNil(t, repo.solicitudGuardada)
	assert.Equal(t, model.SolicitudApadrinamientoRechazada, repo.solicitudGuardada.Estado)
}

func TestCrearSolicitudApadrinamiento(t *testing.T) {
	animal := &model.Animal{ID: uuid.New()}
	animales := &stubAnimalRepo{porID: map[uuid.UUID]*model.Animal{animal.ID: animal}}
	repo := &stubApadrinamientoRepo{}
	svc := NewApadrinamientoService(repo, newStubDonacionRepo(), animales, nil)

	usuarioID := uuid.New()
	resp, err := svc.CrearSolicitud(context.Background(), usuarioID, dto.CrearSolicitudApadrinamientoRequest{
		AnimalID:   animal.ID.String(),
		Monto:      decimal.NewFromInt(30),
		Frecuencia: "mensual",
	})
	require.NoError(t, err)
	assert.Equal(t, model.SolicitudApadrinamientoPendiente, resp.Estado)
	require.NotNil(t, repo.solicitudRegistrada)
	assert.Equal(t, usuarioID, repo.solicitudRegistrada.UsuarioID)
}

func TestCrearSolicitudApadrinamientoMontoInvalido(t *testing.T) {
	svc := NewApadrinamientoService(&stubApadrinamientoRepo{}, newStubDonacionRepo(), &stubAnimalRepo{}, nil)

	_, err := svc.CrearSolicitud(context.Background(), uuid.New(), dto.CrearSolicitudApadrinamientoRequest{
		AnimalID:   uuid.New().String(),
		Monto:      decimal.Zero,
		Frecuencia: "mensual",
	})
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnprocessableEntity, se.Status)
}
