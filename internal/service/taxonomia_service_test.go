package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
)

func TestEliminarEspecieConRazas(t *testing.T) {
	repo := newStubEspecieRazaRepo()
	raza := razaDePrueba(repo)
	repo.countRazas = 1
	svc := NewEspecieRazaService(repo)

	err := svc.EliminarEspecie(context.Background(), raza.EspecieID)
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.Status)
	assert.Nil(t, repo.especieEliminada)
}

func TestEliminarEspecieSinDependientes(t *testing.T) {
	repo := newStubEspecieRazaRepo()
	raza := razaDePrueba(repo)
	svc := NewEspecieRazaService(repo)

	require.NoError(t, svc.EliminarEspecie(context.Background(), raza.EspecieID))
	require.NotNil(t, repo.especieEliminada)
	assert.Equal(t, raza.EspecieID, *repo.especieEliminada)
}

func TestEliminarRazaConAnimales(t *testing.T) {
	repo := newStubEspecieRazaRepo()
	raza := razaDePrueba(repo)
	repo.countAnimales = 3
	svc := NewEspecieRazaService(repo)

	err := svc.EliminarRaza(context.Background(), raza.ID)
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.Status)
	assert.Nil(t, repo.razaEliminada)
}

func TestCrearEspecieNombreDuplicado(t *testing.T) {
	repo := newStubEspecieRazaRepo()
	razaDePrueba(repo) // registra la especie "Perro"
	svc := NewEspecieRazaService(repo)

	_, err := svc.CrearEspecie(context.Background(), dto.EspecieRequest{Nombre: "perro"})
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.Status)
	assert.Len(t, repo.especies, 1)
}

func TestActualizarEspecieNombreDuplicado(t *testing.T) {
	repo := newStubEspecieRazaRepo()
	raza := razaDePrueba(repo)
	gato := &model.Especie{ID: uuid.New(), Nombre: "Gato"}
	repo.especies[gato.ID] = gato
	svc := NewEspecieRazaService(repo)

	_, err := svc.ActualizarEspecie(context.Background(), gato.ID, dto.EspecieRequest{Nombre: "Perro"})
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.Status)

	// El propio registro queda excluido del chequeo.
	resp, err := svc.ActualizarEspecie(context.Background(), raza.EspecieID, dto.EspecieRequest{Nombre: "Perro"})
	require.NoError(t, err)
	assert.Equal(t, "Perro", resp.Nombre)
}

func TestCrearRazaNombreDuplicado(t *testing.T) {
	repo := newStubEspecieRazaRepo()
	raza := razaDePrueba(repo)
	svc := NewEspecieRazaService(repo)

	_, err := svc.CrearRaza(context.Background(), dto.RazaRequest{Nombre: "mestizo", EspecieID: raza.EspecieID.String()})
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.Status)
	assert.Len(t, repo.razas, 1)
}

func TestActualizarRazaConservaNombre(t *testing.T) {
	repo := newStubEspecieRazaRepo()
	raza := razaDePrueba(repo)
	svc := NewEspecieRazaService(repo)

	resp, err := svc.ActualizarRaza(context.Background(), raza.ID, dto.RazaRequest{Nombre: "Mestizo", EspecieID: raza.EspecieID.String()})
	require.NoError(t, err)
	assert.Equal(t, "Mestizo", resp.Nombre)
}

func TestCrearRazaEspecieInvalida(t *testing.T) {
	svc := NewEspecieRazaService(newStubEspecieRazaRepo())

	_, err := svc.CrearRaza(context.Background(), dto.RazaRequest{Nombre: "Siames", EspecieID: "no-es-uuid"})
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnprocessableEntity, se.Status)
}
