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

func razaDePrueba(repo *stubEspecieRazaRepo) *model.Raza {
	especie := &model.Especie{ID: uuid.New(), Nombre: "Perro"}
	repo.especies[especie.ID] = especie
	raza := &model.Raza{ID: uuid.New(), Nombre: "Mestizo", EspecieID: especie.ID, Especie: especie}
	repo.razas[raza.ID] = raza
	return raza
}

func TestCrearAnimalConImagenes(t *testing.T) {
	razas := newStubEspecieRazaRepo()
	raza := razaDePrueba(razas)
	svc := NewAnimalService(&stubAnimalRepo{}, razas)

	resp, err := svc.Crear(context.Background(), dto.CrearAnimalRequest{
		Nombre:    "Luna",
		RazaID:    raza.ID.String(),
		EdadMeses: 18,
		Sexo:      "H",
	}, []string{"/uploads/a.jpg", "/uploads/b.jpg"})
	require.NoError(t, err)

	assert.Equal(t, "Luna", resp.Nombre)
	assert.Len(t, resp.Imagenes, 2)
}

func TestCrearAnimalRazaInexistente(t *testing.T) {
	svc := NewAnimalService(&stubAnimalRepo{}, newStubEspecieRazaRepo())

	_, err := svc.Crear(context.Background(), dto.CrearAnimalRequest{
		Nombre: "Luna", RazaID: uuid.New().String(), Sexo: "H",
	}, nil)
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.Status)
}

func TestEliminarAnimalConAdopciones(t *testing.T) {
	animal := &model.Animal{ID: uuid.New()}
	animales := &stubAnimalRepo{
		porID:           map[uuid.UUID]*model.Animal{animal.ID: animal},
		countAdopciones: 2,
	}
	svc := NewAnimalService(animales, newStubEspecieRazaRepo())

	err := svc.Eliminar(context.Background(), animal.ID)
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.Status)
}

func TestAgregarHistorialFechaInvalida(t *testing.T) {
	animal := &model.Animal{ID: uuid.New()}
	animales := &stubAnimalRepo{porID: map[uuid.UUID]*model.Animal{animal.ID: animal}}
	svc := NewAnimalService(animales, newStubEspecieRazaRepo())

	_, err := svc.AgregarHistorial(context.Background(), animal.ID, dto.HistorialRequest{
		Tipo: "medico", Descripcion: "vacuna antirrabica", Fecha: "15/08/2026",
	})
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnprocessableEntity, se.Status)
}
