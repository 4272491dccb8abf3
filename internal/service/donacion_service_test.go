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

func TestCrearDonacion(t *testing.T) {
	repo := newStubDonacionRepo()
	cat := &model.CategoriaDonacion{ID: uuid.New(), Nombre: "Alimentos"}
	repo.categoriasPorID[cat.ID.String()] = cat

	donante := &model.Usuario{ID: uuid.New(), Alias: "maria88", Email: "maria@example.com"}
	usuarios := &stubUsuarioRepo{porID: map[uuid.UUID]*model.Usuario{donante.ID: donante}}
	notif := &stubNotificador{}
	svc := NewDonacionService(repo, usuarios, notif)

	resp, err := svc.Crear(context.Background(), &donante.ID, dto.CrearDonacionRequest{
		Donaciones: []dto.DetalleDonacionRequest{
			{CategoriaID: cat.ID.String(), CantidadDonacion: decimal.NewFromInt(5), DetalleDonacion: "croquetas"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.CantidadDetalles)
	require.NotNil(t, resp.UsuarioID)

	require.Len(t, repo.creadas, 1)
	require.Len(t, repo.creadas[0].Detalles, 1)
	assert.Equal(t, cat.ID, repo.creadas[0].Detalles[0].CategoriaID)

	// Recibo para el donante identificado.
	require.Len(t, notif.encolados, 1)
	assert.Equal(t, "maria@example.com", notif.encolados[0].ToEmail)
}

func TestCrearDonacionCategoriaInexistente(t *testing.T) {
	svc := NewDonacionService(newStubDonacionRepo(), nil, nil)

	_, err := svc.Crear(context.Background(), nil, dto.CrearDonacionRequest{
		Donaciones: []dto.DetalleDonacionRequest{
			{CategoriaID: uuid.New().String(), CantidadDonacion: decimal.NewFromInt(5)},
		},
	})
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.Status)
}

func TestCrearDonacionCantidadInvalida(t *testing.T) {
	repo := newStubDonacionRepo()
	cat := &model.CategoriaDonacion{ID: uuid.New(), Nombre: "Alimentos"}
	repo.categoriasPorID[cat.ID.String()] = cat
	svc := NewDonacionService(repo, nil, nil)

	_, err := svc.Crear(context.Background(), nil, dto.CrearDonacionRequest{
		Donaciones: []dto.DetalleDonacionRequest{
			{CategoriaID: cat.ID.String(), CantidadDonacion: decimal.NewFromInt(-3)},
		},
	})
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnprocessableEntity, se.Status)
	assert.Empty(t, repo.creadas)
}

func TestCrearTipificadaCreaCategoriaPerezosa(t *testing.T) {
	repo := newStubDonacionRepo()
	svc := NewDonacionService(repo, nil, nil)

	// Donacion anonima: usuario nil.
	resp, err := svc.CrearTipificada(context.Background(), nil, "Medicinas", dto.DonacionTipificadaRequest{
		Cantidad: decimal.NewFromFloat(12.50),
		Detalle:  "antiparasitarios",
	})
	require.NoError(t, err)
	assert.Nil(t, resp.UsuarioID)

	// La categoria se creo al vuelo dentro de la misma transaccion.
	require.Contains(t, repo.categorias, "medicinas")
	require.Len(t, repo.creadas, 1)
	assert.Equal(t, repo.categorias["medicinas"].ID, repo.creadas[0].Detalles[0].CategoriaID)
}

func TestCrearTipificadaReusaCategoria(t *testing.T) {
	repo := newStubDonacionRepo()
	cat := &model.CategoriaDonacion{ID: uuid.New(), Nombre: "Alimentos"}
	repo.categorias["alimentos"] = cat
	svc := NewDonacionService(repo, nil, nil)

	_, err := svc.CrearTipificada(context.Background(), nil, "Alimentos", dto.DonacionTipificadaRequest{
		Cantidad: decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	require.Len(t, repo.creadas, 1)
	assert.Equal(t, cat.ID, repo.creadas[0].Detalles[0].CategoriaID)
}
