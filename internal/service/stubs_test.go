package service

// Stub repositories for unit tests. DB() returns nil so runTx executes the
// transaction body directly, without a database.

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/worker"
)

// ── usuarios ─────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	existeAliasOEmail bool
	porEmail          map[string]*model.Usuario
	porID             map[uuid.UUID]*model.Usuario

	creado        *model.Usuario
	personaCreada *model.Persona
	empresaCreada *model.Empresa
	eliminado     *uuid.UUID
}

func (s *stubUsuarioRepo) DB() *gorm.DB { return nil }

func (s *stubUsuarioRepo) CreateTx(_ context.Context, _ *gorm.DB, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	s.creado = u
	return nil
}

func (s *stubUsuarioRepo) CreatePersonaTx(_ context.Context, _ *gorm.DB, p *model.Persona) error {
	s.personaCreada = p
	return nil
}

func (s *stubUsuarioRepo) CreateEmpresaTx(_ context.Context, _ *gorm.DB, e *model.Empresa) error {
	s.empresaCreada = e
	return nil
}

func (s *stubUsuarioRepo) ExistsAliasOrEmail(_ context.Context, _, _ string) (bool, error) {
	return s.existeAliasOEmail, nil
}

func (s *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	if u, ok := s.porEmail[strings.ToLower(email)]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	if u, ok := s.porID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUsuarioRepo) List(_ context.Context, _ dto.UsuarioFilter) ([]model.Usuario, int64, error) {
	return nil, 0, nil
}

func (s *stubUsuarioRepo) Update(_ context.Context, _ *model.Usuario) error { return nil }

func (s *stubUsuarioRepo) Delete(_ context.Context, id uuid.UUID) error {
	s.eliminado = &id
	return nil
}

// ── animales ─────────────────────────────────────────────────────────────────

type stubAnimalRepo struct {
	porID           map[uuid.UUID]*model.Animal
	disponible      bool
	countAdopciones int64
}

func (s *stubAnimalRepo) DB() *gorm.DB { return nil }

func (s *stubAnimalRepo) CreateTx(_ context.Context, _ *gorm.DB, a *model.Animal) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (s *stubAnimalRepo) AddImagenTx(_ context.Context, _ *gorm.DB, _ *model.AnimalImagen) error {
	return nil
}

func (s *stubAnimalRepo) AddHistorialTx(_ context.Context, _ *gorm.DB, _ *model.HistorialAnimal) error {
	return nil
}

func (s *stubAnimalRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Animal, error) {
	if a, ok := s.porID[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubAnimalRepo) List(_ context.Context, _ dto.AnimalFilter) ([]model.Animal, int64, error) {
	return nil, 0, nil
}

func (s *stubAnimalRepo) ListDisponibles(_ context.Context, _ dto.AnimalFilter) ([]model.Animal, int64, error) {
	return nil, 0, nil
}

func (s *stubAnimalRepo) EstaDisponible(_ context.Context, _ uuid.UUID) (bool, error) {
	return s.disponible, nil
}

func (s *stubAnimalRepo) Update(_ context.Context, _ *model.Animal) error { return nil }

func (s *stubAnimalRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (s *stubAnimalRepo) CountAdopciones(_ context.Context, _ uuid.UUID) (int64, error) {
	return s.countAdopciones, nil
}

// ── adopciones ───────────────────────────────────────────────────────────────

type stubAdopcionRepo struct {
	porID   map[uuid.UUID]*model.Adopcion
	abierta bool

	creada          *model.Adopcion
	estadoSolicitud string
	estado          string
	guardada        *model.Adopcion
	eliminada       *uuid.UUID
	errUpdate       error
}

func (s *stubAdopcionRepo) DB() *gorm.DB { return nil }

func (s *stubAdopcionRepo) Create(_ context.Context, a *model.Adopcion) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	s.creada = a
	return nil
}

func (s *stubAdopcionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Adopcion, error) {
	if a, ok := s.porID[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubAdopcionRepo) TieneSolicitudAbierta(_ context.Context, _, _ uuid.UUID) (bool, error) {
	return s.abierta, nil
}

func (s *stubAdopcionRepo) ListSolicitudes(_ context.Context, _ dto.SolicitudAdopcionFilter, _ *uuid.UUID) ([]model.Adopcion, int64, error) {
	return nil, 0, nil
}

func (s *stubAdopcionRepo) ListAdopciones(_ context.Context, _ dto.AdopcionFilter) ([]model.Adopcion, int64, error) {
	return nil, 0, nil
}

func (s *stubAdopcionRepo) UpdateEstadoSolicitud(_ context.Context, _ uuid.UUID, estado string) error {
	s.estadoSolicitud = estado
	return nil
}

func (s *stubAdopcionRepo) UpdateEstado(_ context.Context, _ uuid.UUID, estado string) error {
	s.estado = estado
	return nil
}

func (s *stubAdopcionRepo) UpdateTx(_ context.Context, _ *gorm.DB, a *model.Adopcion) error {
	if s.errUpdate != nil {
		return s.errUpdate
	}
	s.guardada = a
	return nil
}

func (s *stubAdopcionRepo) Delete(_ context.Context, id uuid.UUID) error {
	s.eliminada = &id
	return nil
}

// ── donaciones ───────────────────────────────────────────────────────────────

type stubDonacionRepo struct {
	categoriasPorID map[string]*model.CategoriaDonacion
	categorias      map[string]*model.CategoriaDonacion // por nombre en minusculas

	creadas []*model.Donacion
}

func newStubDonacionRepo() *stubDonacionRepo {
	return &stubDonacionRepo{
		categoriasPorID: map[string]*model.CategoriaDonacion{},
		categorias:      map[string]*model.CategoriaDonacion{},
	}
}

func (s *stubDonacionRepo) DB() *gorm.DB { return nil }

func (s *stubDonacionRepo) CreateTx(_ context.Context, _ *gorm.DB, d *model.Donacion) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	s.creadas = append(s.creadas, d)
	return nil
}

func (s *stubDonacionRepo) FindOrCreateCategoriaTx(_ context.Context, _ *gorm.DB, nombre string) (*model.CategoriaDonacion, error) {
	clave := strings.ToLower(nombre)
	if cat, ok := s.categorias[clave]; ok {
		return cat, nil
	}
	cat := &model.CategoriaDonacion{ID: uuid.New(), Nombre: nombre}
	s.categorias[clave] = cat
	s.categoriasPorID[cat.ID.String()] = cat
	return cat, nil
}

func (s *stubDonacionRepo) FindCategoriaByID(_ context.Context, id string) (*model.CategoriaDonacion, error) {
	if cat, ok := s.categoriasPorID[id]; ok {
		return cat, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubDonacionRepo) ListDetalles(_ context.Context, _ dto.DonacionFilter) ([]model.DetalleDonacion, int64, error) {
	return nil, 0, nil
}

// ── apadrinamientos ──────────────────────────────────────────────────────────

type stubApadrinamientoRepo struct {
	solicitud *model.SolicitudApadrinamiento

	creado              *model.Apadrinamiento
	solicitudGuardada   *model.SolicitudApadrinamiento
	solicitudRegistrada *model.SolicitudApadrinamiento
}

func (s *stubApadrinamientoRepo) DB() *gorm.DB { return nil }

func (s *stubApadrinamientoRepo) CreateTx(_ context.Context, _ *gorm.DB, a *model.Apadrinamiento) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	s.creado = a
	return nil
}

func (s *stubApadrinamientoRepo) FindByID(_ context.Context, _ uuid.UUID) (*model.Apadrinamiento, error) {
	if s.creado != nil {
		return s.creado, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubApadrinamientoRepo) List(_ context.Context, _ dto.ApadrinamientoFilter) ([]model.Apadrinamiento, int64, error) {
	return nil, 0, nil
}

func (s *stubApadrinamientoRepo) Update(_ context.Context, _ *model.Apadrinamiento) error { return nil }

func (s *stubApadrinamientoRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (s *stubApadrinamientoRepo) CreateSolicitud(_ context.Context, sol *model.SolicitudApadrinamiento) error {
	if sol.ID == uuid.Nil {
		sol.ID = uuid.New()
	}
	s.solicitudRegistrada = sol
	return nil
}

func (s *stubApadrinamientoRepo) FindSolicitudPendienteTx(_ context.Context, _ *gorm.DB, id uuid.UUID) (*model.SolicitudApadrinamiento, error) {
	if s.solicitud == nil || s.solicitud.ID != id || s.solicitud.Estado != model.SolicitudApadrinamientoPendiente {
		return nil, gorm.ErrRecordNotFound
	}
	return s.solicitud, nil
}

func (s *stubApadrinamientoRepo) ListSolicitudes(_ context.Context, _ dto.SolicitudApadrinamientoFilter) ([]model.SolicitudApadrinamiento, int64, error) {
	return nil, 0, nil
}

func (s *stubApadrinamientoRepo) UpdateSolicitudTx(_ context.Context, _ *gorm.DB, sol *model.SolicitudApadrinamiento) error {
	s.solicitudGuardada = sol
	return nil
}

// ── taxonomia ────────────────────────────────────────────────────────────────

type stubEspecieRazaRepo struct {
	especies map[uuid.UUID]*model.Especie
	razas    map[uuid.UUID]*model.Raza

	countRazas    int64
	countAnimales int64

	especieEliminada *uuid.UUID
	razaEliminada    *uuid.UUID
}

func newStubEspecieRazaRepo() *stubEspecieRazaRepo {
	return &stubEspecieRazaRepo{
		especies: map[uuid.UUID]*model.Especie{},
		razas:    map[uuid.UUID]*model.Raza{},
	}
}

func (s *stubEspecieRazaRepo) CreateEspecie(_ context.Context, e *model.Especie) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	s.especies[e.ID] = e
	return nil
}

func (s *stubEspecieRazaRepo) FindEspecieByID(_ context.Context, id uuid.UUID) (*model.Especie, error) {
	if e, ok := s.especies[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubEspecieRazaRepo) ListEspecies(_ context.Context) ([]model.Especie, error) {
	return nil, nil
}

func (s *stubEspecieRazaRepo) UpdateEspecie(_ context.Context, _ *model.Especie) error { return nil }

func (s *stubEspecieRazaRepo) DeleteEspecie(_ context.Context, id uuid.UUID) error {
	s.especieEliminada = &id
	return nil
}

func (s *stubEspecieRazaRepo) CountRazas(_ context.Context, _ uuid.UUID) (int64, error) {
	return s.countRazas, nil
}

func (s *stubEspecieRazaRepo) ExistsNombreEspecie(_ context.Context, nombre string, excludeID *uuid.UUID) (bool, error) {
	for id, e := range s.especies {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if strings.EqualFold(e.Nombre, nombre) {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubEspecieRazaRepo) CreateRaza(_ context.Context, r *model.Raza) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	s.razas[r.ID] = r
	return nil
}

func (s *stubEspecieRazaRepo) FindRazaByID(_ context.Context, id uuid.UUID) (*model.Raza, error) {
	if r, ok := s.razas[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubEspecieRazaRepo) ListRazas(_ context.Context, _ *uuid.UUID) ([]model.Raza, error) {
	return nil, nil
}

func (s *stubEspecieRazaRepo) UpdateRaza(_ context.Context, _ *model.Raza) error { return nil }

func (s *stubEspecieRazaRepo) DeleteRaza(_ context.Context, id uuid.UUID) error {
	s.razaEliminada = &id
	return nil
}

func (s *stubEspecieRazaRepo) CountAnimales(_ context.Context, _ uuid.UUID) (int64, error) {
	return s.countAnimales, nil
}

func (s *stubEspecieRazaRepo) ExistsNombreRaza(_ context.Context, nombre string, excludeID *uuid.UUID) (bool, error) {
	for id, r := range s.razas {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if strings.EqualFold(r.Nombre, nombre) {
			return true, nil
		}
	}
	return false, nil
}

// ── notificador ──────────────────────────────────────────────────────────────

type stubNotificador struct {
	encolados []worker.NotificacionPayload
}

func (s *stubNotificador) EnqueueNotificacion(_ context.Context, payload interface{}) error {
	if p, ok := payload.(worker.NotificacionPayload); ok {
		s.encolados = append(s.encolados, p)
	}
	return nil
}
