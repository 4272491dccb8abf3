package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
)

type EspecieRazaRepository interface {
	CreateEspecie(ctx context.Context, e *model.Especie) error
	FindEspecieByID(ctx context.Context, id uuid.UUID) (*model.Especie, error)
	ListEspecies(ctx context.Context) ([]model.Especie, error)
	UpdateEspecie(ctx context.Context, e *model.Especie) error
	DeleteEspecie(ctx context.Context, id uuid.UUID) error
	// CountRazas backs the dependent pre-check before especie deletion.
	CountRazas(ctx context.Context, especieID uuid.UUID) (int64, error)
	ExistsNombreEspecie(ctx context.Context, nombre string, excludeID *uuid.UUID) (bool, error)

	CreateRaza(ctx context.Context, r *model.Raza) error
	FindRazaByID(ctx context.Context, id uuid.UUID) (*model.Raza, error)
	ListRazas(ctx context.Context, especieID *uuid.UUID) ([]model.Raza, error)
	UpdateRaza(ctx context.Context, r *model.Raza) error
	DeleteRaza(ctx context.Context, id uuid.UUID) error
	CountAnimales(ctx context.Context, razaID uuid.UUID) (int64, error)
	ExistsNombreRaza(ctx context.Context, nombre string, excludeID *uuid.UUID) (bool, error)
}

type especieRazaRepo struct{ db *gorm.DB }

func NewEspecieRazaRepository(db *gorm.DB) EspecieRazaRepository {
	return &especieRazaRepo{db: db}
}

func (r *especieRazaRepo) CreateEspecie(ctx context.Context, e *model.Especie) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *especieRazaRepo) FindEspecieByID(ctx context.Context, id uuid.UUID) (*model.Especie, error) {
	var e model.Especie
	err := r.db.WithContext(ctx).First(&e, id).Error
	return &e, err
}

func (r *especieRazaRepo) ListEspecies(ctx context.Context) ([]model.Especie, error) {
	var especies []model.Especie
	err := r.db.WithContext(ctx).Order("nombre").Find(&especies).Error
	return especies, err
}

func (r *especieRazaRepo) UpdateEspecie(ctx context.Context, e *model.Especie) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *especieRazaRepo) DeleteEspecie(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Especie{}, id).Error
}

func (r *especieRazaRepo) CountRazas(ctx context.Context, especieID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Raza{}).
		Where("especie_id = ?", especieID).Count(&count).Error
	return count, err
}

func (r *especieRazaRepo) ExistsNombreEspecie(ctx context.Context, nombre string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Especie{}).
		Where("LOWER(nombre) = LOWER(?)", nombre)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *especieRazaRepo) CreateRaza(ctx context.Context, raza *model.Raza) error {
	return r.db.WithContext(ctx).Create(raza).Error
}

func (r *especieRazaRepo) FindRazaByID(ctx context.Context, id uuid.UUID) (*model.Raza, error) {
	var raza model.Raza
	err := r.db.WithContext(ctx).Preload("Especie").First(&raza, id).Error
	return &raza, err
}

func (r *especieRazaRepo) ListRazas(ctx context.Context, especieID *uuid.UUID) ([]model.Raza, error) {
	var razas []model.Raza
	q := r.db.WithContext(ctx).Preload("Especie")
	if especieID != nil {
		q = q.Where("especie_id = ?", *especieID)
	}
	err := q.Order("nombre").Find(&razas).Error
	return razas, err
}

func (r *especieRazaRepo) UpdateRaza(ctx context.Context, raza *model.Raza) error {
	return r.db.WithContext(ctx).Save(raza).Error
}

func (r *especieRazaRepo) DeleteRaza(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Raza{}, id).Error
}

func (r *especieRazaRepo) CountAnimales(ctx context.Context, razaID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Animal{}).
		Where("raza_id = ?", razaID).Count(&count).Error
	return count, err
}

func (r *especieRazaRepo) ExistsNombreRaza(ctx context.Context, nombre string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Raza{}).
		Where("LOWER(nombre) = LOWER(?)", nombre)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}
