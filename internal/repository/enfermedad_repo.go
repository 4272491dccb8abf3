package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
)

type EnfermedadRepository interface {
	CreateTipo(ctx context.Context, t *model.TipoEnfermedad) error
	FindTipoByID(ctx context.Context, id uuid.UUID) (*model.TipoEnfermedad, error)
	ListTipos(ctx context.Context) ([]model.TipoEnfermedad, error)
	UpdateTipo(ctx context.Context, t *model.TipoEnfermedad) error
	DeleteTipo(ctx context.Context, id uuid.UUID) error
	CountEnfermedades(ctx context.Context, tipoID uuid.UUID) (int64, error)

	Create(ctx context.Context, e *model.Enfermedad) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Enfermedad, error)
	List(ctx context.Context, tipoID *uuid.UUID) ([]model.Enfermedad, error)
	Update(ctx context.Context, e *model.Enfermedad) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ExistsNombre checks name uniqueness case-insensitively, excluding
	// excludeID (non-nil during edits) so a row does not collide with itself.
	ExistsNombre(ctx context.Context, nombre string, excludeID *uuid.UUID) (bool, error)
}

type enfermedadRepo struct{ db *gorm.DB }

func NewEnfermedadRepository(db *gorm.DB) EnfermedadRepository {
	return &enfermedadRepo{db: db}
}

func (r *enfermedadRepo) CreateTipo(ctx context.Context, t *model.TipoEnfermedad) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *enfermedadRepo) FindTipoByID(ctx context.Context, id uuid.UUID) (*model.TipoEnfermedad, error) {
	var t model.TipoEnfermedad
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *enfermedadRepo) ListTipos(ctx context.Context) ([]model.TipoEnfermedad, error) {
	var tipos []model.TipoEnfermedad
	err := r.db.WithContext(ctx).Order("nombre").Find(&tipos).Error
	return tipos, err
}

func (r *enfermedadRepo) UpdateTipo(ctx context.Context, t *model.TipoEnfermedad) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *enfermedadRepo) DeleteTipo(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TipoEnfermedad{}, id).Error
}

func (r *enfermedadRepo) CountEnfermedades(ctx context.Context, tipoID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Enfermedad{}).
		Where("tipo_id = ?", tipoID).Count(&count).Error
	return count, err
}

func (r *enfermedadRepo) Create(ctx context.Context, e *model.Enfermedad) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *enfermedadRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Enfermedad, error) {
	var e model.Enfermedad
	err := r.db.WithContext(ctx).Preload("Tipo").First(&e, id).Error
	return &e, err
}

func (r *enfermedadRepo) List(ctx context.Context, tipoID *uuid.UUID) ([]model.Enfermedad, error) {
	var enfermedades []model.Enfermedad
	q := r.db.WithContext(ctx).Preload("Tipo")
	if tipoID != nil {
		q = q.Where("tipo_id = ?", *tipoID)
	}
	err := q.Order("nombre").Find(&enfermedades).Error
	return enfermedades, err
}

func (r *enfermedadRepo) Update(ctx context.Context, e *model.Enfermedad) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *enfermedadRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Enfermedad{}, id).Error
}

func (r *enfermedadRepo) ExistsNombre(ctx context.Context, nombre string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Enfermedad{}).
		Where("LOWER(nombre) = LOWER(?)", nombre)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}
