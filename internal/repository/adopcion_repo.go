package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
)

type AdopcionRepository interface {
	Create(ctx context.Context, a *model.Adopcion) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Adopcion, error)
	// TieneSolicitudAbierta reports whether the user already has a
	// non-terminal request for the animal.
	TieneSolicitudAbierta(ctx context.Context, usuarioID, animalID uuid.UUID) (bool, error)
	ListSolicitudes(ctx context.Context, filter dto.SolicitudAdopcionFilter, usuarioID *uuid.UUID) ([]model.Adopcion, int64, error)
	ListAdopciones(ctx context.Context, filter dto.AdopcionFilter) ([]model.Adopcion, int64, error)
	UpdateEstadoSolicitud(ctx context.Context, id uuid.UUID, estado string) error
	UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error
	UpdateTx(ctx context.Context, tx *gorm.DB, a *model.Adopcion) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type adopcionRepo struct{ db *gorm.DB }

func NewAdopcionRepository(db *gorm.DB) AdopcionRepository { return &adopcionRepo{db: db} }

func (r *adopcionRepo) DB() *gorm.DB { return r.db }

func (r *adopcionRepo) Create(ctx context.Context, a *model.Adopcion) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *adopcionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Adopcion, error) {
	var a model.Adopcion
	err := r.db.WithContext(ctx).
		Preload("Animal.Raza.Especie").Preload("Usuario").
		First(&a, id).Error
	return &a, err
}

func (r *adopcionRepo) TieneSolicitudAbierta(ctx context.Context, usuarioID, animalID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Adopcion{}).
		Where("usuario_id = ? AND animal_id = ?", usuarioID, animalID).
		Where("estado_solicitud IN (?, ?, ?)",
			model.SolicitudPendiente, model.SolicitudEnRevision, model.SolicitudAceptado).
		Count(&count).Error
	return count > 0, err
}

func (r *adopcionRepo) ListSolicitudes(ctx context.Context, filter dto.SolicitudAdopcionFilter, usuarioID *uuid.UUID) ([]model.Adopcion, int64, error) {
	var filas []model.Adopcion
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Adopcion{})

	if usuarioID != nil {
		// Non-admins only see their own requests.
		q = q.Where("usuario_id = ?", *usuarioID)
	}
	if filter.Estado != "" {
		q = q.Where("UPPER(estado_solicitud) = UPPER(?)", filter.Estado)
	}
	if filter.AnimalID != "" {
		q = q.Where("animal_id = ?", filter.AnimalID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Animal").Preload("Usuario").
		Order("fecha_solicitud DESC").
		Offset(filter.Offset()).Limit(filter.Limit).
		Find(&filas).Error

	return filas, total, err
}

func (r *adopcionRepo) ListAdopciones(ctx context.Context, filter dto.AdopcionFilter) ([]model.Adopcion, int64, error) {
	var filas []model.Adopcion
	var total int64

	// Finalized phase only: rows whose estado has been set.
	q := r.db.WithContext(ctx).Model(&model.Adopcion{}).Where("estado IS NOT NULL")

	if filter.Estado != "" {
		q = q.Where("LOWER(estado) = LOWER(?)", filter.Estado)
	}
	if filter.Fecha != "" {
		q = q.Where("DATE(fecha_firma) = ?", filter.Fecha)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Animal").Preload("Usuario").
		Order("fecha_firma DESC").
		Offset(filter.Offset()).Limit(filter.Limit).
		Find(&filas).Error

	return filas, total, err
}

func (r *adopcionRepo) UpdateEstadoSolicitud(ctx context.Context, id uuid.UUID, estado string) error {
	return r.db.WithContext(ctx).Model(&model.Adopcion{}).
		Where("id = ?", id).Update("estado_solicitud", estado).Error
}

func (r *adopcionRepo) UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.db.WithContext(ctx).Model(&model.Adopcion{}).
		Where("id = ?", id).Update("estado", estado).Error
}

func (r *adopcionRepo) UpdateTx(ctx context.Context, tx *gorm.DB, a *model.Adopcion) error {
	return tx.WithContext(ctx).Save(a).Error
}

func (r *adopcionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Adopcion{}, id).Error
}
