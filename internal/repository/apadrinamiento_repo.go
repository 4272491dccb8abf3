package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
)

type ApadrinamientoRepository interface {
	CreateTx(ctx context.Context, tx *gorm.DB, a *model.Apadrinamiento) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Apadrinamiento, error)
	List(ctx context.Context, filter dto.ApadrinamientoFilter) ([]model.Apadrinamiento, int64, error)
	Update(ctx context.Context, a *model.Apadrinamiento) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateSolicitud(ctx context.Context, s *model.SolicitudApadrinamiento) error
	// FindSolicitudPendienteTx loads the request scoped to
	// estado = 'Pendiente' inside tx. A second approval of the same id
	// finds nothing — that is the idempotence guard.
	FindSolicitudPendienteTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.SolicitudApadrinamiento, error)
	ListSolicitudes(ctx context.Context, filter dto.SolicitudApadrinamientoFilter) ([]model.SolicitudApadrinamiento, int64, error)
	UpdateSolicitudTx(ctx context.Context, tx *gorm.DB, s *model.SolicitudApadrinamiento) error
	DB() *gorm.DB
}

type apadrinamientoRepo struct{ db *gorm.DB }

func NewApadrinamientoRepository(db *gorm.DB) ApadrinamientoRepository {
	return &apadrinamientoRepo{db: db}
}

func (r *apadrinamientoRepo) DB() *gorm.DB { return r.db }

func (r *apadrinamientoRepo) CreateTx(ctx context.Context, tx *gorm.DB, a *model.Apadrinamiento) error {
	return tx.WithContext(ctx).Create(a).Error
}

func (r *apadrinamientoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Apadrinamiento, error) {
	var a model.Apadrinamiento
	err := r.db.WithContext(ctx).
		Preload("Animal").Preload("Donacion").
		First(&a, id).Error
	return &a, err
}

func (r *apadrinamientoRepo) List(ctx context.Context, filter dto.ApadrinamientoFilter) ([]model.Apadrinamiento, int64, error) {
	var filas []model.Apadrinamiento
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Apadrinamiento{})

	if filter.Estado != "" {
		q = q.Where("LOWER(estado) = LOWER(?)", filter.Estado)
	}
	if filter.AnimalID != "" {
		q = q.Where("animal_id = ?", filter.AnimalID)
	}
	if filter.Frecuencia != "" {
		q = q.Where("frecuencia = ?", filter.Frecuencia)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Animal").
		Order("fecha_inicio DESC").
		Offset(filter.Offset()).Limit(filter.Limit).
		Find(&filas).Error

	return filas, total, err
}

func (r *apadrinamientoRepo) Update(ctx context.Context, a *model.Apadrinamiento) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *apadrinamientoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Apadrinamiento{}, id).Error
}

func (r *apadrinamientoRepo) CreateSolicitud(ctx context.Context, s *model.SolicitudApadrinamiento) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *apadrinamientoRepo) FindSolicitudPendienteTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.SolicitudApadrinamiento, error) {
	var s model.SolicitudApadrinamiento
	err := tx.WithContext(ctx).
		Preload("Usuario").Preload("Animal").
		Where("id = ? AND estado = ?", id, model.SolicitudApadrinamientoPendiente).
		First(&s).Error
	return &s, err
}

func (r *apadrinamientoRepo) ListSolicitudes(ctx context.Context, filter dto.SolicitudApadrinamientoFilter) ([]model.SolicitudApadrinamiento, int64, error) {
	var filas []model.SolicitudApadrinamiento
	var total int64

	q := r.db.WithContext(ctx).Model(&model.SolicitudApadrinamiento{})

	if filter.Estado != "" {
		q = q.Where("LOWER(estado) = LOWER(?)", filter.Estado)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Usuario").Preload("Animal").
		Order("fecha DESC").
		Offset(filter.Offset()).Limit(filter.Limit).
		Find(&filas).Error

	return filas, total, err
}

func (r *apadrinamientoRepo) UpdateSolicitudTx(ctx context.Context, tx *gorm.DB, s *model.SolicitudApadrinamiento) error {
	return tx.WithContext(ctx).Save(s).Error
}
