package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
)

type ReporteCasoRepository interface {
	Create(ctx context.Context, rc *model.ReporteCaso) error
	List(ctx context.Context, filter dto.ReporteCasoFilter) ([]model.ReporteCaso, int64, error)
}

type reporteCasoRepo struct{ db *gorm.DB }

func NewReporteCasoRepository(db *gorm.DB) ReporteCasoRepository {
	return &reporteCasoRepo{db: db}
}

func (r *reporteCasoRepo) Create(ctx context.Context, rc *model.ReporteCaso) error {
	return r.db.WithContext(ctx).Create(rc).Error
}

func (r *reporteCasoRepo) List(ctx context.Context, filter dto.ReporteCasoFilter) ([]model.ReporteCaso, int64, error) {
	var filas []model.ReporteCaso
	var total int64

	q := r.db.WithContext(ctx).Model(&model.ReporteCaso{})

	if filter.Tipo != "" {
		q = q.Where("tipo ILIKE ?", filter.Tipo)
	}
	if filter.FechaDesde != "" {
		q = q.Where("fecha_ingreso >= ?", filter.FechaDesde)
	}
	if filter.FechaHasta != "" {
		q = q.Where("fecha_ingreso <= ?", filter.FechaHasta)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("fecha_ingreso DESC").
		Offset(filter.Offset()).Limit(filter.Limit).
		Find(&filas).Error

	return filas, total, err
}
