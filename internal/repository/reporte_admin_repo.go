package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
)

// ReporteAdminRepository serves the aggregate queries behind the admin
// dashboards. Raw SQL because GORM's model API adds nothing to a GROUP BY.
type ReporteAdminRepository interface {
	DonacionesPorCategoria(ctx context.Context) ([]dto.DonacionPorCategoria, error)
	DonacionesPorMes(ctx context.Context, anio int) ([]dto.TotalPorMes, error)
	AdopcionesPorMes(ctx context.Context, anio int) ([]dto.ConteoPorMes, error)
	Resumen(ctx context.Context) (*dto.ResumenAdmin, error)
}

type reporteAdminRepo struct{ db *gorm.DB }

func NewReporteAdminRepository(db *gorm.DB) ReporteAdminRepository {
	return &reporteAdminRepo{db: db}
}

func (r *reporteAdminRepo) DonacionesPorCategoria(ctx context.Context) ([]dto.DonacionPorCategoria, error) {
	var filas []dto.DonacionPorCategoria
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.nombre AS categoria,
		       COALESCE(SUM(d.cantidad), 0) AS total,
		       COUNT(*) AS cantidad
		FROM detalle_donaciones d
		JOIN categoria_donaciones c ON c.id = d.categoria_id
		GROUP BY c.nombre
		ORDER BY total DESC`).Scan(&filas).Error
	return filas, err
}

func (r *reporteAdminRepo) DonacionesPorMes(ctx context.Context, anio int) ([]dto.TotalPorMes, error) {
	var filas []dto.TotalPorMes
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXTRACT(MONTH FROM don.fecha)::int AS mes,
		       COALESCE(SUM(det.cantidad), 0) AS total
		FROM donaciones don
		JOIN detalle_donaciones det ON det.donacion_id = don.id
		WHERE EXTRACT(YEAR FROM don.fecha) = ?
		GROUP BY mes
		ORDER BY mes`, anio).Scan(&filas).Error
	return filas, err
}

func (r *reporteAdminRepo) AdopcionesPorMes(ctx context.Context, anio int) ([]dto.ConteoPorMes, error) {
	var filas []dto.ConteoPorMes
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXTRACT(MONTH FROM fecha_firma)::int AS mes,
		       COUNT(*) AS cantidad
		FROM adopciones
		WHERE estado IS NOT NULL
		  AND EXTRACT(YEAR FROM fecha_firma) = ?
		GROUP BY mes
		ORDER BY mes`, anio).Scan(&filas).Error
	return filas, err
}

func (r *reporteAdminRepo) Resumen(ctx context.Context) (*dto.ResumenAdmin, error) {
	var res dto.ResumenAdmin
	ctxDB := r.db.WithContext(ctx)

	if err := ctxDB.Model(&model.Animal{}).Count(&res.Animales).Error; err != nil {
		return nil, err
	}
	if err := ctxDB.Model(&model.Animal{}).
		Where("NOT EXISTS (SELECT 1 FROM adopciones WHERE adopciones.animal_id = animales.id AND " + estadoBloqueante + ")").
		Count(&res.AnimalesDisponibles).Error; err != nil {
		return nil, err
	}
	if err := ctxDB.Model(&model.Adopcion{}).
		Where("estado IS NOT NULL").Count(&res.Adopciones).Error; err != nil {
		return nil, err
	}
	if err := ctxDB.Model(&model.Apadrinamiento{}).
		Where("estado = ?", model.ApadrinamientoActivo).
		Count(&res.ApadrinamientosActivos).Error; err != nil {
		return nil, err
	}
	if err := ctxDB.Model(&model.Usuario{}).Count(&res.Usuarios).Error; err != nil {
		return nil, err
	}
	if err := ctxDB.Raw(`SELECT COALESCE(SUM(cantidad), 0) FROM detalle_donaciones`).
		Scan(&res.TotalDonado).Error; err != nil {
		return nil, err
	}
	return &res, nil
}
