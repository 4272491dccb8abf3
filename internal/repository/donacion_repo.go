package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
)

type DonacionRepository interface {
	// CreateTx inserts the header together with its detail rows — the
	// association write happens inside the caller's transaction, so a
	// header without details never persists.
	CreateTx(ctx context.Context, tx *gorm.DB, d *model.Donacion) error
	// FindOrCreateCategoriaTx resolves a category by name, case-insensitively,
	// creating it when missing (lazy creation inside the donation tx).
	FindOrCreateCategoriaTx(ctx context.Context, tx *gorm.DB, nombre string) (*model.CategoriaDonacion, error)
	FindCategoriaByID(ctx context.Context, id string) (*model.CategoriaDonacion, error)
	// ListDetalles is the donation ledger: one row per detail, joined with
	// its category and header.
	ListDetalles(ctx context.Context, filter dto.DonacionFilter) ([]model.DetalleDonacion, int64, error)
	DB() *gorm.DB
}

type donacionRepo struct{ db *gorm.DB }

func NewDonacionRepository(db *gorm.DB) DonacionRepository { return &donacionRepo{db: db} }

func (r *donacionRepo) DB() *gorm.DB { return r.db }

func (r *donacionRepo) CreateTx(ctx context.Context, tx *gorm.DB, d *model.Donacion) error {
	return tx.WithContext(ctx).Create(d).Error
}

func (r *donacionRepo) FindOrCreateCategoriaTx(ctx context.Context, tx *gorm.DB, nombre string) (*model.CategoriaDonacion, error) {
	var cat model.CategoriaDonacion
	err := tx.WithContext(ctx).
		Where("LOWER(nombre) = LOWER(?)", nombre).
		First(&cat).Error
	if err == nil {
		return &cat, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	cat = model.CategoriaDonacion{Nombre: nombre}
	if err := tx.WithContext(ctx).Create(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *donacionRepo) FindCategoriaByID(ctx context.Context, id string) (*model.CategoriaDonacion, error) {
	var cat model.CategoriaDonacion
	err := r.db.WithContext(ctx).First(&cat, "id = ?", id).Error
	return &cat, err
}

func (r *donacionRepo) ListDetalles(ctx context.Context, filter dto.DonacionFilter) ([]model.DetalleDonacion, int64, error) {
	var detalles []model.DetalleDonacion
	var total int64

	q := r.db.WithContext(ctx).Model(&model.DetalleDonacion{}).
		Joins("JOIN donaciones ON donaciones.id = detalle_donaciones.donacion_id").
		Joins("JOIN categoria_donaciones ON categoria_donaciones.id = detalle_donaciones.categoria_id")

	if filter.Categoria != "" {
		q = q.Where("categoria_donaciones.nombre ILIKE ?", "%"+filter.Categoria+"%")
	}
	if filter.FechaDesde != "" {
		q = q.Where("donaciones.fecha >= ?", filter.FechaDesde)
	}
	if filter.FechaHasta != "" {
		q = q.Where("donaciones.fecha <= ?", filter.FechaHasta)
	}
	if filter.UsuarioID != "" {
		q = q.Where("donaciones.usuario_id = ?", filter.UsuarioID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Categoria").
		Preload("Donacion.Usuario").
		Order("donaciones.fecha DESC, donaciones.hora DESC").
		Offset(filter.Offset()).Limit(filter.Limit).
		Find(&detalles).Error

	return detalles, total, err
}
