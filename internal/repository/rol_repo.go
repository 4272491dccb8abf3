package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
)

type RolRepository interface {
	Create(ctx context.Context, rol *model.Rol) error
	FindByID(ctx context.Context, id int) (*model.Rol, error)
	List(ctx context.Context) ([]model.Rol, error)
	Update(ctx context.Context, rol *model.Rol) error
	Delete(ctx context.Context, id int) error
	// CountUsuarios backs the dependent pre-check: a role in use cannot be
	// deleted.
	CountUsuarios(ctx context.Context, id int) (int64, error)
}

type rolRepo struct{ db *gorm.DB }

func NewRolRepository(db *gorm.DB) RolRepository { return &rolRepo{db: db} }

func (r *rolRepo) Create(ctx context.Context, rol *model.Rol) error {
	return r.db.WithContext(ctx).Create(rol).Error
}

func (r *rolRepo) FindByID(ctx context.Context, id int) (*model.Rol, error) {
	var rol model.Rol
	err := r.db.WithContext(ctx).First(&rol, id).Error
	return &rol, err
}

func (r *rolRepo) List(ctx context.Context) ([]model.Rol, error) {
	var roles []model.Rol
	err := r.db.WithContext(ctx).Order("id").Find(&roles).Error
	return roles, err
}

func (r *rolRepo) Update(ctx context.Context, rol *model.Rol) error {
	return r.db.WithContext(ctx).Save(rol).Error
}

func (r *rolRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Rol{}, id).Error
}

func (r *rolRepo) CountUsuarios(ctx context.Context, id int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("rol_id = ?", id).Count(&count).Error
	return count, err
}
