package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
)

type UsuarioRepository interface {
	// CreateTx inserts the usuario row within tx — the caller owns the
	// transaction so the persona/empresa row commits or rolls back with it.
	CreateTx(ctx context.Context, tx *gorm.DB, u *model.Usuario) error
	CreatePersonaTx(ctx context.Context, tx *gorm.DB, p *model.Persona) error
	CreateEmpresaTx(ctx context.Context, tx *gorm.DB, e *model.Empresa) error
	// ExistsAliasOrEmail matches case-insensitively (pre-check before the
	// registration transaction opens).
	ExistsAliasOrEmail(ctx context.Context, alias, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	List(ctx context.Context, filter dto.UsuarioFilter) ([]model.Usuario, int64, error)
	Update(ctx context.Context, u *model.Usuario) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) DB() *gorm.DB { return r.db }

func (r *usuarioRepo) CreateTx(ctx context.Context, tx *gorm.DB, u *model.Usuario) error {
	return tx.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) CreatePersonaTx(ctx context.Context, tx *gorm.DB, p *model.Persona) error {
	return tx.WithContext(ctx).Create(p).Error
}

func (r *usuarioRepo) CreateEmpresaTx(ctx context.Context, tx *gorm.DB, e *model.Empresa) error {
	return tx.WithContext(ctx).Create(e).Error
}

func (r *usuarioRepo) ExistsAliasOrEmail(ctx context.Context, alias, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("LOWER(alias) = LOWER(?) OR LOWER(email) = LOWER(?)", alias, email).
		Count(&count).Error
	return count > 0, err
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&u).Error
	return &u, err
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Preload("Persona").Preload("Empresa").Preload("Rol").
		First(&u, id).Error
	return &u, err
}

func (r *usuarioRepo) List(ctx context.Context, filter dto.UsuarioFilter) ([]model.Usuario, int64, error) {
	var usuarios []model.Usuario
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Usuario{})

	if filter.Alias != "" {
		q = q.Where("alias ILIKE ?", "%"+filter.Alias+"%")
	}
	if filter.Email != "" {
		q = q.Where("email ILIKE ?", "%"+filter.Email+"%")
	}
	if filter.Rol != 0 {
		q = q.Where("rol_id = ?", filter.Rol)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Persona").Preload("Empresa").
		Order("created_at DESC").
		Offset(filter.Offset()).Limit(filter.Limit).
		Find(&usuarios).Error

	return usuarios, total, err
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *usuarioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Usuario{}, id).Error
}
