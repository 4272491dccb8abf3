package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
)

// estadoBloqueante marks the adoption states that make an animal
// unavailable. Availability is always recomputed from adopciones — it is
// never stored on the animal row.
const estadoBloqueante = "estado IN ('Aprobada', 'Completada')"

type AnimalRepository interface {
	CreateTx(ctx context.Context, tx *gorm.DB, a *model.Animal) error
	AddImagenTx(ctx context.Context, tx *gorm.DB, img *model.AnimalImagen) error
	AddHistorialTx(ctx context.Context, tx *gorm.DB, h *model.HistorialAnimal) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Animal, error)
	// List returns all animals; ListDisponibles applies the availability
	// anti-join on top of the same filters.
	List(ctx context.Context, filter dto.AnimalFilter) ([]model.Animal, int64, error)
	ListDisponibles(ctx context.Context, filter dto.AnimalFilter) ([]model.Animal, int64, error)
	EstaDisponible(ctx context.Context, id uuid.UUID) (bool, error)
	Update(ctx context.Context, a *model.Animal) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountAdopciones(ctx context.Context, id uuid.UUID) (int64, error)
	DB() *gorm.DB
}

type animalRepo struct{ db *gorm.DB }

func NewAnimalRepository(db *gorm.DB) AnimalRepository { return &animalRepo{db: db} }

func (r *animalRepo) DB() *gorm.DB { return r.db }

func (r *animalRepo) CreateTx(ctx context.Context, tx *gorm.DB, a *model.Animal) error {
	return tx.WithContext(ctx).Create(a).Error
}

func (r *animalRepo) AddImagenTx(ctx context.Context, tx *gorm.DB, img *model.AnimalImagen) error {
	return tx.WithContext(ctx).Create(img).Error
}

func (r *animalRepo) AddHistorialTx(ctx context.Context, tx *gorm.DB, h *model.HistorialAnimal) error {
	return tx.WithContext(ctx).Create(h).Error
}

func (r *animalRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Animal, error) {
	var a model.Animal
	err := r.db.WithContext(ctx).
		Preload("Raza.Especie").
		Preload("Imagenes").
		Preload("Historial", func(db *gorm.DB) *gorm.DB { return db.Order("fecha DESC") }).
		First(&a, id).Error
	return &a, err
}

// aplicarFiltros appends only the conditions whose filter was supplied;
// an omitted parameter must not add its SQL condition.
func aplicarFiltrosAnimal(q *gorm.DB, filter dto.AnimalFilter) *gorm.DB {
	if filter.Especie != "" {
		q = q.Joins("JOIN razas ON razas.id = animales.raza_id").
			Joins("JOIN especies ON especies.id = razas.especie_id").
			Where("especies.nombre ILIKE ?", filter.Especie)
	} else if filter.Raza != "" {
		q = q.Joins("JOIN razas ON razas.id = animales.raza_id")
	}
	if filter.Raza != "" {
		q = q.Where("razas.nombre ILIKE ?", filter.Raza)
	}
	if filter.Sexo != "" {
		q = q.Where("animales.sexo = ?", filter.Sexo)
	}
	if filter.Tamano != "" {
		q = q.Where("animales.tamano = ?", filter.Tamano)
	}
	if filter.Texto != "" {
		patron := "%" + filter.Texto + "%"
		q = q.Where("animales.nombre ILIKE ? OR animales.descripcion ILIKE ?", patron, patron)
	}
	return q
}

func (r *animalRepo) List(ctx context.Context, filter dto.AnimalFilter) ([]model.Animal, int64, error) {
	q := aplicarFiltrosAnimal(r.db.WithContext(ctx).Model(&model.Animal{}), filter)
	return r.paginar(q, filter)
}

func (r *animalRepo) ListDisponibles(ctx context.Context, filter dto.AnimalFilter) ([]model.Animal, int64, error) {
	q := aplicarFiltrosAnimal(r.db.WithContext(ctx).Model(&model.Animal{}), filter).
		Where("NOT EXISTS (SELECT 1 FROM adopciones WHERE adopciones.animal_id = animales.id AND " + estadoBloqueante + ")")
	return r.paginar(q, filter)
}

func (r *animalRepo) paginar(q *gorm.DB, filter dto.AnimalFilter) ([]model.Animal, int64, error) {
	var animales []model.Animal
	var total int64

	// COUNT over the same filtered WHERE, then the page itself.
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Raza.Especie").Preload("Imagenes").
		Order("animales.created_at DESC").
		Offset(filter.Offset()).Limit(filter.Limit).
		Find(&animales).Error

	return animales, total, err
}

func (r *animalRepo) EstaDisponible(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Adopcion{}).
		Where("animal_id = ? AND "+estadoBloqueante, id).
		Count(&count).Error
	return count == 0, err
}

func (r *animalRepo) Update(ctx context.Context, a *model.Animal) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *animalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Animal{}, id).Error
}

func (r *animalRepo) CountAdopciones(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Adopcion{}).
		Where("animal_id = ?", id).Count(&count).Error
	return count, err
}
