package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Animal is a shelter resident. Availability is never stored: an animal is
// adoptable iff it has no adopcion row whose estado is Aprobada or
// Completada — see AnimalRepository.ListDisponibles.
type Animal struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"not null"`
	RazaID      uuid.UUID `gorm:"type:uuid;not null"`
	Raza        *Raza
	EdadMeses   int             `gorm:"not null"`
	Sexo        string          `gorm:"type:varchar(1);not null"` // M | H
	Peso        decimal.Decimal `gorm:"type:numeric(6,2)"`
	Pelaje      string
	Tamano      string `gorm:"column:tamano"` // pequeno | mediano | grande
	Descripcion string
	Imagenes    []AnimalImagen    `gorm:"constraint:OnDelete:CASCADE"`
	Historial   []HistorialAnimal `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Animal) TableName() string { return "animales" }

// AnimalImagen is one gallery image, stored on disk with a randomized
// filename and served statically.
type AnimalImagen struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnimalID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Ruta      string    `gorm:"not null"`
	CreatedAt time.Time
}

func (AnimalImagen) TableName() string { return "animal_imagenes" }

// HistorialAnimal is a medical or general history entry.
type HistorialAnimal struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnimalID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Tipo        string    `gorm:"not null"` // medico | general
	Descripcion string    `gorm:"not null"`
	Fecha       time.Time `gorm:"not null"`
	CreatedAt   time.Time
}

func (HistorialAnimal) TableName() string { return "historial_animales" }

// Especie / Raza form the two-level taxonomy. A raza belongs to exactly one
// especie; deletes are blocked while dependents exist.
type Especie struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre string    `gorm:"uniqueIndex;not null"`
}

func (Especie) TableName() string { return "especies" }

type Raza struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	EspecieID uuid.UUID `gorm:"type:uuid;not null;index"`
	Especie   *Especie
}

func (Raza) TableName() string { return "razas" }
