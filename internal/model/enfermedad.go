package model

import (
	"github.com/google/uuid"
)

// TipoEnfermedad groups diseases; deleting a tipo is blocked while
// enfermedades reference it.
type TipoEnfermedad struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre string    `gorm:"not null"`
}

func (TipoEnfermedad) TableName() string { return "tipo_enfermedades" }

// Enfermedad belongs to exactly one tipo. Name uniqueness is checked
// case-insensitively, excluding the row's own id during edits.
type Enfermedad struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string          `gorm:"not null"`
	TipoID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Tipo        *TipoEnfermedad `gorm:"foreignKey:TipoID"`
	Descripcion *string
}

func (Enfermedad) TableName() string { return "enfermedades" }
