package model

import (
	"time"

	"github.com/google/uuid"
)

// ReporteCaso is a reported incident (abandoned/injured animal, etc.).
// AnimalID is set when the report concerns an animal already registered.
type ReporteCaso struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo         string     `gorm:"not null"`
	Descripcion  string     `gorm:"not null"`
	Direccion    string     `gorm:"not null"`
	AnimalID     *uuid.UUID `gorm:"type:uuid"`
	Animal       *Animal
	UsuarioID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Usuario      *Usuario
	FechaIngreso time.Time `gorm:"not null"`
	CreatedAt    time.Time
}

func (ReporteCaso) TableName() string { return "reporte_casos" }
