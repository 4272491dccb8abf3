package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Apadrinamiento links a donation to an animal as a recurring pledge.
// When it originates from an approved SolicitudApadrinamiento, SolicitudID
// references the request that produced it.
type Apadrinamiento struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DonacionID  uuid.UUID `gorm:"type:uuid;not null"`
	Donacion    *Donacion
	AnimalID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Animal      *Animal
	FechaInicio time.Time  `gorm:"type:date;not null"`
	Frecuencia  string     `gorm:"not null"` // mensual | trimestral | anual
	FechaFin    *time.Time `gorm:"type:date"`
	SolicitudID *uuid.UUID `gorm:"type:uuid"`
	Estado      string     `gorm:"type:varchar(10);not null"` // Activo | Inactivo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Apadrinamiento) TableName() string { return "apadrinamientos" }

// SolicitudApadrinamiento is a sponsorship request awaiting administrator
// review. Approval is a single transaction that creates the donation and
// the apadrinamiento, then marks the request Aprobada; the lookup is scoped
// to estado = 'Pendiente' so a second approval finds nothing.
type SolicitudApadrinamiento struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Usuario    *Usuario
	AnimalID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Animal     *Animal
	Monto      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Frecuencia string          `gorm:"not null"`
	Estado     string          `gorm:"type:varchar(10);not null"` // Pendiente | Aprobada | Rechazada
	Fecha      time.Time       `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (SolicitudApadrinamiento) TableName() string { return "solicitud_apadrinamientos" }
