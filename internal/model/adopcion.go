package model

import (
	"time"

	"github.com/google/uuid"
)

// Adopcion carries both lifecycle phases in a single table: the open
// request (EstadoSolicitud) and, once finalized, the contract-signed
// adoption (Estado + firma fields). The finalized fields stay NULL until
// the request reaches ACEPTADO and an administrator closes it.
type Adopcion struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnimalID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Animal          *Animal
	UsuarioID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Usuario         *Usuario
	FechaSolicitud  time.Time `gorm:"not null"`
	EstadoSolicitud string    `gorm:"type:varchar(20);not null"` // PENDIENTE | EN REVISION | ACEPTADO | RECHAZADO | CANCELADA
	Comentarios     *string

	// Finalized phase
	FechaFirma         *time.Time
	Contrato           *string
	Condiciones        *string
	DireccionAdoptante *string
	ContratoPDF        *string `gorm:"column:contrato_pdf"`
	Estado             *string `gorm:"type:varchar(20)"` // Pendiente | Aprobada | Completada | Cancelada

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Adopcion) TableName() string { return "adopciones" }
