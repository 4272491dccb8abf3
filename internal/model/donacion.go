package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Donacion is the header row of a donation. UsuarioID is NULL for anonymous
// donations. Detail rows are always created in the same transaction as the
// header — a header without details never persists.
type Donacion struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID *uuid.UUID `gorm:"type:uuid;index"`
	Usuario   *Usuario
	Fecha     time.Time `gorm:"type:date;not null"`
	Hora      string    `gorm:"type:varchar(8);not null"` // HH:MM:SS
	Detalles  []DetalleDonacion
	CreatedAt time.Time
}

func (Donacion) TableName() string { return "donaciones" }

// DetalleDonacion is one categorized line item of a donation.
type DetalleDonacion struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DonacionID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Donacion    *Donacion
	CategoriaID uuid.UUID `gorm:"type:uuid;not null"`
	Categoria   *CategoriaDonacion
	Cantidad    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Detalle     string
}

func (DetalleDonacion) TableName() string { return "detalle_donaciones" }

// CategoriaDonacion is looked up by name (case-insensitive) and lazily
// created when a typed donation endpoint references a category that does
// not exist yet.
type CategoriaDonacion struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre string    `gorm:"uniqueIndex;not null"`
}

func (CategoriaDonacion) TableName() string { return "categoria_donaciones" }
