package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario is a registered account. Exactly one of Persona / Empresa is
// attached at registration — both rows are created inside the same
// transaction as the usuario row, never afterwards.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Alias        string    `gorm:"not null"` // unique via LOWER(alias) index
	Email        string    `gorm:"not null"` // unique via LOWER(email) index
	PasswordHash string    `gorm:"not null"`
	Telefono     *string
	Direccion    *string
	RolID        int `gorm:"not null"`
	Rol          *Rol
	Persona      *Persona
	Empresa      *Empresa
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Persona holds the natural-person profile of a usuario.
type Persona struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Nombres   string    `gorm:"not null"`
	Apellidos string    `gorm:"not null"`
	DNI       string    `gorm:"column:dni;not null"`
	Sexo      string    `gorm:"type:varchar(1)"` // M | F
	CreatedAt time.Time
}

// Empresa holds the legal-entity profile of a usuario.
type Empresa struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	RazonSocial       string    `gorm:"not null"`
	RUC               string    `gorm:"column:ruc;not null"`
	FechaConstitucion *time.Time
	TipoEntidad       string
	CreatedAt         time.Time
}

// Rol is a small lookup table managed by administrators.
type Rol struct {
	ID     int    `gorm:"primaryKey"`
	Nombre string `gorm:"uniqueIndex;not null"`
}

func (Rol) TableName() string { return "roles" }
