package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RegistroRequest creates a usuario plus exactly one profile row. Tipo
// discriminates which block is required; the service enforces that the
// matching block is present.
type RegistroRequest struct {
	Tipo      string  `json:"tipo"      validate:"required,oneof=persona empresa"`
	Alias     string  `json:"alias"     validate:"required,min=3,max=50"`
	Email     string  `json:"email"     validate:"required,email"`
	Password  string  `json:"password"  validate:"required,min=8"`
	Telefono  *string `json:"telefono"  validate:"omitempty,min=6,max=20"`
	Direccion *string `json:"direccion" validate:"omitempty,max=200"`

	Persona *RegistroPersona `json:"persona" validate:"omitempty"`
	Empresa *RegistroEmpresa `json:"empresa" validate:"omitempty"`
}

type RegistroPersona struct {
	Nombres   string `json:"nombres"   validate:"required,min=2,max=100"`
	Apellidos string `json:"apellidos" validate:"required,min=2,max=100"`
	DNI       string `json:"dni"       validate:"required,min=6,max=15"`
	Sexo      string `json:"sexo"      validate:"required,oneof=M F"`
}

type RegistroEmpresa struct {
	RazonSocial       string     `json:"razonSocial"       validate:"required,min=2,max=150"`
	RUC               string     `json:"ruc"               validate:"required,min=8,max=15"`
	FechaConstitucion *time.Time `json:"fechaConstitucion"`
	TipoEntidad       string     `json:"tipoEntidad"       validate:"omitempty,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

type ActualizarPerfilRequest struct {
	Telefono  *string `json:"telefono"  validate:"omitempty,min=6,max=20"`
	Direccion *string `json:"direccion" validate:"omitempty,max=200"`
	Password  string  `json:"password"  validate:"omitempty,min=8"`
}

// UsuarioFilter is bound from the query string of GET /api/usuarios.
type UsuarioFilter struct {
	PageFilter
	Alias string `form:"alias"`
	Email string `form:"email"`
	Rol   int    `form:"rol"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID        string  `json:"id"`
	Alias     string  `json:"alias"`
	Email     string  `json:"email"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
	RolID     int     `json:"rolId"`
	Tipo      string  `json:"tipo"` // persona | empresa

	Persona *PersonaResponse `json:"persona,omitempty"`
	Empresa *EmpresaResponse `json:"empresa,omitempty"`
}

type PersonaResponse struct {
	Nombres   string `json:"nombres"`
	Apellidos string `json:"apellidos"`
	DNI       string `json:"dni"`
	Sexo      string `json:"sexo"`
}

type EmpresaResponse struct {
	RazonSocial       string     `json:"razonSocial"`
	RUC               string     `json:"ruc"`
	FechaConstitucion *time.Time `json:"fechaConstitucion"`
	TipoEntidad       string     `json:"tipoEntidad"`
}

type LoginResponse struct {
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	ExpiresIn int             `json:"expires_in"` // seconds
	User      UsuarioResponse `json:"user"`
}

type VerifyResponse struct {
	UserID string `json:"userId"`
	RolID  int    `json:"rolId"`
	Alias  string `json:"alias"`
}

// ─── Roles ───────────────────────────────────────────────────────────────────

type RolRequest struct {
	Nombre string `json:"nombre" validate:"required,min=3,max=50"`
}

type RolResponse struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}
