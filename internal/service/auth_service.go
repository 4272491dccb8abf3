package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/config"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/middleware"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/repository"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/worker"
)

const bcryptCost = 12

// rolUsuario is the role assigned to self-registered accounts. Role 1 is
// reserved for administrators (seeded by cmd/seedadmin).
const rolUsuario = 2

// Notificador abstracts the async notification queue so services can be
// unit-tested without Redis.
type Notificador interface {
	EnqueueNotificacion(ctx context.Context, payload interface{}) error
}

type AuthService interface {
	Registro(ctx context.Context, req dto.RegistroRequest) (*dto.UsuarioResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Perfil(ctx context.Context, usuarioID uuid.UUID) (*dto.UsuarioResponse, error)
	ActualizarPerfil(ctx context.Context, usuarioID uuid.UUID, req dto.ActualizarPerfilRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context, filter dto.UsuarioFilter) ([]dto.UsuarioResponse, *dto.Pagination, error)
	ObtenerUsuario(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error)
	EliminarUsuario(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	usuarios   repository.UsuarioRepository
	cfg        *config.Config
	dispatcher Notificador
}

func NewAuthService(usuarios repository.UsuarioRepository, cfg *config.Config, dispatcher Notificador) AuthService {
	return &authService{usuarios: usuarios, cfg: cfg, dispatcher: dispatcher}
}

// Registro creates the usuario row plus exactly one profile row (persona or
// empresa) in a single transaction. Alias and email uniqueness is checked
// case-insensitively before the transaction opens; the LOWER() unique
// indexes close the race.
func (s *authService) Registro(ctx context.Context, req dto.RegistroRequest) (*dto.UsuarioResponse, error) {
	switch req.Tipo {
	case "persona":
		if req.Persona == nil {
			return nil, errUnprocessable("El bloque persona es requerido para tipo=persona")
		}
	case "empresa":
		if req.Empresa == nil {
			return nil, errUnprocessable("El bloque empresa es requerido para tipo=empresa")
		}
	}

	exists, err := s.usuarios.ExistsAliasOrEmail(ctx, req.Alias, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errConflict("El alias o el email ya estan registrados")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	usuario := &model.Usuario{
		Alias:        req.Alias,
		Email:        req.Email,
		PasswordHash: string(hash),
		Telefono:     req.Telefono,
		Direccion:    req.Direccion,
		RolID:        rolUsuario,
	}

	err = runTx(ctx, s.usuarios.DB(), func(tx *gorm.DB) error {
		if err := s.usuarios.CreateTx(ctx, tx, usuario); err != nil {
			return err
		}
		if req.Tipo == "persona" {
			usuario.Persona = &model.Persona{
				UsuarioID: usuario.ID,
				Nombres:   req.Persona.Nombres,
				Apellidos: req.Persona.Apellidos,
				DNI:       req.Persona.DNI,
				Sexo:      req.Persona.Sexo,
			}
			return s.usuarios.CreatePersonaTx(ctx, tx, usuario.Persona)
		}
		usuario.Empresa = &model.Empresa{
			UsuarioID:         usuario.ID,
			RazonSocial:       req.Empresa.RazonSocial,
			RUC:               req.Empresa.RUC,
			FechaConstitucion: req.Empresa.FechaConstitucion,
			TipoEntidad:       req.Empresa.TipoEntidad,
		}
		return s.usuarios.CreateEmpresaTx(ctx, tx, usuario.Empresa)
	})
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		if err := s.dispatcher.EnqueueNotificacion(ctx, worker.NotificacionPayload{
			ToEmail: usuario.Email,
			Subject: "Bienvenido al Refugio de Animales",
			Body:    fmt.Sprintf("Hola %s, tu cuenta fue creada correctamente.", usuario.Alias),
		}); err != nil {
			log.Warn().Err(err).Msg("registro: no se pudo encolar el email de bienvenida")
		}
	}

	resp := toUsuarioResponse(usuario)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := s.usuarios.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errBadRequest("Usuario no registrado")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errBadRequest("Credenciales invalidas")
	}

	expira := time.Duration(s.cfg.JWTExpirationHours) * time.Hour
	claims := middleware.JWTClaims{
		UserID: usuario.ID.String(),
		RolID:  usuario.RolID,
		Alias:  usuario.Alias,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   usuario.ID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expira)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(expira.Seconds()),
		User:      toUsuarioResponse(usuario),
	}, nil
}

func (s *authService) Perfil(ctx context.Context, usuarioID uuid.UUID) (*dto.UsuarioResponse, error) {
	return s.ObtenerUsuario(ctx, usuarioID)
}

func (s *authService) ActualizarPerfil(ctx context.Context, usuarioID uuid.UUID, req dto.ActualizarPerfilRequest) (*dto.UsuarioResponse, error) {
	usuario, err := s.usuarios.FindByID(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Usuario no encontrado")
		}
		return nil, err
	}

	if req.Telefono != nil {
		usuario.Telefono = req.Telefono
	}
	if req.Direccion != nil {
		usuario.Direccion = req.Direccion
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		usuario.PasswordHash = string(hash)
	}

	if err := s.usuarios.Update(ctx, usuario); err != nil {
		return nil, err
	}
	resp := toUsuarioResponse(usuario)
	return &resp, nil
}

func (s *authService) ListarUsuarios(ctx context.Context, filter dto.UsuarioFilter) ([]dto.UsuarioResponse, *dto.Pagination, error) {
	usuarios, total, err := s.usuarios.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, toUsuarioResponse(&usuarios[i]))
	}
	return out, dto.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *authService) ObtenerUsuario(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error) {
	usuario, err := s.usuarios.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Usuario no encontrado")
		}
		return nil, err
	}
	resp := toUsuarioResponse(usuario)
	return &resp, nil
}

func (s *authService) EliminarUsuario(ctx context.Context, id uuid.UUID) error {
	if _, err := s.usuarios.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("Usuario no encontrado")
		}
		return err
	}
	return s.usuarios.Delete(ctx, id)
}

func toUsuarioResponse(u *model.Usuario) dto.UsuarioResponse {
	resp := dto.UsuarioResponse{
		ID:        u.ID.String(),
		Alias:     u.Alias,
		Email:     u.Email,
		Telefono:  u.Telefono,
		Direccion: u.Direccion,
		RolID:     u.RolID,
	}
	if u.Persona != nil {
		resp.Tipo = "persona"
		resp.Persona = &dto.PersonaResponse{
			Nombres:   u.Persona.Nombres,
			Apellidos: u.Persona.Apellidos,
			DNI:       u.Persona.DNI,
			Sexo:      u.Persona.Sexo,
		}
	}
	if u.Empresa != nil {
		resp.Tipo = "empresa"
		resp.Empresa = &dto.EmpresaResponse{
			RazonSocial:       u.Empresa.RazonSocial,
			RUC:               u.Empresa.RUC,
			FechaConstitucion: u.Empresa.FechaConstitucion,
			TipoEntidad:       u.Empresa.TipoEntidad,
		}
	}
	return resp
}
