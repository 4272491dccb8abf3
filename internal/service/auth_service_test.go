package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/config"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/middleware"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "secreto-de-prueba", JWTExpirationHours: 12, AdminRolID: 1}
}

func registroPersonaValido() dto.RegistroRequest {
	return dto.RegistroRequest{
		Tipo:     "persona",
		Alias:    "maria88",
		Email:    "maria@example.com",
		Password: "clave-segura",
		Persona: &dto.RegistroPersona{
			Nombres:   "Maria",
			Apellidos: "Gomez",
			DNI:       "12345678",
			Sexo:      "F",
		},
	}
}

func TestRegistroCreaUsuarioYPersona(t *testing.T) {
	repo := &stubUsuarioRepo{}
	notif := &stubNotificador{}
	svc := NewAuthService(repo, testConfig(), notif)

	resp, err := svc.Registro(context.Background(), registroPersonaValido())
	require.NoError(t, err)

	assert.Equal(t, "maria88", resp.Alias)
	assert.Equal(t, "persona", resp.Tipo)
	require.NotNil(t, repo.creado)
	assert.Equal(t, rolUsuario, repo.creado.RolID)
	assert.NotEqual(t, "clave-segura", repo.creado.PasswordHash)

	require.NotNil(t, repo.personaCreada)
	assert.Equal(t, repo.creado.ID, repo.personaCreada.UsuarioID)
	assert.Nil(t, repo.empresaCreada)

	// Email de bienvenida encolado.
	require.Len(t, notif.encolados, 1)
	assert.Equal(t, "maria@example.com", notif.encolados[0].ToEmail)
}

func TestRegistroRechazaDuplicados(t *testing.T) {
	repo := &stubUsuarioRepo{existeAliasOEmail: true}
	svc := NewAuthService(repo, testConfig(), nil)

	_, err := svc.Registro(context.Background(), registroPersonaValido())
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.Status)
	assert.Nil(t, repo.creado)
}

func TestRegistroExigeBloqueDePerfil(t *testing.T) {
	svc := NewAuthService(&stubUsuarioRepo{}, testConfig(), nil)

	req := registroPersonaValido()
	req.Persona = nil

	_, err := svc.Registro(context.Background(), req)
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnprocessableEntity, se.Status)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-segura"), bcrypt.MinCost)
	require.NoError(t, err)

	usuario := &model.Usuario{
		ID:           uuid.New(),
		Alias:        "maria88",
		Email:        "maria@example.com",
		PasswordHash: string(hash),
		RolID:        2,
	}
	repo := &stubUsuarioRepo{porEmail: map[string]*model.Usuario{"maria@example.com": usuario}}
	cfg := testConfig()
	svc := NewAuthService(repo, cfg, nil)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "maria@example.com", Password: "clave-segura"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 12*3600, resp.ExpiresIn)

	// El token debe llevar los claims del usuario.
	claims := &middleware.JWTClaims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, usuario.ID.String(), claims.UserID)
	assert.Equal(t, 2, claims.RolID)
	assert.Equal(t, "maria88", claims.Alias)
}

func TestLoginCredencialesInvalidas(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("otra-clave"), bcrypt.MinCost)
	usuario := &model.Usuario{ID: uuid.New(), Email: "maria@example.com", PasswordHash: string(hash)}
	repo := &stubUsuarioRepo{porEmail: map[string]*model.Usuario{"maria@example.com": usuario}}
	svc := NewAuthService(repo, testConfig(), nil)

	// Password incorrecta: no revela si la cuenta existe.
	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "maria@example.com", Password: "equivocada"})
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.Status)
	assert.Equal(t, "Credenciales invalidas", se.Message)

	// Email inexistente: mensaje distinto.
	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.Status)
	assert.Equal(t, "Usuario no registrado", se.Message)
}
