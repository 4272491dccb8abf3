package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/config"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/middleware"
)

func servidorDeRutas(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Env:               "test",
		JWTSecret:         "secreto-de-prueba",
		AdminRolID:        1,
		UploadStoragePath: t.TempDir(),
	}
	r, err := New(cfg, nil, nil, nil)
	require.NoError(t, err)
	return r
}

func tokenConRol(t *testing.T, rolID int) string {
	t.Helper()
	claims := middleware.JWTClaims{
		UserID: "u1",
		RolID:  rolID,
		Alias:  "maria88",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto-de-prueba"))
	require.NoError(t, err)
	return token
}

// Cualquier usuario autenticado puede consultar las adopciones; el guard de
// rol no aplica en esa ruta.
func TestListarAdopcionesSinRolAdmin(t *testing.T) {
	r := servidorDeRutas(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/adoptions", nil)
	req.Header.Set("Authorization", "Bearer "+tokenConRol(t, 2))
	r.ServeHTTP(w, req)

	assert.NotEqual(t, http.StatusForbidden, w.Code)
	assert.NotEqual(t, http.StatusUnauthorized, w.Code)
}

func TestListarAdopcionesSinToken(t *testing.T) {
	r := servidorDeRutas(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/adoptions", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListarUsuariosExigeRolAdmin(t *testing.T) {
	r := servidorDeRutas(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/usuarios", nil)
	req.Header.Set("Authorization", "Bearer "+tokenConRol(t, 2))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
