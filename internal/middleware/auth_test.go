package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secreto-de-prueba"

func firmarToken(t *testing.T, claims JWTClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func servidorProtegido(adminRolID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protegido", JWTAuth(testSecret), func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"alias": claims.Alias})
	})
	r.GET("/admin", JWTAuth(testSecret), RequireAdmin(adminRolID), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestJWTAuthSinHeader(t *testing.T) {
	r := servidorProtegido(1)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthTokenInvalido(t *testing.T) {
	r := servidorProtegido(1)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer no-es-un-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuthTokenExpirado(t *testing.T) {
	token := firmarToken(t, JWTClaims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, testSecret)

	r := servidorProtegido(1)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuthFirmaIncorrecta(t *testing.T) {
	token := firmarToken(t, JWTClaims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, "otro-secreto")

	r := servidorProtegido(1)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuthTokenValido(t *testing.T) {
	token := firmarToken(t, JWTClaims{
		UserID: "u1",
		RolID:  2,
		Alias:  "maria88",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	r := servidorProtegido(1)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "maria88")
}

func TestJWTOptional(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/abierto", JWTOptional(testSecret), func(c *gin.Context) {
		if raw, ok := c.Get(ClaimsKey); ok {
			c.JSON(http.StatusOK, gin.H{"alias": raw.(*JWTClaims).Alias})
			return
		}
		c.JSON(http.StatusOK, gin.H{"alias": nil})
	})

	// Sin token: pasa igual, sin claims.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/abierto", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "null")

	// Con token valido: claims adjuntos.
	token := firmarToken(t, JWTClaims{
		UserID: "u1",
		Alias:  "maria88",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/abierto", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "maria88")

	// Token invalido: no rompe la peticion anonima.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/abierto", nil)
	req.Header.Set("Authorization", "Bearer basura")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "null")
}

func TestRequireAdmin(t *testing.T) {
	claims := JWTClaims{
		UserID: "u1",
		RolID:  2, // usuario comun
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	r := servidorProtegido(1)

	// Rol comun: prohibido.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+firmarToken(t, claims, testSecret))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Rol administrador: permitido.
	claims.RolID = 1
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+firmarToken(t, claims, testSecret))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
