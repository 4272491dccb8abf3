package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// HealthHandler reports liveness of the process and its dependencies.
type HealthHandler struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewHealthHandler(db *gorm.DB, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, rdb: rdb}
}

// Check godoc
// @Summary Estado del servicio
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	status := gin.H{"status": "ok", "database": "ok", "redis": "ok"}
	code := http.StatusOK

	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		status["database"] = "down"
		status["status"] = "degraded"
		code = http.StatusServiceUnavailable
	}
	if err := h.rdb.Ping(c.Request.Context()).Err(); err != nil {
		status["redis"] = "down"
		status["status"] = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, status)
}
