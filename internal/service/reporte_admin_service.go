package service

// reporte_admin_service.go
// Aggregate dashboards for administrators. Results are cached in Redis
// (cache-aside, 5 min TTL): the GROUP BY queries scan whole tables and the
// dashboards tolerate slightly stale numbers. Redis being down degrades to
// hitting Postgres on every call.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/repository"
)

const reporteCacheTTL = 5 * time.Minute

type ReporteAdminService interface {
	DonacionesPorCategoria(ctx context.Context) ([]dto.DonacionPorCategoria, error)
	DonacionesPorMes(ctx context.Context, anio int) ([]dto.TotalPorMes, error)
	AdopcionesPorMes(ctx context.Context, anio int) ([]dto.ConteoPorMes, error)
	Resumen(ctx context.Context) (*dto.ResumenAdmin, error)
}

type reporteAdminService struct {
	repo repository.ReporteAdminRepository
	rdb  *redis.Client
}

func NewReporteAdminService(repo repository.ReporteAdminRepository, rdb *redis.Client) ReporteAdminService {
	return &reporteAdminService{repo: repo, rdb: rdb}
}

func (s *reporteAdminService) DonacionesPorCategoria(ctx context.Context) ([]dto.DonacionPorCategoria, error) {
	var filas []dto.DonacionPorCategoria
	err := s.conCache(ctx, "reportes:donaciones_categoria", &filas, func() (interface{}, error) {
		return s.repo.DonacionesPorCategoria(ctx)
	})
	return filas, err
}

func (s *reporteAdminService) DonacionesPorMes(ctx context.Context, anio int) ([]dto.TotalPorMes, error) {
	var filas []dto.TotalPorMes
	key := fmt.Sprintf("reportes:donaciones_mes:%d", anio)
	err := s.conCache(ctx, key, &filas, func() (interface{}, error) {
		return s.repo.DonacionesPorMes(ctx, anio)
	})
	return filas, err
}

func (s *reporteAdminService) AdopcionesPorMes(ctx context.Context, anio int) ([]dto.ConteoPorMes, error) {
	var filas []dto.ConteoPorMes
	key := fmt.Sprintf("reportes:adopciones_mes:%d", anio)
	err := s.conCache(ctx, key, &filas, func() (interface{}, error) {
		return s.repo.AdopcionesPorMes(ctx, anio)
	})
	return filas, err
}

func (s *reporteAdminService) Resumen(ctx context.Context) (*dto.ResumenAdmin, error) {
	var resumen dto.ResumenAdmin
	err := s.conCache(ctx, "reportes:resumen", &resumen, func() (interface{}, error) {
		return s.repo.Resumen(ctx)
	})
	if err != nil {
		return nil, err
	}
	return &resumen, nil
}

// conCache tries Redis first, falls through to consulta on a miss, and
// writes the fresh result back with the report TTL. Cache errors are logged
// and ignored — the report itself must not fail because Redis is down.
func (s *reporteAdminService) conCache(ctx context.Context, key string, dest interface{}, consulta func() (interface{}, error)) error {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			if err := json.Unmarshal([]byte(cached), dest); err == nil {
				return nil
			}
			log.Warn().Str("key", key).Msg("reporte: cache corrupto, se recalcula")
		} else if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("reporte: fallo al leer cache")
		}
	}

	fresh, err := consulta()
	if err != nil {
		return err
	}

	data, err := json.Marshal(fresh)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return err
	}

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, key, data, reporteCacheTTL).Err(); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("reporte: fallo al escribir cache")
		}
	}
	return nil
}
