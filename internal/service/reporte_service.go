package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/repository"
)

type ReporteCasoService interface {
	Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearReporteCasoRequest) (*dto.ReporteCasoResponse, error)
	Listar(ctx context.Context, filter dto.ReporteCasoFilter) ([]dto.ReporteCasoResponse, *dto.Pagination, error)
}

type reporteCasoService struct {
	reportes repository.ReporteCasoRepository
	animales repository.AnimalRepository
}

func NewReporteCasoService(reportes repository.ReporteCasoRepository, animales repository.AnimalRepository) ReporteCasoService {
	return &reporteCasoService{reportes: reportes, animales: animales}
}

func (s *reporteCasoService) Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearReporteCasoRequest) (*dto.ReporteCasoResponse, error) {
	reporte := &model.ReporteCaso{
		Tipo:         req.Tipo,
		Descripcion:  req.Descripcion,
		Direccion:    req.Direccion,
		UsuarioID:    usuarioID,
		FechaIngreso: time.Now(),
	}

	if req.AnimalID != nil {
		animalID, err := uuid.Parse(*req.AnimalID)
		if err != nil {
			return nil, errUnprocessable("animalId invalido")
		}
		if _, err := s.animales.FindByID(ctx, animalID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errNotFound("Animal no encontrado")
			}
			return nil, err
		}
		reporte.AnimalID = &animalID
	}

	if err := s.reportes.Create(ctx, reporte); err != nil {
		return nil, err
	}
	resp := toReporteCasoResponse(reporte)
	return &resp, nil
}

func (s *reporteCasoService) Listar(ctx context.Context, filter dto.ReporteCasoFilter) ([]dto.ReporteCasoResponse, *dto.Pagination, error) {
	filas, total, err := s.reportes.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	out := make([]dto.ReporteCasoResponse, 0, len(filas))
	for i := range filas {
		out = append(out, toReporteCasoResponse(&filas[i]))
	}
	return out, dto.NewPagination(filter.Page, filter.Limit, total), nil
}

func toReporteCasoResponse(rc *model.ReporteCaso) dto.ReporteCasoResponse {
	resp := dto.ReporteCasoResponse{
		ID:           rc.ID.String(),
		Tipo:         rc.Tipo,
		Descripcion:  rc.Descripcion,
		Direccion:    rc.Direccion,
		UsuarioID:    rc.UsuarioID.String(),
		FechaIngreso: rc.FechaIngreso.Format(time.RFC3339),
	}
	if rc.AnimalID != nil {
		id := rc.AnimalID.String()
		resp.AnimalID = &id
	}
	return resp
}
