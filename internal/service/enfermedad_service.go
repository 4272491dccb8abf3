package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/repository"
)

type EnfermedadService interface {
	CrearTipo(ctx context.Context, req dto.TipoEnfermedadRequest) (*dto.TipoEnfermedadResponse, error)
	ListarTipos(ctx context.Context) ([]dto.TipoEnfermedadResponse, error)
	ActualizarTipo(ctx context.Context, id uuid.UUID, req dto.TipoEnfermedadRequest) (*dto.TipoEnfermedadResponse, error)
	EliminarTipo(ctx context.Context, id uuid.UUID) error

	Crear(ctx context.Context, req dto.EnfermedadRequest) (*dto.EnfermedadResponse, error)
	Listar(ctx context.Context, tipoID *uuid.UUID) ([]dto.EnfermedadResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.EnfermedadRequest) (*dto.EnfermedadResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type enfermedadService struct {
	repo repository.EnfermedadRepository
}

func NewEnfermedadService(repo repository.EnfermedadRepository) EnfermedadService {
	return &enfermedadService{repo: repo}
}

func (s *enfermedadService) CrearTipo(ctx context.Context, req dto.TipoEnfermedadRequest) (*dto.TipoEnfermedadResponse, error) {
	tipo := &model.TipoEnfermedad{Nombre: req.Nombre}
	if err := s.repo.CreateTipo(ctx, tipo); err != nil {
		return nil, err
	}
	return &dto.TipoEnfermedadResponse{ID: tipo.ID.String(), Nombre: tipo.Nombre}, nil
}

func (s *enfermedadService) ListarTipos(ctx context.Context) ([]dto.TipoEnfermedadResponse, error) {
	tipos, err := s.repo.ListTipos(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TipoEnfermedadResponse, 0, len(tipos))
	for _, t := range tipos {
		out = append(out, dto.TipoEnfermedadResponse{ID: t.ID.String(), Nombre: t.Nombre})
	}
	return out, nil
}

func (s *enfermedadService) ActualizarTipo(ctx context.Context, id uuid.UUID, req dto.TipoEnfermedadRequest) (*dto.TipoEnfermedadResponse, error) {
	tipo, err := s.repo.FindTipoByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Tipo de enfermedad no encontrado")
		}
		return nil, err
	}
	tipo.Nombre = req.Nombre
	if err := s.repo.UpdateTipo(ctx, tipo); err != nil {
		return nil, err
	}
	return &dto.TipoEnfermedadResponse{ID: tipo.ID.String(), Nombre: tipo.Nombre}, nil
}

func (s *enfermedadService) EliminarTipo(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindTipoByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("Tipo de enfermedad no encontrado")
		}
		return err
	}
	count, err := s.repo.CountEnfermedades(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errConflict("El tipo tiene enfermedades registradas y no puede eliminarse")
	}
	return s.repo.DeleteTipo(ctx, id)
}

func (s *enfermedadService) Crear(ctx context.Context, req dto.EnfermedadRequest) (*dto.EnfermedadResponse, error) {
	tipoID, err := uuid.Parse(req.TipoID)
	if err != nil {
		return nil, errUnprocessable("tipoId invalido")
	}
	tipo, err := s.repo.FindTipoByID(ctx, tipoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Tipo de enfermedad no encontrado")
		}
		return nil, err
	}

	existe, err := s.repo.ExistsNombre(ctx, req.Nombre, nil)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, errConflict("Ya existe una enfermedad con ese nombre")
	}

	enfermedad := &model.Enfermedad{
		Nombre:      req.Nombre,
		TipoID:      tipoID,
		Tipo:        tipo,
		Descripcion: req.Descripcion,
	}
	if err := s.repo.Create(ctx, enfermedad); err != nil {
		return nil, err
	}
	resp := toEnfermedadResponse(enfermedad)
	return &resp, nil
}

func (s *enfermedadService) Listar(ctx context.Context, tipoID *uuid.UUID) ([]dto.EnfermedadResponse, error) {
	enfermedades, err := s.repo.List(ctx, tipoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EnfermedadResponse, 0, len(enfermedades))
	for i := range enfermedades {
		out = append(out, toEnfermedadResponse(&enfermedades[i]))
	}
	return out, nil
}

func (s *enfermedadService) Actualizar(ctx context.Context, id uuid.UUID, req dto.EnfermedadRequest) (*dto.EnfermedadResponse, error) {
	enfermedad, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Enfermedad no encontrada")
		}
		return nil, err
	}

	existe, err := s.repo.ExistsNombre(ctx, req.Nombre, &id)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, errConflict("Ya existe una enfermedad con ese nombre")
	}

	enfermedad.Nombre = req.Nombre
	enfermedad.Descripcion = req.Descripcion
	if req.TipoID != "" {
		tipoID, err := uuid.Parse(req.TipoID)
		if err != nil {
			return nil, errUnprocessable("tipoId invalido")
		}
		tipo, err := s.repo.FindTipoByID(ctx, tipoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errNotFound("Tipo de enfermedad no encontrado")
			}
			return nil, err
		}
		enfermedad.TipoID = tipoID
		enfermedad.Tipo = tipo
	}

	if err := s.repo.Update(ctx, enfermedad); err != nil {
		return nil, err
	}
	resp := toEnfermedadResponse(enfermedad)
	return &resp, nil
}

func (s *enfermedadService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("Enfermedad no encontrada")
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func toEnfermedadResponse(e *model.Enfermedad) dto.EnfermedadResponse {
	resp := dto.EnfermedadResponse{
		ID:          e.ID.String(),
		Nombre:      e.Nombre,
		TipoID:      e.TipoID.String(),
		Descripcion: e.Descripcion,
	}
	if e.Tipo != nil {
		resp.Tipo = e.Tipo.Nombre
	}
	return resp
}
