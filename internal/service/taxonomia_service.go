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

// EspecieRazaService manages the two-level species/breed taxonomy.
// Names are unique case-insensitively; deletes are blocked while dependents
// exist: an especie with razas, a raza with animales.
type EspecieRazaService interface {
	CrearEspecie(ctx context.Context, req dto.EspecieRequest) (*dto.EspecieResponse, error)
	ListarEspecies(ctx context.Context) ([]dto.EspecieResponse, error)
	ActualizarEspecie(ctx context.Context, id uuid.UUID, req dto.EspecieRequest) (*dto.EspecieResponse, error)
	EliminarEspecie(ctx context.Context, id uuid.UUID) error

	CrearRaza(ctx context.Context, req dto.RazaRequest) (*dto.RazaResponse, error)
	ListarRazas(ctx context.Context, especieID *uuid.UUID) ([]dto.RazaResponse, error)
	ActualizarRaza(ctx context.Context, id uuid.UUID, req dto.RazaRequest) (*dto.RazaResponse, error)
	EliminarRaza(ctx context.Context, id uuid.UUID) error
}

type especieRazaService struct {
	repo repository.EspecieRazaRepository
}

func NewEspecieRazaService(repo repository.EspecieRazaRepository) EspecieRazaService {
	return &especieRazaService{repo: repo}
}

func (s *especieRazaService) CrearEspecie(ctx context.Context, req dto.EspecieRequest) (*dto.EspecieResponse, error) {
	existe, err := s.repo.ExistsNombreEspecie(ctx, req.Nombre, nil)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, errConflict("Ya existe una especie con ese nombre")
	}

	especie := &model.Especie{Nombre: req.Nombre}
	if err := s.repo.CreateEspecie(ctx, especie); err != nil {
		return nil, err
	}
	return &dto.EspecieResponse{ID: especie.ID.String(), Nombre: especie.Nombre}, nil
}

func (s *especieRazaService) ListarEspecies(ctx context.Context) ([]dto.EspecieResponse, error) {
	especies, err := s.repo.ListEspecies(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EspecieResponse, 0, len(especies))
	for _, e := range especies {
		out = append(out, dto.EspecieResponse{ID: e.ID.String(), Nombre: e.Nombre})
	}
	return out, nil
}

func (s *especieRazaService) ActualizarEspecie(ctx context.Context, id uuid.UUID, req dto.EspecieRequest) (*dto.EspecieResponse, error) {
	especie, err := s.repo.FindEspecieByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Especie no encontrada")
		}
		return nil, err
	}
	existe, err := s.repo.ExistsNombreEspecie(ctx, req.Nombre, &id)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, errConflict("Ya existe una especie con ese nombre")
	}

	especie.Nombre = req.Nombre
	if err := s.repo.UpdateEspecie(ctx, especie); err != nil {
		return nil, err
	}
	return &dto.EspecieResponse{ID: especie.ID.String(), Nombre: especie.Nombre}, nil
}

func (s *especieRazaService) EliminarEspecie(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindEspecieByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("Especie no encontrada")
		}
		return err
	}
	count, err := s.repo.CountRazas(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errConflict("La especie tiene razas registradas y no puede eliminarse")
	}
	return s.repo.DeleteEspecie(ctx, id)
}

func (s *especieRazaService) CrearRaza(ctx context.Context, req dto.RazaRequest) (*dto.RazaResponse, error) {
	especieID, err := uuid.Parse(req.EspecieID)
	if err != nil {
		return nil, errUnprocessable("especieId invalido")
	}
	especie, err := s.repo.FindEspecieByID(ctx, especieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Especie no encontrada")
		}
		return nil, err
	}

	existe, err := s.repo.ExistsNombreRaza(ctx, req.Nombre, nil)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, errConflict("Ya existe una raza con ese nombre")
	}

	raza := &model.Raza{Nombre: req.Nombre, EspecieID: especieID, Especie: especie}
	if err := s.repo.CreateRaza(ctx, raza); err != nil {
		return nil, err
	}
	resp := toRazaResponse(raza)
	return &resp, nil
}

func (s *especieRazaService) ListarRazas(ctx context.Context, especieID *uuid.UUID) ([]dto.RazaResponse, error) {
	razas, err := s.repo.ListRazas(ctx, especieID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RazaResponse, 0, len(razas))
	for i := range razas {
		out = append(out, toRazaResponse(&razas[i]))
	}
	return out, nil
}

func (s *especieRazaService) ActualizarRaza(ctx context.Context, id uuid.UUID, req dto.RazaRequest) (*dto.RazaResponse, error) {
	raza, err := s.repo.FindRazaByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Raza no encontrada")
		}
		return nil, err
	}

	existe, err := s.repo.ExistsNombreRaza(ctx, req.Nombre, &id)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, errConflict("Ya existe una raza con ese nombre")
	}

	raza.Nombre = req.Nombre
	if req.EspecieID != "" {
		especieID, err := uuid.Parse(req.EspecieID)
		if err != nil {
			return nil, errUnprocessable("especieId invalido")
		}
		especie, err := s.repo.FindEspecieByID(ctx, especieID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errNotFound("Especie no encontrada")
			}
			return nil, err
		}
		raza.EspecieID = especieID
		raza.Especie = especie
	}

	if err := s.repo.UpdateRaza(ctx, raza); err != nil {
		return nil, err
	}
	resp := toRazaResponse(raza)
	return &resp, nil
}

func (s *especieRazaService) EliminarRaza(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindRazaByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("Raza no encontrada")
		}
		return err
	}
	count, err := s.repo.CountAnimales(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errConflict("La raza tiene animales registrados y no puede eliminarse")
	}
	return s.repo.DeleteRaza(ctx, id)
}

func toRazaResponse(r *model.Raza) dto.RazaResponse {
	resp := dto.RazaResponse{
		ID:        r.ID.String(),
		Nombre:    r.Nombre,
		EspecieID: r.EspecieID.String(),
	}
	if r.Especie != nil {
		resp.Especie = r.Especie.Nombre
	}
	return resp
}
