package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/repository"
)

type RolService interface {
	Crear(ctx context.Context, req dto.RolRequest) (*dto.RolResponse, error)
	Listar(ctx context.Context) ([]dto.RolResponse, error)
	Obtener(ctx context.Context, id int) (*dto.RolResponse, error)
	Actualizar(ctx context.Context, id int, req dto.RolRequest) (*dto.RolResponse, error)
	Eliminar(ctx context.Context, id int) error
}

type rolService struct {
	roles repository.RolRepository
}

func NewRolService(roles repository.RolRepository) RolService {
	return &rolService{roles: roles}
}

func (s *rolService) Crear(ctx context.Context, req dto.RolRequest) (*dto.RolResponse, error) {
	rol := &model.Rol{Nombre: req.Nombre}
	if err := s.roles.Create(ctx, rol); err != nil {
		return nil, err
	}
	return &dto.RolResponse{ID: rol.ID, Nombre: rol.Nombre}, nil
}

func (s *rolService) Listar(ctx context.Context) ([]dto.RolResponse, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RolResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.RolResponse{ID: r.ID, Nombre: r.Nombre})
	}
	return out, nil
}

func (s *rolService) Obtener(ctx context.Context, id int) (*dto.RolResponse, error) {
	rol, err := s.roles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Rol no encontrado")
		}
		return nil, err
	}
	return &dto.RolResponse{ID: rol.ID, Nombre: rol.Nombre}, nil
}

func (s *rolService) Actualizar(ctx context.Context, id int, req dto.RolRequest) (*dto.RolResponse, error) {
	rol, err := s.roles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Rol no encontrado")
		}
		return nil, err
	}
	rol.Nombre = req.Nombre
	if err := s.roles.Update(ctx, rol); err != nil {
		return nil, err
	}
	return &dto.RolResponse{ID: rol.ID, Nombre: rol.Nombre}, nil
}

// Eliminar rejects deletion while usuarios still reference the role.
func (s *rolService) Eliminar(ctx context.Context, id int) error {
	if _, err := s.roles.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("Rol no encontrado")
		}
		return err
	}
	count, err := s.roles.CountUsuarios(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errConflict("El rol tiene usuarios asignados y no puede eliminarse")
	}
	return s.roles.Delete(ctx, id)
}
