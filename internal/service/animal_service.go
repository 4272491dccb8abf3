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

type AnimalService interface {
	Crear(ctx context.Context, req dto.CrearAnimalRequest, rutasImagenes []string) (*dto.AnimalResponse, error)
	Listar(ctx context.Context, filter dto.AnimalFilter) ([]dto.AnimalResponse, *dto.Pagination, error)
	ListarDisponibles(ctx context.Context, filter dto.AnimalFilter) ([]dto.AnimalResponse, *dto.Pagination, error)
	Detalle(ctx context.Context, id uuid.UUID) (*dto.AnimalDetalleResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarAnimalRequest) (*dto.AnimalResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	AgregarImagen(ctx context.Context, id uuid.UUID, ruta string) error
	AgregarHistorial(ctx context.Context, id uuid.UUID, req dto.HistorialRequest) (*dto.HistorialResponse, error)
}

type animalService struct {
	animales repository.AnimalRepository
	razas    repository.EspecieRazaRepository
}

func NewAnimalService(animales repository.AnimalRepository, razas repository.EspecieRazaRepository) AnimalService {
	return &animalService{animales: animales, razas: razas}
}

// Crear registers the animal together with its gallery rows in one
// transaction; the image files are already on disk when this runs.
func (s *animalService) Crear(ctx context.Context, req dto.CrearAnimalRequest, rutasImagenes []string) (*dto.AnimalResponse, error) {
	razaID, err := uuid.Parse(req.RazaID)
	if err != nil {
		return nil, errUnprocessable("razaId invalido")
	}
	if _, err := s.razas.FindRazaByID(ctx, razaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Raza no encontrada")
		}
		return nil, err
	}

	animal := &model.Animal{
		Nombre:      req.Nombre,
		RazaID:      razaID,
		EdadMeses:   req.EdadMeses,
		Sexo:        req.Sexo,
		Peso:        req.Peso,
		Pelaje:      req.Pelaje,
		Tamano:      req.Tamano,
		Descripcion: req.Descripcion,
	}

	err = runTx(ctx, s.animales.DB(), func(tx *gorm.DB) error {
		if err := s.animales.CreateTx(ctx, tx, animal); err != nil {
			return err
		}
		for _, ruta := range rutasImagenes {
			img := &model.AnimalImagen{AnimalID: animal.ID, Ruta: ruta}
			if err := s.animales.AddImagenTx(ctx, tx, img); err != nil {
				return err
			}
			animal.Imagenes = append(animal.Imagenes, *img)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toAnimalResponse(animal)
	return &resp, nil
}

func (s *animalService) Listar(ctx context.Context, filter dto.AnimalFilter) ([]dto.AnimalResponse, *dto.Pagination, error) {
	animales, total, err := s.animales.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return toAnimalResponses(animales), dto.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *animalService) ListarDisponibles(ctx context.Context, filter dto.AnimalFilter) ([]dto.AnimalResponse, *dto.Pagination, error) {
	animales, total, err := s.animales.ListDisponibles(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return toAnimalResponses(animales), dto.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *animalService) Detalle(ctx context.Context, id uuid.UUID) (*dto.AnimalDetalleResponse, error) {
	animal, err := s.animales.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Animal no encontrado")
		}
		return nil, err
	}

	detalle := &dto.AnimalDetalleResponse{
		AnimalResponse: toAnimalResponse(animal),
		Historial:      make([]dto.HistorialResponse, 0, len(animal.Historial)),
	}
	for _, h := range animal.Historial {
		detalle.Historial = append(detalle.Historial, toHistorialResponse(&h))
	}
	return detalle, nil
}

func (s *animalService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarAnimalRequest) (*dto.AnimalResponse, error) {
	animal, err := s.animales.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Animal no encontrado")
		}
		return nil, err
	}

	if req.Nombre != "" {
		animal.Nombre = req.Nombre
	}
	if req.RazaID != "" {
		razaID, err := uuid.Parse(req.RazaID)
		if err != nil {
			return nil, errUnprocessable("razaId invalido")
		}
		if _, err := s.razas.FindRazaByID(ctx, razaID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errNotFound("Raza no encontrada")
			}
			return nil, err
		}
		animal.RazaID = razaID
		animal.Raza = nil
	}
	if req.EdadMeses != nil {
		animal.EdadMeses = *req.EdadMeses
	}
	if req.Sexo != "" {
		animal.Sexo = req.Sexo
	}
	if req.Peso != nil {
		animal.Peso = *req.Peso
	}
	if req.Pelaje != "" {
		animal.Pelaje = req.Pelaje
	}
	if req.Tamano != "" {
		animal.Tamano = req.Tamano
	}
	if req.Descripcion != "" {
		animal.Descripcion = req.Descripcion
	}

	if err := s.animales.Update(ctx, animal); err != nil {
		return nil, err
	}
	resp := toAnimalResponse(animal)
	return &resp, nil
}

// Eliminar rejects deletion while adoption rows (any phase) reference the
// animal — history must survive.
func (s *animalService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.animales.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("Animal no encontrado")
		}
		return err
	}
	count, err := s.animales.CountAdopciones(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errConflict("El animal tiene adopciones registradas y no puede eliminarse")
	}
	return s.animales.Delete(ctx, id)
}

func (s *animalService) AgregarImagen(ctx context.Context, id uuid.UUID, ruta string) error {
	if _, err := s.animales.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("Animal no encontrado")
		}
		return err
	}
	return runTx(ctx, s.animales.DB(), func(tx *gorm.DB) error {
		return s.animales.AddImagenTx(ctx, tx, &model.AnimalImagen{AnimalID: id, Ruta: ruta})
	})
}

func (s *animalService) AgregarHistorial(ctx context.Context, id uuid.UUID, req dto.HistorialRequest) (*dto.HistorialResponse, error) {
	if _, err := s.animales.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Animal no encontrado")
		}
		return nil, err
	}

	fecha := time.Now()
	if req.Fecha != "" {
		parsed, err := time.Parse("2006-01-02", req.Fecha)
		if err != nil {
			return nil, errUnprocessable("fecha invalida, formato esperado YYYY-MM-DD")
		}
		fecha = parsed
	}

	entrada := &model.HistorialAnimal{
		AnimalID:    id,
		Tipo:        req.Tipo,
		Descripcion: req.Descripcion,
		Fecha:       fecha,
	}
	err := runTx(ctx, s.animales.DB(), func(tx *gorm.DB) error {
		return s.animales.AddHistorialTx(ctx, tx, entrada)
	})
	if err != nil {
		return nil, err
	}
	resp := toHistorialResponse(entrada)
	return &resp, nil
}

func toAnimalResponse(a *model.Animal) dto.AnimalResponse {
	resp := dto.AnimalResponse{
		ID:          a.ID.String(),
		Nombre:      a.Nombre,
		EdadMeses:   a.EdadMeses,
		Sexo:        a.Sexo,
		Peso:        a.Peso,
		Pelaje:      a.Pelaje,
		Tamano:      a.Tamano,
		Descripcion: a.Descripcion,
		Imagenes:    make([]string, 0, len(a.Imagenes)),
	}
	if a.Raza != nil {
		resp.Raza = a.Raza.Nombre
		if a.Raza.Especie != nil {
			resp.Especie = a.Raza.Especie.Nombre
		}
	}
	for _, img := range a.Imagenes {
		resp.Imagenes = append(resp.Imagenes, img.Ruta)
	}
	return resp
}

func toAnimalResponses(animales []model.Animal) []dto.AnimalResponse {
	out := make([]dto.AnimalResponse, 0, len(animales))
	for i := range animales {
		out = append(out, toAnimalResponse(&animales[i]))
	}
	return out
}

func toHistorialResponse(h *model.HistorialAnimal) dto.HistorialResponse {
	return dto.HistorialResponse{
		ID:          h.ID.String(),
		Tipo:        h.Tipo,
		Descripcion: h.Descripcion,
		Fecha:       h.Fecha.Format("2006-01-02"),
	}
}
