package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/repository"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/worker"
)

// categoriaApadrinamiento is the donation category under which approved
// sponsorship pledges are recorded.
const categoriaApadrinamiento = "Apadrinamiento"

type ApadrinamientoService interface {
	Crear(ctx context.Context, req dto.CrearApadrinamientoRequest) (*dto.ApadrinamientoResponse, error)
	Listar(ctx context.Context, filter dto.ApadrinamientoFilter) ([]dto.ApadrinamientoResponse, *dto.Pagination, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ApadrinamientoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarApadrinamientoRequest) (*dto.ApadrinamientoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error

	CrearSolicitud(ctx context.Context, usuarioID uuid.UUID, req dto.CrearSolicitudApadrinamientoRequest) (*dto.SolicitudApadrinamientoResponse, error)
	ListarSolicitudes(ctx context.Context, filter dto.SolicitudApadrinamientoFilter) ([]dto.SolicitudApadrinamientoResponse, *dto.Pagination, error)
	AprobarSolicitud(ctx context.Context, id uuid.UUID) (*dto.ApadrinamientoResponse, error)
	RechazarSolicitud(ctx context.Context, id uuid.UUID) error
}

type apadrinamientoService struct {
	apadrinamientos repository.ApadrinamientoRepository
	donaciones      repository.DonacionRepository
	animales        repository.AnimalRepository
	dispatcher      Notificador
}

func NewApadrinamientoService(
	apadrinamientos repository.ApadrinamientoRepository,
	donaciones repository.DonacionRepository,
	animales repository.AnimalRepository,
	dispatcher Notificador,
) ApadrinamientoService {
	return &apadrinamientoService{
		apadrinamientos: apadrinamientos,
		donaciones:      donaciones,
		animales:        animales,
		dispatcher:      dispatcher,
	}
}

func (s *apadrinamientoService) Crear(ctx context.Context, req dto.CrearApadrinamientoRequest) (*dto.ApadrinamientoResponse, error) {
	donacionID, err := uuid.Parse(req.DonacionID)
	if err != nil {
		return nil, errUnprocessable("donacionId invalido")
	}
	animalID, err := uuid.Parse(req.AnimalID)
	if err != nil {
		return nil, errUnprocessable("animalId invalido")
	}
	fechaInicio, err := time.Parse("2006-01-02", req.FechaInicio)
	if err != nil {
		return nil, errUnprocessable("fechaInicio invalida, formato esperado YYYY-MM-DD")
	}

	if _, err := s.animales.FindByID(ctx, animalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Animal no encontrado")
		}
		return nil, err
	}

	apadrinamiento := &model.Apadrinamiento{
		DonacionID:  donacionID,
		AnimalID:    animalID,
		FechaInicio: fechaInicio,
		Frecuencia:  req.Frecuencia,
		Estado:      model.ApadrinamientoActivo,
	}
	if req.FechaFin != nil {
		fin, err := time.Parse("2006-01-02", *req.FechaFin)
		if err != nil {
			return nil, errUnprocessable("fechaFin invalida, formato esperado YYYY-MM-DD")
		}
		if fin.Before(fechaInicio) {
			return nil, errUnprocessable("fechaFin no puede ser anterior a fechaInicio")
		}
		apadrinamiento.FechaFin = &fin
	}

	err = runTx(ctx, s.apadrinamientos.DB(), func(tx *gorm.DB) error {
		return s.apadrinamientos.CreateTx(ctx, tx, apadrinamiento)
	})
	if err != nil {
		return nil, err
	}

	resp := toApadrinamientoResponse(apadrinamiento)
	return &resp, nil
}

func (s *apadrinamientoService) Listar(ctx context.Context, filter dto.ApadrinamientoFilter) ([]dto.ApadrinamientoResponse, *dto.Pagination, error) {
	filas, total, err := s.apadrinamientos.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	out := make([]dto.ApadrinamientoResponse, 0, len(filas))
	for i := range filas {
		out = append(out, toApadrinamientoResponse(&filas[i]))
	}
	return out, dto.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *apadrinamientoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ApadrinamientoResponse, error) {
	a, err := s.apadrinamientos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Apadrinamiento no encontrado")
		}
		return nil, err
	}
	resp := toApadrinamientoResponse(a)
	return &resp, nil
}

func (s *apadrinamientoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarApadrinamientoRequest) (*dto.ApadrinamientoResponse, error) {
	a, err := s.apadrinamientos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Apadrinamiento no encontrado")
		}
		return nil, err
	}

	if req.Frecuencia != "" {
		a.Frecuencia = req.Frecuencia
	}
	if req.FechaFin != nil {
		fin, err := time.Parse("2006-01-02", *req.FechaFin)
		if err != nil {
			return nil, errUnprocessable("fechaFin invalida, formato esperado YYYY-MM-DD")
		}
		a.FechaFin = &fin
	}
	if req.Estado != "" {
		estado, ok := model.ParseEstadoApadrinamiento(req.Estado)
		if !ok {
			return nil, errUnprocessable("Estado de apadrinamiento no reconocido")
		}
		a.Estado = estado
	}

	if err := s.apadrinamientos.Update(ctx, a); err != nil {
		return nil, err
	}
	resp := toApadrinamientoResponse(a)
	return &resp, nil
}

func (s *apadrinamientoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.apadrinamientos.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("Apadrinamiento no encontrado")
		}
		return err
	}
	return s.apadrinamientos.Delete(ctx, id)
}

func (s *apadrinamientoService) CrearSolicitud(ctx context.Context, usuarioID uuid.UUID, req dto.CrearSolicitudApadrinamientoRequest) (*dto.SolicitudApadrinamientoResponse, error) {
	animalID, err := uuid.Parse(req.AnimalID)
	if err != nil {
		return nil, errUnprocessable("animalId invalido")
	}
	if req.Monto.IsNegative() || req.Monto.IsZero() {
		return nil, errUnprocessable("monto debe ser mayor a cero")
	}
	if _, err := s.animales.FindByID(ctx, animalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Animal no encontrado")
		}
		return nil, err
	}

	solicitud := &model.SolicitudApadrinamiento{
		UsuarioID:  usuarioID,
		AnimalID:   animalID,
		Monto:      req.Monto,
		Frecuencia: req.Frecuencia,
		Estado:     model.SolicitudApadrinamientoPendiente,
		Fecha:      time.Now(),
	}
	if err := s.apadrinamientos.CreateSolicitud(ctx, solicitud); err != nil {
		return nil, err
	}

	resp := toSolicitudApadrinamientoResponse(solicitud)
	return &resp, nil
}

func (s *apadrinamientoService) ListarSolicitudes(ctx context.Context, filter dto.SolicitudApadrinamientoFilter) ([]dto.SolicitudApadrinamientoResponse, *dto.Pagination, error) {
	filas, total, err := s.apadrinamientos.ListSolicitudes(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	out := make([]dto.SolicitudApadrinamientoResponse, 0, len(filas))
	for i := range filas {
		out = append(out, toSolicitudApadrinamientoResponse(&filas[i]))
	}
	return out, dto.NewPagination(filter.Page, filter.Limit, total), nil
}

// AprobarSolicitud is a single transaction: the pending request is loaded
// scoped to estado = 'Pendiente' (a second approval finds nothing), the
// pledge donation is recorded, the apadrinamiento is created and the
// request is marked Aprobada. Either everything commits or nothing does.
func (s *apadrinamientoService) AprobarSolicitud(ctx context.Context, id uuid.UUID) (*dto.ApadrinamientoResponse, error) {
	var apadrinamiento *model.Apadrinamiento
	var padrino *model.Usuario

	err := runTx(ctx, s.apadrinamientos.DB(), func(tx *gorm.DB) error {
		solicitud, err := s.apadrinamientos.FindSolicitudPendienteTx(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errConflict("La solicitud no existe o ya fue resuelta")
			}
			return err
		}
		padrino = solicitud.Usuario

		cat, err := s.donaciones.FindOrCreateCategoriaTx(ctx, tx, categoriaApadrinamiento)
		if err != nil {
			return err
		}

		ahora := time.Now()
		donacion := &model.Donacion{
			UsuarioID: &solicitud.UsuarioID,
			Fecha:     ahora,
			Hora:      ahora.Format("15:04:05"),
			Detalles: []model.DetalleDonacion{{
				CategoriaID: cat.ID,
				Cantidad:    solicitud.Monto,
				Detalle:     fmt.Sprintf("Apadrinamiento %s", solicitud.Frecuencia),
			}},
		}
		if err := s.donaciones.CreateTx(ctx, tx, donacion); err != nil {
			return err
		}

		apadrinamiento = &model.Apadrinamiento{
			DonacionID:  donacion.ID,
			AnimalID:    solicitud.AnimalID,
			FechaInicio: ahora,
			Frecuencia:  solicitud.Frecuencia,
			SolicitudID: &solicitud.ID,
			Estado:      model.ApadrinamientoActivo,
		}
		if err := s.apadrinamientos.CreateTx(ctx, tx, apadrinamiento); err != nil {
			return err
		}

		solicitud.Estado = model.SolicitudApadrinamientoAprobada
		return s.apadrinamientos.UpdateSolicitudTx(ctx, tx, solicitud)
	})
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil && padrino != nil {
		if err := s.dispatcher.EnqueueNotificacion(ctx, worker.NotificacionPayload{
			ToEmail: padrino.Email,
			Subject: "Tu solicitud de apadrinamiento fue aprobada",
			Body:    fmt.Sprintf("Hola %s, tu apadrinamiento fue aprobado. Gracias por apoyar al refugio.", padrino.Alias),
		}); err != nil {
			log.Warn().Err(err).Msg("apadrinamiento: no se pudo encolar la notificacion de aprobacion")
		}
	}

	resp := toApadrinamientoResponse(apadrinamiento)
	return &resp, nil
}

func (s *apadrinamientoService) RechazarSolicitud(ctx context.Context, id uuid.UUID) error {
	return runTx(ctx, s.apadrinamientos.DB(), func(tx *gorm.DB) error {
		solicitud, err := s.apadrinamientos.FindSolicitudPendienteTx(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errConflict("La solicitud no existe o ya fue resuelta")
			}
			return err
		}
		solicitud.Estado = model.SolicitudApadrinamientoRechazada
		return s.apadrinamientos.UpdateSolicitudTx(ctx, tx, solicitud)
	})
}

func toApadrinamientoResponse(a *model.Apadrinamiento) dto.ApadrinamientoResponse {
	resp := dto.ApadrinamientoResponse{
		ID:          a.ID.String(),
		DonacionID:  a.DonacionID.String(),
		AnimalID:    a.AnimalID.String(),
		FechaInicio: a.FechaInicio.Format("2006-01-02"),
		Frecuencia:  a.Frecuencia,
		Estado:      a.Estado,
	}
	if a.Animal != nil {
		resp.Animal = a.Animal.Nombre
	}
	if a.FechaFin != nil {
		fin := a.FechaFin.Format("2006-01-02")
		resp.FechaFin = &fin
	}
	if a.SolicitudID != nil {
		sid := a.SolicitudID.String()
		resp.SolicitudID = &sid
	}
	return resp
}

func toSolicitudApadrinamientoResponse(s *model.SolicitudApadrinamiento) dto.SolicitudApadrinamientoResponse {
	resp := dto.SolicitudApadrinamientoResponse{
		ID:         s.ID.String(),
		UsuarioID:  s.UsuarioID.String(),
		AnimalID:   s.AnimalID.String(),
		Monto:      s.Monto,
		Frecuencia: s.Frecuencia,
		Estado:     s.Estado,
		Fecha:      s.Fecha.Format(time.RFC3339),
	}
	if s.Usuario != nil {
		resp.Padrino = s.Usuario.Alias
	}
	if s.Animal != nil {
		resp.Animal = s.Animal.Nombre
	}
	return resp
}
