package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/config"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/dto"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/infra"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/model"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/repository"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/worker"
)

type AdopcionService interface {
	CrearSolicitud(ctx context.Context, usuarioID uuid.UUID, req dto.CrearSolicitudAdopcionRequest) (*dto.SolicitudAdopcionResponse, error)
	ListarSolicitudes(ctx context.Context, filter dto.SolicitudAdopcionFilter, usuarioID *uuid.UUID) ([]dto.SolicitudAdopcionResponse, *dto.Pagination, error)
	ObtenerSolicitud(ctx context.Context, id uuid.UUID) (*dto.AdopcionResponse, error)
	CambiarEstadoSolicitud(ctx context.Context, id uuid.UUID, req dto.CambiarEstadoRequest) (*dto.SolicitudAdopcionResponse, error)
	Finalizar(ctx context.Context, id uuid.UUID, req dto.FinalizarAdopcionRequest) (*dto.AdopcionResponse, error)
	ListarAdopciones(ctx context.Context, filter dto.AdopcionFilter) ([]dto.AdopcionResponse, *dto.Pagination, error)
	CambiarEstadoAdopcion(ctx context.Context, id uuid.UUID, req dto.CambiarEstadoRequest) (*dto.AdopcionResponse, error)
	RutaContrato(ctx context.Context, id uuid.UUID) (string, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type adopcionService struct {
	adopciones repository.AdopcionRepository
	animales   repository.AnimalRepository
	cfg        *config.Config
	dispatcher Notificador
	// generarPDF is swappable so unit tests do not touch the filesystem.
	generarPDF func(a *model.Adopcion, storagePath string) (string, error)
}

func NewAdopcionService(adopciones repository.AdopcionRepository, animales repository.AnimalRepository, cfg *config.Config, dispatcher Notificador) AdopcionService {
	return &adopcionService{
		adopciones: adopciones,
		animales:   animales,
		cfg:        cfg,
		dispatcher: dispatcher,
		generarPDF: infra.GenerateContratoPDF,
	}
}

// CrearSolicitud opens an adoption request in PENDIENTE. The animal must be
// available and the user must not already have an open request for it.
func (s *adopcionService) CrearSolicitud(ctx context.Context, usuarioID uuid.UUID, req dto.CrearSolicitudAdopcionRequest) (*dto.SolicitudAdopcionResponse, error) {
	animalID, err := uuid.Parse(req.AnimalID)
	if err != nil {
		return nil, errUnprocessable("animalId invalido")
	}

	if _, err := s.animales.FindByID(ctx, animalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Animal no encontrado")
		}
		return nil, err
	}

	disponible, err := s.animales.EstaDisponible(ctx, animalID)
	if err != nil {
		return nil, err
	}
	if !disponible {
		return nil, errConflict("El animal ya no esta disponible para adopcion")
	}

	abierta, err := s.adopciones.TieneSolicitudAbierta(ctx, usuarioID, animalID)
	if err != nil {
		return nil, err
	}
	if abierta {
		return nil, errConflict("Ya existe una solicitud abierta para este animal")
	}

	solicitud := &model.Adopcion{
		AnimalID:        animalID,
		UsuarioID:       usuarioID,
		FechaSolicitud:  time.Now(),
		EstadoSolicitud: model.SolicitudPendiente,
		Comentarios:     req.Comentarios,
	}
	if err := s.adopciones.Create(ctx, solicitud); err != nil {
		return nil, err
	}

	resp := toSolicitudAdopcionResponse(solicitud)
	return &resp, nil
}

func (s *adopcionService) ListarSolicitudes(ctx context.Context, filter dto.SolicitudAdopcionFilter, usuarioID *uuid.UUID) ([]dto.SolicitudAdopcionResponse, *dto.Pagination, error) {
	filas, total, err := s.adopciones.ListSolicitudes(ctx, filter, usuarioID)
	if err != nil {
		return nil, nil, err
	}
	out := make([]dto.SolicitudAdopcionResponse, 0, len(filas))
	for i := range filas {
		out = append(out, toSolicitudAdopcionResponse(&filas[i]))
	}
	return out, dto.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *adopcionService) ObtenerSolicitud(ctx context.Context, id uuid.UUID) (*dto.AdopcionResponse, error) {
	a, err := s.adopciones.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Solicitud no encontrada")
		}
		return nil, err
	}
	resp := toAdopcionResponse(a)
	return &resp, nil
}

// CambiarEstadoSolicitud canonicalizes the target status and enforces the
// transition allow-list: RECHAZADO and CANCELADA are terminal.
func (s *adopcionService) CambiarEstadoSolicitud(ctx context.Context, id uuid.UUID, req dto.CambiarEstadoRequest) (*dto.SolicitudAdopcionResponse, error) {
	estado, ok := model.ParseEstadoSolicitud(req.Estado)
	if !ok {
		return nil, errUnprocessable("Estado de solicitud no reconocido")
	}

	a, err := s.adopciones.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Solicitud no encontrada")
		}
		return nil, err
	}

	if !model.PuedeTransicionarSolicitud(a.EstadoSolicitud, estado) {
		return nil, errConflict(fmt.Sprintf("Transicion no permitida: %s -> %s", a.EstadoSolicitud, estado))
	}

	if err := s.adopciones.UpdateEstadoSolicitud(ctx, id, estado); err != nil {
		return nil, err
	}
	a.EstadoSolicitud = estado

	if estado == model.SolicitudAceptado && s.dispatcher != nil && a.Usuario != nil {
		if err := s.dispatcher.EnqueueNotificacion(ctx, worker.NotificacionPayload{
			ToEmail: a.Usuario.Email,
			Subject: "Tu solicitud de adopcion fue aceptada",
			Body:    fmt.Sprintf("Hola %s, tu solicitud de adopcion fue aceptada. El refugio se pondra en contacto para coordinar la firma.", a.Usuario.Alias),
		}); err != nil {
			log.Warn().Err(err).Msg("adopcion: no se pudo encolar la notificacion de aceptacion")
		}
	}

	resp := toSolicitudAdopcionResponse(a)
	return &resp, nil
}

// Finalizar closes an ACEPTADO request into a signed adoption: sets the
// firma fields, generates the contract PDF and moves the finalized phase to
// Aprobada, all in one transaction. The approval email (with the PDF
// attached) goes out after commit.
func (s *adopcionService) Finalizar(ctx context.Context, id uuid.UUID, req dto.FinalizarAdopcionRequest) (*dto.AdopcionResponse, error) {
	a, err := s.adopciones.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Solicitud no encontrada")
		}
		return nil, err
	}

	if a.EstadoSolicitud != model.SolicitudAceptado {
		return nil, errConflict("Solo una solicitud en estado ACEPTADO puede finalizarse")
	}
	if a.Estado != nil {
		return nil, errConflict("La adopcion ya fue finalizada")
	}

	fechaFirma, err := time.Parse("2006-01-02", req.FechaFirma)
	if err != nil {
		return nil, errUnprocessable("fechaFirma invalida, formato esperado YYYY-MM-DD")
	}

	a.FechaFirma = &fechaFirma
	a.Contrato = &req.Contrato
	a.DireccionAdoptante = &req.DireccionAdoptante
	if req.Condiciones != "" {
		a.Condiciones = &req.Condiciones
	}
	estado := model.AdopcionAprobada
	a.Estado = &estado

	rutaPDF, err := s.generarPDF(a, s.cfg.ContractStoragePath)
	if err != nil {
		return nil, err
	}
	a.ContratoPDF = &rutaPDF

	err = runTx(ctx, s.adopciones.DB(), func(tx *gorm.DB) error {
		return s.adopciones.UpdateTx(ctx, tx, a)
	})
	if err != nil {
		// La transaccion no se confirmo: el contrato recien generado quedaria
		// huerfano en disco.
		if rmErr := os.Remove(rutaPDF); rmErr != nil {
			log.Warn().Err(rmErr).Str("ruta", rutaPDF).Msg("adopcion: no se pudo limpiar el contrato tras el rollback")
		}
		return nil, err
	}

	if s.dispatcher != nil && a.Usuario != nil {
		if err := s.dispatcher.EnqueueNotificacion(ctx, worker.NotificacionPayload{
			ToEmail:    a.Usuario.Email,
			Subject:    "Contrato de adopcion",
			Body:       fmt.Sprintf("Hola %s, adjuntamos el contrato de adopcion firmado. Gracias por darle un hogar.", a.Usuario.Alias),
			AttachPath: rutaPDF,
		}); err != nil {
			log.Warn().Err(err).Msg("adopcion: no se pudo encolar el contrato por email")
		}
	}

	resp := toAdopcionResponse(a)
	return &resp, nil
}

func (s *adopcionService) ListarAdopciones(ctx context.Context, filter dto.AdopcionFilter) ([]dto.AdopcionResponse, *dto.Pagination, error) {
	filas, total, err := s.adopciones.ListAdopciones(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	out := make([]dto.AdopcionResponse, 0, len(filas))
	for i := range filas {
		out = append(out, toAdopcionResponse(&filas[i]))
	}
	return out, dto.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *adopcionService) CambiarEstadoAdopcion(ctx context.Context, id uuid.UUID, req dto.CambiarEstadoRequest) (*dto.AdopcionResponse, error) {
	estado, ok := model.ParseEstadoAdopcion(req.Estado)
	if !ok {
		return nil, errUnprocessable("Estado de adopcion no reconocido")
	}

	a, err := s.adopciones.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("Adopcion no encontrada")
		}
		return nil, err
	}
	if a.Estado == nil {
		return nil, errConflict("La adopcion aun no fue finalizada")
	}
	if !model.PuedeTransicionarAdopcion(*a.Estado, estado) {
		return nil, errConflict(fmt.Sprintf("Transicion no permitida: %s -> %s", *a.Estado, estado))
	}

	if err := s.adopciones.UpdateEstado(ctx, id, estado); err != nil {
		return nil, err
	}
	a.Estado = &estado
	resp := toAdopcionResponse(a)
	return &resp, nil
}

// RutaContrato resolves the on-disk contract path for the download endpoint.
func (s *adopcionService) RutaContrato(ctx context.Context, id uuid.UUID) (string, error) {
	a, err := s.adopciones.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errNotFound("Adopcion no encontrada")
		}
		return "", err
	}
	if a.ContratoPDF == nil {
		return "", errNotFound("La adopcion no tiene contrato generado")
	}
	return *a.ContratoPDF, nil
}

// Eliminar removes the request/adoption row. A Completada adoption is part
// of the shelter's history and cannot be removed.
func (s *adopcionService) Eliminar(ctx context.Context, id uuid.UUID) error {
	a, err := s.adopciones.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("Adopcion no encontrada")
		}
		return err
	}
	if a.Estado != nil && *a.Estado == model.AdopcionCompletada {
		return errConflict("Una adopcion completada no puede eliminarse")
	}
	return s.adopciones.Delete(ctx, id)
}

func toSolicitudAdopcionResponse(a *model.Adopcion) dto.SolicitudAdopcionResponse {
	resp := dto.SolicitudAdopcionResponse{
		ID:              a.ID.String(),
		AnimalID:        a.AnimalID.String(),
		UsuarioID:       a.UsuarioID.String(),
		FechaSolicitud:  a.FechaSolicitud.Format(time.RFC3339),
		EstadoSolicitud: a.EstadoSolicitud,
		Comentarios:     a.Comentarios,
	}
	if a.Animal != nil {
		resp.Animal = a.Animal.Nombre
	}
	if a.Usuario != nil {
		resp.Solicitante = a.Usuario.Alias
	}
	return resp
}

func toAdopcionResponse(a *model.Adopcion) dto.AdopcionResponse {
	resp := dto.AdopcionResponse{
		SolicitudAdopcionResponse: toSolicitudAdopcionResponse(a),
		Contrato:                  a.Contrato,
		Condiciones:               a.Condiciones,
		DireccionAdoptante:        a.DireccionAdoptante,
		Estado:                    a.Estado,
	}
	if a.FechaFirma != nil {
		firma := a.FechaFirma.Format("2006-01-02")
		resp.FechaFirma = &firma
	}
	return resp
}
