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

type DonacionService interface {
	// Crear registers a donation with explicit category ids.
	Crear(ctx context.Context, usuarioID *uuid.UUID, req dto.CrearDonacionRequest) (*dto.DonacionResponse, error)
	// CrearTipificada backs the convenience endpoints where the category is
	// fixed by the route (alimentos, medicinas, ...). The category row is
	// created lazily inside the same transaction when missing.
	CrearTipificada(ctx context.Context, usuarioID *uuid.UUID, categoria string, req dto.DonacionTipificadaRequest) (*dto.DonacionResponse, error)
	Historial(ctx context.Context, filter dto.DonacionFilter) ([]dto.DetalleDonacionResponse, *dto.Pagination, error)
}

type donacionService struct {
	donaciones repository.DonacionRepository
	usuarios   repository.UsuarioRepository
	dispatcher Notificador
}

func NewDonacionService(donaciones repository.DonacionRepository, usuarios repository.UsuarioRepository, dispatcher Notificador) DonacionService {
	return &donacionService{donaciones: donaciones, usuarios: usuarios, dispatcher: dispatcher}
}

// enviarRecibo queues the thank-you email for known donors. Best effort:
// the donation already committed, a queue failure only loses the receipt.
func (s *donacionService) enviarRecibo(ctx context.Context, usuarioID *uuid.UUID) {
	if s.dispatcher == nil || s.usuarios == nil || usuarioID == nil {
		return
	}
	usuario, err := s.usuarios.FindByID(ctx, *usuarioID)
	if err != nil {
		log.Warn().Err(err).Msg("donacion: no se pudo resolver el donante para el recibo")
		return
	}
	if err := s.dispatcher.EnqueueNotificacion(ctx, worker.NotificacionPayload{
		ToEmail: usuario.Email,
		Subject: "Gracias por tu donacion",
		Body:    fmt.Sprintf("Hola %s, registramos tu donacion. El refugio agradece tu apoyo.", usuario.Alias),
	}); err != nil {
		log.Warn().Err(err).Msg("donacion: no se pudo encolar el recibo")
	}
}

func (s *donacionService) Crear(ctx context.Context, usuarioID *uuid.UUID, req dto.CrearDonacionRequest) (*dto.DonacionResponse, error) {
	detalles := make([]model.DetalleDonacion, 0, len(req.Donaciones))
	for _, d := range req.Donaciones {
		catID, err := uuid.Parse(d.CategoriaID)
		if err != nil {
			return nil, errUnprocessable("idcategoria invalido")
		}
		if _, err := s.donaciones.FindCategoriaByID(ctx, catID.String()); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errNotFound("Categoria de donacion no encontrada")
			}
			return nil, err
		}
		if d.CantidadDonacion.IsNegative() || d.CantidadDonacion.IsZero() {
			return nil, errUnprocessable("cantidaddonacion debe ser mayor a cero")
		}
		detalles = append(detalles, model.DetalleDonacion{
			CategoriaID: catID,
			Cantidad:    d.CantidadDonacion,
			Detalle:     d.DetalleDonacion,
		})
	}

	ahora := time.Now()
	donacion := &model.Donacion{
		UsuarioID: usuarioID,
		Fecha:     ahora,
		Hora:      ahora.Format("15:04:05"),
		Detalles:  detalles,
	}

	// Header and detail rows commit together — a header without details
	// never persists.
	err := runTx(ctx, s.donaciones.DB(), func(tx *gorm.DB) error {
		return s.donaciones.CreateTx(ctx, tx, donacion)
	})
	if err != nil {
		return nil, err
	}

	s.enviarRecibo(ctx, usuarioID)

	resp := toDonacionResponse(donacion)
	return &resp, nil
}

func (s *donacionService) CrearTipificada(ctx context.Context, usuarioID *uuid.UUID, categoria string, req dto.DonacionTipificadaRequest) (*dto.DonacionResponse, error) {
	if req.Cantidad.IsNegative() || req.Cantidad.IsZero() {
		return nil, errUnprocessable("cantidad debe ser mayor a cero")
	}

	ahora := time.Now()
	donacion := &model.Donacion{
		UsuarioID: usuarioID,
		Fecha:     ahora,
		Hora:      ahora.Format("15:04:05"),
	}

	err := runTx(ctx, s.donaciones.DB(), func(tx *gorm.DB) error {
		cat, err := s.donaciones.FindOrCreateCategoriaTx(ctx, tx, categoria)
		if err != nil {
			return err
		}
		donacion.Detalles = []model.DetalleDonacion{{
			CategoriaID: cat.ID,
			Cantidad:    req.Cantidad,
			Detalle:     req.Detalle,
		}}
		return s.donaciones.CreateTx(ctx, tx, donacion)
	})
	if err != nil {
		return nil, err
	}

	s.enviarRecibo(ctx, usuarioID)

	resp := toDonacionResponse(donacion)
	return &resp, nil
}

func (s *donacionService) Historial(ctx context.Context, filter dto.DonacionFilter) ([]dto.DetalleDonacionResponse, *dto.Pagination, error) {
	detalles, total, err := s.donaciones.ListDetalles(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	out := make([]dto.DetalleDonacionResponse, 0, len(detalles))
	for _, d := range detalles {
		fila := dto.DetalleDonacionResponse{
			ID:               d.ID.String(),
			DonacionID:       d.DonacionID.String(),
			CantidadDonacion: d.Cantidad,
			DetalleDonacion:  d.Detalle,
		}
		if d.Categoria != nil {
			fila.Categoria = d.Categoria.Nombre
		}
		if d.Donacion != nil {
			fila.Fecha = d.Donacion.Fecha.Format("2006-01-02")
			if d.Donacion.Usuario != nil {
				alias := d.Donacion.Usuario.Alias
				fila.Donante = &alias
			}
		}
		out = append(out, fila)
	}
	return out, dto.NewPagination(filter.Page, filter.Limit, total), nil
}

func toDonacionResponse(d *model.Donacion) dto.DonacionResponse {
	resp := dto.DonacionResponse{
		ID:               d.ID.String(),
		Fecha:            d.Fecha.Format("2006-01-02"),
		Hora:             d.Hora,
		CantidadDetalles: len(d.Detalles),
	}
	if d.UsuarioID != nil {
		id := d.UsuarioID.String()
		resp.UsuarioID = &id
	}
	return resp
}
