package worker

// notificacion_worker.go
// Processes notification jobs from QueueNotificacion: welcome emails,
// adoption approvals (with the contract PDF attached), sponsorship
// approvals and donation receipts. The SMTP relay sits behind a circuit
// breaker so a downed relay fast-fails instead of stalling the pool.

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/infra"
)

// NotificacionPayload is the job envelope sent to QueueNotificacion.
type NotificacionPayload struct {
	ToEmail    string `json:"to_email"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	AttachPath string `json:"attach_path,omitempty"`
}

// NotificacionWorker sends notification emails via the SMTP mailer.
type NotificacionWorker struct {
	mailer *infra.Mailer
	cb     *infra.CircuitBreaker
}

func NewNotificacionWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker) *NotificacionWorker {
	return &NotificacionWorker{mailer: mailer, cb: cb}
}

// Process sends one notification. Failures (including circuit-open
// fast-fails) move the job to the DLQ for manual inspection — delivery is
// best-effort, never retried inline.
func (w *NotificacionWorker) Process(ctx context.Context, rdb *redis.Client, raw json.RawMessage) {
	var payload NotificacionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notificacion_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("notificacion_worker: empty to_email — skipping")
		return
	}

	err := w.cb.Execute(func() error {
		return w.mailer.Send(payload.ToEmail, payload.Subject, payload.Body, payload.AttachPath)
	})
	if err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("notificacion_worker: failed to send email")
		SendToDLQ(ctx, rdb, QueueNotificacion, "notificacion", raw, err.Error(), 1)
		return
	}
	log.Info().Str("to", payload.ToEmail).Msg("notificacion_worker: email sent")
}
