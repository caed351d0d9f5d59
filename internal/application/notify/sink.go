package notify

import (
	"time"

	"github.com/google/uuid"

	"github.com/caseritos/caseritos-api/internal/application/lifecycle"
	"github.com/caseritos/caseritos-api/internal/domain/entity"
	"github.com/caseritos/caseritos-api/internal/domain/repository"
	"github.com/caseritos/caseritos-api/pkg/logger"
)

// Ensure Sink implements lifecycle.Notifier.
var _ lifecycle.Notifier = (*Sink)(nil)

// Sink persiste notificaciones dirigidas, fire-and-forget: un fallo de
// escritura se registra y se absorbe. La transición que la disparó nunca se
// revierte por una notificación perdida.
type Sink struct {
	repo repository.NotificationRepository
	log  *logger.Logger
}

// NewSink construye el sink.
func NewSink(repo repository.NotificationRepository, log *logger.Logger) *Sink {
	return &Sink{repo: repo, log: log}
}

// Append agrega una notificación para el destinatario.
func (s *Sink) Append(recipientID string, payload entity.NotificationPayload) {
	n := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    recipientID,
		Payload:   payload,
		Read:      false,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(n); err != nil {
		s.log.Error().Err(err).
			Str("recipient", recipientID).
			Str("type", payload.Type).
			Msg("no se pudo guardar la notificación")
	}
}
