package messaging

import (
	"context"
	"log"

	"hotel_reservas/internal/domain/entities"
	"hotel_reservas/internal/usecase/interfaces"
)

// NoopPublisher only logs events. Used when no broker is configured.
type NoopPublisher struct{}

var _ interfaces.IReservaEventPublisher = NoopPublisher{}

func (NoopPublisher) Publicar(_ context.Context, evento entities.ReservaEvento) {
	log.Printf("[messaging][noop] evento tipo=%s reserva_id=%s status=%s", evento.Tipo, evento.ReservaID, evento.Status)
}
