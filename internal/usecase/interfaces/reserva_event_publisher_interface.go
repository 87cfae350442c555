package interfaces

import (
	"context"
	"hotel_reservas/internal/domain/entities"
)

//go:generate mockgen -source=reserva_event_publisher_interface.go -destination=mocks/mock_reserva_event_publisher.go -package=mock_interfaces

// IReservaEventPublisher notifies other systems about booking lifecycle changes.
//
// Publishing is best effort: implementations handle (and log) their own
// failures, so a broker outage never fails a booking operation.
type IReservaEventPublisher interface {
	Publicar(ctx context.Context, evento entities.ReservaEvento)
}
