package interfaces

import (
	"context"
	"hotel_reservas/internal/domain/entities"
)

//go:generate mockgen -source=reserva_repository_interface.go -destination=mocks/mock_reserva_repository.go -package=mock_interfaces

// IReservaRepository abstracts persistence for bookings.
//
// "Active" means CONFIRMADA or EM_ANDAMENTO, the statuses that occupy a room.
type IReservaRepository interface {
	Criar(ctx context.Context, r *entities.Reserva) (*entities.Reserva, error)
	BuscarPorID(ctx context.Context, id string) (*entities.Reserva, error)
	BuscarPorQuarto(ctx context.Context, quartoID string) ([]*entities.Reserva, error)
	BuscarPorHospede(ctx context.Context, hospedeID string) ([]*entities.Reserva, error)
	BuscarAtivas(ctx context.Context) ([]*entities.Reserva, error)
	BuscarTodas(ctx context.Context) ([]*entities.Reserva, error)
	Atualizar(ctx context.Context, id string, r *entities.Reserva) (*entities.Reserva, error)
	Deletar(ctx context.Context, id string) error
	ExisteReservaAtivaQuarto(ctx context.Context, quartoID string) (bool, error)
}
