package interfaces

import (
	"context"
	"hotel_reservas/internal/domain/entities"
)

//go:generate mockgen -source=quarto_repository_interface.go -destination=mocks/mock_quarto_repository.go -package=mock_interfaces

// IQuartoRepository abstracts persistence for rooms.
//
// Implementations store snapshots: the entity passed in is copied and every
// read returns a freshly rehydrated *entities.Quarto. BuscarPorID and
// BuscarPorNumero return (nil, nil) when nothing matches.
type IQuartoRepository interface {
	Criar(ctx context.Context, q *entities.Quarto) (*entities.Quarto, error)
	BuscarPorID(ctx context.Context, id string) (*entities.Quarto, error)
	BuscarPorNumero(ctx context.Context, numero int) (*entities.Quarto, error)
	BuscarTodos(ctx context.Context) ([]*entities.Quarto, error)
	BuscarPorDisponibilidade(ctx context.Context, d entities.Disponibilidade) ([]*entities.Quarto, error)
	Atualizar(ctx context.Context, id string, q *entities.Quarto) (*entities.Quarto, error)
	Deletar(ctx context.Context, id string) error
	// ExisteNumero reports whether a room other than idExcluir uses numero.
	ExisteNumero(ctx context.Context, numero int, idExcluir string) (bool, error)
}
