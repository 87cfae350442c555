package interfaces

import (
	"context"
	"hotel_reservas/internal/domain/entities"
	"hotel_reservas/internal/domain/valueobjects"
)

//go:generate mockgen -source=hospede_repository_interface.go -destination=mocks/mock_hospede_repository.go -package=mock_interfaces

// IHospedeRepository abstracts persistence for guests. CPFs are compared by
// their normalized digits.
type IHospedeRepository interface {
	Criar(ctx context.Context, h *entities.Hospede) (*entities.Hospede, error)
	BuscarPorID(ctx context.Context, id string) (*entities.Hospede, error)
	BuscarPorCPF(ctx context.Context, cpf valueobjects.CPF) (*entities.Hospede, error)
	BuscarTodos(ctx context.Context) ([]*entities.Hospede, error)
	Atualizar(ctx context.Context, id string, h *entities.Hospede) (*entities.Hospede, error)
	Deletar(ctx context.Context, id string) error
	ExisteCPF(ctx context.Context, cpf valueobjects.CPF, idExcluir string) (bool, error)
}
