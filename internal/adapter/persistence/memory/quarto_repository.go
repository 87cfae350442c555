package memory

import (
	"context"
	"hotel_reservas/internal/domain/entities"
	"hotel_reservas/internal/usecase/interfaces"
)

type QuartoRepository struct {
	store *store[entities.QuartoData]
}

var _ interfaces.IQuartoRepository = (*QuartoRepository)(nil)

func NewQuartoRepository() *QuartoRepository {
	return &QuartoRepository{store: newStore[entities.QuartoData]()}
}

func (r *QuartoRepository) Criar(_ context.Context, q *entities.Quarto) (*entities.Quarto, error) {
	d := q.ToData()
	r.store.salvar(d.ID, d)
	return entities.QuartoFromData(d), nil
}

func (r *QuartoRepository) BuscarPorID(_ context.Context, id string) (*entities.Quarto, error) {
	d, ok := r.store.buscar(id)
	if !ok {
		return nil, nil
	}
	return entities.QuartoFromData(d), nil
}

func (r *QuartoRepository) BuscarPorNumero(_ context.Context, numero int) (*entities.Quarto, error) {
	encontrados := r.store.filtrar(func(d entities.QuartoData) bool { return d.Numero == numero })
	if len(encontrados) == 0 {
		return nil, nil
	}
	return entities.QuartoFromData(encontrados[0]), nil
}

func (r *QuartoRepository) BuscarTodos(_ context.Context) ([]*entities.Quarto, error) {
	return quartos(r.store.filtrar(nil)), nil
}

func (r *QuartoRepository) BuscarPorDisponibilidade(_ context.Context, disp entities.Disponibilidade) ([]*entities.Quarto, error) {
	return quartos(r.store.filtrar(func(d entities.QuartoData) bool { return d.Disponibilidade == disp })), nil
}

func (r *QuartoRepository) Atualizar(_ context.Context, id string, q *entities.Quarto) (*entities.Quarto, error) {
	d := q.ToData()
	d.ID = id
	r.store.salvar(id, d)
	return entities.QuartoFromData(d), nil
}

func (r *QuartoRepository) Deletar(_ context.Context, id string) error {
	r.store.remover(id)
	return nil
}

func (r *QuartoRepository) ExisteNumero(_ context.Context, numero int, idExcluir string) (bool, error) {
	return r.store.algum(func(d entities.QuartoData) bool {
		return d.Numero == numero && d.ID != idExcluir
	}), nil
}

func quartos(data []entities.QuartoData) []*entities.Quarto {
	out := make([]*entities.Quarto, 0, len(data))
	for _, d := range data {
		out = append(out, entities.QuartoFromData(d))
	}
	return out
}
