package memory

import (
	"context"
	"hotel_reservas/internal/domain/entities"
	"hotel_reservas/internal/usecase/interfaces"
)

type ReservaRepository struct {
	store *store[entities.ReservaData]
}

var _ interfaces.IReservaRepository = (*ReservaRepository)(nil)

func NewReservaRepository() *ReservaRepository {
	return &ReservaRepository{store: newStore[entities.ReservaData]()}
}

func (r *ReservaRepository) Criar(_ context.Context, res *entities.Reserva) (*entities.Reserva, error) {
	d := res.ToData()
	r.store.salvar(d.ID, d)
	return entities.ReservaFromData(d), nil
}

func (r *ReservaRepository) BuscarPorID(_ context.Context, id string) (*entities.Reserva, error) {
	d, ok := r.store.buscar(id)
	if !ok {
		return nil, nil
	}
	return entities.ReservaFromData(d), nil
}

func (r *ReservaRepository) BuscarPorQuarto(_ context.Context, quartoID string) ([]*entities.Reserva, error) {
	return reservas(r.store.filtrar(func(d entities.ReservaData) bool { return d.QuartoID == quartoID })), nil
}

func (r *ReservaRepository) BuscarPorHospede(_ context.Context, hospedeID string) ([]*entities.Reserva, error) {
	return reservas(r.store.filtrar(func(d entities.ReservaData) bool { return d.HospedeID == hospedeID })), nil
}

func (r *ReservaRepository) BuscarAtivas(_ context.Context) ([]*entities.Reserva, error) {
	return reservas(r.store.filtrar(func(d entities.ReservaData) bool { return d.Status.Ativa() })), nil
}

func (r *ReservaRepository) BuscarTodas(_ context.Context) ([]*entities.Reserva, error) {
	return reservas(r.store.filtrar(nil)), nil
}

func (r *ReservaRepository) Atualizar(_ context.Context, id string, res *entities.Reserva) (*entities.Reserva, error) {
	d := res.ToData()
	d.ID = id
	r.store.salvar(id, d)
	return entities.ReservaFromData(d), nil
}

func (r *ReservaRepository) Deletar(_ context.Context, id string) error {
	r.store.remover(id)
	return nil
}

func (r *ReservaRepository) ExisteReservaAtivaQuarto(_ context.Context, quartoID string) (bool, error) {
	return r.store.algum(func(d entities.ReservaData) bool {
		return d.QuartoID == quartoID && d.Status.Ativa()
	}), nil
}

func reservas(data []entities.ReservaData) []*entities.Reserva {
	out := make([]*entities.Reserva, 0, len(data))
	for _, d := range data {
		out = append(out, entities.ReservaFromData(d))
	}
	return out
}
