package memory

import (
	"context"
	"hotel_reservas/internal/domain/entities"
	"hotel_reservas/internal/domain/valueobjects"
	"hotel_reservas/internal/usecase/interfaces"
)

type HospedeRepository struct {
	store *store[entities.HospedeData]
}

var _ interfaces.IHospedeRepository = (*HospedeRepository)(nil)

func NewHospedeRepository() *HospedeRepository {
	return &HospedeRepository{store: newStore[entities.HospedeData]()}
}

func (r *HospedeRepository) Criar(_ context.Context, h *entities.Hospede) (*entities.Hospede, error) {
	d := h.ToData()
	r.store.salvar(d.ID, d)
	return entities.HospedeFromData(d)
}

func (r *HospedeRepository) BuscarPorID(_ context.Context, id string) (*entities.Hospede, error) {
	d, ok := r.store.buscar(id)
	if !ok {
		return nil, nil
	}
	return entities.HospedeFromData(d)
}

func (r *HospedeRepository) BuscarPorCPF(_ context.Context, cpf valueobjects.CPF) (*entities.Hospede, error) {
	encontrados := r.store.filtrar(func(d entities.HospedeData) bool { return d.CPF == cpf.Valor() })
	if len(encontrados) == 0 {
		return nil, nil
	}
	return entities.HospedeFromData(encontrados[0])
}

func (r *HospedeRepository) BuscarTodos(_ context.Context) ([]*entities.Hospede, error) {
	data := r.store.filtrar(nil)
	out := make([]*entities.Hospede, 0, len(data))
	for _, d := range data {
		h, err := entities.HospedeFromData(d)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

func (r *HospedeRepository) Atualizar(_ context.Context, id string, h *entities.Hospede) (*entities.Hospede, error) {
	d := h.ToData()
	d.ID = id
	r.store.salvar(id, d)
	return entities.HospedeFromData(d)
}

func (r *HospedeRepository) Deletar(_ context.Context, id string) error {
	r.store.remover(id)
	return nil
}

func (r *HospedeRepository) ExisteCPF(_ context.Context, cpf valueobjects.CPF, idExcluir string) (bool, error) {
	return r.store.algum(func(d entities.HospedeData) bool {
		return d.CPF == cpf.Valor() && d.ID != idExcluir
	}), nil
}
