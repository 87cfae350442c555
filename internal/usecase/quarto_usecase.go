package usecase

import (
	"context"
	"hotel_reservas/internal/domain/entities"
	"hotel_reservas/internal/domain/errs"
	"hotel_reservas/internal/usecase/interfaces"
	"strings"
)

var (
	ErrQuartoNaoEncontrado      = errs.NotFound("Quarto não encontrado")
	ErrCamaNaoEncontrada        = errs.NotFound("Cama não encontrada")
	ErrNumeroQuartoDuplicado    = errs.Conflict("Já existe um quarto com este número")
	ErrQuartoComReservas        = errs.Conflict("Quarto possui reservas em aberto")
	ErrDisponibilidadeInvalida  = errs.Validation("Disponibilidade inválida")
	ErrTipoCamaInvalido         = errs.Validation("Tipo de cama inválido")
	ErrIdentificadorObrigatorio = errs.Validation("Identificador é obrigatório")
)

type CriarQuartoInput struct {
	Numero            int
	Capacidade        int
	Tipo              entities.TipoQuarto
	PrecoPorDiaria    float64
	TemFrigobar       bool
	TemCafeDaManha    bool
	TemArCondicionado bool
	TemTV             bool
	Camas             []entities.TipoCama
}

// AtualizarQuartoInput is a partial update: nil fields are left unchanged. A
// non-nil Camas replaces every bed of the room.
type AtualizarQuartoInput struct {
	Numero            *int
	Capacidade        *int
	Tipo              *entities.TipoQuarto
	PrecoPorDiaria    *float64
	TemFrigobar       *bool
	TemCafeDaManha    *bool
	TemArCondicionado *bool
	TemTV             *bool
	Camas             []entities.TipoCama
}

//go:generate mockgen -source=quarto_usecase.go -destination=../adapter/http/handlers/mocks/mock_quarto_usecase.go -package=mocks

// IQuartoUseCase exposes room management operations.
type IQuartoUseCase interface {
	CriarQuarto(ctx context.Context, in CriarQuartoInput) (entities.QuartoData, error)
	AtualizarQuarto(ctx context.Context, id string, in AtualizarQuartoInput) (entities.QuartoData, error)
	AlterarDisponibilidade(ctx context.Context, id string, d entities.Disponibilidade) (entities.QuartoData, error)
	BuscarQuarto(ctx context.Context, id string) (entities.QuartoData, error)
	ListarQuartos(ctx context.Context) ([]entities.QuartoData, error)
	ListarPorDisponibilidade(ctx context.Context, d entities.Disponibilidade) ([]entities.QuartoData, error)
	AdicionarCama(ctx context.Context, id string, tipo entities.TipoCama) (entities.QuartoData, error)
	RemoverCama(ctx context.Context, id, camaID string) (entities.QuartoData, error)
	DeletarQuarto(ctx context.Context, id string) error
}

type QuartoUseCase struct {
	quartos    interfaces.IQuartoRepository
	reservas   interfaces.IReservaRepository
	serializer *Serializer
}

var _ IQuartoUseCase = (*QuartoUseCase)(nil)

func NewQuartoUseCase(quartos interfaces.IQuartoRepository, reservas interfaces.IReservaRepository, serializer *Serializer) *QuartoUseCase {
	return &QuartoUseCase{quartos: quartos, reservas: reservas, serializer: serializer}
}

func (u *QuartoUseCase) CriarQuarto(ctx context.Context, in CriarQuartoInput) (entities.QuartoData, error) {
	return serializar(ctx, u.serializer, func() (entities.QuartoData, error) {
		existe, err := u.quartos.ExisteNumero(ctx, in.Numero, "")
		if err != nil {
			return entities.QuartoData{}, err
		}
		if existe {
			return entities.QuartoData{}, ErrNumeroQuartoDuplicado
		}

		q := entities.NovoQuarto(entities.NovoQuartoParams{
			Numero:            in.Numero,
			Capacidade:        in.Capacidade,
			Tipo:              in.Tipo,
			PrecoPorDiaria:    in.PrecoPorDiaria,
			TemFrigobar:       in.TemFrigobar,
			TemCafeDaManha:    in.TemCafeDaManha,
			TemArCondicionado: in.TemArCondicionado,
			TemTV:             in.TemTV,
			Camas:             novasCamas(in.Camas),
		})
		if err := q.Validar().Err(); err != nil {
			return entities.QuartoData{}, err
		}

		criado, err := u.quartos.Criar(ctx, q)
		if err != nil {
			return entities.QuartoData{}, err
		}
		return criado.ToData(), nil
	})
}

func (u *QuartoUseCase) AtualizarQuarto(ctx context.Context, id string, in AtualizarQuartoInput) (entities.QuartoData, error) {
	return serializar(ctx, u.serializer, func() (entities.QuartoData, error) {
		q, err := u.buscar(ctx, id)
		if err != nil {
			return entities.QuartoData{}, err
		}

		if in.Numero != nil && *in.Numero != q.Numero() {
			existe, err := u.quartos.ExisteNumero(ctx, *in.Numero, q.ID())
			if err != nil {
				return entities.QuartoData{}, err
			}
			if existe {
				return entities.QuartoData{}, ErrNumeroQuartoDuplicado
			}
		}

		params := entities.AtualizarQuartoParams{
			Numero:            in.Numero,
			Capacidade:        in.Capacidade,
			Tipo:              in.Tipo,
			PrecoPorDiaria:    in.PrecoPorDiaria,
			TemFrigobar:       in.TemFrigobar,
			TemCafeDaManha:    in.TemCafeDaManha,
			TemArCondicionado: in.TemArCondicionado,
			TemTV:             in.TemTV,
		}
		if in.Camas != nil {
			params.Camas = novasCamas(in.Camas)
		}
		q.AtualizarDados(params)

		return u.salvar(ctx, q)
	})
}

// AlterarDisponibilidade accepts any availability from any other: unlike the
// booking status, availability is not a guarded state machine.
func (u *QuartoUseCase) AlterarDisponibilidade(ctx context.Context, id string, d entities.Disponibilidade) (entities.QuartoData, error) {
	if !d.Valido() {
		return entities.QuartoData{}, ErrDisponibilidadeInvalida
	}
	return serializar(ctx, u.serializer, func() (entities.QuartoData, error) {
		q, err := u.buscar(ctx, id)
		if err != nil {
			return entities.QuartoData{}, err
		}
		q.AlterarDisponibilidade(d)
		return u.salvar(ctx, q)
	})
}

func (u *QuartoUseCase) BuscarQuarto(ctx context.Context, id string) (entities.QuartoData, error) {
	q, err := u.buscar(ctx, id)
	if err != nil {
		return entities.QuartoData{}, err
	}
	return q.ToData(), nil
}

func (u *QuartoUseCase) ListarQuartos(ctx context.Context) ([]entities.QuartoData, error) {
	quartos, err := u.quartos.BuscarTodos(ctx)
	if err != nil {
		return nil, err
	}
	return quartosData(quartos), nil
}

func (u *QuartoUseCase) ListarPorDisponibilidade(ctx context.Context, d entities.Disponibilidade) ([]entities.QuartoData, error) {
	if !d.Valido() {
		return nil, ErrDisponibilidadeInvalida
	}
	quartos, err := u.quartos.BuscarPorDisponibilidade(ctx, d)
	if err != nil {
		return nil, err
	}
	return quartosData(quartos), nil
}

func (u *QuartoUseCase) AdicionarCama(ctx context.Context, id string, tipo entities.TipoCama) (entities.QuartoData, error) {
	if !tipo.Valido() {
		return entities.QuartoData{}, ErrTipoCamaInvalido
	}
	return serializar(ctx, u.serializer, func() (entities.QuartoData, error) {
		q, err := u.buscar(ctx, id)
		if err != nil {
			return entities.QuartoData{}, err
		}
		q.AdicionarCama(entities.NovaCama(tipo))
		return u.salvar(ctx, q)
	})
}

// RemoverCama fails with a validation error when it would leave the room
// without beds.
func (u *QuartoUseCase) RemoverCama(ctx context.Context, id, camaID string) (entities.QuartoData, error) {
	return serializar(ctx, u.serializer, func() (entities.QuartoData, error) {
		q, err := u.buscar(ctx, id)
		if err != nil {
			return entities.QuartoData{}, err
		}
		if !q.RemoverCama(camaID) {
			return entities.QuartoData{}, ErrCamaNaoEncontrada
		}
		return u.salvar(ctx, q)
	})
}

// DeletarQuarto refuses to remove a room still referenced by a booking that
// has not been finished or cancelled.
func (u *QuartoUseCase) DeletarQuarto(ctx context.Context, id string) error {
	_, err := serializar(ctx, u.serializer, func() (struct{}, error) {
		q, err := u.buscar(ctx, id)
		if err != nil {
			return struct{}{}, err
		}
		reservas, err := u.reservas.BuscarPorQuarto(ctx, q.ID())
		if err != nil {
			return struct{}{}, err
		}
		if algumaEmAberto(reservas) {
			return struct{}{}, ErrQuartoComReservas
		}
		return struct{}{}, u.quartos.Deletar(ctx, q.ID())
	})
	return err
}

func (u *QuartoUseCase) buscar(ctx context.Context, id string) (*entities.Quarto, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrIdentificadorObrigatorio
	}
	q, err := u.quartos.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuartoNaoEncontrado
	}
	return q, nil
}

func (u *QuartoUseCase) salvar(ctx context.Context, q *entities.Quarto) (entities.QuartoData, error) {
	if err := q.Validar().Err(); err != nil {
		return entities.QuartoData{}, err
	}
	salvo, err := u.quartos.Atualizar(ctx, q.ID(), q)
	if err != nil {
		return entities.QuartoData{}, err
	}
	return salvo.ToData(), nil
}

func novasCamas(tipos []entities.TipoCama) []entities.Cama {
	camas := make([]entities.Cama, 0, len(tipos))
	for _, t := range tipos {
		camas = append(camas, entities.NovaCama(t))
	}
	return camas
}

func quartosData(quartos []*entities.Quarto) []entities.QuartoData {
	out := make([]entities.QuartoData, 0, len(quartos))
	for _, q := range quartos {
		out = append(out, q.ToData())
	}
	return out
}

// algumaEmAberto reports whether any booking still holds its room.
func algumaEmAberto(reservas []*entities.Reserva) bool {
	for _, r := range reservas {
		if r.Status() != entities.StatusReservaFinalizada && r.Status() != entities.StatusReservaCancelada {
			return true
		}
	}
	return false
}
