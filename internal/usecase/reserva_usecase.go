package usecase

import (
	"context"
	"fmt"
	"hotel_reservas/internal/domain/entities"
	"hotel_reservas/internal/domain/errs"
	"hotel_reservas/internal/usecase/interfaces"
	"strings"
	"time"
)

var (
	ErrReservaNaoEncontrada  = errs.NotFound("Reserva não encontrada")
	ErrQuartoIndisponivel    = errs.Conflict("Quarto não está disponível para reserva")
	ErrQuartoComReservaAtiva = errs.Conflict("Quarto já possui uma reserva ativa")
	ErrPeriodoInvalido       = errs.Validation("Data de check-out deve ser posterior à data de check-in")
	ErrStatusReservaInvalido = errs.Validation("Status de reserva inválido")
	ErrReservaEmAberto       = errs.InvalidTransition("Apenas reservas finalizadas ou canceladas podem ser removidas")
)

type CriarReservaInput struct {
	HospedeID    string
	QuartoID     string
	DataCheckIn  time.Time
	DataCheckOut time.Time
}

// AtualizarReservaInput changes the stay dates and, optionally, moves the
// booking through the status state machine.
type AtualizarReservaInput struct {
	DataCheckIn  *time.Time
	DataCheckOut *time.Time
	Status       *entities.StatusReserva
}

//go:generate mockgen -source=reserva_usecase.go -destination=../adapter/http/handlers/mocks/mock_reserva_usecase.go -package=mocks

// IReservaUseCase exposes booking operations.
//
// Creating a booking occupies its room; cancelling or checking out releases
// it. Both aggregates are written as a two-step saga: the booking first, the
// room second. When the room write fails the booking write is compensated once
// and the error is returned; nothing is retried.
type IReservaUseCase interface {
	CriarReserva(ctx context.Context, in CriarReservaInput) (entities.ReservaData, error)
	AtualizarReserva(ctx context.Context, id string, in AtualizarReservaInput) (entities.ReservaData, error)
	CancelarReserva(ctx context.Context, id string) (entities.ReservaData, error)
	ConfirmarReserva(ctx context.Context, id string) (entities.ReservaData, error)
	RealizarCheckIn(ctx context.Context, id string) (entities.ReservaData, error)
	RealizarCheckOut(ctx context.Context, id string) (entities.ReservaData, error)
	BuscarReserva(ctx context.Context, id string) (entities.ReservaData, error)
	ListarReservas(ctx context.Context) ([]entities.ReservaData, error)
	ListarAtivas(ctx context.Context) ([]entities.ReservaData, error)
	ListarPorQuarto(ctx context.Context, quartoID string) ([]entities.ReservaData, error)
	ListarPorHospede(ctx context.Context, hospedeID string) ([]entities.ReservaData, error)
	DeletarReserva(ctx context.Context, id string) error
}

type ReservaUseCase struct {
	reservas   interfaces.IReservaRepository
	quartos    interfaces.IQuartoRepository
	hospedes   interfaces.IHospedeRepository
	eventos    interfaces.IReservaEventPublisher
	serializer *Serializer
}

var _ IReservaUseCase = (*ReservaUseCase)(nil)

func NewReservaUseCase(
	reservas interfaces.IReservaRepository,
	quartos interfaces.IQuartoRepository,
	hospedes interfaces.IHospedeRepository,
	eventos interfaces.IReservaEventPublisher,
	serializer *Serializer,
) *ReservaUseCase {
	return &ReservaUseCase{
		reservas:   reservas,
		quartos:    quartos,
		hospedes:   hospedes,
		eventos:    eventos,
		serializer: serializer,
	}
}

func (u *ReservaUseCase) CriarReserva(ctx context.Context, in CriarReservaInput) (entities.ReservaData, error) {
	if !in.DataCheckOut.After(in.DataCheckIn) {
		return entities.ReservaData{}, ErrPeriodoInvalido
	}

	criada, err := serializar(ctx, u.serializer, func() (entities.ReservaData, error) {
		hospede, err := u.hospedes.BuscarPorID(ctx, strings.TrimSpace(in.HospedeID))
		if err != nil {
			return entities.ReservaData{}, err
		}
		if hospede == nil {
			return entities.ReservaData{}, ErrHospedeNaoEncontrado
		}

		quarto, err := u.quartos.BuscarPorID(ctx, strings.TrimSpace(in.QuartoID))
		if err != nil {
			return entities.ReservaData{}, err
		}
		if quarto == nil {
			return entities.ReservaData{}, ErrQuartoNaoEncontrado
		}
		if !quarto.PodeSerReservado() {
			return entities.ReservaData{}, ErrQuartoIndisponivel
		}

		ativa, err := u.reservas.ExisteReservaAtivaQuarto(ctx, quarto.ID())
		if err != nil {
			return entities.ReservaData{}, err
		}
		if ativa {
			return entities.ReservaData{}, ErrQuartoComReservaAtiva
		}

		diarias := entities.CalcularDiarias(in.DataCheckIn, in.DataCheckOut)
		r := entities.NovaReserva(entities.NovaReservaParams{
			QuartoID:     quarto.ID(),
			HospedeID:    hospede.ID(),
			DataCheckIn:  in.DataCheckIn,
			DataCheckOut: in.DataCheckOut,
			ValorTotal:   quarto.CalcularValorTotal(diarias),
		})
		if err := r.Validar().Err(); err != nil {
			return entities.ReservaData{}, err
		}

		salva, err := u.reservas.Criar(ctx, r)
		if err != nil {
			return entities.ReservaData{}, err
		}

		quarto.AlterarDisponibilidade(entities.DisponibilidadeOcupado)
		if _, err := u.quartos.Atualizar(ctx, quarto.ID(), quarto); err != nil {
			causa := fmt.Errorf("ocupar quarto %s: %w", quarto.ID(), err)
			return entities.ReservaData{}, compensado(causa, u.reservas.Deletar(ctx, salva.ID()))
		}
		return salva.ToData(), nil
	})
	if err != nil {
		return entities.ReservaData{}, err
	}

	u.eventos.Publicar(ctx, entities.NovoReservaEvento(entities.EventoReservaCriada, criada))
	return criada, nil
}

// AtualizarReserva only touches bookings that are still alterable. Changing
// either date recomputes the total from the room's current nightly price.
func (u *ReservaUseCase) AtualizarReserva(ctx context.Context, id string, in AtualizarReservaInput) (entities.ReservaData, error) {
	if in.Status != nil && !in.Status.Valido() {
		return entities.ReservaData{}, ErrStatusReservaInvalido
	}

	var evento entities.TipoEventoReserva
	atualizada, err := serializar(ctx, u.serializer, func() (entities.ReservaData, error) {
		r, err := u.buscar(ctx, id)
		if err != nil {
			return entities.ReservaData{}, err
		}
		if !r.PodeSerAlterada() {
			return entities.ReservaData{}, entities.ErrReservaNaoAlteravel
		}
		anterior := r.ToData()

		params := entities.AtualizarReservaParams{DataCheckIn: in.DataCheckIn, DataCheckOut: in.DataCheckOut}
		if in.DataCheckIn != nil || in.DataCheckOut != nil {
			checkIn, checkOut := r.DataCheckIn(), r.DataCheckOut()
			if in.DataCheckIn != nil {
				checkIn = *in.DataCheckIn
			}
			if in.DataCheckOut != nil {
				checkOut = *in.DataCheckOut
			}
			if !checkOut.After(checkIn) {
				return entities.ReservaData{}, ErrPeriodoInvalido
			}

			quarto, err := u.quartos.BuscarPorID(ctx, r.QuartoID())
			if err != nil {
				return entities.ReservaData{}, err
			}
			if quarto == nil {
				return entities.ReservaData{}, ErrQuartoNaoEncontrado
			}
			valor := quarto.CalcularValorTotal(entities.CalcularDiarias(checkIn, checkOut))
			params.ValorTotal = &valor
		}

		if err := r.AtualizarDados(params); err != nil {
			return entities.ReservaData{}, err
		}
		if err := r.Validar().Err(); err != nil {
			return entities.ReservaData{}, err
		}

		evento = entities.EventoReservaAtualizada
		if in.Status != nil && *in.Status != r.Status() {
			if err := r.TransicionarPara(*in.Status); err != nil {
				return entities.ReservaData{}, err
			}
			evento = eventoDoStatus(r.Status())
		}

		return u.salvar(ctx, anterior, r)
	})
	if err != nil {
		return entities.ReservaData{}, err
	}

	u.eventos.Publicar(ctx, entities.NovoReservaEvento(evento, atualizada))
	return atualizada, nil
}

func (u *ReservaUseCase) CancelarReserva(ctx context.Context, id string) (entities.ReservaData, error) {
	return u.transicionar(ctx, id, (*entities.Reserva).Cancelar)
}

func (u *ReservaUseCase) ConfirmarReserva(ctx context.Context, id string) (entities.ReservaData, error) {
	return u.transicionar(ctx, id, (*entities.Reserva).Confirmar)
}

func (u *ReservaUseCase) RealizarCheckIn(ctx context.Context, id string) (entities.ReservaData, error) {
	return u.transicionar(ctx, id, (*entities.Reserva).CheckIn)
}

func (u *ReservaUseCase) RealizarCheckOut(ctx context.Context, id string) (entities.ReservaData, error) {
	return u.transicionar(ctx, id, (*entities.Reserva).CheckOut)
}

func (u *ReservaUseCase) transicionar(ctx context.Context, id string, transicao func(*entities.Reserva) error) (entities.ReservaData, error) {
	salva, err := serializar(ctx, u.serializer, func() (entities.ReservaData, error) {
		r, err := u.buscar(ctx, id)
		if err != nil {
			return entities.ReservaData{}, err
		}
		anterior := r.ToData()
		if err := transicao(r); err != nil {
			return entities.ReservaData{}, err
		}
		return u.salvar(ctx, anterior, r)
	})
	if err != nil {
		return entities.ReservaData{}, err
	}

	u.eventos.Publicar(ctx, entities.NovoReservaEvento(eventoDoStatus(salva.Status), salva))
	return salva, nil
}

// salvar persists r. When r has just reached a status that frees its room
// (CANCELADA or FINALIZADA) the room is released; if that fails the booking
// is restored to anterior. A booking becoming active must be the only active
// one of its room.
func (u *ReservaUseCase) salvar(ctx context.Context, anterior entities.ReservaData, r *entities.Reserva) (entities.ReservaData, error) {
	if r.Status().Ativa() && !anterior.Status.Ativa() {
		ativa, err := u.reservas.ExisteReservaAtivaQuarto(ctx, r.QuartoID())
		if err != nil {
			return entities.ReservaData{}, err
		}
		if ativa {
			return entities.ReservaData{}, ErrQuartoComReservaAtiva
		}
	}

	salva, err := u.reservas.Atualizar(ctx, r.ID(), r)
	if err != nil {
		return entities.ReservaData{}, err
	}

	if !liberaQuarto(anterior.Status, salva.Status()) {
		return salva.ToData(), nil
	}
	if err := u.liberarQuarto(ctx, salva.QuartoID()); err != nil {
		causa := fmt.Errorf("liberar quarto %s: %w", salva.QuartoID(), err)
		_, falha := u.reservas.Atualizar(ctx, anterior.ID, entities.ReservaFromData(anterior))
		return entities.ReservaData{}, compensado(causa, falha)
	}
	return salva.ToData(), nil
}

// liberarQuarto sets the room back to LIVRE. A room deleted in the meantime
// has nothing left to release.
func (u *ReservaUseCase) liberarQuarto(ctx context.Context, quartoID string) error {
	quarto, err := u.quartos.BuscarPorID(ctx, quartoID)
	if err != nil {
		return err
	}
	if quarto == nil {
		return nil
	}
	quarto.AlterarDisponibilidade(entities.DisponibilidadeLivre)
	_, err = u.quartos.Atualizar(ctx, quarto.ID(), quarto)
	return err
}

func (u *ReservaUseCase) BuscarReserva(ctx context.Context, id string) (entities.ReservaData, error) {
	r, err := u.buscar(ctx, id)
	if err != nil {
		return entities.ReservaData{}, err
	}
	return r.ToData(), nil
}

func (u *ReservaUseCase) ListarReservas(ctx context.Context) ([]entities.ReservaData, error) {
	return reservasData(u.reservas.BuscarTodas(ctx))
}

func (u *ReservaUseCase) ListarAtivas(ctx context.Context) ([]entities.ReservaData, error) {
	return reservasData(u.reservas.BuscarAtivas(ctx))
}

func (u *ReservaUseCase) ListarPorQuarto(ctx context.Context, quartoID string) ([]entities.ReservaData, error) {
	quarto, err := u.quartos.BuscarPorID(ctx, strings.TrimSpace(quartoID))
	if err != nil {
		return nil, err
	}
	if quarto == nil {
		return nil, ErrQuartoNaoEncontrado
	}
	return reservasData(u.reservas.BuscarPorQuarto(ctx, quarto.ID()))
}

func (u *ReservaUseCase) ListarPorHospede(ctx context.Context, hospedeID string) ([]entities.ReservaData, error) {
	hospede, err := u.hospedes.BuscarPorID(ctx, strings.TrimSpace(hospedeID))
	if err != nil {
		return nil, err
	}
	if hospede == nil {
		return nil, ErrHospedeNaoEncontrado
	}
	return reservasData(u.reservas.BuscarPorHospede(ctx, hospede.ID()))
}

// DeletarReserva removes a finished or cancelled booking. Bookings that still
// hold their room must be cancelled first.
func (u *ReservaUseCase) DeletarReserva(ctx context.Context, id string) error {
	_, err := serializar(ctx, u.serializer, func() (struct{}, error) {
		r, err := u.buscar(ctx, id)
		if err != nil {
			return struct{}{}, err
		}
		if algumaEmAberto([]*entities.Reserva{r}) {
			return struct{}{}, ErrReservaEmAberto
		}
		return struct{}{}, u.reservas.Deletar(ctx, r.ID())
	})
	return err
}

func (u *ReservaUseCase) buscar(ctx context.Context, id string) (*entities.Reserva, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrIdentificadorObrigatorio
	}
	r, err := u.reservas.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrReservaNaoEncontrada
	}
	return r, nil
}

func liberaQuarto(de, para entities.StatusReserva) bool {
	if de == para {
		return false
	}
	return para == entities.StatusReservaCancelada || para == entities.StatusReservaFinalizada
}

func eventoDoStatus(s entities.StatusReserva) entities.TipoEventoReserva {
	switch s {
	case entities.StatusReservaConfirmada:
		return entities.EventoReservaConfirmada
	case entities.StatusReservaEmAndamento:
		return entities.EventoReservaCheckIn
	case entities.StatusReservaFinalizada:
		return entities.EventoReservaCheckOut
	case entities.StatusReservaCancelada:
		return entities.EventoReservaCancelada
	default:
		return entities.EventoReservaAtualizada
	}
}

func reservasData(reservas []*entities.Reserva, err error) ([]entities.ReservaData, error) {
	if err != nil {
		return nil, err
	}
	out := make([]entities.ReservaData, 0, len(reservas))
	for _, r := range reservas {
		out = append(out, r.ToData())
	}
	return out, nil
}
