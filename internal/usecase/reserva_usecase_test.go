package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hotel_reservas/internal/adapter/persistence/memory"
	"hotel_reservas/internal/domain/entities"
	"hotel_reservas/internal/domain/errs"
	mock_interfaces "hotel_reservas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func dia(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

type hotel struct {
	quartos  *QuartoUseCase
	hospedes *HospedeUseCase
	reservas *ReservaUseCase

	quartoRepo  *memory.QuartoRepository
	reservaRepo *memory.ReservaRepository
}

func newHotel(t *testing.T, eventos *mock_interfaces.MockIReservaEventPublisher) hotel {
	t.Helper()
	quartos := memory.NewQuartoRepository()
	hospedes := memory.NewHospedeRepository()
	reservas := memory.NewReservaRepository()
	serializer := NewSerializer()
	return hotel{
		quartos:     NewQuartoUseCase(quartos, reservas, serializer),
		hospedes:    NewHospedeUseCase(hospedes, reservas, serializer),
		reservas:    NewReservaUseCase(reservas, quartos, hospedes, eventos, serializer),
		quartoRepo:  quartos,
		reservaRepo: reservas,
	}
}

func silencioso(t *testing.T) *mock_interfaces.MockIReservaEventPublisher {
	ctrl := gomock.NewController(t)
	eventos := mock_interfaces.NewMockIReservaEventPublisher(ctrl)
	eventos.EXPECT().Publicar(gomock.Any(), gomock.Any()).AnyTimes()
	return eventos
}

func (h hotel) prepararQuartoEHospede(t *testing.T) (entities.QuartoData, entities.HospedeData) {
	t.Helper()
	ctx := context.Background()
	q, err := h.quartos.CriarQuarto(ctx, quarto101())
	if err != nil {
		t.Fatalf("unexpected error creating room: %v", err)
	}
	g, err := h.hospedes.CriarHospede(ctx, joao())
	if err != nil {
		t.Fatalf("unexpected error creating guest: %v", err)
	}
	return q, g
}

func TestReservaUseCase_FluxoCompleto(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	eventos := mock_interfaces.NewMockIReservaEventPublisher(ctrl)
	h := newHotel(t, eventos)
	q, g := h.prepararQuartoEHospede(t)

	var publicados []entities.TipoEventoReserva
	eventos.EXPECT().Publicar(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e entities.ReservaEvento) {
		publicados = append(publicados, e.Tipo)
	}).Times(2)

	r, err := h.reservas.CriarReserva(ctx, CriarReservaInput{
		HospedeID:    g.ID,
		QuartoID:     q.ID,
		DataCheckIn:  dia("2024-02-15"),
		DataCheckOut: dia("2024-02-18"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ValorTotal != 450 || r.Status != entities.StatusReservaPendente {
		t.Fatalf("unexpected booking: %+v", r)
	}
	if got, _ := h.quartos.BuscarQuarto(ctx, q.ID); got.Disponibilidade != entities.DisponibilidadeOcupado {
		t.Fatalf("expected room OCUPADO, got %s", got.Disponibilidade)
	}

	cancelada, err := h.reservas.CancelarReserva(ctx, r.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cancelada.Status != entities.StatusReservaCancelada {
		t.Fatalf("expected CANCELADA, got %s", cancelada.Status)
	}
	if got, _ := h.quartos.BuscarQuarto(ctx, q.ID); got.Disponibilidade != entities.DisponibilidadeLivre {
		t.Fatalf("expected room LIVRE, got %s", got.Disponibilidade)
	}

	if len(publicados) != 2 || publicados[0] != entities.EventoReservaCriada || publicados[1] != entities.EventoReservaCancelada {
		t.Fatalf("unexpected events: %v", publicados)
	}
}

func TestReservaUseCase_CicloDeEstadia(t *testing.T) {
	ctx := context.Background()
	h := newHotel(t, silencioso(t))
	q, g := h.prepararQuartoEHospede(t)

	r, _ := h.reservas.CriarReserva(ctx, CriarReservaInput{HospedeID: g.ID, QuartoID: q.ID, DataCheckIn: dia("2024-03-01"), DataCheckOut: dia("2024-03-03")})

	if _, err := h.reservas.RealizarCheckIn(ctx, r.ID); !errors.Is(err, entities.ErrReservaSemCheckIn) {
		t.Fatalf("expected ErrReservaSemCheckIn, got %v", err)
	}

	steps := []struct {
		name string
		do   func(context.Context, string) (entities.ReservaData, error)
		want entities.StatusReserva
	}{
		{"confirmar", h.reservas.ConfirmarReserva, entities.StatusReservaConfirmada},
		{"checkin", h.reservas.RealizarCheckIn, entities.StatusReservaEmAndamento},
		{"checkout", h.reservas.RealizarCheckOut, entities.StatusReservaFinalizada},
	}
	for _, s := range steps {
		got, err := s.do(ctx, r.ID)
		if err != nil || got.Status != s.want {
			t.Fatalf("%s: expected %s, got %+v (%v)", s.name, s.want, got, err)
		}
	}

	if got, _ := h.quartos.BuscarQuarto(ctx, q.ID); got.Disponibilidade != entities.DisponibilidadeLivre {
		t.Fatalf("check-out must release the room, got %s", got.Disponibilidade)
	}
	if _, err := h.reservas.CancelarReserva(ctx, r.ID); !errors.Is(err, entities.ErrReservaNaoCancelavel) {
		t.Fatalf("expected ErrReservaNaoCancelavel, got %v", err)
	}
	if err := h.reservas.DeletarReserva(ctx, r.ID); err != nil {
		t.Fatalf("finished booking must be deletable, got %v", err)
	}
}

func TestReservaUseCase_ReservaAtivaUnicaPorQuarto(t *testing.T) {
	ctx := context.Background()

	// Room freed by hand while booking A is still pending lets booking B in.
	preparar := func(t *testing.T) (hotel, entities.QuartoData, entities.ReservaData, entities.ReservaData) {
		h := newHotel(t, silencioso(t))
		q, g := h.prepararQuartoEHospede(t)
		in := CriarReservaInput{HospedeID: g.ID, QuartoID: q.ID, DataCheckIn: dia("2024-02-15"), DataCheckOut: dia("2024-02-18")}

		a, err := h.reservas.CriarReserva(ctx, in)
		if err != nil {
			t.Fatalf("unexpected error creating A: %v", err)
		}
		if _, err := h.quartos.AlterarDisponibilidade(ctx, q.ID, entities.DisponibilidadeLivre); err != nil {
			t.Fatalf("unexpected error freeing room: %v", err)
		}
		b, err := h.reservas.CriarReserva(ctx, in)
		if err != nil {
			t.Fatalf("unexpected error creating B: %v", err)
		}
		return h, q, a, b
	}

	t.Run("second confirmation is rejected", func(t *testing.T) {
		h, q, a, b := preparar(t)

		if _, err := h.reservas.ConfirmarReserva(ctx, a.ID); err != nil {
			t.Fatalf("unexpected error confirming A: %v", err)
		}
		if _, err := h.reservas.ConfirmarReserva(ctx, b.ID); !errors.Is(err, ErrQuartoComReservaAtiva) {
			t.Fatalf("expected ErrQuartoComReservaAtiva, got %v", err)
		}
		if errs.KindOf(ErrQuartoComReservaAtiva) != errs.KindConflict {
			t.Fatalf("expected conflict kind")
		}

		got, _ := h.reservas.BuscarReserva(ctx, b.ID)
		if got.Status != entities.StatusReservaPendente {
			t.Fatalf("rejected booking must stay PENDENTE, got %s", got.Status)
		}
		ativas, _ := h.reservas.ListarPorQuarto(ctx, q.ID)
		n := 0
		for _, r := range ativas {
			if r.Status.Ativa() {
				n++
			}
		}
		if n != 1 {
			t.Fatalf("expected exactly 1 active booking for the room, got %d", n)
		}
	})

	t.Run("status update path is guarded too", func(t *testing.T) {
		h, _, a, b := preparar(t)
		confirmada := entities.StatusReservaConfirmada

		if _, err := h.reservas.AtualizarReserva(ctx, a.ID, AtualizarReservaInput{Status: &confirmada}); err != nil {
			t.Fatalf("unexpected error confirming A: %v", err)
		}
		if _, err := h.reservas.AtualizarReserva(ctx, b.ID, AtualizarReservaInput{Status: &confirmada}); !errors.Is(err, ErrQuartoComReservaAtiva) {
			t.Fatalf("expected ErrQuartoComReservaAtiva, got %v", err)
		}
	})

	t.Run("check-in of the active booking still works", func(t *testing.T) {
		h, _, a, _ := preparar(t)

		if _, err := h.reservas.ConfirmarReserva(ctx, a.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, err := h.reservas.RealizarCheckIn(ctx, a.ID); err != nil || got.Status != entities.StatusReservaEmAndamento {
			t.Fatalf("expected EM_ANDAMENTO, got %+v (%v)", got, err)
		}
	})
}

func TestReservaUseCase_CriarReserva(t *testing.T) {
	ctx := context.Background()

	t.Run("checkout not after checkin fails before any lookup", func(t *testing.T) {
		uc := NewReservaUseCase(nil, nil, nil, nil, NewSerializer())
		for _, out := range []time.Time{dia("2024-02-15"), dia("2024-02-14")} {
			_, err := uc.CriarReserva(ctx, CriarReservaInput{DataCheckIn: dia("2024-02-15"), DataCheckOut: out})
			if !errors.Is(err, ErrPeriodoInvalido) || !errors.Is(err, errs.ErrValidation) {
				t.Fatalf("expected ErrPeriodoInvalido, got %v", err)
			}
		}
	})

	t.Run("guest not found", func(t *testing.T) {
		h := newHotel(t, silencioso(t))
		q, _ := h.prepararQuartoEHospede(t)
		_, err := h.reservas.CriarReserva(ctx, CriarReservaInput{HospedeID: "missing", QuartoID: q.ID, DataCheckIn: dia("2024-02-15"), DataCheckOut: dia("2024-02-18")})
		if !errors.Is(err, ErrHospedeNaoEncontrado) {
			t.Fatalf("expected ErrHospedeNaoEncontrado, got %v", err)
		}
	})

	t.Run("room not found", func(t *testing.T) {
		h := newHotel(t, silencioso(t))
		_, g := h.prepararQuartoEHospede(t)
		_, err := h.reservas.CriarReserva(ctx, CriarReservaInput{HospedeID: g.ID, QuartoID: "missing", DataCheckIn: dia("2024-02-15"), DataCheckOut: dia("2024-02-18")})
		if !errors.Is(err, ErrQuartoNaoEncontrado) {
			t.Fatalf("expected ErrQuartoNaoEncontrado, got %v", err)
		}
	})

	t.Run("room not free", func(t *testing.T) {
		h := newHotel(t, silencioso(t))
		q, g := h.prepararQuartoEHospede(t)
		_, _ = h.quartos.AlterarDisponibilidade(ctx, q.ID, entities.DisponibilidadeManutencao)

		_, err := h.reservas.CriarReserva(ctx, CriarReservaInput{HospedeID: g.ID, QuartoID: q.ID, DataCheckIn: dia("2024-02-15"), DataCheckOut: dia("2024-02-18")})
		if !errors.Is(err, ErrQuartoIndisponivel) || !errors.Is(err, errs.ErrConflict) {
			t.Fatalf("expected ErrQuartoIndisponivel, got %v", err)
		}
		if todas, _ := h.reservas.ListarReservas(ctx); len(todas) != 0 {
			t.Fatalf("no booking must be stored")
		}
	})

	t.Run("room with active booking", func(t *testing.T) {
		h := newHotel(t, silencioso(t))
		q, g := h.prepararQuartoEHospede(t)
		ativa := entities.NovaReserva(entities.NovaReservaParams{QuartoID: q.ID, HospedeID: g.ID, ValorTotal: 1})
		_ = ativa.Confirmar()
		_, _ = h.reservaRepo.Criar(ctx, ativa)

		_, err := h.reservas.CriarReserva(ctx, CriarReservaInput{HospedeID: g.ID, QuartoID: q.ID, DataCheckIn: dia("2024-02-15"), DataCheckOut: dia("2024-02-18")})
		if !errors.Is(err, ErrQuartoComReservaAtiva) {
			t.Fatalf("expected ErrQuartoComReservaAtiva, got %v", err)
		}
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		h := newHotel(t, silencioso(t))
		q, g := h.prepararQuartoEHospede(t)
		r, err := h.reservas.CriarReserva(ctx, CriarReservaInput{HospedeID: g.ID, QuartoID: q.ID, DataCheckIn: dia("2024-02-15"), DataCheckOut: dia("2024-02-16").Add(3 * time.Hour)})
		if err != nil || r.ValorTotal != 300 {
			t.Fatalf("expected 2 nights (300), got %+v (%v)", r, err)
		}
	})

	t.Run("concurrent bookings for one room admit exactly one", func(t *testing.T) {
		h := newHotel(t, silencioso(t))
		q, g := h.prepararQuartoEHospede(t)

		var wg sync.WaitGroup
		results := make(chan error, 20)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := h.reservas.CriarReserva(ctx, CriarReservaInput{HospedeID: g.ID, QuartoID: q.ID, DataCheckIn: dia("2024-02-15"), DataCheckOut: dia("2024-02-18")})
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		ok := 0
		for err := range results {
			if err == nil {
				ok++
			} else if !errors.Is(err, errs.ErrConflict) {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if todas, _ := h.reservas.ListarReservas(ctx); ok != 1 || len(todas) != 1 {
			t.Fatalf("expected exactly one booking, got %d successes and %d bookings", ok, len(todas))
		}
	})
}

func TestReservaUseCase_Saga(t *testing.T) {
	ctx := context.Background()
	quarto := entities.NovoQuarto(entities.NovoQuartoParams{
		Numero: 101, Capacidade: 2, Tipo: entities.TipoQuartoBasico, PrecoPorDiaria: 150,
		Camas: []entities.Cama{entities.NovaCama(entities.TipoCamaSolteiro)},
	})
	hospede := entities.NovoHospede("João", "Silva", mustCPF(t, "52998224725"), mustEmail(t, "joao@exemplo.com"))

	type mocks struct {
		reservas *mock_interfaces.MockIReservaRepository
		quartos  *mock_interfaces.MockIQuartoRepository
		hospedes *mock_interfaces.MockIHospedeRepository
		eventos  *mock_interfaces.MockIReservaEventPublisher
	}
	setup := func(t *testing.T) (*ReservaUseCase, mocks) {
		ctrl := gomock.NewController(t)
		m := mocks{
			reservas: mock_interfaces.NewMockIReservaRepository(ctrl),
			quartos:  mock_interfaces.NewMockIQuartoRepository(ctrl),
			hospedes: mock_interfaces.NewMockIHospedeRepository(ctrl),
			eventos:  mock_interfaces.NewMockIReservaEventPublisher(ctrl),
		}
		return NewReservaUseCase(m.reservas, m.quartos, m.hospedes, m.eventos, NewSerializer()), m
	}
	input := CriarReservaInput{HospedeID: hospede.ID(), QuartoID: quarto.ID(), DataCheckIn: dia("2024-02-15"), DataCheckOut: dia("2024-02-18")}

	t.Run("room write failure deletes the booking", func(t *testing.T) {
		uc, m := setup(t)
		var criadaID string

		m.hospedes.EXPECT().BuscarPorID(gomock.Any(), hospede.ID()).Return(hospede, nil)
		m.quartos.EXPECT().BuscarPorID(gomock.Any(), quarto.ID()).Return(entities.QuartoFromData(quarto.ToData()), nil)
		m.reservas.EXPECT().ExisteReservaAtivaQuarto(gomock.Any(), quarto.ID()).Return(false, nil)
		m.reservas.EXPECT().Criar(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r *entities.Reserva) (*entities.Reserva, error) {
				criadaID = r.ID()
				return r, nil
			},
		)
		m.quartos.EXPECT().Atualizar(gomock.Any(), quarto.ID(), gomock.Any()).Return(nil, errors.New("dynamo down"))
		m.reservas.EXPECT().Deletar(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) error {
				if id != criadaID {
					t.Fatalf("expected compensation of %s, got %s", criadaID, id)
				}
				return nil
			},
		)
		m.eventos.EXPECT().Publicar(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.CriarReserva(ctx, input)
		if err == nil || errors.Is(err, errs.ErrConflict) {
			t.Fatalf("expected storage error, got %v", err)
		}
	})

	t.Run("failed compensation reports both causes", func(t *testing.T) {
		uc, m := setup(t)
		ocupar := errors.New("dynamo down")
		desfazer := errors.New("delete failed")

		m.hospedes.EXPECT().BuscarPorID(gomock.Any(), gomock.Any()).Return(hospede, nil)
		m.quartos.EXPECT().BuscarPorID(gomock.Any(), gomock.Any()).Return(entities.QuartoFromData(quarto.ToData()), nil)
		m.reservas.EXPECT().ExisteReservaAtivaQuarto(gomock.Any(), gomock.Any()).Return(false, nil)
		m.reservas.EXPECT().Criar(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r *entities.Reserva) (*entities.Reserva, error) { return r, nil },
		)
		m.quartos.EXPECT().Atualizar(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ocupar)
		m.reservas.EXPECT().Deletar(gomock.Any(), gomock.Any()).Return(desfazer)

		_, err := uc.CriarReserva(ctx, input)
		if !errors.Is(err, ocupar) || !errors.Is(err, desfazer) {
			t.Fatalf("expected both causes, got %v", err)
		}
	})

	t.Run("release failure restores the previous booking", func(t *testing.T) {
		uc, m := setup(t)
		reserva := entities.NovaReserva(entities.NovaReservaParams{
			QuartoID: quarto.ID(), HospedeID: hospede.ID(), DataCheckIn: input.DataCheckIn, DataCheckOut: input.DataCheckOut, ValorTotal: 450,
		})
		_ = reserva.Confirmar()
		anterior := reserva.ToData()

		m.reservas.EXPECT().BuscarPorID(gomock.Any(), reserva.ID()).Return(entities.ReservaFromData(anterior), nil)
		gomock.InOrder(
			m.reservas.EXPECT().Atualizar(gomock.Any(), reserva.ID(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, r *entities.Reserva) (*entities.Reserva, error) {
					if r.Status() != entities.StatusReservaCancelada {
						t.Fatalf("expected CANCELADA write, got %s", r.Status())
					}
					return r, nil
				},
			),
			m.reservas.EXPECT().Atualizar(gomock.Any(), reserva.ID(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, r *entities.Reserva) (*entities.Reserva, error) {
					if r.ToData() != anterior {
						t.Fatalf("expected previous snapshot restored, got %+v", r.ToData())
					}
					return r, nil
				},
			),
		)
		m.quartos.EXPECT().BuscarPorID(gomock.Any(), quarto.ID()).Return(entities.QuartoFromData(quarto.ToData()), nil)
		m.quartos.EXPECT().Atualizar(gomock.Any(), quarto.ID(), gomock.Any()).Return(nil, errors.New("dynamo down"))
		m.eventos.EXPECT().Publicar(gomock.Any(), gomock.Any()).Times(0)

		if _, err := uc.CancelarReserva(ctx, reserva.ID()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("events carry the booking", func(t *testing.T) {
		uc, m := setup(t)
		reserva := entities.NovaReserva(entities.NovaReservaParams{
			QuartoID: quarto.ID(), HospedeID: hospede.ID(), DataCheckIn: input.DataCheckIn, DataCheckOut: input.DataCheckOut, ValorTotal: 450,
		})

		m.reservas.EXPECT().BuscarPorID(gomock.Any(), reserva.ID()).Return(reserva, nil)
		m.reservas.EXPECT().ExisteReservaAtivaQuarto(gomock.Any(), quarto.ID()).Return(false, nil)
		m.reservas.EXPECT().Atualizar(gomock.Any(), reserva.ID(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, r *entities.Reserva) (*entities.Reserva, error) { return r, nil },
		)
		m.eventos.EXPECT().Publicar(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e entities.ReservaEvento) {
			if e.Tipo != entities.EventoReservaConfirmada || e.ReservaID != reserva.ID() || e.QuartoID != quarto.ID() ||
				e.HospedeID != hospede.ID() || e.Status != entities.StatusReservaConfirmada || e.Timestamp.IsZero() {
				t.Fatalf("unexpected event: %+v", e)
			}
		})

		if _, err := uc.ConfirmarReserva(ctx, reserva.ID()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestReservaUseCase_AtualizarReserva(t *testing.T) {
	ctx := context.Background()

	criar := func(t *testing.T) (hotel, entities.QuartoData, entities.ReservaData) {
		h := newHotel(t, silencioso(t))
		q, g := h.prepararQuartoEHospede(t)
		r, err := h.reservas.CriarReserva(ctx, CriarReservaInput{HospedeID: g.ID, QuartoID: q.ID, DataCheckIn: dia("2024-02-15"), DataCheckOut: dia("2024-02-18")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return h, q, r
	}

	t.Run("new dates recompute total", func(t *testing.T) {
		h, _, r := criar(t)
		out := dia("2024-02-20")

		got, err := h.reservas.AtualizarReserva(ctx, r.ID, AtualizarReservaInput{DataCheckOut: &out})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ValorTotal != 750 || !got.DataCheckOut.Equal(out) || !got.DataCheckIn.Equal(r.DataCheckIn) {
			t.Fatalf("unexpected booking: %+v", got)
		}
	})

	t.Run("inverted dates", func(t *testing.T) {
		h, _, r := criar(t)
		in := dia("2024-02-19")

		_, err := h.reservas.AtualizarReserva(ctx, r.ID, AtualizarReservaInput{DataCheckIn: &in})
		if !errors.Is(err, ErrPeriodoInvalido) {
			t.Fatalf("expected ErrPeriodoInvalido, got %v", err)
		}
	})

	t.Run("status goes through the state machine", func(t *testing.T) {
		h, _, r := criar(t)
		finalizada := entities.StatusReservaFinalizada

		if _, err := h.reservas.AtualizarReserva(ctx, r.ID, AtualizarReservaInput{Status: &finalizada}); !errors.Is(err, errs.ErrInvalidTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
		if got, _ := h.reservas.BuscarReserva(ctx, r.ID); got.Status != entities.StatusReservaPendente {
			t.Fatalf("failed update must not be stored, got %s", got.Status)
		}
	})

	t.Run("cancel through update releases the room", func(t *testing.T) {
		h, q, r := criar(t)
		cancelada := entities.StatusReservaCancelada

		got, err := h.reservas.AtualizarReserva(ctx, r.ID, AtualizarReservaInput{Status: &cancelada})
		if err != nil || got.Status != entities.StatusReservaCancelada {
			t.Fatalf("unexpected result: %+v (%v)", got, err)
		}
		if quarto, _ := h.quartos.BuscarQuarto(ctx, q.ID); quarto.Disponibilidade != entities.DisponibilidadeLivre {
			t.Fatalf("expected room LIVRE, got %s", quarto.Disponibilidade)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		h, _, r := criar(t)
		s := entities.StatusReserva("ATIVA")
		if _, err := h.reservas.AtualizarReserva(ctx, r.ID, AtualizarReservaInput{Status: &s}); !errors.Is(err, ErrStatusReservaInvalido) {
			t.Fatalf("expected ErrStatusReservaInvalido, got %v", err)
		}
	})

	t.Run("not alterable", func(t *testing.T) {
		h, _, r := criar(t)
		_, _ = h.reservas.CancelarReserva(ctx, r.ID)
		out := dia("2024-02-25")

		if _, err := h.reservas.AtualizarReserva(ctx, r.ID, AtualizarReservaInput{DataCheckOut: &out}); !errors.Is(err, entities.ErrReservaNaoAlteravel) {
			t.Fatalf("expected ErrReservaNaoAlteravel, got %v", err)
		}
	})
}

func TestReservaUseCase_Listagens(t *testing.T) {
	ctx := context.Background()
	h := newHotel(t, silencioso(t))
	q, g := h.prepararQuartoEHospede(t)
	r, _ := h.reservas.CriarReserva(ctx, CriarReservaInput{HospedeID: g.ID, QuartoID: q.ID, DataCheckIn: dia("2024-02-15"), DataCheckOut: dia("2024-02-18")})

	if ativas, _ := h.reservas.ListarAtivas(ctx); len(ativas) != 0 {
		t.Fatalf("pending booking is not active")
	}
	_, _ = h.reservas.ConfirmarReserva(ctx, r.ID)
	if ativas, _ := h.reservas.ListarAtivas(ctx); len(ativas) != 1 {
		t.Fatalf("expected 1 active booking")
	}

	if porQuarto, err := h.reservas.ListarPorQuarto(ctx, q.ID); err != nil || len(porQuarto) != 1 {
		t.Fatalf("unexpected bookings for room: %v (%v)", porQuarto, err)
	}
	if porHospede, err := h.reservas.ListarPorHospede(ctx, g.ID); err != nil || len(porHospede) != 1 {
		t.Fatalf("unexpected bookings for guest: %v (%v)", porHospede, err)
	}
	if _, err := h.reservas.ListarPorQuarto(ctx, "missing"); !errors.Is(err, ErrQuartoNaoEncontrado) {
		t.Fatalf("expected ErrQuartoNaoEncontrado, got %v", err)
	}
	if _, err := h.reservas.ListarPorHospede(ctx, "missing"); !errors.Is(err, ErrHospedeNaoEncontrado) {
		t.Fatalf("expected ErrHospedeNaoEncontrado, got %v", err)
	}
	if err := h.reservas.DeletarReserva(ctx, r.ID); !errors.Is(err, ErrReservaEmAberto) {
		t.Fatalf("expected ErrReservaEmAberto, got %v", err)
	}
	if _, err := h.reservas.BuscarReserva(ctx, "missing"); !errors.Is(err, ErrReservaNaoEncontrada) {
		t.Fatalf("expected ErrReservaNaoEncontrada, got %v", err)
	}
}
