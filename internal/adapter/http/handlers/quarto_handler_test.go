package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"hotel_reservas/internal/adapter/http/handlers/mocks"
	"hotel_reservas/internal/domain/entities"
	"hotel_reservas/internal/usecase"
	"hotel_reservas/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func quartoRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuartoUseCase, *mocks.MockIReservaUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuartoUseCase(ctrl)
	reservas := mocks.NewMockIReservaUseCase(ctrl)
	h := NewQuartoHandler(uc, reservas)

	r := gin.New()
	r.POST("/v1/quartos", h.CriarQuarto)
	r.GET("/v1/quartos", h.ListarQuartos)
	r.GET("/v1/quartos/disponiveis", h.ListarDisponiveis)
	r.GET("/v1/quartos/:id", h.BuscarQuarto)
	r.PUT("/v1/quartos/:id", h.AtualizarQuarto)
	r.PATCH("/v1/quartos/:id/disponibilidade", h.AlterarDisponibilidade)
	r.DELETE("/v1/quartos/:id", h.DeletarQuarto)
	r.POST("/v1/quartos/:id/camas", h.AdicionarCama)
	r.DELETE("/v1/quartos/:id/camas/:cama_id", h.RemoverCama)
	r.GET("/v1/quartos/:id/reservas", h.ListarReservas)
	return r, uc, reservas
}

func TestQuartoHandler_CriarQuarto(t *testing.T) {
	body := `{"numero":101,"capacidade":2,"tipo":"LUXO","preco_por_diaria":150,"tem_tv":true,"camas":["CASAL_KING"]}`

	t.Run("invalid json", func(t *testing.T) {
		r, _, _ := quartoRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/quartos", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("binding rejects unknown bed type", func(t *testing.T) {
		r, _, _ := quartoRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/quartos", `{"numero":101,"capacidade":2,"tipo":"LUXO","preco_por_diaria":150,"camas":["BELICHE"]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var got pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got.Code != "INVALID_REQUEST" || len(got.Details) == 0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("duplicate number", func(t *testing.T) {
		r, uc, _ := quartoRouter(t)
		uc.EXPECT().CriarQuarto(gomock.Any(), gomock.Any()).Return(entities.QuartoData{}, usecase.ErrNumeroQuartoDuplicado)

		w := doRequest(r, http.MethodPost, "/v1/quartos", body)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc, _ := quartoRouter(t)
		uc.EXPECT().CriarQuarto(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.CriarQuartoInput) (entities.QuartoData, error) {
			if in.Numero != 101 || in.Tipo != entities.TipoQuartoLuxo || !in.TemTV || len(in.Camas) != 1 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.QuartoData{ID: "q1", Numero: 101, Tipo: in.Tipo, Disponibilidade: entities.DisponibilidadeLivre}, nil
		})

		w := doRequest(r, http.MethodPost, "/v1/quartos", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if got["id"] != "q1" || got["disponibilidade"] != "LIVRE" {
			t.Fatalf("unexpected body: %v", got)
		}
	})
}

func TestQuartoHandler_ListarQuartos(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		r, uc, _ := quartoRouter(t)
		uc.EXPECT().ListarQuartos(gomock.Any()).Return([]entities.QuartoData{{ID: "q1"}, {ID: "q2"}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/quartos", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if len(got) != 2 {
			t.Fatalf("expected 2 rooms, got %d", len(got))
		}
	})

	t.Run("filtered by availability", func(t *testing.T) {
		r, uc, _ := quartoRouter(t)
		uc.EXPECT().ListarPorDisponibilidade(gomock.Any(), entities.DisponibilidadeManutencao).Return(nil, nil)

		w := doRequest(r, http.MethodGet, "/v1/quartos?disponibilidade=MANUTENCAO", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 with empty list, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid availability", func(t *testing.T) {
		r, uc, _ := quartoRouter(t)
		uc.EXPECT().ListarPorDisponibilidade(gomock.Any(), entities.Disponibilidade("X")).Return(nil, usecase.ErrDisponibilidadeInvalida)

		w := doRequest(r, http.MethodGet, "/v1/quartos?disponibilidade=X", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("free rooms", func(t *testing.T) {
		r, uc, _ := quartoRouter(t)
		uc.EXPECT().ListarPorDisponibilidade(gomock.Any(), entities.DisponibilidadeLivre).Return([]entities.QuartoData{{ID: "q1"}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/quartos/disponiveis", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuartoHandler_BuscarQuarto(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc, _ := quartoRouter(t)
		uc.EXPECT().BuscarQuarto(gomock.Any(), "q9").Return(entities.QuartoData{}, usecase.ErrQuartoNaoEncontrado)

		w := doRequest(r, http.MethodGet, "/v1/quartos/q9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		r, uc, _ := quartoRouter(t)
		uc.EXPECT().BuscarQuarto(gomock.Any(), "q1").Return(entities.QuartoData{}, errors.New("boom"))

		w := doRequest(r, http.MethodGet, "/v1/quartos/q1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestQuartoHandler_AtualizarQuarto(t *testing.T) {
	r, uc, _ := quartoRouter(t)
	uc.EXPECT().AtualizarQuarto(gomock.Any(), "q1", gomock.Any()).DoAndReturn(func(_ any, _ string, in usecase.AtualizarQuartoInput) (entities.QuartoData, error) {
		if in.PrecoPorDiaria == nil || *in.PrecoPorDiaria != 200 || in.Numero != nil || in.Camas != nil {
			t.Fatalf("unexpected input: %+v", in)
		}
		return entities.QuartoData{ID: "q1", PrecoPorDiaria: 200}, nil
	})

	w := doRequest(r, http.MethodPut, "/v1/quartos/q1", `{"preco_por_diaria":200}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestQuartoHandler_AlterarDisponibilidade(t *testing.T) {
	t.Run("missing field", func(t *testing.T) {
		r, _, _ := quartoRouter(t)
		w := doRequest(r, http.MethodPatch, "/v1/quartos/q1/disponibilidade", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc, _ := quartoRouter(t)
		uc.EXPECT().AlterarDisponibilidade(gomock.Any(), "q1", entities.DisponibilidadeLimpeza).Return(entities.QuartoData{ID: "q1", Disponibilidade: entities.DisponibilidadeLimpeza}, nil)

		w := doRequest(r, http.MethodPatch, "/v1/quartos/q1/disponibilidade", `{"disponibilidade":"LIMPEZA"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuartoHandler_Camas(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		r, uc, _ := quartoRouter(t)
		uc.EXPECT().AdicionarCama(gomock.Any(), "q1", entities.TipoCamaSolteiro).Return(entities.QuartoData{ID: "q1"}, nil)

		w := doRequest(r, http.MethodPost, "/v1/quartos/q1/camas", `{"tipo":"SOLTEIRO"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("remove missing bed", func(t *testing.T) {
		r, uc, _ := quartoRouter(t)
		uc.EXPECT().RemoverCama(gomock.Any(), "q1", "c9").Return(entities.QuartoData{}, usecase.ErrCamaNaoEncontrada)

		w := doRequest(r, http.MethodDelete, "/v1/quartos/q1/camas/c9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuartoHandler_DeletarQuarto(t *testing.T) {
	t.Run("open bookings", func(t *testing.T) {
		r, uc, _ := quartoRouter(t)
		uc.EXPECT().DeletarQuarto(gomock.Any(), "q1").Return(usecase.ErrQuartoComReservas)

		w := doRequest(r, http.MethodDelete, "/v1/quartos/q1", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc, _ := quartoRouter(t)
		uc.EXPECT().DeletarQuarto(gomock.Any(), "q1").Return(nil)

		w := doRequest(r, http.MethodDelete, "/v1/quartos/q1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestQuartoHandler_ListarReservas(t *testing.T) {
	r, _, reservas := quartoRouter(t)
	reservas.EXPECT().ListarPorQuarto(gomock.Any(), "q1").Return([]entities.ReservaData{{ID: "r1", QuartoID: "q1"}}, nil)

	w := doRequest(r, http.MethodGet, "/v1/quartos/q1/reservas", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
