package response

import (
	"testing"
	"time"

	"hotel_reservas/internal/domain/entities"
)

func TestFromQuarto(t *testing.T) {
	q := entities.QuartoData{
		ID:              "q1",
		Numero:          101,
		Tipo:            entities.TipoQuartoLuxo,
		PrecoPorDiaria:  150,
		Disponibilidade: entities.DisponibilidadeLivre,
		Camas:           []entities.CamaData{{ID: "c1", Tipo: entities.TipoCamaCasalKing}},
	}
	got := FromQuarto(q)
	if got.Tipo != "LUXO" || got.Disponibilidade != "LIVRE" || len(got.Camas) != 1 || got.Camas[0].Tipo != "CASAL_KING" {
		t.Fatalf("unexpected response: %+v", got)
	}

	if out := FromQuartos(nil); out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}

func TestFromHospede(t *testing.T) {
	got := FromHospede(entities.HospedeData{ID: "h1", Nome: "João", Sobrenome: "Silva", CPF: "52998224725", Email: "joao@example.com"})
	if got.CPF != "529.982.247-25" {
		t.Fatalf("expected formatted cpf, got %s", got.CPF)
	}
	if got.NomeCompleto != "João Silva" {
		t.Fatalf("unexpected full name: %s", got.NomeCompleto)
	}
}

func TestFromReserva(t *testing.T) {
	in := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	got := FromReserva(entities.ReservaData{
		ID:           "r1",
		DataCheckIn:  in,
		DataCheckOut: in.AddDate(0, 0, 3),
		Status:       entities.StatusReservaPendente,
		ValorTotal:   450,
	})
	if got.NumeroDiarias != 3 || got.Status != "PENDENTE" || got.ValorTotal != 450 {
		t.Fatalf("unexpected response: %+v", got)
	}
}
