package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"hotel_reservas/internal/domain/entities"
	"hotel_reservas/internal/domain/valueobjects"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestQuartoItem(t *testing.T) {
	q := entities.NovoQuarto(entities.NovoQuartoParams{
		Numero:         101,
		Capacidade:     3,
		Tipo:           entities.TipoQuartoLuxo,
		PrecoPorDiaria: 199.9,
		TemTV:          true,
		Camas: []entities.Cama{
			entities.NovaCama(entities.TipoCamaCasalKing),
			entities.NovaCama(entities.TipoCamaSolteiro),
		},
	})
	q.AlterarDisponibilidade(entities.DisponibilidadeLimpeza)

	it := toQuartoItem(q.ToData())
	if it.PrecoPorDiaria != "199.9" || it.Disponibilidade != "LIMPEZA" || len(it.Camas) != 2 {
		t.Fatalf("unexpected item: %+v", it)
	}

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	if _, ok := av["camas"].(*types.AttributeValueMemberL); !ok {
		t.Fatalf("expected camas stored as a list, got %T", av["camas"])
	}

	var back quartoItem
	if err := attributevalue.UnmarshalMap(av, &back); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	got := fromQuartoItem(back)
	if got.ID() != q.ID() || got.PrecoPorDiaria() != 199.9 || got.Disponibilidade() != entities.DisponibilidadeLimpeza {
		t.Fatalf("unexpected room: %+v", got.ToData())
	}
	if !got.CriadoEm().Equal(q.CriadoEm()) || len(got.Camas()) != 2 || !got.Camas()[1].Equals(q.Camas()[1]) {
		t.Fatalf("unexpected room details: %+v", got.ToData())
	}
}

func TestHospedeItem(t *testing.T) {
	cpf, _ := valueobjects.NovoCPF("529.982.247-25")
	email, _ := valueobjects.NovoEmail("ana@exemplo.com")
	h := entities.NovoHospede("Ana", "Souza", cpf, email)

	it := toHospedeItem(h.ToData())
	if it.CPF != "52998224725" {
		t.Fatalf("expected digits only, got %s", it.CPF)
	}

	got, err := fromHospedeItem(it)
	if err != nil || got.ID() != h.ID() || !got.CPF().Equals(cpf) {
		t.Fatalf("unexpected guest: %v (%v)", got, err)
	}

	it.CPF = "00000000000"
	if _, err := fromHospedeItem(it); !errors.Is(err, valueobjects.ErrCPFInvalido) {
		t.Fatalf("expected ErrCPFInvalido, got %v", err)
	}
}

func TestReservaItems(t *testing.T) {
	base := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	var items []reservaItem
	for _, offset := range []time.Duration{3, 1, 2} {
		d := entities.NovaReserva(entities.NovaReservaParams{
			QuartoID: "q", HospedeID: "h", DataCheckIn: base, DataCheckOut: base.AddDate(0, 0, 2), ValorTotal: 300,
		}).ToData()
		d.CriadoEm = base.Add(offset * time.Millisecond)
		d.ID = fmt.Sprintf("r%d", offset)
		items = append(items, toReservaItem(d))
	}

	got := fromReservaItems(items)
	if got[0].ID() != "r1" || got[1].ID() != "r2" || got[2].ID() != "r3" {
		t.Fatalf("expected creation order, got %s %s %s", got[0].ID(), got[1].ID(), got[2].ID())
	}
	if got[0].ValorTotal() != 300 || !got[0].DataCheckOut().Equal(base.AddDate(0, 0, 2)) {
		t.Fatalf("unexpected booking: %+v", got[0].ToData())
	}
}

func TestTimeToString(t *testing.T) {
	a := time.Date(2024, 2, 15, 10, 0, 5, 100_000_000, time.UTC)
	b := time.Date(2024, 2, 15, 10, 0, 5, 120_000_000, time.UTC)

	if !(timeToString(a) < timeToString(b)) {
		t.Fatalf("expected lexical order to follow time: %s %s", timeToString(a), timeToString(b))
	}
	if !stringToTime(timeToString(a)).Equal(a) {
		t.Fatalf("expected round trip")
	}
}

func TestCondicaoFalhou(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"other", errors.New("boom"), false},
		{"conditional check", &types.ConditionalCheckFailedException{}, true},
		{"transaction cancelled by condition", &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("None")}, {Code: aws.String("ConditionalCheckFailed")}},
		}, true},
		{"transaction cancelled by conflict", &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("TransactionConflict")}},
		}, false},
		{"wrapped", fmt.Errorf("put: %w", &types.ConditionalCheckFailedException{}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := condicaoFalhou(tt.err); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestUnicidade(t *testing.T) {
	u := unicidade{tableName: "unicidade"}

	if chaveNumeroQuarto(101) != "quarto#numero#101" || chaveCPF("52998224725") != "hospede#cpf#52998224725" {
		t.Fatalf("unexpected keys")
	}

	put := u.reservar(chaveReservaAtiva("q1"), "r1")
	if put.Put == nil || aws.ToString(put.Put.TableName) != "unicidade" {
		t.Fatalf("expected put on uniqueness table")
	}
	if v := put.Put.Item["dono"].(*types.AttributeValueMemberS).Value; v != "r1" {
		t.Fatalf("expected owner r1, got %s", v)
	}

	del := u.liberar(chaveReservaAtiva("q1"), "r1")
	if del.Delete == nil || del.Delete.Key["chave"].(*types.AttributeValueMemberS).Value != "quarto#reserva_ativa#q1" {
		t.Fatalf("unexpected delete: %+v", del.Delete)
	}
}
