package memory

import (
	"context"
	"testing"

	"hotel_reservas/internal/domain/entities"
)

func novoQuarto(numero int) *entities.Quarto {
	return entities.NovoQuarto(entities.NovoQuartoParams{
		Numero:         numero,
		Capacidade:     2,
		Tipo:           entities.TipoQuartoBasico,
		PrecoPorDiaria: 100,
		Camas:          []entities.Cama{entities.NovaCama(entities.TipoCamaSolteiro)},
	})
}

func TestQuartoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("criar and buscar return independent copies", func(t *testing.T) {
		repo := NewQuartoRepository()
		q := novoQuarto(101)

		criado, err := repo.Criar(ctx, q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		criado.AlterarDisponibilidade(entities.DisponibilidadeOcupado)
		q.AdicionarCama(entities.NovaCama(entities.TipoCamaCasalKing))

		got, err := repo.BuscarPorID(ctx, q.ID())
		if err != nil || got == nil {
			t.Fatalf("expected room, got %v %v", got, err)
		}
		if got.Disponibilidade() != entities.DisponibilidadeLivre || len(got.Camas()) != 1 {
			t.Fatalf("stored snapshot was mutated: %+v", got.ToData())
		}
	})

	t.Run("buscar absent returns nil", func(t *testing.T) {
		repo := NewQuartoRepository()
		got, err := repo.BuscarPorID(ctx, "missing")
		if err != nil || got != nil {
			t.Fatalf("expected nil, nil; got %v %v", got, err)
		}
		got, err = repo.BuscarPorNumero(ctx, 999)
		if err != nil || got != nil {
			t.Fatalf("expected nil, nil; got %v %v", got, err)
		}
	})

	t.Run("listing keeps insertion order", func(t *testing.T) {
		repo := NewQuartoRepository()
		for _, n := range []int{303, 101, 202} {
			_, _ = repo.Criar(ctx, novoQuarto(n))
		}
		todos, _ := repo.BuscarTodos(ctx)
		if len(todos) != 3 || todos[0].Numero() != 303 || todos[1].Numero() != 101 || todos[2].Numero() != 202 {
			t.Fatalf("unexpected order")
		}
	})

	t.Run("existe numero excludes the given id", func(t *testing.T) {
		repo := NewQuartoRepository()
		q := novoQuarto(101)
		_, _ = repo.Criar(ctx, q)

		if existe, _ := repo.ExisteNumero(ctx, 101, ""); !existe {
			t.Fatalf("expected number to exist")
		}
		if existe, _ := repo.ExisteNumero(ctx, 101, q.ID()); existe {
			t.Fatalf("own id must be excluded")
		}
		if existe, _ := repo.ExisteNumero(ctx, 102, ""); existe {
			t.Fatalf("unexpected number")
		}
	})

	t.Run("atualizar, disponibilidade filter and deletar", func(t *testing.T) {
		repo := NewQuartoRepository()
		a, b := novoQuarto(1), novoQuarto(2)
		_, _ = repo.Criar(ctx, a)
		_, _ = repo.Criar(ctx, b)

		b.AlterarDisponibilidade(entities.DisponibilidadeManutencao)
		if _, err := repo.Atualizar(ctx, b.ID(), b); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		livres, _ := repo.BuscarPorDisponibilidade(ctx, entities.DisponibilidadeLivre)
		if len(livres) != 1 || livres[0].ID() != a.ID() {
			t.Fatalf("unexpected free rooms")
		}
		if got, _ := repo.BuscarPorNumero(ctx, 2); got == nil || got.Disponibilidade() != entities.DisponibilidadeManutencao {
			t.Fatalf("expected updated room")
		}

		if err := repo.Deletar(ctx, a.ID()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.Deletar(ctx, a.ID()); err != nil {
			t.Fatalf("deleting twice must be a no-op, got %v", err)
		}
		todos, _ := repo.BuscarTodos(ctx)
		if len(todos) != 1 || todos[0].ID() != b.ID() {
			t.Fatalf("unexpected rooms after delete")
		}
	})
}
