package usecase

import (
	"context"
	"hotel_reservas/internal/domain/entities"
	"hotel_reservas/internal/domain/errs"
	"hotel_reservas/internal/domain/valueobjects"
	"hotel_reservas/internal/usecase/interfaces"
	"strings"
)

var (
	ErrHospedeNaoEncontrado = errs.NotFound("Hóspede não encontrado")
	ErrCPFDuplicado         = errs.Conflict("Já existe um hóspede com este CPF")
	ErrHospedeComReservas   = errs.Conflict("Hóspede possui reservas em aberto")
)

type CriarHospedeInput struct {
	Nome      string
	Sobrenome string
	CPF       string
	Email     string
}

// AtualizarHospedeInput is a partial update. The CPF cannot be changed.
type AtualizarHospedeInput struct {
	Nome      *string
	Sobrenome *string
	Email     *string
}

//go:generate mockgen -source=hospede_usecase.go -destination=../adapter/http/handlers/mocks/mock_hospede_usecase.go -package=mocks

// IHospedeUseCase exposes guest management operations.
type IHospedeUseCase interface {
	CriarHospede(ctx context.Context, in CriarHospedeInput) (entities.HospedeData, error)
	AtualizarHospede(ctx context.Context, id string, in AtualizarHospedeInput) (entities.HospedeData, error)
	BuscarHospede(ctx context.Context, id string) (entities.HospedeData, error)
	BuscarPorCPF(ctx context.Context, cpf string) (entities.HospedeData, error)
	ListarHospedes(ctx context.Context) ([]entities.HospedeData, error)
	DeletarHospede(ctx context.Context, id string) error
}

type HospedeUseCase struct {
	hospedes   interfaces.IHospedeRepository
	reservas   interfaces.IReservaRepository
	serializer *Serializer
}

var _ IHospedeUseCase = (*HospedeUseCase)(nil)

func NewHospedeUseCase(hospedes interfaces.IHospedeRepository, reservas interfaces.IReservaRepository, serializer *Serializer) *HospedeUseCase {
	return &HospedeUseCase{hospedes: hospedes, reservas: reservas, serializer: serializer}
}

func (u *HospedeUseCase) CriarHospede(ctx context.Context, in CriarHospedeInput) (entities.HospedeData, error) {
	cpf, errCPF := valueobjects.NovoCPF(in.CPF)
	email, errEmail := valueobjects.NovoEmail(in.Email)
	if err := juntarValidacoes(errCPF, errEmail); err != nil {
		return entities.HospedeData{}, err
	}

	return serializar(ctx, u.serializer, func() (entities.HospedeData, error) {
		existe, err := u.hospedes.ExisteCPF(ctx, cpf, "")
		if err != nil {
			return entities.HospedeData{}, err
		}
		if existe {
			return entities.HospedeData{}, ErrCPFDuplicado
		}

		h := entities.NovoHospede(strings.TrimSpace(in.Nome), strings.TrimSpace(in.Sobrenome), cpf, email)
		if err := h.Validar().Err(); err != nil {
			return entities.HospedeData{}, err
		}

		criado, err := u.hospedes.Criar(ctx, h)
		if err != nil {
			return entities.HospedeData{}, err
		}
		return criado.ToData(), nil
	})
}

func (u *HospedeUseCase) AtualizarHospede(ctx context.Context, id string, in AtualizarHospedeInput) (entities.HospedeData, error) {
	params := entities.AtualizarHospedeParams{}
	if in.Nome != nil {
		nome := strings.TrimSpace(*in.Nome)
		params.Nome = &nome
	}
	if in.Sobrenome != nil {
		sobrenome := strings.TrimSpace(*in.Sobrenome)
		params.Sobrenome = &sobrenome
	}
	if in.Email != nil {
		email, err := valueobjects.NovoEmail(*in.Email)
		if err != nil {
			return entities.HospedeData{}, err
		}
		params.Email = &email
	}

	return serializar(ctx, u.serializer, func() (entities.HospedeData, error) {
		h, err := u.buscar(ctx, id)
		if err != nil {
			return entities.HospedeData{}, err
		}

		h.AtualizarDados(params)
		if err := h.Validar().Err(); err != nil {
			return entities.HospedeData{}, err
		}

		salvo, err := u.hospedes.Atualizar(ctx, h.ID(), h)
		if err != nil {
			return entities.HospedeData{}, err
		}
		return salvo.ToData(), nil
	})
}

func (u *HospedeUseCase) BuscarHospede(ctx context.Context, id string) (entities.HospedeData, error) {
	h, err := u.buscar(ctx, id)
	if err != nil {
		return entities.HospedeData{}, err
	}
	return h.ToData(), nil
}

// BuscarPorCPF accepts the CPF with or without punctuation.
func (u *HospedeUseCase) BuscarPorCPF(ctx context.Context, raw string) (entities.HospedeData, error) {
	cpf, err := valueobjects.NovoCPF(raw)
	if err != nil {
		return entities.HospedeData{}, err
	}
	h, err := u.hospedes.BuscarPorCPF(ctx, cpf)
	if err != nil {
		return entities.HospedeData{}, err
	}
	if h == nil {
		return entities.HospedeData{}, ErrHospedeNaoEncontrado
	}
	return h.ToData(), nil
}

func (u *HospedeUseCase) ListarHospedes(ctx context.Context) ([]entities.HospedeData, error) {
	hospedes, err := u.hospedes.BuscarTodos(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.HospedeData, 0, len(hospedes))
	for _, h := range hospedes {
		out = append(out, h.ToData())
	}
	return out, nil
}

func (u *HospedeUseCase) DeletarHospede(ctx context.Context, id string) error {
	_, err := serializar(ctx, u.serializer, func() (struct{}, error) {
		h, err := u.buscar(ctx, id)
		if err != nil {
			return struct{}{}, err
		}
		reservas, err := u.reservas.BuscarPorHospede(ctx, h.ID())
		if err != nil {
			return struct{}{}, err
		}
		if algumaEmAberto(reservas) {
			return struct{}{}, ErrHospedeComReservas
		}
		return struct{}{}, u.hospedes.Deletar(ctx, h.ID())
	})
	return err
}

func (u *HospedeUseCase) buscar(ctx context.Context, id string) (*entities.Hospede, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrIdentificadorObrigatorio
	}
	h, err := u.hospedes.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrHospedeNaoEncontrado
	}
	return h, nil
}

// juntarValidacoes merges the violations of several validation errors into one.
// Any other kind of error is returned as is.
func juntarValidacoes(errList ...error) error {
	var violacoes []string
	for _, err := range errList {
		if err == nil {
			continue
		}
		v := errs.ViolationsOf(err)
		if v == nil {
			return err
		}
		violacoes = append(violacoes, v...)
	}
	if len(violacoes) == 0 {
		return nil
	}
	return errs.Validation(violacoes...)
}
