package entities

import (
	"strings"
	"time"

	"hotel_reservas/internal/domain/valueobjects"

	"github.com/google/uuid"
)

// Hospede is the guest aggregate. The CPF is fixed at creation; CPF
// uniqueness is enforced by the repository.
type Hospede struct {
	id           string
	nome         string
	sobrenome    string
	cpf          valueobjects.CPF
	email        valueobjects.Email
	criadoEm     time.Time
	atualizadoEm time.Time
}

type HospedeData struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	Sobrenome    string    `json:"sobrenome"`
	CPF          string    `json:"cpf"`
	Email        string    `json:"email"`
	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

type AtualizarHospedeParams struct {
	Nome      *string
	Sobrenome *string
	Email     *valueobjects.Email
}

func NovoHospede(nome, sobrenome string, cpf valueobjects.CPF, email valueobjects.Email) *Hospede {
	now := agora()
	return &Hospede{
		id:           uuid.NewString(),
		nome:         nome,
		sobrenome:    sobrenome,
		cpf:          cpf,
		email:        email,
		criadoEm:     now,
		atualizadoEm: now,
	}
}

// HospedeFromData rehydrates a guest. CPF and e-mail are revalidated, so a
// corrupted snapshot fails instead of producing an invalid guest.
func HospedeFromData(d HospedeData) (*Hospede, error) {
	cpf, err := valueobjects.NovoCPF(d.CPF)
	if err != nil {
		return nil, err
	}
	email, err := valueobjects.NovoEmail(d.Email)
	if err != nil {
		return nil, err
	}
	return &Hospede{
		id:           d.ID,
		nome:         d.Nome,
		sobrenome:    d.Sobrenome,
		cpf:          cpf,
		email:        email,
		criadoEm:     d.CriadoEm,
		atualizadoEm: d.AtualizadoEm,
	}, nil
}

func (h *Hospede) ID() string { return h.id }
func (h *Hospede) Nome() string { return h.nome }
func (h *Hospede) Sobrenome() string { return h.sobrenome }
func (h *Hospede) CPF() valueobjects.CPF { return h.cpf }
func (h *Hospede) Email() valueobjects.Email { return h.email }
func (h *Hospede) CriadoEm() time.Time { return h.criadoEm }
func (h *Hospede) AtualizadoEm() time.Time { return h.atualizadoEm }

func (h *Hospede) NomeCompleto() string {
	return h.nome + " " + h.sobrenome
}

func (h *Hospede) AtualizarEmail(email valueobjects.Email) {
	h.email = email
	h.atualizadoEm = agora()
}

func (h *Hospede) AtualizarDados(p AtualizarHospedeParams) {
	if p.Nome != nil {
		h.nome = *p.Nome
	}
	if p.Sobrenome != nil {
		h.sobrenome = *p.Sobrenome
	}
	if p.Email != nil {
		h.email = *p.Email
	}
	h.atualizadoEm = agora()
}

func (h *Hospede) Validar() ValidationResult {
	var errors []string

	if strings.TrimSpace(h.nome) == "" {
		errors = append(errors, "Nome é obrigatório")
	}
	if strings.TrimSpace(h.sobrenome) == "" {
		errors = append(errors, "Sobrenome é obrigatório")
	}
	if h.cpf.IsZero() {
		errors = append(errors, "CPF é obrigatório")
	}
	if h.email.IsZero() {
		errors = append(errors, "E-mail é obrigatório")
	}

	return newValidationResult(errors)
}

func (h *Hospede) ToData() HospedeData {
	return HospedeData{
		ID:           h.id,
		Nome:         h.nome,
		Sobrenome:    h.sobrenome,
		CPF:          h.cpf.Valor(),
		Email:        h.email.Valor(),
		CriadoEm:     h.criadoEm,
		AtualizadoEm: h.atualizadoEm,
	}
}
