package response

import (
	"hotel_reservas/internal/domain/entities"
	"hotel_reservas/internal/domain/valueobjects"
	"time"
)

type HospedeResponse struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	Sobrenome    string    `json:"sobrenome"`
	NomeCompleto string    `json:"nome_completo"`
	CPF          string    `json:"cpf"`
	Email        string    `json:"email"`
	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

// FromHospede renders the CPF punctuated (000.000.000-00).
func FromHospede(h entities.HospedeData) HospedeResponse {
	cpf := h.CPF
	if v, err := valueobjects.NovoCPF(h.CPF); err == nil {
		cpf = v.Formatado()
	}
	return HospedeResponse{
		ID:           h.ID,
		Nome:         h.Nome,
		Sobrenome:    h.Sobrenome,
		NomeCompleto: h.Nome + " " + h.Sobrenome,
		CPF:          cpf,
		Email:        h.Email,
		CriadoEm:     h.CriadoEm,
		AtualizadoEm: h.AtualizadoEm,
	}
}

func FromHospedes(hs []entities.HospedeData) []HospedeResponse {
	out := make([]HospedeResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, FromHospede(h))
	}
	return out
}
