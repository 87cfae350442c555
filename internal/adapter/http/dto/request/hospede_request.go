package request

import "hotel_reservas/internal/usecase"

type CriarHospedeRequest struct {
	Nome      string `json:"nome" binding:"required,min=2"`
	Sobrenome string `json:"sobrenome" binding:"required,min=2"`
	CPF       string `json:"cpf" binding:"required,cpf"`
	Email     string `json:"email" binding:"required,email"`
}

func (r CriarHospedeRequest) ToInput() usecase.CriarHospedeInput {
	return usecase.CriarHospedeInput{
		Nome:      r.Nome,
		Sobrenome: r.Sobrenome,
		CPF:       r.CPF,
		Email:     r.Email,
	}
}

// AtualizarHospedeRequest cannot change the CPF.
type AtualizarHospedeRequest struct {
	Nome      *string `json:"nome" binding:"omitempty,min=2"`
	Sobrenome *string `json:"sobrenome" binding:"omitempty,min=2"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

func (r AtualizarHospedeRequest) ToInput() usecase.AtualizarHospedeInput {
	return usecase.AtualizarHospedeInput{
		Nome:      r.Nome,
		Sobrenome: r.Sobrenome,
		Email:     r.Email,
	}
}
