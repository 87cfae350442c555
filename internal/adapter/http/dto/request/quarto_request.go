package request

import (
	"hotel_reservas/internal/domain/entities"
	"hotel_reservas/internal/usecase"
)

type CriarQuartoRequest struct {
	Numero            int      `json:"numero" binding:"required,gt=0"`
	Capacidade        int      `json:"capacidade" binding:"required,gt=0"`
	Tipo              string   `json:"tipo" binding:"required,oneof=BASICO MODERNO LUXO"`
	PrecoPorDiaria    float64  `json:"preco_por_diaria" binding:"required,gt=0"`
	TemFrigobar       bool     `json:"tem_frigobar"`
	TemCafeDaManha    bool     `json:"tem_cafe_da_manha"`
	TemArCondicionado bool     `json:"tem_ar_condicionado"`
	TemTV             bool     `json:"tem_tv"`
	Camas             []string `json:"camas" binding:"required,min=1,dive,oneof=SOLTEIRO CASAL_KING CASAL_QUEEN"`
}

func (r CriarQuartoRequest) ToInput() usecase.CriarQuartoInput {
	return usecase.CriarQuartoInput{
		Numero:            r.Numero,
		Capacidade:        r.Capacidade,
		Tipo:              entities.TipoQuarto(r.Tipo),
		PrecoPorDiaria:    r.PrecoPorDiaria,
		TemFrigobar:       r.TemFrigobar,
		TemCafeDaManha:    r.TemCafeDaManha,
		TemArCondicionado: r.TemArCondicionado,
		TemTV:             r.TemTV,
		Camas:             tiposCama(r.Camas),
	}
}

// AtualizarQuartoRequest only changes the fields present in the body. When
// "camas" is sent it replaces every bed of the room.
type AtualizarQuartoRequest struct {
	Numero            *int     `json:"numero" binding:"omitempty,gt=0"`
	Capacidade        *int     `json:"capacidade" binding:"omitempty,gt=0"`
	Tipo              *string  `json:"tipo" binding:"omitempty,oneof=BASICO MODERNO LUXO"`
	PrecoPorDiaria    *float64 `json:"preco_por_diaria" binding:"omitempty,gt=0"`
	TemFrigobar       *bool    `json:"tem_frigobar"`
	TemCafeDaManha    *bool    `json:"tem_cafe_da_manha"`
	TemArCondicionado *bool    `json:"tem_ar_condicionado"`
	TemTV             *bool    `json:"tem_tv"`
	Camas             []string `json:"camas" binding:"omitempty,min=1,dive,oneof=SOLTEIRO CASAL_KING CASAL_QUEEN"`
}

func (r AtualizarQuartoRequest) ToInput() usecase.AtualizarQuartoInput {
	in := usecase.AtualizarQuartoInput{
		Numero:            r.Numero,
		Capacidade:        r.Capacidade,
		PrecoPorDiaria:    r.PrecoPorDiaria,
		TemFrigobar:       r.TemFrigobar,
		TemCafeDaManha:    r.TemCafeDaManha,
		TemArCondicionado: r.TemArCondicionado,
		TemTV:             r.TemTV,
	}
	if r.Tipo != nil {
		tipo := entities.TipoQuarto(*r.Tipo)
		in.Tipo = &tipo
	}
	if r.Camas != nil {
		in.Camas = tiposCama(r.Camas)
	}
	return in
}

type AlterarDisponibilidadeRequest struct {
	Disponibilidade string `json:"disponibilidade" binding:"required,oneof=LIVRE OCUPADO MANUTENCAO LIMPEZA"`
}

type AdicionarCamaRequest struct {
	Tipo string `json:"tipo" binding:"required,oneof=SOLTEIRO CASAL_KING CASAL_QUEEN"`
}

func tiposCama(camas []string) []entities.TipoCama {
	tipos := make([]entities.TipoCama, 0, len(camas))
	for _, c := range camas {
		tipos = append(tipos, entities.TipoCama(c))
	}
	return tipos
}
