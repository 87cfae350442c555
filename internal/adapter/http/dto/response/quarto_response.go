package response

import (
	"hotel_reservas/internal/domain/entities"
	"time"
)

type CamaResponse struct {
	ID   string `json:"id"`
	Tipo string `json:"tipo"`
}

type QuartoResponse struct {
	ID                string         `json:"id"`
	Numero            int            `json:"numero"`
	Capacidade        int            `json:"capacidade"`
	Tipo              string         `json:"tipo"`
	PrecoPorDiaria    float64        `json:"preco_por_diaria"`
	TemFrigobar       bool           `json:"tem_frigobar"`
	TemCafeDaManha    bool           `json:"tem_cafe_da_manha"`
	TemArCondicionado bool           `json:"tem_ar_condicionado"`
	TemTV             bool           `json:"tem_tv"`
	Disponibilidade   string         `json:"disponibilidade"`
	Camas             []CamaResponse `json:"camas"`
	CriadoEm          time.Time      `json:"criado_em"`
	AtualizadoEm      time.Time      `json:"atualizado_em"`
}

func FromQuarto(q entities.QuartoData) QuartoResponse {
	camas := make([]CamaResponse, 0, len(q.Camas))
	for _, c := range q.Camas {
		camas = append(camas, CamaResponse{ID: c.ID, Tipo: string(c.Tipo)})
	}
	return QuartoResponse{
		ID:                q.ID,
		Numero:            q.Numero,
		Capacidade:        q.Capacidade,
		Tipo:              string(q.Tipo),
		PrecoPorDiaria:    q.PrecoPorDiaria,
		TemFrigobar:       q.TemFrigobar,
		TemCafeDaManha:    q.TemCafeDaManha,
		TemArCondicionado: q.TemArCondicionado,
		TemTV:             q.TemTV,
		Disponibilidade:   string(q.Disponibilidade),
		Camas:             camas,
		CriadoEm:          q.CriadoEm,
		AtualizadoEm:      q.AtualizadoEm,
	}
}

func FromQuartos(qs []entities.QuartoData) []QuartoResponse {
	out := make([]QuartoResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuarto(q))
	}
	return out
}
