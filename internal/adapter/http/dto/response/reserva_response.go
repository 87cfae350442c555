package response

import (
	"hotel_reservas/internal/domain/entities"
	"time"
)

type ReservaResponse struct {
	ID            string    `json:"id"`
	QuartoID      string    `json:"quarto_id"`
	HospedeID     string    `json:"hospede_id"`
	DataCheckIn   time.Time `json:"data_check_in"`
	DataCheckOut  time.Time `json:"data_check_out"`
	NumeroDiarias int       `json:"numero_diarias"`
	Status        string    `json:"status"`
	ValorTotal    float64   `json:"valor_total"`
	CriadoEm      time.Time `json:"criado_em"`
	AtualizadoEm  time.Time `json:"atualizado_em"`
}

func FromReserva(r entities.ReservaData) ReservaResponse {
	return ReservaResponse{
		ID:            r.ID,
		QuartoID:      r.QuartoID,
		HospedeID:     r.HospedeID,
		DataCheckIn:   r.DataCheckIn,
		DataCheckOut:  r.DataCheckOut,
		NumeroDiarias: entities.CalcularDiarias(r.DataCheckIn, r.DataCheckOut),
		Status:        string(r.Status),
		ValorTotal:    r.ValorTotal,
		CriadoEm:      r.CriadoEm,
		AtualizadoEm:  r.AtualizadoEm,
	}
}

func FromReservas(rs []entities.ReservaData) []ReservaResponse {
	out := make([]ReservaResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromReserva(r))
	}
	return out
}
