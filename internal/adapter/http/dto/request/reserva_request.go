package request

import (
	"time"

	"hotel_reservas/internal/domain/entities"
	"hotel_reservas/internal/usecase"
)

type CriarReservaRequest struct {
	HospedeID    string `json:"hospede_id" binding:"required"`
	QuartoID     string `json:"quarto_id" binding:"required"`
	DataCheckIn  *Data  `json:"data_check_in" binding:"required"`
	DataCheckOut *Data  `json:"data_check_out" binding:"required"`
}

func (r CriarReservaRequest) ToInput() usecase.CriarReservaInput {
	return usecase.CriarReservaInput{
		HospedeID:    r.HospedeID,
		QuartoID:     r.QuartoID,
		DataCheckIn:  r.DataCheckIn.Time,
		DataCheckOut: r.DataCheckOut.Time,
	}
}

type AtualizarReservaRequest struct {
	DataCheckIn  *Data   `json:"data_check_in"`
	DataCheckOut *Data   `json:"data_check_out"`
	Status       *string `json:"status" binding:"omitempty,oneof=PENDENTE CONFIRMADA EM_ANDAMENTO FINALIZADA CANCELADA"`
}

func (r AtualizarReservaRequest) ToInput() usecase.AtualizarReservaInput {
	var in usecase.AtualizarReservaInput
	in.DataCheckIn = dataPtr(r.DataCheckIn)
	in.DataCheckOut = dataPtr(r.DataCheckOut)
	if r.Status != nil {
		s := entities.StatusReserva(*r.Status)
		in.Status = &s
	}
	return in
}

func dataPtr(d *Data) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
