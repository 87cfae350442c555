package entities

import "time"

type TipoEventoReserva string

const (
	EventoReservaCriada     TipoEventoReserva = "criada"
	EventoReservaAtualizada TipoEventoReserva = "atualizada"
	EventoReservaConfirmada TipoEventoReserva = "confirmada"
	EventoReservaCheckIn    TipoEventoReserva = "checkin"
	EventoReservaCheckOut   TipoEventoReserva = "checkout"
	EventoReservaCancelada  TipoEventoReserva = "cancelada"
)

// ReservaEvento is emitted after a booking lifecycle change has been persisted.
type ReservaEvento struct {
	Tipo      TipoEventoReserva `json:"tipo"`
	ReservaID string            `json:"reserva_id"`
	QuartoID  string            `json:"quarto_id"`
	HospedeID string            `json:"hospede_id"`
	Status    StatusReserva     `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
}

func NovoReservaEvento(tipo TipoEventoReserva, r ReservaData) ReservaEvento {
	return ReservaEvento{
		Tipo:      tipo,
		ReservaID: r.ID,
		QuartoID:  r.QuartoID,
		HospedeID: r.HospedeID,
		Status:    r.Status,
		Timestamp: agora(),
	}
}
