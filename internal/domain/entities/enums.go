package entities

type TipoQuarto string

const (
	TipoQuartoBasico  TipoQuarto = "BASICO"
	TipoQuartoModerno TipoQuarto = "MODERNO"
	TipoQuartoLuxo    TipoQuarto = "LUXO"
)

func (t TipoQuarto) Valido() bool {
	switch t {
	case TipoQuartoBasico, TipoQuartoModerno, TipoQuartoLuxo:
		return true
	}
	return false
}

type TipoCama string

const (
	TipoCamaSolteiro   TipoCama = "SOLTEIRO"
	TipoCamaCasalKing  TipoCama = "CASAL_KING"
	TipoCamaCasalQueen TipoCama = "CASAL_QUEEN"
)

func (t TipoCama) Valido() bool {
	switch t {
	case TipoCamaSolteiro, TipoCamaCasalKing, TipoCamaCasalQueen:
		return true
	}
	return false
}

// Disponibilidade is a flat enumeration: any value may follow any other.
type Disponibilidade string

const (
	DisponibilidadeLivre      Disponibilidade = "LIVRE"
	DisponibilidadeOcupado    Disponibilidade = "OCUPADO"
	DisponibilidadeManutencao Disponibilidade = "MANUTENCAO"
	DisponibilidadeLimpeza    Disponibilidade = "LIMPEZA"
)

func (d Disponibilidade) Valido() bool {
	switch d {
	case DisponibilidadeLivre, DisponibilidadeOcupado, DisponibilidadeManutencao, DisponibilidadeLimpeza:
		return true
	}
	return false
}

// StatusReserva is the booking lifecycle. It only changes through the
// transition methods on Reserva.
type StatusReserva string

const (
	StatusReservaPendente    StatusReserva = "PENDENTE"
	StatusReservaConfirmada  StatusReserva = "CONFIRMADA"
	StatusReservaEmAndamento StatusReserva = "EM_ANDAMENTO"
	StatusReservaFinalizada  StatusReserva = "FINALIZADA"
	StatusReservaCancelada   StatusReserva = "CANCELADA"
)

func (s StatusReserva) Valido() bool {
	switch s {
	case StatusReservaPendente, StatusReservaConfirmada, StatusReservaEmAndamento, StatusReservaFinalizada, StatusReservaCancelada:
		return true
	}
	return false
}

// Ativa reports whether a booking in this status occupies its room.
func (s StatusReserva) Ativa() bool {
	return s == StatusReservaConfirmada || s == StatusReservaEmAndamento
}
