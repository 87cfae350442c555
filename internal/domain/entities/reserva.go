package entities

import (
	"math"
	"strings"
	"time"

	"hotel_reservas/internal/domain/errs"

	"github.com/google/uuid"
)

const diaria = 24 * time.Hour

var (
	ErrReservaNaoConfirmavel = errs.InvalidTransition("Apenas reservas pendentes podem ser confirmadas")
	ErrReservaSemCheckIn     = errs.InvalidTransition("Apenas reservas confirmadas podem fazer check-in")
	ErrReservaSemCheckOut    = errs.InvalidTransition("Apenas reservas em andamento podem fazer check-out")
	ErrReservaNaoCancelavel  = errs.InvalidTransition("Apenas reservas pendentes ou confirmadas podem ser canceladas")
	ErrReservaNaoAlteravel   = errs.InvalidTransition("Esta reserva não pode ser alterada")
	ErrTransicaoNaoPermitida = errs.InvalidTransition("Transição de status não permitida")
)

// Reserva is the booking aggregate. Its status is a state machine:
//
//	PENDENTE -> CONFIRMADA -> EM_ANDAMENTO -> FINALIZADA
//	PENDENTE | CONFIRMADA -> CANCELADA
//
// The status only changes through Confirmar, CheckIn, CheckOut and Cancelar.
type Reserva struct {
	id           string
	quartoID     string
	hospedeID    string
	dataCheckIn  time.Time
	dataCheckOut time.Time
	status       StatusReserva
	valorTotal   float64
	criadoEm     time.Time
	atualizadoEm time.Time
}

type ReservaData struct {
	ID           string        `json:"id"`
	QuartoID     string        `json:"quarto_id"`
	HospedeID    string        `json:"hospede_id"`
	DataCheckIn  time.Time     `json:"data_check_in"`
	DataCheckOut time.Time     `json:"data_check_out"`
	Status       StatusReserva `json:"status"`
	ValorTotal   float64       `json:"valor_total"`
	CriadoEm     time.Time     `json:"criado_em"`
	AtualizadoEm time.Time     `json:"atualizado_em"`
}

type NovaReservaParams struct {
	QuartoID     string
	HospedeID    string
	DataCheckIn  time.Time
	DataCheckOut time.Time
	ValorTotal   float64
}

type AtualizarReservaParams struct {
	QuartoID     *string
	HospedeID    *string
	DataCheckIn  *time.Time
	DataCheckOut *time.Time
	ValorTotal   *float64
}

// NovaReserva builds a PENDENTE booking with a new id and timestamps.
func NovaReserva(p NovaReservaParams) *Reserva {
	now := agora()
	return &Reserva{
		id:           uuid.NewString(),
		quartoID:     p.QuartoID,
		hospedeID:    p.HospedeID,
		dataCheckIn:  p.DataCheckIn,
		dataCheckOut: p.DataCheckOut,
		status:       StatusReservaPendente,
		valorTotal:   p.ValorTotal,
		criadoEm:     now,
		atualizadoEm: now,
	}
}

func ReservaFromData(d ReservaData) *Reserva {
	status := d.Status
	if status == "" {
		status = StatusReservaPendente
	}
	return &Reserva{
		id:           d.ID,
		quartoID:     d.QuartoID,
		hospedeID:    d.HospedeID,
		dataCheckIn:  d.DataCheckIn,
		dataCheckOut: d.DataCheckOut,
		status:       status,
		valorTotal:   d.ValorTotal,
		criadoEm:     d.CriadoEm,
		atualizadoEm: d.AtualizadoEm,
	}
}

func (r *Reserva) ID() string { return r.id }
func (r *Reserva) QuartoID() string { return r.quartoID }
func (r *Reserva) HospedeID() string { return r.hospedeID }
func (r *Reserva) DataCheckIn() time.Time { return r.dataCheckIn }
func (r *Reserva) DataCheckOut() time.Time { return r.dataCheckOut }
func (r *Reserva) Status() StatusReserva { return r.status }
func (r *Reserva) ValorTotal() float64 { return r.valorTotal }
func (r *Reserva) CriadoEm() time.Time { return r.criadoEm }
func (r *Reserva) AtualizadoEm() time.Time { return r.atualizadoEm }

// CalcularNumeroDiarias returns the number of nights, rounding partial days up.
func (r *Reserva) CalcularNumeroDiarias() int {
	return CalcularDiarias(r.dataCheckIn, r.dataCheckOut)
}

// CalcularDiarias is ceil(|checkOut - checkIn| / 24h).
func CalcularDiarias(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(float64(d) / float64(diaria)))
}

func (r *Reserva) Confirmar() error {
	if r.status != StatusReservaPendente {
		return ErrReservaNaoConfirmavel
	}
	r.mudarStatus(StatusReservaConfirmada)
	return nil
}

func (r *Reserva) CheckIn() error {
	if r.status != StatusReservaConfirmada {
		return ErrReservaSemCheckIn
	}
	r.mudarStatus(StatusReservaEmAndamento)
	return nil
}

func (r *Reserva) CheckOut() error {
	if r.status != StatusReservaEmAndamento {
		return ErrReservaSemCheckOut
	}
	r.mudarStatus(StatusReservaFinalizada)
	return nil
}

func (r *Reserva) Cancelar() error {
	if r.status != StatusReservaPendente && r.status != StatusReservaConfirmada {
		return ErrReservaNaoCancelavel
	}
	r.mudarStatus(StatusReservaCancelada)
	return nil
}

// TransicionarPara drives the state machine towards target using the single
// allowed edge from the current status. Asking for the current status is a no-op.
func (r *Reserva) TransicionarPara(target StatusReserva) error {
	if target == r.status {
		return nil
	}
	switch target {
	case StatusReservaConfirmada:
		return r.Confirmar()
	case StatusReservaEmAndamento:
		return r.CheckIn()
	case StatusReservaFinalizada:
		return r.CheckOut()
	case StatusReservaCancelada:
		return r.Cancelar()
	default:
		return ErrTransicaoNaoPermitida
	}
}

func (r *Reserva) mudarStatus(s StatusReserva) {
	r.status = s
	r.atualizadoEm = agora()
}

func (r *Reserva) PodeSerAlterada() bool {
	return r.status == StatusReservaPendente || r.status == StatusReservaConfirmada
}

// AtualizarDados applies a partial update. It fails when the booking is no
// longer alterable (see PodeSerAlterada).
func (r *Reserva) AtualizarDados(p AtualizarReservaParams) error {
	if !r.PodeSerAlterada() {
		return ErrReservaNaoAlteravel
	}

	if p.QuartoID != nil {
		r.quartoID = *p.QuartoID
	}
	if p.HospedeID != nil {
		r.hospedeID = *p.HospedeID
	}
	if p.DataCheckIn != nil {
		r.dataCheckIn = *p.DataCheckIn
	}
	if p.DataCheckOut != nil {
		r.dataCheckOut = *p.DataCheckOut
	}
	if p.ValorTotal != nil {
		r.valorTotal = *p.ValorTotal
	}
	r.atualizadoEm = agora()
	return nil
}

func (r *Reserva) Validar() ValidationResult {
	var errors []string

	if strings.TrimSpace(r.quartoID) == "" {
		errors = append(errors, "Quarto é obrigatório")
	}
	if strings.TrimSpace(r.hospedeID) == "" {
		errors = append(errors, "Hóspede é obrigatório")
	}
	if !r.dataCheckOut.After(r.dataCheckIn) {
		errors = append(errors, "Data de check-out deve ser posterior à data de check-in")
	}
	if r.valorTotal <= 0 {
		errors = append(errors, "Valor total deve ser maior que zero")
	}

	return newValidationResult(errors)
}

func (r *Reserva) ToData() ReservaData {
	return ReservaData{
		ID:           r.id,
		QuartoID:     r.quartoID,
		HospedeID:    r.hospedeID,
		DataCheckIn:  r.dataCheckIn,
		DataCheckOut: r.dataCheckOut,
		Status:       r.status,
		ValorTotal:   r.valorTotal,
		CriadoEm:     r.criadoEm,
		AtualizadoEm: r.atualizadoEm,
	}
}
