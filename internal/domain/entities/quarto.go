package entities

import (
	"time"

	"github.com/google/uuid"
)

// Quarto is the room aggregate.
//
// Room number uniqueness is not checked here: it depends on every other room
// and is enforced by the repository at create/update time.
type Quarto struct {
	id                string
	numero            int
	capacidade        int
	tipo              TipoQuarto
	precoPorDiaria    float64
	temFrigobar       bool
	temCafeDaManha    bool
	temArCondicionado bool
	temTV             bool
	disponibilidade   Disponibilidade
	camas             []Cama
	criadoEm          time.Time
	atualizadoEm      time.Time
}

// QuartoData is the flat snapshot of a room used for transport and storage.
type QuartoData struct {
	ID                string          `json:"id"`
	Numero            int             `json:"numero"`
	Capacidade        int             `json:"capacidade"`
	Tipo              TipoQuarto      `json:"tipo"`
	PrecoPorDiaria    float64         `json:"preco_por_diaria"`
	TemFrigobar       bool            `json:"tem_frigobar"`
	TemCafeDaManha    bool            `json:"tem_cafe_da_manha"`
	TemArCondicionado bool            `json:"tem_ar_condicionado"`
	TemTV             bool            `json:"tem_tv"`
	Disponibilidade   Disponibilidade `json:"disponibilidade"`
	Camas             []CamaData      `json:"camas"`
	CriadoEm          time.Time       `json:"criado_em"`
	AtualizadoEm      time.Time       `json:"atualizado_em"`
}

type NovoQuartoParams struct {
	Numero            int
	Capacidade        int
	Tipo              TipoQuarto
	PrecoPorDiaria    float64
	TemFrigobar       bool
	TemCafeDaManha    bool
	TemArCondicionado bool
	TemTV             bool
	Camas             []Cama
}

// AtualizarQuartoParams is a partial update: nil fields are left unchanged.
type AtualizarQuartoParams struct {
	Numero            *int
	Capacidade        *int
	Tipo              *TipoQuarto
	PrecoPorDiaria    *float64
	TemFrigobar       *bool
	TemCafeDaManha    *bool
	TemArCondicionado *bool
	TemTV             *bool
	Camas             []Cama
}

// NovoQuarto builds a fresh room, LIVRE, with a new id and timestamps.
func NovoQuarto(p NovoQuartoParams) *Quarto {
	now := agora()
	return &Quarto{
		id:                uuid.NewString(),
		numero:            p.Numero,
		capacidade:        p.Capacidade,
		tipo:              p.Tipo,
		precoPorDiaria:    p.PrecoPorDiaria,
		temFrigobar:       p.TemFrigobar,
		temCafeDaManha:    p.TemCafeDaManha,
		temArCondicionado: p.TemArCondicionado,
		temTV:             p.TemTV,
		disponibilidade:   DisponibilidadeLivre,
		camas:             append([]Cama(nil), p.Camas...),
		criadoEm:          now,
		atualizadoEm:      now,
	}
}

// QuartoFromData rehydrates a room from storage, keeping id and timestamps.
func QuartoFromData(d QuartoData) *Quarto {
	camas := make([]Cama, 0, len(d.Camas))
	for _, c := range d.Camas {
		camas = append(camas, CamaFromData(c))
	}
	disponibilidade := d.Disponibilidade
	if disponibilidade == "" {
		disponibilidade = DisponibilidadeLivre
	}
	return &Quarto{
		id:                d.ID,
		numero:            d.Numero,
		capacidade:        d.Capacidade,
		tipo:              d.Tipo,
		precoPorDiaria:    d.PrecoPorDiaria,
		temFrigobar:       d.TemFrigobar,
		temCafeDaManha:    d.TemCafeDaManha,
		temArCondicionado: d.TemArCondicionado,
		temTV:             d.TemTV,
		disponibilidade:   disponibilidade,
		camas:             camas,
		criadoEm:          d.CriadoEm,
		atualizadoEm:      d.AtualizadoEm,
	}
}

func (q *Quarto) ID() string { return q.id }
func (q *Quarto) Numero() int { return q.numero }
func (q *Quarto) Capacidade() int { return q.capacidade }
func (q *Quarto) Tipo() TipoQuarto { return q.tipo }
func (q *Quarto) PrecoPorDiaria() float64 { return q.precoPorDiaria }
func (q *Quarto) TemFrigobar() bool { return q.temFrigobar }
func (q *Quarto) TemCafeDaManha() bool { return q.temCafeDaManha }
func (q *Quarto) TemArCondicionado() bool { return q.temArCondicionado }
func (q *Quarto) TemTV() bool { return q.temTV }
func (q *Quarto) Disponibilidade() Disponibilidade { return q.disponibilidade }
func (q *Quarto) CriadoEm() time.Time { return q.criadoEm }
func (q *Quarto) AtualizadoEm() time.Time { return q.atualizadoEm }

// Camas returns a copy of the beds, in order.
func (q *Quarto) Camas() []Cama {
	return append([]Cama(nil), q.camas...)
}

// AlterarDisponibilidade sets any availability value unconditionally.
func (q *Quarto) AlterarDisponibilidade(d Disponibilidade) {
	q.disponibilidade = d
	q.atualizadoEm = agora()
}

func (q *Quarto) PodeSerReservado() bool {
	return q.disponibilidade == DisponibilidadeLivre
}

func (q *Quarto) AdicionarCama(c Cama) {
	q.camas = append(q.camas, c)
	q.atualizadoEm = agora()
}

// RemoverCama removes the bed with the given id. It reports whether a bed was removed.
func (q *Quarto) RemoverCama(camaID string) bool {
	restantes := q.camas[:0:0]
	for _, c := range q.camas {
		if c.id != camaID {
			restantes = append(restantes, c)
		}
	}
	if len(restantes) == len(q.camas) {
		return false
	}
	q.camas = restantes
	q.atualizadoEm = agora()
	return true
}

func (q *Quarto) AtualizarDados(p AtualizarQuartoParams) {
	if p.Numero != nil {
		q.numero = *p.Numero
	}
	if p.Capacidade != nil {
		q.capacidade = *p.Capacidade
	}
	if p.Tipo != nil {
		q.tipo = *p.Tipo
	}
	if p.PrecoPorDiaria != nil {
		q.precoPorDiaria = *p.PrecoPorDiaria
	}
	if p.TemFrigobar != nil {
		q.temFrigobar = *p.TemFrigobar
	}
	if p.TemCafeDaManha != nil {
		q.temCafeDaManha = *p.TemCafeDaManha
	}
	if p.TemArCondicionado != nil {
		q.temArCondicionado = *p.TemArCondicionado
	}
	if p.TemTV != nil {
		q.temTV = *p.TemTV
	}
	if p.Camas != nil {
		q.camas = append([]Cama(nil), p.Camas...)
	}
	q.atualizadoEm = agora()
}

func (q *Quarto) CalcularValorTotal(numeroDiarias int) float64 {
	return q.precoPorDiaria * float64(numeroDiarias)
}

func (q *Quarto) Validar() ValidationResult {
	var errors []string

	if q.numero <= 0 {
		errors = append(errors, "Número do quarto deve ser maior que zero")
	}
	if q.capacidade <= 0 {
		errors = append(errors, "Capacidade deve ser maior que zero")
	}
	if !q.tipo.Valido() {
		errors = append(errors, "Tipo de quarto inválido")
	}
	if q.precoPorDiaria <= 0 {
		errors = append(errors, "Preço por diária deve ser maior que zero")
	}
	if !q.disponibilidade.Valido() {
		errors = append(errors, "Disponibilidade inválida")
	}
	if len(q.camas) == 0 {
		errors = append(errors, "Quarto deve ter pelo menos uma cama")
	}
	for _, c := range q.camas {
		if !c.tipo.Valido() {
			errors = append(errors, "Tipo de cama inválido")
			break
		}
	}

	return newValidationResult(errors)
}

func (q *Quarto) ToData() QuartoData {
	camas := make([]CamaData, 0, len(q.camas))
	for _, c := range q.camas {
		camas = append(camas, c.ToData())
	}
	return QuartoData{
		ID:                q.id,
		Numero:            q.numero,
		Capacidade:        q.capacidade,
		Tipo:              q.tipo,
		PrecoPorDiaria:    q.precoPorDiaria,
		TemFrigobar:       q.temFrigobar,
		TemCafeDaManha:    q.temCafeDaManha,
		TemArCondicionado: q.temArCondicionado,
		TemTV:             q.temTV,
		Disponibilidade:   q.disponibilidade,
		Camas:             camas,
		CriadoEm:          q.criadoEm,
		AtualizadoEm:      q.atualizadoEm,
	}
}
