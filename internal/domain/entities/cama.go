package entities

import "github.com/google/uuid"

// Cama is a bed inside a room. Beds are values with identity: two beds of the
// same type are still different beds.
type Cama struct {
	id   string
	tipo TipoCama
}

type CamaData struct {
	ID   string   `json:"id"`
	Tipo TipoCama `json:"tipo"`
}

func NovaCama(tipo TipoCama) Cama {
	return Cama{id: uuid.NewString(), tipo: tipo}
}

func CamaFromData(d CamaData) Cama {
	if d.ID == "" {
		return NovaCama(d.Tipo)
	}
	return Cama{id: d.ID, tipo: d.Tipo}
}

func (c Cama) ID() string {
	return c.id
}

func (c Cama) Tipo() TipoCama {
	return c.tipo
}

func (c Cama) Equals(other Cama) bool {
	return c.id == other.id && c.tipo == other.tipo
}

func (c Cama) ToData() CamaData {
	return CamaData{ID: c.id, Tipo: c.tipo}
}
