package valueobjects

import (
	"regexp"
	"strings"

	"hotel_reservas/internal/domain/errs"
)

var (
	ErrEmailInvalido = errs.Validation("E-mail inválido")

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Email is a trimmed, lower-cased e-mail address.
type Email struct {
	valor string
}

func NovoEmail(raw string) (Email, error) {
	normalizado := strings.ToLower(strings.TrimSpace(raw))
	if !emailPattern.MatchString(normalizado) {
		return Email{}, ErrEmailInvalido
	}
	return Email{valor: normalizado}, nil
}

func (e Email) Valor() string {
	return e.valor
}

func (e Email) String() string {
	return e.valor
}

func (e Email) Equals(other Email) bool {
	return e.valor == other.valor
}

func (e Email) IsZero() bool {
	return e.valor == ""
}
