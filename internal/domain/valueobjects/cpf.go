package valueobjects

import (
	"strings"

	"hotel_reservas/internal/domain/errs"
)

const cpfDigits = 11

var ErrCPFInvalido = errs.Validation("CPF inválido")

// CPF is a validated Brazilian taxpayer id. The zero value is not a valid CPF.
//
// Internally only the 11 digits are kept; String renders the punctuated form.
type CPF struct {
	valor string
}

// NovoCPF strips any non-digit characters and validates both check digits.
func NovoCPF(raw string) (CPF, error) {
	digits := somenteDigitos(raw)
	if !cpfValido(digits) {
		return CPF{}, ErrCPFInvalido
	}
	return CPF{valor: digits}, nil
}

// Valor returns the 11 digits without punctuation.
func (c CPF) Valor() string {
	return c.valor
}

// Formatado returns the CPF as 000.000.000-00.
func (c CPF) Formatado() string {
	if len(c.valor) != cpfDigits {
		return c.valor
	}
	return c.valor[0:3] + "." + c.valor[3:6] + "." + c.valor[6:9] + "-" + c.valor[9:11]
}

func (c CPF) String() string {
	return c.Formatado()
}

func (c CPF) Equals(other CPF) bool {
	return c.valor == other.valor
}

func (c CPF) IsZero() bool {
	return c.valor == ""
}

func somenteDigitos(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func cpfValido(cpf string) bool {
	if len(cpf) != cpfDigits {
		return false
	}
	if strings.Count(cpf, cpf[:1]) == cpfDigits {
		return false
	}

	d := make([]int, cpfDigits)
	for i, r := range cpf {
		d[i] = int(r - '0')
	}

	return digitoVerificador(d[:9]) == d[9] && digitoVerificador(d[:10]) == d[10]
}

// digitoVerificador computes the check digit for the given prefix (9 or 10 digits).
func digitoVerificador(prefixo []int) int {
	peso := len(prefixo) + 1
	soma := 0
	for i, v := range prefixo {
		soma += v * (peso - i)
	}
	resto := (soma * 10) % 11
	if resto == 10 {
		return 0
	}
	return resto
}
