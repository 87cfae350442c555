package usecase

import (
	"errors"
	"fmt"
)

// compensado builds the error returned when the second step of a booking saga
// fails. The compensation of the first step is attempted exactly once; if it
// also fails both causes are reported.
func compensado(causa error, falhaCompensacao error) error {
	if falhaCompensacao == nil {
		return causa
	}
	return errors.Join(causa, fmt.Errorf("compensação falhou: %w", falhaCompensacao))
}
