package request

import (
	"hotel_reservas/internal/domain/valueobjects"

	"github.com/go-playground/validator/v10"
)

// TagCPF validates a CPF in any formatting, e.g. `binding:"required,cpf"`.
const TagCPF = "cpf"

// RegisterValidations adds the custom binding tags used by the request DTOs.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation(TagCPF, validarCPF)
}

func validarCPF(fl validator.FieldLevel) bool {
	_, err := valueobjects.NovoCPF(fl.Field().String())
	return err == nil
}
