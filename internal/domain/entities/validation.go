package entities

import (
	"time"

	"hotel_reservas/internal/domain/errs"
)

// ValidationResult collects every violated invariant of an entity.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

func newValidationResult(errors []string) ValidationResult {
	if errors == nil {
		errors = []string{}
	}
	return ValidationResult{IsValid: len(errors) == 0, Errors: errors}
}

// Err converts an invalid result into a validation error; nil when valid.
func (r ValidationResult) Err() error {
	if r.IsValid {
		return nil
	}
	return errs.Validation(r.Errors...)
}

// agora is the entity clock; tests replace it to observe timestamp bumps.
var agora = func() time.Time {
	return time.Now().UTC()
}
