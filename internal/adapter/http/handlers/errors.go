package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"hotel_reservas/internal/domain/errs"
	"hotel_reservas/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInternal       = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

// bindJSON binds and validates the body. On failure it writes a 400 and returns false.
func bindJSON(c *gin.Context, payload any) bool {
	if err := c.ShouldBindJSON(payload); err != nil {
		appErr := errInvalidPayload.WithDetails(bindingDetails(err)...)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return false
	}
	return true
}

func bindingDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			details = append(details, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return details
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[http][handler] %s %s failed err=%v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapError translates the error kinds raised by the domain and use cases.
func mapError(err error) *pkg.AppError {
	switch errs.KindOf(err) {
	case errs.KindValidation:
		return pkg.NewDomainError(string(errs.KindValidation), err.Error(), err, http.StatusBadRequest).
			WithDetails(errs.ViolationsOf(err)...)
	case errs.KindNotFound:
		return pkg.NewDomainError(string(errs.KindNotFound), err.Error(), err, http.StatusNotFound)
	case errs.KindConflict:
		return pkg.NewDomainError(string(errs.KindConflict), err.Error(), err, http.StatusConflict)
	case errs.KindInvalidTransition:
		return pkg.NewDomainError(string(errs.KindInvalidTransition), err.Error(), err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
	}
}
