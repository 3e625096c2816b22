package utils

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/solriso/reservation-service/models"
)

// HTTPStatus maps a failure to the status code the API reports: unknown ids
// are 404, caller mistakes (bad dates, bad filters, validation) are 400,
// everything else is an internal 500. Store connectivity failures land in
// the default branch; they are logged and never retried here.
func HTTPStatus(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidDate),
		errors.Is(err, models.ErrInvalidMonth),
		errors.Is(err, models.ErrInvalidMoney),
		errors.As(err, &verrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
