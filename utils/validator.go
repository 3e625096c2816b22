package utils

import (
	"github.com/go-playground/validator/v10"

	"github.com/solriso/reservation-service/models"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterStructValidation(reservationStructLevel, models.Reservation{})
}

// reservationStructLevel holds the cross-field rules: a guest checks out on
// or after the day they check in, and a parking period may not end before it
// starts.
func reservationStructLevel(sl validator.StructLevel) {
	r := sl.Current().Interface().(models.Reservation)
	if !r.CheckIn.IsZero() && !r.CheckOut.IsZero() && r.CheckOut.Before(r.CheckIn) {
		sl.ReportError(r.CheckOut, "data_checkout", "CheckOut", "gtecheckin", "")
	}
	if stay := r.ParkingStay(); stay != nil && stay.Entry != nil && stay.Exit != nil {
		if stay.Exit.Before(*stay.Entry) {
			sl.ReportError(r.ParkingExit, "saidaCar", "ParkingExit", "gteentrada", "")
		}
	}
}
