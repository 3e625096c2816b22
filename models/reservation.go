package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned by every store when an id does not resolve.
var ErrNotFound = errors.New("reserva não encontrada")

// Reservation is one guest booking for a date range and room. JSON tags keep
// the wire names the booking form has always used. There is no update
// operation: a record is immutable after creation until deleted.
type Reservation struct {
	ID        string `json:"id"            gorm:"primaryKey"`
	GuestName string `json:"nome_hospede"  validate:"required"`
	Phone     string `json:"telefone"`
	CPF       string `json:"cpf"`
	Email     string `json:"email"         validate:"omitempty,email"`
	CEP       string `json:"cep"`
	City      string `json:"cidade"`
	District  string `json:"bairro"`
	Street    string `json:"endereco"`
	State     string `json:"uf"`
	Room      string `json:"numero_quarto"`
	CheckIn   Date   `json:"data_checkin"  validate:"required"`
	CheckOut  Date   `json:"data_checkout" validate:"required"`
	Breakfast bool   `json:"cafe_da_manha"`

	// Parking is a sum-typed pair: when Parking is false the dates are nil,
	// never merely blank. Normalize enforces it on every write path.
	Parking      bool  `json:"estacionamento"`
	ParkingEntry *Date `json:"entradaCar" gorm:"column:parking_entry"`
	ParkingExit  *Date `json:"saidaCar"   gorm:"column:parking_exit"`

	Value Money `json:"valorReserva" gorm:"column:value_cents"`

	CreatedAt time.Time `json:"-"`
}

func (Reservation) TableName() string { return "reservations" }

// ParkingStay is the optional parking period of a reservation.
type ParkingStay struct {
	Entry *Date
	Exit  *Date
}

// ParkingStay returns the parking period, or nil when the reservation has no
// parking. Callers never see entry/exit dates on a parking-free booking.
func (r *Reservation) ParkingStay() *ParkingStay {
	if !r.Parking {
		return nil
	}
	return &ParkingStay{Entry: r.ParkingEntry, Exit: r.ParkingExit}
}

// Normalize drops parking dates on parking-free bookings, even if a client
// supplied them, and defaults the currency.
func (r *Reservation) Normalize() {
	if !r.Parking {
		r.ParkingEntry = nil
		r.ParkingExit = nil
	}
	if r.Value.Currency == "" && r.Value.Cents != 0 {
		r.Value.Currency = DefaultCurrency
	}
}

// BeforeCreate assigns the store identity. The id is opaque and immutable
// after creation.
func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r *Reservation) BeforeSave(tx *gorm.DB) error {
	r.Normalize()
	return nil
}
