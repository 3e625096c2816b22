package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
	}{
		{"450.00", 45000},
		{"450", 45000},
		{"450.5", 45050},
		{"450,50", 45050},
		{"0.99", 99},
		{".99", 99},
	}
	for _, tc := range cases {
		m, err := ParseMoney(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.cents, m.Cents, tc.in)
		assert.Equal(t, DefaultCurrency, m.Currency, tc.in)
	}
}

func TestParseMoneyInvalid(t *testing.T) {
	for _, in := range []string{"abc", "1.2.3", "R$ 10"} {
		_, err := ParseMoney(in)
		require.ErrorIs(t, err, ErrInvalidMoney, in)
	}
}

func TestMoneyStrings(t *testing.T) {
	m := Money{Cents: 45050, Currency: "BRL"}
	assert.Equal(t, "450.50", m.String())
	assert.Equal(t, "R$ 450.50", m.Display())
	assert.Equal(t, "7.05", Money{Cents: 705}.String())
}

func TestMoneyJSON(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`"450.00"`), &m))
	assert.Equal(t, int64(45000), m.Cents)

	// Older clients posted a bare number.
	require.NoError(t, json.Unmarshal([]byte(`450.5`), &m))
	assert.Equal(t, int64(45050), m.Cents)

	b, err := json.Marshal(Money{Cents: 45000, Currency: "BRL"})
	require.NoError(t, err)
	assert.Equal(t, `"450.00"`, string(b))
}

func TestReservationNormalizeDropsParkingDates(t *testing.T) {
	entry, _ := ParseDate("10/02/2024")
	exit, _ := ParseDate("12/02/2024")
	r := Reservation{Parking: false, ParkingEntry: &entry, ParkingExit: &exit}
	r.Normalize()
	assert.Nil(t, r.ParkingEntry)
	assert.Nil(t, r.ParkingExit)
	assert.Nil(t, r.ParkingStay())

	r = Reservation{Parking: true, ParkingEntry: &entry, ParkingExit: &exit}
	r.Normalize()
	stay := r.ParkingStay()
	require.NotNil(t, stay)
	assert.Equal(t, "10/02/2024", stay.Entry.String())
	assert.Equal(t, "12/02/2024", stay.Exit.String())
}
