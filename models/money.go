package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DefaultCurrency is the currency assumed for amounts that arrive without
// one. The pousada charges in Brazilian reais.
const DefaultCurrency = "BRL"

// ErrInvalidMoney is returned by ParseMoney for unparseable amounts.
var ErrInvalidMoney = fmt.Errorf("invalid monetary amount")

// Money is a fixed-point monetary amount: integer cents plus an explicit
// currency code. The reservation value used to travel as free text; keeping
// cents makes totals and reporting arithmetic-safe.
type Money struct {
	Cents    int64
	Currency string
}

// ParseMoney reads a decimal string such as "450", "450.5" or "450.00".
// A thousands separator is not accepted; a comma decimal separator is,
// since the booking form is filled in by Brazilian staff.
func ParseMoney(raw string) (Money, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Money{}, nil
	}
	raw = strings.Replace(raw, ",", ".", 1)
	neg := strings.HasPrefix(raw, "-")
	if neg {
		raw = raw[1:]
	}
	whole, frac, _ := strings.Cut(raw, ".")
	if whole == "" {
		whole = "0"
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidMoney, raw)
	}
	cents := units * 100
	if frac != "" {
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return Money{}, fmt.Errorf("%w: %q", ErrInvalidMoney, raw)
		}
		cents += f
	}
	if neg {
		cents = -cents
	}
	return Money{Cents: cents, Currency: DefaultCurrency}, nil
}

func (m Money) IsZero() bool {
	return m == Money{}
}

// String renders the plain decimal amount, e.g. "450.00".
func (m Money) String() string {
	cents := m.Cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// Display renders the amount with its currency symbol for documents,
// e.g. "R$ 450.00".
func (m Money) Display() string {
	symbol := m.Currency
	if m.Currency == "BRL" || m.Currency == "" {
		symbol = "R$"
	}
	return symbol + " " + m.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Money) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Money{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		// Older clients posted a bare number.
		var n float64
		if nerr := json.Unmarshal(data, &n); nerr != nil {
			return err
		}
		raw = strconv.FormatFloat(n, 'f', 2, 64)
	}
	parsed, err := ParseMoney(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// GormDataType stores amounts as integer cents.
func (Money) GormDataType() string {
	return "int"
}

func (m Money) Value() (driver.Value, error) {
	return m.Cents, nil
}

func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = Money{}
		return nil
	case int64:
		*m = Money{Cents: v, Currency: DefaultCurrency}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Money", src)
	}
}
