package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidMonth is returned by TranslateFilter for a malformed mes value.
var ErrInvalidMonth = fmt.Errorf("invalid month, want yyyy-mm")

// Filter is the store-independent form of the list query: an optional
// guest-name fragment and an optional check-in month. Matches is a pure
// predicate over a Reservation, so filter semantics are testable without a
// database and every store applies the exact same rule.
type Filter struct {
	Name string

	hasMonth   bool
	monthStart Date // first day of the month, inclusive
	monthEnd   Date // first day of the next month, exclusive
}

// TranslateFilter builds a Filter from the raw query parameters. An empty
// nome matches every guest; an empty mes matches every month. mes must be
// "yyyy-mm".
func TranslateFilter(nome, mes string) (Filter, error) {
	f := Filter{Name: strings.TrimSpace(nome)}
	mes = strings.TrimSpace(mes)
	if mes == "" {
		return f, nil
	}
	y, m, ok := strings.Cut(mes, "-")
	if !ok {
		return Filter{}, fmt.Errorf("%w: %q", ErrInvalidMonth, mes)
	}
	year, err := strconv.Atoi(y)
	if err != nil {
		return Filter{}, fmt.Errorf("%w: %q", ErrInvalidMonth, mes)
	}
	month, err := strconv.Atoi(m)
	if err != nil || month < 1 || month > 12 {
		return Filter{}, fmt.Errorf("%w: %q", ErrInvalidMonth, mes)
	}
	f.hasMonth = true
	f.monthStart = Date{Year: year, Month: time.Month(month), Day: 1}
	if month == 12 {
		f.monthEnd = Date{Year: year + 1, Month: time.January, Day: 1}
	} else {
		f.monthEnd = Date{Year: year, Month: time.Month(month + 1), Day: 1}
	}
	return f, nil
}

// Matches reports whether the reservation satisfies every set criterion.
// The name match is a case-insensitive substring; the month match is the
// half-open interval [first of month, first of next month) over the
// check-in date.
func (f Filter) Matches(r Reservation) bool {
	if f.Name != "" &&
		!strings.Contains(strings.ToLower(r.GuestName), strings.ToLower(f.Name)) {
		return false
	}
	if f.hasMonth {
		if r.CheckIn.Before(f.monthStart) || !r.CheckIn.Before(f.monthEnd) {
			return false
		}
	}
	return true
}
