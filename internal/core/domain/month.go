package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/property_management_app/internal/apperrors"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Month is a validated calendar month (the YYYY-MM token used by every period query).
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth trims and validates a YYYY-MM token.
func ParseMonth(token string) (Month, error) {
	trimmed := strings.TrimSpace(token)
	if !monthPattern.MatchString(trimmed) {
		return Month{}, invalidMonth(token)
	}

	year, err := strconv.Atoi(trimmed[:4])
	if err != nil {
		return Month{}, invalidMonth(token)
	}
	month, err := strconv.Atoi(trimmed[5:])
	if err != nil || month < 1 || month > 12 {
		return Month{}, invalidMonth(token)
	}

	return Month{Year: year, Month: time.Month(month)}, nil
}

// NormalizeMonth validates a token and returns its canonical YYYY-MM form.
func NormalizeMonth(token string) (string, error) {
	m, err := ParseMonth(token)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

// InvalidMonthError reports a month token that is not YYYY-MM. It matches apperrors.ErrInvalidMonth.
type InvalidMonthError struct {
	Token string
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("Invalid month %q. Expected format YYYY-MM", e.Token)
}

func (e *InvalidMonthError) Is(target error) bool {
	return target == apperrors.ErrInvalidMonth
}

func invalidMonth(token string) error {
	return &InvalidMonthError{Token: token}
}

// MonthOf returns the month containing t, evaluated in UTC.
func MonthOf(t time.Time) Month {
	t = t.UTC()
	return Month{Year: t.Year(), Month: t.Month()}
}

// Range returns the half-open UTC interval [start, end) covering the month.
// time.Date normalizes month 13 into January of the following year.
func (m Month) Range() (start, end time.Time) {
	start = time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(m.Year, m.Month+1, 1, 0, 0, 0, 0, time.UTC)
	return start, end
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}
