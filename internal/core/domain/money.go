package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DefaultCurrencyCode is used when a charge does not carry its own currency.
const DefaultCurrencyCode = "USD"

// amountKind tags which representation a MonetaryAmount holds.
type amountKind int

const (
	amountAbsent amountKind = iota
	amountNumber
	amountString
	amountStructured
)

// MonetaryAmount is the polymorphic money value stored on CRM records: a plain number,
// a numeric string, or an {amountMicros, currencyCode} pair. The zero value is an absent amount.
// Callers must go through Normalize before doing any arithmetic.
type MonetaryAmount struct {
	kind         amountKind
	number       decimal.Decimal
	text         string
	micros       int64
	hasMicros    bool
	currencyCode string
}

// NoAmount returns an absent amount.
func NoAmount() MonetaryAmount {
	return MonetaryAmount{}
}

// NewAmountFromDecimal wraps an already normalized decimal as a plain number.
func NewAmountFromDecimal(d decimal.Decimal) MonetaryAmount {
	return MonetaryAmount{kind: amountNumber, number: d}
}

// NewAmountFromFloat wraps a float. NaN and infinities become zero.
func NewAmountFromFloat(f float64) MonetaryAmount {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return MonetaryAmount{kind: amountNumber, number: decimal.Zero}
	}
	return MonetaryAmount{kind: amountNumber, number: decimal.NewFromFloat(f)}
}

// NewAmountFromString wraps a numeric string. Parsing is deferred to Normalize.
func NewAmountFromString(s string) MonetaryAmount {
	return MonetaryAmount{kind: amountString, text: s}
}

// NewAmountFromMicros builds the structured representation.
func NewAmountFromMicros(micros int64, currencyCode string) MonetaryAmount {
	return MonetaryAmount{kind: amountStructured, micros: micros, hasMicros: true, currencyCode: currencyCode}
}

// IsPresent reports whether the amount carries any representation at all.
func (m MonetaryAmount) IsPresent() bool {
	return m.kind != amountAbsent
}

// IsStructured reports whether the amount is an {amountMicros, currencyCode} pair.
func (m MonetaryAmount) IsStructured() bool {
	return m.kind == amountStructured
}

// CurrencyCode returns the currency of a structured amount, or "" for the other forms.
func (m MonetaryAmount) CurrencyCode() string {
	return m.currencyCode
}

// Normalize reduces the amount to decimal major units. It never fails: unparsable strings,
// missing micros and absent values all normalize to zero.
func (m MonetaryAmount) Normalize() decimal.Decimal {
	switch m.kind {
	case amountNumber:
		return m.number
	case amountString:
		d, err := decimal.NewFromString(strings.TrimSpace(m.text))
		if err != nil {
			return decimal.Zero
		}
		return d
	case amountStructured:
		if !m.hasMicros {
			return decimal.Zero
		}
		return FromMicros(m.micros)
	default:
		return decimal.Zero
	}
}

// ToMicros converts major units to micros, rounding to the nearest integer. Amounts whose
// micros do not fit in an int64 fail with ErrValidation.
func ToMicros(d decimal.Decimal) (int64, error) {
	micros := d.Shift(6).Round(0)
	if !micros.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: amount %s is out of range", apperrors.ErrValidation, d.String())
	}
	return micros.IntPart(), nil
}

// FromMicros converts micros back to major units.
func FromMicros(micros int64) decimal.Decimal {
	return decimal.New(micros, -6)
}

// RoundCurrency rounds to cents.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// NormalizeCurrencyCode upper-cases a currency code and falls back to DefaultCurrencyCode.
func NormalizeCurrencyCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return DefaultCurrencyCode
	}
	return code
}

type structuredAmount struct {
	AmountMicros json.RawMessage `json:"amountMicros"`
	CurrencyCode *string         `json:"currencyCode"`
}

// UnmarshalJSON accepts every representation a record store may hand back. Anything it
// does not recognise decodes as an absent amount rather than an error.
func (m *MonetaryAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*m = MonetaryAmount{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*m = NewAmountFromString(s)
	case '{':
		var raw structuredAmount
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
		m.kind = amountStructured
		if raw.CurrencyCode != nil {
			m.currencyCode = *raw.CurrencyCode
		}
		if micros, ok := parseMicros(raw.AmountMicros); ok {
			m.micros = micros
			m.hasMicros = true
		}
	case 't', 'f', '[':
		return nil
	default:
		d, err := decimal.NewFromString(string(data))
		if err != nil {
			return nil
		}
		*m = NewAmountFromDecimal(d)
	}
	return nil
}

func parseMicros(raw json.RawMessage) (int64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] == '"' || raw[0] == 'n' || raw[0] == '{' || raw[0] == '[' || raw[0] == 't' || raw[0] == 'f' {
		return 0, false
	}
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return 0, false
	}
	return d.Round(0).IntPart(), true
}

// MarshalJSON writes the amount back in the representation it was read in.
func (m MonetaryAmount) MarshalJSON() ([]byte, error) {
	switch m.kind {
	case amountNumber:
		return []byte(m.number.String()), nil
	case amountString:
		return json.Marshal(m.text)
	case amountStructured:
		out := map[string]any{"currencyCode": m.currencyCode}
		if m.hasMicros {
			out["amountMicros"] = m.micros
		} else {
			out["amountMicros"] = nil
		}
		return json.Marshal(out)
	default:
		return []byte("null"), nil
	}
}
