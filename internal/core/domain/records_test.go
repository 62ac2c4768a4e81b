package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRecord_ID(t *testing.T) {
	assert.Equal(t, "L1", Record{"id": "L1"}.ID())
	assert.Equal(t, "", Record{"id": 7}.ID())
	assert.Equal(t, "", Record(nil).ID())
}

func TestParseRecordTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"2024-03-05T10:30:00", time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC), true},
		{"2024-03-05T10:30:00+02:00", time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC), true},
		{" 2024-03-05T10:30:00.123Z ", time.Date(2024, 3, 5, 10, 30, 0, 123000000, time.UTC), true},
		{"", time.Time{}, false},
		{"05/03/2024", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseRecordTime(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestDecodeRecord_LeaseCharge(t *testing.T) {
	raw := Record{
		"id":               "C1",
		"leaseId":          "L1",
		"propertyId":       "P1",
		"chargeType":       "Rent",
		"amount":           map[string]any{"amountMicros": 1200000000, "currencyCode": "USD"},
		"balanceRemaining": 450.25,
		"dueDate":          "2024-03-01",
		"status":           "Partially Paid",
		"somethingElse":    true,
	}

	charge, err := DecodeRecord[LeaseChargeRecord](raw)
	require.NoError(t, err)
	assert.Equal(t, "C1", charge.ID)
	assert.Equal(t, "L1", charge.LeaseID)
	assert.Equal(t, "1200", charge.Amount.Normalize().String())
	assert.Equal(t, "450.25", charge.BalanceRemaining.Normalize().String())
	assert.Equal(t, "USD", charge.Amount.CurrencyCode())

	due, ok := charge.Due()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), due)
}

func TestDecodeRecord_MissingMoneyIsAbsent(t *testing.T) {
	charge, err := DecodeRecord[LeaseChargeRecord](Record{"id": "C1"})
	require.NoError(t, err)
	assert.False(t, charge.BalanceRemaining.IsPresent())
	_, ok := charge.Due()
	assert.False(t, ok)
}

func TestOptionalNumber_Decode(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want OptionalNumber
	}{
		{"number", 12, NumberOf(12)},
		{"fraction", 7.5, NumberOf(7.5)},
		{"numeric string", " 10 ", NumberOf(10)},
		{"word", "ten", OptionalNumber{}},
		{"nan string", "NaN", OptionalNumber{}},
		{"infinite string", "Inf", OptionalNumber{}},
		{"bool", true, OptionalNumber{}},
		{"object", map[string]any{"value": 3}, OptionalNumber{}},
		{"null", nil, OptionalNumber{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			property, err := DecodeRecord[PropertyRecord](Record{"id": "P1", "unitCount": tt.raw})
			require.NoError(t, err)
			assert.Equal(t, tt.want, property.UnitCount)
		})
	}

	property, err := DecodeRecord[PropertyRecord](Record{"id": "P1"})
	require.NoError(t, err)
	assert.False(t, property.UnitCount.Valid)
}

func TestOptionalNumber_Marshal(t *testing.T) {
	raw, err := json.Marshal(UnitRecord{ID: "U1", Bedrooms: NumberOf(2)})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"bedrooms":2`)
	assert.Contains(t, string(raw), `"bathrooms":null`)
}

func TestDecodeRecord_WrongType(t *testing.T) {
	_, err := DecodeRecord[LeaseRecord](Record{"id": 12})
	assert.Error(t, err)
}

func TestLeaseRecord_IsActiveDuring(t *testing.T) {
	march := mustMonth(t, "2024-03")
	start, end := march.Range()

	tests := []struct {
		name  string
		lease LeaseRecord
		want  bool
	}{
		{"open ended", LeaseRecord{StartDate: strPtr("2023-01-01")}, true},
		{"blank end", LeaseRecord{StartDate: strPtr("2023-01-01"), EndDate: strPtr(" ")}, true},
		{"ends on first day", LeaseRecord{StartDate: strPtr("2023-01-01"), EndDate: strPtr("2024-03-01")}, true},
		{"ended before", LeaseRecord{StartDate: strPtr("2023-01-01"), EndDate: strPtr("2024-02-29")}, false},
		{"starts last day", LeaseRecord{StartDate: strPtr("2024-03-31")}, true},
		{"starts next month", LeaseRecord{StartDate: strPtr("2024-04-01")}, false},
		{"no start", LeaseRecord{EndDate: strPtr("2025-01-01")}, false},
		{"unparsable start", LeaseRecord{StartDate: strPtr("soon")}, false},
		{"unparsable end", LeaseRecord{StartDate: strPtr("2020-01-01"), EndDate: strPtr("not-a-date")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lease.IsActiveDuring(start, end))
		})
	}
}

func TestWorkspaceContext_Validate(t *testing.T) {
	assert.NoError(t, WorkspaceContext{WorkspaceID: "ws", UserID: "u"}.Validate())
	assert.ErrorIs(t, WorkspaceContext{UserID: "u"}.Validate(), apperrors.ErrMissingWorkspaceContext)
	assert.ErrorIs(t, WorkspaceContext{WorkspaceID: "ws"}.Validate(), apperrors.ErrMissingWorkspaceContext)
}

func mustMonth(t *testing.T, s string) Month {
	t.Helper()
	m, err := ParseMonth(s)
	require.NoError(t, err)
	return m
}
