package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Object names of the CRM custom objects read and written by this service.
const (
	ObjectProperty    = "property"
	ObjectUnit        = "unit"
	ObjectLease       = "lease"
	ObjectWorkOrder   = "workOrder"
	ObjectLeaseCharge = "leaseCharge"
	ObjectPayment     = "payment"
)

// Field names used in record-store filters.
const (
	FieldID           = "id"
	FieldPropertyID   = "propertyId"
	FieldLeaseID      = "leaseId"
	FieldRentChargeID = "rentChargeId"
	FieldChargeType   = "chargeType"
	FieldStatus       = "status"
	FieldLeaseStatus  = "leaseStatus"
	FieldDueDate      = "dueDate"
	FieldPaymentDate  = "paymentDate"
)

const ChargeTypeRent = "Rent"

// Lease charge statuses.
const (
	ChargeStatusOpen          = "Open"
	ChargeStatusPartiallyPaid = "Partially Paid"
	ChargeStatusPaid          = "Paid"
	ChargeStatusBilled        = "Billed"
	ChargeStatusPartial       = "Partial"
	ChargeStatusOverdue       = "Overdue"
	ChargeStatusWaived        = "Waived"
	ChargeStatusScheduled     = "Scheduled"
)

// Payment statuses.
const (
	PaymentStatusCompleted = "Completed"
	PaymentStatusCleared   = "Cleared"
)

// Lease statuses that count toward occupancy.
const (
	LeaseStatusActive         = "Active"
	LeaseStatusRenewalOffered = "Renewal Offered"
	LeaseStatusRenewalSigned  = "Renewal Signed"
)

// Work order statuses that are still open.
const (
	WorkOrderStatusNew               = "New"
	WorkOrderStatusInReview          = "In Review"
	WorkOrderStatusScheduled         = "Scheduled"
	WorkOrderStatusInProgress        = "In Progress"
	WorkOrderStatusWaitingOnResident = "Waiting on Resident"
)

// Record is a raw record as exchanged with the record store.
type Record map[string]any

// ID returns the record's id field, or "".
func (r Record) ID() string {
	if r == nil {
		return ""
	}
	if id, ok := r[FieldID].(string); ok {
		return id
	}
	return ""
}

// Page selects a window of records.
type Page struct {
	Limit  int
	Offset int
}

// RecordPage is one page of a record-store query.
type RecordPage struct {
	Records    []Record
	TotalCount int
}

// DecodeRecord converts a raw record into one of the typed record structs.
func DecodeRecord[T any](r Record) (T, error) {
	var out T
	raw, err := json.Marshal(r)
	if err != nil {
		return out, fmt.Errorf("encode record: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode record: %w", err)
	}
	return out, nil
}

// ParseRecordTime parses the date/time strings the CRM stores (RFC3339 or plain dates).
func ParseRecordTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// OptionalNumber is a numeric field the CRM may hold as a number or a numeric string.
// Anything else, including non-finite values, decodes as not set.
type OptionalNumber struct {
	Value float64
	Valid bool
}

// NumberOf returns a set OptionalNumber.
func NumberOf(v float64) OptionalNumber {
	return OptionalNumber{Value: v, Valid: true}
}

func (n *OptionalNumber) UnmarshalJSON(data []byte) error {
	*n = OptionalNumber{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	text := string(data)
	switch data[0] {
	case '"':
		if err := json.Unmarshal(data, &text); err != nil {
			return nil
		}
		text = strings.TrimSpace(text)
	case 'n', 't', 'f', '{', '[':
		return nil
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*n = NumberOf(v)
	return nil
}

func (n OptionalNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// PropertyRecord is a rental property.
type PropertyRecord struct {
	ID         string   `json:"id"`
	Name       string   `json:"name,omitempty"`
	Street     string   `json:"street,omitempty"`
	City       string   `json:"city,omitempty"`
	State      string   `json:"state,omitempty"`
	PostalCode string   `json:"postalCode,omitempty"`
	UnitCount  OptionalNumber `json:"unitCount"`
	Status     string   `json:"status,omitempty"`
}

// UnitRecord is a rentable unit within a property.
type UnitRecord struct {
	ID          string         `json:"id"`
	PropertyID  string         `json:"propertyId,omitempty"`
	UnitNumber  string         `json:"unitNumber,omitempty"`
	Status      string         `json:"status,omitempty"`
	Bedrooms    OptionalNumber `json:"bedrooms"`
	Bathrooms   OptionalNumber `json:"bathrooms"`
	MarketRent  MonetaryAmount `json:"marketRent"`
	CurrentRent MonetaryAmount `json:"currentRent"`
	ReadyDate   *string        `json:"readyDate,omitempty"`
}

// LeaseRecord is a lease on a unit. A nil EndDate means open-ended.
type LeaseRecord struct {
	ID          string         `json:"id"`
	PropertyID  string         `json:"propertyId,omitempty"`
	UnitID      string         `json:"unitId,omitempty"`
	StartDate   *string        `json:"startDate,omitempty"`
	EndDate     *string        `json:"endDate,omitempty"`
	LeaseStatus string         `json:"leaseStatus,omitempty"`
	RentAmount  MonetaryAmount `json:"rentAmount"`
}

// IsActiveDuring reports whether the lease overlaps [periodStart, periodEnd):
// start < periodEnd and (no end or end >= periodStart). Leases without a start, or with a
// start or end that cannot be parsed, never count.
func (l LeaseRecord) IsActiveDuring(periodStart, periodEnd time.Time) bool {
	if l.StartDate == nil {
		return false
	}
	start, ok := ParseRecordTime(*l.StartDate)
	if !ok {
		return false
	}
	if !start.Before(periodEnd) {
		return false
	}
	if l.EndDate == nil || strings.TrimSpace(*l.EndDate) == "" {
		return true
	}
	end, ok := ParseRecordTime(*l.EndDate)
	if !ok {
		return false
	}
	return !end.Before(periodStart)
}

// WorkOrderRecord is a maintenance request.
type WorkOrderRecord struct {
	ID          string  `json:"id"`
	PropertyID  string  `json:"propertyId,omitempty"`
	UnitID      string  `json:"unitId,omitempty"`
	Status      string  `json:"status,omitempty"`
	RequestedAt *string `json:"requestedAt,omitempty"`
	CompletedAt *string `json:"completedAt,omitempty"`
}

// LeaseChargeRecord is a billed obligation on a lease.
type LeaseChargeRecord struct {
	ID               string         `json:"id"`
	LeaseID          string         `json:"leaseId,omitempty"`
	PropertyID       string         `json:"propertyId,omitempty"`
	UnitID           string         `json:"unitId,omitempty"`
	TenantID         string         `json:"tenantId,omitempty"`
	ChargeType       string         `json:"chargeType,omitempty"`
	Amount           MonetaryAmount `json:"amount"`
	DueDate          *string        `json:"dueDate,omitempty"`
	PeriodStart      *string        `json:"periodStart,omitempty"`
	PeriodEnd        *string        `json:"periodEnd,omitempty"`
	Status           string         `json:"status,omitempty"`
	BalanceRemaining MonetaryAmount `json:"balanceRemaining"`
}

// Due returns the parsed due date.
func (c LeaseChargeRecord) Due() (time.Time, bool) {
	if c.DueDate == nil {
		return time.Time{}, false
	}
	return ParseRecordTime(*c.DueDate)
}

// PaymentRecord is a payment received against a lease (and usually one charge).
type PaymentRecord struct {
	ID              string         `json:"id"`
	LeaseID         string         `json:"leaseId,omitempty"`
	RentChargeID    string         `json:"rentChargeId,omitempty"`
	PropertyID      string         `json:"propertyId,omitempty"`
	UnitID          string         `json:"unitId,omitempty"`
	Amount          MonetaryAmount `json:"amount"`
	PaymentDate     *string        `json:"paymentDate,omitempty"`
	Status          string         `json:"status,omitempty"`
	ReferenceNumber string         `json:"referenceNumber,omitempty"`
	Memo            string         `json:"memo,omitempty"`
}
