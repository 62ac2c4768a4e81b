package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type paymentService struct {
	BaseService
	objects portssvc.ObjectSvc
}

// NewPaymentService creates the payment application engine.
func NewPaymentService(objects portssvc.ObjectSvc) portssvc.PaymentSvc {
	return &paymentService{objects: objects}
}

var _ portssvc.PaymentSvc = (*paymentService)(nil)

// RecordPayment validates the payment against the charge balance, creates the payment record
// and then writes the reduced balance and new status back to the charge.
func (s *paymentService) RecordPayment(ctx context.Context, ws domain.WorkspaceContext, input domain.RecordPaymentInput) (*domain.RecordPaymentResult, error) {
	if err := s.RequireWorkspace(ctx, ws); err != nil {
		return nil, err
	}
	if err := validatePaymentInput(input); err != nil {
		return nil, err
	}

	charges, err := s.objects.ListLeaseCharges(ctx, ws, domain.Where(domain.Eq(domain.FieldID, input.LeaseChargeID)))
	if err != nil {
		return nil, err
	}
	if len(charges) == 0 {
		return nil, fmt.Errorf("%w: lease charge %s not found", apperrors.ErrChargeNotFound, input.LeaseChargeID)
	}
	charge := charges[0]

	chargeAmount := charge.Amount.Normalize()
	// A charge that never had a balance written still owes its full amount.
	currentBalance := chargeAmount
	if charge.BalanceRemaining.IsPresent() {
		currentBalance = charge.BalanceRemaining.Normalize()
	}

	if input.Amount.Round(6).GreaterThan(currentBalance.Round(6)) {
		s.LogInfo(ctx, "Payment rejected, amount exceeds balance",
			slog.String("charge_id", charge.ID),
			slog.String("amount", input.Amount.String()),
			slog.String("balance", currentBalance.String()))
		return nil, fmt.Errorf("%w: payment amount (%s) exceeds balance remaining (%s)",
			apperrors.ErrPaymentExceedsBalance, input.Amount.StringFixed(2), currentBalance.StringFixed(2))
	}

	paymentMicros, err := domain.ToMicros(input.Amount)
	if err != nil {
		return nil, err
	}
	newBalance := currentBalance.Sub(domain.FromMicros(paymentMicros))
	newBalanceMicros, err := domain.ToMicros(newBalance)
	if err != nil {
		return nil, fmt.Errorf("balance of lease charge %s: %w", charge.ID, err)
	}
	newStatus := nextChargeStatus(charge.Status, newBalance, chargeAmount)

	currencyCode := domain.NormalizeCurrencyCode(charge.Amount.CurrencyCode())

	paymentFields := domain.Record{
		"leaseId":      input.LeaseID,
		"rentChargeId": charge.ID,
		"amount": map[string]any{
			"amountMicros": paymentMicros,
			"currencyCode": currencyCode,
		},
		"paymentDate": input.PaymentDate,
		"status":      domain.PaymentStatusCleared,
	}
	if charge.PropertyID != "" {
		paymentFields["propertyId"] = charge.PropertyID
	}
	if charge.UnitID != "" {
		paymentFields["unitId"] = charge.UnitID
	}
	if input.ReferenceNumber != "" {
		paymentFields["referenceNumber"] = input.ReferenceNumber
	}
	if input.Memo != "" {
		paymentFields["memo"] = input.Memo
	}

	payment, err := s.objects.CreatePayment(ctx, ws, paymentFields)
	if err != nil {
		return nil, err
	}

	updated, err := s.objects.UpdateLeaseCharge(ctx, ws, charge.ID, domain.Record{
		"balanceRemaining": map[string]any{
			"amountMicros": newBalanceMicros,
			"currencyCode": currencyCode,
		},
		"status": newStatus,
	})
	if err != nil {
		// The payment exists but the charge still shows the old balance.
		s.LogError(ctx, err, "Payment created but lease charge update failed",
			slog.String("payment_id", payment.ID),
			slog.String("charge_id", charge.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.ID),
		slog.String("charge_id", charge.ID),
		slog.String("amount", input.Amount.String()),
		slog.String("new_balance", newBalance.String()),
		slog.String("status", newStatus))

	return &domain.RecordPaymentResult{
		Payment:       *payment,
		UpdatedCharge: *updated,
		NewBalance:    newBalance,
	}, nil
}

// nextChargeStatus is Paid at zero, Partial while something but less than the charge is owed,
// and the current status otherwise.
func nextChargeStatus(current string, newBalance, chargeAmount decimal.Decimal) string {
	switch {
	case newBalance.IsZero():
		return domain.ChargeStatusPaid
	case newBalance.IsPositive() && newBalance.LessThan(chargeAmount):
		return domain.ChargeStatusPartial
	default:
		return current
	}
}

func validatePaymentInput(input domain.RecordPaymentInput) error {
	var problems []string
	if strings.TrimSpace(input.LeaseChargeID) == "" {
		problems = append(problems, "leaseChargeId is required")
	}
	if strings.TrimSpace(input.LeaseID) == "" {
		problems = append(problems, "leaseId is required")
	}
	if !input.Amount.IsPositive() {
		problems = append(problems, "amount must be greater than zero")
	}
	if strings.TrimSpace(input.PaymentDate) == "" {
		problems = append(problems, "paymentDate is required")
	} else if _, ok := domain.ParseRecordTime(input.PaymentDate); !ok {
		problems = append(problems, "paymentDate must be a date (YYYY-MM-DD) or RFC3339 timestamp")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}
