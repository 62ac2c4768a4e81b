package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/SscSPs/property_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler applies payments to lease charges.
type paymentHandler struct {
	paymentService portssvc.PaymentSvc
}

func newPaymentHandler(ps portssvc.PaymentSvc) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvc) {
	h := newPaymentHandler(paymentService)
	rg.POST("/payments", h.recordPayment)
}

// recordPayment godoc
// @Summary Record a payment against a lease charge
// @Description Creates a cleared payment and reduces the charge balance. Overpayments are rejected.
// @Tags payments
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} domain.RecordPaymentResult
// @Failure 400 {object} map[string]string "Invalid input or amount exceeds balance"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Lease charge not found"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ws := workspaceFromRequest(c)

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	logger = logger.With(
		slog.String("workspace_id", ws.WorkspaceID),
		slog.String("user_id", ws.UserID),
		slog.String("lease_charge_id", req.LeaseChargeID),
	)
	logger.Info("Received request to record payment")

	result, err := h.paymentService.RecordPayment(c.Request.Context(), ws, req.ToRecordPaymentInput())
	if err != nil {
		respondError(c, logger, err, "Failed to record payment")
		return
	}

	logger.Info("Payment recorded", slog.String("payment_id", result.Payment.ID))
	c.JSON(http.StatusCreated, result)
}
