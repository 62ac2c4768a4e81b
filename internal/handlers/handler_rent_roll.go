package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/SscSPs/property_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const defaultDaysOverdue = 1

// rentRollHandler serves the charge-level rent roll reports.
type rentRollHandler struct {
	rentRollService portssvc.RentRollReportSvc
}

func newRentRollHandler(rs portssvc.RentRollReportSvc) *rentRollHandler {
	return &rentRollHandler{rentRollService: rs}
}

// registerRentRollRoutes registers the rent roll, lease history and delinquency report routes.
func registerRentRollRoutes(rg *gin.RouterGroup, rentRollService portssvc.RentRollReportSvc) {
	h := newRentRollHandler(rentRollService)

	rg.GET("/rent-roll", h.getRentRoll)
	rg.GET("/leases/:lease_id/payment-history", h.getLeasePaymentHistory)
	rg.GET("/delinquency/report", h.getDelinquencyReport)
}

// getRentRoll godoc
// @Summary Rent roll report
// @Description Lists lease charges with their payments and days overdue, filtered by due date, property and status
// @Tags rent-roll
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param startDate query string false "Earliest due date (YYYY-MM-DD or RFC3339)"
// @Param endDate query string false "Latest due date (YYYY-MM-DD or RFC3339)"
// @Param propertyId query string false "Property ID"
// @Param status query []string false "Charge statuses" collectionFormat(multi)
// @Success 200 {object} domain.RentRollReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build rent roll"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/rent-roll [get]
func (h *rentRollHandler) getRentRoll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ws := workspaceFromRequest(c)

	var q dto.RentRollQuery
	if !bindQuery(c, logger, &q) {
		return
	}

	filter := domain.RentRollFilter{PropertyID: q.PropertyID, Statuses: q.Status}
	var err error
	if filter.StartDate, err = parseOptionalDate("startDate", q.StartDate); err != nil {
		respondError(c, logger, err, "Invalid startDate")
		return
	}
	if filter.EndDate, err = parseOptionalDate("endDate", q.EndDate); err != nil {
		respondError(c, logger, err, "Invalid endDate")
		return
	}

	logger = logger.With(slog.String("workspace_id", ws.WorkspaceID))
	report, err := h.rentRollService.RentRoll(c.Request.Context(), ws, filter)
	if err != nil {
		respondError(c, logger, err, "Failed to build rent roll")
		return
	}

	logger.Info("Rent roll generated", slog.Int("charges", report.Summary.ChargesCount))
	c.JSON(http.StatusOK, report)
}

// getLeasePaymentHistory godoc
// @Summary Lease payment history
// @Description Lists every charge of the lease, newest due date first, with its payments and the running totals
// @Tags rent-roll
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param lease_id path string true "Lease ID"
// @Success 200 {object} domain.LeasePaymentHistory
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load payment history"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/leases/{lease_id}/payment-history [get]
func (h *rentRollHandler) getLeasePaymentHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ws := workspaceFromRequest(c)
	leaseID := c.Param("lease_id")

	logger = logger.With(slog.String("workspace_id", ws.WorkspaceID), slog.String("lease_id", leaseID))
	history, err := h.rentRollService.LeasePaymentHistory(c.Request.Context(), ws, leaseID)
	if err != nil {
		respondError(c, logger, err, "Failed to load payment history")
		return
	}
	c.JSON(http.StatusOK, history)
}

// getDelinquencyReport godoc
// @Summary Delinquency report
// @Description Lists unsettled charges at least daysOverdue days past due, oldest first
// @Tags delinquency
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param daysOverdue query int false "Minimum days past due" default(1)
// @Success 200 {object} domain.DelinquencyReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build delinquency report"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/delinquency/report [get]
func (h *rentRollHandler) getDelinquencyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ws := workspaceFromRequest(c)

	var q dto.DelinquencyReportQuery
	if !bindQuery(c, logger, &q) {
		return
	}
	daysOverdue := defaultDaysOverdue
	if q.DaysOverdue != nil {
		daysOverdue = *q.DaysOverdue
	}

	logger = logger.With(slog.String("workspace_id", ws.WorkspaceID), slog.Int("days_overdue", daysOverdue))
	report, err := h.rentRollService.DelinquencyReport(c.Request.Context(), ws, daysOverdue)
	if err != nil {
		respondError(c, logger, err, "Failed to build delinquency report")
		return
	}
	c.JSON(http.StatusOK, report)
}

func parseOptionalDate(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, ok := domain.ParseRecordTime(value)
	if !ok {
		msg := fmt.Sprintf("%s must be YYYY-MM-DD or an RFC3339 timestamp, got %q", name, value)
		return nil, apperrors.NewAppError(http.StatusBadRequest, msg, apperrors.ErrValidation)
	}
	return &t, nil
}
