package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/SscSPs/property_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type delinquencyHandler struct {
	delinquencyService portssvc.DelinquencySvc
}

func newDelinquencyHandler(ds portssvc.DelinquencySvc) *delinquencyHandler {
	return &delinquencyHandler{delinquencyService: ds}
}

func registerDelinquencyRoutes(rg *gin.RouterGroup, delinquencyService portssvc.DelinquencySvc) {
	h := newDelinquencyHandler(delinquencyService)
	rg.GET("/delinquency/leases", h.getDelinquentLeases)
}

// getDelinquentLeases godoc
// @Summary Delinquent leases for a month
// @Description Lists leases whose rent charges due in the month are not covered by completed payments
// @Tags delinquency
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param month query string true "Month (YYYY-MM)"
// @Param propertyId query string false "Property ID"
// @Success 200 {object} dto.DelinquentLeasesResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute delinquent leases"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/delinquency/leases [get]
func (h *delinquencyHandler) getDelinquentLeases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ws := workspaceFromRequest(c)

	var q dto.DelinquentLeasesQuery
	if !bindQuery(c, logger, &q) {
		return
	}
	month, err := domain.ParseMonth(q.Month)
	if err != nil {
		respondError(c, logger, err, "Invalid month")
		return
	}

	logger = logger.With(
		slog.String("workspace_id", ws.WorkspaceID),
		slog.String("month", month.String()),
		slog.String("property_id", q.PropertyID),
	)
	leases, err := h.delinquencyService.DelinquentLeases(c.Request.Context(), ws, month, q.PropertyID)
	if err != nil {
		respondError(c, logger, err, "Failed to compute delinquent leases")
		return
	}

	logger.Info("Delinquent leases computed", slog.Int("lease_count", len(leases)))
	c.JSON(http.StatusOK, dto.ToDelinquentLeasesResponse(month, q.PropertyID, leases))
}
