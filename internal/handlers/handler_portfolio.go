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

// portfolioHandler serves the portfolio and property dashboards.
type portfolioHandler struct {
	portfolioService portssvc.PortfolioSvc
}

func newPortfolioHandler(ps portssvc.PortfolioSvc) *portfolioHandler {
	return &portfolioHandler{portfolioService: ps}
}

// registerPortfolioRoutes registers the dashboard routes under a workspace group.
func registerPortfolioRoutes(rg *gin.RouterGroup, portfolioService portssvc.PortfolioSvc) {
	h := newPortfolioHandler(portfolioService)

	rg.GET("/portfolio/summary", h.getPortfolioSummary)
	rg.GET("/properties/:property_id/dashboard", h.getPropertyDashboard)
}

// getPortfolioSummary godoc
// @Summary Portfolio summary for a month
// @Description Summarizes occupancy, rent roll, collections, delinquency and open work orders of every property in the workspace
// @Tags dashboards
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {object} domain.PortfolioSummary
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build portfolio summary"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/portfolio/summary [get]
func (h *portfolioHandler) getPortfolioSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ws := workspaceFromRequest(c)

	var q dto.MonthQuery
	if !bindQuery(c, logger, &q) {
		return
	}
	month, err := domain.ParseMonth(q.Month)
	if err != nil {
		respondError(c, logger, err, "Invalid month")
		return
	}

	logger = logger.With(slog.String("workspace_id", ws.WorkspaceID), slog.String("month", month.String()))
	logger.Info("Received request for portfolio summary")

	summary, err := h.portfolioService.PortfolioSummary(c.Request.Context(), ws, month)
	if err != nil {
		respondError(c, logger, err, "Failed to build portfolio summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getPropertyDashboard godoc
// @Summary Property dashboard for a month
// @Description Summarizes a single property for the month
// @Tags dashboards
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param property_id path string true "Property ID"
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {object} domain.PropertySummary
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Property not found"
// @Failure 500 {object} map[string]string "Failed to build property dashboard"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/properties/{property_id}/dashboard [get]
func (h *portfolioHandler) getPropertyDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ws := workspaceFromRequest(c)
	propertyID := c.Param("property_id")

	var q dto.MonthQuery
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
		slog.String("property_id", propertyID),
		slog.String("month", month.String()),
	)

	summary, err := h.portfolioService.PropertyDashboard(c.Request.Context(), ws, propertyID, month)
	if err != nil {
		respondError(c, logger, err, "Failed to build property dashboard")
		return
	}
	c.JSON(http.StatusOK, summary)
}
