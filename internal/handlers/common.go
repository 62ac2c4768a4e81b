package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/SscSPs/property_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// workspaceFromRequest builds the workspace context from the path and the authenticated user.
// Completeness is checked by the services.
func workspaceFromRequest(c *gin.Context) domain.WorkspaceContext {
	userID, _ := middleware.GetUserIDFromContext(c)
	return domain.WorkspaceContext{
		WorkspaceID: c.Param("workspace_id"),
		UserID:      userID,
	}
}

// bindQuery binds query parameters into obj and writes a 400 response when that fails.
func bindQuery(c *gin.Context, logger *slog.Logger, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		logger.Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return false
	}
	return true
}

func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request: " + err.Error()
	}
	for _, fe := range verrs {
		if fe.Tag() == "yyyymm" {
			value, _ := fe.Value().(string)
			if _, merr := domain.ParseMonth(value); merr != nil {
				return merr.Error()
			}
		}
	}
	return "Invalid request: " + err.Error()
}

// respondError maps service errors to HTTP responses. Store failures are logged and
// answered with fallbackMsg so backend details do not leak.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code >= http.StatusBadRequest && appErr.Code < http.StatusInternalServerError {
		logger.Warn("Rejected request", slog.String("error", err.Error()))
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrStoreUnavailable), errors.Is(err, apperrors.ErrStoreOperationFailed):
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	case errors.Is(err, apperrors.ErrInvalidMonth),
		errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrPaymentExceedsBalance):
		logger.Warn("Rejected request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrChargeNotFound), errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrMissingWorkspaceContext), errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized request", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden request", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		logger.Error("Request timed out", slog.String("error", err.Error()))
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Request timed out"})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}
