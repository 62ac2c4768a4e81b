package services

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
)

// PortfolioSvc builds property and portfolio rollups.
type PortfolioSvc interface {
	// PropertySummary computes the summary of an already loaded property.
	PropertySummary(ctx context.Context, ws domain.WorkspaceContext, property domain.PropertyRecord, month domain.Month) (*domain.PropertySummary, error)

	// PropertyDashboard loads a property by id and summarizes it.
	PropertyDashboard(ctx context.Context, ws domain.WorkspaceContext, propertyID string, month domain.Month) (*domain.PropertySummary, error)

	// PortfolioSummary summarizes every property of the workspace.
	PortfolioSummary(ctx context.Context, ws domain.WorkspaceContext, month domain.Month) (*domain.PortfolioSummary, error)
}
