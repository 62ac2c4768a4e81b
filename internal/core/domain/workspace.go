package domain

import "github.com/SscSPs/property_management_app/internal/apperrors"

// WorkspaceContext scopes every record-store call to one CRM workspace and the acting user.
// It is passed explicitly to each operation; nothing reads it from ambient state.
type WorkspaceContext struct {
	WorkspaceID string
	UserID      string
}

// Validate fails with ErrMissingWorkspaceContext when either id is absent.
func (w WorkspaceContext) Validate() error {
	if w.WorkspaceID == "" || w.UserID == "" {
		return apperrors.ErrMissingWorkspaceContext
	}
	return nil
}
