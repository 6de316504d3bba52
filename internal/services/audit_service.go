package services

import (
	"context"
	"encoding/json"

	"ledger/internal/logger"
	"ledger/internal/models"
	"ledger/internal/store"
)

// auditService handles audit log recording.
type auditService struct {
	store *store.Store
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(st *store.Store) AuditServicer {
	return &auditService{store: st}
}

// Log records an audit event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *auditService) Log(ctx context.Context, userID, action, resourceType, resourceID, ipAddress string, changes map[string]any) {
	var changesJSON string
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to marshal audit log changes", "error", err, "action", action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      changesJSON,
	}

	if err := s.store.DB(ctx).Create(entry).Error; err != nil {
		logger.FromContext(ctx).Errorw("failed to create audit log entry",
			"error", err,
			"user_id", userID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}
