package v1

import (
	pb_uuid "github.com/pennybook/backend/internal/uuid"
)

type URIID struct {
	ID pb_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// deletionResponse confirms the removal of a resource.
type deletionResponse struct {
	Message string `json:"message" example:"Transaction deleted successfully"`
}
