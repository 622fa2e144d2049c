package v1

import (
	pl_uuid "github.com/pocketledger/backend/internal/uuid"
)

type URIID struct {
	ID pl_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}
