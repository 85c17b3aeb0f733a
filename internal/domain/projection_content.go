package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectionContentDetails is a content row joined with the name of
// its risk level
type ProjectionContentDetails struct {
	ProjectionContentID uuid.UUID
	RiskLevelID         uuid.UUID
	RiskLevelName       string
	Description         string
	CreatedAt           time.Time
	ModifiedAt          time.Time
}
