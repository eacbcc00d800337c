package entity

import (
	"time"

	"github.com/google/uuid"
)

// ParseJob represents a parse attempt for data transfer between layers.
type ParseJob struct {
	ID            uuid.UUID  `json:"id"`
	DocumentID    uuid.UUID  `json:"document_id"`
	Format        string     `json:"format"`
	Status        string     `json:"status"`
	DecodeMethod  *string    `json:"decode_method,omitempty"`
	Pages         *int       `json:"pages,omitempty"`
	OCRConfidence *float64   `json:"ocr_confidence,omitempty"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
}
