package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an ingested statement file for data transfer between layers.
type Document struct {
	ID         uuid.UUID `json:"id"`
	SourcePath string    `json:"source_path"`
	Filename   string    `json:"filename"`
	FileExt    string    `json:"file_ext"`
	FileSize   int       `json:"file_size"`
	UploadedAt time.Time `json:"uploaded_at"`
}
