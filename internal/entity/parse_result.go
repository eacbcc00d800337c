package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ParseResult represents a parsed statement for data transfer between layers.
type ParseResult struct {
	ID                uuid.UUID       `json:"id"`
	JobID             uuid.UUID       `json:"job_id"`
	Issuer            string          `json:"issuer"`
	IssuerConfidence  float64         `json:"issuer_confidence"`
	OverallConfidence float64         `json:"overall_confidence"`
	FieldsJSON        json.RawMessage `json:"fields_json,omitempty"`
	TransactionsJSON  json.RawMessage `json:"transactions_json,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}
