package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractionResult is the canonical output map persisted as JSONB
type ExtractionResult map[string]interface{}

// Value implements driver.Valuer for JSONB
func (r ExtractionResult) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

// Scan implements sql.Scanner for JSONB
func (r *ExtractionResult) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	if len(bytes) == 0 {
		return nil
	}
	return json.Unmarshal(bytes, r)
}

// ExtractionLog is one audit record of an extraction call
type ExtractionLog struct {
	ID          uuid.UUID        `json:"id"`
	Query       string           `json:"query"`
	Temperature float64          `json:"temperature"`
	Attempts    int              `json:"attempts"`
	Success     bool             `json:"success"`
	ErrorCode   *string          `json:"error_code,omitempty"`
	ErrorDetail *string          `json:"error_detail,omitempty"`
	Result      ExtractionResult `json:"result,omitempty"`
	DurationMS  int64            `json:"duration_ms"`
	CreatedAt   time.Time        `json:"created_at"`
}
