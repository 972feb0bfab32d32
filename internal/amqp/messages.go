package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ArchivedRecord is the wire form of one offloaded transaction.
type ArchivedRecord struct {
	ID          int64     `json:"id"`
	Kind        string    `json:"kind"`
	Category    string    `json:"category"`
	AmountCents int64     `json:"amount_cents"`
	Note        string    `json:"note,omitempty"`
	Period      string    `json:"period,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ArchiveBatchMessage carries one month's records to the offload queue.
// The batch id lets a consumer deduplicate redelivered batches.
type ArchiveBatchMessage struct {
	BatchID   string           `json:"batch_id"`
	Month     int              `json:"month"`
	Year      int              `json:"year"`
	Records   []ArchivedRecord `json:"records"`
	Timestamp time.Time        `json:"timestamp"`
}

// NewArchiveBatchMessage creates a batch message with a fresh batch id.
func NewArchiveBatchMessage(month, year int, records []ArchivedRecord) *ArchiveBatchMessage {
	return &ArchiveBatchMessage{
		BatchID:   uuid.NewString(),
		Month:     month,
		Year:      year,
		Records:   records,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ArchiveBatchMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ArchiveBatchMessageFromJSON creates a message from JSON bytes
func ArchiveBatchMessageFromJSON(data []byte) (*ArchiveBatchMessage, error) {
	var msg ArchiveBatchMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
