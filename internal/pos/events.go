package pos

import (
	"encoding/json"
	"time"
)

const (
	EventOrderCreated = "PosOrderCreated"
)

type Envelope struct {
	EventID       string          `json:"event_id"`      // uuid
	EventType     string          `json:"event_type"`    // salah satu const di atas
	EventVersion  int             `json:"event_version"` // 1
	OccurredAt    time.Time       `json:"occurred_at"`   // RFC3339
	Producer      string          `json:"producer"`      // e.g., "pos-api"
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // biasanya order_id
	Payload       json.RawMessage `json:"payload"`
}

// OrderCreatedPayload dipublish sekali setelah commit berhasil; satu-satunya
// sinyal invalidasi utk read cache katalog/POS di downstream.
type OrderCreatedPayload struct {
	OrderID     string      `json:"order_id"`
	Status      OrderStatus `json:"status"`
	MemberID    string      `json:"member_id,omitempty"`
	PaymentType PaymentType `json:"payment_type"`
}
