package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the deposit payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// QuotePayment is the project deposit collected on a converted quote.
//
// Storage model (DynamoDB):
//   - PK: id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the original provider response (JSON) for
//     traceability/audit.
//   - MPPayload is an optional parsed representation, useful for
//     querying/debugging. Both are persisted because provider schemas vary.

type QuotePayment struct {
	ID      string        `json:"id"`
	QuoteID string        `json:"quote_id"`
	Amount  float64       `json:"amount"`
	Date    time.Time     `json:"date"`
	Status  PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
