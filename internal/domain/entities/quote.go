package entities

import "time"

// QuoteStatus represents the lifecycle of a submitted quote request.
//
// Domain notes:
//   - The quote-service is the source of truth for quote state.
//   - Transitions are driven by the sales team working the request:
//     pending -> contacted -> converted (client accepted) -> closed.

type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusContacted QuoteStatus = "contacted"
	QuoteStatusConverted QuoteStatus = "converted"
	QuoteStatusClosed    QuoteStatus = "closed"
)

// ParseQuoteStatus validates a raw status value.
func ParseQuoteStatus(raw string) (QuoteStatus, bool) {
	switch QuoteStatus(raw) {
	case QuoteStatusPending, QuoteStatusContacted, QuoteStatusConverted, QuoteStatusClosed:
		return QuoteStatus(raw), true
	}
	return "", false
}

// QuoteRequest is a submitted quote persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - QuotedTotal is the server-side recomputed total in the numeraire
//     currency; the client-submitted total is never trusted.
//   - DisplayTotal is the total as formatted for the requester's currency at
//     submission time, kept for the follow-up conversation.

type QuoteRequest struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	ServiceID      string      `json:"service_id"`
	FeatureIDs     []string    `json:"feature_ids"`
	ComplexityRank int         `json:"complexity_rank"`
	TimelineRank   int         `json:"timeline_rank"`
	ProjectDetails string      `json:"project_details"`
	Currency       string      `json:"currency"`
	QuotedTotal    float64     `json:"quoted_total"`
	DisplayTotal   string      `json:"display_total"`
	Status         QuoteStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
