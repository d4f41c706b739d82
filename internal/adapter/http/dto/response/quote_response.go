package response

import (
	"time"

	"github.com/trader2544/telvix-quote-service/internal/domain/entities"
)

type QuoteResponse struct {
	QuoteID        string    `json:"quote_id"`
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	ServiceID      string    `json:"service_id"`
	FeatureIDs     []string  `json:"feature_ids,omitempty"`
	ComplexityRank int       `json:"complexity_rank"`
	TimelineRank   int       `json:"timeline_rank"`
	ProjectDetails string    `json:"project_details,omitempty"`
	Currency       string    `json:"currency"`
	QuotedTotal    float64   `json:"quoted_total"`
	DisplayTotal   string    `json:"display_total"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromQuote(q entities.QuoteRequest) QuoteResponse {
	return QuoteResponse{
		QuoteID:        q.ID,
		ID:             q.ID,
		Name:           q.Name,
		Email:          q.Email,
		Phone:          q.Phone,
		ServiceID:      q.ServiceID,
		FeatureIDs:     q.FeatureIDs,
		ComplexityRank: q.ComplexityRank,
		TimelineRank:   q.TimelineRank,
		ProjectDetails: q.ProjectDetails,
		Currency:       q.Currency,
		QuotedTotal:    q.QuotedTotal,
		DisplayTotal:   q.DisplayTotal,
		Status:         string(q.Status),
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}
