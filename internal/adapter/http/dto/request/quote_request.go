package request

import "strings"

// SubmitQuoteRequest is the "request a quote" payload sent at the end of the
// estimator flow. The client never submits a price; the service recomputes
// the total from the selections.

type SubmitQuoteRequest struct {
	Name           string   `json:"name" binding:"required"`
	Email          string   `json:"email" binding:"required"`
	Phone          string   `json:"phone"`
	ServiceID      string   `json:"service_id" binding:"required"`
	FeatureIDs     []string `json:"feature_ids"`
	ComplexityRank int      `json:"complexity_rank" binding:"required,min=1,max=5"`
	TimelineRank   int      `json:"timeline_rank" binding:"required,min=1,max=4"`
	ProjectDetails string   `json:"project_details"`
	Currency       string   `json:"currency"`
	Timezone       string   `json:"timezone"`
	Locale         string   `json:"locale"`
}

func (r SubmitQuoteRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

func (r SubmitQuoteRequest) ResolveEmail() string {
	return strings.TrimSpace(strings.ToLower(r.Email))
}

// QuoteStatusRequest moves a quote through its pipeline.

type QuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
