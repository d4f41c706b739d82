package response

import "github.com/trader2544/telvix-quote-service/internal/usecase"

// CostEstimateResponse is the full breakdown returned to the estimator UI.
// Numeraire figures and the display rendering are both included so the
// front end never has to re-derive either.

type CostEstimateResponse struct {
	ServiceID            string  `json:"service_id"`
	ServiceName          string  `json:"service_name"`
	BasePrice            float64 `json:"base_price"`
	FeatureCost          float64 `json:"feature_cost"`
	ComplexityMultiplier float64 `json:"complexity_multiplier"`
	TimelineMultiplier   float64 `json:"timeline_multiplier"`
	TotalCost            float64 `json:"total_cost"`
	Currency             string  `json:"currency"`
	DisplayTotal         string  `json:"display_total"`
}

func FromCostQuote(q usecase.CostQuote) CostEstimateResponse {
	return CostEstimateResponse{
		ServiceID:            q.ServiceID,
		ServiceName:          q.ServiceName,
		BasePrice:            q.BasePrice,
		FeatureCost:          q.FeatureCost,
		ComplexityMultiplier: q.ComplexityMultiplier,
		TimelineMultiplier:   q.TimelineMultiplier,
		TotalCost:            q.TotalCost,
		Currency:             q.Currency,
		DisplayTotal:         q.DisplayTotal,
	}
}
