package response

import "github.com/trader2544/telvix-quote-service/internal/usecase"

type RecommendationResponse struct {
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	BasePrice   float64 `json:"base_price"`
}

func FromRecommendation(r usecase.Recommendation) RecommendationResponse {
	return RecommendationResponse{
		ServiceID:   r.ServiceID,
		ServiceName: r.ServiceName,
		BasePrice:   r.BasePrice,
	}
}
