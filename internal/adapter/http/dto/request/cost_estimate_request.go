package request

// CostEstimateRequest is the estimator form payload.
//
// Currency selection is optional: an explicit code wins; otherwise the
// browser's timezone/locale hints drive detection.

type CostEstimateRequest struct {
	ServiceID      string   `json:"service_id" binding:"required"`
	FeatureIDs     []string `json:"feature_ids"`
	ComplexityRank int      `json:"complexity_rank" binding:"required,min=1,max=5"`
	TimelineRank   int      `json:"timeline_rank" binding:"required,min=1,max=4"`
	Currency       string   `json:"currency"`
	Timezone       string   `json:"timezone"`
	Locale         string   `json:"locale"`
}
