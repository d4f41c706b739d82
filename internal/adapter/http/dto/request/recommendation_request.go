package request

// RecommendationRequest carries the ordered quiz answers, first question
// first. All four are required; labels must come from the published option
// lists.

type RecommendationRequest struct {
	Answers []string `json:"answers" binding:"required"`
}
