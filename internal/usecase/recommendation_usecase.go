package usecase

import (
	"errors"

	"github.com/trader2544/telvix-quote-service/internal/domain/pricing"
	"github.com/trader2544/telvix-quote-service/internal/domain/quiz"
)

var (
	ErrIncompleteAnswers = quiz.ErrIncompleteAnswer
	ErrUnknownAnswer     = quiz.ErrUnknownAnswer
)

// Recommendation resolves a quiz outcome back to the catalog offering so the
// caller can jump straight into the cost estimator.

type Recommendation struct {
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	BasePrice   float64 `json:"base_price"`
}

type IRecommendationUseCase interface {
	Questions() []quiz.Question
	Recommend(answers []string) (Recommendation, error)
}

type RecommendationUseCase struct{}

var _ IRecommendationUseCase = (*RecommendationUseCase)(nil)

func NewRecommendationUseCase() *RecommendationUseCase {
	return &RecommendationUseCase{}
}

func (u *RecommendationUseCase) Questions() []quiz.Question {
	return quiz.Questions()
}

// Recommend replays a full answer sequence through the quiz state machine so
// option validation matches the interactive flow exactly.
func (u *RecommendationUseCase) Recommend(answers []string) (Recommendation, error) {
	if len(answers) != quiz.NumQuestions {
		return Recommendation{}, ErrIncompleteAnswers
	}

	var state quiz.State
	var name string
	for _, label := range answers {
		rec, err := state.Answer(label)
		if err != nil {
			return Recommendation{}, err
		}
		name = rec
	}

	svc, ok := pricing.FindServiceByName(name)
	if !ok {
		// The rules are closed over the catalog; reaching this means the
		// tables drifted apart.
		return Recommendation{}, errors.New("recommended service missing from catalog: " + name)
	}
	return Recommendation{ServiceID: svc.ID, ServiceName: svc.Name, BasePrice: svc.BasePrice}, nil
}
