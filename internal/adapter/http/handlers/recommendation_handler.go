package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/trader2544/telvix-quote-service/internal/adapter/http/dto/request"
	response "github.com/trader2544/telvix-quote-service/internal/adapter/http/dto/response"
	"github.com/trader2544/telvix-quote-service/internal/usecase"
	"github.com/trader2544/telvix-quote-service/pkg"
)

// RecommendationHandler serves the service recommendation quiz.

type RecommendationHandler struct {
	usecase usecase.IRecommendationUseCase
}

func NewRecommendationHandler(uc usecase.IRecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{usecase: uc}
}

// ListQuestions returns the fixed questionnaire so the front end renders the
// exact option labels the rules expect.
func (h *RecommendationHandler) ListQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Questions())
}

// Recommend maps a completed answer sequence to a service.
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var payload request.RecommendationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_QUIZ_INPUT", "Invalid quiz payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	rec, err := h.usecase.Recommend(payload.Answers)
	if err != nil {
		appErr := mapRecommendationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRecommendation(rec))
}

func mapRecommendationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrIncompleteAnswers):
		return pkg.NewDomainErrorSimple("INCOMPLETE_ANSWERS", "All four answers are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownAnswer):
		return pkg.NewDomainErrorSimple("UNKNOWN_ANSWER", "Answer is not one of the question's options", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
