package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/trader2544/telvix-quote-service/internal/domain/quiz"
	"github.com/trader2544/telvix-quote-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

func newRecommendationRouter() *gin.Engine {
	h := NewRecommendationHandler(usecase.NewRecommendationUseCase())
	r := gin.New()
	r.GET("/v1/recommendations/questions", h.ListQuestions)
	r.POST("/v1/recommendations", h.Recommend)
	return r
}

func TestRecommendationHandler_ListQuestions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newRecommendationRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/recommendations/questions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var questions []quiz.Question
	if err := json.Unmarshal(w.Body.Bytes(), &questions); err != nil {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if len(questions) != quiz.NumQuestions {
		t.Fatalf("expected %d questions, got %d", quiz.NumQuestions, len(questions))
	}
}

func TestRecommendationHandler_Recommend(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		r := newRecommendationRouter()

		req := httptest.NewRequest(http.MethodPost, "/v1/recommendations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("incomplete answers", func(t *testing.T) {
		r := newRecommendationRouter()

		req := httptest.NewRequest(http.MethodPost, "/v1/recommendations", bytes.NewBufferString(`{"answers":["Establish online presence"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown answer", func(t *testing.T) {
		r := newRecommendationRouter()

		body := `{"answers":["Conquer the world","ASAP","Under KSh 25,000","Just me"]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/recommendations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r := newRecommendationRouter()

		body := `{"answers":["Create a software product","ASAP","KSh 100,000+","Just me"]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/recommendations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["service_name"] != "SaaS Development" || resp["service_id"] != "saas" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapRecommendationError(t *testing.T) {
	if got := mapRecommendationError(usecase.ErrIncompleteAnswers); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRecommendationError(usecase.ErrUnknownAnswer); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRecommendationError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
