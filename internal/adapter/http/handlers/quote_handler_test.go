package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/trader2544/telvix-quote-service/internal/adapter/http/handlers/mocks"
	"github.com/trader2544/telvix-quote-service/internal/domain/entities"
	"github.com/trader2544/telvix-quote-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{}, usecase.ErrServiceNotFound)

		body := `{"name":"Jane","email":"jane@test.com","service_id":"time-travel","complexity_rank":1,"timeline_rank":1}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		now := time.Now().UTC()
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, input usecase.SubmitQuoteInput) (entities.QuoteRequest, error) {
			if input.Name != "Jane" || input.ServiceID != "web-design" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return entities.QuoteRequest{ID: "q-1", Name: input.Name, Email: input.Email, ServiceID: input.ServiceID, ComplexityRank: 3, TimelineRank: 1, Currency: "KES", QuotedTotal: 48000, DisplayTotal: "KSh7,200,000", Status: entities.QuoteStatusPending, CreatedAt: now, UpdatedAt: now}, nil
		})

		body := `{"name":"Jane","email":"jane@test.com","service_id":"web-design","complexity_rank":3,"timeline_rank":1,"currency":"KES"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["quote_id"] != "q-1" || resp["display_total"] != "KSh7,200,000" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:quote_id", h.GetQuote)

		uc.EXPECT().GetByID(gomock.Any(), "q-404").Return(entities.QuoteRequest{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:quote_id", h.GetQuote)

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteRequest{ID: "q-1", Status: entities.QuoteStatusContacted}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != string(entities.QuoteStatusContacted) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_UpdateQuoteStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id", h.UpdateQuoteStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id", h.UpdateQuoteStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "q-1", "teleported").Return(entities.QuoteRequest{}, usecase.ErrInvalidQuoteStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1", bytes.NewBufferString(`{"status":"teleported"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id", h.UpdateQuoteStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "q-1", "converted").Return(entities.QuoteRequest{ID: "q-1", Status: entities.QuoteStatusConverted}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1", bytes.NewBufferString(`{"status":"converted"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapQuoteError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrMissingContactName, http.StatusBadRequest},
		{usecase.ErrInvalidContactMail, http.StatusBadRequest},
		{usecase.ErrServiceNotSelected, http.StatusBadRequest},
		{usecase.ErrInvalidRank, http.StatusBadRequest},
		{usecase.ErrInvalidQuoteID, http.StatusBadRequest},
		{usecase.ErrInvalidQuoteStatus, http.StatusBadRequest},
		{usecase.ErrServiceNotFound, http.StatusNotFound},
		{usecase.ErrQuoteNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapQuoteError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
