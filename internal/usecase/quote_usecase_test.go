package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/trader2544/telvix-quote-service/internal/domain/entities"
	mock_interfaces "github.com/trader2544/telvix-quote-service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validSubmitInput() SubmitQuoteInput {
	return SubmitQuoteInput{
		Name:           "Jane Wanjiku",
		Email:          "jane@example.com",
		Phone:          "+254700000000",
		ServiceID:      "web-design",
		FeatureIDs:     []string{"seo-optimization", "ssl-certificate"},
		ComplexityRank: 3,
		TimelineRank:   1,
		ProjectDetails: "Company site refresh with a blog.",
		CurrencyCode:   "KES",
	}
}

func TestQuoteUseCase_Submit(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		in := validSubmitInput()
		in.Name = "   "
		_, err := uc.Submit(context.Background(), in)
		if !errors.Is(err, ErrMissingContactName) {
			t.Fatalf("expected ErrMissingContactName, got %v", err)
		}
	})

	t.Run("bad email", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		in := validSubmitInput()
		in.Email = "not-an-email"
		_, err := uc.Submit(context.Background(), in)
		if !errors.Is(err, ErrInvalidContactMail) {
			t.Fatalf("expected ErrInvalidContactMail, got %v", err)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		in := validSubmitInput()
		in.ServiceID = "nope"
		_, err := uc.Submit(context.Background(), in)
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("repo create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{}, errors.New("db"))

		_, err := uc.Submit(context.Background(), validSubmitInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("recomputes the total server-side", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteRequest{})).DoAndReturn(
			func(_ context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
				if q.ID == "" {
					t.Fatal("expected generated id")
				}
				if q.QuotedTotal != 48000 {
					t.Fatalf("expected recomputed total 48000, got %v", q.QuotedTotal)
				}
				if q.Currency != "KES" || q.DisplayTotal != "KSh7,200,000" {
					t.Fatalf("unexpected display fields: %+v", q)
				}
				if q.Status != entities.QuoteStatusPending {
					t.Fatalf("expected pending status, got %s", q.Status)
				}
				if q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
					t.Fatal("expected timestamps")
				}
				return q, nil
			},
		)

		created, err := uc.Submit(context.Background(), validSubmitInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Email != "jane@example.com" {
			t.Fatalf("unexpected quote: %+v", created)
		}
	})

	t.Run("notifier receives the hand-off payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		notifier := mock_interfaces.NewMockIQuoteNotifier(ctrl)
		uc := NewQuoteUseCase(repo, notifier)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) { return q, nil },
		)
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload map[string]any) error {
				for _, key := range []string{"quote_id", "service", "price_range", "currency", "email", "phone", "project_details"} {
					if _, ok := payload[key]; !ok {
						t.Fatalf("payload missing %q: %v", key, payload)
					}
				}
				if payload["service"] != "Web Design & Development" {
					t.Fatalf("unexpected service in payload: %v", payload["service"])
				}
				return nil
			},
		)

		if _, err := uc.Submit(context.Background(), validSubmitInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("notifier failure does not fail the submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		notifier := mock_interfaces.NewMockIQuoteNotifier(ctrl)
		uc := NewQuoteUseCase(repo, notifier)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) { return q, nil },
		)
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("webhook down"))

		if _, err := uc.Submit(context.Background(), validSubmitInput()); err != nil {
			t.Fatalf("expected submission to succeed, got %v", err)
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteRequest{}, nil)

		_, err := uc.GetByID(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteRequest{ID: "q-1"}, nil)

		q, err := uc.GetByID(context.Background(), " q-1 ")
		if err != nil || q.ID != "q-1" {
			t.Fatalf("unexpected result: %+v, %v", q, err)
		}
	})
}

func TestQuoteUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "q-1", "paused")
		if !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().UpdateStatusByID(gomock.Any(), "q-1", entities.QuoteStatusConverted).Return(entities.QuoteRequest{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "q-1", "converted")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().UpdateStatusByID(gomock.Any(), "q-1", entities.QuoteStatusContacted).
			Return(entities.QuoteRequest{ID: "q-1", Status: entities.QuoteStatusContacted}, nil)

		q, err := uc.UpdateStatus(context.Background(), "q-1", "contacted")
		if err != nil || q.Status != entities.QuoteStatusContacted {
			t.Fatalf("unexpected result: %+v, %v", q, err)
		}
	})
}
