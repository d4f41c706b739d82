package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trader2544/telvix-quote-service/internal/domain/currency"
	"github.com/trader2544/telvix-quote-service/internal/domain/entities"
	"github.com/trader2544/telvix-quote-service/internal/domain/pricing"
	"github.com/trader2544/telvix-quote-service/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidQuoteStatus = errors.New("invalid quote status")
	ErrMissingContactName = errors.New("contact name is required")
	ErrInvalidContactMail = errors.New("a valid contact email is required")
)

// SubmitQuoteInput is a completed estimator form. The quoted total is always
// recomputed server-side from the selections; clients never submit a price.

type SubmitQuoteInput struct {
	Name           string
	Email          string
	Phone          string
	ServiceID      string
	FeatureIDs     []string
	ComplexityRank int
	TimelineRank   int
	ProjectDetails string
	CurrencyCode   string
	Timezone       string
	Locale         string
}

// IQuoteUseCase exposes quote request operations.
//
// These map to the quote flow on the site:
//   - "Request a quote" on the estimator => Submit()
//   - sales dashboard detail view => GetByID()
//   - sales dashboard pipeline actions => UpdateStatus()

type IQuoteUseCase interface {
	Submit(ctx context.Context, input SubmitQuoteInput) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id, status string) (entities.QuoteRequest, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	notifier interfaces.IQuoteNotifier
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase builds the quote flow. The notifier may be nil when no
// channel is configured; submission then skips the hand-off.
func NewQuoteUseCase(repo interfaces.IQuoteRepository, notifier interfaces.IQuoteNotifier) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, notifier: notifier}
}

func (u *QuoteUseCase) Submit(ctx context.Context, input SubmitQuoteInput) (entities.QuoteRequest, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return entities.QuoteRequest{}, ErrMissingContactName
	}
	email := strings.TrimSpace(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return entities.QuoteRequest{}, ErrInvalidContactMail
	}

	est, err := pricing.EstimateCost(input.ServiceID, input.FeatureIDs, input.ComplexityRank, input.TimelineRank)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidComplexity) || errors.Is(err, pricing.ErrInvalidTimeline) {
			return entities.QuoteRequest{}, ErrInvalidRank
		}
		return entities.QuoteRequest{}, err
	}

	code := resolveCurrency(input.CurrencyCode, input.Timezone, input.Locale)
	displayTotal := currency.Format(est.TotalCost, code)

	now := time.Now().UTC()
	q := entities.QuoteRequest{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          email,
		Phone:          strings.TrimSpace(input.Phone),
		ServiceID:      est.ServiceID,
		FeatureIDs:     input.FeatureIDs,
		ComplexityRank: input.ComplexityRank,
		TimelineRank:   input.TimelineRank,
		ProjectDetails: strings.TrimSpace(input.ProjectDetails),
		Currency:       code,
		QuotedTotal:    est.TotalCost,
		DisplayTotal:   displayTotal,
		Status:         entities.QuoteStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	// The quote is persisted; notification failure must not bounce the
	// visitor's submission.
	if u.notifier != nil {
		payload := map[string]any{
			"quote_id":        created.ID,
			"service":         est.ServiceName,
			"price_range":     displayTotal,
			"currency":        code,
			"email":           created.Email,
			"phone":           created.Phone,
			"project_details": created.ProjectDetails,
		}
		if err := u.notifier.Notify(ctx, payload); err != nil {
			log.Printf("[quote][usecase] notify failed quote_id=%s err=%v", created.ID, err)
		}
	}

	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if q.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id, status string) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteID
	}
	parsed, ok := entities.ParseQuoteStatus(strings.TrimSpace(status))
	if !ok {
		return entities.QuoteRequest{}, ErrInvalidQuoteStatus
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, parsed)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if updated.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteNotFound
	}
	return updated, nil
}
