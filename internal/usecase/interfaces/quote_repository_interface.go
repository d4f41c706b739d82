package interfaces

import (
	"context"

	"github.com/trader2544/telvix-quote-service/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for QuoteRequest.
//
// The quote-service must be able to:
//   - create a quote when a visitor submits the estimator form
//   - fetch a quote by id for the dashboard and the deposit flow
//   - move a quote through its status lifecycle

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.QuoteRequest, error)
}
