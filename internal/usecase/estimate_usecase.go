package usecase

import (
	"errors"

	"github.com/trader2544/telvix-quote-service/internal/domain/currency"
	"github.com/trader2544/telvix-quote-service/internal/domain/pricing"
	"github.com/trader2544/telvix-quote-service/internal/domain/timeline"
)

var (
	ErrServiceNotSelected  = pricing.ErrServiceNotSelected
	ErrServiceNotFound     = pricing.ErrServiceNotFound
	ErrInvalidRank         = errors.New("invalid complexity or timeline rank")
	ErrInvalidProjectSize  = errors.New("invalid project size")
	ErrTimelineUnavailable = timeline.ErrEntryNotFound
)

// EstimateCostInput carries one cost computation request. Currency is
// optional: an explicit code wins, otherwise it is detected from the
// timezone/locale hints, falling back to the numeraire.

type EstimateCostInput struct {
	ServiceID      string
	FeatureIDs     []string
	ComplexityRank int
	TimelineRank   int
	CurrencyCode   string
	Timezone       string
	Locale         string
}

// CostQuote is a cost breakdown plus its display rendering.

type CostQuote struct {
	pricing.CostEstimate
	Currency     string `json:"currency"`
	DisplayTotal string `json:"display_total"`
}

// IEstimateUseCase exposes the estimation engine to the HTTP layer.
//
// Everything here is a pure computation over static tables; no method
// blocks, so none take a context.

type IEstimateUseCase interface {
	EstimateCost(input EstimateCostInput) (CostQuote, error)
	EstimateTimeline(serviceID, size string) (timeline.Entry, error)
	ListServices() []pricing.ServiceOffering
	ListFeatures() []pricing.FeatureAddOn
	ListCurrencies() []currency.Currency
}

type EstimateUseCase struct{}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase() *EstimateUseCase {
	return &EstimateUseCase{}
}

func (u *EstimateUseCase) EstimateCost(input EstimateCostInput) (CostQuote, error) {
	est, err := pricing.EstimateCost(input.ServiceID, input.FeatureIDs, input.ComplexityRank, input.TimelineRank)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidComplexity) || errors.Is(err, pricing.ErrInvalidTimeline) {
			return CostQuote{}, ErrInvalidRank
		}
		return CostQuote{}, err
	}

	code := resolveCurrency(input.CurrencyCode, input.Timezone, input.Locale)
	return CostQuote{
		CostEstimate: est,
		Currency:     code,
		DisplayTotal: currency.Format(est.TotalCost, code),
	}, nil
}

func (u *EstimateUseCase) EstimateTimeline(serviceID, size string) (timeline.Entry, error) {
	if serviceID == "" {
		return timeline.Entry{}, ErrServiceNotSelected
	}
	if _, ok := pricing.FindService(serviceID); !ok {
		return timeline.Entry{}, ErrServiceNotFound
	}
	projectSize, ok := timeline.ParseProjectSize(size)
	if !ok {
		return timeline.Entry{}, ErrInvalidProjectSize
	}
	return timeline.Estimate(serviceID, projectSize)
}

func (u *EstimateUseCase) ListServices() []pricing.ServiceOffering {
	return pricing.Services()
}

func (u *EstimateUseCase) ListFeatures() []pricing.FeatureAddOn {
	return pricing.Features()
}

func (u *EstimateUseCase) ListCurrencies() []currency.Currency {
	return currency.All()
}

func resolveCurrency(code, tz, locale string) string {
	if code != "" {
		if c, ok := currency.Find(code); ok {
			return c.Code
		}
	}
	return currency.Detect(tz, locale)
}
