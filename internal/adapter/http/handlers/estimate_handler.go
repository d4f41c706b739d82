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

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles the estimation endpoints: cost breakdowns,
// delivery timelines and the static catalog the site renders.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateCostEstimate computes a cost breakdown for a selection.
func (h *EstimateHandler) CreateCostEstimate(c *gin.Context) {
	var payload request.CostEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.EstimateCost(usecase.EstimateCostInput{
		ServiceID:      payload.ServiceID,
		FeatureIDs:     payload.FeatureIDs,
		ComplexityRank: payload.ComplexityRank,
		TimelineRank:   payload.TimelineRank,
		CurrencyCode:   payload.Currency,
		Timezone:       payload.Timezone,
		Locale:         payload.Locale,
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCostQuote(quote))
}

// GetTimeline returns the delivery estimate for ?service=<id>&size=<bucket>.
func (h *EstimateHandler) GetTimeline(c *gin.Context) {
	serviceID := c.Query("service")
	size := c.Query("size")

	entry, err := h.usecase.EstimateTimeline(serviceID, size)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTimelineEntry(serviceID, size, entry))
}

func (h *EstimateHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.ListServices())
}

func (h *EstimateHandler) ListFeatures(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.ListFeatures())
}

func (h *EstimateHandler) ListCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.ListCurrencies())
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrServiceNotSelected), errors.Is(err, usecase.ErrInvalidRank), errors.Is(err, usecase.ErrInvalidProjectSize):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service offering not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTimelineUnavailable):
		return pkg.NewDomainErrorSimple("TIMELINE_UNAVAILABLE", "No estimate available for this combination", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
