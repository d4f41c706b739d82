package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/trader2544/telvix-quote-service/internal/adapter/http/dto/request"
	response "github.com/trader2544/telvix-quote-service/internal/adapter/http/dto/response"
	"github.com/trader2544/telvix-quote-service/internal/usecase"
	"github.com/trader2544/telvix-quote-service/pkg"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles quote request submission and the sales pipeline.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote persists a submitted quote request and forwards it to the
// agency's notification channel.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Submit(c.Request.Context(), usecase.SubmitQuoteInput{
		Name:           payload.ResolveName(),
		Email:          payload.ResolveEmail(),
		Phone:          payload.Phone,
		ServiceID:      payload.ServiceID,
		FeatureIDs:     payload.FeatureIDs,
		ComplexityRank: payload.ComplexityRank,
		TimelineRank:   payload.TimelineRank,
		ProjectDetails: payload.ProjectDetails,
		CurrencyCode:   payload.Currency,
		Timezone:       payload.Timezone,
		Locale:         payload.Locale,
	})
	if err != nil {
		log.Printf("[quote][handler] create failed err=%v", err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] create success quote_id=%s service=%s total=%s", quote.ID, quote.ServiceID, quote.DisplayTotal)

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// GetQuote returns a quote by id.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// UpdateQuoteStatus moves a quote through the pipeline.
func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	var payload request.QuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("quote_id"), payload.Status)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingContactName), errors.Is(err, usecase.ErrInvalidContactMail),
		errors.Is(err, usecase.ErrServiceNotSelected), errors.Is(err, usecase.ErrInvalidRank),
		errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service offering not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
