package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	response "github.com/trader2544/telvix-quote-service/internal/adapter/http/dto/response"
	"github.com/trader2544/telvix-quote-service/internal/usecase"
	"github.com/trader2544/telvix-quote-service/pkg"
)

// QuotePaymentHandler handles deposit payments on converted quotes.

type QuotePaymentHandler struct {
	usecase usecase.IQuotePaymentUseCase
}

func NewQuotePaymentHandler(uc usecase.IQuotePaymentUseCase) *QuotePaymentHandler {
	return &QuotePaymentHandler{usecase: uc}
}

// CreateDepositByQuoteID collects the project deposit using quote_id in path.
func (h *QuotePaymentHandler) CreateDepositByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")
	log.Printf("[payment][handler] create start quote_id=%s", quoteID)
	mockMode := isPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload quote_id=%s err=%v", quoteID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload quote_id=%s err=%v", quoteID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateDeposit(c.Request.Context(), quoteID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed quote_id=%s err=%v", quoteID, err)
		appErr := mapQuotePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success quote_id=%s payment_id=%s status=%s", quoteID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromQuotePayment(created))
}

// GetPaymentByQuoteID returns the latest payment for a quote.
func (h *QuotePaymentHandler) GetPaymentByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")

	latest, err := h.usecase.GetLatestByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapQuotePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotePayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapQuotePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentQuoteID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotConverted):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_CONVERTED", "Quote not converted", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositAlreadyPaid):
		return pkg.NewDomainErrorSimple("DEPOSIT_ALREADY_PAID", "Deposit already paid for this quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
