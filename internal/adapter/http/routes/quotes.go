package routes

import (
	"github.com/trader2544/telvix-quote-service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathPayments = "/payments"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, paymentHandler *handlers.QuotePaymentHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.PATCH("/:quote_id", quoteHandler.UpdateQuoteStatus)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quote_id", paymentHandler.CreateDepositByQuoteID)
		payments.GET("/:quote_id", paymentHandler.GetPaymentByQuoteID)
	}
}
