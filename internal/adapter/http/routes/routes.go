package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/trader2544/telvix-quote-service/docs" // This will be auto-generated
	"github.com/trader2544/telvix-quote-service/internal/adapter/http/handlers"
	repository2 "github.com/trader2544/telvix-quote-service/internal/adapter/persistence/repository"
	"github.com/trader2544/telvix-quote-service/internal/infrastructure/database"
	"github.com/trader2544/telvix-quote-service/internal/infrastructure/notify"
	"github.com/trader2544/telvix-quote-service/internal/infrastructure/payments"
	"github.com/trader2544/telvix-quote-service/internal/usecase"
	"github.com/trader2544/telvix-quote-service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	paymentRepo := repository2.NewQuotePaymentDynamoRepository(ddb)

	var notifier interfaces.IQuoteNotifier
	webhook, err := notify.NewWebhookNotifier(os.Getenv("QUOTE_WEBHOOK_URL"))
	if err != nil {
		log.Printf("Quote webhook not configured: %v", err)
	} else {
		notifier = webhook
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	estimateUseCase := usecase.NewEstimateUseCase()
	recommendationUseCase := usecase.NewRecommendationUseCase()
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, notifier)
	paymentUseCase := usecase.NewQuotePaymentUseCase(paymentRepo, quoteRepo, paymentGateway)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	quotePaymentHandler := handlers.NewQuotePaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, estimateHandler, recommendationHandler)
	addQuoteRoutes(v1, quoteHandler, quotePaymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
