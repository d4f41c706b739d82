package routes

import (
	"github.com/trader2544/telvix-quote-service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates       = "/estimates"
	PathRecommendations = "/recommendations"
	PathCatalog         = "/catalog"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, recommendationHandler *handlers.RecommendationHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("/cost", estimateHandler.CreateCostEstimate)
		estimates.GET("/timeline", estimateHandler.GetTimeline)
	}

	recommendations := rg.Group(PathRecommendations)
	{
		recommendations.GET("/questions", recommendationHandler.ListQuestions)
		recommendations.POST("", recommendationHandler.Recommend)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/services", estimateHandler.ListServices)
		catalog.GET("/features", estimateHandler.ListFeatures)
		catalog.GET("/currencies", estimateHandler.ListCurrencies)
	}
}
