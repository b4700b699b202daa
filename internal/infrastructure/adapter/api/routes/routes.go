package routes

import (
	coreport "github.com/amirhossein-jamali/billing-core/internal/domain/port/core"
	"github.com/amirhossein-jamali/billing-core/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/billing-core/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	purchaseHandler *handler.PurchaseHandler,
	userHandler *handler.UserHandler,
) {
	api := router.Group("/api/v1")
	{
		api.POST("/purchases", purchaseHandler.CreatePurchase)
		api.POST("/users", userHandler.RegisterUser)
		api.GET("/users/:userId", userHandler.GetUser)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
}
