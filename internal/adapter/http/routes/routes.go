package routes

import (
	"log"
	"os"
	"strings"
	"time"

	_ "rvroofworks/docs" // This will be auto-generated
	"rvroofworks/internal/adapter/http/handlers"
	"rvroofworks/internal/adapter/persistence/cache"
	repository2 "rvroofworks/internal/adapter/persistence/repository"
	"rvroofworks/internal/infrastructure/database"
	"rvroofworks/internal/metrics"
	"rvroofworks/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	store := cache.NewStore()

	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	advisorRepo := repository2.NewAdvisorDynamoRepository(ddb)
	jobRepo := repository2.NewPreConfiguredJobDynamoRepository(ddb)
	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)

	customerUseCase := usecase.NewCustomerUseCase(customerRepo, store)
	advisorUseCase := usecase.NewAdvisorUseCase(advisorRepo, store)
	jobUseCase := usecase.NewPreConfiguredJobUseCase(jobRepo, store)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, customerRepo, advisorRepo, jobRepo, store)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	advisorHandler := handlers.NewAdvisorHandler(advisorUseCase)
	jobHandler := handlers.NewPreConfiguredJobHandler(jobUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1, customerHandler, advisorHandler, jobHandler, estimateHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(metrics.GinMiddleware())
	router.Use(cors.New(corsConfig()))
}

func corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	return cfg
}
