package routes

import (
	"log"

	_ "github.com/cietz/laranjinhao/docs" // This will be auto-generated
	"github.com/cietz/laranjinhao/internal/adapter/http/handlers"
	"github.com/cietz/laranjinhao/internal/adapter/persistence/repository"
	"github.com/cietz/laranjinhao/internal/config"
	"github.com/cietz/laranjinhao/internal/infrastructure/analytics"
	"github.com/cietz/laranjinhao/internal/infrastructure/database"
	"github.com/cietz/laranjinhao/internal/infrastructure/payments"
	"github.com/cietz/laranjinhao/internal/usecase"
	"github.com/cietz/laranjinhao/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run(cfg *config.Config) {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + cfg.Server.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB(cfg.DynamoDB)

	transactionRepo := repository.NewTransactionDynamoRepository(ddb, cfg.DynamoDB.TransactionsTable)

	var gateway interfaces.IPixGateway
	gw, err := payments.NewGateway(cfg)
	if err != nil {
		log.Printf("PIX gateway not configured: %v", err)
	} else {
		gateway = gw
	}

	var forwarder interfaces.IAnalyticsForwarder
	utmify, err := analytics.NewUTMifyForwarder(cfg.UTMify.APIToken)
	if err != nil {
		log.Printf("UTMify forwarder not configured: %v", err)
	} else {
		forwarder = utmify
	}

	qrResolver := payments.NewQRCodeImageResolver()

	chargeUseCase := usecase.NewPixChargeUseCase(gateway, transactionRepo, qrResolver, cfg.Webhook.DefaultURL)
	webhookUseCase := usecase.NewWebhookUseCase(transactionRepo, forwarder)

	pixHandler := handlers.NewPixHandler(chargeUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)

	// Rotas publicas
	root := router.Group("")
	addPingRoutes(root)
	addPixRoutes(root, pixHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
