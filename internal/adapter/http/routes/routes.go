package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/FirstdeveloperMatoGrosso/isapass-payments/docs" // This will be auto-generated
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/adapter/http/handlers"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/adapter/http/middleware"
	registry2 "github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/adapter/persistence/registry"
	repository2 "github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/adapter/persistence/repository"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/domain/entities"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/infrastructure/database"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/infrastructure/payments"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/infrastructure/ratelimit"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/usecase"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/usecase/interfaces"

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
	cfg := loadPixConfigFromEnv()
	if !cfg.Usable() {
		log.Printf("[payment][routes] pix disabled or key missing; creation requests will be refused")
	}

	registry := registry2.NewPaymentIntentRegistry()

	var archive interfaces.IPaymentArchive
	if envBool("PIX_ARCHIVE_ENABLED", true) {
		ddb := database.ConnectDynamoDB()
		archive = repository2.NewPixPaymentDynamoArchive(ddb)
	} else {
		log.Printf("[payment][routes] archive disabled; settled intents will not be persisted")
	}

	counter := ratelimit.NewWindowCounter(time.Minute)
	scorer := usecase.NewFraudScorer(envInt64("FRAUD_HIGH_VALUE_CENTS", 100000), counter)

	var gateway interfaces.IPixGateway
	mpGateway, err := payments.NewMercadoPagoPixGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), os.Getenv("PIX_WEBHOOK_URL"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}

	paymentUseCase := usecase.NewPixPaymentUseCase(cfg, registry, gateway, archive, scorer)

	sweeper := usecase.NewExpirationSweeper(registry, archive, envDuration("PIX_SWEEP_INTERVAL_SECONDS", time.Minute))
	go sweeper.Run(context.Background())

	paymentHandler := handlers.NewPixPaymentHandler(paymentUseCase)
	webhookHandler := handlers.NewPixWebhookHandler(paymentUseCase)

	limiter := middleware.RateLimit(counter, envInt64("RATE_LIMIT_PER_MINUTE", 60))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, webhookHandler, limiter)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func loadPixConfigFromEnv() entities.PixConfig {
	return entities.PixConfig{
		Enabled:           envBool("PIX_ENABLED", true),
		Key:               strings.TrimSpace(os.Getenv("PIX_KEY")),
		BeneficiaryName:   strings.TrimSpace(os.Getenv("PIX_BENEFICIARY_NAME")),
		BeneficiaryCity:   strings.TrimSpace(os.Getenv("PIX_BENEFICIARY_CITY")),
		PartnerID:         strings.TrimSpace(os.Getenv("PIX_PARTNER_ID")),
		ExpirationMinutes: int(envInt64("PIX_EXPIRATION_MINUTES", 30)),
	}
}

func envBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func envInt64(key string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	if n := envInt64(key, 0); n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}
