package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "mechfinder/docs" // This will be auto-generated
	"mechfinder/internal/adapter/http/handlers"
	"mechfinder/internal/adapter/http/middleware"
	repository2 "mechfinder/internal/adapter/persistence/repository"
	authinfra "mechfinder/internal/infrastructure/auth"
	"mechfinder/internal/infrastructure/database"
	"mechfinder/internal/infrastructure/logger"
	"mechfinder/internal/infrastructure/payments"
	"mechfinder/internal/usecase"
	"mechfinder/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	zlog := logger.New(os.Getenv("APP_ENV"))
	defer zlog.Sync()
	sugar := zlog.Sugar()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(sugar)

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(sugar *zap.SugaredLogger) {
	ddb := database.ConnectDynamoDB(sugar)

	userRepo := repository2.NewUserDynamoRepository(ddb)
	mechanicRepo := repository2.NewMechanicDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	bookingRepo := repository2.NewBookingDynamoRepository(ddb)
	reviewRepo := repository2.NewReviewDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	b2bRepo := repository2.NewB2BDynamoRepository(ddb)

	tokens := authinfra.NewJWTService(os.Getenv("JWT_SECRET"), jwtTTL())

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), payments.MockEnabled(os.Getenv), sugar)
	if err != nil {
		sugar.Warnw("Mercado Pago gateway not configured", "error", err)
	} else {
		paymentGateway = mpGateway
	}

	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, sugar)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokens, sugar)
	mechanicUseCase := usecase.NewMechanicUseCase(mechanicRepo)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, mechanicRepo, vehicleRepo, notificationUseCase, sugar)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, mechanicRepo, notificationUseCase, sugar)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, bookingRepo, mechanicRepo, notificationUseCase, sugar)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, bookingRepo, paymentGateway, sugar)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, sugar)
	b2bUseCase := usecase.NewB2BUseCase(b2bRepo, sugar)

	authHandler := handlers.NewAuthHandler(authUseCase)
	mechanicHandler := handlers.NewMechanicHandler(mechanicUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	reviewHandler := handlers.NewReviewHandler(reviewUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	b2bHandler := handlers.NewB2BHandler(b2bUseCase)

	requireAuth := middleware.RequireAuth(tokens)
	requireAdmin := middleware.RequireRole("admin")

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler, requireAuth)
	addMechanicRoutes(v1, mechanicHandler, reviewHandler, requireAuth)
	addVehicleRoutes(v1, vehicleHandler, requireAuth)
	addQuoteRoutes(v1, quoteHandler, requireAuth)
	addBookingRoutes(v1, bookingHandler, paymentHandler, requireAuth)
	addReviewRoutes(v1, reviewHandler, requireAuth)
	addNotificationRoutes(v1, notificationHandler, requireAuth)
	addServiceRoutes(v1, serviceHandler, requireAuth, requireAdmin)
	addB2BRoutes(v1, b2bHandler, requireAuth, requireAdmin)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{allowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.Use(middleware.Metrics())
}

func jwtTTL() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("JWT_TTL_HOURS"))
	if err != nil || hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}
