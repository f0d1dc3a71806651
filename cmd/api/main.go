package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mikiasgoitom/portfolio/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/portfolio/internal/handler/http"
	"github.com/mikiasgoitom/portfolio/internal/handler/http/middleware"
	redisclient "github.com/mikiasgoitom/portfolio/internal/infrastructure/cache"
	"github.com/mikiasgoitom/portfolio/internal/infrastructure/config"
	database "github.com/mikiasgoitom/portfolio/internal/infrastructure/database"
	"github.com/mikiasgoitom/portfolio/internal/infrastructure/external_services"
	"github.com/mikiasgoitom/portfolio/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/portfolio/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/portfolio/internal/infrastructure/password_service"
	randomgenerator "github.com/mikiasgoitom/portfolio/internal/infrastructure/random_generator"
	"github.com/mikiasgoitom/portfolio/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/portfolio/internal/infrastructure/storage"
	"github.com/mikiasgoitom/portfolio/internal/infrastructure/store"
	"github.com/mikiasgoitom/portfolio/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/portfolio/internal/infrastructure/validator"
	"github.com/mikiasgoitom/portfolio/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	appLogger := logger.NewAppLogger(appConfig.LogLevel, appConfig.LogFormat)
	gin.SetMode(appConfig.GinMode)

	ctx := context.Background()

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(ctx, appConfig.MongoURI)
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Client.Database(appConfig.MongoDBName)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		appLogger.Fatalf("Failed to create indexes: %v", err)
	}

	// Dependency Injection: Repositories
	tagRepo := mongodb.NewTagRepository(db)
	blogRepo := mongodb.NewBlogPostRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	heroRepo := mongodb.NewHeroRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	txRunner := mongodb.NewTxRunner(mongoClient.Client, appConfig.MongoTransactions)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtService := jwt.NewJWTService(jwt.NewJWTManager(appConfig.JWTSecret, appConfig.GetAccessTokenExpiry()))
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	imageStorage, err := storage.NewLocalImageStorage(appConfig.UploadDir, appConfig.GetAppBaseURL()+"/uploads")
	if err != nil {
		appLogger.Fatalf("Failed to prepare upload directory: %v", err)
	}
	var mailService contract.IEmailService
	if appConfig.SMTPHost != "" {
		mailService = external_services.NewEmailService(appConfig.SMTPHost, appConfig.SMTPPort, appConfig.SMTPUsername, appConfig.SMTPPassword, appConfig.SMTPFrom)
	} else {
		appLogger.Infof("SMTP_HOST not set, message notifications disabled")
	}

	// Dependency Injection: Usecases
	reconciler := usecase.NewTagReconciler(tagRepo, appLogger.With("tag_reconciler"), blogRepo, projectRepo)
	tagUsecase := usecase.NewTagUseCase(tagRepo, reconciler, uuidGenerator, appLogger.With("tags"))
	blogUsecase := usecase.NewBlogPostUseCase(blogRepo, reconciler, txRunner, uuidGenerator, randomGenerator, appLogger.With("blog"))
	projectUsecase := usecase.NewProjectUseCase(projectRepo, reconciler, txRunner, uuidGenerator, appValidator, appLogger.With("projects"))
	heroUsecase := usecase.NewHeroUseCase(heroRepo, appLogger.With("hero"))
	messageUsecase := usecase.NewMessageUseCase(messageRepo, mailService, appValidator, uuidGenerator, appConfig, appLogger.With("messages"))
	authUsecase := usecase.NewAuthUsecase(userRepo, hasher, jwtService, appValidator, uuidGenerator, appLogger.With("auth"))
	mediaUsecase := usecase.NewMediaUseCase(imageStorage, randomGenerator, appConfig, appLogger.With("media"))

	// Optional Dependency Injection: Redis cache
	if appConfig.RedisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, appConfig.RedisURL)
		if err != nil {
			appLogger.Warningf("Redis unavailable, running without cache: %v", err)
		} else {
			defer rdb.Close()
			blogUsecase.SetBlogCache(store.NewBlogCacheStore(rdb, appConfig.GetCacheTTL()))
			tagCache := store.NewTagCacheStore(rdb, appConfig.GetCacheTTL())
			tagUsecase.SetTagCache(tagCache)
			reconciler.SetTagCache(tagCache)
		}
	}

	// Register custom validators
	validator.RegisterCustomValidators()

	// Initialize Gin router
	router := gin.New()
	appRouter := handlerHttp.NewRouter(
		tagUsecase, blogUsecase, projectUsecase, heroUsecase,
		messageUsecase, authUsecase, mediaUsecase, jwtService, mongoClient,
		handlerHttp.RouterOptions{
			AllowedOrigins: appConfig.GetAllowedOrigins(),
			UploadDir:      appConfig.UploadDir,
			GlobalLimiter:  middleware.NewGlobalLimiter(appConfig.RateLimitPerSecond),
			StrictLimiter:  middleware.NewStrictLimiter(appConfig.StrictRateLimitPerMinute),
			Log:            appLogger.Zerolog(),
		},
	)
	appRouter.SetupRoutes(router)

	srv := &http.Server{
		Addr:              appConfig.GetAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Infof("Server running on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Infof("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Server forced to shutdown: %v", err)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		appLogger.Errorf("Failed to disconnect from MongoDB: %v", err)
	}
	appLogger.Infof("Server exited")
}
