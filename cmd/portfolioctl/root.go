package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mikiasgoitom/portfolio/internal/infrastructure/config"
	database "github.com/mikiasgoitom/portfolio/internal/infrastructure/database"
	"github.com/mikiasgoitom/portfolio/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/portfolio/internal/infrastructure/password_service"
	"github.com/mikiasgoitom/portfolio/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/portfolio/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/portfolio/internal/infrastructure/validator"
	"github.com/mikiasgoitom/portfolio/internal/usecase"
)

// services holds what the subcommands need; built once per invocation.
type services struct {
	mongo      *database.MongoDBClient
	tagUsecase *usecase.TagUseCase
	auth       *usecase.AuthUsecase
}

var (
	svc      *services
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "portfolioctl",
	Short:         "Maintenance commands for the portfolio API",
	Long:          `Inspect and repair tag usage counters, and manage admin accounts, directly against MongoDB.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		s, err := connect(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		svc = s
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if svc == nil {
			return nil
		}
		return svc.mongo.Disconnect(context.Background())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level for diagnostic output")
	rootCmd.AddCommand(tagsCmd, reconcileCmd, createAdminCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func connect(ctx context.Context, cfg *config.Config) (*services, error) {
	appLogger := logger.NewAppLogger(logLevel, "console")

	client, err := database.NewMongoDBClient(ctx, cfg.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	db := client.Client.Database(cfg.MongoDBName)

	tagRepo := mongodb.NewTagRepository(db)
	reconciler := usecase.NewTagReconciler(tagRepo, appLogger, mongodb.NewBlogPostRepository(db), mongodb.NewProjectRepository(db))
	ids := uuidgen.NewGenerator()

	return &services{
		mongo:      client,
		tagUsecase: usecase.NewTagUseCase(tagRepo, reconciler, ids, appLogger),
		auth: usecase.NewAuthUsecase(
			mongodb.NewMongoUserRepository(db.Collection("users")),
			passwordservice.NewHasher(),
			nil,
			validator.NewValidator(),
			ids,
			appLogger,
		),
	}, nil
}
