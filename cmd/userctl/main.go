// Package main provides the userctl CLI for managing users against the
// service database directly. It wires subcommands, loads configuration and
// initializes logging.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"user-service/internal/adapter/db/postgres"
	"user-service/internal/adapter/mail"
	"user-service/internal/config"
	domain "user-service/internal/domain/user"
	"user-service/internal/usecase/user"
	"user-service/pkg/logger"
)

// cliApp carries the pieces every subcommand needs.
type cliApp struct {
	cfg      *config.Config
	log      *zap.Logger
	validate *validator.Validate
}

// newUsecase opens a database connection and wires the usecase over it.
// The CLI talks to the database directly and skips the cache layer.
func (a *cliApp) newUsecase() (*user.Usecase, func(), error) {
	gormLogger := logger.NewGormLogger(a.log, a.cfg.Logger.SlowQuerySeconds, "silent")

	db, err := gorm.Open(pgdriver.Open(a.cfg.DB.DSN()), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to database: %w", err)
	}

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	repo := postgres.NewUserRepoPG(db, a.log)
	service := domain.NewService(repo)
	mailer := mail.NewWelcomeMailer(mail.Config{
		Domain: a.cfg.Mail.Domain,
		APIKey: a.cfg.Mail.APIKey,
		Sender: a.cfg.Mail.Sender,
	}, a.log)

	return user.New(repo, service, mailer, a.log), cleanup, nil
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "."
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	l, err := logger.NewWithConfig(logger.Config{
		Level:       "warn", // keep command output clean
		Format:      "console",
		OutputPath:  "stderr",
		ServiceName: "userctl",
		Environment: cfg.App.Environment,
	})
	if err != nil {
		log.Fatalf("could not initialize logger: %v", err)
	}

	app := &cliApp{
		cfg:      cfg,
		log:      l,
		validate: validator.New(),
	}

	rootCmd := &cobra.Command{
		Use:           "userctl",
		Short:         "Manage users from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		createCommand(app),
		getCommand(app),
		listUsersCommand(app),
		updateCommand(app),
		deleteCommand(app),
		statsCommand(app),
	)

	err = rootCmd.Execute()
	_ = l.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
