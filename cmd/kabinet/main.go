package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dsorokina/kabinet/internal/cli"
	"github.com/dsorokina/kabinet/internal/config"
	"github.com/dsorokina/kabinet/internal/db"
	"github.com/dsorokina/kabinet/internal/repository"
	"github.com/dsorokina/kabinet/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Open database (runs migrations)
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	clientRepo := repository.NewSQLiteClientRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	paymentRepo := repository.NewSQLitePaymentRepo(database)
	noteRepo := repository.NewSQLiteNoteRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Service telemetry goes to the configured log file, if any.
	var logWriter io.Writer
	if cfg.LogPath != "" {
		logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer logFile.Close()
		logWriter = logFile
	}

	locale := cfg.LanguageTag()

	app := &cli.App{
		Clients:   service.NewClientService(clientRepo, locale),
		Sessions:  service.NewSessionService(sessionRepo, clientRepo, uow, locale),
		Payments:  service.NewPaymentService(paymentRepo, clientRepo, uow, locale),
		Notes:     service.NewNoteService(noteRepo, clientRepo, locale),
		Dashboard: service.NewDashboardService(clientRepo, sessionRepo, paymentRepo, service.NewLogUseCaseObserver(logWriter)),

		OwnerID:       cfg.OwnerID,
		ActivityLimit: cfg.ActivityLimit,
		Currency:      "RUB",
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
