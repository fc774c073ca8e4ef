package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/lotuspos/counter/internal/application/service"
	"github.com/lotuspos/counter/internal/application/staging"
	"github.com/lotuspos/counter/internal/config"
	"github.com/lotuspos/counter/internal/infrastructure/backend"
	"github.com/lotuspos/counter/internal/infrastructure/localstore"
	"github.com/lotuspos/counter/internal/presentation/http/handler"
	"github.com/lotuspos/counter/internal/presentation/http/routes"
	"github.com/lotuspos/counter/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the terminal's local store (persisted sessions)
	db, err := localstore.Open(cfg.Store.Path)
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}
	sessionStore := localstore.NewSessionStore(db)

	// The backend client pulls its bearer token from the session service,
	// so wire sessions before the client.
	sessions := service.NewSessionService(sessionStore, nil)
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, sessions)
	sessions.SetAuthGateway(client)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	prints := service.NewPrintService(thermalPrinter, cfg.Printer.Width)

	// Initialize screen services
	board := service.NewBoardService(client, cfg.Board.PollInterval, cfg.Board.KeyIdleClear)
	payments := service.NewPaymentService(client, prints, cfg.UI.BannerTTL, cfg.UI.RedirectDelay, cfg.UI.PrintStepDelay)
	purchases := service.NewPurchaseService(staging.NewStore(), client, cfg.UI.BannerTTL)
	masterdata := service.NewMasterDataService(client, client, client, client)
	reports := service.NewReportService(client, prints)

	// First board fill, then keep it fresh in the background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := board.Refresh(ctx); err != nil {
		log.Printf("Warning: initial board refresh failed: %v", err)
	}
	board.StartPolling(ctx)

	// Initialize handlers
	handlers := &routes.Handlers{
		Session:    handler.NewSessionHandler(sessions),
		Board:      handler.NewBoardHandler(board),
		Payment:    handler.NewPaymentHandler(payments, board),
		Purchase:   handler.NewPurchaseHandler(purchases),
		MasterData: handler.NewMasterDataHandler(masterdata, cfg.UI.BannerTTL),
		Report:     handler.NewReportHandler(reports),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:      cfg,
		Sessions: sessions,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)
	log.Printf("Backend: %s", cfg.Backend.BaseURL)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
