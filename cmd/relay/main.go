package main

import (
	"chat-relay/gateway"
	httpapi "chat-relay/infrastructure/http"
	"chat-relay/infrastructure/websocket"
	"chat-relay/internal"
	"chat-relay/moderation"
	"chat-relay/observability"
	"chat-relay/repositories"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"chat-relay/services"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Exit codes to provide meaningful status to the operating system or service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Relay terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component, serves until a signal or a server failure, then
// shuts down in dependency order. Deferred cleanups run before main exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	censorChar, err := internal.CharacterRune(config.CensorCharacter)
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := repositories.Open(config.BadgerFilepath, log)
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if log.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		log.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.InspectPort, endpoint))
		database.StartDebugServer(db, config.InspectPort, endpoint, RecordMapper)
	}

	// 3. Domain service
	domainService := services.NewLocalDomainService(log, services.Repositories{
		Users:    repositories.NewUserRepository(db),
		Channels: repositories.NewChannelRepository(db),
		Messages: repositories.NewMessageRepository(db, log),
		Peers:    repositories.NewPeerRepository(db),
	}, services.LocalDomainConfig{
		PeerName:     config.PeerName,
		PeerAddress:  config.PeerAddress,
		PeerPort:     config.PeerPort,
		BacklogLimit: config.BacklogLimit,
		EventBuffer:  config.EventBufferSize,
	})
	if err = domainService.Bootstrap(ctx, config.SeedChannels); err != nil {
		return exitRuntime, fmt.Errorf("bootstrap failed: %w", err)
	}

	// 4. Moderation
	words, err := censoredWords(config, log)
	if err != nil {
		return exitConfig, err
	}
	moderator, err := moderation.NewModerator(words, censorChar, log)
	if err != nil {
		return exitConfig, fmt.Errorf("moderator init failed: %w", err)
	}

	// 5. Metrics, sessions, relay
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(registry)

	sessions := runtime.NewSessionRegistry()
	sessionService := services.NewSessionService(log, domainService, sessions, metrics, config.LogoutTimeout)
	commandGateway := gateway.NewGateway(log, domainService, moderator, metrics)

	sup := workers.NewSupervisor(log, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(log, sup, sessions, domainService, domainService, metrics,
		runtime.OrchestratorConfig{
			Lanes:          config.RelayLanes,
			LaneBuffer:     config.EventBufferSize,
			CallTimeout:    config.DomainTimeout,
			MetricInterval: config.MetricInterval,
		})

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 2)
	go func() {
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	// 7. HTTP server
	wsHandler := websocket.NewHandler(log, sessionService, commandGateway, config.SendBufferSize)
	server := &http.Server{
		Addr:              config.Address(),
		Handler:           httpapi.NewRouter(log, wsHandler, commandGateway, registry),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("Starting relay server", "address", server.Addr, "peer_id", domainService.ID(), "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	code := exitOK
	var runErr error
	select {
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	case runErr = <-errChan:
		code = exitRuntime
	}

	// 9. Final cleanup: connections first so every logout reaches the
	// domain service before its event stream closes.
	log.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown incomplete", "error", err)
	}
	wsHandler.CloseAll()
	wsHandler.Wait()
	sessionService.Wait()
	orchestrator.Stop()
	domainService.Close()
	log.Info("Program stopped cleanly")

	return code, runErr
}

// censoredWords merges CENSORED_WORDS with the dictionaries of CENSORED_DIR.
func censoredWords(config internal.Config, log *slog.Logger) ([]string, error) {
	words := config.Words()
	if config.CensoredDir == "" {
		return words, nil
	}
	data, err := runtime.NewCensoredLoader(os.DirFS(config.CensoredDir)).LoadAll(".")
	if err != nil {
		return nil, fmt.Errorf("loading censored words from %s: %w", config.CensoredDir, err)
	}
	log.Info("Censored dictionaries loaded", "languages", data.Languages, "words", len(data.Words))
	return append(words, data.Words...), nil
}
