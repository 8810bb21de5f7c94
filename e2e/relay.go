package e2e

import (
	"chat-relay/gateway"
	httpapi "chat-relay/infrastructure/http"
	"chat-relay/infrastructure/websocket"
	"chat-relay/moderation"
	"chat-relay/observability"
	"chat-relay/repositories"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"chat-relay/services"
	"context"
	"log/slog"
	"net/http/httptest"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
)

// startRelay runs a complete relay on a fresh store under dir, wired like
// cmd/relay. It returns the base URL and the shutdown function.
func startRelay(dir string) (string, func(), error) {
	log := logs.GetLoggerFromLevel(slog.LevelError)
	ctx, cancel := context.WithCancel(context.Background())

	db, err := repositories.Open(dir, log)
	if err != nil {
		cancel()
		return "", nil, err
	}
	domainService := services.NewLocalDomainService(log, services.Repositories{
		Users:    repositories.NewUserRepository(db),
		Channels: repositories.NewChannelRepository(db),
		Messages: repositories.NewMessageRepository(db, log),
		Peers:    repositories.NewPeerRepository(db),
	}, services.LocalDomainConfig{
		PeerName:     "e2e",
		PeerAddress:  "localhost",
		PeerPort:     8080,
		BacklogLimit: 50,
		EventBuffer:  256,
	})
	if err = domainService.Bootstrap(ctx, false); err != nil {
		cancel()
		_ = db.Close()
		return "", nil, err
	}
	moderator, err := moderation.NewModerator([]string{"badger"}, '*', log)
	if err != nil {
		cancel()
		_ = db.Close()
		return "", nil, err
	}

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)
	sessions := runtime.NewSessionRegistry()
	sessionService := services.NewSessionService(log, domainService, sessions, metrics, time.Second)
	commandGateway := gateway.NewGateway(log, domainService, moderator, metrics)
	orchestrator := runtime.NewOrchestrator(log, workers.NewSupervisor(log, 50*time.Millisecond),
		sessions, domainService, domainService, metrics, runtime.OrchestratorConfig{
			Lanes:       4,
			LaneBuffer:  256,
			CallTimeout: time.Second,
		})
	go func() { _ = orchestrator.Start(ctx) }()

	wsHandler := websocket.NewHandler(log, sessionService, commandGateway, 256)
	server := httptest.NewServer(httpapi.NewRouter(log, wsHandler, commandGateway, registry))

	stop := func() {
		wsHandler.CloseAll()
		wsHandler.Wait()
		sessionService.Wait()
		server.Close()
		orchestrator.Stop()
		cancel()
		domainService.Close()
		_ = db.Close()
	}
	return server.URL, stop, nil
}
