// Package runtime owns the live server state: session bindings and the relay
// pipeline moving domain events to sessions.
// It orchestrates the system without containing business logic or domain rules.
package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain/event"
	"chat-relay/observability"
	"chat-relay/runtime/workers"
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"
)

type OrchestratorConfig struct {
	Lanes          int
	LaneBuffer     int
	CallTimeout    time.Duration
	MetricInterval time.Duration
}

// Orchestrator assembles the relay pipeline:
//
//	domain events -> EventFanout -> RelayLane x N -> Relay -> transports
//
// and hands every stage to the supervisor.
type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	supervisor contract.ISupervisor
	registry   contract.ISessionRegistry
	domain     contract.IDomainService
	source     contract.IEventSource
	metrics    *observability.Metrics
	config     OrchestratorConfig
	started    bool
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	registry contract.ISessionRegistry, domainService contract.IDomainService,
	source contract.IEventSource, metrics *observability.Metrics,
	config OrchestratorConfig) *Orchestrator {
	if config.Lanes < 1 {
		config.Lanes = 1
	}
	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		registry:   registry,
		domain:     domainService,
		source:     source,
		metrics:    metrics,
		config:     config,
	}
}

// Start prepares the workers and runs the supervisor until ctx is done.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	if o.started {
		o.mu.Unlock()
		return fmt.Errorf("orchestrator already started")
	}
	o.started = true
	o.supervisor.Add(o.prepareWorkers()...)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers", "lanes", o.config.Lanes)
	o.supervisor.Run(ctx)
	return nil
}

func (o *Orchestrator) prepareWorkers() []contract.Worker {
	relay := workers.NewRelay(o.log, o.registry, o.domain, o.metrics, o.config.CallTimeout)

	events := o.source.Events()
	monitored := []workers.NamedChannel{{Name: "domain_events", Channel: events}}

	lanes := make([]chan event.DomainEvent, o.config.Lanes)
	res := make([]contract.Worker, 0, o.config.Lanes+2)
	for i := range lanes {
		lanes[i] = make(chan event.DomainEvent, o.config.LaneBuffer)
		res = append(res, workers.NewRelayLane(i, o.log, relay, lanes[i]))
		monitored = append(monitored, workers.NamedChannel{
			Name:    fmt.Sprintf("relay_lane_%d", i),
			Channel: lanes[i],
		})
	}
	res = append(res, workers.NewEventFanout(o.log, events, lanes))

	if o.config.MetricInterval > 0 {
		res = append(res,
			workers.NewChannelCapacityWorker(o.log, monitored, o.metrics, o.config.MetricInterval),
			workers.NewHealthMonitoringWorker(o.log, int32(os.Getpid()), o.metrics, o.config.MetricInterval))
	}
	return res
}

// Stop cancels the supervised context; workers return on their next select.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
