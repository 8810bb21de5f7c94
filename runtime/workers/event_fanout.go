package workers

import (
	"chat-relay/contract"
	"chat-relay/domain/event"
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
)

var (
	_ contract.Worker = (*EventFanout)(nil)
	_ contract.Worker = (*RelayLane)(nil)
)

// EventFanout reads the domain event stream and spreads it over the relay
// lanes. Events of one channel always land on the same lane, and a lane
// delivers sequentially, so per-channel emission order is kept while
// different channels are relayed in parallel.
//
// Nothing is promised across channels or across event types.
type EventFanout struct {
	log    *slog.Logger
	events <-chan event.DomainEvent
	lanes  []chan event.DomainEvent
}

func NewEventFanout(log *slog.Logger, events <-chan event.DomainEvent, lanes []chan event.DomainEvent) *EventFanout {
	return &EventFanout{log: log, events: events, lanes: lanes}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return nil
		case evt, ok := <-w.events:
			if !ok {
				w.log.Debug("Domain event stream closed")
				return nil
			}
			lane := w.lanes[LaneFor(evt, len(w.lanes))]
			select {
			case lane <- evt:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// LaneFor picks the lane of an event: by channel for channel-scoped events,
// by identity for presence events, lane 0 for everything else.
func LaneFor(evt event.DomainEvent, lanes int) int {
	if lanes <= 1 {
		return 0
	}
	var key string
	if scoped, ok := evt.(event.ChannelScoped); ok {
		key = scoped.ChannelKey()
	} else if identityID, ok := event.IdentityKey(evt); ok {
		key = identityID
	} else {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(lanes))
}

// RelayLane delivers the events of one lane, one at a time.
type RelayLane struct {
	name   string
	log    *slog.Logger
	relay  *Relay
	events <-chan event.DomainEvent
}

func NewRelayLane(index int, log *slog.Logger, relay *Relay, events <-chan event.DomainEvent) *RelayLane {
	return &RelayLane{
		name:   fmt.Sprintf("RelayLane-%d", index),
		log:    log,
		relay:  relay,
		events: events,
	}
}

func (w *RelayLane) GetName() string { return w.name }

func (w *RelayLane) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping lane", "lane", w.name)
			return nil
		case evt, ok := <-w.events:
			if !ok {
				return nil
			}
			w.relay.Deliver(ctx, evt)
		}
	}
}
