package services

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/repositories"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var (
	_ contract.IDomainService = (*LocalDomainService)(nil)
	_ contract.IEventSource   = (*LocalDomainService)(nil)
)

// SeedChannels are created on an empty store when seeding is enabled.
var SeedChannels = []domain.Channel{
	{Name: "general"},
	{Name: "general-2"},
	{Name: "admins-only", AdminOnly: true},
}

type Repositories struct {
	Users    repositories.IUserRepository
	Channels repositories.IChannelRepository
	Messages repositories.IMessageRepository
	Peers    repositories.IPeerRepository
}

type LocalDomainConfig struct {
	PeerName     string
	PeerAddress  string
	PeerPort     int
	BacklogLimit int
	EventBuffer  int
}

// LocalDomainService is the in-process system of record: identities,
// channels and messages persisted in badger, the online set kept in memory.
// Every state change is published on Events in the order it was applied.
type LocalDomainService struct {
	log          *slog.Logger
	repos        Repositories
	self         domain.Peer
	backlogLimit int

	// emitMu serializes "apply then publish" so events leave in the order
	// the changes were made.
	emitMu sync.Mutex
	events chan event.DomainEvent
	closed bool

	mu       sync.RWMutex
	online   map[string]domain.Identity
	outgoing map[string]domain.PairRequest // address:port -> request sent
}

func NewLocalDomainService(log *slog.Logger, repos Repositories, config LocalDomainConfig) *LocalDomainService {
	address := fmt.Sprintf("%s:%d", config.PeerAddress, config.PeerPort)
	return &LocalDomainService{
		log:   log,
		repos: repos,
		self: domain.Peer{
			// Stable across restarts for a given address
			ID:      uuid.NewSHA1(uuid.NameSpaceURL, []byte(address)).String(),
			Name:    config.PeerName,
			Address: config.PeerAddress,
			Port:    config.PeerPort,
		},
		backlogLimit: config.BacklogLimit,
		events:       make(chan event.DomainEvent, config.EventBuffer),
		online:       make(map[string]domain.Identity),
		outgoing:     make(map[string]domain.PairRequest),
	}
}

// Bootstrap registers the local peer and, when seed is set and the store has
// no channel yet, creates the default channels.
func (s *LocalDomainService) Bootstrap(ctx context.Context, seed bool) error {
	if err := s.repos.Peers.StorePeer(s.self); err != nil {
		return fmt.Errorf("storing local peer: %w", err)
	}
	if !seed {
		return nil
	}
	channels, err := s.repos.Channels.ListChannels()
	if err != nil {
		return err
	}
	if len(channels) > 0 {
		return nil
	}
	for _, c := range SeedChannels {
		if _, err := s.CreateChannel(ctx, c.Name, c.AdminOnly, c.Private); err != nil {
			return fmt.Errorf("seeding channel %s: %w", c.Name, err)
		}
	}
	s.log.Info("Default channels seeded", "count", len(SeedChannels))
	return nil
}

func (s *LocalDomainService) Events() <-chan event.DomainEvent {
	return s.events
}

// Close ends the event stream. Later changes are applied but not published.
func (s *LocalDomainService) Close() {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.events)
	}
}

func (s *LocalDomainService) ID() string {
	return s.self.ID
}

func (s *LocalDomainService) CreateUser(_ context.Context, username string, admin bool) (string, error) {
	identity, err := s.repos.Users.CreateUser(username, admin, s.self.ID)
	if err != nil {
		return "", err
	}
	s.log.Info("Account created", "identity_id", identity.ID, "username", username, "admin", admin)
	return identity.ID, nil
}

// LoginUser marks the identity online. It answers false for an unknown
// identity or one that is already online.
func (s *LocalDomainService) LoginUser(ctx context.Context, id string) (bool, error) {
	identity, err := s.repos.Users.GetUser(id)
	if stderrors.Is(err, errors.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	if _, ok := s.online[id]; ok {
		s.mu.Unlock()
		return false, nil
	}
	s.online[id] = identity
	s.mu.Unlock()

	s.emit(ctx, event.UserOnline{Identity: identity})
	return true, nil
}

func (s *LocalDomainService) LogoutUser(ctx context.Context, id string) error {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	identity, ok := s.online[id]
	delete(s.online, id)
	s.mu.Unlock()

	if ok {
		s.emit(ctx, event.UserOffline{Identity: identity})
	}
	return nil
}

func (s *LocalDomainService) GetUser(_ context.Context, id string) (domain.Identity, error) {
	return s.repos.Users.GetUser(id)
}

func (s *LocalDomainService) CreateChannel(ctx context.Context, name string, adminOnly, private bool) (string, error) {
	channel := domain.Channel{
		ID:        uuid.New().String(),
		Name:      name,
		AdminOnly: adminOnly,
		Private:   private,
		PeerID:    s.self.ID,
	}

	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	if err := s.repos.Channels.StoreChannel(channel); err != nil {
		return "", err
	}
	s.emit(ctx, event.ChannelCreated{Channel: channel})
	return channel.ID, nil
}

// DeleteChannel removes the channel and its messages. It answers false when
// the channel did not exist.
func (s *LocalDomainService) DeleteChannel(ctx context.Context, id string) (bool, error) {
	channel, err := s.repos.Channels.GetChannel(id)
	if stderrors.Is(err, errors.ErrChannelNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	deleted, err := s.repos.Channels.DeleteChannel(id)
	if err != nil || !deleted {
		return false, err
	}
	if count, err := s.repos.Messages.DeleteChannelMessages(id); err != nil {
		s.log.Warn("Unable to purge channel messages", "channel_id", id, "error", err)
	} else {
		s.log.Debug("Channel messages purged", "channel_id", id, "count", count)
	}
	s.emit(ctx, event.ChannelDeleted{Channel: channel})
	return true, nil
}

func (s *LocalDomainService) GetAllChannels(_ context.Context) ([]domain.Channel, error) {
	return s.repos.Channels.ListChannels()
}

func (s *LocalDomainService) GetChannel(_ context.Context, id string) (domain.Channel, error) {
	return s.repos.Channels.GetChannel(id)
}

func (s *LocalDomainService) SendMessage(ctx context.Context, senderID, channelID, content string) (string, error) {
	channel, err := s.repos.Channels.GetChannel(channelID)
	if err != nil {
		return "", err
	}
	message := domain.Message{
		ID:        uuid.New().String(),
		Content:   content,
		Timestamp: time.Now().UTC(),
		SenderID:  senderID,
		ChannelID: channelID,
	}

	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	if err = s.repos.Messages.StoreMessage(message); err != nil {
		return "", err
	}
	s.emit(ctx, event.MessageSent{Message: message, Recipients: s.members(channel)})
	return message.ID, nil
}

func (s *LocalDomainService) GetMessage(_ context.Context, id string) (domain.Message, error) {
	return s.repos.Messages.GetMessage(id)
}

func (s *LocalDomainService) DeleteMessage(ctx context.Context, id string) error {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	message, err := s.repos.Messages.DeleteMessage(id)
	if err != nil {
		return err
	}
	channel, err := s.repos.Channels.GetChannel(message.ChannelID)
	if err != nil {
		return err
	}
	s.emit(ctx, event.MessageDeleted{Message: message, Recipients: s.members(channel)})
	return nil
}

// GetMessages returns the most recent messages at or before the given time,
// most recent first, bounded by the backlog limit.
func (s *LocalDomainService) GetMessages(_ context.Context, channelID string, before time.Time) ([]domain.Message, error) {
	if _, err := s.repos.Channels.GetChannel(channelID); err != nil {
		return nil, err
	}
	return s.repos.Messages.GetMessages(channelID, before, s.backlogLimit)
}

func (s *LocalDomainService) GetPeer(_ context.Context, id string) (domain.Peer, error) {
	return s.repos.Peers.GetPeer(id)
}

func (s *LocalDomainService) GetAllOnlineLocalUsers(_ context.Context) ([]domain.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	identities := lo.Filter(lo.Values(s.online), func(i domain.Identity, _ int) bool {
		return i.PeerID == s.self.ID
	})
	sort.Slice(identities, func(i, j int) bool {
		return identities[i].Username < identities[j].Username
	})
	return identities, nil
}

// SendPairRequest records an outgoing pairing request. Reaching the remote
// node is the federation layer's job.
func (s *LocalDomainService) SendPairRequest(_ context.Context, address string, port int) error {
	request := domain.PairRequest{
		ID:      uuid.New().String(),
		Name:    s.self.Name,
		Address: address,
		Port:    port,
	}
	s.mu.Lock()
	s.outgoing[fmt.Sprintf("%s:%d", address, port)] = request
	s.mu.Unlock()
	s.log.Info("Pair request recorded", "address", address, "port", port, "request_id", request.ID)
	return nil
}

// OutgoingPairRequests lists the requests sent and not yet answered.
func (s *LocalDomainService) OutgoingPairRequests() []domain.PairRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Values(s.outgoing)
}

// ReceivePairRequest stores an inbound request until an admin answers it.
func (s *LocalDomainService) ReceivePairRequest(ctx context.Context, request domain.PairRequest) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	if err := s.repos.Peers.StorePairRequest(request); err != nil {
		return err
	}
	s.emit(ctx, event.PairingRequested{Request: request})
	return nil
}

func (s *LocalDomainService) RespondToPairRequest(ctx context.Context, id string, accepted bool) error {
	request, err := s.repos.Peers.GetPairRequest(id)
	if err != nil {
		return err
	}

	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	if err = s.repos.Peers.DeletePairRequest(id); err != nil {
		return err
	}
	if !accepted {
		s.log.Info("Pair request declined", "request_id", id)
		return nil
	}
	peer := domain.Peer{ID: request.ID, Name: request.Name, Address: request.Address, Port: request.Port}
	if err = s.repos.Peers.StorePeer(peer); err != nil {
		return err
	}
	s.emit(ctx, event.PairingAccepted{PeerID: peer.ID})
	return nil
}

// MarkPeerOnline announces that a paired node became reachable.
func (s *LocalDomainService) MarkPeerOnline(ctx context.Context, id string) error {
	peer, err := s.repos.Peers.GetPeer(id)
	if err != nil {
		return err
	}
	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	s.emit(ctx, event.PeerOnline{Peer: peer})
	return nil
}

// members are the online identities allowed to see the channel.
// Caller holds emitMu.
func (s *LocalDomainService) members(channel domain.Channel) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.FilterMap(lo.Values(s.online), func(i domain.Identity, _ int) (string, bool) {
		return i.ID, channel.VisibleTo(i)
	})
}

// emit publishes evt. Caller holds emitMu.
func (s *LocalDomainService) emit(ctx context.Context, evt event.DomainEvent) {
	if s.closed {
		s.log.Debug("Event stream closed, event not published", "event", evt.EventName())
		return
	}
	select {
	case s.events <- evt:
	case <-ctx.Done():
		s.log.Warn("Domain event dropped", "event", evt.EventName(), "error", ctx.Err())
	}
}
