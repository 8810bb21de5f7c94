//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Stop()
}

// Worker doesn't protect itself, the supervisor restarts it on panic.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging by the supervisor.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	if named, ok := w.(interface{ GetName() string }); ok {
		return named.GetName()
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Transport is one live client connection.
// Emit must never block: a vanished or saturated connection returns an error
// that callers are free to ignore.
type Transport interface {
	ID() string
	Emit(name string, payload any) error
	Close() error
}

// IDomainService is the system of record for identities, channels, messages
// and federation. Every call may fail and may block on I/O.
type IDomainService interface {
	ID() string
	CreateUser(ctx context.Context, username string, admin bool) (string, error)
	LoginUser(ctx context.Context, id string) (bool, error)
	LogoutUser(ctx context.Context, id string) error
	GetUser(ctx context.Context, id string) (domain.Identity, error)
	CreateChannel(ctx context.Context, name string, adminOnly, private bool) (string, error)
	DeleteChannel(ctx context.Context, id string) (bool, error)
	GetAllChannels(ctx context.Context) ([]domain.Channel, error)
	GetChannel(ctx context.Context, id string) (domain.Channel, error)
	SendMessage(ctx context.Context, senderID, channelID, content string) (string, error)
	GetMessage(ctx context.Context, id string) (domain.Message, error)
	DeleteMessage(ctx context.Context, id string) error
	GetMessages(ctx context.Context, channelID string, before time.Time) ([]domain.Message, error)
	GetPeer(ctx context.Context, id string) (domain.Peer, error)
	GetAllOnlineLocalUsers(ctx context.Context) ([]domain.Identity, error)
	SendPairRequest(ctx context.Context, address string, port int) error
	RespondToPairRequest(ctx context.Context, id string, accepted bool) error
}

// IEventSource is the domain service's outbound event stream.
type IEventSource interface {
	Events() <-chan event.DomainEvent
}

type ISessionRegistry interface {
	Register(session domain.Session, transport Transport) error
	Unregister(identityID, connID string) bool
	Lookup(identityID string) (Transport, bool)
	Session(identityID string) (domain.Session, bool)
	Sessions() []domain.Session
	Admins() []domain.Session
	Len() int
}

// IGateway validates, authorizes and forwards client commands.
type IGateway interface {
	SendMessage(ctx context.Context, session domain.Session, cmd domain.SendMessageCommand) error
	DeleteMessage(ctx context.Context, session domain.Session, messageID string) error
	JoinChannel(ctx context.Context, session domain.Session, cmd domain.JoinChannelCommand) ([]domain.Message, error)
	GetUser(ctx context.Context, session domain.Session, id string) (domain.Identity, error)
	GetPeer(ctx context.Context, session domain.Session, id string) (domain.Peer, error)
	CreateChannel(ctx context.Context, session domain.Session, cmd domain.CreateChannelCommand) (string, error)
	DeleteChannel(ctx context.Context, session domain.Session, channelID string) error
	SendPairRequest(ctx context.Context, session domain.Session, cmd domain.PairRequestCommand) error
	RespondToPairRequest(ctx context.Context, session domain.Session, cmd domain.PairResponseCommand) error
	CreateAccount(ctx context.Context, cmd domain.CreateAccountCommand) (string, error)
}

// Renderer is whatever displays the client state: a terminal, a test recorder.
type Renderer interface {
	ShowSelf(identity domain.Identity)
	ShowAlert(reason string)
	AddRosterEntry(identity domain.Identity)
	RemoveRosterEntry(identityID string)
	AddChannel(channel domain.Channel, local bool)
	RemoveChannel(channelID string)
	SelectChannel(channelID string)
	ClearMessages()
	RenderMessage(message domain.Message, author string, deletable bool)
	RenameAuthor(messageID, author string)
	RemoveMessage(messageID string)
	AddPeer(peer domain.Peer)
	ShowPairRequest(request domain.PairRequest)
}

// Outbound sends client commands to the relay.
type Outbound interface {
	Emit(name string, payload any) error
}
