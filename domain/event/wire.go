package event

// Names of the frames exchanged between the relay and its clients.
const (
	// server -> client
	WireLoginPoke         = "login_poke"
	WireLoginFail         = "login_fail"
	WireMyUser            = "my_user"
	WireUserOnline        = "user_online"
	WireUserOffline       = "user_offline"
	WireUserInfo          = "user_info"
	WirePeerInfo          = "peer_info"
	WireThisServer        = "this_server"
	WireMessageReceived   = "msg_rcv"
	WireMessageDeleted    = "msg_del"
	WireChannelCreate     = "channel_create"
	WireChannelDelete     = "channel_delete"
	WirePairRequest       = "pair_request"
	WireChannelCreateFail = "channel_create_fail"

	// client -> server
	WireLogin                = "login"
	WireMessageSend          = "msg_send"
	WireChannelJoin          = "channel_join"
	WireGetUser              = "get_user"
	WireGetPeer              = "get_peer"
	WireSendPairRequest      = "send_pair_request"
	WireRespondToPairRequest = "respond_to_pair_request"
)

// FailureOf names the denial frame answering a client command,
// e.g. "channel_create" -> "channel_create_fail".
func FailureOf(command string) string {
	return command + "_fail"
}
