package domain

// Client-issued commands as they arrive on the wire.
// Validation tags are evaluated by the gateway before any domain call.

type SendMessageCommand struct {
	ChannelID string `json:"channel_id" validate:"required"`
	Content   string `json:"message" validate:"message"`
}

type JoinChannelCommand struct {
	ChannelID string `json:"channel_id" validate:"required"`
}

type CreateChannelCommand struct {
	Name      string `json:"name" validate:"channelname"`
	AdminOnly bool   `json:"admin_only"`
	Private   bool   `json:"is_private"`
}

type PairRequestCommand struct {
	Address string `json:"address" validate:"required,hostname|ip"`
	Port    int    `json:"port" validate:"min=1,max=65535"`
}

type PairResponseCommand struct {
	ID       string `json:"id" validate:"required"`
	Accepted bool   `json:"accepted"`
}

type CreateAccountCommand struct {
	Username string `json:"username" validate:"username"`
	Admin    bool   `json:"admin"`
}
