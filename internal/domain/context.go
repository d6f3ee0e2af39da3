package domain

// Surface names the input surface a request arrived on.
type Surface string

const (
	SurfaceMessage     Surface = "message"
	SurfaceInteraction Surface = "interaction"
)

// CommandContext carries just enough identity from the triggering event to
// deliver exactly one response. It lives for a single request.
type CommandContext struct {
	Surface Surface

	// Message surface: where to post the reply.
	ChannelID string
	MessageID string

	// Interaction surface: what to acknowledge.
	InteractionID    string
	InteractionToken string
}

// MessageContext builds a context for a chat-message request.
func MessageContext(channelID, messageID string) *CommandContext {
	return &CommandContext{
		Surface:   SurfaceMessage,
		ChannelID: channelID,
		MessageID: messageID,
	}
}

// InteractionContext builds a context for a structured-interaction request.
func InteractionContext(id, token string) *CommandContext {
	return &CommandContext{
		Surface:          SurfaceInteraction,
		InteractionID:    id,
		InteractionToken: token,
	}
}
