package discord

import "encoding/json"

// Gateway opcodes.
const (
	OpDispatch       = 0
	OpHeartbeat      = 1
	OpIdentify       = 2
	OpHello          = 10
	OpHeartbeatAck   = 11
	OpReconnect      = 7
	OpInvalidSession = 9
)

// Gateway intents: guild messages, direct messages, message content.
const GatewayIntents = 1<<9 | 1<<12 | 1<<15

// Interaction types.
const (
	InteractionTypePing             = 1
	InteractionTypeCommand          = 2
	InteractionTypeMessageComponent = 3
)

// Application command option types.
const (
	OptionTypeString  = 3
	OptionTypeInteger = 4
	OptionTypeUser    = 6
)

// Component types and styles.
const (
	ComponentTypeActionRow = 1
	ComponentTypeButton    = 2
	ButtonStyleSecondary   = 2
)

// MessageFlagEphemeral marks a response visible to the requester only.
const MessageFlagEphemeral = 1 << 6

type GatewayPayload struct {
	Op       int             `json:"op"`
	Data     json.RawMessage `json:"d,omitempty"`
	Sequence *int64          `json:"s,omitempty"`
	Type     string          `json:"t,omitempty"`
}

type Hello struct {
	HeartbeatInterval int64 `json:"heartbeat_interval"`
}

type Identify struct {
	Token      string             `json:"token"`
	Intents    int                `json:"intents"`
	Properties IdentifyProperties `json:"properties"`
}

type IdentifyProperties struct {
	OS      string `json:"os"`
	Browser string `json:"browser"`
	Device  string `json:"device"`
}

type Ready struct {
	User        User        `json:"user"`
	Application Application `json:"application"`
}

type Application struct {
	ID string `json:"id"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Bot      bool   `json:"bot"`
}

type Message struct {
	ID        string `json:"id"`
	ChannelID string `json:"channel_id"`
	Content   string `json:"content"`
	Author    User   `json:"author"`
}

type Member struct {
	User *User `json:"user,omitempty"`
}

type Interaction struct {
	ID            string           `json:"id"`
	ApplicationID string           `json:"application_id"`
	Type          int              `json:"type"`
	Token         string           `json:"token"`
	Data          *InteractionData `json:"data,omitempty"`
	Member        *Member          `json:"member,omitempty"`
	User          *User            `json:"user,omitempty"`
}

// AuthorUser resolves the invoking user, which arrives under member.user in
// guilds and user in direct messages.
func (i *Interaction) AuthorUser() *User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

type InteractionData struct {
	ID            string          `json:"id,omitempty"`
	Name          string          `json:"name,omitempty"`
	Options       []CommandOption `json:"options,omitempty"`
	CustomID      string          `json:"custom_id,omitempty"`
	ComponentType int             `json:"component_type,omitempty"`
}

// CommandOption is one (name, typed value) pair of a structured interaction.
// Values are decoded lazily so a variant mismatch surfaces as a reported
// condition instead of a panic.
type CommandOption struct {
	Name  string          `json:"name"`
	Type  int             `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// StringValue extracts a string value, reporting whether the option held one.
func (o CommandOption) StringValue() (string, bool) {
	if o.Type != OptionTypeString {
		return "", false
	}
	var v string
	if err := json.Unmarshal(o.Value, &v); err != nil {
		return "", false
	}
	return v, true
}

// IntValue extracts an integer value.
func (o CommandOption) IntValue() (int64, bool) {
	if o.Type != OptionTypeInteger {
		return 0, false
	}
	var v int64
	if err := json.Unmarshal(o.Value, &v); err != nil {
		return 0, false
	}
	return v, true
}

// UserID extracts a user-identifier value. User options carry the snowflake
// as a JSON string.
func (o CommandOption) UserID() (string, bool) {
	if o.Type != OptionTypeUser {
		return "", false
	}
	var v string
	if err := json.Unmarshal(o.Value, &v); err != nil {
		return "", false
	}
	return v, true
}

// Outbound types.

type Embed struct {
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	Color       int             `json:"color,omitempty"`
	Thumbnail   *EmbedThumbnail `json:"thumbnail,omitempty"`
}

type EmbedThumbnail struct {
	URL string `json:"url"`
}

type Component struct {
	Type       int         `json:"type"`
	Style      int         `json:"style,omitempty"`
	Label      string      `json:"label,omitempty"`
	CustomID   string      `json:"custom_id,omitempty"`
	Emoji      *EmojiRef   `json:"emoji,omitempty"`
	Components []Component `json:"components,omitempty"`
}

type EmojiRef struct {
	ID string `json:"id"`
}

type AllowedMentions struct {
	Parse []string `json:"parse"`
}

type MessageReference struct {
	MessageID string `json:"message_id"`
}

type CreateMessageRequest struct {
	Content          string            `json:"content,omitempty"`
	Embeds           []Embed           `json:"embeds,omitempty"`
	Components       []Component       `json:"components,omitempty"`
	AllowedMentions  *AllowedMentions  `json:"allowed_mentions"`
	MessageReference *MessageReference `json:"message_reference,omitempty"`
}

type InteractionCallbackData struct {
	Content         string           `json:"content,omitempty"`
	Embeds          []Embed          `json:"embeds,omitempty"`
	Components      []Component      `json:"components,omitempty"`
	Flags           int              `json:"flags,omitempty"`
	AllowedMentions *AllowedMentions `json:"allowed_mentions"`
}

// InteractionResponseChannelMessage answers an interaction with a message.
const InteractionResponseChannelMessage = 4

type InteractionResponse struct {
	Type int                      `json:"type"`
	Data *InteractionCallbackData `json:"data,omitempty"`
}

// Command registration types.

type CommandDefinition struct {
	Name             string                    `json:"name"`
	Description      string                    `json:"description"`
	Type             int                       `json:"type"`
	Options          []CommandOptionDefinition `json:"options,omitempty"`
	Contexts         []int                     `json:"contexts,omitempty"`
	IntegrationTypes []int                     `json:"integration_types,omitempty"`
}

type CommandOptionDefinition struct {
	Type        int    `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required,omitempty"`
	MinValue    *int64 `json:"min_value,omitempty"`
	MaxValue    *int64 `json:"max_value,omitempty"`
}
