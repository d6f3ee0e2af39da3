package domain

// Embed is a presentation-agnostic rich-content block.
type Embed struct {
	Title        string
	Description  string
	Color        int
	ThumbnailURL string
}

// Button is an interactive control. CustomID is an opaque component token
// that decodes back into the payload that produced it.
type Button struct {
	Label    string
	CustomID string
	EmojiID  uint64
}

// ResponseBundle is built once per request and handed to the send capability.
// Buttons are delivered as a single control row. Ephemeral bundles are only
// visible to the requester.
type ResponseBundle struct {
	Content   string
	Embeds    []Embed
	Buttons   []Button
	Ephemeral bool
}

// IsEmpty reports whether the bundle carries nothing to deliver.
func (b *ResponseBundle) IsEmpty() bool {
	return b == nil || (b.Content == "" && len(b.Embeds) == 0 && len(b.Buttons) == 0)
}
