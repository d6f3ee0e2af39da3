package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/miruku-dev/clow-discord-bot-go/internal/domain"
	"github.com/miruku-dev/clow-discord-bot-go/pkg/errors"
)

// Client is a minimal REST client for the endpoints this bot uses: fetching
// the application identity, registering the command catalogue, and the two
// send capabilities (reply to a message, acknowledge an interaction).
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL, token string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// CurrentApplication fetches the application this token belongs to.
func (c *Client) CurrentApplication(ctx context.Context) (*Application, error) {
	var app Application
	if err := c.doRequest(ctx, "GET", "/applications/@me", nil, &app); err != nil {
		c.logger.Error("Failed to fetch current application", zap.Error(err))
		return nil, err
	}
	return &app, nil
}

// SetGlobalCommands overwrites the application's global command catalogue.
func (c *Client) SetGlobalCommands(ctx context.Context, appID string, commands []CommandDefinition) error {
	path := fmt.Sprintf("/applications/%s/commands", appID)
	if err := c.doRequest(ctx, "PUT", path, commands, nil); err != nil {
		c.logger.Error("Failed to register commands", zap.Error(err))
		return err
	}
	c.logger.Info("Global commands registered", zap.Int("count", len(commands)))
	return nil
}

// CreateReply posts a response bundle as a reply to the triggering message.
func (c *Client) CreateReply(ctx context.Context, channelID, messageID string, bundle *domain.ResponseBundle) error {
	req := CreateMessageRequest{
		Content:          bundle.Content,
		Embeds:           bundleEmbeds(bundle),
		Components:       bundleComponents(bundle),
		AllowedMentions:  &AllowedMentions{Parse: []string{}},
		MessageReference: &MessageReference{MessageID: messageID},
	}
	path := fmt.Sprintf("/channels/%s/messages", channelID)
	return c.doRequest(ctx, "POST", path, req, nil)
}

// CreateInteractionResponse acknowledges an interaction with a message.
func (c *Client) CreateInteractionResponse(ctx context.Context, interactionID, token string, bundle *domain.ResponseBundle) error {
	data := &InteractionCallbackData{
		Content:         bundle.Content,
		Embeds:          bundleEmbeds(bundle),
		Components:      bundleComponents(bundle),
		AllowedMentions: &AllowedMentions{Parse: []string{}},
	}
	if bundle.Ephemeral {
		data.Flags = MessageFlagEphemeral
	}
	resp := InteractionResponse{
		Type: InteractionResponseChannelMessage,
		Data: data,
	}
	path := fmt.Sprintf("/interactions/%s/%s/callback", interactionID, token)
	return c.doRequest(ctx, "POST", path, resp, nil)
}

func bundleEmbeds(bundle *domain.ResponseBundle) []Embed {
	if len(bundle.Embeds) == 0 {
		return nil
	}
	embeds := make([]Embed, 0, len(bundle.Embeds))
	for _, e := range bundle.Embeds {
		embed := Embed{
			Title:       e.Title,
			Description: e.Description,
			Color:       e.Color,
		}
		if e.ThumbnailURL != "" {
			embed.Thumbnail = &EmbedThumbnail{URL: e.ThumbnailURL}
		}
		embeds = append(embeds, embed)
	}
	return embeds
}

// bundleComponents groups all of a bundle's buttons into a single action row.
func bundleComponents(bundle *domain.ResponseBundle) []Component {
	if len(bundle.Buttons) == 0 {
		return nil
	}
	buttons := make([]Component, 0, len(bundle.Buttons))
	for _, b := range bundle.Buttons {
		button := Component{
			Type:     ComponentTypeButton,
			Style:    ButtonStyleSecondary,
			Label:    b.Label,
			CustomID: b.CustomID,
		}
		if b.EmojiID != 0 {
			button.Emoji = &EmojiRef{ID: strconv.FormatUint(b.EmojiID, 10)}
		}
		buttons = append(buttons, button)
	}
	return []Component{{Type: ComponentTypeActionRow, Components: buttons}}
}

func (c *Client) doRequest(ctx context.Context, method, path string, reqBody, respBody any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return errors.NewAPIError("failed to marshal request", 400, map[string]any{
				"url": url,
			}).WithCause(err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return errors.NewAPIError("failed to create request", 500, map[string]any{
			"url": url,
		}).WithCause(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bot "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewAPIError("request failed", 500, map[string]any{
			"url": url,
		}).WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return errors.NewAPIError("unexpected status", resp.StatusCode, map[string]any{
			"url":  url,
			"body": string(body),
		})
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return errors.NewAPIError("failed to decode response", resp.StatusCode, map[string]any{
				"url": url,
			}).WithCause(err)
		}
	}

	return nil
}
