package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/miruku-dev/clow-discord-bot-go/internal/adapter"
	"github.com/miruku-dev/clow-discord-bot-go/internal/bot"
	"github.com/miruku-dev/clow-discord-bot-go/internal/command"
	"github.com/miruku-dev/clow-discord-bot-go/internal/config"
	"github.com/miruku-dev/clow-discord-bot-go/internal/constants"
	"github.com/miruku-dev/clow-discord-bot-go/internal/dataset"
	"github.com/miruku-dev/clow-discord-bot-go/internal/discord"
	"github.com/miruku-dev/clow-discord-bot-go/internal/domain"
)

// Container bundles assembled services for constructing the runtime Bot.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	botDeps *bot.Dependencies
}

// NewBot instantiates a bot using the pre-built dependency graph.
func (c *Container) NewBot() (*bot.Bot, error) {
	if c == nil || c.botDeps == nil {
		return nil, fmt.Errorf("bot dependencies not initialized")
	}
	return bot.NewBot(c.botDeps)
}

// Build assembles all infrastructure and returns a container capable of
// creating a fully-wired bot.
func Build(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	// Platform clients
	client := discord.NewClient(cfg.Discord.APIBaseURL, cfg.Discord.Token, logger)
	gateway := discord.NewGateway(
		cfg.Discord.GatewayURL,
		cfg.Discord.Token,
		constants.WebSocketConfig.MaxReconnectAttempts,
		constants.WebSocketConfig.ReconnectDelay,
		logger,
	)

	// Parsing and composition
	messageAdapter := adapter.NewMessageAdapter(cfg.Bot.Prefix)
	interactionAdapter := adapter.NewInteractionAdapter(logger)
	formatter := adapter.NewResponseFormatter()

	// Static datasets (loaded lazily, on first use)
	datasets := dataset.NewStore(cfg.Data.Dir, logger)

	// Exactly one delivery per request, routed by the originating surface.
	respond := func(ctx context.Context, cmdCtx *domain.CommandContext, bundle *domain.ResponseBundle) error {
		if cmdCtx.Surface == domain.SurfaceInteraction {
			return client.CreateInteractionResponse(ctx, cmdCtx.InteractionID, cmdCtx.InteractionToken, bundle)
		}
		return client.CreateReply(ctx, cmdCtx.ChannelID, cmdCtx.MessageID, bundle)
	}

	deps := &command.Dependencies{
		Datasets:  datasets,
		Formatter: formatter,
		Respond:   respond,
		Logger:    logger,
	}

	registry := command.NewRegistry()
	registry.Register(command.NewPickCommand(deps))
	registry.Register(command.NewAnswersCommand(deps))
	registry.Register(command.NewClowcardCommand(deps))
	registry.Register(command.NewCardInfoCommand(deps))
	registry.Register(command.NewDiceCommand(deps))
	registry.Register(command.NewRelacalcCommand(deps))
	registry.Register(command.NewAboutCommand(deps))
	logger.Info("Command handlers registered", zap.Int("count", registry.Count()))

	return &Container{
		Config: cfg,
		Logger: logger,
		botDeps: &bot.Dependencies{
			Client:             client,
			Gateway:            gateway,
			Registry:           registry,
			MessageAdapter:     messageAdapter,
			InteractionAdapter: interactionAdapter,
			Formatter:          formatter,
			Respond:            respond,
			Logger:             logger,
		},
	}, nil
}
