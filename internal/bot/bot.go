package bot

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/miruku-dev/clow-discord-bot-go/internal/adapter"
	"github.com/miruku-dev/clow-discord-bot-go/internal/command"
	"github.com/miruku-dev/clow-discord-bot-go/internal/constants"
	"github.com/miruku-dev/clow-discord-bot-go/internal/discord"
	"github.com/miruku-dev/clow-discord-bot-go/internal/domain"
)

// Dependencies carries everything a Bot needs to run.
type Dependencies struct {
	Client             *discord.Client
	Gateway            *discord.Gateway
	Registry           *command.Registry
	MessageAdapter     *adapter.MessageAdapter
	InteractionAdapter *adapter.InteractionAdapter
	Formatter          *adapter.ResponseFormatter
	Respond            command.RespondFunc
	Logger             *zap.Logger
}

// Bot glues gateway events to the command pipeline. Each event is handled
// as an independent unit of work on a bounded pool; requests never depend
// on one another.
type Bot struct {
	deps    *Dependencies
	pool    *pool.Pool
	mention string
}

func NewBot(deps *Dependencies) (*Bot, error) {
	if deps == nil || deps.Client == nil || deps.Gateway == nil || deps.Registry == nil {
		return nil, fmt.Errorf("bot dependencies incomplete")
	}
	return &Bot{
		deps: deps,
		pool: pool.New().WithMaxGoroutines(constants.EventPool.MaxGoroutines),
	}, nil
}

// Start registers the command catalogue, wires gateway handlers, connects,
// and blocks until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	app, err := b.deps.Client.CurrentApplication(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve application identity: %w", err)
	}
	b.mention = "<@" + app.ID + ">"

	if err := b.deps.Client.SetGlobalCommands(ctx, app.ID, discord.BuildGlobalCommands()); err != nil {
		b.deps.Logger.Warn("Failed to register command catalogue", zap.Error(err))
	}

	b.deps.Gateway.OnReady(func(ready *discord.Ready) {
		b.deps.Logger.Info("Gateway session ready", zap.String("user", ready.User.Username))
	})
	b.deps.Gateway.OnMessageCreate(func(msg *discord.Message) {
		// Bot authors and empty contents are never eligible.
		if msg.Author.Bot || msg.Content == "" {
			return
		}
		b.pool.Go(func() {
			b.handleMessage(ctx, msg)
		})
	})
	b.deps.Gateway.OnInteractionCreate(func(itr *discord.Interaction) {
		b.pool.Go(func() {
			b.handleInteraction(ctx, itr)
		})
	})

	if err := b.deps.Gateway.Connect(ctx); err != nil {
		return fmt.Errorf("gateway connect failed: %w", err)
	}

	<-ctx.Done()
	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *discord.Message) {
	authorID, err := strconv.ParseUint(msg.Author.ID, 10, 64)
	if err != nil {
		b.deps.Logger.Warn("Message author id is not a snowflake", zap.String("id", msg.Author.ID))
		return
	}

	parsed := b.deps.MessageAdapter.Parse(msg.Content, authorID, b.mention)
	// The text surface drops unparseable input silently.
	if parsed.Type == domain.CommandNone || parsed.Type == domain.CommandError {
		return
	}

	cmdCtx := domain.MessageContext(msg.ChannelID, msg.ID)
	if err := b.deps.Registry.Execute(ctx, cmdCtx, parsed); err != nil {
		b.deps.Logger.Warn("Unable to respond to message command",
			zap.String("command", parsed.Type.String()),
			zap.Error(err))
	}
}

func (b *Bot) handleInteraction(ctx context.Context, itr *discord.Interaction) {
	parsed := b.deps.InteractionAdapter.Parse(itr)
	cmdCtx := domain.InteractionContext(itr.ID, itr.Token)

	switch parsed.Type {
	case domain.CommandNone:
		// The structured surface always answers, so an unrecognized
		// command gets the generic error instead of silence.
		b.respondError(ctx, cmdCtx, "unknown command")
		return
	case domain.CommandError:
		message := "unsupported command type"
		if data, ok := parsed.Data.(domain.ErrorData); ok && data.Message != "" {
			message = data.Message
		}
		b.respondError(ctx, cmdCtx, message)
		return
	}

	if err := b.deps.Registry.Execute(ctx, cmdCtx, parsed); err != nil {
		b.deps.Logger.Warn("Unable to respond to interaction command",
			zap.String("command", parsed.Type.String()),
			zap.Error(err))
	}
}

func (b *Bot) respondError(ctx context.Context, cmdCtx *domain.CommandContext, message string) {
	bundle := b.deps.Formatter.FormatError(message)
	if err := b.deps.Respond(ctx, cmdCtx, bundle); err != nil {
		b.deps.Logger.Warn("Unable to deliver error response", zap.Error(err))
	}
}

// Shutdown stops the gateway session and drains in-flight handlers.
func (b *Bot) Shutdown(ctx context.Context) error {
	b.deps.Gateway.Close()

	done := make(chan struct{})
	go func() {
		b.pool.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
