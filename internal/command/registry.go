package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/miruku-dev/clow-discord-bot-go/internal/domain"
)

// ErrUnknownCommand is returned when dispatch is attempted for a command
// kind no handler was registered for.
var ErrUnknownCommand = errors.New("unknown command")

// Registry stores command handlers keyed by their canonical kind. It is
// populated once during wiring and read-only afterwards.
type Registry struct {
	handlers map[domain.CommandType]Command
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[domain.CommandType]Command)}
}

// Register adds a command handler to the registry.
func (r *Registry) Register(handler Command) {
	if handler == nil {
		return
	}
	r.handlers[handler.Type()] = handler
}

// Execute runs the handler registered for the parsed command.
func (r *Registry) Execute(ctx context.Context, cmdCtx *domain.CommandContext, parsed domain.Parsed) error {
	handler, ok := r.handlers[parsed.Type]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, parsed.Type)
	}
	return handler.Execute(ctx, cmdCtx, parsed.Data)
}

// Count returns the number of registered command handlers.
func (r *Registry) Count() int {
	return len(r.handlers)
}
