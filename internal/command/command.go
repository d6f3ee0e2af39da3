package command

import (
	"context"

	"go.uber.org/zap"

	"github.com/miruku-dev/clow-discord-bot-go/internal/adapter"
	"github.com/miruku-dev/clow-discord-bot-go/internal/dataset"
	"github.com/miruku-dev/clow-discord-bot-go/internal/domain"
)

// RespondFunc delivers a bundle back to the surface the request came from.
// Delivery is best-effort: callers log a returned error and move on.
type RespondFunc func(ctx context.Context, cmdCtx *domain.CommandContext, bundle *domain.ResponseBundle) error

// Command computes the outcome for one canonical command kind and sends the
// composed response.
type Command interface {
	Type() domain.CommandType
	Execute(ctx context.Context, cmdCtx *domain.CommandContext, data domain.CommandData) error
}

// Dependencies is the shared wiring injected into every handler.
type Dependencies struct {
	Datasets  *dataset.Store
	Formatter *adapter.ResponseFormatter
	Respond   RespondFunc
	Logger    *zap.Logger
}
