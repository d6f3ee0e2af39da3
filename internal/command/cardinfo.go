package command

import (
	"context"

	"go.uber.org/zap"

	"github.com/miruku-dev/clow-discord-bot-go/internal/domain"
	"github.com/miruku-dev/clow-discord-bot-go/pkg/errors"
)

// CardInfoCommand serves the full reading of one card, looked up by exact
// name. Reached only through the card buttons, never by typing a command.
type CardInfoCommand struct {
	deps *Dependencies
}

func NewCardInfoCommand(deps *Dependencies) *CardInfoCommand {
	return &CardInfoCommand{deps: deps}
}

func (c *CardInfoCommand) Type() domain.CommandType {
	return domain.CommandClowCardInfo
}

func (c *CardInfoCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, data domain.CommandData) error {
	info, ok := data.(domain.ClowCardInfo)
	if !ok {
		return errors.NewValidationError("card info payload mismatch", "data", data)
	}

	deck, err := c.deps.Datasets.Deck()
	if err != nil {
		return err
	}

	full := ""
	if card, found := deck.ByName(info.Name); found {
		full = card.Full
	} else {
		c.deps.Logger.Warn("Unknown clow card", zap.String("name", info.Name))
	}

	bundle := c.deps.Formatter.FormatCardInfo(full)
	return c.deps.Respond(ctx, cmdCtx, bundle)
}
