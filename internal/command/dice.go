package command

import (
	"context"
	"math/rand/v2"

	"github.com/miruku-dev/clow-discord-bot-go/internal/constants"
	"github.com/miruku-dev/clow-discord-bot-go/internal/domain"
	"github.com/miruku-dev/clow-discord-bot-go/pkg/errors"
)

// DiceCommand rolls dice by sampling the face table with replacement.
// Always nondeterministic.
type DiceCommand struct {
	deps *Dependencies
}

func NewDiceCommand(deps *Dependencies) *DiceCommand {
	return &DiceCommand{deps: deps}
}

func (c *DiceCommand) Type() domain.CommandType {
	return domain.CommandDice
}

func (c *DiceCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, data domain.CommandData) error {
	dice, ok := data.(domain.Dice)
	if !ok || dice.Amount < 1 || dice.Amount > constants.Limit.MaxDice {
		return errors.NewValidationError("dice amount out of range", "amount", data)
	}

	faces := make([]uint64, 0, dice.Amount)
	for range dice.Amount {
		faces = append(faces, constants.DiceEmojis[rand.IntN(len(constants.DiceEmojis))])
	}

	bundle := c.deps.Formatter.FormatDice(faces)
	return c.deps.Respond(ctx, cmdCtx, bundle)
}
