package command

import (
	"context"
	"math/rand/v2"

	"github.com/miruku-dev/clow-discord-bot-go/internal/domain"
	"github.com/miruku-dev/clow-discord-bot-go/pkg/errors"
)

// PickCommand chooses one entry uniformly from the supplied choices. Picks
// are always nondeterministic.
type PickCommand struct {
	deps *Dependencies
}

func NewPickCommand(deps *Dependencies) *PickCommand {
	return &PickCommand{deps: deps}
}

func (c *PickCommand) Type() domain.CommandType {
	return domain.CommandRandomPick
}

func (c *PickCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, data domain.CommandData) error {
	pick, ok := data.(domain.RandomPick)
	if !ok || len(pick.Choices) == 0 {
		return errors.NewValidationError("random pick needs choices", "choices", data)
	}

	choice := pick.Choices[rand.IntN(len(pick.Choices))]
	bundle := c.deps.Formatter.FormatRandomPick(pick, choice)
	return c.deps.Respond(ctx, cmdCtx, bundle)
}
