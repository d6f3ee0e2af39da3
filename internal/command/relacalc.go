package command

import (
	"context"
	"math/rand/v2"

	"github.com/miruku-dev/clow-discord-bot-go/internal/domain"
	"github.com/miruku-dev/clow-discord-bot-go/internal/seed"
	"github.com/miruku-dev/clow-discord-bot-go/pkg/errors"
)

// RelacalcCommand derives a daily relationship percentage for a user pair
// and maps it onto a tier. The pair arrives sorted, so both argument orders
// land on the same seed and the same answer.
type RelacalcCommand struct {
	deps *Dependencies
}

func NewRelacalcCommand(deps *Dependencies) *RelacalcCommand {
	return &RelacalcCommand{deps: deps}
}

func (c *RelacalcCommand) Type() domain.CommandType {
	return domain.CommandRelationship
}

func (c *RelacalcCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, data domain.CommandData) error {
	rela, ok := data.(domain.Relationship)
	if !ok {
		return errors.NewValidationError("relationship payload mismatch", "data", data)
	}

	s := seed.New().
		Time(seed.Day).
		Uint64(rela.Targets[0]).
		Uint64(rela.Targets[1]).
		Finish()
	rng := rand.New(rand.NewPCG(s, 0))

	percent := rng.Float64() * 100
	level := domain.LevelFor(percent)

	bundle := c.deps.Formatter.FormatRelationship(rela, percent, level)
	return c.deps.Respond(ctx, cmdCtx, bundle)
}
