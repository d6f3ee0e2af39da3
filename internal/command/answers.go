package command

import (
	"context"
	"math/rand/v2"

	"github.com/miruku-dev/clow-discord-bot-go/internal/domain"
	"github.com/miruku-dev/clow-discord-bot-go/internal/seed"
	"github.com/miruku-dev/clow-discord-bot-go/pkg/errors"
)

// AnswersCommand draws one quote from the book of answers. A prompted draw
// is deterministic within a minute bucket for the same asker and prompt; an
// unprompted draw is fresh every time.
type AnswersCommand struct {
	deps *Dependencies
}

func NewAnswersCommand(deps *Dependencies) *AnswersCommand {
	return &AnswersCommand{deps: deps}
}

func (c *AnswersCommand) Type() domain.CommandType {
	return domain.CommandBookAnswers
}

func (c *AnswersCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, data domain.CommandData) error {
	boa, ok := data.(domain.BookOfAnswers)
	if !ok {
		return errors.NewValidationError("book of answers payload mismatch", "data", data)
	}

	quotes, err := c.deps.Datasets.Answers()
	if err != nil {
		return err
	}

	var idx int
	if boa.Prompt != "" {
		s := seed.New().
			Time(seed.Minute).
			Uint64(boa.Author).
			String(boa.Prompt).
			Finish()
		rng := rand.New(rand.NewPCG(s, 0))
		idx = rng.IntN(len(quotes))
	} else {
		idx = rand.IntN(len(quotes))
	}

	bundle := c.deps.Formatter.FormatBookOfAnswers(boa, quotes[idx])
	return c.deps.Respond(ctx, cmdCtx, bundle)
}
