package command

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/miruku-dev/clow-discord-bot-go/internal/domain"
	"github.com/miruku-dev/clow-discord-bot-go/internal/seed"
	"github.com/miruku-dev/clow-discord-bot-go/pkg/errors"
)

// ClowcardCommand deals cards without replacement from the catalogue. The
// bucket granularity follows what the caller supplied: the bare daily draw
// repeats all day, an amount-only draw is unique per call, and any prompted
// draw holds for a minute.
type ClowcardCommand struct {
	deps *Dependencies
}

func NewClowcardCommand(deps *Dependencies) *ClowcardCommand {
	return &ClowcardCommand{deps: deps}
}

func (c *ClowcardCommand) Type() domain.CommandType {
	return domain.CommandDrawClowcard
}

func (c *ClowcardCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, data domain.CommandData) error {
	draw, ok := data.(domain.DrawClowcard)
	if !ok {
		return errors.NewValidationError("draw clowcard payload mismatch", "data", data)
	}

	deck, err := c.deps.Datasets.Deck()
	if err != nil {
		return err
	}

	var bucket seed.Granularity
	switch {
	case draw.Prompt != "":
		bucket = seed.Minute
	case draw.Amount != 0:
		bucket = seed.Second
	default:
		bucket = seed.Day
	}

	amount := draw.Amount
	if amount == 0 {
		amount = 1
	}

	s := seed.New().
		Time(bucket).
		Uint64(draw.Author).
		String(draw.Prompt).
		Int(amount).
		Finish()
	rng := rand.New(rand.NewPCG(s, 0))

	cards := deck.Draw(rng, amount)
	dailyStart := seed.BucketStart(seed.Day, time.Now())

	bundle := c.deps.Formatter.FormatClowDraw(draw, cards, dailyStart)
	return c.deps.Respond(ctx, cmdCtx, bundle)
}
