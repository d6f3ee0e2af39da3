package command

import (
	"context"

	"github.com/miruku-dev/clow-discord-bot-go/internal/domain"
)

type AboutCommand struct {
	deps *Dependencies
}

func NewAboutCommand(deps *Dependencies) *AboutCommand {
	return &AboutCommand{deps: deps}
}

func (c *AboutCommand) Type() domain.CommandType {
	return domain.CommandAbout
}

func (c *AboutCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, _ domain.CommandData) error {
	bundle := c.deps.Formatter.FormatAbout(c.deps.Datasets.About())
	return c.deps.Respond(ctx, cmdCtx, bundle)
}
