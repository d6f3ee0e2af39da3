package adapter

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/miruku-dev/clow-discord-bot-go/internal/constants"
	"github.com/miruku-dev/clow-discord-bot-go/internal/customid"
	"github.com/miruku-dev/clow-discord-bot-go/internal/discord"
	"github.com/miruku-dev/clow-discord-bot-go/internal/domain"
)

const (
	errUnsupportedInteraction = "unsupported command type"
	errMalformedArguments     = "malformed command arguments"
)

// InteractionAdapter parses the structured surface (slash commands and
// control activations) into canonical commands. Option values whose variant
// does not match the command's schema surface as the generic error result
// rather than aborting.
type InteractionAdapter struct {
	logger *zap.Logger
}

func NewInteractionAdapter(logger *zap.Logger) *InteractionAdapter {
	return &InteractionAdapter{logger: logger}
}

func (ia *InteractionAdapter) Parse(itr *discord.Interaction) domain.Parsed {
	if itr.Data == nil {
		return domain.ParsedError(errUnsupportedInteraction)
	}

	author := itr.AuthorUser()
	if author == nil {
		return domain.ParsedError(errUnsupportedInteraction)
	}
	authorID, err := strconv.ParseUint(author.ID, 10, 64)
	if err != nil {
		ia.logger.Warn("Interaction author id is not a snowflake", zap.String("id", author.ID))
		return domain.ParsedError(errUnsupportedInteraction)
	}

	switch itr.Type {
	case discord.InteractionTypeCommand:
		return ia.parseCommand(itr.Data, authorID)
	case discord.InteractionTypeMessageComponent:
		return ia.parseComponent(itr.Data)
	default:
		return domain.ParsedError(errUnsupportedInteraction)
	}
}

func (ia *InteractionAdapter) parseCommand(data *discord.InteractionData, authorID uint64) domain.Parsed {
	kind, ok := ResolveCommand(data.Name)
	if !ok {
		ia.logger.Warn("Interaction names an unknown command", zap.String("name", data.Name))
		return domain.ParsedNone()
	}

	switch kind {
	case domain.CommandRandomPick:
		return parsePickOptions(data.Options)
	case domain.CommandDrawClowcard:
		return parseDrawClowOptions(data.Options, authorID)
	case domain.CommandRelationship:
		return parseRelationshipOptions(data.Options, authorID)
	case domain.CommandBookAnswers:
		return parseBookOfAnswersOptions(data.Options, authorID)
	case domain.CommandDice:
		return parseDiceOptions(data.Options)
	case domain.CommandAbout:
		return domain.Parsed{Type: kind, Data: domain.About{}}
	default:
		return domain.ParsedNone()
	}
}

// parseComponent turns a control activation back into the payload its token
// encodes. Tokens are self-issued, so a decode failure is logged as a
// contract violation and rendered as the generic error.
func (ia *InteractionAdapter) parseComponent(data *discord.InteractionData) domain.Parsed {
	cid, err := customid.Decode(data.CustomID)
	if err != nil {
		ia.logger.Error("Component token failed to decode",
			zap.String("custom_id", data.CustomID),
			zap.Error(err))
		return domain.ParsedError(errUnsupportedInteraction)
	}

	switch cid.Kind {
	case customid.KindCardInfo:
		return domain.Parsed{Type: domain.CommandClowCardInfo, Data: domain.ClowCardInfo{Name: cid.CardName}}
	default:
		return domain.ParsedError(errUnsupportedInteraction)
	}
}

// parsePickOptions keeps every supplied option value in its given order.
func parsePickOptions(options []discord.CommandOption) domain.Parsed {
	choices := make([]string, 0, len(options))
	for _, opt := range options {
		choice, ok := opt.StringValue()
		if !ok {
			return domain.ParsedError(errMalformedArguments)
		}
		choices = append(choices, choice)
	}
	if len(choices) < 2 {
		return domain.ParsedError(errMalformedArguments)
	}
	return domain.Parsed{Type: domain.CommandRandomPick, Data: domain.RandomPick{
		Choices:    choices,
		ShowPrompt: true,
	}}
}

func parseDrawClowOptions(options []discord.CommandOption, authorID uint64) domain.Parsed {
	data := domain.DrawClowcard{Author: authorID, ShowPrompt: true}
	for _, opt := range options {
		switch opt.Name {
		case "prompt":
			prompt, ok := opt.StringValue()
			if !ok {
				return domain.ParsedError(errMalformedArguments)
			}
			data.Prompt = prompt
		case "amount":
			amount, ok := opt.IntValue()
			if !ok || amount < 1 {
				return domain.ParsedError(errMalformedArguments)
			}
			data.Amount = min(int(amount), constants.Limit.MaxClow)
		}
	}
	return domain.Parsed{Type: domain.CommandDrawClowcard, Data: data}
}

func parseRelationshipOptions(options []discord.CommandOption, authorID uint64) domain.Parsed {
	var targets []uint64
	for _, opt := range options {
		if len(targets) == 2 {
			break
		}
		raw, ok := opt.UserID()
		if !ok {
			return domain.ParsedError(errMalformedArguments)
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return domain.ParsedError(errMalformedArguments)
		}
		targets = append(targets, id)
	}
	return domain.Parsed{
		Type: domain.CommandRelationship,
		Data: fillAndSortTargets(targets, authorID),
	}
}

func parseBookOfAnswersOptions(options []discord.CommandOption, authorID uint64) domain.Parsed {
	data := domain.BookOfAnswers{Author: authorID, ShowPrompt: true}
	if len(options) > 0 {
		prompt, ok := options[0].StringValue()
		if !ok {
			return domain.ParsedError(errMalformedArguments)
		}
		data.Prompt = prompt
	}
	return domain.Parsed{Type: domain.CommandBookAnswers, Data: data}
}

func parseDiceOptions(options []discord.CommandOption) domain.Parsed {
	amount := int64(1)
	if len(options) > 0 {
		v, ok := options[0].IntValue()
		if !ok {
			return domain.ParsedError(errMalformedArguments)
		}
		amount = v
	}
	// The option schema restricts the range upstream; the core re-validates.
	if amount < 1 || amount > int64(constants.Limit.MaxDice) {
		return domain.ParsedError(errMalformedArguments)
	}
	return domain.Parsed{Type: domain.CommandDice, Data: domain.Dice{Amount: int(amount)}}
}
