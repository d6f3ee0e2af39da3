package adapter

import (
	"strconv"
	"strings"

	"github.com/miruku-dev/clow-discord-bot-go/internal/constants"
	"github.com/miruku-dev/clow-discord-bot-go/internal/domain"
	"github.com/miruku-dev/clow-discord-bot-go/internal/util"
)

// MessageAdapter parses the free-text surface into canonical commands.
type MessageAdapter struct {
	prefix string
}

func NewMessageAdapter(prefix string) *MessageAdapter {
	return &MessageAdapter{prefix: prefix}
}

// Parse extracts a command from a chat message. authorID is the message
// author; botMention, when non-empty, is rewritten to the prefix when it
// leads the message, so mentioning the bot works like the prefix. A message
// that does not resolve into a command yields the silent None result.
func (ma *MessageAdapter) Parse(content string, authorID uint64, botMention string) domain.Parsed {
	if botMention != "" {
		content = util.ReplaceLeadingMention(content, botMention, ma.prefix)
	}

	rest, ok := strings.CutPrefix(content, ma.prefix)
	if !ok {
		return domain.ParsedNone()
	}
	cmd, args := util.SplitCommandLine(strings.TrimLeft(rest, " "))

	kind, ok := ResolveCommand(cmd)
	if !ok {
		return domain.ParsedNone()
	}

	switch kind {
	case domain.CommandRandomPick:
		return parsePickText(args)
	case domain.CommandDrawClowcard:
		return parseDrawClowText(args, authorID)
	case domain.CommandRelationship:
		return parseRelationshipText(args, authorID)
	case domain.CommandBookAnswers:
		return domain.Parsed{Type: kind, Data: domain.BookOfAnswers{
			Prompt:     args,
			Author:     authorID,
			ShowPrompt: false,
		}}
	case domain.CommandDice:
		return domain.Parsed{Type: kind, Data: domain.Dice{Amount: parseDiceAmountText(args)}}
	case domain.CommandAbout:
		return domain.Parsed{Type: kind, Data: domain.About{}}
	default:
		return domain.ParsedNone()
	}
}

// parsePickText splits the remainder on ';'. Fewer than 2 usable choices
// fails the whole command.
func parsePickText(args string) domain.Parsed {
	var choices []string
	for _, piece := range strings.Split(args, ";") {
		if choice := strings.TrimSpace(piece); choice != "" {
			choices = append(choices, choice)
		}
	}
	if len(choices) < 2 {
		return domain.ParsedNone()
	}
	return domain.Parsed{Type: domain.CommandRandomPick, Data: domain.RandomPick{
		Choices:    choices,
		ShowPrompt: false,
	}}
}

// parseDrawClowText reads an optional leading amount. When the first token
// parses as a nonzero integer it is the amount and the rest is the prompt;
// otherwise the whole input is the prompt.
func parseDrawClowText(args string, authorID uint64) domain.Parsed {
	first, rest := util.SplitCommandLine(args)

	amount := 0
	prompt := args
	if n, err := strconv.Atoi(first); err == nil && n > 0 {
		amount = min(n, constants.Limit.MaxClow)
		prompt = rest
	}

	return domain.Parsed{Type: domain.CommandDrawClowcard, Data: domain.DrawClowcard{
		Prompt:     strings.TrimSpace(prompt),
		Author:     authorID,
		Amount:     amount,
		ShowPrompt: false,
	}}
}

// parseRelationshipText scans whitespace tokens for up to 2 user ids,
// tolerating mention syntax around the digits. Missing slots are filled with
// the author, and the pair is sorted so the outcome ignores argument order.
func parseRelationshipText(args string, authorID uint64) domain.Parsed {
	var targets []uint64
	for _, token := range strings.Fields(args) {
		if len(targets) == 2 {
			break
		}
		if id, err := strconv.ParseUint(util.TrimNonDigits(token), 10, 64); err == nil {
			targets = append(targets, id)
		}
	}
	return domain.Parsed{
		Type: domain.CommandRelationship,
		Data: fillAndSortTargets(targets, authorID),
	}
}

// parseDiceAmountText resets anything outside [1,100] back to a single die.
func parseDiceAmountText(args string) int {
	amount, err := strconv.Atoi(args)
	if err != nil || amount < 1 || amount > constants.Limit.MaxDice {
		return 1
	}
	return amount
}

func fillAndSortTargets(targets []uint64, authorID uint64) domain.Relationship {
	for len(targets) < 2 {
		targets = append(targets, authorID)
	}
	pair := [2]uint64{targets[0], targets[1]}
	if pair[0] > pair[1] {
		pair[0], pair[1] = pair[1], pair[0]
	}
	return domain.Relationship{Targets: pair}
}
