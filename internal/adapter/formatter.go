package adapter

import (
	"fmt"
	"strings"

	"github.com/miruku-dev/clow-discord-bot-go/internal/constants"
	"github.com/miruku-dev/clow-discord-bot-go/internal/customid"
	"github.com/miruku-dev/clow-discord-bot-go/internal/dataset"
	"github.com/miruku-dev/clow-discord-bot-go/internal/domain"
)

// Choices longer than this render as a list, one per line, instead of
// inline.
const inlineChoiceLimit = 40

// ResponseFormatter turns resolved outcomes into response bundles. It is the
// only component that mints component tokens.
type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func userMention(id uint64) string {
	return fmt.Sprintf("<@%d>", id)
}

func shortDateMention(unix int64) string {
	return fmt.Sprintf("<t:%d:d>", unix)
}

func animatedEmoji(id uint64) string {
	return fmt.Sprintf("<a:a:%d>", id)
}

// FormatRandomPick renders the prompt (when shown) followed by the chosen
// entry. The result goes on its own line when it spans lines itself.
func (f *ResponseFormatter) FormatRandomPick(data domain.RandomPick, choice string) *domain.ResponseBundle {
	lineList := false
	for _, c := range data.Choices {
		if len(c) > inlineChoiceLimit {
			lineList = true
			break
		}
	}

	var sb strings.Builder
	if data.ShowPrompt {
		sb.WriteString("**Prompt:**")
		if lineList {
			for _, c := range data.Choices {
				sb.WriteString("\n1. ")
				sb.WriteString(c)
			}
		} else {
			for i, c := range data.Choices {
				if i > 0 {
					sb.WriteByte(';')
				}
				sb.WriteByte(' ')
				sb.WriteString(c)
			}
		}
		sb.WriteString("\n\n")
	}

	sb.WriteString("**Em chọn:**")
	if strings.Contains(choice, "\n") {
		sb.WriteByte('\n')
	} else {
		sb.WriteByte(' ')
	}
	sb.WriteString(choice)

	return &domain.ResponseBundle{Content: sb.String()}
}

func (f *ResponseFormatter) FormatBookOfAnswers(data domain.BookOfAnswers, quote string) *domain.ResponseBundle {
	content := quote
	if data.Prompt != "" && data.ShowPrompt {
		content = fmt.Sprintf("**Prompt:** %s\n>>> %s", data.Prompt, quote)
	}
	return &domain.ResponseBundle{Content: content}
}

// FormatClowDraw attaches one rich block and one control per drawn card. The
// headline depends on which inputs were given; dailyStart is the start of
// the current daily bucket, shown on the no-args draw.
func (f *ResponseFormatter) FormatClowDraw(data domain.DrawClowcard, cards []dataset.Card, dailyStart int64) *domain.ResponseBundle {
	var content string
	switch {
	case data.Prompt == "" && data.Amount == 0:
		content = fmt.Sprintf("Thẻ bài Clow của %s hôm nay (%s)",
			userMention(data.Author), shortDateMention(dailyStart))
	case data.Prompt != "" && data.ShowPrompt:
		content = fmt.Sprintf("**Prompt:** %s", data.Prompt)
	default:
		amount := data.Amount
		if amount == 0 {
			amount = 1
		}
		content = fmt.Sprintf("%s vừa rút ngẫu nhiên %d thẻ bài", userMention(data.Author), amount)
	}

	bundle := &domain.ResponseBundle{Content: content}
	for _, card := range cards {
		title := "The " + card.Name
		bundle.Embeds = append(bundle.Embeds, domain.Embed{
			Title:        title,
			Description:  card.Meaning,
			Color:        constants.Color.Primary,
			ThumbnailURL: card.ImageURL(),
		})
		bundle.Buttons = append(bundle.Buttons, domain.Button{
			Label:    title,
			CustomID: customid.CardInfo(card.Name).Encode(),
			EmojiID:  constants.MagicBookEmojiID,
		})
	}
	return bundle
}

func (f *ResponseFormatter) FormatCardInfo(full string) *domain.ResponseBundle {
	return &domain.ResponseBundle{Content: full, Ephemeral: true}
}

func (f *ResponseFormatter) FormatDice(faces []uint64) *domain.ResponseBundle {
	var sb strings.Builder
	for _, face := range faces {
		sb.WriteString(animatedEmoji(face))
		sb.WriteByte(' ')
	}
	return &domain.ResponseBundle{Content: sb.String()}
}

// FormatRelationship renders the tier alongside a fixed-width proportional
// bar: 20 slots, each worth 5 percent, filled by the rounded percentage.
func (f *ResponseFormatter) FormatRelationship(data domain.Relationship, percent float64, level domain.RelationshipLevel) *domain.ResponseBundle {
	const numBoxes = 20
	const valBox = 100 / numBoxes

	filled := int(percent+0.5) / valBox
	if filled > numBoxes {
		filled = numBoxes
	}

	description := fmt.Sprintf("%s\n```css\n[%s%s] %.2f%%\n```",
		level.Description,
		strings.Repeat("▣", filled),
		strings.Repeat("▢", numBoxes-filled),
		percent)

	return &domain.ResponseBundle{
		Content: fmt.Sprintf("Mối quan hệ giữa %s và %s hiện đang là..",
			userMention(data.Targets[0]), userMention(data.Targets[1])),
		Embeds: []domain.Embed{{
			Title:        level.Title,
			Description:  description,
			Color:        level.Color,
			ThumbnailURL: fmt.Sprintf("https://cdn.discordapp.com/emojis/%d.webp", level.ThumbnailID),
		}},
	}
}

func (f *ResponseFormatter) FormatAbout(text string) *domain.ResponseBundle {
	return &domain.ResponseBundle{
		Embeds: []domain.Embed{{
			Title:       "About",
			Description: text,
			Color:       constants.Color.Primary,
		}},
	}
}

func (f *ResponseFormatter) FormatError(message string) *domain.ResponseBundle {
	return &domain.ResponseBundle{
		Embeds: []domain.Embed{{
			Description: message,
			Color:       constants.Color.Error,
		}},
		Ephemeral: true,
	}
}
