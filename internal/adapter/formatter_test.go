package adapter

import (
	"strings"
	"testing"

	"github.com/miruku-dev/clow-discord-bot-go/internal/customid"
	"github.com/miruku-dev/clow-discord-bot-go/internal/dataset"
	"github.com/miruku-dev/clow-discord-bot-go/internal/domain"
)

func TestFormatRandomPickInline(t *testing.T) {
	f := NewResponseFormatter()
	data := domain.RandomPick{Choices: []string{"tea", "coffee"}, ShowPrompt: true}

	bundle := f.FormatRandomPick(data, "tea")
	if !strings.Contains(bundle.Content, "**Prompt:** tea; coffee") {
		t.Fatalf("inline prompt missing, got %q", bundle.Content)
	}
	if !strings.HasSuffix(bundle.Content, "**Em chọn:** tea") {
		t.Fatalf("result line wrong, got %q", bundle.Content)
	}
	if bundle.Ephemeral {
		t.Fatalf("pick responses are public")
	}
}

func TestFormatRandomPickLongChoicesBecomeList(t *testing.T) {
	f := NewResponseFormatter()
	long := strings.Repeat("x", 41)
	data := domain.RandomPick{Choices: []string{long, "short"}, ShowPrompt: true}

	bundle := f.FormatRandomPick(data, "short")
	if !strings.Contains(bundle.Content, "\n1. "+long) {
		t.Fatalf("long choices should render one per line, got %q", bundle.Content)
	}
	if strings.Contains(bundle.Content, ";") {
		t.Fatalf("list rendering should not use inline separators, got %q", bundle.Content)
	}
}

func TestFormatRandomPickMultilineResultOnOwnLine(t *testing.T) {
	f := NewResponseFormatter()
	data := domain.RandomPick{Choices: []string{"a\nb", "c"}}

	bundle := f.FormatRandomPick(data, "a\nb")
	if !strings.Contains(bundle.Content, "**Em chọn:**\na\nb") {
		t.Fatalf("multiline result should start on its own line, got %q", bundle.Content)
	}
}

func TestFormatRandomPickHidesPromptOnTextSurface(t *testing.T) {
	f := NewResponseFormatter()
	data := domain.RandomPick{Choices: []string{"a", "b"}, ShowPrompt: false}

	bundle := f.FormatRandomPick(data, "b")
	if strings.Contains(bundle.Content, "Prompt") {
		t.Fatalf("prompt should be hidden, got %q", bundle.Content)
	}
}

func TestFormatBookOfAnswers(t *testing.T) {
	f := NewResponseFormatter()

	shown := f.FormatBookOfAnswers(domain.BookOfAnswers{Prompt: "q", ShowPrompt: true}, "yes")
	if shown.Content != "**Prompt:** q\n>>> yes" {
		t.Fatalf("unexpected content %q", shown.Content)
	}

	bare := f.FormatBookOfAnswers(domain.BookOfAnswers{Prompt: "q", ShowPrompt: false}, "yes")
	if bare.Content != "yes" {
		t.Fatalf("quote should stand alone, got %q", bare.Content)
	}
}

func TestFormatClowDrawHeadlines(t *testing.T) {
	f := NewResponseFormatter()
	cards := []dataset.Card{{Name: "Windy", Meaning: "m", ImageID: 9}}

	daily := f.FormatClowDraw(domain.DrawClowcard{Author: 7}, cards, 1700000000)
	if !strings.Contains(daily.Content, "<@7>") || !strings.Contains(daily.Content, "<t:1700000000:d>") {
		t.Fatalf("daily headline wrong: %q", daily.Content)
	}

	prompted := f.FormatClowDraw(domain.DrawClowcard{Author: 7, Prompt: "exam", ShowPrompt: true}, cards, 0)
	if prompted.Content != "**Prompt:** exam" {
		t.Fatalf("prompted headline wrong: %q", prompted.Content)
	}

	amountOnly := f.FormatClowDraw(domain.DrawClowcard{Author: 7, Amount: 3}, cards, 0)
	if !strings.Contains(amountOnly.Content, "3 thẻ bài") || !strings.Contains(amountOnly.Content, "<@7>") {
		t.Fatalf("amount headline wrong: %q", amountOnly.Content)
	}
}

func TestFormatClowDrawAttachesOneControlPerCard(t *testing.T) {
	f := NewResponseFormatter()
	cards := []dataset.Card{
		{Name: "Windy", Meaning: "wind", ImageID: 1},
		{Name: "Fly", Meaning: "flight", ImageID: 2},
	}

	bundle := f.FormatClowDraw(domain.DrawClowcard{Author: 7, Amount: 2}, cards, 0)
	if len(bundle.Embeds) != 2 || len(bundle.Buttons) != 2 {
		t.Fatalf("embeds=%d buttons=%d, want 2 and 2", len(bundle.Embeds), len(bundle.Buttons))
	}

	decoded, err := customid.Decode(bundle.Buttons[0].CustomID)
	if err != nil {
		t.Fatalf("control token should decode: %v", err)
	}
	if decoded.CardName != "Windy" {
		t.Fatalf("token names %q, want Windy", decoded.CardName)
	}
	if bundle.Embeds[0].Title != "The Windy" {
		t.Fatalf("embed title = %q", bundle.Embeds[0].Title)
	}
}

func TestFormatRelationshipBar(t *testing.T) {
	f := NewResponseFormatter()
	level := domain.LevelFor(42.5)

	bundle := f.FormatRelationship(domain.Relationship{Targets: [2]uint64{1, 2}}, 42.5, level)
	desc := bundle.Embeds[0].Description

	// round(42.5) = 43, 43/5 = 8 filled slots of 20
	if !strings.Contains(desc, "["+strings.Repeat("▣", 8)+strings.Repeat("▢", 12)+"]") {
		t.Fatalf("bar wrong: %q", desc)
	}
	if !strings.Contains(desc, "42.50%") {
		t.Fatalf("percent missing: %q", desc)
	}
	if !strings.Contains(bundle.Content, "<@1>") || !strings.Contains(bundle.Content, "<@2>") {
		t.Fatalf("mentions missing: %q", bundle.Content)
	}
}

func TestVisibilityFlags(t *testing.T) {
	f := NewResponseFormatter()

	if !f.FormatError("boom").Ephemeral {
		t.Fatalf("errors must be private")
	}
	if !f.FormatCardInfo("text").Ephemeral {
		t.Fatalf("card info must be private")
	}
	if f.FormatAbout("text").Ephemeral {
		t.Fatalf("about must be public")
	}
	if f.FormatDice([]uint64{1}).Ephemeral {
		t.Fatalf("dice must be public")
	}
}

func TestFormatDiceConcatenatesFaces(t *testing.T) {
	f := NewResponseFormatter()
	bundle := f.FormatDice([]uint64{10, 20})
	if bundle.Content != "<a:a:10> <a:a:20> " {
		t.Fatalf("unexpected dice content %q", bundle.Content)
	}
}
