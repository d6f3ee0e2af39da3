package adapter

import (
	"testing"

	"github.com/miruku-dev/clow-discord-bot-go/internal/domain"
)

const testAuthor uint64 = 5

func parseText(t *testing.T, content string) domain.Parsed {
	t.Helper()
	return NewMessageAdapter("~").Parse(content, testAuthor, "")
}

func TestParseIgnoresMessagesWithoutPrefix(t *testing.T) {
	for _, content := range []string{"hello", "pick a;b", " ~pick a;b"} {
		if got := parseText(t, content); got.Type != domain.CommandNone {
			t.Errorf("Parse(%q) = %s, want none", content, got.Type)
		}
	}
}

func TestParseUnknownCommandDropsSilently(t *testing.T) {
	if got := parseText(t, "~frobnicate a b"); got.Type != domain.CommandNone {
		t.Fatalf("unknown command should resolve to none, got %s", got.Type)
	}
	// Aliases are case-sensitive.
	if got := parseText(t, "~Pick a;b"); got.Type != domain.CommandNone {
		t.Fatalf("alias match should be case-sensitive, got %s", got.Type)
	}
}

func TestLeadingMentionActsAsPrefix(t *testing.T) {
	ma := NewMessageAdapter("~")
	got := ma.Parse("<@99> dice 3", testAuthor, "<@99>")
	if got.Type != domain.CommandDice {
		t.Fatalf("mention-prefixed command not recognized, got %s", got.Type)
	}
	if data := got.Data.(domain.Dice); data.Amount != 3 {
		t.Fatalf("amount = %d, want 3", data.Amount)
	}
}

func TestParseRandomPick(t *testing.T) {
	cases := []struct {
		input   string
		want    []string
		wantNil bool
	}{
		{input: "~pick a;b", want: []string{"a", "b"}},
		{input: "~pick  a ; b ", want: []string{"a", "b"}},
		{input: "~choose x;y;z", want: []string{"x", "y", "z"}},
		{input: "~pick a", wantNil: true},
		{input: "~pick a;", wantNil: true},
		{input: "~pick ;;", wantNil: true},
		{input: "~pick", wantNil: true},
	}

	for _, tc := range cases {
		got := parseText(t, tc.input)
		if tc.wantNil {
			if got.Type != domain.CommandNone {
				t.Errorf("Parse(%q) = %s, want none", tc.input, got.Type)
			}
			continue
		}
		if got.Type != domain.CommandRandomPick {
			t.Errorf("Parse(%q) = %s, want random pick", tc.input, got.Type)
			continue
		}
		data := got.Data.(domain.RandomPick)
		if data.ShowPrompt {
			t.Errorf("Parse(%q): text surface should not show the prompt", tc.input)
		}
		if len(data.Choices) != len(tc.want) {
			t.Errorf("Parse(%q) choices = %v, want %v", tc.input, data.Choices, tc.want)
			continue
		}
		for i := range tc.want {
			if data.Choices[i] != tc.want[i] {
				t.Errorf("Parse(%q) choice[%d] = %q, want %q", tc.input, i, data.Choices[i], tc.want[i])
			}
		}
	}
}

func TestParseBookOfAnswers(t *testing.T) {
	got := parseText(t, "~boa will it work")
	data := got.Data.(domain.BookOfAnswers)
	if data.Prompt != "will it work" || data.Author != testAuthor || data.ShowPrompt {
		t.Fatalf("unexpected payload: %+v", data)
	}

	empty := parseText(t, "~bookofanswers")
	emptyData := empty.Data.(domain.BookOfAnswers)
	if emptyData.Prompt != "" {
		t.Fatalf("empty remainder should mean no prompt, got %q", emptyData.Prompt)
	}
}

func TestParseDrawClowcard(t *testing.T) {
	cases := []struct {
		input      string
		wantAmount int
		wantPrompt string
	}{
		{input: "~dc", wantAmount: 0, wantPrompt: ""},
		{input: "~dc 3", wantAmount: 3, wantPrompt: ""},
		{input: "~dc 3 tomorrow's exam", wantAmount: 3, wantPrompt: "tomorrow's exam"},
		{input: "~drawclow tomorrow's exam", wantAmount: 0, wantPrompt: "tomorrow's exam"},
		{input: "~dc 0 zeroes are not amounts", wantAmount: 0, wantPrompt: "0 zeroes are not amounts"},
		{input: "~dc 99", wantAmount: 5, wantPrompt: ""}, // clamped
	}

	for _, tc := range cases {
		got := parseText(t, tc.input)
		if got.Type != domain.CommandDrawClowcard {
			t.Errorf("Parse(%q) = %s, want drawclow", tc.input, got.Type)
			continue
		}
		data := got.Data.(domain.DrawClowcard)
		if data.Amount != tc.wantAmount {
			t.Errorf("Parse(%q) amount = %d, want %d", tc.input, data.Amount, tc.wantAmount)
		}
		if data.Prompt != tc.wantPrompt {
			t.Errorf("Parse(%q) prompt = %q, want %q", tc.input, data.Prompt, tc.wantPrompt)
		}
		if data.Author != testAuthor {
			t.Errorf("Parse(%q) author = %d, want %d", tc.input, data.Author, testAuthor)
		}
	}
}

func TestParseRelationship(t *testing.T) {
	cases := []struct {
		input string
		want  [2]uint64
	}{
		{input: "~relacalc <@123> <@45>", want: [2]uint64{45, 123}},
		{input: "~lc 123 45", want: [2]uint64{45, 123}},
		{input: "~lc 200", want: [2]uint64{5, 200}}, // author fills second slot
		{input: "~lc", want: [2]uint64{5, 5}},       // self-pair
		{input: "~lc junk tokens", want: [2]uint64{5, 5}},
		{input: "~lc 9 8 7", want: [2]uint64{8, 9}}, // extras ignored
	}

	for _, tc := range cases {
		got := parseText(t, tc.input)
		if got.Type != domain.CommandRelationship {
			t.Errorf("Parse(%q) = %s, want relationship", tc.input, got.Type)
			continue
		}
		data := got.Data.(domain.Relationship)
		if data.Targets != tc.want {
			t.Errorf("Parse(%q) targets = %v, want %v", tc.input, data.Targets, tc.want)
		}
	}
}

func TestParseDiceResetsBadAmounts(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{input: "~dice 7", want: 7},
		{input: "~dice", want: 1},
		{input: "~dice 0", want: 1},
		{input: "~dice abc", want: 1},
		{input: "~dice 500", want: 1},
		{input: "~dice 100", want: 100},
	}

	for _, tc := range cases {
		got := parseText(t, tc.input)
		if got.Type != domain.CommandDice {
			t.Errorf("Parse(%q) = %s, want dice", tc.input, got.Type)
			continue
		}
		if data := got.Data.(domain.Dice); data.Amount != tc.want {
			t.Errorf("Parse(%q) amount = %d, want %d", tc.input, data.Amount, tc.want)
		}
	}
}

func TestParseAbout(t *testing.T) {
	if got := parseText(t, "~about"); got.Type != domain.CommandAbout {
		t.Fatalf("Parse(~about) = %s, want about", got.Type)
	}
}
