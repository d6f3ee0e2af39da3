package dataset

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

const testCatalogue = `[
  {"id": 111, "name": "Windy", "meaning": "gió", "message": "m1", "warning": "w1"},
  {"id": 222, "name": "Fly", "meaning": "bay", "message": "m2", "warning": "w2"},
  {"id": 333, "name": "Shadow", "meaning": "bóng", "message": "m3", "warning": "w3"}
]`

func writeTestData(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestDeckLoadsSortedByName(t *testing.T) {
	dir := writeTestData(t, "ClowCardData.json", testCatalogue)
	store := NewStore(dir, zap.NewNop())

	deck, err := store.Deck()
	if err != nil {
		t.Fatalf("Deck() error: %v", err)
	}
	if deck.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", deck.Len())
	}

	first, ok := deck.ByName("Fly")
	if !ok {
		t.Fatal("ByName(Fly) missed")
	}
	if first.ImageID != 222 {
		t.Errorf("Fly image id = %d, want 222", first.ImageID)
	}
	if _, ok := deck.ByName("fly"); ok {
		t.Error("lookup should be case sensitive")
	}
	if _, ok := deck.ByName("Nothing"); ok {
		t.Error("unknown name should miss")
	}
}

func TestDeckFormatsFullDescription(t *testing.T) {
	dir := writeTestData(t, "ClowCardData.json", testCatalogue)
	store := NewStore(dir, zap.NewNop())

	deck, err := store.Deck()
	if err != nil {
		t.Fatalf("Deck() error: %v", err)
	}
	card, _ := deck.ByName("Windy")

	want := "# [ The Windy ]\n```md\n## Ý NGHĨA\ngió\n\n## THÔNG ĐIỆP\nm1\n\n## CẢNH BÁO\nw1\n```"
	if card.Full != want {
		t.Errorf("Full = %q, want %q", card.Full, want)
	}
}

func TestDeckDrawIsDistinctAndCapped(t *testing.T) {
	dir := writeTestData(t, "ClowCardData.json", testCatalogue)
	store := NewStore(dir, zap.NewNop())
	deck, err := store.Deck()
	if err != nil {
		t.Fatalf("Deck() error: %v", err)
	}

	rng := rand.New(rand.NewPCG(42, 0))
	drawn := deck.Draw(rng, 10)
	if len(drawn) != 3 {
		t.Fatalf("Draw over deck size returned %d cards, want 3", len(drawn))
	}
	seen := map[string]bool{}
	for _, c := range drawn {
		if seen[c.Name] {
			t.Fatalf("card %q drawn twice", c.Name)
		}
		seen[c.Name] = true
	}

	one := deck.Draw(rand.New(rand.NewPCG(42, 0)), 1)
	if len(one) != 1 {
		t.Fatalf("Draw(1) returned %d cards", len(one))
	}
}

func TestDeckDrawIsDeterministicPerSeed(t *testing.T) {
	dir := writeTestData(t, "ClowCardData.json", testCatalogue)
	store := NewStore(dir, zap.NewNop())
	deck, err := store.Deck()
	if err != nil {
		t.Fatalf("Deck() error: %v", err)
	}

	a := deck.Draw(rand.New(rand.NewPCG(7, 0)), 2)
	b := deck.Draw(rand.New(rand.NewPCG(7, 0)), 2)
	for i := range a {
		if a[i].Name != b[i].Name {
			t.Fatalf("same seed diverged: %q vs %q", a[i].Name, b[i].Name)
		}
	}
}

func TestDeckErrors(t *testing.T) {
	store := NewStore(t.TempDir(), zap.NewNop())
	if _, err := store.Deck(); err == nil {
		t.Error("missing catalogue should error")
	}

	store = NewStore(writeTestData(t, "ClowCardData.json", "not json"), zap.NewNop())
	if _, err := store.Deck(); err == nil {
		t.Error("invalid JSON should error")
	}

	store = NewStore(writeTestData(t, "ClowCardData.json", "[]"), zap.NewNop())
	if _, err := store.Deck(); err == nil {
		t.Error("empty catalogue should error")
	}
}

func TestAnswersSplitOnSeparator(t *testing.T) {
	content := "Có.\n/*\n  Không.  \n/*\n\n/*\nĐể mai tính.\n"
	dir := writeTestData(t, "BookOfAnswers.txt", content)
	store := NewStore(dir, zap.NewNop())

	answers, err := store.Answers()
	if err != nil {
		t.Fatalf("Answers() error: %v", err)
	}
	want := []string{"Có.", "Không.", "Để mai tính."}
	if len(answers) != len(want) {
		t.Fatalf("got %d answers, want %d: %v", len(answers), len(want), answers)
	}
	for i := range want {
		if answers[i] != want[i] {
			t.Errorf("answers[%d] = %q, want %q", i, answers[i], want[i])
		}
	}
}

func TestAnswersErrors(t *testing.T) {
	store := NewStore(t.TempDir(), zap.NewNop())
	if _, err := store.Answers(); err == nil {
		t.Error("missing file should error")
	}

	store = NewStore(writeTestData(t, "BookOfAnswers.txt", "/*\n  \n/*"), zap.NewNop())
	if _, err := store.Answers(); err == nil {
		t.Error("file with only separators should error")
	}
}

func TestAboutDegradesToEmpty(t *testing.T) {
	store := NewStore(t.TempDir(), zap.NewNop())
	if got := store.About(); got != "" {
		t.Errorf("missing about should degrade to empty, got %q", got)
	}

	store = NewStore(writeTestData(t, "about.md", "giới thiệu"), zap.NewNop())
	if got := store.About(); got != "giới thiệu" {
		t.Errorf("About() = %q", got)
	}
}

func TestStoreLoadsOnce(t *testing.T) {
	dir := writeTestData(t, "ClowCardData.json", testCatalogue)
	store := NewStore(dir, zap.NewNop())

	first, err := store.Deck()
	if err != nil {
		t.Fatalf("Deck() error: %v", err)
	}
	// Removing the source after the first load must not matter.
	if err := os.Remove(filepath.Join(dir, "ClowCardData.json")); err != nil {
		t.Fatal(err)
	}
	second, err := store.Deck()
	if err != nil {
		t.Fatalf("second Deck() error: %v", err)
	}
	if first != second {
		t.Error("Deck() should return the cached catalogue")
	}
}
