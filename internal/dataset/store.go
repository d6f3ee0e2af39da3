// Package dataset loads the fixed content tables the bot consults: the clow
// card catalogue, the book of answers, and the about text. Each table is
// loaded at most once, on first use, and is immutable afterwards; concurrent
// first accessors block until the single load finishes.
package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/miruku-dev/clow-discord-bot-go/pkg/errors"
)

// Store hands out the static datasets.
type Store struct {
	dir    string
	logger *zap.Logger

	deckOnce sync.Once
	deck     *Deck
	deckErr  error

	answersOnce sync.Once
	answers     []string
	answersErr  error

	aboutOnce sync.Once
	about     string
}

func NewStore(dir string, logger *zap.Logger) *Store {
	return &Store{dir: dir, logger: logger}
}

// Deck returns the card catalogue, loading it on first call.
func (s *Store) Deck() (*Deck, error) {
	s.deckOnce.Do(func() {
		path := filepath.Join(s.dir, "ClowCardData.json")
		s.deck, s.deckErr = loadDeck(path)
		if s.deckErr != nil {
			s.logger.Error("Failed to load card catalogue", zap.Error(s.deckErr))
			return
		}
		s.logger.Info("Card catalogue loaded",
			zap.String("path", path),
			zap.Int("cards", s.deck.Len()))
	})
	return s.deck, s.deckErr
}

// Answers returns the book-of-answers quotes, loading them on first call.
// Entries in the source file are separated by "/*" lines.
func (s *Store) Answers() ([]string, error) {
	s.answersOnce.Do(func() {
		path := filepath.Join(s.dir, "BookOfAnswers.txt")
		raw, err := os.ReadFile(path)
		if err != nil {
			s.answersErr = errors.NewDatasetError("failed to read book of answers", path, err)
			s.logger.Error("Failed to load book of answers", zap.Error(s.answersErr))
			return
		}

		for _, part := range strings.Split(string(raw), "/*") {
			if quote := strings.TrimSpace(part); quote != "" {
				s.answers = append(s.answers, quote)
			}
		}
		if len(s.answers) == 0 {
			s.answersErr = errors.NewDatasetError("book of answers is empty", path, nil)
			s.logger.Error("Failed to load book of answers", zap.Error(s.answersErr))
			return
		}
		s.logger.Info("Book of answers loaded",
			zap.String("path", path),
			zap.Int("quotes", len(s.answers)))
	})
	return s.answers, s.answersErr
}

// About returns the static about text. A missing file degrades to an empty
// description rather than an error.
func (s *Store) About() string {
	s.aboutOnce.Do(func() {
		path := filepath.Join(s.dir, "about.md")
		raw, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("About text unavailable", zap.String("path", path), zap.Error(err))
			return
		}
		s.about = string(raw)
	})
	return s.about
}
