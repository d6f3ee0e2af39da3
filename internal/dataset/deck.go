package dataset

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"sort"

	"github.com/miruku-dev/clow-discord-bot-go/internal/constants"
	"github.com/miruku-dev/clow-discord-bot-go/pkg/errors"
)

// Card is one entry of the clow card catalogue.
type Card struct {
	Name    string
	Meaning string
	Full    string
	ImageID uint64
}

// ImageURL points at the card artwork on the CDN.
func (c Card) ImageURL() string {
	return fmt.Sprintf("https://cdn.discordapp.com/attachments/%d/%d/The%s.jpg",
		constants.CardImageChannelID, c.ImageID, c.Name)
}

// Deck is the full catalogue, sorted ascending by card name so lookups can
// binary-search. Read-only after loading.
type Deck struct {
	cards []Card
}

type cardRecord struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Meaning string `json:"meaning"`
	Message string `json:"message"`
	Warning string `json:"warning"`
}

func loadDeck(path string) (*Deck, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewDatasetError("failed to read card catalogue", path, err)
	}

	var records []cardRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errors.NewDatasetError("card catalogue is not valid JSON", path, err)
	}
	if len(records) == 0 {
		return nil, errors.NewDatasetError("card catalogue is empty", path, nil)
	}

	cards := make([]Card, 0, len(records))
	for _, rec := range records {
		cards = append(cards, Card{
			Name:    rec.Name,
			Meaning: rec.Meaning,
			ImageID: rec.ID,
			Full: fmt.Sprintf(
				"# [ The %s ]\n```md\n## Ý NGHĨA\n%s\n\n## THÔNG ĐIỆP\n%s\n\n## CẢNH BÁO\n%s\n```",
				rec.Name, rec.Meaning, rec.Message, rec.Warning),
		})
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].Name < cards[j].Name })

	return &Deck{cards: cards}, nil
}

// Len returns the catalogue size.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Draw samples amount distinct cards without replacement, in the shuffle
// order of the supplied stream. Amount is capped at the deck size.
func (d *Deck) Draw(rng *rand.Rand, amount int) []Card {
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	if amount < 1 {
		amount = 1
	}

	drawn := make([]Card, 0, amount)
	for _, idx := range rng.Perm(len(d.cards))[:amount] {
		drawn = append(drawn, d.cards[idx])
	}
	return drawn
}

// ByName finds a card by exact name.
func (d *Deck) ByName(name string) (Card, bool) {
	pos := sort.Search(len(d.cards), func(i int) bool {
		return d.cards[i].Name >= name
	})
	if pos < len(d.cards) && d.cards[pos].Name == name {
		return d.cards[pos], true
	}
	return Card{}, false
}
