package shared

import (
	"fmt"
	"math/rand/v2"
)

// DeckSize is the number of cards in a tarot deck.
const DeckSize = 78

// Deck represents a collection of cards.
type Deck struct {
	Cards []Card
}

// NewDeck creates the 78-card tarot deck in its canonical order: Diamonds,
// Hearts, Clubs and Spades from Ace to King, then trumps 1 to 21, then the
// Excuse.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, SuitedCard(suit, rank))
		}
	}
	for t := LowestTrump; t <= HighestTrump; t++ {
		cards = append(cards, TrumpCard(t))
	}
	cards = append(cards, Excuse)

	return &Deck{Cards: cards}
}

// Len returns the number of cards left in the deck.
func (d *Deck) Len() int {
	return len(d.Cards)
}

// Shuffle randomizes the order of cards in the deck. A nil rng falls back
// to the process-wide source.
func (d *Deck) Shuffle(rng *rand.Rand) {
	swap := func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
	if rng == nil {
		rand.Shuffle(len(d.Cards), swap)
	} else {
		rng.Shuffle(len(d.Cards), swap)
	}
	logger.WithField("cards", len(d.Cards)).Debug("Deck shuffled.")
}

// Draw removes the n top cards of the deck and returns them.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 || n > len(d.Cards) {
		return nil, fmt.Errorf("cannot draw %d cards from a deck of %d", n, len(d.Cards))
	}
	drawn := make([]Card, n)
	copy(drawn, d.Cards[:n])
	d.Cards = d.Cards[n:]
	return drawn, nil
}

// Validate checks that the deck holds each of the 78 cards exactly once.
func (d *Deck) Validate() error {
	if len(d.Cards) != DeckSize {
		return fmt.Errorf("%w: deck has %d cards, want %d", ErrInconsistent, len(d.Cards), DeckSize)
	}
	return CheckDistinct(d.Cards)
}
