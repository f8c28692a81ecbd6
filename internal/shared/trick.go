package shared

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// PlayedCard stores a card along with the player who played it.
type PlayedCard struct {
	Player *Player
	Card   Card
}

// Trick represents the cards laid down in one round of play.
type Trick struct {
	Cards  []PlayedCard // Cards played so far, in turn order
	Winner *Player      // Player who won the trick (nil until determined)
}

// NewTrick creates a new trick instance.
func NewTrick() *Trick {
	return &Trick{
		Cards: []PlayedCard{},
	}
}

// AddCard adds a card and the player who played it to the trick.
func (t *Trick) AddCard(player *Player, card Card) {
	t.Cards = append(t.Cards, PlayedCard{Player: player, Card: card})
}

// Played returns the cards of the trick without their players.
func (t *Trick) Played() []Card {
	return cardsOf(t.Cards)
}

// DetermineWinner resolves the trick and records its winner.
func (t *Trick) DetermineWinner() (*Player, error) {
	winner, err := ResolveTrick(t.Cards)
	if err != nil {
		return nil, err
	}
	t.Winner = winner
	return winner, nil
}

// ResolveTrick returns the player whose card wins table. The first card sets
// the led suit; every following card that beats the running best takes its
// place. table is only read.
func ResolveTrick(table []PlayedCard) (*Player, error) {
	if len(table) == 0 {
		logger.Error("Cannot determine winner of an empty trick.")
		return nil, fmt.Errorf("%w: empty trick", ErrInconsistent)
	}
	if err := CheckDistinct(cardsOf(table)); err != nil {
		logger.WithError(err).Error("Refusing to resolve a malformed trick.")
		return nil, err
	}

	led, _ := LedSuit(cardsOf(table[:1]))
	best := table[0]
	for _, challenger := range table[1:] {
		stronger, err := challenger.Card.Beats(best.Card, led)
		if err != nil {
			return nil, err
		}
		if stronger {
			best = challenger
		}
	}

	logger.WithFields(logrus.Fields{
		"led":    led,
		"card":   best.Card.String(),
		"winner": best.Player,
	}).Debug("Trick resolved.")
	return best.Player, nil
}

func cardsOf(table []PlayedCard) []Card {
	cards := make([]Card, len(table))
	for i, pc := range table {
		cards[i] = pc.Card
	}
	return cards
}
