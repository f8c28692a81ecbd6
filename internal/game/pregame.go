package game

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tarot-game/internal/shared"
)

// BatchSize is the number of cards a player receives per dealing round.
const BatchSize = 3

// ErrInvalidDeal is returned when a deal cannot split the deck evenly.
var ErrInvalidDeal = errors.New("invalid deal")

// PreGame is the setup of one deal: the seats, the dog set aside for the
// taker and the lowest bid that may be announced.
type PreGame struct {
	ID         string
	Players    []*shared.Player
	Dog        []shared.Card
	MinimumBid Bid
}

// NewPreGame creates the setup record for players.
func NewPreGame(players []*shared.Player, minimumBid Bid) *PreGame {
	return &PreGame{
		ID:         uuid.NewString(),
		Players:    players,
		Dog:        []shared.Card{},
		MinimumBid: minimumBid,
	}
}

// DogSize returns how many cards are set aside for the given table size.
func DogSize(players int) int {
	if players == 5 {
		return 3
	}
	return 6
}

// HandSize returns how many cards each of the given number of players holds
// after the deal, or an error when the deck cannot be split evenly.
func HandSize(players int) (int, error) {
	if players < 1 {
		return 0, fmt.Errorf("%w: need at least one player, got %d", ErrInvalidDeal, players)
	}
	remaining := shared.DeckSize - DogSize(players)
	if remaining%(BatchSize*players) != 0 {
		return 0, fmt.Errorf("%w: %d cards cannot be dealt %d at a time to %d players",
			ErrInvalidDeal, remaining, BatchSize, players)
	}
	return remaining / players, nil
}

// Deal shuffles a fresh deck with rng, sets the dog aside from the top of the
// shuffled deck and hands the rest out three cards at a time, round-robin,
// until the deck is empty. Hands and dog must be empty beforehand. A nil rng
// uses the process-wide source.
func Deal(pre *PreGame, rng *rand.Rand) error {
	if pre == nil {
		return fmt.Errorf("%w: no setup to deal", ErrInvalidDeal)
	}
	handSize, err := HandSize(len(pre.Players))
	if err != nil {
		return err
	}
	for i, p := range pre.Players {
		if p == nil {
			return fmt.Errorf("%w: seat %d is empty", ErrInvalidDeal, i)
		}
		if len(p.Hand) != 0 {
			return fmt.Errorf("%w: %s already holds %d cards", ErrInvalidDeal, p.Name, len(p.Hand))
		}
	}
	if len(pre.Dog) != 0 {
		return fmt.Errorf("%w: dog already holds %d cards", ErrInvalidDeal, len(pre.Dog))
	}

	deck := shared.NewDeck()
	deck.Shuffle(rng)

	dog, err := deck.Draw(DogSize(len(pre.Players)))
	if err != nil {
		return err
	}
	pre.Dog = dog

	for i := 0; deck.Len() > 0; i++ {
		batch, err := deck.Draw(BatchSize)
		if err != nil {
			return err
		}
		pre.Players[i%len(pre.Players)].AddCard(batch...)
	}

	logger.WithFields(logrus.Fields{
		"deal":    pre.ID,
		"players": len(pre.Players),
		"hand":    handSize,
		"dog":     len(pre.Dog),
	}).Debug("Cards dealt.")
	return nil
}
