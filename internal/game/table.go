package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tarot-game/internal/shared"
)

var (
	ErrOutOfTurn       = errors.New("not this player's turn")
	ErrCardNotInHand   = errors.New("card not in hand")
	ErrIllegalPlay     = errors.New("illegal play")
	ErrTrickComplete   = errors.New("trick is complete")
	ErrTrickIncomplete = errors.New("trick is not complete")
	ErrTrickResolved   = errors.New("trick already resolved")
)

// Table runs a single trick: it takes one card from each seat in turn,
// checks every card against the legal moves and, once everyone has played,
// hands the cards to the winner.
type Table struct {
	ID              string
	Seats           []*shared.Player // Turn order for this trick, leader first
	Trick           *shared.Trick
	FirstTrick      bool        // Opening trick of the deal
	CalledKing      shared.Suit // Suit of the king called by the taker
	PlayerTurnIndex int
}

// NewTable prepares a trick for seats, the first seat leading.
func NewTable(seats []*shared.Player, firstTrick bool, calledKing shared.Suit) *Table {
	return &Table{
		ID:         uuid.NewString(),
		Seats:      seats,
		Trick:      shared.NewTrick(),
		FirstTrick: firstTrick,
		CalledKing: calledKing,
	}
}

// Complete reports whether every seat has played.
func (t *Table) Complete() bool {
	return len(t.Trick.Cards) == len(t.Seats)
}

// CurrentPlayer returns the seat expected to play next, or nil once the
// trick is complete.
func (t *Table) CurrentPlayer() *shared.Player {
	if t.Complete() {
		return nil
	}
	return t.Seats[t.PlayerTurnIndex]
}

// LegalMoves returns what player may play now. The called-suit restriction
// of the opening trick is lifted when it would leave the hand stuck.
func (t *Table) LegalMoves(player *shared.Player) ([]shared.Card, error) {
	return RelaxedLegalMoves(t.Trick.Played(), player.Hand, t.FirstTrick, t.CalledKing)
}

// Play lays card from player's hand on the table.
func (t *Table) Play(player *shared.Player, card shared.Card) error {
	if t.Complete() {
		return ErrTrickComplete
	}
	if player != t.CurrentPlayer() {
		return fmt.Errorf("%w: expected %s", ErrOutOfTurn, t.CurrentPlayer())
	}
	if !player.HasCard(card) {
		return fmt.Errorf("%w: %s does not hold %s", ErrCardNotInHand, player, card)
	}

	moves, err := t.LegalMoves(player)
	if err != nil {
		return err
	}
	if !slices.Contains(moves, card) {
		logger.WithFields(logrus.Fields{
			"table":  t.ID,
			"player": player.Name,
			"card":   card.String(),
		}).Debug("Rejected illegal play.")
		return fmt.Errorf("%w: %s cannot play %s", ErrIllegalPlay, player, card)
	}

	player.RemoveCard(card)
	t.Trick.AddCard(player, card)
	logger.WithFields(logrus.Fields{
		"table":  t.ID,
		"player": player.Name,
		"card":   card.String(),
	}).Debug("Card played.")

	if !t.Complete() {
		t.PlayerTurnIndex = (t.PlayerTurnIndex + 1) % len(t.Seats)
	}
	return nil
}

// Resolve determines the winner of the completed trick and adds copies of
// its cards to the winner's collected pile.
func (t *Table) Resolve() (*shared.Player, error) {
	if t.Trick.Winner != nil {
		return nil, ErrTrickResolved
	}
	if len(t.Seats) == 0 || !t.Complete() {
		return nil, fmt.Errorf("%w: %d of %d cards played", ErrTrickIncomplete, len(t.Trick.Cards), len(t.Seats))
	}

	winner, err := t.Trick.DetermineWinner()
	if err != nil {
		return nil, err
	}
	winner.Collect(t.Trick.Played()...)

	logger.WithFields(logrus.Fields{
		"table":  t.ID,
		"winner": winner.Name,
	}).Debug("Trick won.")
	return winner, nil
}
