package game

import (
	"errors"
	"fmt"

	"tarot-game/internal/shared"
)

// ErrNoLegalMove is returned when the opening-trick restriction on the
// called suit leaves a non-empty hand without any playable card.
var ErrNoLegalMove = errors.New("no legal move")

// LegalMoves returns the cards of hand that may be played on top of played,
// in hand order. firstTrick marks the opening trick of the deal and
// calledKing is the suit of the king called by the taker.
//
// The Excuse is always playable and the leader of any later trick may play
// anything. Otherwise a player must follow the led suit, then trump, and must
// overtake the highest trump on the table when the hand allows it.
func LegalMoves(played, hand []shared.Card, firstTrick bool, calledKing shared.Suit) ([]shared.Card, error) {
	if err := shared.CheckDistinct(hand); err != nil {
		return nil, err
	}
	allowed, err := playable(played, hand, firstTrick, calledKing)
	if err != nil {
		logger.WithError(err).Error("Cannot compute legal moves.")
		return nil, err
	}

	moves := []shared.Card{}
	for _, c := range hand {
		if c.IsExcuse() || allowed(c) {
			moves = append(moves, c)
		}
	}
	if len(moves) == 0 && len(hand) > 0 {
		return nil, fmt.Errorf("%w: only low %s cards in hand on the opening trick", ErrNoLegalMove, calledKing)
	}
	return moves, nil
}

// RelaxedLegalMoves behaves like LegalMoves but lifts the opening-trick
// restriction on the called suit when it would leave nothing to play.
func RelaxedLegalMoves(played, hand []shared.Card, firstTrick bool, calledKing shared.Suit) ([]shared.Card, error) {
	moves, err := LegalMoves(played, hand, firstTrick, calledKing)
	if errors.Is(err, ErrNoLegalMove) {
		logger.WithField("called", calledKing).Debug("Called suit restriction lifted, hand holds nothing else.")
		return append([]shared.Card{}, hand...), nil
	}
	return moves, err
}

// playable returns the predicate a non-Excuse card must satisfy.
func playable(played, hand []shared.Card, firstTrick bool, calledKing shared.Suit) (func(shared.Card) bool, error) {
	if len(played) == 0 {
		if !firstTrick {
			return func(shared.Card) bool { return true }, nil
		}
		return func(c shared.Card) bool {
			switch c.Kind {
			case shared.KindSuited:
				return c.Suit != calledKing || c.Rank == shared.King
			default:
				return true
			}
		}, nil
	}

	led, ok := shared.LedSuit(played)
	if ok && shared.HasSuit(hand, led) {
		return func(c shared.Card) bool {
			return c.Kind == shared.KindSuited && c.Suit == led
		}, nil
	}
	if shared.HasTrump(hand) {
		return overtake(played, hand)
	}
	return func(shared.Card) bool { return true }, nil
}

// overtake applies trump escalation: any trump when nothing on the table can
// be beaten, otherwise only trumps above the highest one played.
func overtake(played, hand []shared.Card) (func(shared.Card) bool, error) {
	tableMax, onTable := shared.MaxTrump(played)
	handMax, inHand := shared.MaxTrump(hand)
	if !inHand {
		return nil, fmt.Errorf("%w: hand holds a trump but has no highest trump", shared.ErrInconsistent)
	}
	mustOvertake := onTable && handMax > tableMax

	return func(c shared.Card) bool {
		switch c.Kind {
		case shared.KindTrump:
			return !mustOvertake || c.Trump > tableMax
		default:
			return false
		}
	}, nil
}
