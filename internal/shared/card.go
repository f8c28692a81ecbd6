package shared

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInconsistent reports data that no legitimate game state can produce
// (duplicate cards, unknown card kinds, a trick with no cards...). It always
// points at a bug upstream of the engine.
var ErrInconsistent = errors.New("internal consistency violation")

// Suit represents one of the four plain suits.
type Suit string

const (
	Diamonds Suit = "Diamonds"
	Spades   Suit = "Spades"
	Clubs    Suit = "Clubs"
	Hearts   Suit = "Hearts"
)

// NoSuit is the led suit of a trick opened with a trump.
const NoSuit Suit = ""

// Suits lists the plain suits in deck construction order.
var Suits = []Suit{Diamonds, Hearts, Clubs, Spades}

// Valid reports whether s is one of the four plain suits.
func (s Suit) Valid() bool {
	switch s {
	case Diamonds, Spades, Clubs, Hearts:
		return true
	}
	return false
}

func (s Suit) String() string {
	if s == NoSuit {
		return "none"
	}
	return string(s)
}

// ParseSuit converts a suit name, case-insensitively, into a Suit.
func ParseSuit(name string) (Suit, error) {
	for _, s := range Suits {
		if strings.EqualFold(string(s), strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return NoSuit, fmt.Errorf("unknown suit %q", name)
}

// Rank is the value of a suited card. Ace is the lowest, King the highest.
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Knight
	Queen
	King
)

var rankNames = [...]string{
	"Ace", "2", "3", "4", "5", "6", "7", "8", "9", "10",
	"Jack", "Knight", "Queen", "King",
}

// Valid reports whether r is between Ace and King.
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// TrumpRank orders the twenty-two trumps. The Excuse sorts below trump 1.
type TrumpRank int

const (
	ExcuseRank   TrumpRank = 0
	LowestTrump  TrumpRank = 1
	HighestTrump TrumpRank = 21
)

// Valid reports whether t is the Excuse or a numbered trump 1..21.
func (t TrumpRank) Valid() bool {
	return t >= ExcuseRank && t <= HighestTrump
}

func (t TrumpRank) String() string {
	if t == ExcuseRank {
		return "Excuse"
	}
	return fmt.Sprintf("Trump %d", int(t))
}

// Kind tells which family a card belongs to.
type Kind int

const (
	KindSuited Kind = iota
	KindTrump
)

// Card is either a suited card (Suit and Rank set) or a trump (Trump set).
// Cards are comparable values; two cards are equal when all fields match.
type Card struct {
	Kind  Kind      `json:"kind"`
	Suit  Suit      `json:"suit,omitempty"`
	Rank  Rank      `json:"rank,omitempty"`
	Trump TrumpRank `json:"trump,omitempty"`
}

// Excuse is the trump that may always be played.
var Excuse = TrumpCard(ExcuseRank)

// SuitedCard builds a plain card.
func SuitedCard(s Suit, r Rank) Card {
	return Card{Kind: KindSuited, Suit: s, Rank: r}
}

// TrumpCard builds a trump card.
func TrumpCard(t TrumpRank) Card {
	return Card{Kind: KindTrump, Trump: t}
}

// IsTrump reports whether c is a trump, the Excuse included.
func (c Card) IsTrump() bool { return c.Kind == KindTrump }

// IsExcuse reports whether c is the Excuse.
func (c Card) IsExcuse() bool { return c == Excuse }

// IsKing reports whether c is a suited King.
func (c Card) IsKing() bool { return c.Kind == KindSuited && c.Rank == King }

// Valid checks that c is one of the 78 cards of a tarot deck.
func (c Card) Valid() error {
	switch c.Kind {
	case KindSuited:
		if !c.Suit.Valid() || !c.Rank.Valid() || c.Trump != 0 {
			return fmt.Errorf("%w: malformed suited card %#v", ErrInconsistent, c)
		}
	case KindTrump:
		if !c.Trump.Valid() || c.Suit != NoSuit || c.Rank != 0 {
			return fmt.Errorf("%w: malformed trump card %#v", ErrInconsistent, c)
		}
	default:
		return fmt.Errorf("%w: unknown card kind %d", ErrInconsistent, c.Kind)
	}
	return nil
}

func (c Card) String() string {
	switch c.Kind {
	case KindSuited:
		return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
	case KindTrump:
		return c.Trump.String()
	default:
		return "?"
	}
}

// Beats reports whether c is stronger than other when called is the suit
// led in the trick. called is only read when both cards are suited and of
// different suits; pass NoSuit when the trick was opened with a trump.
//
// Two equal cards can never meet in a trick, so they are reported as
// ErrInconsistent.
func (c Card) Beats(other Card, called Suit) (bool, error) {
	switch c.Kind {
	case KindSuited:
		switch other.Kind {
		case KindTrump:
			return false, nil
		case KindSuited:
			if c.Suit != other.Suit {
				return c.Suit == called, nil
			}
			if c.Rank == other.Rank {
				return false, fmt.Errorf("%w: %s compared with itself", ErrInconsistent, c)
			}
			return c.Rank > other.Rank, nil
		}
	case KindTrump:
		switch other.Kind {
		case KindSuited:
			return true, nil
		case KindTrump:
			if c.Trump == other.Trump {
				return false, fmt.Errorf("%w: %s compared with itself", ErrInconsistent, c)
			}
			return c.Trump > other.Trump, nil
		}
	}
	return false, fmt.Errorf("%w: cannot compare %#v with %#v", ErrInconsistent, c, other)
}

// LedSuit returns the suit of the first played card. ok is false when
// nothing was played or the trick was opened with a trump.
func LedSuit(played []Card) (suit Suit, ok bool) {
	if len(played) == 0 || played[0].Kind != KindSuited {
		return NoSuit, false
	}
	return played[0].Suit, true
}

// MaxTrump returns the highest trump among cards, the Excuse counting as the
// lowest trump. ok is false when cards hold no trump at all.
func MaxTrump(cards []Card) (best TrumpRank, ok bool) {
	for _, c := range cards {
		if c.Kind != KindTrump {
			continue
		}
		if !ok || c.Trump > best {
			best = c.Trump
			ok = true
		}
	}
	return best, ok
}

// HasSuit reports whether cards hold at least one card of suit s.
func HasSuit(cards []Card, s Suit) bool {
	for _, c := range cards {
		if c.Kind == KindSuited && c.Suit == s {
			return true
		}
	}
	return false
}

// HasTrump reports whether cards hold at least one trump, the Excuse included.
func HasTrump(cards []Card) bool {
	for _, c := range cards {
		if c.Kind == KindTrump {
			return true
		}
	}
	return false
}

// CheckDistinct validates every card and fails on the first duplicate.
func CheckDistinct(cards []Card) error {
	seen := make(map[Card]struct{}, len(cards))
	for _, c := range cards {
		if err := c.Valid(); err != nil {
			return err
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: duplicate card %s", ErrInconsistent, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}
