package shared

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	require.Equal(t, DeckSize, deck.Len())
	require.NoError(t, deck.Validate())

	assert.Equal(t, SuitedCard(Diamonds, Ace), deck.Cards[0])
	assert.Equal(t, SuitedCard(Diamonds, Jack), deck.Cards[10])
	assert.Equal(t, SuitedCard(Hearts, Ace), deck.Cards[14])
	assert.Equal(t, SuitedCard(Spades, King), deck.Cards[55])
	assert.Equal(t, TrumpCard(1), deck.Cards[56])
	assert.Equal(t, TrumpCard(21), deck.Cards[76])
	assert.Equal(t, Excuse, deck.Cards[77])

	perSuit := map[Suit]int{}
	trumps, excuses := 0, 0
	for _, c := range deck.Cards {
		switch c.Kind {
		case KindSuited:
			perSuit[c.Suit]++
		case KindTrump:
			trumps++
			if c.IsExcuse() {
				excuses++
			}
		}
	}
	for _, s := range Suits {
		assert.Equal(t, 14, perSuit[s], "suit %s", s)
	}
	assert.Equal(t, 22, trumps)
	assert.Equal(t, 1, excuses)
}

func TestShufflePreservesCards(t *testing.T) {
	deck := NewDeck()
	deck.Shuffle(rand.New(rand.NewPCG(7, 11)))
	require.NoError(t, deck.Validate())
	assert.ElementsMatch(t, NewDeck().Cards, deck.Cards)

	deck.Shuffle(nil)
	assert.ElementsMatch(t, NewDeck().Cards, deck.Cards)
}

func TestShuffleIsReproducible(t *testing.T) {
	a, b := NewDeck(), NewDeck()
	a.Shuffle(rand.New(rand.NewPCG(42, 42)))
	b.Shuffle(rand.New(rand.NewPCG(42, 42)))
	assert.Equal(t, a.Cards, b.Cards)
}

func TestDraw(t *testing.T) {
	deck := NewDeck()
	top, err := deck.Draw(3)
	require.NoError(t, err)
	assert.Equal(t, []Card{SuitedCard(Diamonds, Ace), SuitedCard(Diamonds, Two), SuitedCard(Diamonds, Three)}, top)
	assert.Equal(t, DeckSize-3, deck.Len())
	assert.ErrorContains(t, deck.Validate(), "75 cards")

	_, err = deck.Draw(DeckSize)
	assert.Error(t, err)
	_, err = deck.Draw(-1)
	assert.Error(t, err)
}
