package shared

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("Clara", TeamAttack)
	_, err := uuid.Parse(p.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Clara", p.Name)
	assert.Equal(t, TeamAttack, p.Team)
	assert.Empty(t, p.Hand)
	assert.Empty(t, p.Collected)
	assert.NotEqual(t, p.ID, NewPlayer("Clara", TeamAttack).ID)
}

func TestPlayerHand(t *testing.T) {
	p := NewPlayer("Theo", TeamDefense)
	p.AddCard(SuitedCard(Hearts, Ace), TrumpCard(3), Excuse)

	assert.True(t, p.HasCard(TrumpCard(3)))
	assert.True(t, p.RemoveCard(TrumpCard(3)))
	assert.False(t, p.HasCard(TrumpCard(3)))
	assert.False(t, p.RemoveCard(TrumpCard(3)))
	assert.Equal(t, []Card{SuitedCard(Hearts, Ace), Excuse}, p.Hand)

	p.Collect(SuitedCard(Spades, King), TrumpCard(8))
	assert.Equal(t, []Card{SuitedCard(Spades, King), TrumpCard(8)}, p.Collected)
}

func TestMembers(t *testing.T) {
	a := NewPlayer("a", TeamAttack)
	b := NewPlayer("b", TeamDefense)
	c := NewPlayer("c", TeamAttack)
	players := []*Player{a, b, c}

	assert.Equal(t, []*Player{a, c}, Members(players, TeamAttack))
	assert.Equal(t, []*Player{b}, Members(players, TeamDefense))
	assert.Equal(t, "Attack", TeamAttack.String())
	assert.Equal(t, "Unassigned", TeamEnum(0).String())
}
