package shared

import "github.com/google/uuid"

// Player represents a seat at the table for one deal.
type Player struct {
	ID        string   // Unique identifier for the player
	Name      string   // Player's chosen name
	Team      TeamEnum // Side for the current deal
	Hand      []Card   // Cards currently held by the player
	Collected []Card   // Cards won in tricks, copied out of each trick
}

// NewPlayer creates a new player with the given name and team.
func NewPlayer(name string, team TeamEnum) *Player {
	return &Player{
		ID:        uuid.NewString(),
		Name:      name,
		Team:      team,
		Hand:      []Card{},
		Collected: []Card{},
	}
}

// AddCard adds cards to the player's hand.
func (p *Player) AddCard(cards ...Card) {
	p.Hand = append(p.Hand, cards...)
}

// RemoveCard removes a card from the player's hand.
func (p *Player) RemoveCard(card Card) bool {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// HasCard reports whether card is in the player's hand.
func (p *Player) HasCard(card Card) bool {
	for _, c := range p.Hand {
		if c == card {
			return true
		}
	}
	return false
}

// Collect appends copies of the trick cards to the player's won pile.
func (p *Player) Collect(cards ...Card) {
	p.Collected = append(p.Collected, cards...)
}

func (p *Player) String() string {
	return p.Name
}
