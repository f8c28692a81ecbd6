package shared

// TeamEnum represents the two sides of a deal.
type TeamEnum int

const (
	TeamAttack  TeamEnum = 1 // The taker and the called partner
	TeamDefense TeamEnum = 2 // Everybody else
)

func (t TeamEnum) String() string {
	switch t {
	case TeamAttack:
		return "Attack"
	case TeamDefense:
		return "Defense"
	default:
		return "Unassigned"
	}
}

// Members returns the players of players that belong to team, in order.
func Members(players []*Player, team TeamEnum) []*Player {
	var members []*Player
	for _, p := range players {
		if p != nil && p.Team == team {
			members = append(members, p)
		}
	}
	return members
}
