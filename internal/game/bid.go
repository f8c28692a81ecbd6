package game

// Bid is a contract level, from the weakest to the strongest commitment.
// The engine carries it around but never evaluates it.
type Bid int

const (
	BidPetite Bid = iota
	BidPousse
	BidGarde
	BidGardeSans
	BidGardeContre
	BidChelem
)

// Bids lists every level in increasing order.
var Bids = []Bid{BidPetite, BidPousse, BidGarde, BidGardeSans, BidGardeContre, BidChelem}

func (b Bid) String() string {
	switch b {
	case BidPetite:
		return "Petite"
	case BidPousse:
		return "Pousse"
	case BidGarde:
		return "Garde"
	case BidGardeSans:
		return "Garde Sans"
	case BidGardeContre:
		return "Garde Contre"
	case BidChelem:
		return "Chelem"
	default:
		return "Unknown"
	}
}

// Valid reports whether b is one of the six levels.
func (b Bid) Valid() bool {
	return b >= BidPetite && b <= BidChelem
}

// Exceeds reports whether b is a stronger commitment than other.
func (b Bid) Exceeds(other Bid) bool {
	return b > other
}
