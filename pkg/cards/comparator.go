package cards

// Comparator orders two cards. It should return:
//
// 1. -1 if a < b
//
// 2. 0 if a == b
//
// 3. 1 if a > b
//
// and NOT anything else. The rules of the game decide what "higher"
// means, so decks and cards accept a Comparator rather than fixing
// one ordering for everyone.
type Comparator func(a, b Card) int

// DefaultComparator ranks cards with aces high and suit ignored: an
// Ace outranks every other card, any other pair is decided by numeric
// rank, and a Queen of Hearts is equal to a Queen of Spades.
func DefaultComparator(a, b Card) int {
	if a.rank == b.rank {
		return 0
	}

	if acesHigh(a.rank) < acesHigh(b.rank) {
		return -1
	}
	return 1
}

// acesHigh lifts an Ace above the King so the default ordering can
// compare plain numeric ranks.
func acesHigh(r Rank) int {
	if r == Ace {
		return int(King) + 1
	}
	return int(r)
}
