package cards

import (
	"fmt"
	"strconv"

	"github.com/fadedpez/deckhand/internal/types"
)

// Suit represents a card suit
type Suit string

const (
	Spades   Suit = "Spades"
	Hearts   Suit = "Hearts"
	Diamonds Suit = "Diamonds"
	Clubs    Suit = "Clubs"
)

// Suits returns the four suits in deck order.
func Suits() []Suit {
	return []Suit{Spades, Hearts, Diamonds, Clubs}
}

// Valid reports whether s is one of the four recognized suits.
func (s Suit) Valid() bool {
	switch s {
	case Spades, Hearts, Diamonds, Clubs:
		return true
	}
	return false
}

// Rank represents a card rank, Ace (1) through King (13)
type Rank int

const (
	Ace Rank = iota + 1
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
	Queen
	King
)

// Ranks returns all thirteen ranks in ascending numeric order.
func Ranks() []Rank {
	ranks := make([]Rank, 0, int(King))
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Valid reports whether r is in the playable range.
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// IsFace reports whether r is a Jack, Queen, or King.
func (r Rank) IsFace() bool {
	return r >= Jack && r <= King
}

// String returns the rank's name for aces and face cards and its
// numeric value otherwise.
func (r Rank) String() string {
	switch r {
	case Ace:
		return "Ace"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card represents a playing card. Cards are immutable once built and
// carry the comparator they were constructed with, so ordering rules
// travel with the card rather than with the code comparing them.
type Card struct {
	suit    Suit
	rank    Rank
	compare Comparator
}

// NewCard creates a card ordered by DefaultComparator.
func NewCard(suit Suit, rank Rank) (Card, error) {
	return NewCardWithComparator(suit, rank, DefaultComparator)
}

// NewCardWithComparator creates a card bound to compare. It returns
// an INVALID_ARGUMENT error for an unrecognized suit or a rank
// outside Ace through King.
func NewCardWithComparator(suit Suit, rank Rank, compare Comparator) (Card, error) {
	if !suit.Valid() {
		return Card{}, types.NewCardError(types.ErrInvalidArgument,
			fmt.Sprintf("unexpected suit '%s'", suit))
	}

	if !rank.Valid() {
		return Card{}, types.NewCardError(types.ErrInvalidArgument,
			fmt.Sprintf("card rank '%d' is out of range", rank))
	}

	return Card{suit: suit, rank: rank, compare: compare}, nil
}

// Suit returns the suit of the card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the card.
func (c Card) Rank() Rank {
	return c.rank
}

// IsFaceCard reports whether the card is a Jack, Queen, or King.
func (c Card) IsFaceCard() bool {
	return c.rank.IsFace()
}

// IsAce reports whether the card is an Ace.
func (c Card) IsAce() bool {
	return c.rank == Ace
}

// String returns a string representation of the card, e.g.
// "Queen of Hearts" or "5 of Clubs".
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.rank, c.suit)
}

// Compare orders c against other using the comparator bound to c.
// When the two cards were built with different comparators the left
// operand always decides, so c.Compare(other) and other.Compare(c)
// can disagree. A zero-value card falls back to DefaultComparator.
func (c Card) Compare(other Card) int {
	if c.compare == nil {
		return DefaultComparator(c, other)
	}
	return c.compare(c, other)
}

// Equal reports whether the bound comparator considers the cards equal.
func (c Card) Equal(other Card) bool {
	return c.Compare(other) == 0
}

// Less reports whether c orders strictly before other.
func (c Card) Less(other Card) bool {
	return c.Compare(other) < 0
}

// LessOrEqual reports whether c orders before or equal to other.
func (c Card) LessOrEqual(other Card) bool {
	return c.Compare(other) <= 0
}

// Greater reports whether c orders strictly after other.
func (c Card) Greater(other Card) bool {
	return c.Compare(other) > 0
}

// GreaterOrEqual reports whether c orders after or equal to other.
func (c Card) GreaterOrEqual(other Card) bool {
	return c.Compare(other) >= 0
}

// CardKey identifies a card by suit and rank alone.
type CardKey struct {
	Suit Suit
	Rank Rank
}

// Key returns a comparable suit+rank identity for use as a map or set
// key. The key ignores the bound comparator: a custom comparator that
// calls two different suit+rank pairs equal still yields distinct
// keys, so such cards land in separate map entries despite Equal
// returning true.
func (c Card) Key() CardKey {
	return CardKey{Suit: c.suit, Rank: c.rank}
}
