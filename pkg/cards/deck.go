package cards

import (
	"fmt"
	"iter"
	"math/rand"
	"time"

	"github.com/fadedpez/deckhand/internal/types"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// Deck represents an ordered deck of cards. Cards leave the deck by
// drawing and never come back; a deck is created full and discarded
// once empty.
type Deck struct {
	cards   []Card
	compare Comparator
	rng     *rand.Rand
}

// DeckOption configures a deck at construction.
type DeckOption func(*Deck)

// WithComparator binds compare to every card in the deck.
func WithComparator(compare Comparator) DeckOption {
	return func(d *Deck) {
		d.compare = compare
	}
}

// WithRand sets the random source used by Shuffle. Tests pass a
// seeded source for deterministic orderings.
func WithRand(rng *rand.Rand) DeckOption {
	return func(d *Deck) {
		d.rng = rng
	}
}

// NewDeck creates a full deck holding every suit and rank combination
// exactly once, suits in deck order with ranks ascending inside each
// suit. Every card shares the deck's comparator.
func NewDeck(opts ...DeckOption) *Deck {
	deck := &Deck{compare: DefaultComparator}
	for _, opt := range opts {
		opt(deck)
	}
	if deck.rng == nil {
		deck.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	deck.cards = make([]Card, 0, DeckSize)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			deck.cards = append(deck.cards, Card{suit: suit, rank: rank, compare: deck.compare})
		}
	}

	return deck
}

// Size returns the number of cards remaining in the deck.
func (d *Deck) Size() int {
	return len(d.cards)
}

// Shuffle randomizes the order of the remaining cards. Membership is
// unchanged; shuffling an empty deck is a no-op.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top n cards. It returns an
// INSUFFICIENT_CARDS error when fewer than n cards remain, leaving
// the deck unchanged; there is no partial draw.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 {
		return nil, types.NewCardError(types.ErrInvalidArgument,
			fmt.Sprintf("cannot draw a negative number of cards (%d)", n))
	}

	if n > len(d.cards) {
		return nil, types.NewCardError(types.ErrInsufficientCards,
			fmt.Sprintf("cannot draw %d cards from deck since it only contains %d cards", n, len(d.cards)))
	}

	drawn := make([]Card, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]

	return drawn, nil
}

// DrawOne removes and returns the top card of the deck.
func (d *Deck) DrawOne() (Card, error) {
	drawn, err := d.Draw(1)
	if err != nil {
		return Card{}, err
	}
	return drawn[0], nil
}

// All returns an iterator over the remaining cards in their current
// order. Iterating does not remove cards, and each call restarts from
// the top.
func (d *Deck) All() iter.Seq[Card] {
	return func(yield func(Card) bool) {
		for _, card := range d.cards {
			if !yield(card) {
				return
			}
		}
	}
}
