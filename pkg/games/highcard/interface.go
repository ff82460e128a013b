package highcard

import (
	"github.com/fadedpez/deckhand/pkg/cards"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_highcard

// Dealer defines the deck operations a round of high card needs
type Dealer interface {
	// Shuffle randomizes the order of the remaining cards
	Shuffle()

	// Draw removes and returns the top n cards
	Draw(n int) ([]cards.Card, error)

	// Size returns the number of cards remaining
	Size() int
}
