// Package games holds the pieces shared by card game implementations.
package games

import (
	"github.com/fadedpez/deckhand/pkg/cards"
)

// Player represents a participant holding a hand of cards
type Player struct {
	Name string
	Hand []cards.Card
}

// NewPlayer creates a player with an empty hand
func NewPlayer(name string) *Player {
	return &Player{
		Name: name,
		Hand: make([]cards.Card, 0),
	}
}

// AddCard adds a card to the player's hand
func (p *Player) AddCard(card cards.Card) {
	p.Hand = append(p.Hand, card)
}

// AddCards adds a batch of drawn cards to the player's hand
func (p *Player) AddCards(drawn []cards.Card) {
	p.Hand = append(p.Hand, drawn...)
}

// ClearHand removes every card from the player's hand
func (p *Player) ClearHand() {
	p.Hand = p.Hand[:0]
}

// TopCard returns the highest card in the hand, ranked by each card's
// own comparator. The second return is false when the hand is empty.
func (p *Player) TopCard() (cards.Card, bool) {
	if len(p.Hand) == 0 {
		return cards.Card{}, false
	}

	top := p.Hand[0]
	for _, card := range p.Hand[1:] {
		if card.Greater(top) {
			top = card
		}
	}

	return top, true
}
