package highcard

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fadedpez/deckhand/internal/types"
	"github.com/fadedpez/deckhand/pkg/cards"
	"github.com/fadedpez/deckhand/pkg/games"
)

var (
	ErrAlreadyDealt = errors.New("hands already dealt")
	ErrNotDealt     = errors.New("hands not dealt yet")
)

// DefaultHandSize is the number of cards dealt to each player.
const DefaultHandSize = 3

// Game represents a single round of high card between two players.
// Each player is dealt a hand and the higher top card wins.
type Game struct {
	ID        string
	HandSize  int
	PlayerOne *games.Player
	PlayerTwo *games.Player

	dealer Dealer
	dealt  bool
}

// GameOption configures a game at construction.
type GameOption func(*Game)

// WithHandSize sets how many cards each player is dealt.
func WithHandSize(n int) GameOption {
	return func(g *Game) {
		g.HandSize = n
	}
}

// WithPlayerNames sets the display names of the two players.
func WithPlayerNames(one, two string) GameOption {
	return func(g *Game) {
		g.PlayerOne.Name = one
		g.PlayerTwo.Name = two
	}
}

// NewGame creates a round of high card dealt from dealer
func NewGame(dealer Dealer, opts ...GameOption) *Game {
	g := &Game{
		ID:        uuid.New().String(),
		HandSize:  DefaultHandSize,
		PlayerOne: games.NewPlayer("Player One"),
		PlayerTwo: games.NewPlayer("Player Two"),
		dealer:    dealer,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Shuffle randomizes the dealer's remaining cards
func (g *Game) Shuffle() {
	g.dealer.Shuffle()
}

// CardsRemaining returns how many cards the dealer still holds
func (g *Game) CardsRemaining() int {
	return g.dealer.Size()
}

// Deal draws a hand for each player. Both hands come from a single
// draw, so a deck too short for two full hands fails before either
// player receives a card. Dealer errors are returned as-is.
func (g *Game) Deal() error {
	if g.dealt {
		return ErrAlreadyDealt
	}

	if g.HandSize < 1 {
		return types.NewCardError(types.ErrInvalidArgument,
			fmt.Sprintf("hand size must be at least 1, got %d", g.HandSize))
	}

	drawn, err := g.dealer.Draw(2 * g.HandSize)
	if err != nil {
		return err
	}

	g.PlayerOne.AddCards(drawn[:g.HandSize])
	g.PlayerTwo.AddCards(drawn[g.HandSize:])
	g.dealt = true

	return nil
}

// Showdown reports the outcome of a round: each player's top card and
// who won.
type Showdown struct {
	Result       Result
	PlayerOneTop cards.Card
	PlayerTwoTop cards.Card
}

// Showdown compares the players' top cards and declares a winner.
// Player one's card is the left operand, so its comparator decides
// the outcome.
func (g *Game) Showdown() (*Showdown, error) {
	if !g.dealt {
		return nil, ErrNotDealt
	}

	topOne, okOne := g.PlayerOne.TopCard()
	topTwo, okTwo := g.PlayerTwo.TopCard()
	if !okOne || !okTwo {
		return nil, ErrNotDealt
	}

	result := ResultDraw
	switch cmp := topOne.Compare(topTwo); {
	case cmp > 0:
		result = ResultPlayerOneWins
	case cmp < 0:
		result = ResultPlayerTwoWins
	}

	return &Showdown{
		Result:       result,
		PlayerOneTop: topOne,
		PlayerTwoTop: topTwo,
	}, nil
}
