package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/pterm/pterm"

	"github.com/fadedpez/deckhand/internal/config"
	"github.com/fadedpez/deckhand/internal/logging"
	"github.com/fadedpez/deckhand/pkg/cards"
	"github.com/fadedpez/deckhand/pkg/games"
	"github.com/fadedpez/deckhand/pkg/games/highcard"
)

func main() {
	// Load configuration from the environment
	cfg, err := config.Load()
	if err != nil {
		logging.Default.LogError(err)
		os.Exit(1)
	}

	// Verbose logging in development, warnings only otherwise
	logger := logging.Default
	if !cfg.IsDevelopment() {
		logger = logging.NewLogger(logging.WARN)
	}
	logger.Debug("configured hand size %d, shuffle seed %d", cfg.HandSize, cfg.Seed)

	// A fixed seed makes the round reproducible; without one the deck
	// seeds itself from the clock
	var opts []cards.DeckOption
	if cfg.Seed != 0 {
		opts = append(opts, cards.WithRand(rand.New(rand.NewSource(cfg.Seed))))
	}
	deck := cards.NewDeck(opts...)

	game := highcard.NewGame(deck,
		highcard.WithHandSize(cfg.HandSize),
		highcard.WithPlayerNames(cfg.PlayerOneName, cfg.PlayerTwoName),
	)

	game.Shuffle()
	if err := game.Deal(); err != nil {
		logger.LogError(err)
		os.Exit(1)
	}
	logger.Debug("dealt %d cards each, %d remain in the deck", game.HandSize, game.CardsRemaining())

	showdown, err := game.Showdown()
	if err != nil {
		logger.LogError(err)
		os.Exit(1)
	}

	printHand(game.PlayerOne, showdown.PlayerOneTop)
	printHand(game.PlayerTwo, showdown.PlayerTwoTop)
	printOutcome(showdown.Result)
}

// printHand prints a player's hand one card per line, then their top card
func printHand(player *games.Player, top cards.Card) {
	pterm.Printfln("%s's Cards:", player.Name)
	for _, card := range player.Hand {
		pterm.Printfln("\t%s", renderCard(card))
	}
	pterm.Printfln("\n%s's Top Card: %s\n", player.Name, renderCard(top))
}

// printOutcome announces the result of the round
func printOutcome(result highcard.Result) {
	if result.IsDraw() {
		pterm.Println(pterm.LightYellow(result.Message()))
		return
	}
	pterm.Println(pterm.LightGreen(result.Message()))
}

// renderCard colors the red suits; black suits keep the terminal's
// default color
func renderCard(card cards.Card) string {
	suit := string(card.Suit())
	if card.Suit() == cards.Hearts || card.Suit() == cards.Diamonds {
		suit = pterm.LightRed(suit)
	}
	return fmt.Sprintf("%s of %s", card.Rank(), suit)
}
