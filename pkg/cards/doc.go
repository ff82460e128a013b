// Package cards models a standard 52-card deck with pluggable
// ordering rules.
//
// The two main types are Card, an immutable suit+rank value that
// carries its own Comparator, and Deck, an ordered collection built
// full and emptied by drawing.
//
// # Basic Usage
//
// Build a deck, shuffle it, and deal:
//
//	deck := cards.NewDeck()
//	deck.Shuffle()
//	hand, err := deck.Draw(3)
//	if err != nil {
//	    // fewer than 3 cards remained; the deck is untouched
//	}
//
// # Deterministic Testing
//
// Shuffle order comes from the deck's random source. Inject a seeded
// one to make it repeatable:
//
//	rng := rand.New(rand.NewSource(42))
//	deck := cards.NewDeck(cards.WithRand(rng))
//	deck.Shuffle()
//
// # Custom Orderings
//
// The default comparator plays aces high and ignores suit. Games with
// other rules supply their own Comparator, which every card in the
// deck then carries:
//
//	twoOfClubsBeatsAll := func(a, b cards.Card) int {
//	    if a.Rank() == cards.Two && a.Suit() == cards.Clubs {
//	        return 1
//	    }
//	    if b.Rank() == cards.Two && b.Suit() == cards.Clubs {
//	        return -1
//	    }
//	    return cards.DefaultComparator(a, b)
//	}
//	deck := cards.NewDeck(cards.WithComparator(twoOfClubsBeatsAll))
//
// Comparisons always use the left operand's comparator, so mixing
// cards built with different comparators gives asymmetric results.
package cards
