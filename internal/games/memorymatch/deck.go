// Package memorymatch implements Memory Match, a card game where every word
// of a vocabulary is hidden twice in a shuffled deck.
package memorymatch

import "github.com/vovakirdan/eduarcade/internal/core"

// Card is one card of the deck. IDs are positions in the dealt deck.
type Card struct {
	ID   int
	Word string
}

// Deal duplicates every word and shuffles the result.
func Deal(rng core.Rand, words []string) []Card {
	deck := make([]Card, 0, len(words)*2)
	for _, w := range words {
		deck = append(deck, Card{Word: w}, Card{Word: w})
	}

	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	for i := range deck {
		deck[i].ID = i
	}
	return deck
}
