package models

import (
	"math/rand"
	"time"
)

type Deck struct {
	cards []Card
	rng   *rand.Rand
}

func NewDeck() *Deck {
	deck := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	deck.Reset()
	return deck
}

// Reset restores all 52 cards and shuffles them.
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	suits := []Suit{Hearts, Diamonds, Clubs, Spades}
	ranks := []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

	for _, suit := range suits {
		for _, rank := range ranks {
			d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
		}
	}
	d.Shuffle()
}

func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card. The second return value is
// false once the deck is exhausted.
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DealMultiple deals up to n cards, stopping early if the deck empties.
func (d *Deck) DealMultiple(n int) []Card {
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		card, ok := d.Deal()
		if !ok {
			break
		}
		cards = append(cards, card)
	}
	return cards
}

func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}
