package models

import (
	"fmt"
	"strings"
)

type Suit string
type Rank string

const (
	Hearts   Suit = "h"
	Diamonds Suit = "d"
	Clubs    Suit = "c"
	Spades   Suit = "s"
)

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "T"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

// FormatError reports a malformed card encoding.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed card code %q", e.Input)
}

type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// String returns the canonical 2-character code, e.g. "Th" or "As".
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// ParseCard decodes a 2-character card code. The rank character is
// case-insensitive; 'T' encodes the ten.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, &FormatError{Input: s}
	}

	rank := Rank(strings.ToUpper(s[:1]))
	switch rank {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace:
	default:
		return Card{}, &FormatError{Input: s}
	}

	suit := Suit(strings.ToLower(s[1:]))
	switch suit {
	case Hearts, Diamonds, Clubs, Spades:
	default:
		return Card{}, &FormatError{Input: s}
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// Value returns the rank ordinal with Ace highest. The wheel straight
// is the only place an Ace plays low; the evaluator handles that case
// itself.
func (c Card) Value() int {
	switch c.Rank {
	case Two:
		return 2
	case Three:
		return 3
	case Four:
		return 4
	case Five:
		return 5
	case Six:
		return 6
	case Seven:
		return 7
	case Eight:
		return 8
	case Nine:
		return 9
	case Ten:
		return 10
	case Jack:
		return 11
	case Queen:
		return 12
	case King:
		return 13
	case Ace:
		return 14
	}
	return 0
}
