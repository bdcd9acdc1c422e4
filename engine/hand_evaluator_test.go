package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdem-engine/models"
)

func cards(codes ...string) []models.Card {
	out := make([]models.Card, len(codes))
	for i, code := range codes {
		card, err := models.ParseCard(code)
		if err != nil {
			panic(err)
		}
		out[i] = card
	}
	return out
}

func mustEvaluate(t *testing.T, codes ...string) HandEvaluation {
	t.Helper()
	eval, err := Evaluate(cards(codes...))
	require.NoError(t, err)
	return eval
}

func TestEvaluateInsufficientCards(t *testing.T) {
	_, err := Evaluate(cards("Ah", "Kh", "Qh", "Jh"))
	assert.ErrorIs(t, err, ErrInsufficientCards)
}

func TestCategoryOrderingIsTotal(t *testing.T) {
	// one representative hand per category, strongest first
	hands := []struct {
		name string
		rank HandRank
		eval HandEvaluation
	}{
		{"royal flush", RoyalFlush, mustEvaluate(t, "As", "Ks", "Qs", "Js", "Ts")},
		{"straight flush", StraightFlush, mustEvaluate(t, "9s", "8s", "7s", "6s", "5s")},
		{"four of a kind", FourOfAKind, mustEvaluate(t, "9h", "9d", "9c", "9s", "2d")},
		{"full house", FullHouse, mustEvaluate(t, "8h", "8d", "8c", "3s", "3d")},
		{"flush", Flush, mustEvaluate(t, "Ah", "9h", "7h", "5h", "3h")},
		{"straight", Straight, mustEvaluate(t, "9h", "8d", "7c", "6s", "5h")},
		{"three of a kind", ThreeOfAKind, mustEvaluate(t, "7h", "7d", "7c", "Ks", "2d")},
		{"two pair", TwoPair, mustEvaluate(t, "6h", "6d", "4c", "4s", "Ad")},
		{"one pair", OnePair, mustEvaluate(t, "5h", "5d", "Kc", "9s", "2d")},
		{"high card", HighCard, mustEvaluate(t, "Ah", "Kd", "9c", "7s", "3h")},
	}

	for _, h := range hands {
		assert.Equal(t, h.rank, h.eval.Rank, h.name)
	}

	for i := 0; i < len(hands); i++ {
		for j := i + 1; j < len(hands); j++ {
			assert.Equal(t, 1, CompareHands(hands[i].eval, hands[j].eval),
				"%s should beat %s", hands[i].name, hands[j].name)
			assert.Equal(t, -1, CompareHands(hands[j].eval, hands[i].eval),
				"%s should lose to %s", hands[j].name, hands[i].name)
		}
	}
}

func TestBestHandAlwaysFiveCardsFromInput(t *testing.T) {
	inputs := [][]models.Card{
		cards("Ah", "Kd", "9c", "7s", "3h"),
		cards("Ah", "Kd", "9c", "7s", "3h", "2d"),
		cards("Ah", "Ad", "Kh", "Qd", "9c", "5s", "2h"),
		cards("Ah", "Kh", "Qh", "Jh", "Th", "2c", "3d"),
	}

	for _, input := range inputs {
		eval, err := Evaluate(input)
		require.NoError(t, err)
		require.Len(t, eval.BestHand, 5)

		for _, card := range eval.BestHand {
			assert.Contains(t, input, card)
		}
	}
}

func TestSevenCardsPicksBestCombination(t *testing.T) {
	eval := mustEvaluate(t, "Ah", "Kh", "Qh", "Jh", "Th", "2c", "3d")
	assert.Equal(t, RoyalFlush, eval.Rank)

	eval = mustEvaluate(t, "Ah", "Ad", "Kh", "Qd", "9c", "5s", "2h")
	assert.Equal(t, OnePair, eval.Rank)
	values := tiebreakValues(eval)
	assert.Equal(t, []int{14, 14, 13, 12, 9}, values)
}

func TestWheelStraight(t *testing.T) {
	// wheel plus two unrelated cards, suits mixed so no flush
	eval := mustEvaluate(t, "As", "2s", "3d", "4c", "5h", "9c", "Jd")
	assert.Equal(t, Straight, eval.Rank)
	require.NotEmpty(t, eval.Tiebreakers)
	assert.Equal(t, 5, eval.Tiebreakers[0].Value(), "wheel high card is the 5, not the ace")

	sixHigh := mustEvaluate(t, "2h", "3d", "4c", "5s", "6h")
	assert.Equal(t, Straight, sixHigh.Rank)
	assert.Equal(t, 1, CompareHands(sixHigh, eval), "6-high straight beats the wheel")

	trips := mustEvaluate(t, "7h", "7d", "7c", "Ks", "2d")
	assert.Equal(t, 1, CompareHands(eval, trips), "wheel beats any non-straight")
}

func TestWheelStraightFlush(t *testing.T) {
	eval := mustEvaluate(t, "As", "2s", "3s", "4s", "5s")
	assert.Equal(t, StraightFlush, eval.Rank)
	require.NotEmpty(t, eval.Tiebreakers)
	assert.Equal(t, 5, eval.Tiebreakers[0].Value())

	sixHigh := mustEvaluate(t, "2h", "3h", "4h", "5h", "6h")
	assert.Equal(t, 1, CompareHands(sixHigh, eval))
}

func TestTwoPairTiebreakerOrder(t *testing.T) {
	// pairs ordered by rank, not discovery order
	eval := mustEvaluate(t, "2h", "2d", "9c", "9s", "Ad")
	assert.Equal(t, TwoPair, eval.Rank)
	assert.Equal(t, []int{9, 9, 2, 2, 14}, tiebreakValues(eval))
}

func TestFullHouseTiebreaker(t *testing.T) {
	threesOverAces := mustEvaluate(t, "3h", "3d", "3c", "As", "Ad")
	twosOverKings := mustEvaluate(t, "2h", "2d", "2c", "Ks", "Kd")
	assert.Equal(t, 1, CompareHands(threesOverAces, twosOverKings),
		"trips rank decides before the pair")
}

func TestFourOfAKindKicker(t *testing.T) {
	aceKicker := mustEvaluate(t, "9h", "9d", "9c", "9s", "Ad")
	kingKicker := mustEvaluate(t, "9h", "9d", "9c", "9s", "Kd")
	assert.Equal(t, 1, CompareHands(aceKicker, kingKicker))
}

func TestFlushDecidedByAllFiveCards(t *testing.T) {
	a := mustEvaluate(t, "Ah", "9h", "7h", "5h", "3h")
	b := mustEvaluate(t, "Ad", "9d", "7d", "5d", "2d")
	assert.Equal(t, 1, CompareHands(a, b))
}

func TestIdenticalHandsTie(t *testing.T) {
	a := mustEvaluate(t, "9h", "8d", "7c", "6s", "5h")
	b := mustEvaluate(t, "9d", "8c", "7s", "6h", "5d")
	assert.Equal(t, 0, CompareHands(a, b))

	royalA := mustEvaluate(t, "As", "Ks", "Qs", "Js", "Ts")
	royalB := mustEvaluate(t, "Ah", "Kh", "Qh", "Jh", "Th")
	assert.Equal(t, 0, CompareHands(royalA, royalB), "all royal flushes are equal")
}

func tiebreakValues(eval HandEvaluation) []int {
	values := make([]int, len(eval.Tiebreakers))
	for i, card := range eval.Tiebreakers {
		values[i] = card.Value()
	}
	return values
}
