package engine

import (
	"sort"

	"holdem-engine/models"
)

type HandRank int

const (
	HighCard HandRank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

func (hr HandRank) String() string {
	names := []string{"High Card", "One Pair", "Two Pair", "Three of a Kind", "Straight", "Flush", "Full House", "Four of a Kind", "Straight Flush", "Royal Flush"}
	return names[hr]
}

// HandEvaluation is the result of classifying a 5-card hand. BestHand
// holds exactly the 5 cards that form the hand; Tiebreakers is the
// ordered card list used to break ties within the same rank, most
// significant first.
type HandEvaluation struct {
	Rank        HandRank
	BestHand    []models.Card
	Tiebreakers []models.Card
}

// Evaluate classifies the best 5-card hand available in cards. With
// more than 5 cards every 5-card combination is evaluated and the
// maximum kept; any combination tying for best may be returned.
func Evaluate(cards []models.Card) (HandEvaluation, error) {
	if len(cards) < 5 {
		return HandEvaluation{}, ErrInsufficientCards
	}

	if len(cards) == 5 {
		return evaluateFive(cards), nil
	}

	var best HandEvaluation
	found := false
	for _, combo := range combinations(cards, 5) {
		eval := evaluateFive(combo)
		if !found || CompareHands(eval, best) > 0 {
			best = eval
			found = true
		}
	}
	return best, nil
}

// CompareHands orders two evaluations: rank first, then positional
// tiebreaker comparison by card value. Returns 1, -1 or 0.
func CompareHands(a, b HandEvaluation) int {
	if a.Rank != b.Rank {
		if a.Rank > b.Rank {
			return 1
		}
		return -1
	}

	n := len(a.Tiebreakers)
	if len(b.Tiebreakers) < n {
		n = len(b.Tiebreakers)
	}
	for i := 0; i < n; i++ {
		av, bv := a.Tiebreakers[i].Value(), b.Tiebreakers[i].Value()
		if av > bv {
			return 1
		}
		if av < bv {
			return -1
		}
	}
	return 0
}

func evaluateFive(cards []models.Card) HandEvaluation {
	sorted := make([]models.Card, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Value() > sorted[j].Value()
	})

	isFlush := true
	for _, card := range sorted[1:] {
		if card.Suit != sorted[0].Suit {
			isFlush = false
			break
		}
	}

	straight := findStraight(sorted)

	if straight != nil && isFlush {
		if straight[0].Value() == 14 {
			return HandEvaluation{Rank: RoyalFlush, BestHand: straight}
		}
		return HandEvaluation{Rank: StraightFlush, BestHand: straight, Tiebreakers: straight[:1]}
	}

	groups := groupByRank(sorted)

	switch {
	case groups[0].count == 4:
		hand := append(append([]models.Card{}, groups[0].cards...), groups[1].cards...)
		return HandEvaluation{Rank: FourOfAKind, BestHand: hand, Tiebreakers: hand}
	case groups[0].count == 3 && groups[1].count == 2:
		hand := append(append([]models.Card{}, groups[0].cards...), groups[1].cards...)
		return HandEvaluation{Rank: FullHouse, BestHand: hand, Tiebreakers: hand}
	case isFlush:
		return HandEvaluation{Rank: Flush, BestHand: sorted, Tiebreakers: sorted}
	case straight != nil:
		return HandEvaluation{Rank: Straight, BestHand: straight, Tiebreakers: straight[:1]}
	case groups[0].count == 3:
		hand := append(append([]models.Card{}, groups[0].cards...), groups[1].cards[0], groups[2].cards[0])
		return HandEvaluation{Rank: ThreeOfAKind, BestHand: hand, Tiebreakers: hand}
	case groups[0].count == 2 && groups[1].count == 2:
		hand := append(append([]models.Card{}, groups[0].cards...), groups[1].cards...)
		hand = append(hand, groups[2].cards[0])
		return HandEvaluation{Rank: TwoPair, BestHand: hand, Tiebreakers: hand}
	case groups[0].count == 2:
		hand := append([]models.Card{}, groups[0].cards...)
		hand = append(hand, groups[1].cards[0], groups[2].cards[0], groups[3].cards[0])
		return HandEvaluation{Rank: OnePair, BestHand: hand, Tiebreakers: hand}
	default:
		return HandEvaluation{Rank: HighCard, BestHand: sorted, Tiebreakers: sorted}
	}
}

// findStraight reports the 5 cards in straight order (high card first)
// or nil. The wheel A-2-3-4-5 is checked by presence, separately from
// the consecutive scan, and comes back ordered 5-4-3-2-A so its high
// card is the 5.
func findStraight(sorted []models.Card) []models.Card {
	byValue := make(map[int]models.Card, len(sorted))
	for _, card := range sorted {
		byValue[card.Value()] = card
	}

	if len(byValue) != 5 {
		return nil
	}

	if _, hasAce := byValue[14]; hasAce {
		wheel := []models.Card{}
		for _, val := range []int{5, 4, 3, 2} {
			card, ok := byValue[val]
			if !ok {
				wheel = nil
				break
			}
			wheel = append(wheel, card)
		}
		if wheel != nil {
			return append(wheel, byValue[14])
		}
	}

	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Value()-sorted[i].Value() != 1 {
			return nil
		}
	}
	result := make([]models.Card, len(sorted))
	copy(result, sorted)
	return result
}

type rankGroup struct {
	count int
	value int
	cards []models.Card
}

// groupByRank buckets cards by rank, ordered by count then value so
// the dominant group (quads, trips, high pair) always comes first.
func groupByRank(cards []models.Card) []rankGroup {
	byRank := make(map[models.Rank][]models.Card)
	for _, card := range cards {
		byRank[card.Rank] = append(byRank[card.Rank], card)
	}

	groups := make([]rankGroup, 0, len(byRank))
	for _, group := range byRank {
		groups = append(groups, rankGroup{count: len(group), value: group[0].Value(), cards: group})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].value > groups[j].value
	})
	return groups
}

func combinations(cards []models.Card, k int) [][]models.Card {
	var result [][]models.Card
	combo := make([]models.Card, k)

	var build func(start, depth int)
	build = func(start, depth int) {
		if depth == k {
			out := make([]models.Card, k)
			copy(out, combo)
			result = append(result, out)
			return
		}
		for i := start; i <= len(cards)-(k-depth); i++ {
			combo[depth] = cards[i]
			build(i+1, depth+1)
		}
	}
	build(0, 0)
	return result
}
