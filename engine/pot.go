package engine

import "holdem-engine/models"

type playerEval struct {
	player *models.Player
	eval   HandEvaluation
}

// evaluateShowdown evaluates every unfolded player's best hand over
// their hole cards plus the community cards, in seat order.
func evaluateShowdown(players []*models.Player, communityCards []models.Card) []playerEval {
	evals := make([]playerEval, 0, len(players))
	for _, p := range unfoldedPlayers(players) {
		cards := append(append([]models.Card{}, p.HoleCards...), communityCards...)
		eval, err := Evaluate(cards)
		if err != nil {
			continue
		}
		evals = append(evals, playerEval{player: p, eval: eval})
	}
	return evals
}

// findWinners keeps every evaluation comparing equal to the maximum,
// preserving seat order.
func findWinners(evals []playerEval) []playerEval {
	if len(evals) == 0 {
		return nil
	}

	best := evals[0].eval
	for _, pe := range evals[1:] {
		if CompareHands(pe.eval, best) > 0 {
			best = pe.eval
		}
	}

	winners := make([]playerEval, 0, len(evals))
	for _, pe := range evals {
		if CompareHands(pe.eval, best) == 0 {
			winners = append(winners, pe)
		}
	}
	return winners
}

// distributePot splits the pot by integer division, handing the
// remainder out one chip at a time to the earliest winners. The whole
// pot is always paid out.
func distributePot(pot int, winners []playerEval) []models.Winner {
	if len(winners) == 0 {
		return nil
	}

	share := pot / len(winners)
	remainder := pot % len(winners)

	results := make([]models.Winner, 0, len(winners))
	for i, pe := range winners {
		amount := share
		if i < remainder {
			amount++
		}
		pe.player.AddChips(amount)
		results = append(results, models.Winner{
			UserID:   pe.player.UserID,
			Username: pe.player.Username,
			Amount:   amount,
			HandRank: pe.eval.Rank.String(),
			BestHand: pe.eval.BestHand,
		})
	}
	return results
}
