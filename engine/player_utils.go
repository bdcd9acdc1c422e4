package engine

import (
	"github.com/thoas/go-funk"

	"holdem-engine/models"
)

type PlayerFilter func(*models.Player) bool

func isSeated(p *models.Player) bool {
	return p != nil && !p.SittingOut
}

func isUnfolded(p *models.Player) bool {
	return isSeated(p) && !p.HasFolded && len(p.HoleCards) > 0
}

// canAct marks seats eligible to receive the turn: dealt in, not
// folded, not all-in, chips behind.
func canAct(p *models.Player) bool {
	return isUnfolded(p) && !p.IsAllIn && p.Chips > 0
}

func hasChipsForHand(p *models.Player) bool {
	return isSeated(p) && p.Chips > 0
}

func countPlayers(players []*models.Player, filter PlayerFilter) int {
	count := 0
	for _, p := range players {
		if filter(p) {
			count++
		}
	}
	return count
}

func unfoldedPlayers(players []*models.Player) []*models.Player {
	return funk.Filter(players, isUnfolded).([]*models.Player)
}

func findPlayerByID(players []*models.Player, userID string) *models.Player {
	match := funk.Find(players, func(p *models.Player) bool {
		return p != nil && p.UserID == userID
	})
	if match == nil {
		return nil
	}
	return match.(*models.Player)
}

func resetPlayersForNewRound(players []*models.Player) {
	for _, p := range players {
		if p != nil {
			p.CurrentBet = 0
			if !p.IsAllIn {
				p.HasActed = false
			}
		}
	}
}

// reopenBetting clears HasActed on every other seat still able to
// respond, giving them the turn again after a bet or raise.
func reopenBetting(players []*models.Player, except *models.Player) {
	for _, p := range players {
		if p != nil && p != except && canAct(p) {
			p.HasActed = false
		}
	}
}
