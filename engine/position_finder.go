package engine

import "holdem-engine/models"

// PositionFinder scans the fixed seat array circularly. Seats are only
// ever addressed by index.
type PositionFinder struct {
	players []*models.Player
}

func NewPositionFinder(players []*models.Player) *PositionFinder {
	return &PositionFinder{players: players}
}

func (pf *PositionFinder) findNext(currentPos int, filter PlayerFilter) int {
	maxPlayers := len(pf.players)
	if maxPlayers == 0 {
		return 0
	}

	nextPos := (currentPos + 1) % maxPlayers
	checked := 0

	for checked < maxPlayers {
		if filter(pf.players[nextPos]) {
			return nextPos
		}
		nextPos = (nextPos + 1) % maxPlayers
		checked++
	}

	return currentPos
}

// findNextActor returns the next seat eligible to receive the turn,
// skipping folded, all-in, chip-empty and vacant seats.
func (pf *PositionFinder) findNextActor(currentPos int) int {
	return pf.findNext(currentPos, canAct)
}

func (pf *PositionFinder) findNextWithChips(currentPos int) int {
	return pf.findNext(currentPos, hasChipsForHand)
}

func (pf *PositionFinder) findFirstWithChips() int {
	for i, p := range pf.players {
		if hasChipsForHand(p) {
			return i
		}
	}
	return 0
}

// calculateBlindPositions places the blinds relative to the dealer.
// Heads-up the dealer posts the small blind.
func (pf *PositionFinder) calculateBlindPositions(dealerPos, activePlayers int) (int, int) {
	if len(pf.players) == 0 {
		return 0, 0
	}

	if activePlayers == 2 {
		return dealerPos, pf.findNextWithChips(dealerPos)
	}

	sbPos := pf.findNextWithChips(dealerPos)
	bbPos := pf.findNextWithChips(sbPos)
	return sbPos, bbPos
}
