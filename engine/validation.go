package engine

import (
	"fmt"

	"holdem-engine/models"
)

// TurnValidator checks that an action arrives from the seat whose turn
// it is, before anything mutates.
type TurnValidator struct {
	state *models.GameState
}

func NewTurnValidator(state *models.GameState) *TurnValidator {
	return &TurnValidator{state: state}
}

func (tv *TurnValidator) ValidateTurn(userID string) (*models.Player, error) {
	if !tv.state.HandInProgress {
		return nil, stateError(ErrNoHandInProgress)
	}

	pos := tv.state.CurrentPlayerIndex
	if pos < 0 || pos >= len(tv.state.Players) {
		return nil, stateErrorf(fmt.Sprintf("invalid current position: %d", pos))
	}

	current := tv.state.Players[pos]
	if current == nil {
		return nil, stateErrorf(fmt.Sprintf("no player at position %d", pos))
	}

	if current.UserID != userID {
		return nil, stateError(ErrNotYourTurn)
	}

	if current.HasFolded {
		return nil, stateErrorf("cannot act: player folded")
	}
	if current.IsAllIn {
		return nil, stateErrorf("cannot act: player all-in")
	}
	if current.SittingOut {
		return nil, stateErrorf("cannot act: player sitting out")
	}

	return current, nil
}
