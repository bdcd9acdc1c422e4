package engine

import (
	"fmt"

	"holdem-engine/models"
)

// ActionProcessor applies validated actions to the aggregate. Chips
// move from a player's balance into the pot in the same step, so
// pot == sum of TotalBet holds after every call.
type ActionProcessor struct {
	state *models.GameState
}

func NewActionProcessor(state *models.GameState) *ActionProcessor {
	return &ActionProcessor{state: state}
}

func (ap *ActionProcessor) commit(player *models.Player, amount int) int {
	moved := player.CommitChips(amount)
	ap.state.Pot.Main += moved
	return moved
}

func (ap *ActionProcessor) processFold(player *models.Player) {
	player.HasFolded = true
	player.LastAction = string(models.ActionFold)
	player.LastActionAmount = 0
}

func (ap *ActionProcessor) processCheck(player *models.Player) (int, error) {
	if player.CurrentBet < ap.state.CurrentBet {
		return 0, validationErrorf("cannot check - must call, raise, or fold")
	}
	player.LastAction = string(models.ActionCheck)
	player.LastActionAmount = 0
	return 0, nil
}

func (ap *ActionProcessor) processCall(player *models.Player) int {
	callAmount := ap.state.CurrentBet - player.CurrentBet
	if callAmount < 0 {
		callAmount = 0
	}
	moved := ap.commit(player, callAmount)
	player.LastAction = string(models.ActionCall)
	player.LastActionAmount = moved
	return moved
}

func (ap *ActionProcessor) processBet(player *models.Player, amount int) (int, error) {
	if ap.state.CurrentBet != 0 {
		return 0, validationErrorf("cannot bet - a bet is already outstanding, raise instead")
	}
	if amount < ap.state.Config.BigBlind {
		return 0, validationErrorf(fmt.Sprintf("bet must be at least the big blind (%d)", ap.state.Config.BigBlind))
	}
	if amount > player.Chips {
		return 0, validationErrorf(fmt.Sprintf("bet %d exceeds available chips %d", amount, player.Chips))
	}

	moved := ap.commit(player, amount)
	player.LastAction = string(models.ActionBet)
	player.LastActionAmount = moved

	ap.state.CurrentBet = player.CurrentBet
	ap.state.MinRaise = ap.state.Config.BigBlind
	reopenBetting(ap.state.Players, player)
	return moved, nil
}

// processRaise treats amount as the new absolute table-bet target. The
// target is clamped to what the player can reach all-in; an all-in
// below the minimum raise is allowed since the player cannot
// contribute more.
func (ap *ActionProcessor) processRaise(player *models.Player, amount int) (int, error) {
	if ap.state.CurrentBet == 0 {
		return 0, validationErrorf("nothing to raise - bet instead")
	}
	if amount < 0 {
		return 0, validationErrorf("raise amount cannot be negative")
	}

	maxTarget := player.CurrentBet + player.Chips
	target := amount
	if target > maxTarget {
		target = maxTarget
	}

	if target <= ap.state.CurrentBet {
		return 0, validationErrorf(fmt.Sprintf("raise to %d does not exceed the current bet %d", target, ap.state.CurrentBet))
	}

	minTarget := ap.state.CurrentBet + ap.state.MinRaise
	if amount < minTarget && amount < maxTarget {
		return 0, validationErrorf(fmt.Sprintf("raise must be at least %d (current bet %d + min raise %d)",
			minTarget, ap.state.CurrentBet, ap.state.MinRaise))
	}

	moved := ap.commit(player, target-player.CurrentBet)
	player.LastAction = string(models.ActionRaise)
	player.LastActionAmount = moved

	ap.state.MinRaise = target - ap.state.CurrentBet
	ap.state.CurrentBet = target
	reopenBetting(ap.state.Players, player)
	return moved, nil
}
