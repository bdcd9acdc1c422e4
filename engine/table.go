package engine

import (
	"fmt"
	"time"

	"holdem-engine/models"
)

// Table is the seat-management facade around one Game: joining,
// leaving, chip top-ups and hand lifecycle. The betting protocol
// itself lives in Game.
type Table struct {
	state *models.GameState
	game  *Game
}

func NewTable(tableID string, config models.TableConfig) *Table {
	state := &models.GameState{
		TableID:        tableID,
		Status:         models.StatusWaiting,
		Config:         config,
		Players:        make([]*models.Player, config.MaxPlayers),
		DealerPosition: -1,
		CommunityCards: make([]models.Card, 0),
		Pot:            models.Pot{Main: 0, Side: []models.SidePot{}},
		CreatedAt:      time.Now(),
	}

	return &Table{state: state, game: NewGame(state)}
}

func (t *Table) AddPlayer(userID, username string, seatNumber, buyIn int) error {
	if seatNumber < 0 || seatNumber >= t.state.Config.MaxPlayers {
		return validationErrorf("invalid seat number")
	}
	if t.state.Players[seatNumber] != nil {
		return validationErrorf("seat already occupied")
	}

	for i, p := range t.state.Players {
		if p != nil && p.UserID == userID {
			return validationErrorf(fmt.Sprintf("player %s is already seated at position %d", userID, i))
		}
	}

	if buyIn <= 0 {
		return validationErrorf("buy-in must be positive")
	}
	if t.state.Config.MinBuyIn > 0 && buyIn < t.state.Config.MinBuyIn {
		return validationErrorf(fmt.Sprintf("buy-in %d is below minimum %d", buyIn, t.state.Config.MinBuyIn))
	}
	if t.state.Config.MaxBuyIn > 0 && buyIn > t.state.Config.MaxBuyIn {
		return validationErrorf(fmt.Sprintf("buy-in %d exceeds maximum %d", buyIn, t.state.Config.MaxBuyIn))
	}

	t.state.Players[seatNumber] = models.NewPlayer(userID, username, seatNumber, buyIn)
	return nil
}

// RemovePlayer vacates a seat. Mid-hand the player is folded and
// marked sitting out; the seat is freed when the hand is over.
func (t *Table) RemovePlayer(userID string) error {
	for i, p := range t.state.Players {
		if p == nil || p.UserID != userID {
			continue
		}
		if t.state.HandInProgress {
			t.game.ForceFold(userID)
			p.SittingOut = true
			return nil
		}
		t.state.Players[i] = nil
		return nil
	}
	return validationErrorf("player not found")
}

// AddChips tops up a seated player's balance, capped by the table's
// maximum buy-in.
func (t *Table) AddChips(userID string, amount int) error {
	if amount <= 0 {
		return validationErrorf("amount must be positive")
	}
	p := findPlayerByID(t.state.Players, userID)
	if p == nil {
		return validationErrorf("player not found")
	}
	if t.state.Config.MaxBuyIn > 0 && p.Chips+amount > t.state.Config.MaxBuyIn {
		return validationErrorf(fmt.Sprintf("adding %d chips would exceed max buy-in of %d (current: %d)",
			amount, t.state.Config.MaxBuyIn, p.Chips))
	}
	p.AddChips(amount)
	return nil
}

func (t *Table) StartGame() error {
	if t.state.Status == models.StatusPlaying {
		return stateErrorf("game already in progress")
	}
	return t.game.StartNewHand()
}

func (t *Table) DealNewHand() error {
	if t.state.Status == models.StatusPlaying {
		return stateErrorf("current hand still in progress")
	}
	return t.game.StartNewHand()
}

func (t *Table) PerformAction(userID string, action models.Action) error {
	return t.game.PerformAction(userID, action)
}

func (t *Table) Results() ([]models.Winner, error) {
	return t.game.Results()
}

func (t *Table) Snapshot() *models.GameState {
	return t.state
}

func (t *Table) Game() *Game {
	return t.game
}
