package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdem-engine/engine"
	"holdem-engine/models"
)

func newTestHandler() *CommandHandler {
	defaults := models.TableConfig{SmallBlind: 5, BigBlind: 10, MaxPlayers: 9}
	return NewCommandHandler(engine.NewTableManager(), defaults)
}

func createTable(t *testing.T, h *CommandHandler) string {
	t.Helper()
	resp := h.Handle(models.Command{Command: "table.create", Data: map[string]interface{}{
		"smallBlind": float64(10),
		"bigBlind":   float64(20),
		"maxPlayers": float64(6),
	}})
	require.True(t, resp.Success, resp.Error)
	data, ok := resp.Data.(map[string]string)
	require.True(t, ok)
	require.NotEmpty(t, data["tableId"])
	return data["tableId"]
}

func joinPlayer(t *testing.T, h *CommandHandler, tableID, userID, username string, seat int) {
	t.Helper()
	resp := h.Handle(models.Command{Command: "player.join", Data: map[string]interface{}{
		"tableId":    tableID,
		"userId":     userID,
		"username":   username,
		"seatNumber": float64(seat),
		"buyIn":      float64(1000),
	}})
	require.True(t, resp.Success, resp.Error)
}

func TestUnknownCommandIsRejected(t *testing.T) {
	h := newTestHandler()
	resp := h.Handle(models.Command{Command: "table.explode"})
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "unknown command")
}

func TestCreateTableFallsBackToDefaults(t *testing.T) {
	h := newTestHandler()
	resp := h.Handle(models.Command{Command: "table.create", Data: map[string]interface{}{}})
	require.True(t, resp.Success, resp.Error)
	id := resp.Data.(map[string]string)["tableId"]

	getResp := h.Handle(models.Command{Command: "table.get", Data: map[string]interface{}{"tableId": id}})
	require.True(t, getResp.Success)
	state := getResp.Data.(*models.GameState)
	assert.Equal(t, 5, state.Config.SmallBlind)
	assert.Equal(t, 10, state.Config.BigBlind)
	assert.Equal(t, 9, state.Config.MaxPlayers)
}

func TestCreateAndListTables(t *testing.T) {
	h := newTestHandler()
	id := createTable(t, h)

	resp := h.Handle(models.Command{Command: "table.list"})
	require.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, []string{id}, data["tables"])
}

func TestPlayerJoinAutoAssignsSeat(t *testing.T) {
	h := newTestHandler()
	id := createTable(t, h)
	joinPlayer(t, h, id, "p0", "Alice", 0)

	// seat -1 asks the handler to pick the first free seat
	resp := h.Handle(models.Command{Command: "player.join", Data: map[string]interface{}{
		"tableId":    id,
		"userId":     "p1",
		"username":   "Bob",
		"seatNumber": float64(-1),
		"buyIn":      float64(1000),
	}})
	require.True(t, resp.Success, resp.Error)
	data := resp.Data.(map[string]int)
	assert.Equal(t, 1, data["seatNumber"])
}

func TestGameActionRejectsUnknownActionName(t *testing.T) {
	h := newTestHandler()
	id := createTable(t, h)
	joinPlayer(t, h, id, "p0", "Alice", 0)
	joinPlayer(t, h, id, "p1", "Bob", 1)

	resp := h.Handle(models.Command{Command: "game.start", Data: map[string]interface{}{"tableId": id}})
	require.True(t, resp.Success, resp.Error)

	resp = h.Handle(models.Command{Command: "game.action", Data: map[string]interface{}{
		"tableId": id,
		"userId":  "p0",
		"action":  "shove",
	}})
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestGameActionReturnsUpdatedState(t *testing.T) {
	h := newTestHandler()
	id := createTable(t, h)
	joinPlayer(t, h, id, "p0", "Alice", 0)
	joinPlayer(t, h, id, "p1", "Bob", 1)

	resp := h.Handle(models.Command{Command: "game.start", Data: map[string]interface{}{"tableId": id}})
	require.True(t, resp.Success, resp.Error)

	getResp := h.Handle(models.Command{Command: "table.get", Data: map[string]interface{}{"tableId": id}})
	require.True(t, getResp.Success)
	gs := getResp.Data.(*models.GameState)
	actor := gs.Players[gs.CurrentPlayerIndex]

	resp = h.Handle(models.Command{Command: "game.action", Data: map[string]interface{}{
		"tableId": id,
		"userId":  actor.UserID,
		"action":  "call",
	}})
	require.True(t, resp.Success, resp.Error)
	updated, ok := resp.Data.(*models.GameState)
	require.True(t, ok)
	assert.Equal(t, 40, updated.Pot.Main)
}

func TestResultsBeforeHandCompletesFails(t *testing.T) {
	h := newTestHandler()
	id := createTable(t, h)
	joinPlayer(t, h, id, "p0", "Alice", 0)
	joinPlayer(t, h, id, "p1", "Bob", 1)

	resp := h.Handle(models.Command{Command: "game.start", Data: map[string]interface{}{"tableId": id}})
	require.True(t, resp.Success, resp.Error)

	resp = h.Handle(models.Command{Command: "game.results", Data: map[string]interface{}{"tableId": id}})
	assert.False(t, resp.Success)
}
