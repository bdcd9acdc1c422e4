package server

import (
	"fmt"
	"strconv"

	"holdem-engine/engine"
	"holdem-engine/models"
)

type CommandHandler struct {
	tableManager *engine.TableManager
	defaults     models.TableConfig
}

// NewCommandHandler builds a handler; defaults fill in blind sizes and
// table capacity omitted from table.create commands.
func NewCommandHandler(tableManager *engine.TableManager, defaults models.TableConfig) *CommandHandler {
	return &CommandHandler{tableManager: tableManager, defaults: defaults}
}

func (h *CommandHandler) Handle(cmd models.Command) models.Response {
	switch cmd.Command {
	case "table.create":
		return h.handleCreateTable(cmd.Data)
	case "table.destroy":
		return h.handleDestroyTable(cmd.Data)
	case "table.get":
		return h.handleGetTable(cmd.Data)
	case "table.list":
		return h.handleListTables()
	case "player.join":
		return h.handlePlayerJoin(cmd.Data)
	case "player.leave":
		return h.handlePlayerLeave(cmd.Data)
	case "player.addChips":
		return h.handleAddChips(cmd.Data)
	case "game.start":
		return h.handleGameStart(cmd.Data)
	case "game.action":
		return h.handleGameAction(cmd.Data)
	case "game.dealNewHand":
		return h.handleDealNewHand(cmd.Data)
	case "game.results":
		return h.handleGameResults(cmd.Data)
	default:
		return models.Response{Success: false, Error: fmt.Sprintf("unknown command: %s", cmd.Command)}
	}
}

func (h *CommandHandler) handleCreateTable(data map[string]interface{}) models.Response {
	config := models.TableConfig{
		SmallBlind: getIntDefault(data, "smallBlind", h.defaults.SmallBlind),
		BigBlind:   getIntDefault(data, "bigBlind", h.defaults.BigBlind),
		MaxPlayers: getIntDefault(data, "maxPlayers", h.defaults.MaxPlayers),
		MinBuyIn:   getInt(data, "minBuyIn"),
		MaxBuyIn:   getInt(data, "maxBuyIn"),
	}

	tableID, err := h.tableManager.CreateTable(getString(data, "tableId"), config)
	if err != nil {
		return models.Response{Success: false, Error: err.Error()}
	}
	return models.Response{Success: true, Data: map[string]string{"tableId": tableID}}
}

func (h *CommandHandler) handleDestroyTable(data map[string]interface{}) models.Response {
	if err := h.tableManager.DestroyTable(getString(data, "tableId")); err != nil {
		return models.Response{Success: false, Error: err.Error()}
	}
	return models.Response{Success: true}
}

func (h *CommandHandler) handleGetTable(data map[string]interface{}) models.Response {
	state, err := h.tableManager.GetTable(getString(data, "tableId"))
	if err != nil {
		return models.Response{Success: false, Error: err.Error()}
	}
	return models.Response{Success: true, Data: state}
}

func (h *CommandHandler) handleListTables() models.Response {
	return models.Response{Success: true, Data: map[string]interface{}{"tables": h.tableManager.ListTables()}}
}

func (h *CommandHandler) handlePlayerJoin(data map[string]interface{}) models.Response {
	tableID := getString(data, "tableId")
	seatNumber := getInt(data, "seatNumber")

	// Auto-assign a seat when none is requested.
	state, err := h.tableManager.GetTable(tableID)
	if err != nil {
		return models.Response{Success: false, Error: err.Error()}
	}
	if seatNumber < 0 || seatNumber >= len(state.Players) {
		seatNumber = -1
		for i, p := range state.Players {
			if p == nil {
				seatNumber = i
				break
			}
		}
		if seatNumber < 0 {
			return models.Response{Success: false, Error: "no available seats"}
		}
	}

	err = h.tableManager.AddPlayer(tableID, getString(data, "userId"), getString(data, "username"), seatNumber, getInt(data, "buyIn"))
	if err != nil {
		return models.Response{Success: false, Error: err.Error()}
	}
	return models.Response{Success: true, Data: map[string]int{"seatNumber": seatNumber}}
}

func (h *CommandHandler) handlePlayerLeave(data map[string]interface{}) models.Response {
	if err := h.tableManager.RemovePlayer(getString(data, "tableId"), getString(data, "userId")); err != nil {
		return models.Response{Success: false, Error: err.Error()}
	}
	return models.Response{Success: true}
}

func (h *CommandHandler) handleAddChips(data map[string]interface{}) models.Response {
	if err := h.tableManager.AddChips(getString(data, "tableId"), getString(data, "userId"), getInt(data, "amount")); err != nil {
		return models.Response{Success: false, Error: err.Error()}
	}
	return models.Response{Success: true}
}

func (h *CommandHandler) handleGameStart(data map[string]interface{}) models.Response {
	if err := h.tableManager.StartGame(getString(data, "tableId")); err != nil {
		return models.Response{Success: false, Error: err.Error()}
	}
	return models.Response{Success: true}
}

func (h *CommandHandler) handleGameAction(data map[string]interface{}) models.Response {
	tableID := getString(data, "tableId")

	action, err := models.ParseAction(getString(data, "action"), getInt(data, "amount"))
	if err != nil {
		return models.Response{Success: false, Error: err.Error()}
	}

	if err := h.tableManager.PerformAction(tableID, getString(data, "userId"), action); err != nil {
		return models.Response{Success: false, Error: err.Error()}
	}

	state, _ := h.tableManager.GetTable(tableID)
	return models.Response{Success: true, Data: state}
}

func (h *CommandHandler) handleDealNewHand(data map[string]interface{}) models.Response {
	if err := h.tableManager.DealNewHand(getString(data, "tableId")); err != nil {
		return models.Response{Success: false, Error: err.Error()}
	}
	return models.Response{Success: true}
}

func (h *CommandHandler) handleGameResults(data map[string]interface{}) models.Response {
	winners, err := h.tableManager.Results(getString(data, "tableId"))
	if err != nil {
		return models.Response{Success: false, Error: err.Error()}
	}
	return models.Response{Success: true, Data: map[string]interface{}{"winners": winners}}
}

func getString(data map[string]interface{}, key string) string {
	if val, ok := data[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getIntDefault(data map[string]interface{}, key string, fallback int) int {
	if v := getInt(data, key); v != 0 {
		return v
	}
	return fallback
}

func getInt(data map[string]interface{}, key string) int {
	if val, ok := data[key]; ok {
		switch v := val.(type) {
		case float64:
			return int(v)
		case int:
			return v
		case string:
			if i, err := strconv.Atoi(v); err == nil {
				return i
			}
		}
	}
	return 0
}
