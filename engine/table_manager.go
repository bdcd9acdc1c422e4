package engine

import (
	"sync"

	"github.com/google/uuid"

	"holdem-engine/models"
)

// TableManager routes commands to independent tables and fans table
// snapshots out to whoever transports them. Tables share no state.
type TableManager struct {
	tables       map[string]*Table
	mu           sync.RWMutex
	eventChannel chan models.Event
}

func NewTableManager() *TableManager {
	return &TableManager{
		tables:       make(map[string]*Table),
		eventChannel: make(chan models.Event, 100),
	}
}

// CreateTable registers a new table, generating an id when none is
// supplied, and returns the id in use.
func (tm *TableManager) CreateTable(tableID string, config models.TableConfig) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tableID == "" {
		tableID = uuid.NewString()
	}
	if _, exists := tm.tables[tableID]; exists {
		return "", stateErrorf("table already exists")
	}

	tm.tables[tableID] = NewTable(tableID, config)
	return tableID, nil
}

func (tm *TableManager) DestroyTable(tableID string) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if _, exists := tm.tables[tableID]; !exists {
		return stateErrorf("table not found")
	}
	delete(tm.tables, tableID)
	return nil
}

func (tm *TableManager) GetTable(tableID string) (*models.GameState, error) {
	table, err := tm.lookup(tableID)
	if err != nil {
		return nil, err
	}
	return table.Snapshot(), nil
}

func (tm *TableManager) ListTables() []string {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	tableIDs := make([]string, 0, len(tm.tables))
	for id := range tm.tables {
		tableIDs = append(tableIDs, id)
	}
	return tableIDs
}

func (tm *TableManager) AddPlayer(tableID, userID, username string, seatNumber, buyIn int) error {
	table, err := tm.lookup(tableID)
	if err != nil {
		return err
	}
	return table.AddPlayer(userID, username, seatNumber, buyIn)
}

func (tm *TableManager) RemovePlayer(tableID, userID string) error {
	table, err := tm.lookup(tableID)
	if err != nil {
		return err
	}
	return table.RemovePlayer(userID)
}

func (tm *TableManager) AddChips(tableID, userID string, amount int) error {
	table, err := tm.lookup(tableID)
	if err != nil {
		return err
	}
	return table.AddChips(userID, amount)
}

func (tm *TableManager) StartGame(tableID string) error {
	table, err := tm.lookup(tableID)
	if err != nil {
		return err
	}
	if err := table.StartGame(); err != nil {
		return err
	}
	tm.publishSnapshot(tableID, table)
	return nil
}

func (tm *TableManager) DealNewHand(tableID string) error {
	table, err := tm.lookup(tableID)
	if err != nil {
		return err
	}
	if err := table.DealNewHand(); err != nil {
		return err
	}
	tm.publishSnapshot(tableID, table)
	return nil
}

func (tm *TableManager) PerformAction(tableID, userID string, action models.Action) error {
	table, err := tm.lookup(tableID)
	if err != nil {
		return err
	}
	if err := table.PerformAction(userID, action); err != nil {
		return err
	}
	tm.publishSnapshot(tableID, table)
	return nil
}

func (tm *TableManager) Results(tableID string) ([]models.Winner, error) {
	table, err := tm.lookup(tableID)
	if err != nil {
		return nil, err
	}
	return table.Results()
}

// EventChannel carries a post-action snapshot per accepted state
// change, for broadcast by the transport layer.
func (tm *TableManager) EventChannel() <-chan models.Event {
	return tm.eventChannel
}

func (tm *TableManager) lookup(tableID string) (*Table, error) {
	tm.mu.RLock()
	table, exists := tm.tables[tableID]
	tm.mu.RUnlock()

	if !exists {
		return nil, stateErrorf("table not found")
	}
	return table, nil
}

func (tm *TableManager) publishSnapshot(tableID string, table *Table) {
	select {
	case tm.eventChannel <- models.Event{Event: "tableUpdated", TableID: tableID, Data: table.Snapshot()}:
	default:
		// a slow consumer must not block the engine
	}
}
