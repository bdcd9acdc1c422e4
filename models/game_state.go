package models

import "time"

type TableStatus string
type Round string

const (
	StatusWaiting      TableStatus = "waiting"
	StatusPlaying      TableStatus = "playing"
	StatusHandComplete TableStatus = "handComplete"
)

const (
	RoundPreflop  Round = "preflop"
	RoundFlop     Round = "flop"
	RoundTurn     Round = "turn"
	RoundRiver    Round = "river"
	RoundShowdown Round = "showdown"
)

type TableConfig struct {
	SmallBlind int `json:"smallBlind"`
	BigBlind   int `json:"bigBlind"`
	MaxPlayers int `json:"maxPlayers"`
	MinBuyIn   int `json:"minBuyIn,omitempty"`
	MaxBuyIn   int `json:"maxBuyIn,omitempty"`
}

// Pot carries the main pot. The side pot list exists on the aggregate
// but is never populated: all-in players share in the full pot.
type Pot struct {
	Main int       `json:"main"`
	Side []SidePot `json:"side,omitempty"`
}

type SidePot struct {
	Amount          int      `json:"amount"`
	EligiblePlayers []string `json:"eligiblePlayers"`
}

type Winner struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Amount   int    `json:"amount"`
	HandRank string `json:"handRank"`
	BestHand []Card `json:"bestHand,omitempty"`
}

// HistoryEntry is one append-only action log record. Player is nil for
// entries not attributable to a seat (hand start, round advance).
type HistoryEntry struct {
	ID        string  `json:"id"`
	Player    *string `json:"player"`
	Action    string  `json:"action"`
	Amount    *int    `json:"amount"`
	Round     Round   `json:"round"`
	Timestamp int64   `json:"timestamp"`
}

// GameState is the aggregate the engine mutates and the transport
// layer serializes. Seats are addressed by index only.
type GameState struct {
	TableID            string         `json:"tableId"`
	Status             TableStatus    `json:"status"`
	Config             TableConfig    `json:"config"`
	Players            []*Player      `json:"players"`
	HandNumber         int            `json:"handNumber"`
	DealerPosition     int            `json:"dealerPosition"`
	SmallBlindPosition int            `json:"smallBlindPosition"`
	BigBlindPosition   int            `json:"bigBlindPosition"`
	CurrentPlayerIndex int            `json:"currentPlayerIndex"`
	CurrentRound       Round          `json:"currentRound"`
	Pot                Pot            `json:"pot"`
	CurrentBet         int            `json:"currentBet"`
	MinRaise           int            `json:"minRaise"`
	CommunityCards     []Card         `json:"communityCards"`
	ActionHistory      []HistoryEntry `json:"actionHistory"`
	Winners            []Winner       `json:"winners,omitempty"`
	HandInProgress     bool           `json:"handInProgress"`
	Deck               *Deck          `json:"-"`
	CreatedAt          time.Time      `json:"createdAt"`
}
