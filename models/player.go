package models

// Player is one seat's state: a persistent identity and chip balance,
// plus per-hand wager state that is reset when a new hand starts.
type Player struct {
	UserID     string `json:"userId"`
	Username   string `json:"username"`
	SeatNumber int    `json:"seatNumber"`
	Chips      int    `json:"chips"`

	HoleCards  []Card `json:"holeCards,omitempty"`
	CurrentBet int    `json:"currentBet"`
	TotalBet   int    `json:"totalBet"`
	HasFolded  bool   `json:"hasFolded"`
	HasActed   bool   `json:"-"`
	IsAllIn    bool   `json:"isAllIn"`
	SittingOut bool   `json:"sittingOut,omitempty"`

	LastAction       string `json:"lastAction,omitempty"`
	LastActionAmount int    `json:"lastActionAmount,omitempty"`
}

func NewPlayer(userID, username string, seatNumber, chips int) *Player {
	return &Player{
		UserID:     userID,
		Username:   username,
		SeatNumber: seatNumber,
		Chips:      chips,
	}
}

// ResetForHand clears all per-hand fields. Chips and identity persist.
func (p *Player) ResetForHand() {
	p.HoleCards = nil
	p.CurrentBet = 0
	p.TotalBet = 0
	p.HasFolded = false
	p.HasActed = false
	p.IsAllIn = false
	p.LastAction = ""
	p.LastActionAmount = 0
}

func (p *Player) AddChips(amount int) {
	p.Chips += amount
}

// CommitChips moves up to amount chips from the player's balance into
// their street and hand totals, returning how much actually moved. A
// player whose balance empties is all-in.
func (p *Player) CommitChips(amount int) int {
	if amount > p.Chips {
		amount = p.Chips
	}
	p.Chips -= amount
	p.CurrentBet += amount
	p.TotalBet += amount
	if p.Chips == 0 {
		p.IsAllIn = true
	}
	return amount
}
