package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"holdem-engine/models"
)

// Game runs one table's hands end-to-end: blinds, betting streets,
// community cards, showdown and pot distribution. It owns the
// aggregate for the duration of a hand and serializes every action
// behind its mutex; distinct games share nothing.
type Game struct {
	state     *models.GameState
	finder    *PositionFinder
	processor *ActionProcessor
	validator *TurnValidator
	mu        sync.Mutex
}

func NewGame(state *models.GameState) *Game {
	return &Game{
		state:     state,
		finder:    NewPositionFinder(state.Players),
		processor: NewActionProcessor(state),
		validator: NewTurnValidator(state),
	}
}

// StartNewHand resets all per-hand state, rotates the button, posts
// the blinds and deals hole cards. Chip balances and positions carry
// over from the previous hand.
func (g *Game) StartNewHand() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.startHand()
}

func (g *Game) startHand() error {
	if g.state.HandInProgress {
		return stateErrorf("hand already in progress")
	}

	participants := countPlayers(g.state.Players, hasChipsForHand)
	if participants < 2 {
		g.state.Status = models.StatusWaiting
		return ErrNotEnoughPlayers
	}

	g.state.Winners = nil
	g.state.ActionHistory = make([]models.HistoryEntry, 0, 32)
	g.state.CommunityCards = make([]models.Card, 0, 5)
	g.state.Pot = models.Pot{Main: 0, Side: []models.SidePot{}}
	g.state.Deck = models.NewDeck()

	for _, p := range g.state.Players {
		if p != nil {
			p.ResetForHand()
		}
	}

	// Seats dealt into this hand are fixed before the blinds move any
	// chips: a blind post can leave its seat all-in.
	dealt := make([]int, 0, len(g.state.Players))
	for i, p := range g.state.Players {
		if hasChipsForHand(p) {
			dealt = append(dealt, i)
		}
	}

	dealerPos := g.findNextDealer()
	sbPos, bbPos := g.finder.calculateBlindPositions(dealerPos, participants)

	g.state.HandNumber++
	g.state.DealerPosition = dealerPos
	g.state.SmallBlindPosition = sbPos
	g.state.BigBlindPosition = bbPos
	g.state.CurrentRound = models.RoundPreflop
	g.state.CurrentBet = g.state.Config.BigBlind
	g.state.MinRaise = g.state.Config.BigBlind
	g.state.HandInProgress = true
	g.state.Status = models.StatusPlaying

	g.recordSystemEntry("handStarted")

	if sb := g.state.Players[sbPos]; sb != nil {
		moved := g.processor.commit(sb, g.state.Config.SmallBlind)
		// posting counts as having acted; the small blind still has to
		// match the big blind before the round can close
		sb.HasActed = true
		g.recordPlayerEntry(sb, "smallBlind", &moved)
	}
	if bb := g.state.Players[bbPos]; bb != nil {
		moved := g.processor.commit(bb, g.state.Config.BigBlind)
		// the big blind keeps the option to raise
		g.recordPlayerEntry(bb, "bigBlind", &moved)
	}

	for _, i := range dealt {
		g.state.Players[i].HoleCards = g.state.Deck.DealMultiple(2)
	}

	g.state.CurrentPlayerIndex = g.finder.findNextActor(bbPos)

	// Blinds can leave nobody able to act (both all-in heads-up).
	if g.isBettingRoundComplete() {
		g.advanceRound()
	}
	return nil
}

// PerformAction validates and applies one action for the seat whose
// turn it is, then advances the turn, the street, or the hand. A
// rejected action leaves no trace.
func (g *Game) PerformAction(userID string, action models.Action) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	player, err := g.validator.ValidateTurn(userID)
	if err != nil {
		return err
	}

	moved := 0
	switch a := action.(type) {
	case models.Fold:
		g.processor.processFold(player)
	case models.Check:
		_, err = g.processor.processCheck(player)
	case models.Call:
		moved = g.processor.processCall(player)
	case models.Bet:
		moved, err = g.processor.processBet(player, a.Amount)
	case models.Raise:
		moved, err = g.processor.processRaise(player, a.Amount)
	default:
		return validationErrorf("unsupported action")
	}
	if err != nil {
		return err
	}

	player.HasActed = true

	var amount *int
	switch action.Kind() {
	case models.ActionCall, models.ActionBet, models.ActionRaise:
		amount = &moved
	}
	g.recordPlayerEntry(player, string(action.Kind()), amount)

	if countPlayers(g.state.Players, isUnfolded) == 1 {
		g.awardByDefault()
		return nil
	}

	if g.isBettingRoundComplete() {
		g.advanceRound()
	} else {
		g.state.CurrentPlayerIndex = g.finder.findNextActor(g.state.CurrentPlayerIndex)
	}
	return nil
}

// ForceFold folds a player out of turn, for seats leaving mid-hand.
// If the fold ends the round or the hand, the game moves on so the
// turn pointer never rests on the vacated seat.
func (g *Game) ForceFold(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.state.HandInProgress {
		return
	}
	player := findPlayerByID(g.state.Players, userID)
	if player == nil || player.HasFolded {
		return
	}

	g.processor.processFold(player)
	player.HasActed = true
	g.recordPlayerEntry(player, string(models.ActionFold), nil)

	if countPlayers(g.state.Players, isUnfolded) == 1 {
		g.awardByDefault()
		return
	}

	wasCurrent := g.state.Players[g.state.CurrentPlayerIndex] == player
	if g.isBettingRoundComplete() {
		g.advanceRound()
	} else if wasCurrent {
		g.state.CurrentPlayerIndex = g.finder.findNextActor(g.state.CurrentPlayerIndex)
	}
}

// Snapshot exposes the aggregate for serialization by the transport
// layer. Callers must not mutate it.
func (g *Game) Snapshot() *models.GameState {
	return g.state
}

// Results returns the winners of the last completed hand. Requesting
// them while a hand is still running is a state error.
func (g *Game) Results() ([]models.Winner, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.HandInProgress || g.state.Winners == nil {
		return nil, stateErrorf("hand results are not available until the hand completes")
	}
	return g.state.Winners, nil
}

// isBettingRoundComplete reports whether every seat still able to act
// has acted this street and matched the table bet.
func (g *Game) isBettingRoundComplete() bool {
	needToAct := 0
	for _, p := range g.state.Players {
		if !canAct(p) {
			continue
		}
		if !p.HasActed || p.CurrentBet < g.state.CurrentBet {
			needToAct++
		}
	}
	return needToAct == 0
}

func (g *Game) advanceRound() {
	resetPlayersForNewRound(g.state.Players)
	g.state.CurrentBet = 0
	// the minimum raise carries over between streets

	// With at most one seat able to act, betting is over for the hand:
	// run out the board and settle at showdown.
	if countPlayers(g.state.Players, canAct) <= 1 {
		g.runOutBoard()
		g.showdown()
		return
	}

	switch g.state.CurrentRound {
	case models.RoundPreflop:
		g.dealCommunity(3)
		g.state.CurrentRound = models.RoundFlop
	case models.RoundFlop:
		g.dealCommunity(1)
		g.state.CurrentRound = models.RoundTurn
	case models.RoundTurn:
		g.dealCommunity(1)
		g.state.CurrentRound = models.RoundRiver
	case models.RoundRiver:
		g.showdown()
		return
	}

	g.recordSystemEntry("roundAdvanced")
	g.state.CurrentPlayerIndex = g.finder.findNextActor(g.state.DealerPosition)
}

func (g *Game) runOutBoard() {
	for g.state.CurrentRound != models.RoundRiver {
		switch g.state.CurrentRound {
		case models.RoundPreflop:
			g.dealCommunity(3)
			g.state.CurrentRound = models.RoundFlop
		case models.RoundFlop:
			g.dealCommunity(1)
			g.state.CurrentRound = models.RoundTurn
		case models.RoundTurn:
			g.dealCommunity(1)
			g.state.CurrentRound = models.RoundRiver
		default:
			return
		}
	}
}

func (g *Game) dealCommunity(n int) {
	g.state.CommunityCards = append(g.state.CommunityCards, g.state.Deck.DealMultiple(n)...)
}

func (g *Game) showdown() {
	g.state.CurrentRound = models.RoundShowdown

	evals := evaluateShowdown(g.state.Players, g.state.CommunityCards)
	winners := findWinners(evals)
	g.state.Winners = distributePot(g.state.Pot.Main, winners)
	g.state.Pot.Main = 0
	g.finishHand()
}

// awardByDefault hands the whole pot to the last unfolded player
// without evaluating anything.
func (g *Game) awardByDefault() {
	remaining := unfoldedPlayers(g.state.Players)
	if len(remaining) != 1 {
		return
	}

	winner := remaining[0]
	amount := g.state.Pot.Main
	winner.AddChips(amount)
	g.state.Pot.Main = 0
	g.state.Winners = []models.Winner{{
		UserID:   winner.UserID,
		Username: winner.Username,
		Amount:   amount,
		HandRank: "Winner by default",
		BestHand: winner.HoleCards,
	}}
	g.finishHand()
}

func (g *Game) finishHand() {
	g.state.HandInProgress = false
	g.state.Status = models.StatusHandComplete
	g.recordSystemEntry("handComplete")
}

func (g *Game) findNextDealer() int {
	if g.state.DealerPosition < 0 || g.state.DealerPosition >= len(g.state.Players) {
		return g.finder.findFirstWithChips()
	}
	return g.finder.findNextWithChips(g.state.DealerPosition)
}

func (g *Game) recordPlayerEntry(p *models.Player, action string, amount *int) {
	username := p.Username
	g.state.ActionHistory = append(g.state.ActionHistory, models.HistoryEntry{
		ID:        uuid.NewString(),
		Player:    &username,
		Action:    action,
		Amount:    amount,
		Round:     g.state.CurrentRound,
		Timestamp: time.Now().UnixMilli(),
	})
}

func (g *Game) recordSystemEntry(action string) {
	g.state.ActionHistory = append(g.state.ActionHistory, models.HistoryEntry{
		ID:        uuid.NewString(),
		Action:    action,
		Round:     g.state.CurrentRound,
		Timestamp: time.Now().UnixMilli(),
	})
}
