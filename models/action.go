package models

import "fmt"

type ActionKind string

const (
	ActionFold  ActionKind = "fold"
	ActionCheck ActionKind = "check"
	ActionCall  ActionKind = "call"
	ActionBet   ActionKind = "bet"
	ActionRaise ActionKind = "raise"
)

// Action is a player decision. Each kind is its own variant so that an
// amount can only appear where one is meaningful.
type Action interface {
	Kind() ActionKind
}

type Fold struct{}

func (Fold) Kind() ActionKind { return ActionFold }

type Check struct{}

func (Check) Kind() ActionKind { return ActionCheck }

type Call struct{}

func (Call) Kind() ActionKind { return ActionCall }

// Bet opens the betting on a street. Amount is the absolute wager.
type Bet struct {
	Amount int
}

func (Bet) Kind() ActionKind { return ActionBet }

// Raise increases an outstanding bet. Amount is the new absolute
// table-bet target, not the increment.
type Raise struct {
	Amount int
}

func (Raise) Kind() ActionKind { return ActionRaise }

// ParseAction builds an Action from its wire form. The amount is only
// consulted for bet and raise.
func ParseAction(kind string, amount int) (Action, error) {
	switch ActionKind(kind) {
	case ActionFold:
		return Fold{}, nil
	case ActionCheck:
		return Check{}, nil
	case ActionCall:
		return Call{}, nil
	case ActionBet:
		return Bet{Amount: amount}, nil
	case ActionRaise:
		return Raise{Amount: amount}, nil
	default:
		return nil, fmt.Errorf("unknown action: %s", kind)
	}
}
