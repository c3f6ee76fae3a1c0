package game

// TurnKind describes how a turn was resolved.
type TurnKind int

const (
	// Played means the player put a combo on the pile.
	Played TurnKind = iota
	// Passed means the player passed and play moved on.
	Passed
	// ControlReset means the pass was the third in a row: the last player
	// to play takes the open table.
	ControlReset
)

var turnKindNames = []string{"played", "passed", "control_reset"}

func (k TurnKind) String() string {
	if k < Played || k > ControlReset {
		return "unknown"
	}
	return turnKindNames[k]
}

// TurnOutcome records a resolved turn.
type TurnOutcome struct {
	Player   int
	Move     Combo
	Kind     TurnKind
	NextTurn int
	GameOver bool
}
