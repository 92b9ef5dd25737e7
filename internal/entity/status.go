package entity

// TerminalStatus is derived from a board on demand and never stored as the source of truth.
type TerminalStatus string

const (
	StatusOngoing TerminalStatus = "ongoing"
	StatusWinX    TerminalStatus = "win_x"
	StatusWinO    TerminalStatus = "win_o"
	StatusTie     TerminalStatus = "tie"
)

func (that TerminalStatus) IsTerminal() bool {
	return that != StatusOngoing
}

// Message is the outcome text shown to the human player.
func (that TerminalStatus) Message() string {
	switch that {
	case StatusWinX:
		return "You win!"
	case StatusWinO:
		return "Computer wins!"
	case StatusTie:
		return "It's a tie!"
	default:
		return ""
	}
}
