package tictactoe

type Outcome uint8

const (
	StillPlaying Outcome = iota
	FirstWins
	SecondWins
	Draw
)

// WinFor - returns the winning outcome for the given mark.
func WinFor(mark Mark) Outcome {
	if mark == First {
		return FirstWins
	}
	return SecondWins
}

func (that Outcome) IsTerminal() bool {
	return that != StillPlaying
}

func (that Outcome) Winner() (Mark, bool) {
	switch that {
	case FirstWins:
		return First, true
	case SecondWins:
		return Second, true
	default:
		return 0, false
	}
}

// Score - +1 when First won, -1 when Second won, 0 otherwise.
func (that Outcome) Score() int8 {
	switch that {
	case FirstWins:
		return 1
	case SecondWins:
		return -1
	default:
		return 0
	}
}

func (that Outcome) String() string {
	switch that {
	case StillPlaying:
		return "playing"
	case FirstWins:
		return "X wins"
	case SecondWins:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}
