package tictactoe

import (
	"errors"
	"fmt"
)

// Mark is the symbol a side puts on the board. First always moves first.
type Mark uint8

const (
	First Mark = iota
	Second
)

const (
	markFirst  = "X"
	markSecond = "O"
)

var ErrInvalidMark = errors.New("invalid mark")

func (that Mark) Valid() bool {
	return that == First || that == Second
}

// Opponent - returns the mark that moves after this one.
func (that Mark) Opponent() Mark {
	if that == First {
		return Second
	}
	return First
}

func (that Mark) String() string {
	switch that {
	case First:
		return markFirst
	case Second:
		return markSecond
	default:
		return fmt.Sprintf("Mark(%d)", uint8(that))
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	if !that.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMark, uint8(that))
	}

	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = mark

	return nil
}

// ParseMark - converts "X"/"O" into a Mark.
func ParseMark(s string) (Mark, error) {
	switch s {
	case markFirst:
		return First, nil
	case markSecond:
		return Second, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMark, s)
	}
}
