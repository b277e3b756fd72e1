package game

import "fmt"

// InvalidMoveError is returned by Board.Move when the move is not legal for
// that Board.
type InvalidMoveError struct {
	Move   Move
	Reason string
}

func NewInvalidMoveError(m Move, reason string) error {
	return &InvalidMoveError{Move: m, Reason: reason}
}

func (ime *InvalidMoveError) Error() string {
	return fmt.Sprintf("move %d is invalid: %s", ime.Move, ime.Reason)
}
