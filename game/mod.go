package game

// Piece identifies a side. Pieces are compared by value, so implementations
// must be comparable types.
type Piece interface {
	Opposite() Piece
	String() string
}

// Move is an index into a Board's moves, meaningful only for the Board that
// produced it.
type Move int

// NoMove is returned by searches when a Board has no legal moves.
const NoMove Move = -1

// Board is one position of a finite, fully observable, zero-sum two-player
// game. Board should be immutable - Move always returns a new Board and never
// changes the receiver.
type Board interface {
	Turn() Piece
	Move(m Move) (Board, error)
	LegalMoves() []Move
	// IsWin reports whether the side that just moved (the opposite of Turn)
	// has won.
	IsWin() bool
	// Evaluate scores the position from player's perspective: -1 if the game
	// is won and player is on turn (player just lost), +1 if the game is won
	// and player is not on turn, 0 otherwise.
	Evaluate(player Piece) float64
}

// IsDraw reports whether the game ended without a winner.
func IsDraw(b Board) bool {
	return !b.IsWin() && len(b.LegalMoves()) == 0
}

// IsTerminal reports whether the game is over.
func IsTerminal(b Board) bool {
	return b.IsWin() || IsDraw(b)
}

// Winner returns the side that won, or nil if the game is not won.
func Winner(b Board) Piece {
	if !b.IsWin() {
		return nil
	}
	return b.Turn().Opposite()
}
