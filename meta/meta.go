// meta/meta.go
package meta

// DEFAULT_DEPTH defines the number of plies searched below each candidate move.
const DEFAULT_DEPTH = 8

// FULL_DEPTH searches a tic-tac-toe game to the end from any position.
const FULL_DEPTH = 9

// GO_ROUTINES defines the number of goroutines used for root move search.
const GO_ROUTINES = 4

// MAX_TURNS bounds a game loop for boards that never terminate.
const MAX_TURNS = 300
