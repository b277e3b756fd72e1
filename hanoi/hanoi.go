// Package hanoi solves the Towers of Hanoi on three Stack towers.
package hanoi

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"gamesearch/structures"
)

var ErrInvalidDiskCount = errors.New("disk count must be at least 1")

// Tower is a named stack of disks, largest at the bottom.
type Tower struct {
	Name  string
	disks *structures.Stack[int]
}

func NewTower(name string) *Tower {
	return &Tower{Name: name, disks: structures.NewStack[int]()}
}

// Disks returns the disks bottom first.
func (t *Tower) Disks() []int {
	return t.disks.Items()
}

func (t *Tower) String() string {
	return fmt.Sprintf("%s: %v", t.Name, t.Disks())
}

type Step struct {
	Disk     int
	From, To string
}

type solver struct {
	steps []Step
}

// Solve moves n disks from tower A to tower C using B, returning the three
// towers and the 2^n-1 steps taken.
func Solve(n int) ([3]*Tower, []Step, error) {
	a, b, c := NewTower("A"), NewTower("B"), NewTower("C")
	if n < 1 {
		return [3]*Tower{a, b, c}, nil, fmt.Errorf("%w, got %d", ErrInvalidDiskCount, n)
	}
	for disk := n; disk >= 1; disk-- {
		a.disks.Push(disk)
	}

	s := &solver{}
	if err := s.move(a, c, b, n); err != nil {
		return [3]*Tower{a, b, c}, s.steps, err
	}
	log.Debug().Int("disks", n).Int("steps", len(s.steps)).Msg("hanoi-solved")
	return [3]*Tower{a, b, c}, s.steps, nil
}

func (s *solver) move(from, to, via *Tower, n int) error {
	if n == 1 {
		disk, err := from.disks.Pop()
		if err != nil {
			return fmt.Errorf("tower %s: %w", from.Name, err)
		}
		if top, err := to.disks.Peek(); err == nil && top < disk {
			return fmt.Errorf("cannot place disk %d on disk %d", disk, top)
		}
		to.disks.Push(disk)
		s.steps = append(s.steps, Step{Disk: disk, From: from.Name, To: to.Name})
		log.Trace().Msgf("disk %d %s -> %s", disk, from.Name, to.Name)
		return nil
	}
	if err := s.move(from, via, to, n-1); err != nil {
		return err
	}
	if err := s.move(from, to, via, 1); err != nil {
		return err
	}
	return s.move(via, to, from, n-1)
}
