package maze

import (
	"gamesearch/structures"
	"gamesearch/utils"
)

// Node is a step of a search, linked back to the step it came from.
type Node struct {
	Location Location
	Parent   *Node
	Cost     int // Steps from start
	Priority int // Cost plus heuristic, A* only
}

// Path returns the locations from the start to this node.
func (n *Node) Path() []Location {
	var path []Location
	for node := n; node != nil; node = node.Parent {
		path = append(path, node.Location)
	}
	utils.Reverse(path)
	return path
}

type frontier interface {
	Push(*Node)
	Pop() (*Node, error)
	Empty() bool
}

// DFS searches depth first. The path found is not necessarily the shortest.
func (m *Maze) DFS() (*Node, bool) {
	return m.uninformed(structures.NewStack[*Node]())
}

// BFS searches breadth first and finds a shortest path.
func (m *Maze) BFS() (*Node, bool) {
	return m.uninformed(structures.NewQueue[*Node]())
}

func (m *Maze) uninformed(f frontier) (*Node, bool) {
	f.Push(&Node{Location: m.start})
	explored := map[Location]bool{m.start: true}
	for !f.Empty() {
		current, err := f.Pop()
		if err != nil {
			break
		}
		if current.Location == m.goal {
			return current, true
		}

		for _, next := range m.Successors(current.Location) {
			if !explored[next] {
				explored[next] = true
				f.Push(&Node{Location: next, Parent: current, Cost: current.Cost + 1})
			}
		}
	}
	return nil, false
}

// Heuristic is the Manhattan distance from loc to the goal.
func (m *Maze) Heuristic(loc Location) int {
	return abs(loc.Row-m.goal.Row) + abs(loc.Col-m.goal.Col)
}

// AStar searches by cost from start plus Manhattan distance to the goal and
// finds a shortest path.
func (m *Maze) AStar() (*Node, bool) {
	f := structures.NewPriorityQueue(func(a, b *Node) bool {
		return a.Priority < b.Priority
	})
	f.Push(&Node{Location: m.start, Priority: m.Heuristic(m.start)})
	costs := map[Location]int{m.start: 0}
	for !f.Empty() {
		current, err := f.Pop()
		if err != nil {
			break
		}
		if current.Location == m.goal {
			return current, true
		}
		if current.Cost > costs[current.Location] { // Stale entry
			continue
		}

		cost := current.Cost + 1
		for _, next := range m.Successors(current.Location) {
			if known, ok := costs[next]; !ok || cost < known {
				costs[next] = cost
				f.Push(&Node{Location: next, Parent: current, Cost: cost, Priority: cost + m.Heuristic(next)})
			}
		}
	}
	return nil, false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
