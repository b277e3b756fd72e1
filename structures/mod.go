// Package structures holds the frontier containers used by the search
// algorithms: a LIFO Stack, a FIFO Queue and a min-heap PriorityQueue.
package structures

import "errors"

var ErrEmptyContainer = errors.New("container is empty")
