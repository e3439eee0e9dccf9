package network

import (
	"context"
)

// DistanceQuerier answers bounded-depth reachability over the acquaintance
// graph. Implemented by Graph; mocked in service tests.
type DistanceQuerier interface {
	Distance(ctx context.Context, from, to uint64, maxDepth int) (int, bool, error)
}

// Graph is a read-through view over Connection rows. It holds no state of
// its own; adjacency is fetched from the store frontier by frontier.
type Graph struct {
	conns ConnectionRepository
}

func NewGraph(conns ConnectionRepository) *Graph {
	return &Graph{conns: conns}
}

// Distance returns the smallest number of edges connecting from and to,
// searching no deeper than maxDepth. ok is false when the two users are not
// reachable within the cap, including when either is unknown. A user is at
// distance 0 from itself.
func (g *Graph) Distance(ctx context.Context, from, to uint64, maxDepth int) (int, bool, error) {
	if from == to {
		return 0, true, nil
	}
	if maxDepth < 1 {
		return 0, false, nil
	}

	visited := map[uint64]bool{from: true}
	frontier := []uint64{from}

	for depth := 1; depth <= maxDepth; depth++ {
		var next []uint64
		for _, node := range frontier {
			neighbors, err := g.conns.Neighbors(ctx, node)
			if err != nil {
				return 0, false, err
			}
			for _, n := range neighbors {
				if n == to {
					return depth, true, nil
				}
				if !visited[n] {
					visited[n] = true
					next = append(next, n)
				}
			}
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}

	return 0, false, nil
}
