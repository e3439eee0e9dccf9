package network

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// graphFromAdjacency wires a mock repository to serve a fixed adjacency map.
func graphFromAdjacency(ctrl *gomock.Controller, adj map[uint64][]uint64) *Graph {
	repo := NewMockConnectionRepository(ctrl)
	repo.EXPECT().Neighbors(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, userID uint64) ([]uint64, error) {
			return adj[userID], nil
		}).AnyTimes()
	return NewGraph(repo)
}

func TestGraph_Distance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	// Chain: 1-2, 2-3, 3-4, plus an isolated 9.
	chain := map[uint64][]uint64{
		1: {2},
		2: {1, 3},
		3: {2, 4},
		4: {3},
	}

	tests := []struct {
		name     string
		adj      map[uint64][]uint64
		from, to uint64
		maxDepth int
		wantDist int
		wantOK   bool
	}{
		{name: "self is distance zero", adj: chain, from: 1, to: 1, maxDepth: 3, wantDist: 0, wantOK: true},
		{name: "direct connection", adj: chain, from: 1, to: 2, maxDepth: 3, wantDist: 1, wantOK: true},
		{name: "chain end reachable at cap", adj: chain, from: 1, to: 4, maxDepth: 3, wantDist: 3, wantOK: true},
		{name: "chain end beyond cap", adj: chain, from: 1, to: 4, maxDepth: 2, wantOK: false},
		{name: "isolated node unreachable", adj: chain, from: 1, to: 9, maxDepth: 5, wantOK: false},
		{name: "unknown start unreachable", adj: chain, from: 42, to: 1, maxDepth: 5, wantOK: false},
		{name: "zero depth only matches self", adj: chain, from: 1, to: 2, maxDepth: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := graphFromAdjacency(ctrl, tt.adj)
			dist, ok, err := g.Distance(ctx, tt.from, tt.to, tt.maxDepth)
			require.NoError(t, err)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.Equal(t, tt.wantDist, dist)
			}
		})
	}
}

func TestGraph_Distance_ShortestPathThroughCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Two routes from 1 to 5: through 2 (length 2) and through 3-4 (length 3).
	adj := map[uint64][]uint64{
		1: {2, 3},
		2: {1, 5},
		3: {1, 4},
		4: {3, 5},
		5: {2, 4},
	}

	g := graphFromAdjacency(ctrl, adj)
	dist, ok, err := g.Distance(context.Background(), 1, 5, 5)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, dist)
}

func TestGraph_Distance_NeverExceedsCap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Long chain 1..10.
	adj := map[uint64][]uint64{}
	for i := uint64(1); i < 10; i++ {
		adj[i] = append(adj[i], i+1)
		adj[i+1] = append(adj[i+1], i)
	}

	g := graphFromAdjacency(ctrl, adj)
	for cap := 1; cap <= 6; cap++ {
		dist, ok, err := g.Distance(context.Background(), 1, 10, cap)
		require.NoError(t, err)
		require.False(t, ok, "cap %d should not reach node 10", cap)
		require.LessOrEqual(t, dist, cap)
	}

	dist, ok, err := g.Distance(context.Background(), 1, 10, 9)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 9, dist)
}

func TestGraph_Distance_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockConnectionRepository(ctrl)
	repo.EXPECT().Neighbors(gomock.Any(), uint64(1)).Return(nil, errors.New("db is down"))

	g := NewGraph(repo)
	_, ok, err := g.Distance(context.Background(), 1, 2, 3)
	require.Error(t, err)
	require.False(t, ok)
}
