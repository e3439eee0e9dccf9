package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"profnet/internal/config"
	"profnet/internal/network"
	"profnet/pkg/errors"
)

var testPolicy = config.MessagingConfig{BaseCap: 3, RelaxedCap: 5}

func newAccountIs(isNew bool) NewAccountFunc {
	return func(context.Context, uint64) (bool, error) {
		return isNew, nil
	}
}

func TestAuthorizationGate_Authorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	tests := []struct {
		name     string
		sender   uint64
		receiver uint64
		isNew    bool
		setup    func(graph *network.MockDistanceQuerier)
		wantErr  error
	}{
		{
			name:   "established account uses base cap",
			sender: 1, receiver: 4,
			setup: func(graph *network.MockDistanceQuerier) {
				graph.EXPECT().Distance(ctx, uint64(1), uint64(4), 3).Return(3, true, nil)
			},
		},
		{
			name:   "new account uses relaxed cap",
			sender: 5, receiver: 6, isNew: true,
			setup: func(graph *network.MockDistanceQuerier) {
				graph.EXPECT().Distance(ctx, uint64(5), uint64(6), 5).Return(4, true, nil)
			},
		},
		{
			name:   "unreachable within cap is forbidden",
			sender: 1, receiver: 4,
			setup: func(graph *network.MockDistanceQuerier) {
				graph.EXPECT().Distance(ctx, uint64(1), uint64(4), 3).Return(0, false, nil)
			},
			wantErr: errors.ErrOutsideNetwork,
		},
		{
			name:   "self message denied before any query",
			sender: 1, receiver: 1,
			setup:   func(graph *network.MockDistanceQuerier) {},
			wantErr: errors.ErrSelfMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graph := network.NewMockDistanceQuerier(ctrl)
			tt.setup(graph)
			gate := NewAuthorizationGate(graph, newAccountIs(tt.isNew), testPolicy)

			err := gate.Authorize(ctx, tt.sender, tt.receiver)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAuthorizationGate_SameDistanceDifferentVerdicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	// Receiver sits 4 edges away: denied for an established sender (cap 3),
	// allowed for a new one (cap 5).
	graph := network.NewMockDistanceQuerier(ctrl)
	graph.EXPECT().Distance(ctx, uint64(1), uint64(2), 3).Return(0, false, nil)
	graph.EXPECT().Distance(ctx, uint64(1), uint64(2), 5).Return(4, true, nil)

	established := NewAuthorizationGate(graph, newAccountIs(false), testPolicy)
	require.ErrorIs(t, established.Authorize(ctx, 1, 2), errors.ErrOutsideNetwork)

	fresh := NewAuthorizationGate(graph, newAccountIs(true), testPolicy)
	require.NoError(t, fresh.Authorize(ctx, 1, 2))
}
