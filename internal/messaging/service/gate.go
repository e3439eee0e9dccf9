package service

import (
	"context"

	"profnet/internal/config"
	"profnet/internal/network"
	"profnet/pkg/errors"
)

// NewAccountFunc classifies an account as "new". The classification itself
// (account age, activity) belongs to the surrounding system; the gate only
// consumes the verdict.
type NewAccountFunc func(ctx context.Context, userID uint64) (bool, error)

// AuthorizationGate decides whether a sender may message a receiver. A send
// is allowed when the receiver is within BaseCap edges of the sender, or
// within RelaxedCap edges when the sender's account is new. Boundaries are
// inclusive: distance == cap passes.
type AuthorizationGate interface {
	Authorize(ctx context.Context, senderID, receiverID uint64) error
}

type authorizationGate struct {
	graph        network.DistanceQuerier
	isNewAccount NewAccountFunc
	baseCap      int
	relaxedCap   int
}

func NewAuthorizationGate(graph network.DistanceQuerier, isNewAccount NewAccountFunc, cfg config.MessagingConfig) AuthorizationGate {
	return &authorizationGate{
		graph:        graph,
		isNewAccount: isNewAccount,
		baseCap:      cfg.BaseCap,
		relaxedCap:   cfg.RelaxedCap,
	}
}

func (g *authorizationGate) Authorize(ctx context.Context, senderID, receiverID uint64) error {
	if senderID == receiverID {
		return errors.ErrSelfMessage
	}

	maxDepth := g.baseCap
	isNew, err := g.isNewAccount(ctx, senderID)
	if err != nil {
		return err
	}
	if isNew {
		maxDepth = g.relaxedCap
	}

	_, reachable, err := g.graph.Distance(ctx, senderID, receiverID, maxDepth)
	if err != nil {
		return errors.ErrGraphQueryFailed(err)
	}
	if !reachable {
		return errors.ErrOutsideNetwork
	}
	return nil
}
