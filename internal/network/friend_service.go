package network

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"profnet/internal/dbmysql"
	"profnet/pkg/errors"
)

// FriendService drives the friend request workflow: pending requests become
// either a Connection edge (accept) or a terminal rejection.
type FriendService interface {
	SendRequest(ctx context.Context, fromUserID, toUserID uint64) (*dbmysql.FriendRequest, error)
	Respond(ctx context.Context, requestID, responderID uint64, accept bool) error
	ListPendingRequests(ctx context.Context, userID uint64) ([]*dbmysql.FriendRequest, error)
	ListConnections(ctx context.Context, userID uint64) ([]uint64, error)
	Unfriend(ctx context.Context, userID, otherID uint64) error
}

type friendService struct {
	requests FriendRequestRepository
	conns    ConnectionRepository
}

func NewFriendService(requests FriendRequestRepository, conns ConnectionRepository) FriendService {
	return &friendService{requests: requests, conns: conns}
}

func (s *friendService) SendRequest(ctx context.Context, fromUserID, toUserID uint64) (*dbmysql.FriendRequest, error) {
	if fromUserID == toUserID {
		return nil, errors.ErrSelfRequest
	}

	connected, err := s.conns.Exists(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, err
	}
	if connected {
		return nil, errors.ErrAlreadyConnected
	}

	pending, err := s.requests.PendingBetween(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, errors.ErrRequestPending
	}

	req := &dbmysql.FriendRequest{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Status:     dbmysql.RequestPending,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		// The pending check races with concurrent senders; the unique
		// (from, to, pending_flag) index is the arbiter.
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrRequestPending
		}
		return nil, err
	}
	return req, nil
}

func (s *friendService) Respond(ctx context.Context, requestID, responderID uint64, accept bool) error {
	req, err := s.requests.ByID(ctx, requestID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrRequestNotFound
		}
		return err
	}
	if req.Status != dbmysql.RequestPending {
		return errors.ErrRequestNotFound
	}
	if req.ToUserID != responderID {
		return errors.ErrNotRecipient
	}

	if accept {
		err = s.requests.Accept(ctx, req.ID, req.FromUserID, req.ToUserID)
	} else {
		err = s.requests.Reject(ctx, req.ID)
	}
	if err != nil {
		// The pending check above passed, so a vanished pending row means
		// another session responded first.
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrRequestConflict
		}
		return err
	}
	return nil
}

func (s *friendService) ListPendingRequests(ctx context.Context, userID uint64) ([]*dbmysql.FriendRequest, error) {
	return s.requests.ListPending(ctx, userID)
}

func (s *friendService) ListConnections(ctx context.Context, userID uint64) ([]uint64, error) {
	return s.conns.Neighbors(ctx, userID)
}

func (s *friendService) Unfriend(ctx context.Context, userID, otherID uint64) error {
	connected, err := s.conns.Exists(ctx, userID, otherID)
	if err != nil {
		return err
	}
	if !connected {
		return errors.ErrConnectionMissing
	}
	return s.conns.Remove(ctx, userID, otherID)
}
