package network

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"profnet/internal/dbmysql"
)

type FriendRequestRepository interface {
	Create(ctx context.Context, req *dbmysql.FriendRequest) error
	ByID(ctx context.Context, requestID uint64) (*dbmysql.FriendRequest, error)
	PendingBetween(ctx context.Context, userID, otherID uint64) (bool, error)
	ListPending(ctx context.Context, toUserID uint64) ([]*dbmysql.FriendRequest, error)
	Accept(ctx context.Context, requestID, fromUserID, toUserID uint64) error
	Reject(ctx context.Context, requestID uint64) error
}

type friendRequestRepository struct {
	db *gorm.DB
}

func NewFriendRequestRepository(db *gorm.DB) FriendRequestRepository {
	return &friendRequestRepository{db: db}
}

func (r *friendRequestRepository) Create(ctx context.Context, req *dbmysql.FriendRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *friendRequestRepository) ByID(ctx context.Context, requestID uint64) (*dbmysql.FriendRequest, error) {
	var req dbmysql.FriendRequest
	err := r.db.WithContext(ctx).Where("id = ?", requestID).First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// PendingBetween reports whether a pending request exists between the two
// users in either direction.
func (r *friendRequestRepository) PendingBetween(ctx context.Context, userID, otherID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.FriendRequest{}).
		Where("((from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)) AND status = ?",
			userID, otherID, otherID, userID, dbmysql.RequestPending).
		Count(&count).Error
	return count > 0, err
}

func (r *friendRequestRepository) ListPending(ctx context.Context, toUserID uint64) ([]*dbmysql.FriendRequest, error) {
	var requests []*dbmysql.FriendRequest
	err := r.db.WithContext(ctx).
		Where("to_user_id = ? AND status = ?", toUserID, dbmysql.RequestPending).
		Order("requested_at DESC").
		Find(&requests).Error
	return requests, err
}

// Accept flips the request to accepted and inserts the Connection edge in
// one transaction. The guarded UPDATE (WHERE status = 'pending') makes a
// lost race visible as zero affected rows, in which case nothing commits.
func (r *friendRequestRepository) Accept(ctx context.Context, requestID, fromUserID, toUserID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&dbmysql.FriendRequest{}).
			Where("id = ? AND status = ?", requestID, dbmysql.RequestPending).
			Updates(map[string]interface{}{
				"status":       dbmysql.RequestAccepted,
				"responded_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		a, b := canonicalPair(fromUserID, toUserID)
		edge := dbmysql.Connection{UserA: a, UserB: b}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error
	})
}

func (r *friendRequestRepository) Reject(ctx context.Context, requestID uint64) error {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&dbmysql.FriendRequest{}).
		Where("id = ? AND status = ?", requestID, dbmysql.RequestPending).
		Updates(map[string]interface{}{
			"status":       dbmysql.RequestRejected,
			"responded_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
