package network

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"profnet/internal/dbmysql"
)

type ConnectionRepository interface {
	Neighbors(ctx context.Context, userID uint64) ([]uint64, error)
	Exists(ctx context.Context, userID, otherID uint64) (bool, error)
	Insert(ctx context.Context, userID, otherID uint64) error
	Remove(ctx context.Context, userID, otherID uint64) error
}

type connectionRepository struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func canonicalPair(a, b uint64) (uint64, uint64) {
	if a > b {
		return b, a
	}
	return a, b
}

func (r *connectionRepository) Neighbors(ctx context.Context, userID uint64) ([]uint64, error) {
	var edges []dbmysql.Connection
	err := r.db.WithContext(ctx).
		Where("user_a = ? OR user_b = ?", userID, userID).
		Find(&edges).Error
	if err != nil {
		return nil, err
	}

	neighbors := make([]uint64, 0, len(edges))
	for _, e := range edges {
		if e.UserA == userID {
			neighbors = append(neighbors, e.UserB)
		} else {
			neighbors = append(neighbors, e.UserA)
		}
	}
	return neighbors, nil
}

func (r *connectionRepository) Exists(ctx context.Context, userID, otherID uint64) (bool, error) {
	a, b := canonicalPair(userID, otherID)
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Connection{}).
		Where("user_a = ? AND user_b = ?", a, b).
		Count(&count).Error
	return count > 0, err
}

// Insert is idempotent: the unique pair index plus ON CONFLICT DO NOTHING
// makes concurrent inserts of the same pair converge on one row.
func (r *connectionRepository) Insert(ctx context.Context, userID, otherID uint64) error {
	a, b := canonicalPair(userID, otherID)
	edge := dbmysql.Connection{UserA: a, UserB: b}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge).Error
}

func (r *connectionRepository) Remove(ctx context.Context, userID, otherID uint64) error {
	a, b := canonicalPair(userID, otherID)
	return r.db.WithContext(ctx).
		Where("user_a = ? AND user_b = ?", a, b).
		Delete(&dbmysql.Connection{}).Error
}
