package dbmysql

import (
	"time"
)

const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

// FriendRequest is an ordered (from, to) pair. Accepted and rejected rows
// are terminal and kept for audit; a re-request after rejection is always a
// fresh row.
//
// PendingFlag is a stored generated column: 1 while status is pending, NULL
// otherwise. The unique index over (from, to, pending_flag) therefore allows
// any number of terminal rows per pair but at most one pending row even
// under concurrent inserts; NULL entries never collide in MySQL unique
// indexes.
type FriendRequest struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FromUserID  uint64     `gorm:"column:from_user_id;not null;uniqueIndex:idx_pending_pair,priority:1" json:"from_user_id"`
	ToUserID    uint64     `gorm:"column:to_user_id;not null;uniqueIndex:idx_pending_pair,priority:2" json:"to_user_id"`
	Status      string     `gorm:"column:status;type:enum('pending','accepted','rejected');default:'pending'" json:"status"`
	PendingFlag *uint8     `gorm:"->;column:pending_flag;type:tinyint GENERATED ALWAYS AS (if(status = 'pending', 1, NULL)) STORED;uniqueIndex:idx_pending_pair,priority:3" json:"-"`
	RequestedAt time.Time  `gorm:"column:requested_at;autoCreateTime" json:"requested_at"`
	RespondedAt *time.Time `gorm:"column:responded_at" json:"responded_at"`
}
