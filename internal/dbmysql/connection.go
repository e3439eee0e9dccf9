package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

// Connection is an accepted acquaintance edge. The pair is canonical:
// UserA < UserB always, so each unordered pair exists at most once.
type Connection struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserA     uint64    `gorm:"column:user_a;not null;uniqueIndex:idx_connection_pair" json:"user_a"`
	UserB     uint64    `gorm:"column:user_b;not null;uniqueIndex:idx_connection_pair" json:"user_b"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// BeforeCreate enforces the canonical ordering of the pair.
func (c *Connection) BeforeCreate(_ *gorm.DB) error {
	if c.UserA > c.UserB {
		c.UserA, c.UserB = c.UserB, c.UserA
	}
	return nil
}
