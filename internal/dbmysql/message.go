package dbmysql

import (
	"time"
)

// Per-party delete bits. The bitmask only ever gains bits; a message whose
// mask reaches DeletedByBoth is purged from the store.
const (
	DeletedByNone     uint8 = 0
	DeletedBySender   uint8 = 1 << 0
	DeletedByReceiver uint8 = 1 << 1
	DeletedByBoth           = DeletedBySender | DeletedByReceiver
)

type Message struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	SenderID     uint64    `gorm:"column:sender_id;index;not null" json:"sender_id"`
	ReceiverID   uint64    `gorm:"column:receiver_id;index;not null" json:"receiver_id"`
	Content      string    `gorm:"column:content;type:text" json:"content"`
	AttachmentID string    `gorm:"column:attachment_id;size:36" json:"attachment_id,omitempty"`
	SentAt       time.Time `gorm:"column:sent_at;not null" json:"sent_at"`
	Status       string    `gorm:"column:status;size:20;default:'delivered'" json:"status"`
	DeleteStatus uint8     `gorm:"column:delete_status;not null;default:0" json:"delete_status"`
}
