package repository

import (
	"context"

	"gorm.io/gorm"

	"profnet/internal/dbmysql"
)

type MessageRepository interface {
	Insert(ctx context.Context, msg *dbmysql.Message) error
	ByID(ctx context.Context, messageID uint64) (*dbmysql.Message, error)
	SetDeleteBit(ctx context.Context, messageID uint64, bit uint8) (uint8, error)
	Purge(ctx context.Context, messageID uint64) error
	ListVisible(ctx context.Context, userID uint64) ([]*dbmysql.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Insert(ctx context.Context, msg *dbmysql.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepository) ByID(ctx context.Context, messageID uint64) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	err := r.db.WithContext(ctx).Where("id = ?", messageID).First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// SetDeleteBit ORs bit into the message's delete mask in a single UPDATE, so
// a concurrent delete by the other party is never lost, and returns the mask
// after the update. Setting an already-set bit is a no-op.
func (r *messageRepository) SetDeleteBit(ctx context.Context, messageID uint64, bit uint8) (uint8, error) {
	var bits uint8
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&dbmysql.Message{}).
			Where("id = ?", messageID).
			UpdateColumn("delete_status", gorm.Expr("delete_status | ?", bit))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var msg dbmysql.Message
		if err := tx.Select("delete_status").Where("id = ?", messageID).First(&msg).Error; err != nil {
			return err
		}
		bits = msg.DeleteStatus
		return nil
	})
	return bits, err
}

// Purge removes a message both parties have deleted. The delete_status guard
// makes the purge a no-op for any other state, so racing deleters cannot
// purge twice or purge a half-deleted message.
func (r *messageRepository) Purge(ctx context.Context, messageID uint64) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND delete_status = ?", messageID, dbmysql.DeletedByBoth).
		Delete(&dbmysql.Message{}).Error
}

func (r *messageRepository) ListVisible(ctx context.Context, userID uint64) ([]*dbmysql.Message, error) {
	var messages []*dbmysql.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND delete_status & ? = 0) OR (receiver_id = ? AND delete_status & ? = 0)",
			userID, dbmysql.DeletedBySender, userID, dbmysql.DeletedByReceiver).
		Order("sent_at ASC").
		Find(&messages).Error
	return messages, err
}
