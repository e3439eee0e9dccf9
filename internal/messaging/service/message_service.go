package service

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"

	"profnet/internal/dbmysql"
	"profnet/internal/messaging/repository"
	"profnet/pkg/errors"
)

const statusDelivered = "delivered"

// MessageService creates messages behind the authorization gate and drives
// the dual-party soft-delete lifecycle.
type MessageService interface {
	Send(ctx context.Context, senderID, receiverID uint64, content, attachmentID string) (*dbmysql.Message, error)
	Delete(ctx context.Context, messageID, requestingUserID uint64) error
	ListVisible(ctx context.Context, userID uint64) ([]*dbmysql.Message, error)
}

type messageService struct {
	repo repository.MessageRepository
	gate AuthorizationGate
}

func NewMessageService(repo repository.MessageRepository, gate AuthorizationGate) MessageService {
	return &messageService{repo: repo, gate: gate}
}

// Send stores a message only after the gate approves; a denial leaves no
// trace in the store. attachmentID is optional and references a file in the
// attachment store; the message row carries only the reference.
func (s *messageService) Send(ctx context.Context, senderID, receiverID uint64, content, attachmentID string) (*dbmysql.Message, error) {
	if content == "" {
		return nil, errors.ErrEmptyContent
	}

	if err := s.gate.Authorize(ctx, senderID, receiverID); err != nil {
		return nil, err
	}

	msg := &dbmysql.Message{
		SenderID:     senderID,
		ReceiverID:   receiverID,
		Content:      content,
		AttachmentID: attachmentID,
		SentAt:       time.Now().UTC(),
		Status:       statusDelivered,
		DeleteStatus: dbmysql.DeletedByNone,
	}
	if err := s.repo.Insert(ctx, msg); err != nil {
		return nil, errors.ErrSendFailed(err)
	}
	return msg, nil
}

// Delete sets the requesting party's delete bit. Once both bits are set the
// message is purged from the store.
func (s *messageService) Delete(ctx context.Context, messageID, requestingUserID uint64) error {
	msg, err := s.repo.ByID(ctx, messageID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrMessageNotFound
		}
		return err
	}

	var bit uint8
	switch requestingUserID {
	case msg.SenderID:
		bit = dbmysql.DeletedBySender
	case msg.ReceiverID:
		bit = dbmysql.DeletedByReceiver
	default:
		return errors.ErrNotParticipant
	}

	bits, err := s.repo.SetDeleteBit(ctx, messageID, bit)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			// Gone between the read and the update: the other party's
			// delete completed the lifecycle already.
			return nil
		}
		return err
	}
	if bits == dbmysql.DeletedByBoth {
		return s.repo.Purge(ctx, messageID)
	}
	return nil
}

func (s *messageService) ListVisible(ctx context.Context, userID uint64) ([]*dbmysql.Message, error) {
	return s.repo.ListVisible(ctx, userID)
}
