package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"profnet/internal/dbmysql"
	"profnet/pkg/errors"
)

func TestMessageService_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockMessageRepository(ctrl)
	mockGate := NewMockAuthorizationGate(ctrl)
	svc := NewMessageService(mockRepo, mockGate)
	ctx := context.Background()

	tests := []struct {
		name           string
		sender         uint64
		receiver       uint64
		content        string
		attachmentID   string
		setup          func()
		wantErr        error
		wantAttachment string
	}{
		{
			name:   "success",
			sender: 1, receiver: 2, content: "hello",
			setup: func() {
				mockGate.EXPECT().Authorize(ctx, uint64(1), uint64(2)).Return(nil)
				mockRepo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, msg *dbmysql.Message) error {
						msg.ID = 42
						return nil
					})
			},
		},
		{
			name:   "attachment reference carried into the row",
			sender: 1, receiver: 2, content: "see attached",
			attachmentID: "665f1c2ab3d9e4f5a6b7c8d9",
			setup: func() {
				mockGate.EXPECT().Authorize(ctx, uint64(1), uint64(2)).Return(nil)
				mockRepo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, msg *dbmysql.Message) error {
						require.Equal(t, "665f1c2ab3d9e4f5a6b7c8d9", msg.AttachmentID)
						msg.ID = 42
						return nil
					})
			},
			wantAttachment: "665f1c2ab3d9e4f5a6b7c8d9",
		},
		{
			name:   "gate denial leaves no message behind",
			sender: 1, receiver: 9, content: "hello",
			setup: func() {
				mockGate.EXPECT().Authorize(ctx, uint64(1), uint64(9)).Return(errors.ErrOutsideNetwork)
				// No Insert expectation: denial must cause zero store writes.
			},
			wantErr: errors.ErrOutsideNetwork,
		},
		{
			name:   "empty content",
			sender: 1, receiver: 2, content: "",
			setup:   func() {},
			wantErr: errors.ErrEmptyContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			msg, err := svc.Send(ctx, tt.sender, tt.receiver, tt.content, tt.attachmentID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, msg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, uint64(42), msg.ID)
			require.Equal(t, "delivered", msg.Status)
			require.Equal(t, tt.wantAttachment, msg.AttachmentID)
			require.Equal(t, dbmysql.DeletedByNone, msg.DeleteStatus)
			require.False(t, msg.SentAt.IsZero())
		})
	}
}

func TestMessageService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockMessageRepository(ctrl)
	mockGate := NewMockAuthorizationGate(ctrl)
	svc := NewMessageService(mockRepo, mockGate)
	ctx := context.Background()

	stored := func() *dbmysql.Message {
		return &dbmysql.Message{ID: 42, SenderID: 1, ReceiverID: 2}
	}

	tests := []struct {
		name      string
		messageID uint64
		party     uint64
		setup     func()
		wantErr   error
	}{
		{
			name:      "sender delete sets sender bit only",
			messageID: 42, party: 1,
			setup: func() {
				mockRepo.EXPECT().ByID(ctx, uint64(42)).Return(stored(), nil)
				mockRepo.EXPECT().SetDeleteBit(ctx, uint64(42), dbmysql.DeletedBySender).
					Return(dbmysql.DeletedBySender, nil)
				// Only one bit set: no purge.
			},
		},
		{
			name:      "receiver delete completes the mask and purges",
			messageID: 42, party: 2,
			setup: func() {
				mockRepo.EXPECT().ByID(ctx, uint64(42)).Return(stored(), nil)
				mockRepo.EXPECT().SetDeleteBit(ctx, uint64(42), dbmysql.DeletedByReceiver).
					Return(dbmysql.DeletedByBoth, nil)
				mockRepo.EXPECT().Purge(ctx, uint64(42)).Return(nil)
			},
		},
		{
			name:      "message not found",
			messageID: 99, party: 1,
			setup: func() {
				mockRepo.EXPECT().ByID(ctx, uint64(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: errors.ErrMessageNotFound,
		},
		{
			name:      "non-party rejected",
			messageID: 42, party: 7,
			setup: func() {
				mockRepo.EXPECT().ByID(ctx, uint64(42)).Return(stored(), nil)
			},
			wantErr: errors.ErrNotParticipant,
		},
		{
			name:      "message purged mid-flight treated as done",
			messageID: 42, party: 1,
			setup: func() {
				mockRepo.EXPECT().ByID(ctx, uint64(42)).Return(stored(), nil)
				mockRepo.EXPECT().SetDeleteBit(ctx, uint64(42), dbmysql.DeletedBySender).
					Return(uint8(0), gorm.ErrRecordNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			err := svc.Delete(ctx, tt.messageID, tt.party)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMessageService_ListVisible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockMessageRepository(ctrl)
	mockGate := NewMockAuthorizationGate(ctrl)
	svc := NewMessageService(mockRepo, mockGate)
	ctx := context.Background()

	expected := []*dbmysql.Message{
		{ID: 1, SenderID: 1, ReceiverID: 2, Content: "first"},
		{ID: 2, SenderID: 2, ReceiverID: 1, Content: "second"},
	}
	mockRepo.EXPECT().ListVisible(ctx, uint64(1)).Return(expected, nil)

	messages, err := svc.ListVisible(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, expected, messages)
}
