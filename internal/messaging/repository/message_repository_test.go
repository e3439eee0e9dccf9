package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"profnet/internal/dbmysql"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return gormDB, mock, cleanup
}

func TestMessageRepository_Insert(t *testing.T) {
	tests := []struct {
		name        string
		message     *dbmysql.Message
		mockSetup   func(sqlmock.Sqlmock)
		expectError bool
	}{
		{
			name: "successful insert",
			message: &dbmysql.Message{
				SenderID:   1,
				ReceiverID: 2,
				Content:    "Hello, world!",
				SentAt:     time.Now().UTC(),
				Status:     "delivered",
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `messages`")).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			expectError: false,
		},
		{
			name: "database error",
			message: &dbmysql.Message{
				SenderID:   1,
				ReceiverID: 2,
				Content:    "Hello, world!",
				SentAt:     time.Now().UTC(),
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `messages`")).
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormDB, mock, cleanup := setupTestDB(t)
			defer cleanup()
			tt.mockSetup(mock)

			repo := NewMessageRepository(gormDB)
			err := repo.Insert(context.Background(), tt.message)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMessageRepository_SetDeleteBit(t *testing.T) {
	tests := []struct {
		name        string
		bit         uint8
		mockSetup   func(sqlmock.Sqlmock)
		wantBits    uint8
		expectError bool
	}{
		{
			name: "first delete sets one bit",
			bit:  dbmysql.DeletedBySender,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("UPDATE `messages` SET `delete_status`=delete_status | ?")).
					WithArgs(dbmysql.DeletedBySender, uint64(42)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(regexp.QuoteMeta("SELECT `delete_status` FROM `messages`")).
					WillReturnRows(sqlmock.NewRows([]string{"delete_status"}).AddRow(1))
				mock.ExpectCommit()
			},
			wantBits: dbmysql.DeletedBySender,
		},
		{
			name: "second delete completes the mask",
			bit:  dbmysql.DeletedByReceiver,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("UPDATE `messages` SET `delete_status`=delete_status | ?")).
					WithArgs(dbmysql.DeletedByReceiver, uint64(42)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(regexp.QuoteMeta("SELECT `delete_status` FROM `messages`")).
					WillReturnRows(sqlmock.NewRows([]string{"delete_status"}).AddRow(3))
				mock.ExpectCommit()
			},
			wantBits: dbmysql.DeletedByBoth,
		},
		{
			name: "missing message rolls back",
			bit:  dbmysql.DeletedBySender,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("UPDATE `messages` SET `delete_status`=delete_status | ?")).
					WithArgs(dbmysql.DeletedBySender, uint64(42)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormDB, mock, cleanup := setupTestDB(t)
			defer cleanup()
			tt.mockSetup(mock)

			repo := NewMessageRepository(gormDB)
			bits, err := repo.SetDeleteBit(context.Background(), 42, tt.bit)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantBits, bits)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMessageRepository_Purge(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `messages`")).
		WithArgs(uint64(42), dbmysql.DeletedByBoth).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewMessageRepository(gormDB)
	err := repo.Purge(context.Background(), 42)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepository_ListVisible(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()

	sentAt := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "content", "sent_at", "status", "delete_status"}).
		AddRow(1, 1, 2, "first", sentAt, "delivered", 0).
		AddRow(2, 2, 1, "second", sentAt.Add(time.Minute), "delivered", 0)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `messages`")).
		WillReturnRows(rows)

	repo := NewMessageRepository(gormDB)
	messages, err := repo.ListVisible(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "second", messages[1].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}
