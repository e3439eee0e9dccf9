package di

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"profnet/internal/config"
)

func TestInitializeCore_WiresEveryService(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cfg := config.Load()
	core := InitializeCore(cfg, gormDB)

	require.NotNil(t, core.Users)
	require.NotNil(t, core.Friends)
	require.NotNil(t, core.Messages)

	for name, ready := range core.ServiceStatus() {
		require.True(t, ready, "service %s not wired", name)
	}
}
