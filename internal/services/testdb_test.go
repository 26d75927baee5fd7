package services

import (
	"testing"
	"time"

	"github.com/Aarontamirat/voting-app/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.Shareholder{},
		&models.Meeting{},
		&models.Attendance{},
		&models.Representative{},
		&models.Representation{},
		&models.Nominee{},
		&models.Vote{},
	))

	return db
}

func seedShareholder(t *testing.T, db *gorm.DB, id, name string, shares int64) *models.Shareholder {
	t.Helper()

	sh := models.Shareholder{
		ID:         id,
		Name:       name,
		ShareValue: decimal.NewFromInt(shares),
	}
	require.NoError(t, db.Create(&sh).Error)
	return &sh
}

func seedMeeting(t *testing.T, db *gorm.DB, quorumPct int, status models.MeetingStatus) *models.Meeting {
	t.Helper()

	meeting := models.Meeting{
		ID:            uuid.NewString(),
		Title:         "Annual General Meeting",
		Date:          time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC),
		Location:      "Head Office",
		QuorumPct:     quorumPct,
		Status:        status,
		FirstPassers:  2,
		SecondPassers: 1,
	}
	require.NoError(t, db.Create(&meeting).Error)
	return &meeting
}
