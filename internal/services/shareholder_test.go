package services

import (
	"testing"

	"github.com/Aarontamirat/voting-app/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareholderCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewShareholderService(db)

	phone := "+251911000000"
	created, err := svc.Create(ShareholderInput{
		ID:         "SH-1",
		Name:       "Abebe Kebede",
		NameAm:     "አበበ ከበደ",
		Phone:      &phone,
		ShareValue: decimal.NewFromInt(250),
	})
	require.NoError(t, err)
	assert.Equal(t, "SH-1", created.ID)

	got, err := svc.Get("SH-1")
	require.NoError(t, err)
	assert.Equal(t, "Abebe Kebede", got.Name)
	assert.Equal(t, "አበበ ከበደ", got.NameAm)
	assert.True(t, got.ShareValue.Equal(decimal.NewFromInt(250)))
}

func TestShareholderCreateDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewShareholderService(db)

	seedShareholder(t, db, "SH-1", "Abebe Kebede", 250)

	_, err := svc.Create(ShareholderInput{
		ID:         "SH-1",
		Name:       "Someone Else",
		ShareValue: decimal.NewFromInt(10),
	})
	require.Error(t, err)
	assert.Equal(t, ClassStateConflict, ClassOf(err))
}

func TestShareholderCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewShareholderService(db)

	_, err := svc.Create(ShareholderInput{ID: "", Name: "x"})
	assert.Equal(t, ClassValidation, ClassOf(err))

	_, err = svc.Create(ShareholderInput{
		ID:         "SH-1",
		Name:       "x",
		ShareValue: decimal.NewFromInt(-5),
	})
	assert.Equal(t, ClassValidation, ClassOf(err))
}

func TestShareholderListSearchAndTotals(t *testing.T) {
	db := newTestDB(t)
	svc := NewShareholderService(db)

	seedShareholder(t, db, "SH-1", "Abebe Kebede", 250)
	seedShareholder(t, db, "SH-2", "Sara Tesfaye", 150)
	seedShareholder(t, db, "SH-3", "Sara Alemu", 600)

	page, err := svc.List("", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.True(t, page.TotalShares.Equal(decimal.NewFromInt(1000)))

	page, err = svc.List("Sara", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	// TotalShares always covers the whole registry, not the filtered page.
	assert.True(t, page.TotalShares.Equal(decimal.NewFromInt(1000)))

	page, err = svc.List("", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Items, 2)
}

func TestShareholderDeleteBlockedByHistory(t *testing.T) {
	db := newTestDB(t)
	svc := NewShareholderService(db)
	meetings := NewMeetingService(db, svc)
	attendance := NewAttendanceService(db, meetings)

	seedShareholder(t, db, "SH-1", "Abebe Kebede", 250)
	seedShareholder(t, db, "SH-2", "Sara Tesfaye", 150)
	meeting := seedMeeting(t, db, 0, models.MeetingStatusOpen)

	_, err := attendance.Record(meeting.ID, RecordAttendanceInput{
		ShareholderIDs: []string{"SH-1"},
	})
	require.NoError(t, err)

	err = svc.Delete("SH-1")
	require.Error(t, err)
	assert.Equal(t, ClassStateConflict, ClassOf(err))

	// No history, deletable.
	require.NoError(t, svc.Delete("SH-2"))
}

func TestShareholderBulkCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewShareholderService(db)

	rows := []ShareholderInput{
		{ID: "SH-1", Name: "Abebe Kebede", ShareValue: decimal.NewFromInt(250)},
		{ID: "SH-2", Name: "Sara Tesfaye", ShareValue: decimal.NewFromInt(150)},
	}
	n, err := svc.BulkCreate(rows)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	total, err := svc.TotalShares(db)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(400)))
}

func TestShareholderBulkCreateAllOrNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewShareholderService(db)

	seedShareholder(t, db, "SH-1", "Abebe Kebede", 250)

	rows := []ShareholderInput{
		{ID: "SH-1", Name: "Abebe Kebede", ShareValue: decimal.NewFromInt(250)},
		{ID: "SH-2", Name: "Sara Tesfaye", ShareValue: decimal.NewFromInt(150)},
	}
	_, err := svc.BulkCreate(rows)
	require.Error(t, err)
	assert.Equal(t, ClassStateConflict, ClassOf(err))
	assert.Contains(t, err.Error(), "Abebe Kebede")

	// The fresh row was not inserted either.
	count, err := svc.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
