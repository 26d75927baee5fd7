package services

import (
	"testing"

	"github.com/Aarontamirat/voting-app/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVotingCards(t *testing.T) {
	db := newTestDB(t)
	shareholders := NewShareholderService(db)
	meetings := NewMeetingService(db, shareholders)
	attendance := NewAttendanceService(db, meetings)
	nominees := NewNomineeService(db)
	svc := NewReportService(db, shareholders)

	seedShareholder(t, db, "SH-1", "Abebe Kebede", 250)
	seedShareholder(t, db, "SH-2", "Sara Tesfaye", 150)
	seedShareholder(t, db, "CAND-1", "Bekele Worku", 50)
	meeting := seedMeeting(t, db, 0, models.MeetingStatusOpen)

	_, err := attendance.Record(meeting.ID, RecordAttendanceInput{
		ShareholderIDs: []string{"SH-1", "SH-2"},
	})
	require.NoError(t, err)
	_, err = nominees.Create(meeting.ID, NomineeInput{ShareholderID: "CAND-1"})
	require.NoError(t, err)

	cards, err := svc.VotingCards(meeting.ID)
	require.NoError(t, err)

	assert.Equal(t, meeting.ID, cards.Meeting.ID)
	assert.Equal(t, "Annual General Meeting", cards.Meeting.Title)

	require.Len(t, cards.Attendees, 2)
	assert.Equal(t, "SH-1", cards.Attendees[0].ID)
	assert.True(t, cards.Attendees[0].ShareValue.Equal(decimal.NewFromInt(250)))

	require.Len(t, cards.Nominees, 1)
	assert.Equal(t, "CAND-1", cards.Nominees[0].ID)
	assert.Equal(t, "Bekele Worku", cards.Nominees[0].Name)

	assert.True(t, cards.TotalShares.Equal(decimal.NewFromInt(450)))
}

func TestVotingCardsUnknownMeeting(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, NewShareholderService(db))

	_, err := svc.VotingCards("missing")
	require.Error(t, err)
	assert.Equal(t, ClassNotFound, ClassOf(err))
}
