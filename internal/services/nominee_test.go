package services

import (
	"testing"

	"github.com/Aarontamirat/voting-app/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNomineeCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewNomineeService(db)

	seedShareholder(t, db, "SH-1", "Abebe Kebede", 250)
	meeting := seedMeeting(t, db, 0, models.MeetingStatusOpen)

	nominee, err := svc.Create(meeting.ID, NomineeInput{ShareholderID: "SH-1"})
	require.NoError(t, err)
	assert.Equal(t, "Abebe Kebede", nominee.Name)
	assert.Equal(t, models.NomineeTypeFirst, nominee.Type)
}

func TestNomineeDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewNomineeService(db)

	seedShareholder(t, db, "SH-1", "Abebe Kebede", 250)
	meeting := seedMeeting(t, db, 0, models.MeetingStatusOpen)

	_, err := svc.Create(meeting.ID, NomineeInput{ShareholderID: "SH-1"})
	require.NoError(t, err)

	_, err = svc.Create(meeting.ID, NomineeInput{ShareholderID: "SH-1", Type: models.NomineeTypeSecond})
	require.Error(t, err)
	assert.Equal(t, ClassStateConflict, ClassOf(err))
	assert.Equal(t, "this shareholder is already nominated", err.Error())
}

func TestNomineeSameShareholderOtherMeeting(t *testing.T) {
	db := newTestDB(t)
	svc := NewNomineeService(db)

	seedShareholder(t, db, "SH-1", "Abebe Kebede", 250)
	m1 := seedMeeting(t, db, 0, models.MeetingStatusOpen)
	m2 := seedMeeting(t, db, 0, models.MeetingStatusOpen)

	_, err := svc.Create(m1.ID, NomineeInput{ShareholderID: "SH-1"})
	require.NoError(t, err)
	_, err = svc.Create(m2.ID, NomineeInput{ShareholderID: "SH-1"})
	require.NoError(t, err)
}

func TestNomineeTypeValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewNomineeService(db)

	seedShareholder(t, db, "SH-1", "Abebe Kebede", 250)
	meeting := seedMeeting(t, db, 0, models.MeetingStatusOpen)

	_, err := svc.Create(meeting.ID, NomineeInput{ShareholderID: "SH-1", Type: "third"})
	require.Error(t, err)
	assert.Equal(t, ClassValidation, ClassOf(err))
}

func TestNomineeCreateClosedMeeting(t *testing.T) {
	db := newTestDB(t)
	svc := NewNomineeService(db)

	seedShareholder(t, db, "SH-1", "Abebe Kebede", 250)
	meeting := seedMeeting(t, db, 0, models.MeetingStatusClosed)

	_, err := svc.Create(meeting.ID, NomineeInput{ShareholderID: "SH-1"})
	require.Error(t, err)
	assert.Equal(t, ClassStateConflict, ClassOf(err))
}

func TestNomineeUpdateBlockedWhileVotingOpen(t *testing.T) {
	db := newTestDB(t)
	svc := NewNomineeService(db)

	seedShareholder(t, db, "SH-1", "Abebe Kebede", 250)
	open := seedMeeting(t, db, 0, models.MeetingStatusOpen)
	nominee, err := svc.Create(open.ID, NomineeInput{ShareholderID: "SH-1"})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Meeting{}).
		Where("id = ?", open.ID).
		Update("status", models.MeetingStatusVotingOpen).Error)

	name := "Renamed"
	_, err = svc.Update(open.ID, nominee.ID, NomineeUpdate{Name: &name})
	require.Error(t, err)
	assert.Equal(t, ClassStateConflict, ClassOf(err))
}

func TestNomineeDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewNomineeService(db)

	seedShareholder(t, db, "SH-1", "Abebe Kebede", 250)
	meeting := seedMeeting(t, db, 0, models.MeetingStatusOpen)
	nominee, err := svc.Create(meeting.ID, NomineeInput{ShareholderID: "SH-1"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(meeting.ID, nominee.ID))

	err = svc.Delete(meeting.ID, nominee.ID)
	require.Error(t, err)
	assert.Equal(t, ClassNotFound, ClassOf(err))
}
