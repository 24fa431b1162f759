package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hours-api/internal/models"
)

var stayDataColumns = []string{"stay_data_id", "creation_time", "creator_user_id", "stay_id", "fst_encounter_id", "fst_time", "snd_encounter_id", "snd_time", "active"}

func TestAttendanceRepositoryStayDataHeadMixedEndpoints(t *testing.T) {
	db, mock := newRepoMock(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM stay_data WHERE stay_id = $1 ORDER BY stay_data_id DESC LIMIT 1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(stayDataColumns).AddRow(int64(5), int64(100), int64(1), int64(2), int64(9), nil, nil, int64(500), true))

	data, err := repo.StayDataHead(context.Background(), nil, 2)
	require.NoError(t, err)
	require.NotNil(t, data)
	require.NotNil(t, data.FstEncounterID)
	assert.Equal(t, int64(9), *data.FstEncounterID)
	assert.Nil(t, data.FstTime)
	assert.Nil(t, data.SndEncounterID)
	require.NotNil(t, data.SndTime)
	assert.Equal(t, int64(500), *data.SndTime)
}

func TestAttendanceRepositoryListStayDataHeadsOnly(t *testing.T) {
	db, mock := newRepoMock(t)
	repo := NewAttendanceRepository(db)
	active := true

	mock.ExpectQuery(regexp.QuoteMeta("FROM recent_stay_data_v WHERE stay_id = ANY($1) AND active = $2 ORDER BY stay_data_id")).
		WillReturnRows(sqlmock.NewRows(stayDataColumns))

	rows, err := repo.ListStayData(context.Background(), nil, models.StayDataFilter{
		CommonFilter: models.CommonFilter{OnlyRecent: true},
		StayID:       []int64{2, 3},
		Active:       &active,
	})
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepositoryCreateEncounter(t *testing.T) {
	db, mock := newRepoMock(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO encounter (creation_time, creator_user_id, location_id, attendee_user_id, encounter_kind) VALUES ($1, $2, $3, $4, $5)")).
		WithArgs(int64(100), int64(1), int64(3), int64(6), "MANUAL").
		WillReturnRows(sqlmock.NewRows([]string{"encounter_id", "creation_time", "creator_user_id", "location_id", "attendee_user_id", "encounter_kind"}).
			AddRow(int64(21), int64(100), int64(1), int64(3), int64(6), "MANUAL"))

	encounter := &models.Encounter{CreationTime: 100, CreatorUserID: 1, LocationID: 3, AttendeeUserID: 6, EncounterKind: models.EncounterKindManual}
	require.NoError(t, repo.CreateEncounter(context.Background(), nil, encounter))
	assert.Equal(t, int64(21), encounter.EncounterID)
}
