package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/admissions/interviews/model"
)

/* ============================================
   Validation (reject-all, never clamp)
============================================ */

func TestValidateMarks(t *testing.T) {
	cases := []struct {
		name    string
		marks   []model.InterviewMarkModel
		wantErr bool
	}{
		{"empty set ok", nil, false},
		{"in range", []model.InterviewMarkModel{mark("English", 20, 25)}, false},
		{"boundary zero", []model.InterviewMarkModel{mark("English", 0, 25)}, false},
		{"boundary max", []model.InterviewMarkModel{mark("English", 25, 25)}, false},
		{"negative", []model.InterviewMarkModel{mark("English", -1, 25)}, true},
		{"above max", []model.InterviewMarkModel{mark("English", 26, 25)}, true},
		{"zero max", []model.InterviewMarkModel{mark("English", 0, 0)}, true},
		{"blank subject", []model.InterviewMarkModel{mark("", 10, 25)}, true},
		{"one bad poisons the set", []model.InterviewMarkModel{
			mark("English", 20, 25),
			mark("Maths", 30, 25),
		}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateMarks(tc.marks)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrMarksOutOfRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/* ============================================
   Transactional replace
============================================ */

func TestSaveScores_DeleteThenInsertInOneTx(t *testing.T) {
	db, mock := newMockDB(t)
	appID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "interview_marks" WHERE interview_mark_application_id = \$1 AND interview_mark_application_type = \$2`).
		WithArgs(appID, constants.FormTypeKgStd).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO "interview_marks"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := NewScoreLedger(db).SaveScores(appID, constants.FormTypeKgStd, []model.InterviewMarkModel{
		mark("English", 20, 25),
		mark("Maths", 18, 25),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveScores_EmptyListClearsLedger(t *testing.T) {
	db, mock := newMockDB(t)
	appID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "interview_marks"`).
		WithArgs(appID, constants.FormTypePlusOne).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := NewScoreLedger(db).SaveScores(appID, constants.FormTypePlusOne, nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveScores_OutOfRangeNeverTouchesDB(t *testing.T) {
	db, mock := newMockDB(t)

	err := NewScoreLedger(db).SaveScores(uuid.New(), constants.FormTypeKgStd, []model.InterviewMarkModel{
		mark("English", 26, 25),
	})
	assert.ErrorIs(t, err, ErrMarksOutOfRange)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveScores_InsertFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	appID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "interview_marks"`).
		WithArgs(appID, constants.FormTypeKgStd).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "interview_marks"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := NewScoreLedger(db).SaveScores(appID, constants.FormTypeKgStd, []model.InterviewMarkModel{
		mark("English", 20, 25),
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetScores_ReturnsOrphansToo(t *testing.T) {
	db, mock := newMockDB(t)
	appID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "interview_marks" WHERE interview_mark_application_id = \$1`).
		WithArgs(appID).
		WillReturnRows(sqlmock.NewRows([]string{
			"interview_mark_subject_name", "interview_mark_marks_obtained", "interview_mark_max_marks",
		}).
			AddRow("English", 20, 25).
			AddRow("Retired Subject", 12, 25))

	rows, err := NewScoreLedger(db).GetScores(appID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
