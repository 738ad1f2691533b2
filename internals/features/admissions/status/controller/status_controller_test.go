package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/status", NewStatusController(db).Lookup)
	return app, mock
}

func postStatus(t *testing.T, app *fiber.App, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/status", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func expectEmptyProbes(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT \* FROM "kg_std_applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"kg_std_application_id"}))
	mock.ExpectQuery(`SELECT \* FROM "plus_one_applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"plus_one_application_id"}))
}

func TestLookup_BlankInputIsBadRequest(t *testing.T) {
	app, mock := newTestApp(t)

	resp, raw := postStatus(t, app, `{"applicationNumber":"  ","mobileNumber":""}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "required")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLookup_MalformedBodyIsBadRequest(t *testing.T) {
	app, mock := newTestApp(t)

	resp, _ := postStatus(t, app, `{"applicationNumber":`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Wrong number and wrong mobile must be indistinguishable from the outside:
// same status, byte-identical body.
func TestLookup_UniformMiss(t *testing.T) {
	app, mock := newTestApp(t)

	expectEmptyProbes(mock)
	respA, bodyA := postStatus(t, app, `{"applicationNumber":"ADM-KG-000","mobileNumber":"9876543210"}`)

	expectEmptyProbes(mock)
	respB, bodyB := postStatus(t, app, `{"applicationNumber":"ADM-KG-175000000000001","mobileNumber":"0000000000"}`)

	assert.Equal(t, fiber.StatusNotFound, respA.StatusCode)
	assert.Equal(t, fiber.StatusNotFound, respB.StatusCode)
	assert.Equal(t, bodyA, bodyB)
	assert.Contains(t, string(bodyA), "No application matched the given details")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLookup_ComposesApplicationYearAndMarks(t *testing.T) {
	app, mock := newTestApp(t)
	appID := uuid.New()
	dob := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "kg_std_applications"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"kg_std_application_id", "kg_std_application_number", "kg_std_application_applicant_name",
			"kg_std_application_date_of_birth", "kg_std_application_mobile_number", "kg_std_application_status",
		}).AddRow(appID, "ADM-KG-175000000000001", "Anita", dob, "9876543210", constants.StatusShortlisted))

	mock.ExpectQuery(`SELECT \* FROM "admission_form_settings"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"admission_form_setting_form_type", "admission_form_setting_academic_year", "admission_form_setting_is_open",
		}).AddRow(constants.FormTypeKgStd, "2026-27", true))

	mock.ExpectQuery(`SELECT \* FROM "interview_subjects"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"interview_subject_name", "interview_subject_max_marks", "interview_subject_display_order", "interview_subject_is_active",
		}).
			AddRow("English", 25, 1, true).
			AddRow("Maths", 25, 2, true))

	mock.ExpectQuery(`SELECT \* FROM "interview_marks"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"interview_mark_subject_name", "interview_mark_marks_obtained", "interview_mark_max_marks",
		}).AddRow("English", 20, 25))

	resp, raw := postStatus(t, app, `{"applicationNumber":"ADM-KG-175000000000001","mobileNumber":"9876543210"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, constants.FormTypeKgStd, envelope.Data["applicationType"])
	assert.Equal(t, "2026-27", envelope.Data["academicYear"])

	application, ok := envelope.Data["application"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ADM-KG-175000000000001", application["application_number"])
	assert.Equal(t, constants.StatusShortlisted, application["status"])
	// null-valued optionals are stripped, never rendered
	assert.NotContains(t, application, "email")

	marks, ok := envelope.Data["interviewMarks"].([]any)
	require.True(t, ok)
	require.Len(t, marks, 2)
	first := marks[0].(map[string]any)
	assert.Equal(t, "English", first["subject_name"])
	assert.Equal(t, float64(20), first["marks_obtained"])
	second := marks[1].(map[string]any)
	assert.Equal(t, "Maths", second["subject_name"])
	assert.Equal(t, float64(0), second["marks_obtained"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLookup_NoSettingsRowYieldsNullYear(t *testing.T) {
	app, mock := newTestApp(t)
	appID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "kg_std_applications"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"kg_std_application_id", "kg_std_application_number", "kg_std_application_status",
		}).AddRow(appID, "ADM-KG-175000000000001", constants.StatusSubmitted))

	mock.ExpectQuery(`SELECT \* FROM "admission_form_settings"`).
		WillReturnRows(sqlmock.NewRows([]string{"admission_form_setting_form_type"}))

	// no templates configured: empty marks array, no ledger query at all
	mock.ExpectQuery(`SELECT \* FROM "interview_subjects"`).
		WillReturnRows(sqlmock.NewRows([]string{"interview_subject_name"}))

	resp, raw := postStatus(t, app, `{"applicationNumber":"ADM-KG-175000000000001","mobileNumber":"9876543210"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Nil(t, envelope.Data["academicYear"])

	marks, ok := envelope.Data["interviewMarks"].([]any)
	require.True(t, ok)
	assert.Empty(t, marks)

	assert.NoError(t, mock.ExpectationsWereMet())
}
