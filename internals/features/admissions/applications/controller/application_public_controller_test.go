package controller

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
)

func newPublicApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	ctl := NewApplicationPublicController(db, nil)
	app := fiber.New()
	app.Post("/kg-std", ctl.SubmitKgStd)
	app.Post("/plus-one", ctl.SubmitPlusOne)
	return app, mock
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

// a complete, valid kg_std payload: the closed-window tests submit this on
// purpose, so that a gate that keeps executing would reach the insert instead
// of failing validation first
const validKgStdBody = `{
	"applicant_name": "Anita",
	"date_of_birth": "2020-06-15T00:00:00Z",
	"applied_class": "LKG",
	"mobile_number": "9876543210",
	"father_name": "Rajan",
	"mother_name": "Meena",
	"address_line1": "12 Beach Road",
	"district": "Kollam",
	"pincode": "691001"
}`

const validPlusOneBody = `{
	"applicant_name": "Vishnu",
	"date_of_birth": "2010-01-20T00:00:00Z",
	"mobile_number": "9876543210",
	"father_name": "Suresh",
	"mother_name": "Latha",
	"address_line1": "4 Hill View",
	"district": "Kollam",
	"pincode": "691001",
	"previous_school": "Govt HSS Kollam",
	"qualifying_board": "SSLC",
	"qualifying_reg_no": "SSLC123456",
	"qualifying_exam_year": 2026,
	"preferred_streams": ["science", "commerce"]
}`

func TestSubmit_ClosedFormIsForbidden(t *testing.T) {
	app, mock := newPublicApp(t)

	mock.ExpectQuery(`SELECT \* FROM "admission_form_settings"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"admission_form_setting_form_type", "admission_form_setting_is_open",
		}).AddRow(constants.FormTypeKgStd, false))

	// valid payload against a closed window: must stop at the gate, never
	// insert (no INSERT is expected on the mock)
	resp, raw := postJSON(t, app, "/kg-std", validKgStdBody)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Contains(t, string(raw), "closed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_NeverOpenedFormIsForbidden(t *testing.T) {
	app, mock := newPublicApp(t)

	// no settings row at all: the window was never opened
	mock.ExpectQuery(`SELECT \* FROM "admission_form_settings"`).
		WillReturnRows(sqlmock.NewRows([]string{"admission_form_setting_form_type"}))

	resp, raw := postJSON(t, app, "/plus-one", validPlusOneBody)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Contains(t, string(raw), "closed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_WindowCheckFailureIsServerError(t *testing.T) {
	app, mock := newPublicApp(t)

	mock.ExpectQuery(`SELECT \* FROM "admission_form_settings"`).
		WillReturnError(assert.AnError)

	resp, raw := postJSON(t, app, "/kg-std", validKgStdBody)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, string(raw), "admission window")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_InvalidPayloadIsUnprocessable(t *testing.T) {
	app, mock := newPublicApp(t)

	mock.ExpectQuery(`SELECT \* FROM "admission_form_settings"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"admission_form_setting_form_type", "admission_form_setting_is_open",
		}).AddRow(constants.FormTypeKgStd, true))

	// pincode too short, missing parent names
	resp, _ := postJSON(t, app, "/kg-std", `{
		"applicant_name": "Anita",
		"date_of_birth": "2020-06-15T00:00:00Z",
		"applied_class": "lkg",
		"mobile_number": "9876543210",
		"address_line1": "12 Beach Road",
		"district": "Kollam",
		"pincode": "691"
	}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
