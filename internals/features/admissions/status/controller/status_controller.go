// file: internals/features/admissions/status/controller/status_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	appDto "sekolahku_backend/internals/features/admissions/applications/dto"
	appService "sekolahku_backend/internals/features/admissions/applications/service"
	interviewService "sekolahku_backend/internals/features/admissions/interviews/service"
	settingsService "sekolahku_backend/internals/features/admissions/settings/service"
	dto "sekolahku_backend/internals/features/admissions/status/dto"
	helper "sekolahku_backend/internals/helpers"
)

/* ============================================
   Controller (public status lookup)
============================================ */

type StatusController struct {
	DB       *gorm.DB
	Store    *appService.ApplicationStore
	Settings *settingsService.SettingsService
	Recon    *interviewService.ReconciliationService
}

func NewStatusController(db *gorm.DB) *StatusController {
	return &StatusController{
		DB:       db,
		Store:    appService.NewApplicationStore(db),
		Settings: settingsService.NewSettingsService(db),
		Recon:    interviewService.NewReconciliationService(db),
	}
}

/* ============================================
   LOOKUP
   POST /api/public/admissions/status
============================================ */

// Lookup answers "where is my application?". The miss response is uniform on
// purpose: a wrong number and a wrong mobile are indistinguishable, so the
// endpoint cannot be used to enumerate applications.
func (ctl *StatusController) Lookup(c *fiber.Ctx) error {
	var p dto.StatusLookupDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	p.Normalize()
	if !p.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Application number and mobile number are required")
	}

	app, err := ctl.Store.FindByNumberAndMobile(p.ApplicationNumber, p.MobileNumber)
	if err != nil {
		if errors.Is(err, appService.ErrApplicationNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No application matched the given details")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Lookup failed")
	}

	// academic year is supplementary: missing settings row -> null
	year, err := ctl.Settings.AcademicYearFor(app.FormType)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Lookup failed")
	}
	var academicYear any
	if year != "" {
		academicYear = year
	}

	// merged interview view; empty when the interview is not yet configured,
	// a hard error when storage misbehaves
	results, err := ctl.Recon.ResultsFor(app.ID(), app.FormType)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Lookup failed")
	}

	var payload map[string]any
	if app.FormType == constants.FormTypeKgStd {
		payload = appDto.ToPublicMapKgStd(app.KgStd)
	} else {
		payload = appDto.ToPublicMapPlusOne(app.PlusOne)
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"application":     helper.CompactMap(payload),
		"applicationType": app.FormType,
		"academicYear":    academicYear,
		"interviewMarks":  results,
	})
}
