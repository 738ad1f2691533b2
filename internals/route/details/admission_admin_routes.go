// file: internals/route/details/admission_admin_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	appController "sekolahku_backend/internals/features/admissions/applications/controller"
	interviewController "sekolahku_backend/internals/features/admissions/interviews/controller"
	settingsController "sekolahku_backend/internals/features/admissions/settings/controller"
)

// AdmissionAdminRoutes: authenticated-admin back office.
func AdmissionAdminRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()

	apps := appController.NewApplicationAdminController(db, v)
	interviews := interviewController.NewInterviewAdminController(db, v)
	settings := settingsController.NewSettingsAdminController(db, v)

	grp := r.Group("/admissions")

	// form settings (academic year, open/close)
	grp.Get("/settings", settings.List)
	grp.Put("/settings/:form_type", settings.Upsert)

	// interview subject catalog (full replace)
	grp.Get("/interview-subjects/:form_type", interviews.ListSubjects)
	grp.Put("/interview-subjects/:form_type", interviews.ReplaceSubjects)

	// applications
	grp.Get("/applications/:form_type", apps.List)
	grp.Get("/applications/:form_type/:id", apps.Detail)
	grp.Patch("/applications/:form_type/:id/status", apps.UpdateStatus)
	grp.Patch("/applications/plus_one/:id/stream", apps.AllotStream)

	// interview score sheet (merged view + save + raw history)
	grp.Get("/applications/:form_type/:id/interview-scores", interviews.GetScoreSheet)
	grp.Put("/applications/:form_type/:id/interview-scores", interviews.SaveScores)
	grp.Get("/applications/:form_type/:id/interview-scores/history", interviews.ScoreHistory)
}
