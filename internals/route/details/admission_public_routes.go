// file: internals/route/details/admission_public_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	appController "sekolahku_backend/internals/features/admissions/applications/controller"
	statusController "sekolahku_backend/internals/features/admissions/status/controller"
	"sekolahku_backend/internals/middlewares"
)

// AdmissionPublicRoutes: unauthenticated endpoints, called straight from the
// browser-hosted front end.
func AdmissionPublicRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()

	apps := appController.NewApplicationPublicController(db, v)
	status := statusController.NewStatusController(db)

	grp := r.Group("/admissions")
	grp.Post("/kg-std", middlewares.SubmissionRateLimiter(), apps.SubmitKgStd)
	grp.Post("/plus-one", middlewares.SubmissionRateLimiter(), apps.SubmitPlusOne)
	grp.Post("/status", middlewares.StatusLookupRateLimiter(), status.Lookup)
}
