// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authAdmin "sekolahku_backend/internals/middlewares/auth_admin"
	routeDetails "sekolahku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.AdmissionPublicRoutes(public, db)

	// ===================== ADMIN =====================
	// Tokens come from the hosting platform's auth service; this group only
	// verifies them and gates on the admin role.
	log.Println("[INFO] Setting up ADMIN group (JWT + role)...")
	admin := app.Group("/api/a",
		authAdmin.AdminJWT(authAdmin.AdminJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			RequiredRole:        configs.AdminRole,
			AllowCookieFallback: true,
		}),
	)
	routeDetails.AdmissionAdminRoutes(admin, db)
}
