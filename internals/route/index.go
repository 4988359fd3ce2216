// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"supervisiku_backend/internals/constants"
	routeDetails "supervisiku_backend/internals/route/details"

	authMiddleware "supervisiku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH (publik + protected) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PERAWAT & KEPALA (login) =====================
	log.Println("[INFO] Setting up /api/n group (semua role login)...")
	user := app.Group("/api/n",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(
			"Akses khusus pengguna terdaftar",
			constants.AllRoles,
		),
	)

	// ===================== KEPALA RUANGAN =====================
	log.Println("[INFO] Setting up /api/a group (kepala ruangan)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorKepala("manajemen supervisi"),
			constants.KepalaOnly,
		),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Supervisi routes...")
	routeDetails.SupervisiUserRoutes(user, db)
	routeDetails.SupervisiAdminRoutes(admin, db)

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserAdminRoutes(admin, db)
}
