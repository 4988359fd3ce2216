package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	formatRoute "supervisiku_backend/internals/features/supervisi/format/route"
	supervisiRoute "supervisiku_backend/internals/features/supervisi/supervisi/route"
)

func SupervisiUserRoutes(user fiber.Router, db *gorm.DB) {
	formatRoute.FormatUserRoutes(user, db)
	supervisiRoute.SupervisiUserRoutes(user, db)
}

func SupervisiAdminRoutes(admin fiber.Router, db *gorm.DB) {
	formatRoute.FormatAdminRoutes(admin, db)
	supervisiRoute.SupervisiAdminRoutes(admin, db)
}
