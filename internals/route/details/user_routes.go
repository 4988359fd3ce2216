package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	akunRoute "supervisiku_backend/internals/features/users/akun/route"
)

func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	akunRoute.AkunAdminRoutes(admin, db)
}
