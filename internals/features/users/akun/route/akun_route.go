package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	akunController "supervisiku_backend/internals/features/users/akun/controller"
)

// AkunAdminRoutes: manajemen akun, hanya kepala ruangan (group /api/a).
func AkunAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := akunController.NewAkunController(db)

	akun := admin.Group("/akun")
	akun.Get("/", ctrl.GetAllAkun)
	akun.Post("/", ctrl.CreateAkun)
	akun.Put("/:id", ctrl.UpdateAkun)
	akun.Delete("/:id", ctrl.DeleteAkun)
}
