package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	formatController "supervisiku_backend/internals/features/supervisi/format/controller"
)

// FormatUserRoutes: perawat perlu membaca format untuk mengisi supervisi (group /api/n).
func FormatUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := formatController.NewFormatSupervisiController(db)

	format := user.Group("/format")
	format.Get("/", ctrl.GetAllFormats)
	format.Get("/:id", ctrl.GetFormatByID)
}

// FormatAdminRoutes: kelola format, item, dan aspek — kepala ruangan (group /api/a).
func FormatAdminRoutes(admin fiber.Router, db *gorm.DB) {
	formatCtrl := formatController.NewFormatSupervisiController(db)
	itemCtrl := formatController.NewItemFormatController(db)

	format := admin.Group("/format")
	format.Post("/", formatCtrl.CreateFormat)
	format.Get("/", formatCtrl.GetAllFormats)
	format.Get("/:id", formatCtrl.GetFormatByID)
	format.Put("/:id", formatCtrl.UpdateFormat)
	format.Delete("/:id", formatCtrl.DeleteFormat)
	format.Post("/:format_id/items", itemCtrl.AddItems)

	admin.Put("/items/:item_id", itemCtrl.UpdateItem)
	admin.Delete("/items/:item_id", itemCtrl.DeleteItem)
	admin.Delete("/aspek/:aspek_id", itemCtrl.DeleteAspek)
}
