package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	supervisiController "supervisiku_backend/internals/features/supervisi/supervisi/controller"
)

// SupervisiUserRoutes: alur perawat — isi supervisi, lihat milik sendiri,
// tanda tangan sendiri (group /api/n).
// NB: /ringkasan harus terdaftar sebelum /:id.
func SupervisiUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := supervisiController.NewSupervisiController(db)

	supervisi := user.Group("/supervisi")
	supervisi.Get("/ringkasan", ctrl.GetRingkasanSaya)
	supervisi.Post("/isi/:format_id", ctrl.CreateSupervisi)
	supervisi.Get("/:id", ctrl.GetSupervisiByID)
	supervisi.Get("/:id/laporan", ctrl.GetLaporan)
	supervisi.Post("/:id/ttd-perawat", ctrl.UploadTTDPerawat)
}

// SupervisiAdminRoutes: alur kepala ruangan — rekap, koreksi, info & TTD
// kepala, hapus (group /api/a).
func SupervisiAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := supervisiController.NewSupervisiController(db)

	supervisi := admin.Group("/supervisi")
	supervisi.Get("/", ctrl.GetAllSupervisi)
	supervisi.Get("/:id", ctrl.GetSupervisiByID)
	supervisi.Get("/:id/laporan", ctrl.GetLaporan)
	supervisi.Put("/:id", ctrl.UpdateSupervisi)
	supervisi.Put("/:id/kepala", ctrl.UpdateKepalaInfo)
	supervisi.Post("/:id/ttd-kepala", ctrl.UploadTTDKepala)
	supervisi.Post("/:id/ttd-perawat", ctrl.UploadTTDPerawat)
	supervisi.Delete("/:id", ctrl.DeleteSupervisi)
}
