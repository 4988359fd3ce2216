package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"supervisiku_backend/internals/constants"
	"supervisiku_backend/internals/features/supervisi/supervisi/dto"
	"supervisiku_backend/internals/features/supervisi/supervisi/model"
	helper "supervisiku_backend/internals/helpers"
)

// =============================
// 🖊️ Info kepala ruangan (nama & NIP)
// =============================
func (ctrl *SupervisiController) UpdateKepalaInfo(c *fiber.Ctx) error {
	kepalaID, err := currentUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	supervisiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID supervisi tidak valid")
	}

	var req dto.UpdateKepalaInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSupervisi.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var supervisi model.SupervisiModel
	if err := ctrl.DB.First(&supervisi, "supervisi_id = ?", supervisiID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Supervisi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil supervisi")
	}

	updates := map[string]interface{}{
		"supervisi_kepala_id": kepalaID,
	}
	if req.KepalaNama != nil {
		updates["supervisi_kepala_nama"] = strings.TrimSpace(*req.KepalaNama)
	}
	if req.KepalaNIP != nil {
		updates["supervisi_kepala_nip"] = strings.TrimSpace(*req.KepalaNIP)
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&supervisi).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan info kepala ruangan")
	}

	if err := ctrl.DB.Preload("FormatSupervisi").Preload("Kepala").
		First(&supervisi, "supervisi_id = ?", supervisiID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat supervisi")
	}
	return helper.JsonUpdated(c, "Info kepala ruangan berhasil disimpan", dto.ToSupervisiDTO(supervisi, false))
}

// =============================
// ✍️ Upload TTD perawat
// =============================
// Perawat hanya boleh menandatangani supervisinya sendiri; kepala ruangan
// boleh mengunggah atas nama perawat saat koreksi. Upload ulang mengganti
// file lama (idempotent) dan TIDAK pernah menyentuh skor.
func (ctrl *SupervisiController) UploadTTDPerawat(c *fiber.Ctx) error {
	return ctrl.uploadTTD(c, "supervisi_ttd_perawat", func(s *model.SupervisiModel) *string {
		return s.SupervisiTTDPerawat
	}, true)
}

// =============================
// ✍️ Upload TTD kepala ruangan
// =============================
func (ctrl *SupervisiController) UploadTTDKepala(c *fiber.Ctx) error {
	return ctrl.uploadTTD(c, "supervisi_ttd_kepala", func(s *model.SupervisiModel) *string {
		return s.SupervisiTTDKepala
	}, false)
}

// replacedTTDURL: URL lama yang perlu dihapus setelah diganti oleh newURL.
// Kosong kalau belum ada file lama atau URL-nya sama.
func replacedTTDURL(old *string, newURL string) string {
	if old == nil || *old == "" || *old == newURL {
		return ""
	}
	return *old
}

func (ctrl *SupervisiController) uploadTTD(
	c *fiber.Ctx,
	column string,
	oldURL func(*model.SupervisiModel) *string,
	checkOwner bool,
) error {
	userID, err := currentUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	supervisiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID supervisi tidak valid")
	}

	fileHeader, err := c.FormFile("ttd")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tanda tangan wajib diunggah (field 'ttd')")
	}

	var supervisi model.SupervisiModel
	if err := ctrl.DB.First(&supervisi, "supervisi_id = ?", supervisiID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Supervisi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil supervisi")
	}

	if checkOwner {
		role, _ := c.Locals("userRole").(string)
		if role != constants.RoleKepala && supervisi.SupervisiPerawatID != userID {
			return helper.JsonError(c, fiber.StatusForbidden, "Anda hanya dapat menandatangani supervisi milik Anda sendiri")
		}
	}

	url, err := helper.UploadTTDImage("ttd_supervisi", fileHeader)
	if err != nil {
		log.Println("[ERROR] gagal upload TTD:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengunggah tanda tangan")
	}

	// Ambil URL lama SEBELUM update — GORM menulis nilai baru balik ke struct
	old := replacedTTDURL(oldURL(&supervisi), url)

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&supervisi).Update(column, url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan tanda tangan")
	}

	// File lama dihapus best-effort setelah yang baru tersimpan
	if old != "" {
		if err := helper.DeleteTTDImage(old); err != nil {
			log.Println("[WARNING] gagal hapus TTD lama:", err)
		}
	}

	if err := ctrl.DB.First(&supervisi, "supervisi_id = ?", supervisiID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat supervisi")
	}
	return helper.JsonUpdated(c, "Tanda tangan berhasil disimpan", fiber.Map{
		"supervisi_id": supervisi.SupervisiID,
		"status_ttd":   supervisi.StatusTTD(),
		"ttd_url":      url,
	})
}
