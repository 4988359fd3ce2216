package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"supervisiku_backend/internals/features/supervisi/format/dto"
	"supervisiku_backend/internals/features/supervisi/format/model"
	helper "supervisiku_backend/internals/helpers"
)

var validateFormat = validator.New()

type FormatSupervisiController struct {
	DB *gorm.DB
}

func NewFormatSupervisiController(db *gorm.DB) *FormatSupervisiController {
	return &FormatSupervisiController{DB: db}
}

// =============================
// ➕ Tambah format
// =============================
func (ctrl *FormatSupervisiController) CreateFormat(c *fiber.Ctx) error {
	var req dto.CreateFormatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Nama = strings.TrimSpace(req.Nama)
	if err := validateFormat.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	format := model.FormatSupervisiModel{
		FormatSupervisiNama:      req.Nama,
		FormatSupervisiDeskripsi: req.Deskripsi,
	}
	if err := ctrl.DB.Create(&format).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat format supervisi")
	}

	return helper.JsonCreated(c, "Format supervisi berhasil dibuat", dto.ToFormatSupervisiDTO(format))
}

// =============================
// 📄 Daftar format (items + aspek ikut dimuat)
// =============================
func (ctrl *FormatSupervisiController) GetAllFormats(c *fiber.Ctx) error {
	var formats []model.FormatSupervisiModel
	if err := ctrl.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_format_created_at asc")
		}).
		Preload("Items.Aspek", func(db *gorm.DB) *gorm.DB {
			return db.Order("aspek_format_created_at asc")
		}).
		Order("format_supervisi_created_at asc").
		Find(&formats).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar format")
	}

	out := make([]dto.FormatSupervisiDTO, 0, len(formats))
	for _, f := range formats {
		out = append(out, dto.ToFormatSupervisiDTO(f))
	}
	return helper.JsonOK(c, "Daftar format berhasil diambil", out)
}

// =============================
// 🔍 Detail format
// =============================
func (ctrl *FormatSupervisiController) GetFormatByID(c *fiber.Ctx) error {
	formatID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID format tidak valid")
	}

	format, err := ctrl.findFormatWithItems(formatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Format supervisi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil format")
	}

	return helper.JsonOK(c, "Detail format berhasil diambil", dto.ToFormatSupervisiDTO(*format))
}

// =============================
// ✏️ Edit format (nama / deskripsi)
// =============================
func (ctrl *FormatSupervisiController) UpdateFormat(c *fiber.Ctx) error {
	formatID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID format tidak valid")
	}

	var req dto.UpdateFormatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFormat.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var format model.FormatSupervisiModel
	if err := ctrl.DB.First(&format, "format_supervisi_id = ?", formatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Format supervisi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil format")
	}

	updates := map[string]interface{}{}
	if req.Nama != nil {
		nama := strings.TrimSpace(*req.Nama)
		if nama == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Nama format tidak boleh kosong")
		}
		updates["format_supervisi_nama"] = nama
	}
	if req.Deskripsi != nil {
		updates["format_supervisi_deskripsi"] = *req.Deskripsi
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.ToFormatSupervisiDTO(format))
	}

	if err := ctrl.DB.Model(&format).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui format")
	}

	return helper.JsonUpdated(c, "Format berhasil diperbarui", dto.ToFormatSupervisiDTO(format))
}

// =============================
// ❌ Hapus format (cascade ke item + aspek)
// =============================
func (ctrl *FormatSupervisiController) DeleteFormat(c *fiber.Ctx) error {
	formatID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID format tidak valid")
	}

	res := ctrl.DB.Delete(&model.FormatSupervisiModel{}, "format_supervisi_id = ?", formatID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus format")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Format supervisi tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Format berhasil dihapus", nil)
}

func (ctrl *FormatSupervisiController) findFormatWithItems(formatID uuid.UUID) (*model.FormatSupervisiModel, error) {
	var format model.FormatSupervisiModel
	if err := ctrl.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_format_created_at asc")
		}).
		Preload("Items.Aspek", func(db *gorm.DB) *gorm.DB {
			return db.Order("aspek_format_created_at asc")
		}).
		First(&format, "format_supervisi_id = ?", formatID).Error; err != nil {
		return nil, err
	}
	return &format, nil
}
