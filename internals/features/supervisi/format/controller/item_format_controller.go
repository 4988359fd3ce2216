package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"supervisiku_backend/internals/features/supervisi/format/dto"
	"supervisiku_backend/internals/features/supervisi/format/model"
	helper "supervisiku_backend/internals/helpers"
)

type ItemFormatController struct {
	DB *gorm.DB
}

func NewItemFormatController(db *gorm.DB) *ItemFormatController {
	return &ItemFormatController{DB: db}
}

// =============================
// ➕ Tambah beberapa item + aspek sekaligus (1 transaksi)
// =============================
func (ctrl *ItemFormatController) AddItems(c *fiber.Ctx) error {
	formatID, err := uuid.Parse(c.Params("format_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID format tidak valid")
	}

	var req dto.CreateItemsRequest
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

	created := make([]model.ItemFormatModel, 0, len(req.Items))
	if err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		for _, itemReq := range req.Items {
			pertanyaan := strings.TrimSpace(itemReq.Pertanyaan)
			if pertanyaan == "" {
				continue // baris kosong dari form dilewati, sama seperti aplikasi lama
			}

			item := model.ItemFormatModel{
				ItemFormatFormatSupervisiID: format.FormatSupervisiID,
				ItemFormatPertanyaan:        pertanyaan,
				ItemFormatBobot:             1,
			}
			if itemReq.Bobot != nil {
				item.ItemFormatBobot = *itemReq.Bobot
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			for _, aspekReq := range itemReq.Aspek {
				namaAspek := strings.TrimSpace(aspekReq.NamaAspek)
				if namaAspek == "" {
					continue
				}
				aspek := model.AspekFormatModel{
					AspekFormatItemFormatID: item.ItemFormatID,
					AspekFormatNama:         namaAspek,
					AspekFormatD:            aspekReq.D,
					AspekFormatTD:           aspekReq.TD,
				}
				if err := tx.Create(&aspek).Error; err != nil {
					return err
				}
				item.Aspek = append(item.Aspek, aspek)
			}
			created = append(created, item)
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan item format")
	}

	out := make([]dto.ItemFormatDTO, 0, len(created))
	for _, it := range created {
		out = append(out, dto.ToItemFormatDTO(it))
	}
	return helper.JsonCreated(c, "Item format berhasil ditambahkan", out)
}

// =============================
// ✏️ Edit item + upsert/hapus aspek (1 transaksi)
// =============================
func (ctrl *ItemFormatController) UpdateItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("item_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID item tidak valid")
	}

	var req dto.UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFormat.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var item model.ItemFormatModel
	if err := ctrl.DB.First(&item, "item_format_id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Item format tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil item")
	}

	if err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if req.Pertanyaan != nil {
			pertanyaan := strings.TrimSpace(*req.Pertanyaan)
			if pertanyaan != "" {
				updates["item_format_pertanyaan"] = pertanyaan
			}
		}
		if req.Bobot != nil {
			updates["item_format_bobot"] = *req.Bobot
		}
		if len(updates) > 0 {
			if err := tx.Model(&item).Updates(updates).Error; err != nil {
				return err
			}
		}

		for _, aspekReq := range req.Aspek {
			switch {
			case aspekReq.Delete && aspekReq.AspekFormatID != nil:
				aspekID, err := uuid.Parse(*aspekReq.AspekFormatID)
				if err != nil {
					return err
				}
				if err := tx.Delete(&model.AspekFormatModel{},
					"aspek_format_id = ? AND aspek_format_item_format_id = ?", aspekID, item.ItemFormatID).Error; err != nil {
					return err
				}
			case aspekReq.AspekFormatID != nil:
				aspekID, err := uuid.Parse(*aspekReq.AspekFormatID)
				if err != nil {
					return err
				}
				if err := tx.Model(&model.AspekFormatModel{}).
					Where("aspek_format_id = ? AND aspek_format_item_format_id = ?", aspekID, item.ItemFormatID).
					Updates(map[string]interface{}{
						"aspek_format_nama": strings.TrimSpace(aspekReq.NamaAspek),
						"aspek_format_d":    aspekReq.D,
						"aspek_format_td":   aspekReq.TD,
					}).Error; err != nil {
					return err
				}
			default:
				namaAspek := strings.TrimSpace(aspekReq.NamaAspek)
				if namaAspek == "" {
					continue
				}
				if err := tx.Create(&model.AspekFormatModel{
					AspekFormatItemFormatID: item.ItemFormatID,
					AspekFormatNama:         namaAspek,
					AspekFormatD:            aspekReq.D,
					AspekFormatTD:           aspekReq.TD,
				}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui item format")
	}

	// Muat ulang item beserta aspek terbaru
	if err := ctrl.DB.
		Preload("Aspek", func(db *gorm.DB) *gorm.DB {
			return db.Order("aspek_format_created_at asc")
		}).
		First(&item, "item_format_id = ?", itemID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat item")
	}

	return helper.JsonUpdated(c, "Item format berhasil diperbarui", dto.ToItemFormatDTO(item))
}

// =============================
// ❌ Hapus item (cascade ke aspek)
// =============================
func (ctrl *ItemFormatController) DeleteItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("item_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID item tidak valid")
	}

	res := ctrl.DB.Delete(&model.ItemFormatModel{}, "item_format_id = ?", itemID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus item")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Item format tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Item format berhasil dihapus", nil)
}

// =============================
// ❌ Hapus satu aspek
// =============================
func (ctrl *ItemFormatController) DeleteAspek(c *fiber.Ctx) error {
	aspekID, err := uuid.Parse(c.Params("aspek_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID aspek tidak valid")
	}

	res := ctrl.DB.Delete(&model.AspekFormatModel{}, "aspek_format_id = ?", aspekID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus aspek")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Aspek tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Aspek penilaian berhasil dihapus", nil)
}
