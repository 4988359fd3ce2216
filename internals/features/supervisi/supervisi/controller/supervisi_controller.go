package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"supervisiku_backend/internals/constants"
	formatModel "supervisiku_backend/internals/features/supervisi/format/model"
	"supervisiku_backend/internals/features/supervisi/supervisi/dto"
	"supervisiku_backend/internals/features/supervisi/supervisi/model"
	"supervisiku_backend/internals/features/supervisi/supervisi/service"
	helper "supervisiku_backend/internals/helpers"
)

var validateSupervisi = validator.New()

type SupervisiController struct {
	DB *gorm.DB
}

func NewSupervisiController(db *gorm.DB) *SupervisiController {
	return &SupervisiController{DB: db}
}

// Nilai checkbox dari form HTML lama adalah "on"; klien API boleh kirim true/1.
func checkboxChecked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1":
		return true
	}
	return false
}

func currentUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("user_id tidak ditemukan di token")
	}
	return uuid.Parse(raw)
}

// =============================
// 📝 Isi supervisi (multipart, 1 transaksi)
// =============================
// Jawaban dikirim sparse: d_<aspek_id> / td_<aspek_id>. Key yang absen berarti
// false. Satu baris jawaban tetap dibuat untuk setiap aspek format — termasuk
// yang tidak disentuh — lalu skor dihitung dan disimpan dalam transaksi yang sama.
func (ctrl *SupervisiController) CreateSupervisi(c *fiber.Ctx) error {
	perawatID, err := currentUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	formatID, err := uuid.Parse(c.Params("format_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID format tidak valid")
	}

	var meta dto.CreateSupervisiMeta
	if err := c.BodyParser(&meta); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSupervisi.Struct(&meta); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var format formatModel.FormatSupervisiModel
	if err := ctrl.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_format_created_at asc")
		}).
		Preload("Items.Aspek", func(db *gorm.DB) *gorm.DB {
			return db.Order("aspek_format_created_at asc")
		}).
		First(&format, "format_supervisi_id = ?", formatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Format supervisi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil format")
	}

	ruang := strings.TrimSpace(meta.Ruang)
	if ruang == "" {
		ruang = model.RuangDefault
	}

	// TTD perawat boleh diikutkan langsung saat mengisi. Upload dulu sebelum
	// transaksi supaya kegagalan storage tidak meninggalkan baris setengah jadi.
	var ttdPerawatURL *string
	if fileHeader, err := c.FormFile("ttd_perawat"); err == nil && fileHeader != nil {
		url, err := helper.UploadTTDImage("ttd_supervisi", fileHeader)
		if err != nil {
			log.Println("[ERROR] gagal upload TTD perawat:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengunggah tanda tangan")
		}
		ttdPerawatURL = &url
	}

	supervisi := model.SupervisiModel{
		SupervisiFormatSupervisiID: &format.FormatSupervisiID,
		SupervisiPerawatID:         perawatID,
		SupervisiTanggal:           datatypes.Date(time.Now()),
		SupervisiTim:               meta.Tim,
		SupervisiJenjangPK:         meta.JenjangPK,
		SupervisiRuang:             ruang,
		SupervisiTTDPerawat:        ttdPerawatURL,
	}
	if nama := strings.TrimSpace(meta.PerawatNama); nama != "" {
		supervisi.SupervisiPerawatNama = &nama
	} else if fullName, ok := c.Locals("full_name").(string); ok && fullName != "" {
		supervisi.SupervisiPerawatNama = &fullName
	}

	if err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&supervisi).Error; err != nil {
			return err
		}

		jawaban := service.SusunJawaban(format, supervisi.SupervisiID, func(key string) bool {
			return checkboxChecked(c.FormValue(key))
		})
		if len(jawaban) > 0 {
			if err := tx.Create(&jawaban).Error; err != nil {
				return err
			}
		}

		skor := service.SkorSupervisi(jawaban)
		if err := tx.Model(&supervisi).
			Update("supervisi_skor_total", skor).Error; err != nil {
			return err
		}
		supervisi.SupervisiSkorTotal = skor
		supervisi.JawabanAspek = jawaban
		return nil
	}); err != nil {
		log.Println("[ERROR] gagal menyimpan supervisi:", err)
		// TTD yang terlanjur terupload ikut dibersihkan best-effort
		if ttdPerawatURL != nil {
			if delErr := helper.DeleteTTDImage(*ttdPerawatURL); delErr != nil {
				log.Println("[WARNING] gagal hapus TTD yatim:", delErr)
			}
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan supervisi")
	}

	supervisi.FormatSupervisi = &format
	return helper.JsonCreated(c, "Supervisi berhasil disimpan", dto.ToSupervisiDTO(supervisi, true))
}

// =============================
// 📄 Semua supervisi (kepala ruangan, paginated)
// =============================
func (ctrl *SupervisiController) GetAllSupervisi(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.SupervisiModel{})
	if perawatID := strings.TrimSpace(c.Query("perawat_id")); perawatID != "" {
		id, err := uuid.Parse(perawatID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "perawat_id tidak valid")
		}
		q = q.Where("supervisi_perawat_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var list []model.SupervisiModel
	if err := q.
		Preload("FormatSupervisi").
		Preload("Perawat").
		Order("supervisi_tanggal DESC, supervisi_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data supervisi")
	}

	out := make([]dto.SupervisiDTO, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ToSupervisiDTO(s, false))
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	pagination.Count = len(out)
	return helper.JsonList(c, "Data supervisi berhasil diambil", out, pagination)
}

// =============================
// 🔍 Detail supervisi (beserta jawaban)
// =============================
func (ctrl *SupervisiController) GetSupervisiByID(c *fiber.Ctx) error {
	supervisi, errResp := ctrl.findSupervisiFull(c)
	if supervisi == nil {
		return errResp // response error sudah ditulis
	}
	if !canViewSupervisi(c, supervisi) {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda hanya dapat melihat supervisi milik Anda sendiri")
	}
	return helper.JsonOK(c, "Detail supervisi berhasil diambil", dto.ToSupervisiDTO(*supervisi, true))
}

// =============================
// ✏️ Koreksi data (kepala ruangan)
// =============================
// Satu-satunya jalur yang boleh menimpa skor tersimpan.
func (ctrl *SupervisiController) UpdateSupervisi(c *fiber.Ctx) error {
	supervisiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID supervisi tidak valid")
	}

	var req dto.AdminUpdateSupervisiRequest
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

	updates := map[string]interface{}{}
	if req.Tim != nil {
		updates["supervisi_tim"] = *req.Tim
	}
	if req.JenjangPK != nil {
		updates["supervisi_jenjang_pk"] = *req.JenjangPK
	}
	if req.Ruang != nil {
		if ruang := strings.TrimSpace(*req.Ruang); ruang != "" {
			updates["supervisi_ruang"] = ruang
		}
	}
	if req.PerawatNama != nil {
		updates["supervisi_perawat_nama"] = strings.TrimSpace(*req.PerawatNama)
	}
	if req.SkorTotal != nil {
		updates["supervisi_skor_total"] = *req.SkorTotal
	}

	if len(updates) > 0 {
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&supervisi).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui supervisi")
		}
	}

	if err := ctrl.DB.
		Preload("FormatSupervisi").
		Preload("Perawat").
		First(&supervisi, "supervisi_id = ?", supervisiID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat supervisi")
	}
	return helper.JsonUpdated(c, "Supervisi berhasil diperbarui", dto.ToSupervisiDTO(supervisi, false))
}

// =============================
// ❌ Hapus supervisi (cascade ke jawaban)
// =============================
func (ctrl *SupervisiController) DeleteSupervisi(c *fiber.Ctx) error {
	supervisiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID supervisi tidak valid")
	}

	var supervisi model.SupervisiModel
	if err := ctrl.DB.First(&supervisi, "supervisi_id = ?", supervisiID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Supervisi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil supervisi")
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Delete(&model.SupervisiModel{}, "supervisi_id = ?", supervisiID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus supervisi")
	}

	// File tanda tangan dibersihkan best-effort, jangan gagalkan response
	for _, url := range []*string{supervisi.SupervisiTTDPerawat, supervisi.SupervisiTTDKepala} {
		if url != nil && *url != "" {
			if err := helper.DeleteTTDImage(*url); err != nil {
				log.Println("[WARNING] gagal hapus file TTD:", err)
			}
		}
	}

	return helper.JsonDeleted(c, "Supervisi berhasil dihapus", nil)
}

// canViewSupervisi: perawat hanya boleh melihat supervisinya sendiri,
// kepala ruangan boleh semua.
func canViewSupervisi(c *fiber.Ctx, supervisi *model.SupervisiModel) bool {
	role, _ := c.Locals("userRole").(string)
	if role == constants.RoleKepala {
		return true
	}
	userID, err := currentUserUUID(c)
	return err == nil && supervisi.SupervisiPerawatID == userID
}

// findSupervisiFull: ambil satu supervisi lengkap dengan relasi untuk
// detail & laporan. Error sudah dikirim sebagai response JSON.
func (ctrl *SupervisiController) findSupervisiFull(c *fiber.Ctx) (*model.SupervisiModel, error) {
	supervisiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "ID supervisi tidak valid")
	}

	var supervisi model.SupervisiModel
	if err := ctrl.DB.
		Preload("FormatSupervisi").
		Preload("Perawat").
		Preload("Kepala").
		Preload("JawabanAspek", func(db *gorm.DB) *gorm.DB {
			return db.Order("jawaban_aspek_created_at asc")
		}).
		Preload("JawabanAspek.AspekFormat").
		First(&supervisi, "supervisi_id = ?", supervisiID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Supervisi tidak ditemukan")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil supervisi")
	}
	return &supervisi, nil
}
