package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"supervisiku_backend/internals/features/supervisi/supervisi/dto"
	"supervisiku_backend/internals/features/supervisi/supervisi/model"
	"supervisiku_backend/internals/features/supervisi/supervisi/service"
	helper "supervisiku_backend/internals/helpers"
)

// =============================
// 📊 Ringkasan milik perawat yang login
// =============================
func (ctrl *SupervisiController) GetRingkasanSaya(c *fiber.Ctx) error {
	perawatID, err := currentUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	var list []model.SupervisiModel
	if err := ctrl.DB.
		Preload("FormatSupervisi").
		Where("supervisi_perawat_id = ?", perawatID).
		Order("supervisi_tanggal DESC, supervisi_created_at DESC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil ringkasan")
	}

	cards := make([]dto.SupervisiCardDTO, 0, len(list))
	selesai := 0
	var sum float64
	for _, s := range list {
		card := dto.ToSupervisiCardDTO(s)
		if card.StatusDone {
			selesai++
		}
		sum += s.SupervisiSkorTotal
		cards = append(cards, card)
	}

	avg := 0.0
	if len(list) > 0 {
		avg = service.Round1(sum / float64(len(list)))
	}

	return helper.JsonOK(c, "Ringkasan supervisi berhasil diambil", dto.RingkasanDTO{
		Cards: cards,
		Summary: dto.RingkasanSummaryDTO{
			Total:    len(list),
			Avg:      avg,
			Selesai:  selesai,
			Menunggu: len(list) - selesai,
		},
	})
}

// =============================
// 📄 Data laporan satu supervisi
// =============================
// Data lengkap untuk dirender jadi dokumen cetak oleh kolaborator:
// judul, baris info, tabel item/aspek dengan tanda D/TD, skor, dan TTD.
// 409 kalau format sumbernya sudah dihapus — jawaban masih ada tapi
// pertanyaannya tidak bisa direkonstruksi.
func (ctrl *SupervisiController) GetLaporan(c *fiber.Ctx) error {
	supervisi, errResp := ctrl.findSupervisiFull(c)
	if supervisi == nil {
		return errResp
	}
	if !canViewSupervisi(c, supervisi) {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda hanya dapat melihat supervisi milik Anda sendiri")
	}

	if supervisi.SupervisiFormatSupervisiID == nil || supervisi.FormatSupervisi == nil {
		return helper.JsonError(c, fiber.StatusConflict,
			"Format supervisi sudah dihapus, laporan tidak dapat disusun")
	}

	// Muat ulang format beserta item & aspek terurut
	var format = *supervisi.FormatSupervisi
	if err := ctrl.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_format_created_at asc")
		}).
		Preload("Items.Aspek", func(db *gorm.DB) *gorm.DB {
			return db.Order("aspek_format_created_at asc")
		}).
		First(&format, "format_supervisi_id = ?", format.FormatSupervisiID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat format")
	}

	jawabanByAspek := make(map[uuid.UUID]model.JawabanAspekModel, len(supervisi.JawabanAspek))
	for _, j := range supervisi.JawabanAspek {
		jawabanByAspek[j.JawabanAspekAspekFormatID] = j
	}

	items := make([]dto.LaporanItemRow, 0, len(format.Items))
	for _, item := range format.Items {
		row := dto.LaporanItemRow{
			Pertanyaan: item.ItemFormatPertanyaan,
			Aspek:      make([]dto.LaporanAspekRow, 0, len(item.Aspek)),
		}
		for _, aspek := range item.Aspek {
			j := jawabanByAspek[aspek.AspekFormatID] // zero value = tidak dinilai
			row.Aspek = append(row.Aspek, dto.LaporanAspekRow{
				NamaAspek: aspek.AspekFormatNama,
				D:         j.JawabanAspekD,
				TD:        j.JawabanAspekTD,
			})
		}
		items = append(items, row)
	}

	supervisiDTO := dto.ToSupervisiDTO(*supervisi, false)
	laporan := dto.LaporanDTO{
		Judul:       "SUPERVISI " + strings.ToUpper(format.FormatSupervisiNama),
		PerawatNama: supervisi.PerawatDisplay(),
		Ruang:       supervisi.SupervisiRuang,
		Tim:         supervisi.SupervisiTim,
		JenjangPK:   supervisi.SupervisiJenjangPK,
		Tanggal:     supervisiDTO.Tanggal,
		SkorTotal:   service.Round1(supervisi.SupervisiSkorTotal),
		Items:       items,
		TTDPerawat:  supervisi.SupervisiTTDPerawat,
		TTDKepala:   supervisi.SupervisiTTDKepala,
		KepalaNama:  supervisi.KepalaDisplay(),
		KepalaNIP:   "",
	}
	if supervisi.SupervisiKepalaNIP != nil {
		laporan.KepalaNIP = *supervisi.SupervisiKepalaNIP
	}

	return helper.JsonOK(c, "Data laporan berhasil disusun", laporan)
}
