package service

import (
	"github.com/google/uuid"

	formatModel "supervisiku_backend/internals/features/supervisi/format/model"
	"supervisiku_backend/internals/features/supervisi/supervisi/model"
)

// SusunJawaban membangun baris jawaban dari form sparse: checked melaporkan
// apakah key d_<aspek_id> / td_<aspek_id> tercentang (key absen = false).
// Satu baris dibuat untuk SETIAP aspek format tanpa kecuali — aspek yang
// tidak disentuh tetap tercatat sebagai baris both-false.
func SusunJawaban(
	format formatModel.FormatSupervisiModel,
	supervisiID uuid.UUID,
	checked func(key string) bool,
) []model.JawabanAspekModel {
	jawaban := make([]model.JawabanAspekModel, 0, format.JumlahAspek())
	for _, item := range format.Items {
		for _, aspek := range item.Aspek {
			aspekID := aspek.AspekFormatID.String()
			jawaban = append(jawaban, model.JawabanAspekModel{
				JawabanAspekSupervisiID:   supervisiID,
				JawabanAspekAspekFormatID: aspek.AspekFormatID,
				JawabanAspekD:             checked("d_" + aspekID),
				JawabanAspekTD:            checked("td_" + aspekID),
			})
		}
	}
	return jawaban
}
