package model

import (
	"time"

	"github.com/google/uuid"

	FormatModel "supervisiku_backend/internals/features/supervisi/format/model"
)

// JawabanAspekModel: satu tanda perawat terhadap satu aspek, dalam satu supervisi.
// Satu baris dibuat untuk SETIAP aspek yang tampil di form, termasuk yang
// tidak disentuh sama sekali (d dan td sama-sama false) — catatan "tidak dinilai"
// memang disengaja.
type JawabanAspekModel struct {
	JawabanAspekID            uuid.UUID `gorm:"column:jawaban_aspek_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"jawaban_aspek_id"`
	JawabanAspekSupervisiID   uuid.UUID `gorm:"column:jawaban_aspek_supervisi_id;type:uuid;not null;index" json:"jawaban_aspek_supervisi_id"`
	JawabanAspekAspekFormatID uuid.UUID `gorm:"column:jawaban_aspek_aspek_format_id;type:uuid;not null;index" json:"jawaban_aspek_aspek_format_id"`
	JawabanAspekD             bool      `gorm:"column:jawaban_aspek_d;not null;default:false" json:"jawaban_aspek_d"`
	JawabanAspekTD            bool      `gorm:"column:jawaban_aspek_td;not null;default:false" json:"jawaban_aspek_td"`
	JawabanAspekCreatedAt     time.Time `gorm:"column:jawaban_aspek_created_at;autoCreateTime" json:"jawaban_aspek_created_at"`

	// Relations
	Supervisi   *SupervisiModel                `gorm:"foreignKey:JawabanAspekSupervisiID;references:SupervisiID;constraint:OnDelete:CASCADE" json:"-"`
	AspekFormat *FormatModel.AspekFormatModel  `gorm:"foreignKey:JawabanAspekAspekFormatID;references:AspekFormatID;constraint:OnDelete:CASCADE" json:"aspek_format,omitempty"`
}

func (JawabanAspekModel) TableName() string {
	return "jawaban_aspek"
}

// Dinilai: aspek dianggap dinilai kalau salah satu tanda diisi.
func (j *JawabanAspekModel) Dinilai() bool {
	return j.JawabanAspekD || j.JawabanAspekTD
}
