package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	FormatModel "supervisiku_backend/internals/features/supervisi/format/model"
	UserModel "supervisiku_backend/internals/features/users/user/model"
)

// Pilihan jenjang PK (Perawat Klinis)
var JenjangPKChoices = []string{"PK I", "PK II", "PK III", "PK IV"}

const (
	TimMin = 1
	TimMax = 4

	RuangDefault = "Imdad Hamid Lantai 2"
)

// Status TTD diturunkan dari kehadiran tanda tangan, tidak disimpan.
const (
	StatusTTDPending  = "pending"  // belum ada tanda tangan
	StatusTTDPartial  = "partial"  // baru satu tanda tangan
	StatusTTDComplete = "complete" // perawat + kepala sudah tanda tangan
)

// SupervisiModel: satu kejadian supervisi yang sudah diisi perawat.
// Referensi format nullable + SET NULL supaya riwayat supervisi tetap
// hidup walau formatnya dihapus admin.
type SupervisiModel struct {
	SupervisiID                uuid.UUID      `gorm:"column:supervisi_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"supervisi_id"`
	SupervisiFormatSupervisiID *uuid.UUID     `gorm:"column:supervisi_format_supervisi_id;type:uuid;index" json:"supervisi_format_supervisi_id,omitempty"`
	SupervisiPerawatID         uuid.UUID      `gorm:"column:supervisi_perawat_id;type:uuid;not null;index" json:"supervisi_perawat_id"`
	SupervisiKepalaID          *uuid.UUID     `gorm:"column:supervisi_kepala_id;type:uuid" json:"supervisi_kepala_id,omitempty"`
	SupervisiPerawatNama       *string        `gorm:"column:supervisi_perawat_nama;size:255" json:"supervisi_perawat_nama,omitempty"`
	SupervisiKepalaNama        *string        `gorm:"column:supervisi_kepala_nama;size:255" json:"supervisi_kepala_nama,omitempty"`
	SupervisiKepalaNIP         *string        `gorm:"column:supervisi_kepala_nip;size:100" json:"supervisi_kepala_nip,omitempty"`
	SupervisiTanggal           datatypes.Date `gorm:"column:supervisi_tanggal;not null" json:"supervisi_tanggal"`
	SupervisiTim               int            `gorm:"column:supervisi_tim;not null;default:1" json:"supervisi_tim"`
	SupervisiJenjangPK         string         `gorm:"column:supervisi_jenjang_pk;size:20;not null;default:'PK I'" json:"supervisi_jenjang_pk"`
	SupervisiRuang             string         `gorm:"column:supervisi_ruang;size:100;not null;default:'Imdad Hamid Lantai 2'" json:"supervisi_ruang"`
	SupervisiSkorTotal         float64        `gorm:"column:supervisi_skor_total;not null;default:0" json:"supervisi_skor_total"`
	SupervisiTTDPerawat        *string        `gorm:"column:supervisi_ttd_perawat;type:text" json:"supervisi_ttd_perawat,omitempty"`
	SupervisiTTDKepala         *string        `gorm:"column:supervisi_ttd_kepala;type:text" json:"supervisi_ttd_kepala,omitempty"`
	SupervisiTTDFile           *string        `gorm:"column:supervisi_ttd_file;type:text" json:"supervisi_ttd_file,omitempty"`
	SupervisiCreatedAt         time.Time      `gorm:"column:supervisi_created_at;autoCreateTime" json:"supervisi_created_at"`
	SupervisiUpdatedAt         time.Time      `gorm:"column:supervisi_updated_at;autoUpdateTime" json:"supervisi_updated_at"`

	// Relations
	FormatSupervisi *FormatModel.FormatSupervisiModel `gorm:"foreignKey:SupervisiFormatSupervisiID;references:FormatSupervisiID;constraint:OnDelete:SET NULL" json:"format_supervisi,omitempty"`
	Perawat         *UserModel.UserModel              `gorm:"foreignKey:SupervisiPerawatID;references:ID;constraint:OnDelete:CASCADE" json:"perawat,omitempty"`
	Kepala          *UserModel.UserModel              `gorm:"foreignKey:SupervisiKepalaID;references:ID;constraint:OnDelete:SET NULL" json:"kepala,omitempty"`
	JawabanAspek    []JawabanAspekModel               `gorm:"foreignKey:JawabanAspekSupervisiID;references:SupervisiID" json:"jawaban_aspek,omitempty"`
}

func (SupervisiModel) TableName() string {
	return "supervisi"
}

// StatusTTD menurunkan status dari kehadiran dua tanda tangan.
func (s *SupervisiModel) StatusTTD() string {
	return DeriveStatusTTD(s.SupervisiTTDPerawat, s.SupervisiTTDKepala)
}

func DeriveStatusTTD(ttdPerawat, ttdKepala *string) string {
	hasPerawat := ttdPerawat != nil && *ttdPerawat != ""
	hasKepala := ttdKepala != nil && *ttdKepala != ""
	switch {
	case hasPerawat && hasKepala:
		return StatusTTDComplete
	case hasPerawat || hasKepala:
		return StatusTTDPartial
	default:
		return StatusTTDPending
	}
}

// PerawatDisplay: urutan fallback nama perawat untuk laporan
// (nama custom → nama lengkap → username).
func (s *SupervisiModel) PerawatDisplay() string {
	if s.SupervisiPerawatNama != nil && *s.SupervisiPerawatNama != "" {
		return *s.SupervisiPerawatNama
	}
	if s.Perawat != nil {
		return s.Perawat.DisplayName()
	}
	return ""
}

// KepalaDisplay: nama custom → nama lengkap kepala → username kepala.
func (s *SupervisiModel) KepalaDisplay() string {
	if s.SupervisiKepalaNama != nil && *s.SupervisiKepalaNama != "" {
		return *s.SupervisiKepalaNama
	}
	if s.Kepala != nil {
		return s.Kepala.DisplayName()
	}
	return ""
}
