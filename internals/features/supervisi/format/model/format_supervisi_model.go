package model

import (
	"time"

	"github.com/google/uuid"
)

// FormatSupervisiModel: template kuisioner supervisi yang dibuat kepala ruangan
type FormatSupervisiModel struct {
	FormatSupervisiID        uuid.UUID `gorm:"column:format_supervisi_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"format_supervisi_id"`
	FormatSupervisiNama      string    `gorm:"column:format_supervisi_nama;size:255;not null" json:"format_supervisi_nama"`
	FormatSupervisiDeskripsi *string   `gorm:"column:format_supervisi_deskripsi;type:text" json:"format_supervisi_deskripsi,omitempty"`
	FormatSupervisiCreatedAt time.Time `gorm:"column:format_supervisi_created_at;autoCreateTime" json:"format_supervisi_created_at"`
	FormatSupervisiUpdatedAt time.Time `gorm:"column:format_supervisi_updated_at;autoUpdateTime" json:"format_supervisi_updated_at"`

	// Relations
	Items []ItemFormatModel `gorm:"foreignKey:ItemFormatFormatSupervisiID;references:FormatSupervisiID" json:"items,omitempty"`
}

func (FormatSupervisiModel) TableName() string {
	return "format_supervisi"
}

// JumlahAspek: total aspek dari semua item (hanya untuk tampilan, bukan skoring)
func (f *FormatSupervisiModel) JumlahAspek() int {
	total := 0
	for _, item := range f.Items {
		total += len(item.Aspek)
	}
	return total
}
