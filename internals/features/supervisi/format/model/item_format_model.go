package model

import (
	"time"

	"github.com/google/uuid"
)

// ItemFormatModel: satu prosedur/pertanyaan di dalam format supervisi
type ItemFormatModel struct {
	ItemFormatID                uuid.UUID `gorm:"column:item_format_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"item_format_id"`
	ItemFormatFormatSupervisiID uuid.UUID `gorm:"column:item_format_format_supervisi_id;type:uuid;not null;index" json:"item_format_format_supervisi_id"`
	ItemFormatPertanyaan        string    `gorm:"column:item_format_pertanyaan;type:text;not null" json:"item_format_pertanyaan"`
	// Bobot disimpan untuk kompatibilitas template lama; mode skoring berbobot tidak didukung
	ItemFormatBobot     float64   `gorm:"column:item_format_bobot;not null;default:1" json:"item_format_bobot"`
	ItemFormatCreatedAt time.Time `gorm:"column:item_format_created_at;autoCreateTime" json:"item_format_created_at"`

	// Relations
	FormatSupervisi *FormatSupervisiModel `gorm:"foreignKey:ItemFormatFormatSupervisiID;references:FormatSupervisiID;constraint:OnDelete:CASCADE" json:"-"`
	Aspek           []AspekFormatModel    `gorm:"foreignKey:AspekFormatItemFormatID;references:ItemFormatID" json:"aspek,omitempty"`
}

func (ItemFormatModel) TableName() string {
	return "item_format"
}
