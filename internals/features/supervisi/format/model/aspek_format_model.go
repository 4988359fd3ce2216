package model

import (
	"time"

	"github.com/google/uuid"
)

// AspekFormatModel: satu aspek yang dinilai dari sebuah item.
// d / td sengaja dua boolean independen (dikerjakan / tidak dikerjakan);
// keduanya false berarti aspek tidak dinilai sama sekali.
type AspekFormatModel struct {
	AspekFormatID           uuid.UUID `gorm:"column:aspek_format_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"aspek_format_id"`
	AspekFormatItemFormatID uuid.UUID `gorm:"column:aspek_format_item_format_id;type:uuid;not null;index" json:"aspek_format_item_format_id"`
	AspekFormatNama         string    `gorm:"column:aspek_format_nama;size:500;not null" json:"aspek_format_nama"`
	AspekFormatD            bool      `gorm:"column:aspek_format_d;not null;default:false" json:"aspek_format_d"`
	AspekFormatTD           bool      `gorm:"column:aspek_format_td;not null;default:false" json:"aspek_format_td"`
	AspekFormatCreatedAt    time.Time `gorm:"column:aspek_format_created_at;autoCreateTime" json:"aspek_format_created_at"`

	// Relations
	ItemFormat *ItemFormatModel `gorm:"foreignKey:AspekFormatItemFormatID;references:ItemFormatID;constraint:OnDelete:CASCADE" json:"-"`
}

func (AspekFormatModel) TableName() string {
	return "aspek_format"
}
