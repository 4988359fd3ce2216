package dto

import (
	"time"

	"supervisiku_backend/internals/features/supervisi/format/model"
)

// =============================
// 📤 Response DTO
// =============================
type AspekFormatDTO struct {
	AspekFormatID string `json:"aspek_format_id"`
	NamaAspek     string `json:"nama_aspek"`
	D             bool   `json:"d"`
	TD            bool   `json:"td"`
}

type ItemFormatDTO struct {
	ItemFormatID string           `json:"item_format_id"`
	Pertanyaan   string           `json:"pertanyaan"`
	Bobot        float64          `json:"bobot"`
	Aspek        []AspekFormatDTO `json:"aspek"`
}

type FormatSupervisiDTO struct {
	FormatSupervisiID string          `json:"format_supervisi_id"`
	Nama              string          `json:"nama"`
	Deskripsi         *string         `json:"deskripsi,omitempty"`
	JumlahAspek       int             `json:"jumlah_aspek"`
	Items             []ItemFormatDTO `json:"items,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// =============================
// 📥 Request DTO
// =============================
type CreateFormatRequest struct {
	Nama      string  `json:"nama" validate:"required,max=255"`
	Deskripsi *string `json:"deskripsi" validate:"omitempty"`
}

type UpdateFormatRequest struct {
	Nama      *string `json:"nama" validate:"omitempty,max=255"`
	Deskripsi *string `json:"deskripsi" validate:"omitempty"`
}

// CreateItemsRequest: tambah beberapa prosedur sekaligus beserta aspeknya
// (bentuk JSON dari form bertingkat prosedur_N / aspek_N_M di aplikasi lama)
type CreateItemsRequest struct {
	Items []CreateItemRequest `json:"items" validate:"required,min=1,dive"`
}

type CreateItemRequest struct {
	Pertanyaan string               `json:"pertanyaan" validate:"required"`
	Bobot      *float64             `json:"bobot" validate:"omitempty,gt=0"`
	Aspek      []CreateAspekRequest `json:"aspek" validate:"omitempty,dive"`
}

type CreateAspekRequest struct {
	NamaAspek string `json:"nama_aspek" validate:"required,max=500"`
	D         bool   `json:"d"`
	TD        bool   `json:"td"`
}

// UpdateItemRequest: edit pertanyaan + upsert aspek dalam satu aksi
type UpdateItemRequest struct {
	Pertanyaan *string              `json:"pertanyaan" validate:"omitempty"`
	Bobot      *float64             `json:"bobot" validate:"omitempty,gt=0"`
	Aspek      []UpsertAspekRequest `json:"aspek" validate:"omitempty,dive"`
}

type UpsertAspekRequest struct {
	AspekFormatID *string `json:"aspek_format_id" validate:"omitempty,uuid"` // nil = aspek baru
	NamaAspek     string  `json:"nama_aspek" validate:"required,max=500"`
	D             bool    `json:"d"`
	TD            bool    `json:"td"`
	Delete        bool    `json:"delete"` // true = hapus aspek ini
}

// =============================
// 🔁 Converters
// =============================
func ToAspekFormatDTO(m model.AspekFormatModel) AspekFormatDTO {
	return AspekFormatDTO{
		AspekFormatID: m.AspekFormatID.String(),
		NamaAspek:     m.AspekFormatNama,
		D:             m.AspekFormatD,
		TD:            m.AspekFormatTD,
	}
}

func ToItemFormatDTO(m model.ItemFormatModel) ItemFormatDTO {
	aspek := make([]AspekFormatDTO, 0, len(m.Aspek))
	for _, a := range m.Aspek {
		aspek = append(aspek, ToAspekFormatDTO(a))
	}
	return ItemFormatDTO{
		ItemFormatID: m.ItemFormatID.String(),
		Pertanyaan:   m.ItemFormatPertanyaan,
		Bobot:        m.ItemFormatBobot,
		Aspek:        aspek,
	}
}

func ToFormatSupervisiDTO(m model.FormatSupervisiModel) FormatSupervisiDTO {
	items := make([]ItemFormatDTO, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, ToItemFormatDTO(it))
	}
	return FormatSupervisiDTO{
		FormatSupervisiID: m.FormatSupervisiID.String(),
		Nama:              m.FormatSupervisiNama,
		Deskripsi:         m.FormatSupervisiDeskripsi,
		JumlahAspek:       m.JumlahAspek(),
		Items:             items,
		CreatedAt:         m.FormatSupervisiCreatedAt,
	}
}
