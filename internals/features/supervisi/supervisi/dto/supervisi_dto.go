package dto

import (
	"time"

	"supervisiku_backend/internals/features/supervisi/supervisi/model"
	"supervisiku_backend/internals/features/supervisi/supervisi/service"
)

// =============================
// 📥 Request DTO
// =============================

// CreateSupervisiMeta: metadata form isi supervisi. Jawaban per-aspek dikirim
// sebagai key form sparse d_<aspek_id> / td_<aspek_id> (absen = false),
// dibaca langsung dari multipart form oleh controller.
type CreateSupervisiMeta struct {
	Tim         int    `form:"tim" validate:"required,min=1,max=4"`
	JenjangPK   string `form:"jenjang_pk" validate:"required,oneof='PK I' 'PK II' 'PK III' 'PK IV'"`
	Ruang       string `form:"ruang" validate:"omitempty,max=100"`
	PerawatNama string `form:"perawat_nama" validate:"omitempty,max=255"`
}

// UpdateKepalaInfoRequest: simpan nama & NIP kepala ruangan pada satu supervisi.
type UpdateKepalaInfoRequest struct {
	KepalaNama *string `json:"kepala_nama" validate:"omitempty,max=255"`
	KepalaNIP  *string `json:"kepala_nip" validate:"omitempty,max=100"`
}

// AdminUpdateSupervisiRequest: koreksi data tersimpan oleh kepala ruangan.
// Satu-satunya jalur yang boleh menulis skor secara langsung.
type AdminUpdateSupervisiRequest struct {
	Tim         *int     `json:"tim" validate:"omitempty,min=1,max=4"`
	JenjangPK   *string  `json:"jenjang_pk" validate:"omitempty,oneof='PK I' 'PK II' 'PK III' 'PK IV'"`
	Ruang       *string  `json:"ruang" validate:"omitempty,max=100"`
	PerawatNama *string  `json:"perawat_nama" validate:"omitempty,max=255"`
	SkorTotal   *float64 `json:"skor_total" validate:"omitempty,min=0,max=100"`
}

// =============================
// 📤 Response DTO
// =============================

type JawabanAspekDTO struct {
	JawabanAspekID string `json:"jawaban_aspek_id"`
	AspekFormatID  string `json:"aspek_format_id"`
	NamaAspek      string `json:"nama_aspek,omitempty"`
	D              bool   `json:"d"`
	TD             bool   `json:"td"`
}

type SupervisiDTO struct {
	SupervisiID   string            `json:"supervisi_id"`
	FormatID      *string           `json:"format_supervisi_id,omitempty"`
	FormatNama    string            `json:"format_nama,omitempty"`
	PerawatID     string            `json:"perawat_id"`
	PerawatNama   string            `json:"perawat_nama"`
	KepalaNama    string            `json:"kepala_nama,omitempty"`
	KepalaNIP     string            `json:"kepala_nip,omitempty"`
	Tanggal       string            `json:"tanggal"`
	Tim           int               `json:"tim"`
	JenjangPK     string            `json:"jenjang_pk"`
	Ruang         string            `json:"ruang"`
	SkorTotal     float64           `json:"skor_total"`
	StatusTTD     string            `json:"status_ttd"`
	TTDPerawat    *string           `json:"ttd_perawat,omitempty"`
	TTDKepala     *string           `json:"ttd_kepala,omitempty"`
	JawabanAspek  []JawabanAspekDTO `json:"jawaban_aspek,omitempty"`
	JumlahJawaban int               `json:"jumlah_jawaban"`
	CreatedAt     time.Time         `json:"created_at"`
}

// Kartu ringkasan milik perawat (halaman "ringkasan saya")
type SupervisiCardDTO struct {
	SupervisiID string  `json:"supervisi_id"`
	Judul       string  `json:"judul"`
	Skor        float64 `json:"skor"`     // dibulatkan 1 desimal untuk tampilan
	Progress    float64 `json:"progress"` // clamp 0–100
	StatusDone  bool    `json:"status_done"`
	StatusLabel string  `json:"status_label"` // "Selesai" / "Menunggu TTD"
	Tanggal     string  `json:"tanggal"`
}

type RingkasanSummaryDTO struct {
	Total    int     `json:"total"`
	Avg      float64 `json:"avg"` // 1 desimal
	Selesai  int     `json:"selesai"`
	Menunggu int     `json:"menunggu"`
}

type RingkasanDTO struct {
	Cards   []SupervisiCardDTO  `json:"cards"`
	Summary RingkasanSummaryDTO `json:"summary"`
}

// =============================
// 📄 Laporan (data untuk kolaborator pencetak PDF)
// =============================

type LaporanAspekRow struct {
	NamaAspek string `json:"nama_aspek"`
	D         bool   `json:"d"`
	TD        bool   `json:"td"`
}

type LaporanItemRow struct {
	Pertanyaan string            `json:"pertanyaan"`
	Aspek      []LaporanAspekRow `json:"aspek"`
}

type LaporanDTO struct {
	Judul       string           `json:"judul"`
	PerawatNama string           `json:"perawat_nama"`
	Ruang       string           `json:"ruang"`
	Tim         int              `json:"tim"`
	JenjangPK   string           `json:"jenjang_pk"`
	Tanggal     string           `json:"tanggal"`
	SkorTotal   float64          `json:"skor_total"` // 1 desimal, sesuai cetakan
	Items       []LaporanItemRow `json:"items"`
	TTDPerawat  *string          `json:"ttd_perawat,omitempty"`
	TTDKepala   *string          `json:"ttd_kepala,omitempty"`
	KepalaNama  string           `json:"kepala_nama"`
	KepalaNIP   string           `json:"kepala_nip"`
}

// =============================
// 🔁 Converters
// =============================

func ToJawabanAspekDTO(m model.JawabanAspekModel) JawabanAspekDTO {
	out := JawabanAspekDTO{
		JawabanAspekID: m.JawabanAspekID.String(),
		AspekFormatID:  m.JawabanAspekAspekFormatID.String(),
		D:              m.JawabanAspekD,
		TD:             m.JawabanAspekTD,
	}
	if m.AspekFormat != nil {
		out.NamaAspek = m.AspekFormat.AspekFormatNama
	}
	return out
}

func ToSupervisiDTO(m model.SupervisiModel, withJawaban bool) SupervisiDTO {
	out := SupervisiDTO{
		SupervisiID:   m.SupervisiID.String(),
		PerawatID:     m.SupervisiPerawatID.String(),
		PerawatNama:   m.PerawatDisplay(),
		KepalaNama:    m.KepalaDisplay(),
		Tanggal:       time.Time(m.SupervisiTanggal).Format("2006-01-02"),
		Tim:           m.SupervisiTim,
		JenjangPK:     m.SupervisiJenjangPK,
		Ruang:         m.SupervisiRuang,
		SkorTotal:     m.SupervisiSkorTotal,
		StatusTTD:     m.StatusTTD(),
		TTDPerawat:    m.SupervisiTTDPerawat,
		TTDKepala:     m.SupervisiTTDKepala,
		JumlahJawaban: len(m.JawabanAspek),
		CreatedAt:     m.SupervisiCreatedAt,
	}
	if m.SupervisiKepalaNIP != nil {
		out.KepalaNIP = *m.SupervisiKepalaNIP
	}
	if m.SupervisiFormatSupervisiID != nil {
		id := m.SupervisiFormatSupervisiID.String()
		out.FormatID = &id
	}
	if m.FormatSupervisi != nil {
		out.FormatNama = m.FormatSupervisi.FormatSupervisiNama
	}
	if withJawaban {
		out.JawabanAspek = make([]JawabanAspekDTO, 0, len(m.JawabanAspek))
		for _, j := range m.JawabanAspek {
			out.JawabanAspek = append(out.JawabanAspek, ToJawabanAspekDTO(j))
		}
	}
	return out
}

func ToSupervisiCardDTO(m model.SupervisiModel) SupervisiCardDTO {
	judul := ""
	if m.FormatSupervisi != nil {
		judul = m.FormatSupervisi.FormatSupervisiNama
	}
	done := m.StatusTTD() == model.StatusTTDComplete
	label := "Menunggu TTD"
	if done {
		label = "Selesai"
	}
	return SupervisiCardDTO{
		SupervisiID: m.SupervisiID.String(),
		Judul:       judul,
		Skor:        service.Round1(m.SupervisiSkorTotal),
		Progress:    service.ClampProgress(m.SupervisiSkorTotal),
		StatusDone:  done,
		StatusLabel: label,
		Tanggal:     time.Time(m.SupervisiTanggal).Format("2006-01-02"),
	}
}
