package controller

import (
	"testing"

	"supervisiku_backend/internals/features/supervisi/supervisi/model"
)

func strPtr(s string) *string { return &s }

func TestReplacedTTDURL(t *testing.T) {
	tests := []struct {
		name   string
		old    *string
		newURL string
		want   string
	}{
		{"belum ada file lama", nil, "https://cdn/new.webp", ""},
		{"lama kosong", strPtr(""), "https://cdn/new.webp", ""},
		{"url sama tidak dihapus", strPtr("https://cdn/sama.webp"), "https://cdn/sama.webp", ""},
		{"url lama dikembalikan", strPtr("https://cdn/lama.webp"), "https://cdn/baru.webp", "https://cdn/lama.webp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := replacedTTDURL(tt.old, tt.newURL); got != tt.want {
				t.Errorf("replacedTTDURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

// GORM Update menulis nilai baru balik ke struct model; URL lama harus
// diambil SEBELUM update, kalau tidak file lama tidak pernah terhapus.
func TestReplacedTTDURLDiambilSebelumUpdate(t *testing.T) {
	oldFile := "https://cdn/lama.webp"
	newURL := "https://cdn/baru.webp"
	supervisi := model.SupervisiModel{SupervisiTTDPerawat: strPtr(oldFile)}

	old := replacedTTDURL(supervisi.SupervisiTTDPerawat, newURL)

	// Simulasi Update: nilai baru ditulis balik ke field struct
	supervisi.SupervisiTTDPerawat = &newURL

	if old != oldFile {
		t.Errorf("url lama = %q, want %q", old, oldFile)
	}
	if got := replacedTTDURL(supervisi.SupervisiTTDPerawat, newURL); got != "" {
		t.Errorf("setelah update field struct sudah berisi url baru, replacedTTDURL = %q, want kosong", got)
	}
}
