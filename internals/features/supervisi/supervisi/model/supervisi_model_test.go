package model

import (
	"testing"

	UserModel "supervisiku_backend/internals/features/users/user/model"
)

func strPtr(s string) *string { return &s }

func TestDeriveStatusTTD(t *testing.T) {
	tests := []struct {
		name       string
		ttdPerawat *string
		ttdKepala  *string
		want       string
	}{
		{"belum ada tanda tangan", nil, nil, StatusTTDPending},
		{"string kosong dianggap belum", strPtr(""), strPtr(""), StatusTTDPending},
		{"hanya perawat", strPtr("https://cdn/ttd-p.webp"), nil, StatusTTDPartial},
		{"hanya kepala", nil, strPtr("https://cdn/ttd-k.webp"), StatusTTDPartial},
		{"lengkap", strPtr("https://cdn/ttd-p.webp"), strPtr("https://cdn/ttd-k.webp"), StatusTTDComplete},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatusTTD(tt.ttdPerawat, tt.ttdKepala); got != tt.want {
				t.Errorf("DeriveStatusTTD() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPerawatDisplayFallback(t *testing.T) {
	perawat := &UserModel.UserModel{UserName: "perawat1", FullName: "Siti Aminah"}

	tests := []struct {
		name      string
		supervisi SupervisiModel
		want      string
	}{
		{
			"nama custom menang",
			SupervisiModel{SupervisiPerawatNama: strPtr("Ns. Siti"), Perawat: perawat},
			"Ns. Siti",
		},
		{
			"fallback ke nama lengkap",
			SupervisiModel{Perawat: perawat},
			"Siti Aminah",
		},
		{
			"fallback ke username",
			SupervisiModel{Perawat: &UserModel.UserModel{UserName: "perawat1"}},
			"perawat1",
		},
		{
			"tanpa relasi",
			SupervisiModel{},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.supervisi.PerawatDisplay(); got != tt.want {
				t.Errorf("PerawatDisplay() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKepalaDisplayFallback(t *testing.T) {
	s := SupervisiModel{
		SupervisiKepalaNama: strPtr("Hj. Ratna"),
		Kepala:              &UserModel.UserModel{UserName: "admin", FullName: "Kepala Ruangan"},
	}
	if got := s.KepalaDisplay(); got != "Hj. Ratna" {
		t.Errorf("KepalaDisplay() = %q, want %q", got, "Hj. Ratna")
	}

	s.SupervisiKepalaNama = nil
	if got := s.KepalaDisplay(); got != "Kepala Ruangan" {
		t.Errorf("KepalaDisplay() = %q, want %q", got, "Kepala Ruangan")
	}
}

func TestJawabanDinilai(t *testing.T) {
	tests := []struct {
		d, td bool
		want  bool
	}{
		{false, false, false},
		{true, false, true},
		{false, true, true},
		{true, true, true},
	}
	for _, tt := range tests {
		j := JawabanAspekModel{JawabanAspekD: tt.d, JawabanAspekTD: tt.td}
		if got := j.Dinilai(); got != tt.want {
			t.Errorf("Dinilai() d=%v td=%v = %v, want %v", tt.d, tt.td, got, tt.want)
		}
	}
}
