package helper

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ttd perawat.png", "ttd_perawat.png"},
		{"TTD/../../etc", "TTD_.._.._etc"},
		{"sudah_bersih.webp", "sudah_bersih.webp"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateUniqueFilename(t *testing.T) {
	a := GenerateUniqueFilename("ttd_supervisi", "tanda tangan.png")
	b := GenerateUniqueFilename("ttd_supervisi", "tanda tangan.png")

	if a == b {
		t.Errorf("dua panggilan menghasilkan nama sama: %q", a)
	}
	for _, name := range []string{a, b} {
		if !strings.HasPrefix(name, "ttd_supervisi/") {
			t.Errorf("nama %q tidak berawalan folder", name)
		}
		if strings.Contains(name, " ") {
			t.Errorf("nama %q masih mengandung spasi", name)
		}
	}
}

func TestExtractSupabaseStoragePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"url publik penuh",
			"https://xyz.supabase.co/storage/v1/object/public/image/ttd_supervisi/2026-08-30-abc.webp",
			"ttd_supervisi/2026-08-30-abc.webp",
		},
		{
			"bukan url supabase",
			"https://example.com/foo.png",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractSupabaseStoragePath(tt.in); got != tt.want {
				t.Errorf("ExtractSupabaseStoragePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
