package controller

import "testing"

// Form HTML lama mengirim "on" untuk checkbox tercentang; key absen = kosong.
func TestCheckboxChecked(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"on", true},
		{"ON", true},
		{" on ", true},
		{"true", true},
		{"1", true},
		{"", false},
		{"off", false},
		{"false", false},
		{"0", false},
		{"ya", false},
	}
	for _, tt := range tests {
		if got := checkboxChecked(tt.in); got != tt.want {
			t.Errorf("checkboxChecked(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
