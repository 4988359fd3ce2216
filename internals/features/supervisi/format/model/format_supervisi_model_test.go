package model

import "testing"

func TestJumlahAspek(t *testing.T) {
	tests := []struct {
		name   string
		format FormatSupervisiModel
		want   int
	}{
		{"tanpa item", FormatSupervisiModel{}, 0},
		{
			"item tanpa aspek",
			FormatSupervisiModel{Items: []ItemFormatModel{{}, {}}},
			0,
		},
		{
			"dijumlahkan lintas item",
			FormatSupervisiModel{Items: []ItemFormatModel{
				{Aspek: []AspekFormatModel{{}, {}, {}}},
				{Aspek: []AspekFormatModel{{}}},
			}},
			4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.JumlahAspek(); got != tt.want {
				t.Errorf("JumlahAspek() = %d, want %d", got, tt.want)
			}
		})
	}
}
