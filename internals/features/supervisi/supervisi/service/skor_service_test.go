package service

import (
	"math"
	"testing"

	"supervisiku_backend/internals/features/supervisi/supervisi/model"
)

func jawaban(d, td bool) model.JawabanAspekModel {
	return model.JawabanAspekModel{JawabanAspekD: d, JawabanAspekTD: td}
}

func TestHitungSkor(t *testing.T) {
	tests := []struct {
		name         string
		totalD       int
		totalDinilai int
		want         float64
	}{
		{"tidak ada yang dinilai", 0, 0, 0},
		{"penyebut negatif dianggap nol", 0, -1, 0},
		{"semua dikerjakan", 5, 5, 100},
		{"tidak ada yang dikerjakan", 0, 5, 0},
		{"setengah dikerjakan", 2, 4, 50},
		{"sepertiga", 1, 3, 100.0 / 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HitungSkor(tt.totalD, tt.totalDinilai)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("HitungSkor(%d, %d) = %v, want %v", tt.totalD, tt.totalDinilai, got, tt.want)
			}
		})
	}
}

func TestTallyJawaban(t *testing.T) {
	tests := []struct {
		name        string
		jawaban     []model.JawabanAspekModel
		wantD       int
		wantDinilai int
	}{
		{
			name:    "kosong",
			jawaban: nil,
			wantD:   0, wantDinilai: 0,
		},
		{
			name: "aspek tidak disentuh tidak masuk penyebut",
			jawaban: []model.JawabanAspekModel{
				jawaban(true, false),
				jawaban(false, false), // tidak dinilai
				jawaban(false, true),
			},
			wantD: 1, wantDinilai: 2,
		},
		{
			name: "semua tidak disentuh",
			jawaban: []model.JawabanAspekModel{
				jawaban(false, false),
				jawaban(false, false),
			},
			wantD: 0, wantDinilai: 0,
		},
		{
			name: "d dan td dua-duanya tercentang tetap dihitung dikerjakan",
			jawaban: []model.JawabanAspekModel{
				jawaban(true, true),
			},
			wantD: 1, wantDinilai: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotD, gotDinilai := TallyJawaban(tt.jawaban)
			if gotD != tt.wantD || gotDinilai != tt.wantDinilai {
				t.Errorf("TallyJawaban() = (%d, %d), want (%d, %d)", gotD, gotDinilai, tt.wantD, tt.wantDinilai)
			}
		})
	}
}

func TestSkorSupervisi(t *testing.T) {
	tests := []struct {
		name    string
		jawaban []model.JawabanAspekModel
		want    float64
	}{
		{"tanpa jawaban skor nol", nil, 0},
		{
			"hanya td skor nol",
			[]model.JawabanAspekModel{jawaban(false, true), jawaban(false, true)},
			0,
		},
		{
			"semua d skor seratus",
			[]model.JawabanAspekModel{jawaban(true, false), jawaban(true, false)},
			100,
		},
		{
			"aspek kosong tidak menurunkan skor",
			[]model.JawabanAspekModel{
				jawaban(true, false),
				jawaban(false, false),
				jawaban(false, false),
			},
			100,
		},
		{
			"campuran",
			[]model.JawabanAspekModel{
				jawaban(true, false),
				jawaban(true, false),
				jawaban(false, true),
				jawaban(false, true),
			},
			50,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SkorSupervisi(tt.jawaban)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SkorSupervisi() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{100.0 / 3.0, 33.3},
		{66.666666, 66.7},
		{99.95, 100},
		{100, 100},
	}
	for _, tt := range tests {
		if got := Round1(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClampProgress(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-5, 0},
		{0, 0},
		{42.5, 42.5},
		{100, 100},
		{120, 100},
	}
	for _, tt := range tests {
		if got := ClampProgress(tt.in); got != tt.want {
			t.Errorf("ClampProgress(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
