package service

import (
	"math"

	"supervisiku_backend/internals/features/supervisi/supervisi/model"
)

// Mesin skoring kanonik: rasio aspek yang dikerjakan terhadap aspek yang
// dinilai. Aspek yang tidak disentuh (d dan td sama-sama false) tidak masuk
// penyebut — tidak menambah dan tidak mengurangi skor.
//
// Mode skoring berbobot per item dari revisi lama tidak didukung.

// TallyJawaban menghitung total dikerjakan dan total dinilai dari satu set jawaban.
func TallyJawaban(jawaban []model.JawabanAspekModel) (totalD, totalDinilai int) {
	for _, j := range jawaban {
		if j.Dinilai() {
			totalDinilai++
			if j.JawabanAspekD {
				totalD++
			}
		}
	}
	return totalD, totalDinilai
}

// HitungSkor: skor 0–100. Kalau tidak ada aspek yang dinilai, skor 0
// (bukan pembagian nol).
func HitungSkor(totalD, totalDinilai int) float64 {
	if totalDinilai <= 0 {
		return 0
	}
	return float64(totalD) / float64(totalDinilai) * 100
}

// SkorSupervisi: tally + hitung dalam satu panggilan.
func SkorSupervisi(jawaban []model.JawabanAspekModel) float64 {
	totalD, totalDinilai := TallyJawaban(jawaban)
	return HitungSkor(totalD, totalDinilai)
}

// Round1 membulatkan ke satu desimal — hanya untuk tampilan,
// nilai tersimpan tetap presisi penuh.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ClampProgress membatasi nilai progres kartu ringkasan ke [0, 100].
func ClampProgress(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
