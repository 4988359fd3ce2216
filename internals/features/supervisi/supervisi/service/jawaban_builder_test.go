package service

import (
	"math"
	"testing"

	"github.com/google/uuid"

	formatModel "supervisiku_backend/internals/features/supervisi/format/model"
)

func formatDenganAspek(aspekIDs ...uuid.UUID) formatModel.FormatSupervisiModel {
	item := formatModel.ItemFormatModel{}
	for _, id := range aspekIDs {
		item.Aspek = append(item.Aspek, formatModel.AspekFormatModel{AspekFormatID: id})
	}
	return formatModel.FormatSupervisiModel{Items: []formatModel.ItemFormatModel{item}}
}

func lookupForm(form map[string]bool) func(string) bool {
	return func(key string) bool { return form[key] }
}

func TestSusunJawabanSatuBarisPerAspek(t *testing.T) {
	a1, a2, a3 := uuid.New(), uuid.New(), uuid.New()
	supervisiID := uuid.New()

	// Satu dikerjakan, satu tidak dikerjakan, satu tidak disentuh sama sekali
	form := map[string]bool{
		"d_" + a1.String():  true,
		"td_" + a2.String(): true,
	}

	jawaban := SusunJawaban(formatDenganAspek(a1, a2, a3), supervisiID, lookupForm(form))

	if len(jawaban) != 3 {
		t.Fatalf("jumlah baris jawaban = %d, want 3 (satu per aspek, termasuk yang tidak disentuh)", len(jawaban))
	}
	for i, j := range jawaban {
		if j.JawabanAspekSupervisiID != supervisiID {
			t.Errorf("baris %d: supervisi_id = %v, want %v", i, j.JawabanAspekSupervisiID, supervisiID)
		}
	}

	byAspek := map[uuid.UUID]struct{ d, td bool }{}
	for _, j := range jawaban {
		byAspek[j.JawabanAspekAspekFormatID] = struct{ d, td bool }{j.JawabanAspekD, j.JawabanAspekTD}
	}
	if got := byAspek[a1]; !got.d || got.td {
		t.Errorf("aspek 1 = %+v, want d=true td=false", got)
	}
	if got := byAspek[a2]; got.d || !got.td {
		t.Errorf("aspek 2 = %+v, want d=false td=true", got)
	}
	if got := byAspek[a3]; got.d || got.td {
		t.Errorf("aspek tak disentuh = %+v, want baris both-false", got)
	}

	// 1 dikerjakan dari 2 dinilai → 50, aspek kosong tidak masuk penyebut
	if skor := SkorSupervisi(jawaban); math.Abs(skor-50) > 1e-9 {
		t.Errorf("SkorSupervisi() = %v, want 50", skor)
	}
}

func TestSusunJawabanLintasItem(t *testing.T) {
	a1, a2, a3 := uuid.New(), uuid.New(), uuid.New()
	format := formatModel.FormatSupervisiModel{Items: []formatModel.ItemFormatModel{
		{Aspek: []formatModel.AspekFormatModel{{AspekFormatID: a1}, {AspekFormatID: a2}}},
		{Aspek: []formatModel.AspekFormatModel{{AspekFormatID: a3}}},
	}}

	jawaban := SusunJawaban(format, uuid.New(), lookupForm(nil))

	if len(jawaban) != format.JumlahAspek() {
		t.Fatalf("jumlah baris = %d, want %d", len(jawaban), format.JumlahAspek())
	}
	for _, j := range jawaban {
		if j.JawabanAspekD || j.JawabanAspekTD {
			t.Errorf("form kosong harus menghasilkan baris both-false, dapat %+v", j)
		}
	}
}

func TestSusunJawabanFormatKosong(t *testing.T) {
	jawaban := SusunJawaban(formatModel.FormatSupervisiModel{}, uuid.New(), lookupForm(nil))
	if len(jawaban) != 0 {
		t.Errorf("format tanpa aspek menghasilkan %d baris, want 0", len(jawaban))
	}
}
