package format

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"supervisiku_backend/internals/features/supervisi/format/model"
)

type AspekSeed struct {
	Nama string `json:"nama"`
}

type ItemSeed struct {
	Pertanyaan string      `json:"pertanyaan"`
	Aspek      []AspekSeed `json:"aspek"`
}

type FormatSeed struct {
	Nama      string     `json:"nama"`
	Deskripsi string     `json:"deskripsi"`
	Items     []ItemSeed `json:"items"`
}

func SeedFormatFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file format:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []FormatSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.FormatSupervisiModel
		if err := db.Where("format_supervisi_nama = ?", data.Nama).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Format '%s' sudah ada, dilewati.", data.Nama)
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			newFormat := model.FormatSupervisiModel{
				FormatSupervisiNama: data.Nama,
			}
			if data.Deskripsi != "" {
				newFormat.FormatSupervisiDeskripsi = &data.Deskripsi
			}
			if err := tx.Create(&newFormat).Error; err != nil {
				return err
			}

			for _, itemSeed := range data.Items {
				item := model.ItemFormatModel{
					ItemFormatFormatSupervisiID: newFormat.FormatSupervisiID,
					ItemFormatPertanyaan:        itemSeed.Pertanyaan,
					ItemFormatBobot:             1,
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
				for _, aspekSeed := range itemSeed.Aspek {
					if err := tx.Create(&model.AspekFormatModel{
						AspekFormatItemFormatID: item.ItemFormatID,
						AspekFormatNama:         aspekSeed.Nama,
					}).Error; err != nil {
						return err
					}
				}
			}
			return nil
		})
		if err != nil {
			log.Printf("❌ Gagal insert format '%s': %v", data.Nama, err)
		} else {
			log.Printf("✅ Berhasil insert format '%s'", data.Nama)
		}
	}
}
