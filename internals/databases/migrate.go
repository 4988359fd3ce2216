package databases

import (
	"log"

	"gorm.io/gorm"

	formatModel "supervisiku_backend/internals/features/supervisi/format/model"
	supervisiModel "supervisiku_backend/internals/features/supervisi/supervisi/model"
	authModel "supervisiku_backend/internals/features/users/auth/model"
	userModel "supervisiku_backend/internals/features/users/user/model"
)

// MigrateAll: urutan penting — tabel induk dulu supaya constraint FK terbentuk.
func MigrateAll(db *gorm.DB) {
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklistModel{},
		&formatModel.FormatSupervisiModel{},
		&formatModel.ItemFormatModel{},
		&formatModel.AspekFormatModel{},
		&supervisiModel.SupervisiModel{},
		&supervisiModel.JawabanAspekModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi database: %v", err)
	}
	log.Println("✅ Migrasi database selesai")
}
