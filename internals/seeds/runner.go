package seeds

import (
	"gorm.io/gorm"

	format "supervisiku_backend/internals/seeds/format"
	user "supervisiku_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	//* Akun awal (kepala ruangan + contoh perawat)
	user.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")

	//* Format supervisi bawaan
	format.SeedFormatFromJSON(db, "internals/seeds/format/data_format.json")
}
