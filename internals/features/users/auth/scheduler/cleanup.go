package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authRepo "supervisiku_backend/internals/features/users/auth/repository"
)

// Token kadaluarsa dibersihkan tiap jam
const cleanupInterval = time.Hour

func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")

			if deleted, err := authRepo.DeleteExpiredBlacklistTokens(db); err != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus token: %v", err)
			} else if deleted > 0 {
				log.Printf("[CLEANUP] %d token kadaluarsa dihapus", deleted)
			} else {
				log.Println("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
			}

			time.Sleep(cleanupInterval)
		}
	}()
}
