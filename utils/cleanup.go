package utils

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

// CleanupOldArtifacts xóa các file sinh ra (audio/ảnh/video) quá hạn TTL
func CleanupOldArtifacts(outputDir string, ttl time.Duration) {
	cutoff := time.Now().Add(-ttl)
	removed := 0

	err := filepath.Walk(outputDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil // thư mục chưa tồn tại cũng bỏ qua
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err == nil {
				removed++
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("Lỗi khi dọn artifact cũ")
		return
	}

	if removed > 0 {
		log.Info().Int("removed", removed).Msg("Đã xóa artifact quá hạn")
	}
}

// StartCleanupJob chạy cleanup job định kỳ
func StartCleanupJob(outputDir string, ttl time.Duration) {
	// Chạy cleanup ngay lần đầu khi khởi động
	log.Info().Msg("Đang chạy cleanup lần đầu...")
	CleanupOldArtifacts(outputDir, ttl)

	// Thiết lập ticker để chạy mỗi 6 giờ
	ticker := time.NewTicker(6 * time.Hour)

	go func() {
		defer ticker.Stop()
		for range ticker.C {
			log.Info().Msg("Cleanup job được kích hoạt...")
			CleanupOldArtifacts(outputDir, ttl)
		}
	}()

	log.Info().Msg("Cleanup job đã được khởi động (chạy mỗi 6 giờ)")
}
