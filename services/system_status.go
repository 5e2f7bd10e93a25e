package services

import (
	"math/rand"
	"runtime"
	"time"

	"github.com/vnkhanh/creator-studio-backend/models"
	"github.com/vnkhanh/creator-studio-backend/store"
)

// SystemStatus là snapshot tài nguyên synthetic cho dashboard.
// CPU/storage là số giả lập; memory và model count lấy từ process thật.
type SystemStatus struct {
	CPUPercent    float64   `json:"cpuPercent"`
	MemoryGB      float64   `json:"memoryGb"`
	StorageFreeGB float64   `json:"storageFreeGb"`
	LoadedModels  int       `json:"loadedModels"`
	Online        bool      `json:"online"`
	Timestamp     time.Time `json:"timestamp"`
}

func SnapshotSystemStatus(s *store.Store) SystemStatus {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	loaded := 0
	for _, cfg := range s.ListAiConfigs() {
		if cfg.DownloadStatus == models.DownloadAvailable {
			loaded++
		}
	}

	return SystemStatus{
		CPUPercent:    10 + rand.Float64()*40,
		MemoryGB:      float64(mem.Sys) / (1 << 30),
		StorageFreeGB: 80 + rand.Float64()*40,
		LoadedModels:  loaded,
		Online:        true,
		Timestamp:     time.Now(),
	}
}
