package store

import "github.com/vnkhanh/creator-studio-backend/models"

// Seed nạp dữ liệu tham chiếu ban đầu: các nền tảng mặc định
// và cấu hình AI mặc định cho từng loại model
func (s *Store) Seed() {
	platforms := []models.PlatformInput{
		{Name: "YouTube", Icon: "youtube"},
		{Name: "TikTok", Icon: "tiktok"},
		{Name: "Instagram", Icon: "instagram"},
		{Name: "Facebook", Icon: "facebook"},
	}
	for _, p := range platforms {
		s.CreatePlatform(p)
	}

	configs := []models.AiConfigInput{
		{
			Name:      "Script Writer",
			ModelType: models.ModelTypeLLM,
			ModelName: "gemini-2.0-flash",
			Settings:  models.Metadata{"temperature": 0.7, "maxTokens": 4096},
			Capabilities: models.Metadata{
				"formats": []string{"video", "short", "podcast", "generic"},
			},
		},
		{
			Name:      "Voice Studio",
			ModelType: models.ModelTypeTTS,
			ModelName: "vi-VN-Chirp3-HD-Puck",
			Settings:  models.Metadata{"speed": 1.0, "format": "mp3"},
			Capabilities: models.Metadata{
				"voices": []string{"nam-tram", "nu-cao", "nam-tre", "nu-tram"},
			},
		},
		{
			Name:      "Image Lab",
			ModelType: models.ModelTypeImage,
			ModelName: "stable-diffusion-xl",
			Settings:  models.Metadata{"size": "1024x1024", "style": "realistic"},
			Capabilities: models.Metadata{
				"sizes":  []string{"1024x1024", "1280x720", "512x512"},
				"styles": []string{"realistic", "cartoon", "minimal"},
			},
		},
		{
			Name:      "Video Studio",
			ModelType: models.ModelTypeVideo,
			ModelName: "slideshow-compiler",
			Settings:  models.Metadata{"resolution": "1920x1080", "format": "mp4"},
			Capabilities: models.Metadata{
				"resolutions": []string{"1920x1080", "1080x1920", "1280x720"},
			},
		},
	}
	for _, c := range configs {
		s.CreateAiConfig(c)
	}
}
