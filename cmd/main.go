package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/vnkhanh/creator-studio-backend/config"
	"github.com/vnkhanh/creator-studio-backend/routes"
	"github.com/vnkhanh/creator-studio-backend/services"
	"github.com/vnkhanh/creator-studio-backend/store"
	"github.com/vnkhanh/creator-studio-backend/utils"
	"github.com/vnkhanh/creator-studio-backend/ws"

	"github.com/vnkhanh/creator-studio-backend/middleware"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("Không tìm thấy file .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Không đọc được cấu hình")
	}

	utils.InitLogger(cfg.Environment, cfg.LogLevel)

	// Store in-memory, tạo một lần và inject xuống controller/service
	s := store.NewStore()
	s.Seed()

	scripts, err := services.NewScriptGenerator(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Không khởi tạo được script backend")
	}
	tts, err := services.NewTextToSpeech(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Không khởi tạo được TTS backend")
	}
	images := services.NewStubImageGenerator(cfg.OutputDir)
	video := services.NewSlideshowVideoCompiler(tts, images, cfg.OutputDir)

	orchestrator := services.NewOrchestrator(s, scripts, tts, images, video, ws.SendAutomationUpdate)

	// Dọn artifact cũ định kỳ
	utils.StartCleanupJob(cfg.OutputDir, time.Duration(cfg.AssetTTLHours)*time.Hour)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	// Bật CORS cho dashboard SPA
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r = routes.SetupRouter(r, routes.Deps{
		Store:        s,
		Orchestrator: orchestrator,
		Scripts:      scripts,
		TTS:          tts,
		Images:       images,
		Video:        video,
	})

	// Route test server
	r.GET("/", func(c *gin.Context) {
		c.String(200, "Creator Studio server is running")
	})

	log.Info().Str("port", cfg.Port).Str("scriptBackend", cfg.ScriptBackend).Str("ttsBackend", cfg.TTSBackend).Msg("Server running")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server dừng vì lỗi")
	}
}
