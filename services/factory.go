package services

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/vnkhanh/creator-studio-backend/config"
)

// NewScriptGenerator chọn backend sinh kịch bản theo config.
// Mặc định là stub để chạy được mà không cần API key nào.
func NewScriptGenerator(cfg *config.Config) (ScriptGenerator, error) {
	switch cfg.ScriptBackend {
	case "", "stub":
		return NewStubScriptGenerator(), nil
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("AI_SCRIPT_BACKEND=gemini nhưng thiếu GEMINI_API_KEY")
		}
		return NewGeminiScriptGenerator(cfg.GeminiAPIKey, cfg.GeminiModel), nil
	case "groq":
		if cfg.GroqAPIKey == "" {
			return nil, fmt.Errorf("AI_SCRIPT_BACKEND=groq nhưng thiếu GROQ_API_KEY")
		}
		return NewGroqScriptGenerator(cfg.GroqAPIKey, cfg.GroqModel)
	default:
		return nil, fmt.Errorf("AI_SCRIPT_BACKEND không hợp lệ: %s", cfg.ScriptBackend)
	}
}

// NewTextToSpeech chọn backend TTS theo config
func NewTextToSpeech(cfg *config.Config) (TextToSpeech, error) {
	switch cfg.TTSBackend {
	case "", "stub":
		return NewStubTextToSpeech(cfg.OutputDir), nil
	case "google":
		if cfg.GoogleCredentials == "" {
			log.Warn().Msg("AI_TTS_BACKEND=google nhưng thiếu GOOGLE_CREDENTIALS_JSON, request TTS sẽ lỗi")
		}
		return NewGoogleTextToSpeech(cfg.GoogleCredentials, cfg.OutputDir), nil
	default:
		return nil, fmt.Errorf("AI_TTS_BACKEND không hợp lệ: %s", cfg.TTSBackend)
	}
}
