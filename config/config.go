package config

import (
	"github.com/caarlos0/env/v9"
)

// Config đọc từ biến môi trường (file .env được load ở main)
type Config struct {
	Port        string   `env:"PORT" envDefault:"8080"`
	Environment string   `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string   `env:"LOG_LEVEL"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	// Backend AI: stub chạy được không cần key, backend thật chọn qua env
	ScriptBackend     string `env:"AI_SCRIPT_BACKEND" envDefault:"stub"`
	TTSBackend        string `env:"AI_TTS_BACKEND" envDefault:"stub"`
	GeminiAPIKey      string `env:"GEMINI_API_KEY"`
	GeminiModel       string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	GroqAPIKey        string `env:"GROQ_API_KEY"`
	GroqModel         string `env:"GROQ_MODEL" envDefault:"llama-3.3-70b-versatile"`
	GoogleCredentials string `env:"GOOGLE_CREDENTIALS_JSON"`

	// Thư mục chứa artifact sinh ra (audio, ảnh, video)
	OutputDir     string `env:"OUTPUT_DIR" envDefault:"./generated"`
	AssetTTLHours int    `env:"ASSET_TTL_HOURS" envDefault:"72"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
