// Package services chứa các backend sinh nội dung (script, audio, ảnh, video)
// và Orchestrator ghép chúng thành pipeline automation.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vnkhanh/creator-studio-backend/models"
)

var (
	ErrNoTopics     = errors.New("no trending topics available")
	ErrUnknownVoice = errors.New("unknown voice id")
)

// StageError cho biết pipeline hỏng ở giai đoạn nào
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("automation stage %q: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

type ScriptRequest struct {
	Topic           string
	Format          models.ScriptFormat
	DurationMinutes int
	Tone            string
	Audience        string
}

// ScriptGenerator sinh kịch bản dạng text. Backend thật (Gemini, Groq)
// có thể thay stub mà không đổi Orchestrator.
type ScriptGenerator interface {
	GenerateScript(ctx context.Context, req ScriptRequest) (string, error)
}

type AudioResult struct {
	AudioPath  string `json:"audioPath"`
	DurationMs int64  `json:"durationMs"`
	WordCount  int    `json:"wordCount"`
}

type TextToSpeech interface {
	// ScriptToAudio trả ErrUnknownVoice nếu voiceID không có trong catalog
	// và không thể tải về
	ScriptToAudio(ctx context.Context, scriptText, voiceID, format string) (*AudioResult, error)
}

type ImageRequest struct {
	Prompt string `json:"prompt"`
	Style  string `json:"style"`
	Size   string `json:"size"`
	Format string `json:"format"`
}

type ImageResult struct {
	ImagePath             string  `json:"imagePath"`
	Size                  string  `json:"size"`
	Style                 string  `json:"style"`
	Format                string  `json:"format"`
	GenerationTimeSeconds float64 `json:"generationTimeSeconds"`
}

type ThumbnailResult struct {
	ThumbnailPath string `json:"thumbnailPath"`
	Size          string `json:"size"`
	Style         string `json:"style"`
}

// ImageGenerator không bao giờ lỗi vì size/style/format lạ:
// giá trị không hỗ trợ sẽ fallback về lựa chọn đầu tiên của backend.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req ImageRequest) (*ImageResult, error)
	GenerateThumbnail(ctx context.Context, topic, style, size string) (*ThumbnailResult, error)
}

type VideoResult struct {
	VideoPath     string `json:"videoPath"`
	ThumbnailPath string `json:"thumbnailPath"`
	DurationSec   int    `json:"duration"`
	Format        string `json:"format"`
	Resolution    string `json:"resolution"`
}

type VideoCompiler interface {
	GenerateVideo(ctx context.Context, script, title, resolution, style, thumbnailPrompt string) (*VideoResult, error)
}
