package services

import (
	"context"
	"fmt"
	"math"
)

// thời gian đệm cố định cộng vào sau phần audio (intro/outro)
const videoBufferSec = 5

// SlideshowVideoCompiler dựng video bằng cách ghép audio TTS với ảnh nền.
// Không render thật, chỉ fabricates file output với duration đúng contract.
type SlideshowVideoCompiler struct {
	tts       TextToSpeech
	images    ImageGenerator
	outputDir string
}

func NewSlideshowVideoCompiler(tts TextToSpeech, images ImageGenerator, outputDir string) *SlideshowVideoCompiler {
	return &SlideshowVideoCompiler{tts: tts, images: images, outputDir: outputDir}
}

func (v *SlideshowVideoCompiler) GenerateVideo(ctx context.Context, script, title, resolution, style, thumbnailPrompt string) (*VideoResult, error) {
	if resolution == "" {
		resolution = "1920x1080"
	}

	audio, err := v.tts.ScriptToAudio(ctx, script, "", "mp3")
	if err != nil {
		return nil, fmt.Errorf("synthesize narration: %w", err)
	}

	if thumbnailPrompt == "" {
		thumbnailPrompt = title
	}
	thumbnail, err := v.images.GenerateThumbnail(ctx, thumbnailPrompt, style, "1280x720")
	if err != nil {
		return nil, fmt.Errorf("generate thumbnail: %w", err)
	}

	// duration = audio làm tròn lên + buffer cố định
	durationSec := int(math.Ceil(float64(audio.DurationMs)/1000)) + videoBufferSec

	path := artifactPath(v.outputDir, "videos", title, "mp4")
	if err := writeArtifact(path, []byte(script)); err != nil {
		return nil, fmt.Errorf("write video artifact: %w", err)
	}

	return &VideoResult{
		VideoPath:     path,
		ThumbnailPath: thumbnail.ThumbnailPath,
		DurationSec:   durationSec,
		Format:        "mp4",
		Resolution:    resolution,
	}, nil
}
