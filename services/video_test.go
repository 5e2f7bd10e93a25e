package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/creator-studio-backend/services"
)

func TestSlideshowVideoDuration(t *testing.T) {
	dir := t.TempDir()
	tts := services.NewStubTextToSpeech(dir)
	images := services.NewStubImageGenerator(dir)
	v := services.NewSlideshowVideoCompiler(tts, images, dir)

	// 10 từ với giọng mặc định → audio đúng 4s, video = 4 + 5s đệm
	script := strings.Repeat("từ ", 9) + "từ"
	result, err := v.GenerateVideo(context.Background(), script, "Video thử nghiệm", "", "realistic", "")
	require.NoError(t, err)

	assert.Equal(t, 9, result.DurationSec)
	assert.Equal(t, "mp4", result.Format)
	assert.Equal(t, "1920x1080", result.Resolution)
	assert.NotEmpty(t, result.VideoPath)
	assert.NotEmpty(t, result.ThumbnailPath)
}

func TestSlideshowVideoDurationRoundsUp(t *testing.T) {
	dir := t.TempDir()
	tts := services.NewStubTextToSpeech(dir)
	images := services.NewStubImageGenerator(dir)
	v := services.NewSlideshowVideoCompiler(tts, images, dir)

	// 7 từ → 2800ms audio, làm tròn lên 3s + 5s đệm = 8s
	result, err := v.GenerateVideo(context.Background(), "một hai ba bốn năm sáu bảy", "Video lẻ giây", "1280x720", "", "")
	require.NoError(t, err)

	assert.Equal(t, 8, result.DurationSec)
	assert.Equal(t, "1280x720", result.Resolution)
}
