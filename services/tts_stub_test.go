package services_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/creator-studio-backend/services"
)

func TestStubTTSDurationContract(t *testing.T) {
	tts := services.NewStubTextToSpeech(t.TempDir())
	ctx := context.Background()

	// 5 từ, giọng mặc định speed 1.0, 2.5 từ/giây → đúng 2000ms
	audio, err := tts.ScriptToAudio(ctx, "một hai ba bốn năm", "", "mp3")
	require.NoError(t, err)
	assert.Equal(t, int64(2000), audio.DurationMs)
	assert.Equal(t, 5, audio.WordCount)
	assert.NotEmpty(t, audio.AudioPath)

	// artifact được ghi ra đĩa thật
	_, err = os.Stat(audio.AudioPath)
	assert.NoError(t, err)
}

func TestStubTTSVoiceSpeedAffectsDuration(t *testing.T) {
	tts := services.NewStubTextToSpeech(t.TempDir())
	ctx := context.Background()
	text := "một hai ba bốn năm sáu bảy tám chín mười"

	slow, err := tts.ScriptToAudio(ctx, text, "nu-tram", "mp3")
	require.NoError(t, err)
	fast, err := tts.ScriptToAudio(ctx, text, "nam-tre", "mp3")
	require.NoError(t, err)

	// nu-tram speed 0.9 đọc chậm hơn nam-tre speed 1.2
	assert.Greater(t, slow.DurationMs, fast.DurationMs)
}

func TestStubTTSUnknownVoice(t *testing.T) {
	tts := services.NewStubTextToSpeech(t.TempDir())

	_, err := tts.ScriptToAudio(context.Background(), "xin chào", "giong-khong-ton-tai", "mp3")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrUnknownVoice)
}

func TestStubTTSDefaultFormat(t *testing.T) {
	tts := services.NewStubTextToSpeech(t.TempDir())

	audio, err := tts.ScriptToAudio(context.Background(), "xin chào các bạn", "", "")
	require.NoError(t, err)
	assert.Contains(t, audio.AudioPath, ".mp3")
}
