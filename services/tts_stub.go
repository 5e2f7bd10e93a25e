package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
)

const baseWordsPerSecond = 2.5

// stubVoice là một giọng đọc trong catalog; giọng chưa tải sẽ được
// "tải" lười ở lần dùng đầu tiên
type stubVoice struct {
	ID         string
	Name       string
	Speed      float64
	downloaded bool
}

type StubTextToSpeech struct {
	mu        sync.Mutex
	voices    map[string]*stubVoice
	outputDir string

	downloadDelay time.Duration
	perWord       time.Duration
}

func NewStubTextToSpeech(outputDir string) *StubTextToSpeech {
	voices := map[string]*stubVoice{
		"nam-tram": {ID: "nam-tram", Name: "Nam trầm", Speed: 1.0},
		"nu-cao":   {ID: "nu-cao", Name: "Nữ cao", Speed: 1.1},
		"nam-tre":  {ID: "nam-tre", Name: "Nam trẻ", Speed: 1.2},
		"nu-tram":  {ID: "nu-tram", Name: "Nữ trầm", Speed: 0.9},
	}
	return &StubTextToSpeech{
		voices:        voices,
		outputDir:     outputDir,
		downloadDelay: 30 * time.Millisecond,
		perWord:       100 * time.Microsecond,
	}
}

const DefaultVoiceID = "nam-tram"

func (t *StubTextToSpeech) resolveVoice(ctx context.Context, voiceID string) (*stubVoice, error) {
	if voiceID == "" {
		voiceID = DefaultVoiceID
	}

	t.mu.Lock()
	voice, ok := t.voices[voiceID]
	t.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVoice, voiceID)
	}

	if !voice.downloaded {
		// giả lập tải voice model trước lần synthesize đầu tiên
		if err := simulateLatency(ctx, t.downloadDelay); err != nil {
			return nil, err
		}
		t.mu.Lock()
		voice.downloaded = true
		t.mu.Unlock()
	}
	return voice, nil
}

func (t *StubTextToSpeech) ScriptToAudio(ctx context.Context, scriptText, voiceID, format string) (*AudioResult, error) {
	voice, err := t.resolveVoice(ctx, voiceID)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = "mp3"
	}

	words := strings.Fields(scriptText)
	if err := simulateLatency(ctx, time.Duration(len(words))*t.perWord); err != nil {
		return nil, err
	}

	// durationMs xấp xỉ wordCount / wordsPerSecond(speed)
	wps := baseWordsPerSecond * voice.Speed
	durationMs := int64(math.Round(float64(len(words)) / wps * 1000))

	path := artifactPath(t.outputDir, "audio", voice.ID, format)
	if err := writeArtifact(path, []byte(scriptText)); err != nil {
		return nil, fmt.Errorf("write audio artifact: %w", err)
	}

	return &AudioResult{
		AudioPath:  path,
		DurationMs: durationMs,
		WordCount:  len(words),
	}, nil
}
