package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	texttospeechpb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"
)

// GoogleTextToSpeech là backend TTS thật, chọn bằng AI_TTS_BACKEND=google.
// Text dài được cắt thành chunk dưới ngưỡng 5000 bytes của API.
type GoogleTextToSpeech struct {
	credFile     string
	languageCode string
	speakingRate float64
	outputDir    string
}

func NewGoogleTextToSpeech(credFile, outputDir string) *GoogleTextToSpeech {
	return &GoogleTextToSpeech{
		credFile:     credFile,
		languageCode: "vi-VN",
		speakingRate: 1.0,
		outputDir:    outputDir,
	}
}

func (t *GoogleTextToSpeech) ScriptToAudio(ctx context.Context, scriptText, voiceID, format string) (*AudioResult, error) {
	if len(scriptText) == 0 {
		return nil, errors.New("text is empty")
	}
	if voiceID == "" {
		voiceID = "vi-VN-Chirp3-HD-Puck"
	}
	if t.credFile == "" {
		return nil, errors.New("GOOGLE_CREDENTIALS_JSON environment variable is not set")
	}

	client, err := texttospeech.NewClient(ctx, option.WithCredentialsFile(t.credFile))
	if err != nil {
		return nil, err
	}
	defer client.Close()

	chunks := splitTextToChunksByByte(scriptText, 4500) // Dưới ngưỡng 5000 bytes
	var allAudio []byte

	for _, chunk := range chunks {
		req := &texttospeechpb.SynthesizeSpeechRequest{
			Input: &texttospeechpb.SynthesisInput{
				InputSource: &texttospeechpb.SynthesisInput_Text{
					Text: chunk,
				},
			},
			Voice: &texttospeechpb.VoiceSelectionParams{
				LanguageCode: t.languageCode,
				Name:         voiceID,
			},
			AudioConfig: &texttospeechpb.AudioConfig{
				AudioEncoding: texttospeechpb.AudioEncoding_MP3,
				SpeakingRate:  t.speakingRate,
			},
		}

		resp, err := client.SynthesizeSpeech(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownVoice, err)
		}
		allAudio = append(allAudio, resp.AudioContent...)
	}

	path := artifactPath(t.outputDir, "audio", voiceID, "mp3")
	if err := writeArtifact(path, allAudio); err != nil {
		return nil, fmt.Errorf("write audio: %w", err)
	}

	durationSec, err := MP3Duration(allAudio)
	if err != nil {
		return nil, fmt.Errorf("probe duration: %w", err)
	}

	return &AudioResult{
		AudioPath:  path,
		DurationMs: int64(durationSec * 1000),
		WordCount:  len(strings.Fields(scriptText)),
	}, nil
}

// splitTextToChunksByByte chia text theo giới hạn byte + dấu câu
func splitTextToChunksByByte(text string, maxBytes int) []string {
	var chunks []string
	remaining := text

	for len(remaining) > 0 {
		if len(remaining) <= maxBytes {
			chunks = append(chunks, remaining)
			break
		}

		cutPos := maxBytes
		// Tìm dấu câu trong đoạn cắt được
		for i := cutPos; i > 0; i-- {
			if remaining[i-1] == '.' || remaining[i-1] == '!' || remaining[i-1] == '?' || remaining[i-1] == '\n' {
				cutPos = i
				break
			}
		}

		// Nếu không tìm thấy dấu câu, đảm bảo không cắt giữa ký tự UTF-8
		for cutPos < len(remaining) && (remaining[cutPos]&0xC0) == 0x80 {
			cutPos++
		}

		chunks = append(chunks, remaining[:cutPos])
		remaining = remaining[cutPos:]
	}

	return chunks
}
