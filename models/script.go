package models

import "time"

type ScriptFormat string

const (
	ScriptFormatVideo   ScriptFormat = "video"
	ScriptFormatShort   ScriptFormat = "short"
	ScriptFormatPodcast ScriptFormat = "podcast"
	ScriptFormatGeneric ScriptFormat = "generic"
)

type ScriptStatus string

const (
	ScriptStatusDraft     ScriptStatus = "draft"
	ScriptStatusFinalized ScriptStatus = "finalized" // sau khi đã tạo audio
	ScriptStatusConverted ScriptStatus = "converted" // sau khi đã dựng video
)

type Script struct {
	ID             int64        `json:"id"`
	Title          string       `json:"title"`
	Topic          string       `json:"topic"`
	Format         ScriptFormat `json:"format"`
	Content        string       `json:"content"`
	DurationSec    *int         `json:"duration,omitempty"`
	Tone           string       `json:"tone"`
	TargetAudience string       `json:"targetAudience"`
	AudioPath      *string      `json:"audioPath,omitempty"`
	Status         ScriptStatus `json:"status"`
	CreatedAt      time.Time    `json:"createdAt"`
}

type ScriptInput struct {
	Title          string       `json:"title" binding:"required"`
	Topic          string       `json:"topic" binding:"required"`
	Format         ScriptFormat `json:"format" binding:"omitempty,oneof=video short podcast generic"`
	Content        string       `json:"content" binding:"required"`
	DurationSec    *int         `json:"duration"`
	Tone           string       `json:"tone"`
	TargetAudience string       `json:"targetAudience"`
}

type ScriptUpdate struct {
	Title          *string       `json:"title"`
	Topic          *string       `json:"topic"`
	Format         *ScriptFormat `json:"format" binding:"omitempty,oneof=video short podcast generic"`
	Content        *string       `json:"content"`
	DurationSec    *int          `json:"duration"`
	Tone           *string       `json:"tone"`
	TargetAudience *string       `json:"targetAudience"`
	AudioPath      *string       `json:"audioPath"`
	Status         *ScriptStatus `json:"status" binding:"omitempty,oneof=draft finalized converted"`
}
