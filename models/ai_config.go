package models

import "time"

type ModelType string

const (
	ModelTypeLLM   ModelType = "llm"
	ModelTypeTTS   ModelType = "tts"
	ModelTypeImage ModelType = "image"
	ModelTypeVideo ModelType = "video"
)

type DownloadStatus string

const (
	DownloadNotDownloaded DownloadStatus = "not_downloaded"
	DownloadDownloading   DownloadStatus = "downloading"
	DownloadAvailable     DownloadStatus = "available"
	DownloadFailed        DownloadStatus = "failed"
)

type AiConfig struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	ModelType      ModelType      `json:"modelType"`
	ModelName      string         `json:"modelName"`
	Active         bool           `json:"active"`
	Settings       Metadata       `json:"settings"`
	Capabilities   Metadata       `json:"capabilities"`
	LastUpdated    time.Time      `json:"lastUpdated"`
	DownloadStatus DownloadStatus `json:"downloadStatus"`
}

type AiConfigInput struct {
	Name         string    `json:"name" binding:"required"`
	ModelType    ModelType `json:"modelType" binding:"required,oneof=llm tts image video"`
	ModelName    string    `json:"modelName" binding:"required"`
	Active       *bool     `json:"active"`
	Settings     Metadata  `json:"settings"`
	Capabilities Metadata  `json:"capabilities"`
}

type AiConfigUpdate struct {
	Name           *string         `json:"name"`
	ModelType      *ModelType      `json:"modelType" binding:"omitempty,oneof=llm tts image video"`
	ModelName      *string         `json:"modelName"`
	Active         *bool           `json:"active"`
	Settings       Metadata        `json:"settings"`
	Capabilities   Metadata        `json:"capabilities"`
	DownloadStatus *DownloadStatus `json:"downloadStatus" binding:"omitempty,oneof=not_downloaded downloading available failed"`
}
