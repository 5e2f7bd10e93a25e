package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vnkhanh/creator-studio-backend/models"
	"github.com/vnkhanh/creator-studio-backend/store"
)

// thời lượng kịch bản mặc định cho nhánh video
const defaultVideoMinutes = 5

// ProgressFunc nhận cập nhật tiến trình của một automation run
// (main nối nó vào websocket hub)
type ProgressFunc func(jobID, stage string, progress float64, errMsg string)

// Orchestrator ghép các generation service thành pipeline:
// chủ đề trending → kịch bản → (ảnh/video) → Content → ScheduledPost.
// Các stage chạy tuần tự, không retry, không rollback bản ghi đã tạo.
type Orchestrator struct {
	store   *store.Store
	scripts ScriptGenerator
	tts     TextToSpeech
	images  ImageGenerator
	video   VideoCompiler
	notify  ProgressFunc
}

func NewOrchestrator(s *store.Store, scripts ScriptGenerator, tts TextToSpeech, images ImageGenerator, video VideoCompiler, notify ProgressFunc) *Orchestrator {
	return &Orchestrator{
		store:   s,
		scripts: scripts,
		tts:     tts,
		images:  images,
		video:   video,
		notify:  notify,
	}
}

type AutomationRequest struct {
	TopicID             *int64             `json:"topicId"`
	PlatformID          *int64             `json:"platformId"`
	ContentType         models.ContentType `json:"contentType" binding:"omitempty,oneof=video image text"`
	ScheduleImmediately bool               `json:"scheduleImmediately"`
}

type AutomationResult struct {
	JobID         string                `json:"jobId"`
	Topic         models.TrendingTopic  `json:"topic"`
	Script        *models.Script        `json:"script,omitempty"`
	Video         *VideoResult          `json:"video,omitempty"`
	Image         *ImageResult          `json:"image,omitempty"`
	GeneratedText string                `json:"generatedText,omitempty"`
	Content       models.Content        `json:"content"`
	ScheduledPost *models.ScheduledPost `json:"scheduledPost"`
}

func (o *Orchestrator) progress(jobID, stage string, pct float64) {
	if o.notify != nil {
		o.notify(jobID, stage, pct, "")
	}
}

func (o *Orchestrator) fail(jobID, stage string, err error) (*AutomationResult, error) {
	if o.notify != nil {
		o.notify(jobID, stage, 0, err.Error())
	}
	return nil, &StageError{Stage: stage, Err: err}
}

// CreateContent chạy toàn bộ pipeline cho một request automation.
// Lỗi ở stage nào thì dừng ở đó; bản ghi đã tạo trước lỗi được giữ nguyên.
func (o *Orchestrator) CreateContent(ctx context.Context, req AutomationRequest) (*AutomationResult, error) {
	jobID := uuid.New().String()

	contentType := req.ContentType
	if contentType == "" {
		contentType = models.ContentType(o.store.AutomationSettings().PreferredContentType)
	}
	if contentType == "" {
		contentType = models.ContentTypeVideo
	}

	// Stage 1: chọn chủ đề
	o.progress(jobID, "topic", 0.1)
	var topic models.TrendingTopic
	if req.TopicID != nil {
		found, err := o.store.GetTopic(*req.TopicID)
		if err != nil {
			return o.fail(jobID, "topic", err)
		}
		topic = found
	} else {
		found, err := o.store.TopTopic()
		if err != nil {
			return o.fail(jobID, "topic", ErrNoTopics)
		}
		topic = found
	}
	log.Info().Str("job", jobID).Str("topic", topic.Topic).Str("contentType", string(contentType)).Msg("automation started")

	result := &AutomationResult{JobID: jobID, Topic: topic}

	// Stage 2: sinh nội dung theo loại
	switch contentType {
	case models.ContentTypeVideo:
		if err := o.generateVideoContent(ctx, jobID, topic, result); err != nil {
			return nil, err
		}
	case models.ContentTypeImage:
		if err := o.generateImageContent(ctx, jobID, topic, result); err != nil {
			return nil, err
		}
	case models.ContentTypeText:
		if err := o.generateTextContent(ctx, jobID, topic, result); err != nil {
			return nil, err
		}
	default:
		return o.fail(jobID, "content", fmt.Errorf("unsupported content type %q", contentType))
	}

	// Stage 3: lên lịch đăng (tuỳ chọn); không có account active thì bỏ qua,
	// không phải lỗi
	if req.ScheduleImmediately && req.PlatformID != nil {
		o.progress(jobID, "schedule", 0.9)
		if account, ok := o.store.FirstActiveAccount(*req.PlatformID); ok {
			post := o.store.CreatePost(models.ScheduledPostInput{
				ContentID:         result.Content.ID,
				PlatformAccountID: account.ID,
				ScheduledTime:     time.Now().Add(time.Hour),
				Status:            models.PostStatusPending,
			})
			result.ScheduledPost = &post
		} else {
			log.Warn().Str("job", jobID).Int64("platform", *req.PlatformID).Msg("không có account active, bỏ qua bước lên lịch")
		}
	}

	o.progress(jobID, "done", 1.0)
	return result, nil
}

func (o *Orchestrator) generateVideoContent(ctx context.Context, jobID string, topic models.TrendingTopic, result *AutomationResult) error {
	o.progress(jobID, "script", 0.3)
	scriptText, err := o.scripts.GenerateScript(ctx, ScriptRequest{
		Topic:           topic.Topic,
		Format:          models.ScriptFormatVideo,
		DurationMinutes: defaultVideoMinutes,
		Tone:            "professional",
		Audience:        "khán giả phổ thông",
	})
	if err != nil {
		_, err := o.fail(jobID, "script", err)
		return err
	}

	durationSec := defaultVideoMinutes * 60
	script := o.store.CreateScript(models.ScriptInput{
		Title:          topic.Topic,
		Topic:          topic.Topic,
		Format:         models.ScriptFormatVideo,
		Content:        scriptText,
		DurationSec:    &durationSec,
		Tone:           "professional",
		TargetAudience: "khán giả phổ thông",
	})
	result.Script = &script

	o.progress(jobID, "thumbnail", 0.5)
	thumbnail, err := o.images.GenerateThumbnail(ctx, topic.Topic, "realistic", "1280x720")
	if err != nil {
		_, err := o.fail(jobID, "thumbnail", err)
		return err
	}

	o.progress(jobID, "video", 0.7)
	video, err := o.video.GenerateVideo(ctx, scriptText, topic.Topic, "1920x1080", "realistic", topic.Topic)
	if err != nil {
		_, err := o.fail(jobID, "video", err)
		return err
	}
	result.Video = video

	o.progress(jobID, "content", 0.85)
	result.Content = o.store.CreateContent(models.ContentInput{
		Title:         topic.Topic,
		Description:   "Video tự động từ chủ đề trending: " + topic.Topic,
		ContentType:   models.ContentTypeVideo,
		Status:        models.ContentStatusReady,
		FilePath:      &video.VideoPath,
		ThumbnailPath: &thumbnail.ThumbnailPath,
		Metadata: models.Metadata{
			"scriptId":  script.ID,
			"topic":     topic.Topic,
			"automated": true,
			"duration":  video.DurationSec,
		},
	})
	return nil
}

func (o *Orchestrator) generateImageContent(ctx context.Context, jobID string, topic models.TrendingTopic, result *AutomationResult) error {
	o.progress(jobID, "image", 0.5)
	image, err := o.images.GenerateImage(ctx, ImageRequest{
		Prompt: imagePrompt(topic),
		Style:  "realistic",
		Size:   "1024x1024",
		Format: "png",
	})
	if err != nil {
		_, err := o.fail(jobID, "image", err)
		return err
	}
	result.Image = image

	o.progress(jobID, "content", 0.8)
	result.Content = o.store.CreateContent(models.ContentInput{
		Title:       topic.Topic,
		Description: "Ảnh tự động từ chủ đề trending: " + topic.Topic,
		ContentType: models.ContentTypeImage,
		Status:      models.ContentStatusReady,
		FilePath:    &image.ImagePath,
		// thumbnail dùng luôn ảnh chính
		ThumbnailPath: &image.ImagePath,
		Metadata: models.Metadata{
			"topic":     topic.Topic,
			"automated": true,
		},
	})
	return nil
}

func (o *Orchestrator) generateTextContent(ctx context.Context, jobID string, topic models.TrendingTopic, result *AutomationResult) error {
	o.progress(jobID, "text", 0.5)
	text, err := o.scripts.GenerateScript(ctx, ScriptRequest{
		Topic:           topic.Topic,
		Format:          models.ScriptFormatShort,
		DurationMinutes: 1,
		Tone:            "casual",
	})
	if err != nil {
		_, err := o.fail(jobID, "text", err)
		return err
	}
	result.GeneratedText = text

	o.progress(jobID, "content", 0.8)
	result.Content = o.store.CreateContent(models.ContentInput{
		Title:       topic.Topic,
		Description: text,
		ContentType: models.ContentTypeText,
		Status:      models.ContentStatusReady,
		FilePath:    nil,
		Metadata: models.Metadata{
			"topic":     topic.Topic,
			"automated": true,
		},
	})
	return nil
}

func imagePrompt(topic models.TrendingTopic) string {
	prompt := fmt.Sprintf("%s (%s)", topic.Topic, topic.Category)
	if topic.Description != nil && *topic.Description != "" {
		prompt += ": " + *topic.Description
	}
	return prompt
}
