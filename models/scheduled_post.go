package models

import "time"

type PostStatus string

const (
	PostStatusPending PostStatus = "pending"
	PostStatusDraft   PostStatus = "draft"
	PostStatusPosted  PostStatus = "posted"
	PostStatusFailed  PostStatus = "failed"
)

type ScheduledPost struct {
	ID                int64      `json:"id"`
	ContentID         int64      `json:"contentId"`
	PlatformAccountID int64      `json:"platformAccountId"`
	ScheduledTime     time.Time  `json:"scheduledTime"`
	Status            PostStatus `json:"status"`
	PostID            *string    `json:"postId,omitempty"` // id bên nền tảng ngoài, nếu đã đăng
	Error             *string    `json:"error,omitempty"`
}

type ScheduledPostInput struct {
	ContentID         int64      `json:"contentId" binding:"required"`
	PlatformAccountID int64      `json:"platformAccountId" binding:"required"`
	ScheduledTime     time.Time  `json:"scheduledTime" binding:"required"`
	Status            PostStatus `json:"status" binding:"omitempty,oneof=pending draft posted failed"`
}

type ScheduledPostUpdate struct {
	ContentID         *int64      `json:"contentId"`
	PlatformAccountID *int64      `json:"platformAccountId"`
	ScheduledTime     *time.Time  `json:"scheduledTime"`
	Status            *PostStatus `json:"status" binding:"omitempty,oneof=pending draft posted failed"`
	PostID            *string     `json:"postId"`
	Error             *string     `json:"error"`
}
