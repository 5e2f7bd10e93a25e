package models

type PlatformAccount struct {
	ID            int64    `json:"id"`
	PlatformID    int64    `json:"platformId"`
	Name          string   `json:"name"`
	Username      string   `json:"username"`
	AccessToken   *string  `json:"accessToken,omitempty"`
	RefreshToken  *string  `json:"refreshToken,omitempty"`
	FollowerCount *int     `json:"followerCount,omitempty"`
	Active        bool     `json:"active"`
	Metadata      Metadata `json:"metadata"`
}

type PlatformAccountInput struct {
	PlatformID    int64    `json:"platformId" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	Username      string   `json:"username" binding:"required"`
	AccessToken   *string  `json:"accessToken"`
	RefreshToken  *string  `json:"refreshToken"`
	FollowerCount *int     `json:"followerCount"`
	Active        *bool    `json:"active"`
	Metadata      Metadata `json:"metadata"`
}

type PlatformAccountUpdate struct {
	PlatformID    *int64   `json:"platformId"`
	Name          *string  `json:"name"`
	Username      *string  `json:"username"`
	AccessToken   *string  `json:"accessToken"`
	RefreshToken  *string  `json:"refreshToken"`
	FollowerCount *int     `json:"followerCount"`
	Active        *bool    `json:"active"`
	Metadata      Metadata `json:"metadata"`
}
