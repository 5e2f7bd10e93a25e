package models

type Platform struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

type PlatformInput struct {
	Name   string `json:"name" binding:"required"`
	Icon   string `json:"icon"`
	Active *bool  `json:"active"`
}

type PlatformUpdate struct {
	Name   *string `json:"name"`
	Icon   *string `json:"icon"`
	Active *bool   `json:"active"`
}
