package api

import "hiking-planner/internal/model"

// CreateCommunityRequest 建立社群
// swagger:model CreateCommunityRequest
type CreateCommunityRequest struct {
	Name             string `json:"name" form:"name" validate:"required" example:"Fruska Gora Hikers"`
	Description      string `json:"description" form:"description" validate:"required"`
	ShortDescription string `json:"shortDescription" form:"shortDescription" validate:"required"`
	Image            string `json:"image" form:"image" validate:"required" example:"fruska.jpg"`
}

// UpdateCommunityRequest 更新社群，欄位皆為選填
// swagger:model UpdateCommunityRequest
type UpdateCommunityRequest struct {
	Name             string `json:"name" form:"name"`
	Description      string `json:"description" form:"description"`
	ShortDescription string `json:"shortDescription" form:"shortDescription"`
	Image            string `json:"image" form:"image"`
}

// AddEventRequest 在社群下建立健行活動
// swagger:model AddEventRequest
type AddEventRequest struct {
	Name             string  `json:"name" form:"name" validate:"required" example:"Sunrise hike"`
	Description      string  `json:"description" form:"description" validate:"required"`
	ShortDescription string  `json:"shortDescription" form:"shortDescription" validate:"required"`
	Date             string  `json:"date" form:"date" validate:"required" example:"2026-09-12T06:00:00Z"`
	WhatToBring      string  `json:"whatToBring" form:"whatToBring" validate:"required" example:"water, boots, headlamp"`
	Longitude        float64 `json:"longitude" form:"longitude" validate:"required" example:"19.7081"`
	Latitude         float64 `json:"latitude" form:"latitude" validate:"required" example:"45.1555"`
	DifficultyLevel  string  `json:"difficultyLevel" form:"difficultyLevel" validate:"required,oneof=Easy Moderate Hard" example:"Moderate"`
	Distance         float64 `json:"distance" form:"distance" validate:"required" example:"14.2"`
	Duration         float64 `json:"duration" form:"duration" validate:"required" example:"5.5"`
	Elevation        float64 `json:"elevation" form:"elevation" validate:"required" example:"540"`
	Image            string  `json:"image" form:"image" validate:"required" example:"sunrise.jpg"`
}

// AddCommentRequest 在活動下留言，replyingTo 為選填的回覆目標
// swagger:model AddCommentRequest
type AddCommentRequest struct {
	Text       string `json:"text" form:"text" validate:"required" example:"See you at the trailhead!"`
	ReplyingTo string `json:"replyingTo" form:"replyingTo" example:"662a1f9c8b3e2a0001c0ffee"`
}

// CommunityData 單一社群的 data 內容
// swagger:model CommunityData
type CommunityData struct {
	Community *model.Community `json:"community"`
}

// CommunitiesData 社群清單的 data 內容
// swagger:model CommunitiesData
type CommunitiesData struct {
	Communities []model.Community `json:"communities"`
}

// EventData 單一活動的 data 內容
// swagger:model EventData
type EventData struct {
	Event *model.Event `json:"event"`
}

// MembersData 社群成員清單的 data 內容
// swagger:model MembersData
type MembersData struct {
	Members []model.User `json:"members"`
}
