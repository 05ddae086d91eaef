package api

import "hiking-planner/internal/model"

// CreateCommentRequest 建立活動留言
// swagger:model CreateCommentRequest
type CreateCommentRequest struct {
	EventID string `json:"eventId" form:"eventId" validate:"required" example:"662a1f9c8b3e2a0001c0ffee"`
	Text    string `json:"text" form:"text" validate:"required" example:"Great trail!"`
}

// UpdateCommentRequest 更新留言內容
// swagger:model UpdateCommentRequest
type UpdateCommentRequest struct {
	Text string `json:"text" form:"text" validate:"required" example:"Great trail, bring poles."`
}

// CommentData 單一留言的 data 內容
// swagger:model CommentData
type CommentData struct {
	Comment *model.Comment `json:"comment"`
}

// CommentsData 留言清單的 data 內容
// swagger:model CommentsData
type CommentsData struct {
	Comments []model.Comment `json:"comments"`
}
