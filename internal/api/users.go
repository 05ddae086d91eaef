package api

import "hiking-planner/internal/model"

// CreateUserRequest 管理員建立新使用者
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	FirstName string `json:"firstName" form:"firstName" validate:"required" example:"Alice"`
	LastName  string `json:"lastName" form:"lastName" validate:"required" example:"Climber"`
	Email     string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Phone     string `json:"phone" form:"phone" example:"+38160123456"`
	Password  string `json:"password" form:"password" validate:"required" example:"Secret123!"`
	IsAdmin   bool   `json:"isAdmin" form:"isAdmin" example:"false"`
}

// UpdateUserRequest 管理員更新使用者資料
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	FirstName string `json:"firstName" form:"firstName" validate:"required" example:"Alice"`
	LastName  string `json:"lastName" form:"lastName" validate:"required" example:"Climber"`
	Email     string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Phone     string `json:"phone" form:"phone" example:"+38160123456"`
}

// UsersData 使用者清單的 data 內容
// swagger:model UsersData
type UsersData struct {
	Users []model.User `json:"users"`
}
