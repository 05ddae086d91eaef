package api

import "hiking-planner/internal/model"

// RegisterRequest 註冊新使用者的請求格式
// swagger:model RegisterRequest
type RegisterRequest struct {
	FirstName  string `json:"firstName" form:"firstName" validate:"required" example:"Alice"`
	LastName   string `json:"lastName" form:"lastName" validate:"required" example:"Climber"`
	Email      string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	DOB        string `json:"dob" form:"dob" validate:"required" example:"1990-04-21"`
	Password   string `json:"password" form:"password" validate:"required" example:"Secret123!"`
	ProfilePic string `json:"profilePic" form:"profilePic" example:"alice.jpg"`
	FromURL    string `json:"fromUrl" form:"fromUrl" example:"https://app.hiking.test"`
}

// LoginRequest 使用者登入請求
// swagger:model LoginRequest
type LoginRequest struct {
	Email      string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password   string `json:"password" form:"password" validate:"required" example:"Secret123!"`
	RememberMe bool   `json:"rememberMe" form:"rememberMe" example:"false"`
}

// AdminLoginRequest 管理員登入請求
// swagger:model AdminLoginRequest
type AdminLoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email" example:"admin@example.com"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}

// ForgotPasswordRequest 申請重設密碼驗證碼
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
}

// VerifyResetCodeRequest 驗證重設密碼驗證碼
// swagger:model VerifyResetCodeRequest
type VerifyResetCodeRequest struct {
	Email string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Code  string `json:"code" form:"code" validate:"required" example:"123456"`
}

// ResetPasswordRequest 以驗證碼重設密碼
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Code     string `json:"code" form:"code" validate:"required" example:"123456"`
	Password string `json:"password" form:"password" validate:"required" example:"NewSecret456!"`
}

// GetUserRequest 依 ID 查詢使用者
// swagger:model GetUserRequest
type GetUserRequest struct {
	ID string `json:"id" form:"id" validate:"required" example:"662a1f9c8b3e2a0001c0ffee"`
}

// AuthData 登入/註冊成功時的 data 內容
// swagger:model AuthData
type AuthData struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// UserData 單一使用者的 data 內容
// swagger:model UserData
type UserData struct {
	User *model.User `json:"user"`
}

// EmailData 僅回傳 email 的 data 內容
// swagger:model EmailData
type EmailData struct {
	Email string `json:"email"`
}
