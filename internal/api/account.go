package api

// UpdateAccountRequest 更新當前使用者資料，欄位皆為選填
// swagger:model UpdateAccountRequest
type UpdateAccountRequest struct {
	FirstName string `json:"firstName" form:"firstName" example:"Alice"`
	LastName  string `json:"lastName" form:"lastName" example:"Climber"`
	Email     string `json:"email" form:"email" validate:"omitempty,email" example:"alice@example.com"`
	DOB       string `json:"dob" form:"dob" example:"1990-04-21"`
	Phone     string `json:"phone" form:"phone" example:"+38160123456"`
}

// ChangePasswordRequest 驗證舊密碼並更新為新密碼
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" form:"oldPassword" validate:"required" example:"OldSecret123!"`
	NewPassword string `json:"newPassword" form:"newPassword" validate:"required" example:"NewSecret456!"`
}

// GenerateEmailTokenRequest 重新寄送驗證信時的選填來源網址
// swagger:model GenerateEmailTokenRequest
type GenerateEmailTokenRequest struct {
	FromURL string `json:"fromUrl" form:"fromUrl" example:"https://app.hiking.test"`
}

// MessageData 僅帶訊息的 data 內容
// swagger:model MessageData
type MessageData struct {
	Message string `json:"message"`
}
